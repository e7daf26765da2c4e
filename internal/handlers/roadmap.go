package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type RoadmapHandler struct {
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

func roadmapPayload(roadmap *types.Roadmap) gin.H {
	return gin.H{
		"id":                  roadmap.ID,
		"userId":              roadmap.UserID,
		"title":               roadmap.Title,
		"status":              roadmap.Status,
		"estimatedTotalHours": roadmap.EstimatedTotalHours,
		"steps":               roadmap.Steps,
		"progress":            roadmap.Progress(),
		"createdAt":           roadmap.CreatedAt,
	}
}

func (rh *RoadmapHandler) Generate(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	roadmap, err := rh.roadmapService.GenerateRoadmap(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, roadmapPayload(roadmap))
}

func (rh *RoadmapHandler) CompleteStep(c *gin.Context) {
	roadmapID, err := uuid.Parse(c.Param("roadmapId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_roadmap_id", err)
		return
	}
	stepID, err := uuid.Parse(c.Param("stepId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_step_id", err)
		return
	}
	roadmap, err := rh.roadmapService.MarkStepCompleted(c.Request.Context(), roadmapID, stepID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, roadmapPayload(roadmap))
}
