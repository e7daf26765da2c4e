package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type GapReportHandler struct {
	gapReportService services.GapReportService
}

func NewGapReportHandler(gapReportService services.GapReportService) *GapReportHandler {
	return &GapReportHandler{gapReportService: gapReportService}
}

// gapView exposes the derived gap value alongside each stored skill gap.
type gapView struct {
	types.SkillGap
	Gap float64 `json:"gap"`
}

func (gh *GapReportHandler) GetGapReport(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	report, err := gh.gapReportService.GetGapReport(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	gaps := make([]gapView, 0, len(report.SkillGaps))
	for _, sg := range report.SkillGaps {
		gaps = append(gaps, gapView{SkillGap: sg, Gap: sg.Gap()})
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             report.ID,
		"userId":         report.UserID,
		"readinessScore": report.ReadinessScore,
		"skillGaps":      gaps,
		"generatedAt":    report.GeneratedAt,
	})
}
