package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/skillbridge-backend/internal/requestdata"
	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type CurriculumHandler struct {
	curriculumService services.CurriculumService
}

func NewCurriculumHandler(curriculumService services.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

func (ch *CurriculumHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Title   string                           `json:"title"`
		Source  types.CurriculumSource           `json:"source"`
		Modules []services.CurriculumModuleInput `json:"modules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	curriculum, err := ch.curriculumService.Create(c.Request.Context(), rd.UserID, req.Title, req.Source, req.Modules)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, curriculum)
}

func (ch *CurriculumHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	curricula, err := ch.curriculumService.ListForUser(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"curricula": curricula})
}
