package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillbridge/skillbridge-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, me)
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Year        *int    `json:"year"`
		WeeklyHours *int    `json:"weeklyHours"`
		TargetRole  *string `json:"targetRole"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	me, err := uh.userService.UpdateProfile(c.Request.Context(), req.Year, req.WeeklyHours, req.TargetRole)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, me)
}
