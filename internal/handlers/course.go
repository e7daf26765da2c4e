package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge-backend/internal/requestdata"
	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type CourseHandler struct {
	catalogService services.CatalogService
}

func NewCourseHandler(catalogService services.CatalogService) *CourseHandler {
	return &CourseHandler{catalogService: catalogService}
}

func parseCourseFilter(c *gin.Context) services.CourseFilter {
	filter := services.CourseFilter{
		Query:    c.Query("q"),
		Price:    services.PriceAll,
		Duration: services.DurationAll,
	}
	switch services.PriceFilter(c.Query("price")) {
	case services.PriceFree, services.PricePaid, services.PriceLow, services.PriceMedium, services.PriceHigh:
		filter.Price = services.PriceFilter(c.Query("price"))
	}
	switch services.DurationFilter(c.Query("duration")) {
	case services.DurationShort, services.DurationMedium, services.DurationLong:
		filter.Duration = services.DurationFilter(c.Query("duration"))
	}
	switch level := types.CourseLevel(c.Query("level")); level {
	case types.CourseLevelBeginner, types.CourseLevelIntermediate, types.CourseLevelAdvanced:
		filter.Level = &level
	}
	return filter
}

func (ch *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := ch.catalogService.ListCourses(c.Request.Context(), parseCourseFilter(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, courses)
}

func (ch *CourseHandler) Suggest(c *gin.Context) {
	suggestions, err := ch.catalogService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"suggestions": suggestions})
}

func (ch *CourseHandler) Favorites(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	favorites, err := ch.catalogService.Favorites(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if favorites == nil {
		favorites = []uuid.UUID{}
	}
	RespondOK(c, gin.H{"favorites": favorites})
}

func (ch *CourseHandler) ToggleFavorite(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	favorite, err := ch.catalogService.ToggleFavorite(c.Request.Context(), rd.UserID, courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"courseId": courseID, "favorite": favorite})
}
