package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillbridge/skillbridge-backend/internal/handlers"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	CourseHandler     *handlers.CourseHandler
	GapReportHandler  *handlers.GapReportHandler
	RoadmapHandler    *handlers.RoadmapHandler
	CurriculumHandler *handlers.CurriculumHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// User
	protected.GET("/users/me", cfg.UserHandler.GetMe)
	protected.PATCH("/users/me", cfg.UserHandler.UpdateProfile)
	// Courses
	protected.GET("/courses", cfg.CourseHandler.ListCourses)
	protected.GET("/courses/suggest", cfg.CourseHandler.Suggest)
	protected.GET("/courses/favorites", cfg.CourseHandler.Favorites)
	protected.POST("/courses/:courseId/favorite", cfg.CourseHandler.ToggleFavorite)
	// Gap reports
	protected.GET("/gap-reports/:userId", cfg.GapReportHandler.GetGapReport)
	// Roadmaps
	protected.POST("/roadmaps/generate", cfg.RoadmapHandler.Generate)
	protected.POST("/roadmaps/:roadmapId/steps/:stepId/complete", cfg.RoadmapHandler.CompleteStep)
	// Curricula
	protected.POST("/curricula", cfg.CurriculumHandler.Create)
	protected.GET("/curricula", cfg.CurriculumHandler.List)

	return router
}
