package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skillbridge/skillbridge-backend/internal/db"
	"github.com/skillbridge/skillbridge-backend/internal/handlers"
	"github.com/skillbridge/skillbridge-backend/internal/kv"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/server"
	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	readinessScore := utils.GetEnvAsInt("READINESS_SCORE_DEFAULT", 65, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Key-value store (redis, falling back to in-memory)
	var kvStore kv.Store
	redisStore, err := kv.NewRedisStore(log)
	if err != nil {
		log.Warn("Redis init failed, using in-memory store", "error", err)
		kvStore = kv.NewMemoryStore()
	} else {
		defer redisStore.Close()
		kvStore = redisStore
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	skillRepo := repos.NewSkillRepo(thePG, log)
	courseRepo := repos.NewCourseRepo(thePG, log)
	gapReportRepo := repos.NewGapReportRepo(thePG, log)
	roadmapRepo := repos.NewRoadmapRepo(thePG, log)
	curriculumRepo := repos.NewCurriculumRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	readiness := services.StaticReadinessSource{Value: float64(readinessScore)}
	gapReportService := services.NewGapReportService(thePG, log, gapReportRepo, skillRepo, readiness)
	roadmapService := services.NewRoadmapService(thePG, log, roadmapRepo, gapReportRepo, kvStore)
	catalogService := services.NewCatalogService(thePG, log, courseRepo, kvStore)
	curriculumService := services.NewCurriculumService(thePG, log, curriculumRepo)

	seedService := services.NewSeedService(thePG, log, skillRepo, courseRepo)
	if err := seedService.SeedIfEmpty(context.Background()); err != nil {
		log.Warn("Catalog seeding failed", "error", err)
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(catalogService)
	gapReportHandler := handlers.NewGapReportHandler(gapReportService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	curriculumHandler := handlers.NewCurriculumHandler(curriculumService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		CourseHandler:     courseHandler,
		GapReportHandler:  gapReportHandler,
		RoadmapHandler:    roadmapHandler,
		CurriculumHandler: curriculumHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
