package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillbridge/skillbridge-backend/internal/handlers"
	"github.com/skillbridge/skillbridge-backend/internal/kv"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/middleware"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/services"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

// newTestRouter wires the full stack against in-memory sqlite and the
// in-memory key-value store, seeded with the default catalog.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&types.User{}, &types.Skill{}, &types.GapReport{}, &types.SkillGap{},
		&types.Course{}, &types.Roadmap{}, &types.RoadmapStep{},
		&types.Curriculum{}, &types.CurriculumModule{},
	))

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	store := kv.NewMemoryStore()

	userRepo := repos.NewUserRepo(db, log)
	skillRepo := repos.NewSkillRepo(db, log)
	courseRepo := repos.NewCourseRepo(db, log)
	gapReportRepo := repos.NewGapReportRepo(db, log)
	roadmapRepo := repos.NewRoadmapRepo(db, log)
	curriculumRepo := repos.NewCurriculumRepo(db, log)

	authService := services.NewAuthService(db, log, userRepo, "router-test-secret", time.Hour)
	userService := services.NewUserService(db, log, userRepo)
	gapReportService := services.NewGapReportService(db, log, gapReportRepo, skillRepo, services.StaticReadinessSource{Value: 65})
	roadmapService := services.NewRoadmapService(db, log, roadmapRepo, gapReportRepo, store)
	catalogService := services.NewCatalogService(db, log, courseRepo, store)
	curriculumService := services.NewCurriculumService(db, log, curriculumRepo)

	seedService := services.NewSeedService(db, log, skillRepo, courseRepo)
	require.NoError(t, seedService.SeedIfEmpty(context.Background()))

	return NewRouter(RouterConfig{
		AuthHandler:       handlers.NewAuthHandler(authService),
		AuthMiddleware:    middleware.NewAuthMiddleware(log, authService),
		UserHandler:       handlers.NewUserHandler(userService),
		CourseHandler:     handlers.NewCourseHandler(catalogService),
		GapReportHandler:  handlers.NewGapReportHandler(gapReportService),
		RoadmapHandler:    handlers.NewRoadmapHandler(roadmapService),
		CurriculumHandler: handlers.NewCurriculumHandler(curriculumService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerTestUser(t *testing.T, router *gin.Engine, email string) (token, userID string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "Abc12345",
		"name":     "Router Test",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func TestHealthCheckRoute(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/courses", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterLoginAndGetMe(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router, "flow@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "flow@example.com", me.Email)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "flow@example.com",
		"password": "WrongPass1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidationEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "broken",
		"password": "short",
		"name":     "R",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "validation_error", envelope.Error.Code)
	assert.Equal(t, "Please enter a valid email address", envelope.Error.Fields["email"])
	assert.Equal(t, "Password must be at least 8 characters", envelope.Error.Fields["password"])
}

func TestRoadmapFlow(t *testing.T) {
	router := newTestRouter(t)
	token, userID := registerTestUser(t, router, "roadmap-flow@example.com")

	// A gap report must exist before the roadmap has real steps.
	rec := doJSON(t, router, http.MethodGet, "/api/gap-reports/"+userID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/roadmaps/generate", token, gin.H{"userId": userID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var roadmap struct {
		ID    string `json:"id"`
		Steps []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"steps"`
		Progress float64 `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roadmap))
	require.NotEmpty(t, roadmap.Steps)
	assert.Equal(t, 0.0, roadmap.Progress)

	rec = doJSON(t, router, http.MethodPost, "/api/roadmaps/"+roadmap.ID+"/steps/"+roadmap.Steps[0].ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated struct {
		Steps []struct {
			Status string `json:"status"`
		} `json:"steps"`
		Progress float64 `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Completed", updated.Steps[0].Status)
	assert.Greater(t, updated.Progress, 0.0)
}

func TestCourseRoutes(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerTestUser(t, router, "courses@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/courses?price=free", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	require.NotEmpty(t, courses)
	for _, course := range courses {
		assert.Equal(t, 0.0, course.Price)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/courses/suggest?q=sw", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggest struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggest))
	assert.Contains(t, suggest.Suggestions, "Swift")
	assert.Contains(t, suggest.Suggestions, "SwiftUI")

	// Favorite toggle round trip.
	courseID := courses[0].ID
	rec = doJSON(t, router, http.MethodPost, "/api/courses/"+courseID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/courses/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var favs struct {
		Favorites []string `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favs))
	assert.Equal(t, []string{courseID}, favs.Favorites)
}
