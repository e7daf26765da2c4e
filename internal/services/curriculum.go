package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type CurriculumModuleInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	HoursEstimate int    `json:"hoursEstimate"`
}

type CurriculumService interface {
	Create(ctx context.Context, userID uuid.UUID, title string, source types.CurriculumSource, modules []CurriculumModuleInput) (*types.Curriculum, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Curriculum, error)
}

type curriculumService struct {
	db             *gorm.DB
	log            *logger.Logger
	curriculumRepo repos.CurriculumRepo
}

func NewCurriculumService(db *gorm.DB, log *logger.Logger, curriculumRepo repos.CurriculumRepo) CurriculumService {
	serviceLog := log.With("service", "CurriculumService")
	return &curriculumService{db: db, log: serviceLog, curriculumRepo: curriculumRepo}
}

func (cs *curriculumService) Create(ctx context.Context, userID uuid.UUID, title string, source types.CurriculumSource, modules []CurriculumModuleInput) (*types.Curriculum, error) {
	if userID == uuid.Nil {
		return nil, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.New(http.StatusBadRequest, "title_required", fmt.Errorf("A title is required"))
	}
	switch source {
	case types.CurriculumSourceUpload, types.CurriculumSourceTemplate, types.CurriculumSourceManual:
	default:
		return nil, apperr.New(http.StatusBadRequest, "invalid_source", fmt.Errorf("Unknown curriculum source %q", source))
	}

	curriculumID := uuid.New()
	status := types.CurriculumStatusCompleted
	if source == types.CurriculumSourceUpload {
		// Uploads await the parsing pipeline.
		status = types.CurriculumStatusPending
	}
	curriculum := &types.Curriculum{
		ID:        curriculumID,
		UserID:    userID,
		Title:     title,
		Status:    status,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
	for i, m := range modules {
		curriculum.Modules = append(curriculum.Modules, types.CurriculumModule{
			ID:            uuid.New(),
			CurriculumID:  curriculumID,
			Title:         strings.TrimSpace(m.Title),
			Description:   m.Description,
			HoursEstimate: m.HoursEstimate,
			OrderIdx:      i,
		})
	}

	created, err := cs.curriculumRepo.Create(ctx, nil, curriculum)
	if err != nil {
		cs.log.Warn("Create curriculum error:", "error", err)
		return nil, fmt.Errorf("error creating curriculum: %w", err)
	}
	return created, nil
}

func (cs *curriculumService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Curriculum, error) {
	if userID == uuid.Nil {
		return nil, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}
	return cs.curriculumRepo.GetByUserID(ctx, nil, userID)
}
