package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

// ReadinessSource supplies the overall readiness score for a report. The
// score is opaque to this service: it is never derived from the gap list.
type ReadinessSource interface {
	Score(ctx context.Context, userID uuid.UUID) (float64, error)
}

// StaticReadinessSource returns a fixed score for every user, matching the
// assessment backend's placeholder behavior until the real scorer lands.
type StaticReadinessSource struct {
	Value float64
}

func (s StaticReadinessSource) Score(ctx context.Context, userID uuid.UUID) (float64, error) {
	return s.Value, nil
}

type GapReportService interface {
	GetGapReport(ctx context.Context, userID uuid.UUID) (*types.GapReport, error)
}

type gapReportService struct {
	db            *gorm.DB
	log           *logger.Logger
	gapReportRepo repos.GapReportRepo
	skillRepo     repos.SkillRepo
	readiness     ReadinessSource
}

func NewGapReportService(db *gorm.DB, log *logger.Logger, gapReportRepo repos.GapReportRepo, skillRepo repos.SkillRepo, readiness ReadinessSource) GapReportService {
	serviceLog := log.With("service", "GapReportService")
	return &gapReportService{
		db:            db,
		log:           serviceLog,
		gapReportRepo: gapReportRepo,
		skillRepo:     skillRepo,
		readiness:     readiness,
	}
}

// GetGapReport returns the user's latest report, generating one on first
// request. Reports are immutable once returned.
func (gs *gapReportService) GetGapReport(ctx context.Context, userID uuid.UUID) (*types.GapReport, error) {
	existing, err := gs.gapReportRepo.GetLatestByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching gap report: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	score, err := gs.readiness.Score(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching readiness score: %w", err)
	}

	report := &types.GapReport{
		ID:             uuid.New(),
		UserID:         userID,
		ReadinessScore: score,
		GeneratedAt:    time.Now().UTC(),
	}

	var created *types.GapReport
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skills, sErr := gs.skillRepo.GetByCategory(ctx, tx, types.SkillCategoryTechnical)
		if sErr != nil {
			return fmt.Errorf("error fetching skills for report: %w", sErr)
		}
		report.SkillGaps = buildSkillGaps(report.ID, skills)
		c, cErr := gs.gapReportRepo.Create(ctx, tx, report)
		if cErr != nil {
			return fmt.Errorf("error creating gap report: %w", cErr)
		}
		created = c
		return nil
	}); err != nil {
		gs.log.Warn("GetGapReport transaction error:", "error", err)
		return nil, err
	}
	return created, nil
}

// buildSkillGaps assigns the seeded requirement ladder to the user's current
// levels. Current levels come from self-assessment; until that intake ships
// they start at the entry baseline.
func buildSkillGaps(reportID uuid.UUID, skills []*types.Skill) []types.SkillGap {
	gaps := make([]types.SkillGap, 0, len(skills))
	for i, skill := range skills {
		required := 80.0
		priority := types.GapPriorityHigh
		switch {
		case i%3 == 1:
			required = 70.0
			priority = types.GapPriorityMedium
		case i%3 == 2:
			required = 60.0
			priority = types.GapPriorityLow
		}
		gaps = append(gaps, types.SkillGap{
			ID:            uuid.New(),
			GapReportID:   reportID,
			SkillID:       skill.ID,
			SkillName:     skill.Name,
			CurrentLevel:  30.0,
			RequiredLevel: required,
			Priority:      priority,
		})
	}
	return gaps
}
