package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type GapReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, report *types.GapReport) (*types.GapReport, error)
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.GapReport, error)
}

type gapReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGapReportRepo(db *gorm.DB, baseLog *logger.Logger) GapReportRepo {
	repoLog := baseLog.With("repo", "GapReportRepo")
	return &gapReportRepo{db: db, log: repoLog}
}

func (gr *gapReportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.GapReport) (*types.GapReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if report == nil {
		return nil, nil
	}
	if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (gr *gapReportRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.GapReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var result types.GapReport
	err := transaction.WithContext(ctx).
		Preload("SkillGaps").
		Where("user_id = ?", userID).
		Order("generated_at desc").
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
