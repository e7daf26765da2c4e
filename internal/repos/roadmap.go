package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error)
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Roadmap, error)
	GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error)
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	repoLog := baseLog.With("repo", "RoadmapRepo")
	return &roadmapRepo{db: db, log: repoLog}
}

func (rr *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if roadmap == nil {
		return nil, nil
	}
	if err := transaction.WithContext(ctx).Create(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (rr *roadmapRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.Roadmap
	err := transaction.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("roadmap_step.step_order asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (rr *roadmapRepo) GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.Roadmap
	err := transaction.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("roadmap_step.step_order asc")
		}).
		Where("id = ?", roadmapID).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
