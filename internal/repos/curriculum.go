package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type CurriculumRepo interface {
	Create(ctx context.Context, tx *gorm.DB, curriculum *types.Curriculum) (*types.Curriculum, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Curriculum, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, curriculumID uuid.UUID, status types.CurriculumStatus) error
}

type curriculumRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCurriculumRepo(db *gorm.DB, baseLog *logger.Logger) CurriculumRepo {
	repoLog := baseLog.With("repo", "CurriculumRepo")
	return &curriculumRepo{db: db, log: repoLog}
}

func (cr *curriculumRepo) Create(ctx context.Context, tx *gorm.DB, curriculum *types.Curriculum) (*types.Curriculum, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if curriculum == nil {
		return nil, nil
	}
	if err := transaction.WithContext(ctx).Create(curriculum).Error; err != nil {
		return nil, err
	}
	return curriculum, nil
}

func (cr *curriculumRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Curriculum, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Curriculum
	if err := transaction.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("curriculum_module.order_idx asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *curriculumRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, curriculumID uuid.UUID, status types.CurriculumStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Curriculum{}).
		Where("id = ?", curriculumID).
		Update("status", status).Error
}
