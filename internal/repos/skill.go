package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type SkillRepo interface {
	Create(ctx context.Context, tx *gorm.DB, skills []*types.Skill) ([]*types.Skill, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Skill, error)
	GetByCategory(ctx context.Context, tx *gorm.DB, category types.SkillCategory) ([]*types.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	repoLog := baseLog.With("repo", "SkillRepo")
	return &skillRepo{db: db, log: repoLog}
}

func (sr *skillRepo) Create(ctx context.Context, tx *gorm.DB, skills []*types.Skill) ([]*types.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(skills) == 0 {
		return []*types.Skill{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (sr *skillRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Skill
	if err := transaction.WithContext(ctx).
		Order("category asc, name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *skillRepo) GetByCategory(ctx context.Context, tx *gorm.DB, category types.SkillCategory) ([]*types.Skill, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Skill
	if err := transaction.WithContext(ctx).
		Where("category = ?", category).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
