package types

import (
	"github.com/google/uuid"
)

type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "Technical Skills"
	SkillCategoryDesign    SkillCategory = "Design & UX"
	SkillCategoryBusiness  SkillCategory = "Business Skills"
	SkillCategorySoft      SkillCategory = "Soft Skills"
)

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

// Skill is static reference data. Name uniqueness within a category is a
// convention of the seed data, not enforced by the schema.
type Skill struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"not null;column:name" json:"name"`
	Category    SkillCategory     `gorm:"not null;column:category" json:"category"`
	Description *string           `gorm:"column:description" json:"description,omitempty"`
	Proficiency *ProficiencyLevel `gorm:"column:proficiency" json:"proficiency,omitempty"`
}

func (Skill) TableName() string { return "skill" }
