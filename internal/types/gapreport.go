package types

import (
	"time"

	"github.com/google/uuid"
)

type GapPriority string

const (
	GapPriorityLow    GapPriority = "Low"
	GapPriorityMedium GapPriority = "Medium"
	GapPriorityHigh   GapPriority = "High"
)

// GapReport is immutable once generated. ReadinessScore is supplied by the
// report source and is never recomputed from the gap list.
type GapReport struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	User           *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	ReadinessScore float64    `gorm:"not null;column:readiness_score" json:"readinessScore"`
	SkillGaps      []SkillGap `gorm:"constraint:OnDelete:CASCADE;foreignKey:GapReportID;references:ID" json:"skillGaps"`
	GeneratedAt    time.Time  `gorm:"not null" json:"generatedAt"`
}

func (GapReport) TableName() string { return "gap_report" }

type SkillGap struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	GapReportID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	SkillID       uuid.UUID   `gorm:"type:uuid;column:skill_id" json:"skillId"`
	SkillName     string      `gorm:"not null;column:skill_name" json:"skillName"`
	CurrentLevel  float64     `gorm:"not null;column:current_level" json:"currentLevel"`
	RequiredLevel float64     `gorm:"not null;column:required_level" json:"requiredLevel"`
	Priority      GapPriority `gorm:"not null;default:'Medium';column:priority" json:"priority"`
}

func (SkillGap) TableName() string { return "skill_gap" }

// Gap is always derived, never stored. Never negative, even when the current
// level exceeds the required one.
func (sg SkillGap) Gap() float64 {
	if sg.RequiredLevel <= sg.CurrentLevel {
		return 0
	}
	return sg.RequiredLevel - sg.CurrentLevel
}
