package types

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapStatus string

const (
	RoadmapStatusDraft     RoadmapStatus = "Draft"
	RoadmapStatusActive    RoadmapStatus = "Active"
	RoadmapStatusPaused    RoadmapStatus = "Paused"
	RoadmapStatusCompleted RoadmapStatus = "Completed"
)

type StepStatus string

const (
	StepStatusPending    StepStatus = "Pending"
	StepStatusInProgress StepStatus = "In Progress"
	StepStatusCompleted  StepStatus = "Completed"
	StepStatusSkipped    StepStatus = "Skipped"
)

// ParseStepStatus returns the status for a persisted raw value. Unknown values
// report ok=false so malformed saved entries degrade to the server status.
func ParseStepStatus(raw string) (StepStatus, bool) {
	switch StepStatus(raw) {
	case StepStatusPending, StepStatusInProgress, StepStatusCompleted, StepStatusSkipped:
		return StepStatus(raw), true
	}
	return "", false
}

type Roadmap struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	User                *User         `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title               string        `gorm:"not null;column:title" json:"title"`
	Status              RoadmapStatus `gorm:"not null;default:'Draft';column:status" json:"status"`
	EstimatedTotalHours int           `gorm:"not null;default:0;column:estimated_total_hours" json:"estimatedTotalHours"`
	Steps               []RoadmapStep `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"steps"`
	CreatedAt           time.Time     `gorm:"not null" json:"createdAt"`
}

func (Roadmap) TableName() string { return "roadmap" }

// Progress is completed steps over total steps, 0 when there are none.
func (r Roadmap) Progress() float64 {
	if len(r.Steps) == 0 {
		return 0.0
	}
	completed := 0
	for _, step := range r.Steps {
		if step.Status == StepStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(r.Steps))
}

// RoadmapStep ids are the durable merge key across fetch cycles. StepOrder
// defines display and completion order; steps are never deleted.
type RoadmapStep struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RoadmapID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	StepOrder   int        `gorm:"not null;column:step_order" json:"stepOrder"`
	Title       string     `gorm:"not null;column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	SkillID     *uuid.UUID `gorm:"type:uuid;column:skill_id" json:"skillId,omitempty"`
	CourseID    *uuid.UUID `gorm:"type:uuid;column:course_id" json:"courseId,omitempty"`
	EstHours    int        `gorm:"not null;default:0;column:est_hours" json:"estHours"`
	Status      StepStatus `gorm:"not null;default:'Pending';column:status" json:"status"`
	Deadline    *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
}

func (RoadmapStep) TableName() string { return "roadmap_step" }
