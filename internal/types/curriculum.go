package types

import (
	"time"

	"github.com/google/uuid"
)

type CurriculumStatus string

const (
	CurriculumStatusPending   CurriculumStatus = "Pending"
	CurriculumStatusParsing   CurriculumStatus = "Parsing"
	CurriculumStatusCompleted CurriculumStatus = "Completed"
	CurriculumStatusFailed    CurriculumStatus = "Failed"
)

type CurriculumSource string

const (
	CurriculumSourceUpload   CurriculumSource = "Upload"
	CurriculumSourceTemplate CurriculumSource = "Template"
	CurriculumSourceManual   CurriculumSource = "Manual"
)

type Curriculum struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"userId"`
	User      *User              `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title     string             `gorm:"not null;column:title" json:"title"`
	Status    CurriculumStatus   `gorm:"not null;default:'Pending';column:status" json:"status"`
	Source    CurriculumSource   `gorm:"not null;column:source" json:"source"`
	Modules   []CurriculumModule `gorm:"constraint:OnDelete:CASCADE;foreignKey:CurriculumID;references:ID" json:"modules"`
	CreatedAt time.Time          `gorm:"not null" json:"createdAt"`
}

func (Curriculum) TableName() string { return "curriculum" }

type CurriculumModule struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CurriculumID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title         string    `gorm:"not null;column:title" json:"title"`
	Description   string    `gorm:"column:description" json:"description"`
	HoursEstimate int       `gorm:"not null;default:0;column:hours_estimate" json:"hoursEstimate"`
	OrderIdx      int       `gorm:"not null;default:0;column:order_idx" json:"orderIdx"`
}

func (CurriculumModule) TableName() string { return "curriculum_module" }
