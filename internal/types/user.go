package types

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleStudent   UserRole = "student"
	RoleCounselor UserRole = "counselor"
	RoleAdmin     UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password     string    `gorm:"not null;column:password" json:"-"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Role         UserRole  `gorm:"not null;default:'student';column:role" json:"role"`
	UniversityID *int      `gorm:"column:university_id" json:"universityId,omitempty"`
	ProgramID    *int      `gorm:"column:program_id" json:"programId,omitempty"`
	Year         *int      `gorm:"column:year" json:"year,omitempty"`
	WeeklyHours  *int      `gorm:"column:weekly_hours" json:"weeklyHours,omitempty"`
	TargetRole   *string   `gorm:"column:target_role" json:"targetRole,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }
