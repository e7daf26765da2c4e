package client

import (
	"time"

	"github.com/google/uuid"
)

// Wire models mirror the backend's JSON responses. Derived values (gap,
// progress) arrive precomputed from the server.

type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Year        *int      `json:"year,omitempty"`
	WeeklyHours *int      `json:"weeklyHours,omitempty"`
	TargetRole  *string   `json:"targetRole,omitempty"`
}

type SkillGap struct {
	ID            uuid.UUID `json:"id"`
	SkillID       uuid.UUID `json:"skillId"`
	SkillName     string    `json:"skillName"`
	CurrentLevel  float64   `json:"currentLevel"`
	RequiredLevel float64   `json:"requiredLevel"`
	Priority      string    `json:"priority"`
	Gap           float64   `json:"gap"`
}

type GapReport struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	ReadinessScore float64    `json:"readinessScore"`
	SkillGaps      []SkillGap `json:"skillGaps"`
	GeneratedAt    time.Time  `json:"generatedAt"`
}

type Course struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Provider      string    `json:"provider"`
	Description   string    `json:"description"`
	DurationWeeks int       `json:"durationWeeks"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Level         string    `json:"level"`
	Skills        []string  `json:"skills"`
	Rating        *float64  `json:"rating,omitempty"`
	URL           *string   `json:"url,omitempty"`
}

type RoadmapStep struct {
	ID          uuid.UUID  `json:"id"`
	StepOrder   int        `json:"stepOrder"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SkillID     *uuid.UUID `json:"skillId,omitempty"`
	CourseID    *uuid.UUID `json:"courseId,omitempty"`
	EstHours    int        `json:"estHours"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type Roadmap struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"userId"`
	Title               string        `json:"title"`
	Status              string        `json:"status"`
	EstimatedTotalHours int           `json:"estimatedTotalHours"`
	Steps               []RoadmapStep `json:"steps"`
	Progress            float64       `json:"progress"`
	CreatedAt           time.Time     `json:"createdAt"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	ExpiresIn int    `json:"expires_in"`
}
