package types

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

type Course struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"not null;column:title" json:"title"`
	Provider      string         `gorm:"not null;column:provider" json:"provider"`
	Description   string         `gorm:"column:description" json:"description"`
	DurationWeeks int            `gorm:"not null;default:0;column:duration_weeks" json:"durationWeeks"`
	Price         float64        `gorm:"not null;default:0;column:price" json:"price"`
	Currency      string         `gorm:"not null;default:'USD';column:currency" json:"currency"`
	Level         CourseLevel    `gorm:"not null;default:'Beginner';column:level" json:"level"`
	Skills        datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	Rating        *float64       `gorm:"column:rating" json:"rating,omitempty"`
	URL           *string        `gorm:"column:url" json:"url,omitempty"`
}

func (Course) TableName() string { return "course" }

// IsFree reports whether the course is displayed as "Free".
func (c Course) IsFree() bool { return c.Price == 0 }

// SkillNames decodes the JSON skills column. A malformed column decodes to nil.
func (c Course) SkillNames() []string {
	if len(c.Skills) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(c.Skills, &names); err != nil {
		return nil
	}
	return names
}

// SkillList encodes skill names for the skills column.
func SkillList(names ...string) datatypes.JSON {
	b, _ := json.Marshal(names)
	return datatypes.JSON(b)
}
