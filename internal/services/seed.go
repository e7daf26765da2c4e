package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

// SeedService loads the static catalog reference data on first boot.
type SeedService struct {
	db         *gorm.DB
	log        *logger.Logger
	skillRepo  repos.SkillRepo
	courseRepo repos.CourseRepo
}

func NewSeedService(db *gorm.DB, log *logger.Logger, skillRepo repos.SkillRepo, courseRepo repos.CourseRepo) *SeedService {
	serviceLog := log.With("service", "SeedService")
	return &SeedService{db: db, log: serviceLog, skillRepo: skillRepo, courseRepo: courseRepo}
}

func (ss *SeedService) SeedIfEmpty(ctx context.Context) error {
	count, err := ss.courseRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("error counting courses: %w", err)
	}
	if count > 0 {
		ss.log.Debug("Catalog already seeded", "courses", count)
		return nil
	}
	ss.log.Info("Seeding catalog reference data...")
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.skillRepo.Create(ctx, tx, seedSkills()); err != nil {
			return fmt.Errorf("error seeding skills: %w", err)
		}
		if _, err := ss.courseRepo.Create(ctx, tx, seedCourses()); err != nil {
			return fmt.Errorf("error seeding courses: %w", err)
		}
		return nil
	})
}

func seedSkills() []*types.Skill {
	mk := func(name string, category types.SkillCategory) *types.Skill {
		return &types.Skill{ID: uuid.New(), Name: name, Category: category}
	}
	return []*types.Skill{
		mk("Swift", types.SkillCategoryTechnical),
		mk("SwiftUI", types.SkillCategoryTechnical),
		mk("UIKit", types.SkillCategoryTechnical),
		mk("Git", types.SkillCategoryTechnical),
		mk("Testing", types.SkillCategoryTechnical),
		mk("UI Design", types.SkillCategoryDesign),
		mk("Prototyping", types.SkillCategoryDesign),
		mk("Product Thinking", types.SkillCategoryBusiness),
		mk("Communication", types.SkillCategorySoft),
	}
}

func seedCourses() []*types.Course {
	rating := func(v float64) *float64 { return &v }
	link := func(u string) *string { return &u }
	return []*types.Course{
		{
			ID:            uuid.New(),
			Title:         "iOS Development with SwiftUI",
			Provider:      "Apple",
			Description:   "Learn iOS development using SwiftUI framework",
			DurationWeeks: 8,
			Price:         0,
			Currency:      "USD",
			Level:         types.CourseLevelBeginner,
			Skills:        types.SkillList("Swift", "SwiftUI", "iOS"),
			Rating:        rating(4.8),
			URL:           link("https://developer.apple.com/swiftui"),
		},
		{
			ID:            uuid.New(),
			Title:         "Advanced Swift Programming",
			Provider:      "Udemy",
			Description:   "Master advanced Swift concepts",
			DurationWeeks: 6,
			Price:         49.99,
			Currency:      "USD",
			Level:         types.CourseLevelIntermediate,
			Skills:        types.SkillList("Swift", "iOS"),
			Rating:        rating(4.6),
			URL:           link("https://udemy.com/swift"),
		},
		{
			ID:            uuid.New(),
			Title:         "Swift Fundamentals",
			Provider:      "Coursera",
			Description:   "Language basics for new iOS developers",
			DurationWeeks: 2,
			Price:         0,
			Currency:      "USD",
			Level:         types.CourseLevelBeginner,
			Skills:        types.SkillList("Swift"),
			Rating:        rating(4.5),
		},
		{
			ID:            uuid.New(),
			Title:         "Unit Testing for iOS",
			Provider:      "raywenderlich",
			Description:   "XCTest, mocks, and CI pipelines for iOS apps",
			DurationWeeks: 3,
			Price:         59,
			Currency:      "USD",
			Level:         types.CourseLevelIntermediate,
			Skills:        types.SkillList("Testing", "CI/CD"),
			Rating:        rating(4.4),
		},
		{
			ID:            uuid.New(),
			Title:         "Architecting with MVVM",
			Provider:      "Udemy",
			Description:   "Scalable app architecture with MVVM and Combine",
			DurationWeeks: 5,
			Price:         129,
			Currency:      "USD",
			Level:         types.CourseLevelAdvanced,
			Skills:        types.SkillList("MVVM", "Swift"),
			Rating:        rating(4.7),
		},
	}
}
