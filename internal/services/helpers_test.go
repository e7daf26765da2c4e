package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// openTestDB migrates the full schema into an in-memory sqlite database.
// The pool is capped at one connection so every query sees the same
// in-memory instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&types.User{},
		&types.Skill{},
		&types.GapReport{},
		&types.SkillGap{},
		&types.Course{},
		&types.Roadmap{},
		&types.RoadmapStep{},
		&types.Curriculum{},
		&types.CurriculumModule{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Test Student",
		Role:     types.RoleStudent,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
