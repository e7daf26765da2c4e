package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/requestdata"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestGetMeRequiresAuth(t *testing.T) {
	db := openTestDB(t)
	log := testLogger()
	svc := NewUserService(db, log, repos.NewUserRepo(db, log))

	_, err := svc.GetMe(context.Background())
	var apiErr *apperr.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestUpdateProfile(t *testing.T) {
	db := openTestDB(t)
	log := testLogger()
	user := createTestUser(t, db, "profile@example.com")
	svc := NewUserService(db, log, repos.NewUserRepo(db, log))

	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID})

	updated, err := svc.UpdateProfile(ctx, intPtr(3), intPtr(10), strPtr("  iOS Developer  "))
	require.NoError(t, err)
	require.NotNil(t, updated.Year)
	assert.Equal(t, 3, *updated.Year)
	require.NotNil(t, updated.WeeklyHours)
	assert.Equal(t, 10, *updated.WeeklyHours)
	require.NotNil(t, updated.TargetRole)
	assert.Equal(t, "iOS Developer", *updated.TargetRole)

	me, err := svc.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, *me.Year)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := openTestDB(t)
	log := testLogger()
	user := createTestUser(t, db, "partial@example.com")
	svc := NewUserService(db, log, repos.NewUserRepo(db, log))
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID})

	_, err := svc.UpdateProfile(ctx, intPtr(2), nil, nil)
	require.NoError(t, err)

	// Fields not provided are left alone.
	updated, err := svc.UpdateProfile(ctx, nil, intPtr(8), nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Year)
	assert.Equal(t, 2, *updated.Year)
	require.NotNil(t, updated.WeeklyHours)
	assert.Equal(t, 8, *updated.WeeklyHours)
	assert.Nil(t, updated.TargetRole)
}

func TestUpdateProfileValidation(t *testing.T) {
	db := openTestDB(t)
	log := testLogger()
	user := createTestUser(t, db, "invalid@example.com")
	svc := NewUserService(db, log, repos.NewUserRepo(db, log))
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID})

	_, err := svc.UpdateProfile(ctx, intPtr(7), intPtr(41), strPtr("QA"))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Year must be between 1 and 6", vErr.Fields["year"])
	assert.Equal(t, "Weekly hours must be between 1 and 40", vErr.Fields["weeklyHours"])
	assert.Equal(t, "Target role must be at least 3 characters", vErr.Fields["targetRole"])

	// A failed update leaves the profile untouched.
	me, err := svc.GetMe(ctx)
	require.NoError(t, err)
	assert.Nil(t, me.Year)
}
