package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/requestdata"
	"github.com/skillbridge/skillbridge-backend/internal/types"
	"github.com/skillbridge/skillbridge-backend/internal/validation"
)

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, year *int, weeklyHours *int, targetRole *string) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}
	found, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, apperr.New(http.StatusNotFound, "user_not_found", apperr.ErrNotFound)
	}
	return found[0], nil
}

// UpdateProfile applies the onboarding fields. Each provided field is run
// through its validator; failures are collected per field, not thrown.
func (us *userService) UpdateProfile(ctx context.Context, year *int, weeklyHours *int, targetRole *string) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}

	fields := map[string]validation.Result{}
	if year != nil {
		fields["year"] = validation.ValidateYear(*year)
	}
	if weeklyHours != nil {
		fields["weeklyHours"] = validation.ValidateWeeklyHours(*weeklyHours)
	}
	if targetRole != nil {
		trimmed := strings.TrimSpace(*targetRole)
		targetRole = &trimmed
		fields["targetRole"] = validation.ValidateTargetRole(trimmed)
	}
	if fieldErrors := validation.Collect(fields); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	var out *types.User
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := us.userRepo.UpdateProfile(ctx, tx, rd.UserID, year, weeklyHours, targetRole); err != nil {
			return err
		}
		found, err := us.userRepo.GetByIDs(ctx, tx, []uuid.UUID{rd.UserID})
		if err != nil || len(found) == 0 {
			return fmt.Errorf("failed to reload user")
		}
		out = found[0]
		return nil
	}); err != nil {
		us.log.Warn("UpdateProfile transaction error:", "error", err)
		return nil, err
	}
	return out, nil
}
