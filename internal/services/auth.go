package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/requestdata"
	"github.com/skillbridge/skillbridge-backend/internal/types"
	"github.com/skillbridge/skillbridge-backend/internal/validation"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email, password, name string) (string, *types.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, email, password, name string) (string, *types.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	fieldErrors := validation.Collect(map[string]validation.Result{
		"email":    validation.ValidateEmail(email),
		"password": validation.ValidatePassword(password),
		"name":     validation.ValidateName(name),
	})
	if len(fieldErrors) > 0 {
		return "", nil, &ValidationError{Fields: fieldErrors}
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return "", nil, fmt.Errorf("Failed to check user email: %w", err)
	}
	if exists {
		return "", nil, apperr.New(http.StatusBadRequest, "email_in_use", fmt.Errorf("Email is already in use"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("Failed to hash password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Role:     types.RoleStudent,
	}

	var token string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := as.userRepo.Create(ctx, tx, []*types.User{user}); cErr != nil {
			return fmt.Errorf("Failed to create user in postgres: %w", cErr)
		}
		tok, gErr := as.generateAccessToken(user)
		if gErr != nil {
			return fmt.Errorf("Generate access token error: %w", gErr)
		}
		token = tok
		return nil
	}); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, *types.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", nil, apperr.New(http.StatusBadRequest, "email_required", fmt.Errorf("Email is required to login"))
	}
	if password == "" {
		return "", nil, apperr.New(http.StatusBadRequest, "password_required", fmt.Errorf("Password is required to login"))
	}

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return "", nil, fmt.Errorf("Error retrieving user by email: %w", err)
	}
	if user == nil {
		return "", nil, apperr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("Invalid credentials"))
	}
	if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
		return "", nil, apperr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("Invalid credentials"))
	}

	token, gErr := as.generateAccessToken(user)
	if gErr != nil {
		return "", nil, fmt.Errorf("Generate access token error: %w", gErr)
	}
	return token, user, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return ctx, apperr.New(http.StatusUnauthorized, "invalid_token", fmt.Errorf("Invalid or expired token"))
	}
	sub, _ := claims["sub"].(string)
	userID, uErr := uuid.Parse(sub)
	if uErr != nil {
		return ctx, apperr.New(http.StatusUnauthorized, "invalid_token", fmt.Errorf("Invalid token subject"))
	}
	rd := &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// ValidationError carries per-field messages; it is never thrown past the
// handler layer, which renders the mapping as-is.
type ValidationError struct {
	Fields map[string]string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(ve.Fields))
}
