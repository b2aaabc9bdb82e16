package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "carmarket/internal/errors"
	"carmarket/internal/models"
	"carmarket/internal/repository"
	"carmarket/pkg/auth"
)

// LoginResult carries the session token and the identity returned to the client.
type LoginResult struct {
	Token string
	User  models.UserSummary
}

// AuthService handles signup and login.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Signup creates a new account. The email is stored exactly as given.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) error {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.ErrMissingFields
	}
	if len(req.Password) > auth.MaxPasswordLength {
		return fmt.Errorf("%w: password longer than %d bytes", apperrors.ErrInvalidBody, auth.MaxPasswordLength)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FullName:  req.FullName,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	return s.userRepo.Create(ctx, user)
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := auth.Identity{
		UserID:   user.ID.Hex(),
		Email:    user.Email,
		FullName: user.FullName,
	}
	token, err := s.jwtManager.GenerateToken(identity)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User: models.UserSummary{
			ID:       identity.UserID,
			Email:    identity.Email,
			FullName: identity.FullName,
		},
	}, nil
}
