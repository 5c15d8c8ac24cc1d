package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/app/repositories"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
	"github.com/yigit/studenthub/internal/pkg/auth"
)

type authService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user account with a bcrypt-hashed password and returns
// the public projection. The role defaults to "user"; only an explicit
// "admin" registers an administrator.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*models.PublicUser, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Please provide username and password")
	}

	role := models.RoleUser
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Username: req.Username,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")

	public := user.Public()
	return &public, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords fail identically so usernames cannot be enumerated.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Please provide username and password")
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("User logged in")

	return &dto.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}
