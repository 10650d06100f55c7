package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vytor/nerdeck/internal/errors"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
)

// UserService handles users and API token lookup
type UserService interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	newToken func() string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		newToken: func() string { return uuid.NewString() },
	}
}

func (s *userService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Debug("creating user: username=%s", username)

	if username == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("failed to look up user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewValidationError("username", "already taken")
	}

	user, err := s.userRepo.Create(ctx, username, s.newToken())
	if err != nil {
		log.Error("failed to create user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewUnauthorizedError()
	}

	user, err := s.userRepo.GetByToken(ctx, token)
	if err != nil {
		log.Error("failed to look up token: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		log.Debug("unknown api token")
		return nil, errors.NewUnauthorizedError()
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user: username=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", username)
	}
	return user, nil
}
