package usecase

import (
	"context"
	"errors"
	"fmt"

	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, userID int64) (*domain.User, error)
}

type userService struct {
	logger pkglog.Logger
	users  repo.UserRepository
}

func NewUserService(logger pkglog.Logger, users repo.UserRepository) UserService {
	return &userService{logger: logger, users: users}
}

func (s *userService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) Delete(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", userID).Msg("user deleted")
	return user, nil
}
