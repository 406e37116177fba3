package userservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uptrace/bun"

	userdb "github.com/campusclubs/clubhub/app/modules/user/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/observability"
)

// Service defines the user directory operations.
type Service interface {
	CreateUser(ctx context.Context, name, email string) (int64, error)
	GetUser(ctx context.Context, userID int64) (*userdb.User, error)
	ListUsers(ctx context.Context) ([]userdb.User, error)
}

// UserService implements the Service interface.
type UserService struct {
	repo   userdb.Repository
	logger *slog.Logger
	db     *bun.DB
}

// NewUserService creates a new UserService.
func NewUserService(repo userdb.Repository, logger *slog.Logger, db *bun.DB) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{repo: repo, logger: logger, db: db}
}

// CreateUser adds a directory entry. This is an administrative path; there
// is no self-service registration in this service.
func (s *UserService) CreateUser(ctx context.Context, name, email string) (int64, error) {
	if name == "" || email == "" {
		return 0, apperrors.Validation("name and email are required")
	}

	user := &userdb.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, nil, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return 0, apperrors.Conflict("A user with this email already exists")
		}
		s.logger.ErrorContext(ctx, "failed to create user",
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		return 0, apperrors.TransactionFailure("failed to create user", err)
	}
	return user.ID, nil
}

// GetUser retrieves a directory entry.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*userdb.User, error) {
	user, err := s.repo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		s.logger.ErrorContext(ctx, "failed to get user",
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		return nil, apperrors.TransactionFailure("failed to get user", err)
	}
	return user, nil
}

// ListUsers retrieves all directory entries.
func (s *UserService) ListUsers(ctx context.Context) ([]userdb.User, error) {
	users, err := s.repo.List(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		return nil, apperrors.TransactionFailure("failed to list users", err)
	}
	return users, nil
}
