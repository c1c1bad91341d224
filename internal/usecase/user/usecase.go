package user

import (
	"context"

	"go.uber.org/zap"

	domain "tcp-user-service/internal/domain/user"
	apperrors "tcp-user-service/pkg/errors"
)

// Service implements the business logic for user management operations.
// Every operation acquires exactly one store connection from the provider
// and releases it before returning, success or failure. Each operation is
// an ordered sequence of fallible steps short-circuiting on the first
// failure; the transport layer collapses the resulting error kinds onto
// the wire responses.
type Service struct {
	provider Provider    // Store connection provider
	log      *zap.Logger // Logger for structured logging
}

// New creates a new instance of Service with the provided connection
// provider and logger.
func New(p Provider, log *zap.Logger) *Service {
	return &Service{provider: p, log: log}
}

// CreateUser inserts a new user; the store assigns the id.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	repo, release, err := s.provider.Acquire(ctx)
	if err != nil {
		s.log.Error("failed to acquire store connection", zap.Error(err))
		return nil, apperrors.NewStoreConnectError(err)
	}
	defer release()

	id, err := repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return &CreateUserResponse{ID: id}, nil
}

// UpdateUser updates name and email of an existing user. The id is
// immutable and only selects the row.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	repo, release, err := s.provider.Acquire(ctx)
	if err != nil {
		s.log.Error("failed to acquire store connection", zap.Error(err))
		return nil, apperrors.NewStoreConnectError(err)
	}
	defer release()

	if err := repo.Update(ctx, &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
	}); err != nil {
		s.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateUserResponse{ID: in.ID}, nil
}

// DeleteUser deletes a user by id. Zero affected rows means the user did
// not exist, which is surfaced as a not-found error; the row count is
// cheaply available so this is the one finer-grained domain failure.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	repo, release, err := s.provider.Acquire(ctx)
	if err != nil {
		s.log.Error("failed to acquire store connection", zap.Error(err))
		return nil, apperrors.NewStoreConnectError(err)
	}
	defer release()

	affected, err := repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if affected == 0 {
		s.log.Warn("user not found on delete", zap.Int64("id", in.ID))
		return nil, apperrors.ErrUserNotFound
	}

	return &DeleteUserResponse{ID: in.ID}, nil
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	repo, release, err := s.provider.Acquire(ctx)
	if err != nil {
		s.log.Error("failed to acquire store connection", zap.Error(err))
		return nil, apperrors.NewStoreConnectError(err)
	}
	defer release()

	u, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Warn("user not found", zap.Int64("id", in.ID))
		} else {
			s.log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		}
		return nil, err
	}

	return &GetUserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

// ListUsers retrieves all users. An empty table yields an empty, non-nil
// slice so the wire encoding stays a JSON array.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	s.log.Debug("listing users")

	repo, release, err := s.provider.Acquire(ctx)
	if err != nil {
		s.log.Error("failed to acquire store connection", zap.Error(err))
		return nil, apperrors.NewStoreConnectError(err)
	}
	defer release()

	domainUsers, err := repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Email: du.Email,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}
