package user

import (
	"context"

	domain "tcp-user-service/internal/domain/user"
)

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error)
	GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error)
	ListUsers(ctx context.Context) (*ListUsersResponse, error)
}

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)   // Insert a new user, store assigns the id
	GetByID(ctx context.Context, id int64) (*domain.User, error) // Retrieve user by ID
	List(ctx context.Context) ([]domain.User, error)             // Retrieve all users
	Update(ctx context.Context, u *domain.User) error            // Update name/email of an existing user
	Delete(ctx context.Context, id int64) (int64, error)         // Delete user by ID, reporting affected rows
}

// Provider hands out a Repository bound to a store connection for the
// duration of one request. The returned release func must be called at
// handler return; the default implementation opens a fresh connection
// per Acquire, a pooled implementation may hand out a shared one.
type Provider interface {
	Acquire(ctx context.Context) (Repository, func(), error)
}
