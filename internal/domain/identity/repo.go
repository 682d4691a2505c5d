package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailInUse = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u *UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	ListAll(ctx context.Context) ([]*UserProfile, error)
	ListByRole(ctx context.Context, role auth.Role) ([]*UserProfile, error)
	Update(ctx context.Context, u *UserProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
