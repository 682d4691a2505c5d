package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

// UserProfile maps to the users table. The storage id doubles as the
// authentication principal id carried in the token subject.
type UserProfile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	Address      *string   `db:"address" json:"address,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         auth.Role `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SignupInput is the self-service registration payload. Role is not part of
// it: self-registered accounts are always plain users.
type SignupInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// UpdateInput carries a partial profile update. Nil fields are left untouched.
type UpdateInput struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
