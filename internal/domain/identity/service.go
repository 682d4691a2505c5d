package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

// ErrInvalidLogin covers both an unknown email and a wrong password so the
// response does not reveal which one failed.
var ErrInvalidLogin = errors.New("invalid email or password")

type Service struct {
	users Repository
}

func NewService(users Repository) *Service {
	return &Service{users: users}
}

// Signup registers a self-service account. The role is always user: staff
// roles are only ever assigned through the admin creation paths.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*UserProfile, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	return s.create(ctx, in, auth.RoleUser)
}

// CreateStaff registers a doctor or receptionist account on behalf of an
// administrator.
func (s *Service) CreateStaff(ctx context.Context, in SignupInput, role auth.Role) (*UserProfile, error) {
	if role != auth.RoleDoctor && role != auth.RoleReceptionist {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	return s.create(ctx, in, role)
}

func (s *Service) create(ctx context.Context, in SignupInput, role auth.Role) (*UserProfile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u := &UserProfile{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns the matching profile.
func (s *Service) Login(ctx context.Context, email, password string) (*UserProfile, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidLogin
	}
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidLogin
	}
	return u, nil
}

// ResolveRole looks up the stored role for a principal. It performs exactly
// one point read per call; results are never cached, so role changes take
// effect on the next request.
func (s *Service) ResolveRole(ctx context.Context, principalID uuid.UUID) (auth.Role, error) {
	if principalID == uuid.Nil {
		return "", ErrNotFound
	}
	u, err := s.users.GetByID(ctx, principalID)
	if err != nil {
		return "", err
	}
	role, ok := auth.ParseRole(string(u.Role))
	if !ok {
		return "", ErrNotFound
	}
	return role, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*UserProfile, error) {
	return s.users.ListAll(ctx)
}

// ListDoctors returns every doctor account, for the appointment booking form.
func (s *Service) ListDoctors(ctx context.Context) ([]*UserProfile, error) {
	return s.users.ListByRole(ctx, auth.RoleDoctor)
}

// UpdateUser applies a partial profile edit. The role is deliberately not
// editable here.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateInput) (*UserProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		u.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
