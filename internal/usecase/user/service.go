package user

import (
	"context"
	"errors"
	"strings"

	"refernet/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateMeInput is the registration payload: the chosen role plus the
// supplementary contact fields. Empty optional fields are allowed; the role
// must parse to a known variant when present.
type UpdateMeInput struct {
	UserType    *string
	Phone       *string
	LinkedinURL *string
	Location    *string
	FullName    *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitize(u), nil
}

func (s *Service) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}

	if in.UserType != nil {
		role, err := user.ParseRole(*in.UserType)
		if err != nil {
			return user.User{}, ErrInvalidInput
		}
		u.Role = role
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.LinkedinURL != nil {
		u.LinkedinURL = strings.TrimSpace(*in.LinkedinURL)
	}
	if in.Location != nil {
		u.Location = strings.TrimSpace(*in.Location)
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		u.FullName = name
	}

	if err := s.users.Update(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitize(updated), nil
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
