package usecase

import (
	"context"
	"errors"

	"refernet/internal/domain/user"
	useruc "refernet/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in useruc.UpdateMeInput) (user.User, error)
	Navigation(ctx context.Context, userID uuid.UUID) ([]useruc.NavItem, user.User, error)
}

type User struct {
	svc *useruc.Service
}

func NewUserUsecase(users user.Repository) *User {
	return &User{svc: useruc.NewService(users)}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.svc.GetMe(ctx, userID)
}

func (u *User) UpdateMe(ctx context.Context, userID uuid.UUID, in useruc.UpdateMeInput) (user.User, error) {
	return u.svc.UpdateMe(ctx, userID, in)
}

// Navigation resolves the shell menu for the user's role along with the
// session display fields the shell renders next to it.
func (u *User) Navigation(ctx context.Context, userID uuid.UUID) ([]useruc.NavItem, user.User, error) {
	usr, err := u.svc.GetMe(ctx, userID)
	if err != nil {
		return nil, user.User{}, err
	}

	items, err := useruc.Navigation(usr)
	if err != nil {
		if errors.Is(err, useruc.ErrRoleNotSelected) {
			return nil, user.User{}, ErrRoleNotSelected
		}
		return nil, user.User{}, ErrInternal
	}
	return items, usr, nil
}
