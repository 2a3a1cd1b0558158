package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"refernet/internal/domain/referral"
	"refernet/internal/domain/user"
	"refernet/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrReferralNotFound = errors.New("referral request not found")
	ErrForbidden        = errors.New("forbidden")
	ErrRoleNotSelected  = errors.New("role not selected")
)

type CreateReferralInput struct {
	// CounterpartUserID is the user on the other side of the marketplace:
	// the seeker a referrer proposes to, or the referrer a seeker asks.
	CounterpartUserID uuid.UUID
	Message           string
}

type UpdateReferralInput struct {
	TargetCompany *string
	Message       *string
	Status        *string
}

type ReferralUsecase interface {
	Create(ctx context.Context, actor user.User, in CreateReferralInput) (referral.Request, error)
	ListMine(ctx context.Context, actor user.User) ([]referral.Request, error)
	Update(ctx context.Context, actor user.User, id uuid.UUID, in UpdateReferralInput) (referral.Request, error)
}

type Referral struct {
	requests repository.ReferralRequestRepository
}

func NewReferralUsecase(requests repository.ReferralRequestRepository) *Referral {
	return &Referral{requests: requests}
}

// Create opens a referral request between the actor and the counterpart. The
// direction follows the actor's role; status is always pending, the target
// company starts as the TBD placeholder, and a blank message falls back to a
// templated default so it is never empty.
func (u *Referral) Create(ctx context.Context, actor user.User, in CreateReferralInput) (referral.Request, error) {
	if in.CounterpartUserID == uuid.Nil {
		return referral.Request{}, ErrInvalidInput
	}
	if in.CounterpartUserID == actor.ID {
		return referral.Request{}, ErrInvalidInput
	}

	req := referral.Request{
		ID:            uuid.New(),
		TargetCompany: referral.TargetCompanyTBD,
		Message:       strings.TrimSpace(in.Message),
		Status:        referral.StatusPending,
	}

	switch actor.Role {
	case user.RoleReferrer:
		req.JobSeekerID = in.CounterpartUserID
		req.ReferrerID = actor.ID
		if req.Message == "" {
			req.Message = fmt.Sprintf("%s has offered to refer you.", actor.FullName)
		}
	case user.RoleJobSeeker:
		req.JobSeekerID = actor.ID
		req.ReferrerID = in.CounterpartUserID
		if req.Message == "" {
			req.Message = fmt.Sprintf("%s is asking you for a referral.", actor.FullName)
		}
	default:
		return referral.Request{}, ErrRoleNotSelected
	}

	created, err := u.requests.Create(ctx, req)
	if err != nil {
		return referral.Request{}, ErrInternal
	}
	return created, nil
}

func (u *Referral) ListMine(ctx context.Context, actor user.User) ([]referral.Request, error) {
	var (
		out []referral.Request
		err error
	)
	switch actor.Role {
	case user.RoleJobSeeker:
		out, err = u.requests.ListByJobSeekerID(ctx, actor.ID)
	case user.RoleReferrer:
		out, err = u.requests.ListByReferrerID(ctx, actor.ID)
	default:
		return nil, ErrRoleNotSelected
	}
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Update lets a participant fill in the target company (created as TBD),
// adjust the message, or move the status along. Non-participants get 404
// semantics rather than a hint the request exists.
func (u *Referral) Update(ctx context.Context, actor user.User, id uuid.UUID, in UpdateReferralInput) (referral.Request, error) {
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReferralRequestNotFound) {
			return referral.Request{}, ErrReferralNotFound
		}
		return referral.Request{}, ErrInternal
	}

	if actor.ID != req.JobSeekerID && actor.ID != req.ReferrerID {
		return referral.Request{}, ErrReferralNotFound
	}

	if in.TargetCompany != nil {
		tc := strings.TrimSpace(*in.TargetCompany)
		if tc == "" {
			return referral.Request{}, ErrInvalidInput
		}
		req.TargetCompany = tc
	}
	if in.Message != nil {
		msg := strings.TrimSpace(*in.Message)
		if msg == "" {
			return referral.Request{}, ErrInvalidInput
		}
		req.Message = msg
	}
	if in.Status != nil {
		st := referral.Status(strings.TrimSpace(*in.Status))
		if !referral.ValidStatus(st) {
			return referral.Request{}, ErrInvalidInput
		}
		req.Status = st
	}

	updated, err := u.requests.Update(ctx, req)
	if err != nil {
		return referral.Request{}, ErrInternal
	}
	return updated, nil
}
