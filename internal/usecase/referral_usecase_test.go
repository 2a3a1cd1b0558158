package usecase

import (
	"context"
	"errors"
	"testing"

	"refernet/internal/domain/referral"
	"refernet/internal/domain/user"
	"refernet/internal/repository"

	"github.com/google/uuid"
)

func TestReferralCreate_SeekerAsksReferrer(t *testing.T) {
	repo := &mockRequestRepo{}
	uc := NewReferralUsecase(repo)
	actor := user.User{ID: uuid.New(), FullName: "Anna Petrova", Role: user.RoleJobSeeker}
	counterpart := uuid.New()

	req, err := uc.Create(context.Background(), actor, CreateReferralInput{CounterpartUserID: counterpart})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.JobSeekerID != actor.ID || req.ReferrerID != counterpart {
		t.Fatalf("wrong direction for job seeker actor: %+v", req)
	}
	if req.Status != referral.StatusPending {
		t.Fatalf("expected pending status, got %q", req.Status)
	}
	if req.TargetCompany != referral.TargetCompanyTBD {
		t.Fatalf("expected TBD target company, got %q", req.TargetCompany)
	}
	if req.Message == "" {
		t.Fatal("blank message must fall back to a default")
	}
}

func TestReferralCreate_ReferrerOffersSeeker(t *testing.T) {
	repo := &mockRequestRepo{}
	uc := NewReferralUsecase(repo)
	actor := user.User{ID: uuid.New(), FullName: "Ivan Sidorov", Role: user.RoleReferrer}
	counterpart := uuid.New()

	req, err := uc.Create(context.Background(), actor, CreateReferralInput{
		CounterpartUserID: counterpart,
		Message:           "Happy to refer you to my team",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.JobSeekerID != counterpart || req.ReferrerID != actor.ID {
		t.Fatalf("wrong direction for referrer actor: %+v", req)
	}
	if req.Message != "Happy to refer you to my team" {
		t.Fatalf("explicit message must be kept, got %q", req.Message)
	}
}

func TestReferralCreate_Invalid(t *testing.T) {
	uc := NewReferralUsecase(&mockRequestRepo{})
	actor := user.User{ID: uuid.New(), Role: user.RoleJobSeeker}

	if _, err := uc.Create(context.Background(), actor, CreateReferralInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil counterpart, got %v", err)
	}
	if _, err := uc.Create(context.Background(), actor, CreateReferralInput{CounterpartUserID: actor.ID}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for self-referral, got %v", err)
	}

	unset := user.User{ID: uuid.New()}
	if _, err := uc.Create(context.Background(), unset, CreateReferralInput{CounterpartUserID: uuid.New()}); !errors.Is(err, ErrRoleNotSelected) {
		t.Fatalf("expected ErrRoleNotSelected, got %v", err)
	}
}

func TestReferralUpdate_ParticipantOnly(t *testing.T) {
	seeker := uuid.New()
	referrer := uuid.New()
	repo := &mockRequestRepo{byID: referral.Request{
		ID:            uuid.New(),
		JobSeekerID:   seeker,
		ReferrerID:    referrer,
		TargetCompany: referral.TargetCompanyTBD,
		Status:        referral.StatusPending,
	}}
	uc := NewReferralUsecase(repo)

	outsider := user.User{ID: uuid.New(), Role: user.RoleReferrer}
	if _, err := uc.Update(context.Background(), outsider, repo.byID.ID, UpdateReferralInput{}); !errors.Is(err, ErrReferralNotFound) {
		t.Fatalf("outsider must see not-found, got %v", err)
	}

	company := "Yandex"
	status := "accepted"
	actor := user.User{ID: referrer, Role: user.RoleReferrer}
	updated, err := uc.Update(context.Background(), actor, repo.byID.ID, UpdateReferralInput{
		TargetCompany: &company,
		Status:        &status,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.TargetCompany != "Yandex" || updated.Status != referral.StatusAccepted {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestReferralUpdate_Rejections(t *testing.T) {
	seeker := uuid.New()
	repo := &mockRequestRepo{byID: referral.Request{
		ID:          uuid.New(),
		JobSeekerID: seeker,
		ReferrerID:  uuid.New(),
		Status:      referral.StatusPending,
	}}
	uc := NewReferralUsecase(repo)
	actor := user.User{ID: seeker, Role: user.RoleJobSeeker}

	blank := "   "
	if _, err := uc.Update(context.Background(), actor, repo.byID.ID, UpdateReferralInput{TargetCompany: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank target company must be rejected, got %v", err)
	}

	bogus := "archived"
	if _, err := uc.Update(context.Background(), actor, repo.byID.ID, UpdateReferralInput{Status: &bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}

	missing := &mockRequestRepo{byIDErr: repository.ErrReferralRequestNotFound}
	if _, err := NewReferralUsecase(missing).Update(context.Background(), actor, uuid.New(), UpdateReferralInput{}); !errors.Is(err, ErrReferralNotFound) {
		t.Fatalf("expected ErrReferralNotFound, got %v", err)
	}
}
