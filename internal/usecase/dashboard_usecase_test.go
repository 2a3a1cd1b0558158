package usecase

import (
	"context"
	"errors"
	"testing"

	"refernet/internal/domain/referral"
	"refernet/internal/domain/user"

	"github.com/google/uuid"
)

type mockRequestRepo struct {
	bySeeker   []referral.Request
	byReferrer []referral.Request
	err        error

	created *referral.Request
	updated *referral.Request
	byID    referral.Request
	byIDErr error
}

func (m *mockRequestRepo) Create(_ context.Context, req referral.Request) (referral.Request, error) {
	if m.err != nil {
		return referral.Request{}, m.err
	}
	m.created = &req
	return req, nil
}

func (m *mockRequestRepo) GetByID(context.Context, uuid.UUID) (referral.Request, error) {
	return m.byID, m.byIDErr
}

func (m *mockRequestRepo) Update(_ context.Context, req referral.Request) (referral.Request, error) {
	if m.err != nil {
		return referral.Request{}, m.err
	}
	m.updated = &req
	return req, nil
}

func (m *mockRequestRepo) ListByJobSeekerID(context.Context, uuid.UUID) ([]referral.Request, error) {
	return m.bySeeker, m.err
}

func (m *mockRequestRepo) ListByReferrerID(context.Context, uuid.UUID) ([]referral.Request, error) {
	return m.byReferrer, m.err
}

func TestDashboardStats_NoRequests(t *testing.T) {
	uc := NewDashboardUsecase(&mockRequestRepo{})
	actor := user.User{ID: uuid.New(), Role: user.RoleJobSeeker}

	stats, err := uc.Stats(context.Background(), actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Total != 0 || stats.SuccessRate != 0 {
		t.Fatalf("expected zeroes for empty history, got %+v", stats)
	}
	if len(stats.Cards) != 4 {
		t.Fatalf("expected 4 stat cards, got %d", len(stats.Cards))
	}
	if stats.Cards[3].Value != "0%" {
		t.Fatalf("expected 0%% success rate card, got %q", stats.Cards[3].Value)
	}
}

func TestDashboardStats_SuccessRate(t *testing.T) {
	reqs := []referral.Request{
		{Status: referral.StatusCompleted},
		{Status: referral.StatusPending},
		{Status: referral.StatusPending},
		{Status: referral.StatusRejected},
	}
	uc := NewDashboardUsecase(&mockRequestRepo{bySeeker: reqs})
	actor := user.User{ID: uuid.New(), Role: user.RoleJobSeeker}

	stats, err := uc.Stats(context.Background(), actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.Completed != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.SuccessRate != 25 {
		t.Fatalf("expected success rate 25, got %d", stats.SuccessRate)
	}
}

func TestDashboardStats_ReferrerUsesReferrerSide(t *testing.T) {
	repo := &mockRequestRepo{byReferrer: []referral.Request{{Status: referral.StatusPending}}}
	uc := NewDashboardUsecase(repo)
	actor := user.User{ID: uuid.New(), Role: user.RoleReferrer}

	stats, err := uc.Stats(context.Background(), actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Total != 1 || stats.Pending != 1 {
		t.Fatalf("expected referrer-side requests, got %+v", stats)
	}
}

func TestDashboardStats_RoleNotSelected(t *testing.T) {
	uc := NewDashboardUsecase(&mockRequestRepo{})
	actor := user.User{ID: uuid.New()}

	_, err := uc.Stats(context.Background(), actor)
	if !errors.Is(err, ErrRoleNotSelected) {
		t.Fatalf("expected ErrRoleNotSelected, got %v", err)
	}
}
