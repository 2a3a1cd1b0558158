package usecase

import (
	"context"
	"errors"
	"testing"

	"refernet/internal/domain/profile"

	"github.com/google/uuid"
)

func TestReferrerSaveMyProfile_CreateThenUpdate(t *testing.T) {
	userID := uuid.New()
	repo := &mockReferrerProfileRepo{byUser: map[uuid.UUID]profile.ReferrerProfile{}}
	uc := NewReferrerProfileUsecase(repo)

	created, err := uc.SaveMyProfile(context.Background(), userID, ReferrerProfileInput{
		CurrentCompany:    "Yandex",
		Position:          "Team Lead",
		CompaniesCanRefer: []string{"Yandex", "Yandex", "Sber"},
		ReferralFee:       0,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.created == nil {
		t.Fatal("first save must create")
	}
	if len(created.CompaniesCanRefer) != 2 {
		t.Fatalf("companies must be deduplicated, got %v", created.CompaniesCanRefer)
	}

	repo.byUser[userID] = created
	updated, err := uc.SaveMyProfile(context.Background(), userID, ReferrerProfileInput{
		CurrentCompany: "Sber",
		Position:       "Engineering Manager",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("second save must update in place")
	}
	if updated.ID != created.ID {
		t.Fatalf("update must keep the row id")
	}
}

func TestReferrerSaveMyProfile_NegativeFeeRejected(t *testing.T) {
	uc := NewReferrerProfileUsecase(&mockReferrerProfileRepo{})

	if _, err := uc.SaveMyProfile(context.Background(), uuid.New(), ReferrerProfileInput{ReferralFee: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative fee must be rejected, got %v", err)
	}
}

func TestReferrerSpecializationEdits(t *testing.T) {
	userID := uuid.New()
	repo := &mockReferrerProfileRepo{byUser: map[uuid.UUID]profile.ReferrerProfile{
		userID: {ID: uuid.New(), UserID: userID, Specializations: []string{"Backend"}, Status: profile.StatusActive},
	}}
	uc := NewReferrerProfileUsecase(repo)

	p, err := uc.AddSpecialization(context.Background(), userID, "Frontend")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Specializations) != 2 {
		t.Fatalf("unexpected specializations: %v", p.Specializations)
	}

	p, err = uc.AddSpecialization(context.Background(), userID, "Backend")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Specializations) != 2 {
		t.Fatalf("duplicate add must be a no-op: %v", p.Specializations)
	}

	p, err = uc.RemoveSpecialization(context.Background(), userID, "Backend")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Specializations) != 1 || p.Specializations[0] != "Frontend" {
		t.Fatalf("unexpected specializations after remove: %v", p.Specializations)
	}
}
