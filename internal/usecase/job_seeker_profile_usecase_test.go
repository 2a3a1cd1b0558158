package usecase

import (
	"context"
	"errors"
	"testing"

	"refernet/internal/domain/profile"

	"github.com/google/uuid"
)

func TestJobSeekerGetMyProfile_DefaultDraft(t *testing.T) {
	uc := NewJobSeekerProfileUsecase(&mockSeekerProfileRepo{})
	userID := uuid.New()

	p, found, err := uc.GetMyProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if found {
		t.Fatal("expected found=false for a user without a profile")
	}
	if p.UserID != userID || p.Status != profile.StatusActive {
		t.Fatalf("unexpected default draft: %+v", p)
	}
	if p.TargetCompanies == nil || p.Skills == nil {
		t.Fatal("default draft must carry empty, non-nil tag lists")
	}
}

func TestJobSeekerSaveMyProfile_CreatesWhenAbsent(t *testing.T) {
	repo := &mockSeekerProfileRepo{}
	uc := NewJobSeekerProfileUsecase(repo)
	userID := uuid.New()

	saved, err := uc.SaveMyProfile(context.Background(), userID, JobSeekerProfileInput{
		Skills:          []string{"Go", "go ", "Go", "SQL"},
		ExperienceYears: 3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected a create, not an update")
	}
	if repo.updated != nil {
		t.Fatal("update must not run on first save")
	}
	// dedupe keeps first-seen spelling and order
	if len(saved.Skills) != 3 || saved.Skills[0] != "Go" || saved.Skills[2] != "SQL" {
		t.Fatalf("unexpected skills after dedupe: %v", saved.Skills)
	}
	if saved.Status != profile.StatusActive {
		t.Fatalf("blank status must default to active, got %q", saved.Status)
	}
}

func TestJobSeekerSaveMyProfile_UpdatesExistingRow(t *testing.T) {
	userID := uuid.New()
	existingID := uuid.New()
	repo := &mockSeekerProfileRepo{byUser: map[uuid.UUID]profile.JobSeekerProfile{
		userID: {ID: existingID, UserID: userID, Status: profile.StatusActive},
	}}
	uc := NewJobSeekerProfileUsecase(repo)

	saved, err := uc.SaveMyProfile(context.Background(), userID, JobSeekerProfileInput{
		CurrentPosition: "Senior Backend Developer",
		Status:          "inactive",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updated == nil || repo.created != nil {
		t.Fatal("existing row must be updated in place")
	}
	if saved.ID != existingID {
		t.Fatalf("update must keep the existing row id, got %s", saved.ID)
	}
	if saved.Status != profile.StatusInactive {
		t.Fatalf("expected inactive status, got %q", saved.Status)
	}
}

func TestJobSeekerSaveMyProfile_Validation(t *testing.T) {
	uc := NewJobSeekerProfileUsecase(&mockSeekerProfileRepo{})
	userID := uuid.New()

	if _, err := uc.SaveMyProfile(context.Background(), userID, JobSeekerProfileInput{ExperienceYears: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative experience must be rejected, got %v", err)
	}
	if _, err := uc.SaveMyProfile(context.Background(), userID, JobSeekerProfileInput{DesiredSalary: -100}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative salary must be rejected, got %v", err)
	}
	if _, err := uc.SaveMyProfile(context.Background(), userID, JobSeekerProfileInput{Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}
}

func TestJobSeekerAddSkill_CreatesDefaultProfile(t *testing.T) {
	repo := &mockSeekerProfileRepo{}
	uc := NewJobSeekerProfileUsecase(repo)

	p, err := uc.AddSkill(context.Background(), uuid.New(), "Go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.created == nil {
		t.Fatal("tag edit without a profile must create one")
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", p.Skills)
	}
}

func TestJobSeekerTagEdits_Idempotent(t *testing.T) {
	userID := uuid.New()
	repo := &mockSeekerProfileRepo{byUser: map[uuid.UUID]profile.JobSeekerProfile{
		userID: {ID: uuid.New(), UserID: userID, TargetCompanies: []string{"Yandex"}, Status: profile.StatusActive},
	}}
	uc := NewJobSeekerProfileUsecase(repo)

	p, err := uc.AddTargetCompany(context.Background(), userID, "Yandex")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.TargetCompanies) != 1 {
		t.Fatalf("duplicate tag must not be added twice: %v", p.TargetCompanies)
	}

	p, err = uc.RemoveTargetCompany(context.Background(), userID, "Sber")
	if err != nil {
		t.Fatalf("removing an absent tag must be a no-op, got %v", err)
	}
	if len(p.TargetCompanies) != 1 {
		t.Fatalf("unexpected tags: %v", p.TargetCompanies)
	}
}
