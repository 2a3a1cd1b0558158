package usecase

import (
	"context"
	"errors"

	"refernet/internal/domain/profile"
	"refernet/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// JobSeekerProfileInput is the full draft the editor submits. Numeric fields
// arrive already coerced (blank and non-numeric text parse to 0 at the
// delivery boundary); negatives are rejected here.
type JobSeekerProfileInput struct {
	TargetCompanies []string
	Skills          []string
	ExperienceYears int
	DesiredSalary   int
	CurrentPosition string
	Bio             string
	ResumeURL       *string
	Status          string
}

type JobSeekerProfileUsecase interface {
	// GetMyProfile returns the stored profile, or a default-empty draft with
	// found=false when the user has none yet.
	GetMyProfile(ctx context.Context, userID uuid.UUID) (profile.JobSeekerProfile, bool, error)
	SaveMyProfile(ctx context.Context, userID uuid.UUID, in JobSeekerProfileInput) (profile.JobSeekerProfile, error)
	AddTargetCompany(ctx context.Context, userID uuid.UUID, company string) (profile.JobSeekerProfile, error)
	RemoveTargetCompany(ctx context.Context, userID uuid.UUID, company string) (profile.JobSeekerProfile, error)
	AddSkill(ctx context.Context, userID uuid.UUID, skill string) (profile.JobSeekerProfile, error)
	RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) (profile.JobSeekerProfile, error)
}

type JobSeekerProfile struct {
	repo repository.JobSeekerProfileRepository
}

func NewJobSeekerProfileUsecase(repo repository.JobSeekerProfileRepository) *JobSeekerProfile {
	return &JobSeekerProfile{repo: repo}
}

func defaultJobSeekerProfile(userID uuid.UUID) profile.JobSeekerProfile {
	return profile.JobSeekerProfile{
		UserID:          userID,
		TargetCompanies: []string{},
		Skills:          []string{},
		Status:          profile.StatusActive,
	}
}

func (u *JobSeekerProfile) GetMyProfile(ctx context.Context, userID uuid.UUID) (profile.JobSeekerProfile, bool, error) {
	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJobSeekerProfileNotFound) {
			return defaultJobSeekerProfile(userID), false, nil
		}
		return profile.JobSeekerProfile{}, false, ErrInternal
	}
	return p, true, nil
}

// SaveMyProfile is the query-then-create-or-update submit: an existing row is
// updated in place, otherwise a new one is created. Either way the persisted
// row is returned so the caller can resynchronize its draft.
func (u *JobSeekerProfile) SaveMyProfile(ctx context.Context, userID uuid.UUID, in JobSeekerProfileInput) (profile.JobSeekerProfile, error) {
	if in.ExperienceYears < 0 || in.DesiredSalary < 0 {
		return profile.JobSeekerProfile{}, ErrInvalidInput
	}

	status := profile.Status(in.Status)
	if status == "" {
		status = profile.StatusActive
	}
	if status != profile.StatusActive && status != profile.StatusInactive {
		return profile.JobSeekerProfile{}, ErrInvalidInput
	}

	existing, err := u.repo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrJobSeekerProfileNotFound) {
		return profile.JobSeekerProfile{}, ErrInternal
	}

	draft := profile.JobSeekerProfile{
		UserID:          userID,
		TargetCompanies: profile.DedupeTags(in.TargetCompanies),
		Skills:          profile.DedupeTags(in.Skills),
		ExperienceYears: in.ExperienceYears,
		DesiredSalary:   in.DesiredSalary,
		CurrentPosition: in.CurrentPosition,
		Bio:             in.Bio,
		ResumeURL:       in.ResumeURL,
		Status:          status,
	}

	if errors.Is(err, repository.ErrJobSeekerProfileNotFound) {
		draft.ID = uuid.New()
		created, err := u.repo.Create(ctx, draft)
		if err != nil {
			return profile.JobSeekerProfile{}, ErrInternal
		}
		return created, nil
	}

	draft.ID = existing.ID
	updated, err := u.repo.Update(ctx, draft)
	if err != nil {
		return profile.JobSeekerProfile{}, ErrInternal
	}
	return updated, nil
}

func (u *JobSeekerProfile) AddTargetCompany(ctx context.Context, userID uuid.UUID, company string) (profile.JobSeekerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.JobSeekerProfile) {
		p.TargetCompanies = profile.AddTag(p.TargetCompanies, company)
	})
}

func (u *JobSeekerProfile) RemoveTargetCompany(ctx context.Context, userID uuid.UUID, company string) (profile.JobSeekerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.JobSeekerProfile) {
		p.TargetCompanies = profile.RemoveTag(p.TargetCompanies, company)
	})
}

func (u *JobSeekerProfile) AddSkill(ctx context.Context, userID uuid.UUID, skill string) (profile.JobSeekerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.JobSeekerProfile) {
		p.Skills = profile.AddTag(p.Skills, skill)
	})
}

func (u *JobSeekerProfile) RemoveSkill(ctx context.Context, userID uuid.UUID, skill string) (profile.JobSeekerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.JobSeekerProfile) {
		p.Skills = profile.RemoveTag(p.Skills, skill)
	})
}

// mutateTags applies an idempotent tag edit to the stored profile, creating a
// default-empty one first when the user has none (the editor's load-or-create
// shape).
func (u *JobSeekerProfile) mutateTags(ctx context.Context, userID uuid.UUID, mutate func(*profile.JobSeekerProfile)) (profile.JobSeekerProfile, error) {
	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrJobSeekerProfileNotFound) {
			return profile.JobSeekerProfile{}, ErrInternal
		}
		p = defaultJobSeekerProfile(userID)
		p.ID = uuid.New()
		mutate(&p)
		created, err := u.repo.Create(ctx, p)
		if err != nil {
			return profile.JobSeekerProfile{}, ErrInternal
		}
		return created, nil
	}

	mutate(&p)
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return profile.JobSeekerProfile{}, ErrInternal
	}
	return updated, nil
}
