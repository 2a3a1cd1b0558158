package usecase

import (
	"context"
	"errors"

	"refernet/internal/domain/profile"
	"refernet/internal/repository"

	"github.com/google/uuid"
)

type ReferrerProfileInput struct {
	CurrentCompany    string
	Position          string
	CompaniesCanRefer []string
	Specializations   []string
	Bio               string
	ReferralFee       int
	Status            string
}

type ReferrerProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (profile.ReferrerProfile, bool, error)
	SaveMyProfile(ctx context.Context, userID uuid.UUID, in ReferrerProfileInput) (profile.ReferrerProfile, error)
	AddCompany(ctx context.Context, userID uuid.UUID, company string) (profile.ReferrerProfile, error)
	RemoveCompany(ctx context.Context, userID uuid.UUID, company string) (profile.ReferrerProfile, error)
	AddSpecialization(ctx context.Context, userID uuid.UUID, spec string) (profile.ReferrerProfile, error)
	RemoveSpecialization(ctx context.Context, userID uuid.UUID, spec string) (profile.ReferrerProfile, error)
}

type ReferrerProfile struct {
	repo repository.ReferrerProfileRepository
}

func NewReferrerProfileUsecase(repo repository.ReferrerProfileRepository) *ReferrerProfile {
	return &ReferrerProfile{repo: repo}
}

func defaultReferrerProfile(userID uuid.UUID) profile.ReferrerProfile {
	return profile.ReferrerProfile{
		UserID:            userID,
		CompaniesCanRefer: []string{},
		Specializations:   []string{},
		Status:            profile.StatusActive,
	}
}

func (u *ReferrerProfile) GetMyProfile(ctx context.Context, userID uuid.UUID) (profile.ReferrerProfile, bool, error) {
	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReferrerProfileNotFound) {
			return defaultReferrerProfile(userID), false, nil
		}
		return profile.ReferrerProfile{}, false, ErrInternal
	}
	return p, true, nil
}

func (u *ReferrerProfile) SaveMyProfile(ctx context.Context, userID uuid.UUID, in ReferrerProfileInput) (profile.ReferrerProfile, error) {
	if in.ReferralFee < 0 {
		return profile.ReferrerProfile{}, ErrInvalidInput
	}

	status := profile.Status(in.Status)
	if status == "" {
		status = profile.StatusActive
	}
	if status != profile.StatusActive && status != profile.StatusInactive {
		return profile.ReferrerProfile{}, ErrInvalidInput
	}

	existing, err := u.repo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrReferrerProfileNotFound) {
		return profile.ReferrerProfile{}, ErrInternal
	}

	draft := profile.ReferrerProfile{
		UserID:            userID,
		CurrentCompany:    in.CurrentCompany,
		Position:          in.Position,
		CompaniesCanRefer: profile.DedupeTags(in.CompaniesCanRefer),
		Specializations:   profile.DedupeTags(in.Specializations),
		Bio:               in.Bio,
		ReferralFee:       in.ReferralFee,
		Status:            status,
	}

	if errors.Is(err, repository.ErrReferrerProfileNotFound) {
		draft.ID = uuid.New()
		created, err := u.repo.Create(ctx, draft)
		if err != nil {
			return profile.ReferrerProfile{}, ErrInternal
		}
		return created, nil
	}

	draft.ID = existing.ID
	updated, err := u.repo.Update(ctx, draft)
	if err != nil {
		return profile.ReferrerProfile{}, ErrInternal
	}
	return updated, nil
}

func (u *ReferrerProfile) AddCompany(ctx context.Context, userID uuid.UUID, company string) (profile.ReferrerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.ReferrerProfile) {
		p.CompaniesCanRefer = profile.AddTag(p.CompaniesCanRefer, company)
	})
}

func (u *ReferrerProfile) RemoveCompany(ctx context.Context, userID uuid.UUID, company string) (profile.ReferrerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.ReferrerProfile) {
		p.CompaniesCanRefer = profile.RemoveTag(p.CompaniesCanRefer, company)
	})
}

func (u *ReferrerProfile) AddSpecialization(ctx context.Context, userID uuid.UUID, spec string) (profile.ReferrerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.ReferrerProfile) {
		p.Specializations = profile.AddTag(p.Specializations, spec)
	})
}

func (u *ReferrerProfile) RemoveSpecialization(ctx context.Context, userID uuid.UUID, spec string) (profile.ReferrerProfile, error) {
	return u.mutateTags(ctx, userID, func(p *profile.ReferrerProfile) {
		p.Specializations = profile.RemoveTag(p.Specializations, spec)
	})
}

func (u *ReferrerProfile) mutateTags(ctx context.Context, userID uuid.UUID, mutate func(*profile.ReferrerProfile)) (profile.ReferrerProfile, error) {
	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrReferrerProfileNotFound) {
			return profile.ReferrerProfile{}, ErrInternal
		}
		p = defaultReferrerProfile(userID)
		p.ID = uuid.New()
		mutate(&p)
		created, err := u.repo.Create(ctx, p)
		if err != nil {
			return profile.ReferrerProfile{}, ErrInternal
		}
		return created, nil
	}

	mutate(&p)
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return profile.ReferrerProfile{}, ErrInternal
	}
	return updated, nil
}
