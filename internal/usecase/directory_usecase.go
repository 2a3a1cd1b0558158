package usecase

import (
	"context"
	"errors"
	"time"

	"refernet/internal/domain/profile"
	"refernet/internal/domain/user"
	"refernet/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrDirectoryEntryNotFound = errors.New("directory entry not found")

// cardTagLimit caps the tags shown on a directory card; anything beyond it is
// reported as an overflow count.
const cardTagLimit = 4

const (
	referrerDirectoryCacheKey  = "directory:referrers"
	jobSeekerDirectoryCacheKey = "directory:job_seekers"
)

// DirectoryCache is a read-through cache for the joined listings.
type DirectoryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// ReferrerCard is one entry of the directory a job seeker browses.
type ReferrerCard struct {
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Position       string    `json:"position"`
	CurrentCompany string    `json:"current_company"`
	Tags           []string  `json:"tags"`
	OverflowCount  int       `json:"overflow_count"`
}

// JobSeekerCard is one entry of the directory a referrer browses.
type JobSeekerCard struct {
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	CurrentPosition string    `json:"current_position"`
	ExperienceYears int       `json:"experience_years"`
	Tags            []string  `json:"tags"`
	OverflowCount   int       `json:"overflow_count"`
}

// ReferrerDetail is the full joined record behind a card.
type ReferrerDetail struct {
	User    user.User               `json:"user"`
	Profile profile.ReferrerProfile `json:"profile"`
}

type JobSeekerDetail struct {
	User    user.User                `json:"user"`
	Profile profile.JobSeekerProfile `json:"profile"`
}

type DirectoryUsecase interface {
	ListReferrers(ctx context.Context) ([]ReferrerCard, error)
	ListJobSeekers(ctx context.Context) ([]JobSeekerCard, error)
	GetReferrer(ctx context.Context, userID uuid.UUID) (ReferrerDetail, error)
	GetJobSeeker(ctx context.Context, userID uuid.UUID) (JobSeekerDetail, error)
}

type Directory struct {
	users     user.Repository
	seekers   repository.JobSeekerProfileRepository
	referrers repository.ReferrerProfileRepository
	cache     DirectoryCache
	cacheTTL  time.Duration
}

func NewDirectoryUsecase(
	users user.Repository,
	seekers repository.JobSeekerProfileRepository,
	referrers repository.ReferrerProfileRepository,
	cache DirectoryCache,
	cacheTTL time.Duration,
) *Directory {
	return &Directory{users: users, seekers: seekers, referrers: referrers, cache: cache, cacheTTL: cacheTTL}
}

// ListReferrers fetches active referrer profiles and the user collection in
// parallel, joins them by user id, and silently drops any profile whose user
// cannot be resolved.
func (d *Directory) ListReferrers(ctx context.Context) ([]ReferrerCard, error) {
	if d.cache != nil {
		var cached []ReferrerCard
		if ok, err := d.cache.GetJSON(ctx, referrerDirectoryCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var (
		profiles []profile.ReferrerProfile
		users    []user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = d.referrers.ListByStatus(gctx, profile.StatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = d.users.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	byID := usersByID(users)
	out := make([]ReferrerCard, 0, len(profiles))
	for _, p := range profiles {
		u, ok := byID[p.UserID]
		if !ok {
			continue
		}
		tags, overflow := truncateTags(p.CompaniesCanRefer)
		out = append(out, ReferrerCard{
			UserID:         p.UserID,
			FullName:       u.FullName,
			Position:       p.Position,
			CurrentCompany: p.CurrentCompany,
			Tags:           tags,
			OverflowCount:  overflow,
		})
	}

	if d.cache != nil {
		_ = d.cache.SetJSON(ctx, referrerDirectoryCacheKey, out, d.cacheTTL)
	}
	return out, nil
}

func (d *Directory) ListJobSeekers(ctx context.Context) ([]JobSeekerCard, error) {
	if d.cache != nil {
		var cached []JobSeekerCard
		if ok, err := d.cache.GetJSON(ctx, jobSeekerDirectoryCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var (
		profiles []profile.JobSeekerProfile
		users    []user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = d.seekers.ListByStatus(gctx, profile.StatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = d.users.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	byID := usersByID(users)
	out := make([]JobSeekerCard, 0, len(profiles))
	for _, p := range profiles {
		u, ok := byID[p.UserID]
		if !ok {
			continue
		}
		tags, overflow := truncateTags(p.Skills)
		out = append(out, JobSeekerCard{
			UserID:          p.UserID,
			FullName:        u.FullName,
			CurrentPosition: p.CurrentPosition,
			ExperienceYears: p.ExperienceYears,
			Tags:            tags,
			OverflowCount:   overflow,
		})
	}

	if d.cache != nil {
		_ = d.cache.SetJSON(ctx, jobSeekerDirectoryCacheKey, out, d.cacheTTL)
	}
	return out, nil
}

func (d *Directory) GetReferrer(ctx context.Context, userID uuid.UUID) (ReferrerDetail, error) {
	p, err := d.referrers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReferrerProfileNotFound) {
			return ReferrerDetail{}, ErrDirectoryEntryNotFound
		}
		return ReferrerDetail{}, ErrInternal
	}
	if p.Status != profile.StatusActive {
		return ReferrerDetail{}, ErrDirectoryEntryNotFound
	}

	u, err := d.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ReferrerDetail{}, ErrDirectoryEntryNotFound
		}
		return ReferrerDetail{}, ErrInternal
	}

	u.PasswordHash = ""
	return ReferrerDetail{User: u, Profile: p}, nil
}

func (d *Directory) GetJobSeeker(ctx context.Context, userID uuid.UUID) (JobSeekerDetail, error) {
	p, err := d.seekers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJobSeekerProfileNotFound) {
			return JobSeekerDetail{}, ErrDirectoryEntryNotFound
		}
		return JobSeekerDetail{}, ErrInternal
	}
	if p.Status != profile.StatusActive {
		return JobSeekerDetail{}, ErrDirectoryEntryNotFound
	}

	u, err := d.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return JobSeekerDetail{}, ErrDirectoryEntryNotFound
		}
		return JobSeekerDetail{}, ErrInternal
	}

	u.PasswordHash = ""
	return JobSeekerDetail{User: u, Profile: p}, nil
}

func usersByID(users []user.User) map[uuid.UUID]user.User {
	m := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

func truncateTags(tags []string) ([]string, int) {
	if len(tags) <= cardTagLimit {
		return append([]string(nil), tags...), 0
	}
	return append([]string(nil), tags[:cardTagLimit]...), len(tags) - cardTagLimit
}
