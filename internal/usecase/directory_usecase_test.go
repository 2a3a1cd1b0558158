package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"refernet/internal/domain/profile"
	"refernet/internal/domain/user"
	"refernet/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users []user.User
	err   error
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return user.ErrNotFound
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) { return m.users, m.err }

type mockSeekerProfileRepo struct {
	byUser  map[uuid.UUID]profile.JobSeekerProfile
	active  []profile.JobSeekerProfile
	created *profile.JobSeekerProfile
	updated *profile.JobSeekerProfile
	err     error
}

func (m *mockSeekerProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.JobSeekerProfile, error) {
	if m.err != nil {
		return profile.JobSeekerProfile{}, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return profile.JobSeekerProfile{}, repository.ErrJobSeekerProfileNotFound
	}
	return p, nil
}

func (m *mockSeekerProfileRepo) Create(_ context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	m.created = &p
	return p, m.err
}

func (m *mockSeekerProfileRepo) Update(_ context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	m.updated = &p
	if m.err == nil && m.byUser != nil {
		m.byUser[p.UserID] = p
	}
	return p, m.err
}

func (m *mockSeekerProfileRepo) ListByStatus(context.Context, profile.Status) ([]profile.JobSeekerProfile, error) {
	return m.active, m.err
}

type mockReferrerProfileRepo struct {
	byUser  map[uuid.UUID]profile.ReferrerProfile
	active  []profile.ReferrerProfile
	created *profile.ReferrerProfile
	updated *profile.ReferrerProfile
	err     error
}

func (m *mockReferrerProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.ReferrerProfile, error) {
	if m.err != nil {
		return profile.ReferrerProfile{}, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return profile.ReferrerProfile{}, repository.ErrReferrerProfileNotFound
	}
	return p, nil
}

func (m *mockReferrerProfileRepo) Create(_ context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error) {
	m.created = &p
	return p, m.err
}

func (m *mockReferrerProfileRepo) Update(_ context.Context, p profile.ReferrerProfile) (profile.ReferrerProfile, error) {
	m.updated = &p
	if m.err == nil && m.byUser != nil {
		m.byUser[p.UserID] = p
	}
	return p, m.err
}

func (m *mockReferrerProfileRepo) ListByStatus(context.Context, profile.Status) ([]profile.ReferrerProfile, error) {
	return m.active, m.err
}

type mockDirectoryCache struct {
	hit   bool
	stash any
	sets  int
}

func (m *mockDirectoryCache) GetJSON(context.Context, string, any) (bool, error) {
	return m.hit, nil
}

func (m *mockDirectoryCache) SetJSON(_ context.Context, _ string, value any, _ time.Duration) error {
	m.stash = value
	m.sets++
	return nil
}

func TestDirectoryListReferrers_DropsDanglingProfiles(t *testing.T) {
	known := user.User{ID: uuid.New(), FullName: "Maria Ivanova"}
	orphanID := uuid.New()

	users := &mockUserRepo{users: []user.User{known}}
	referrers := &mockReferrerProfileRepo{active: []profile.ReferrerProfile{
		{UserID: known.ID, CurrentCompany: "Yandex", Position: "Team Lead", Status: profile.StatusActive},
		{UserID: orphanID, CurrentCompany: "Sber", Status: profile.StatusActive},
	}}
	uc := NewDirectoryUsecase(users, &mockSeekerProfileRepo{}, referrers, nil, 0)

	cards, err := uc.ListReferrers(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected orphan profile dropped, got %d cards", len(cards))
	}
	if cards[0].UserID != known.ID || cards[0].FullName != "Maria Ivanova" {
		t.Fatalf("unexpected card: %+v", cards[0])
	}
}

func TestDirectoryListJobSeekers_TagTruncation(t *testing.T) {
	u := user.User{ID: uuid.New(), FullName: "Dmitry Orlov"}
	users := &mockUserRepo{users: []user.User{u}}
	seekers := &mockSeekerProfileRepo{active: []profile.JobSeekerProfile{{
		UserID: u.ID,
		Skills: []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "gRPC"},
		Status: profile.StatusActive,
	}}}
	uc := NewDirectoryUsecase(users, seekers, &mockReferrerProfileRepo{}, nil, 0)

	cards, err := uc.ListJobSeekers(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}
	if got := cards[0].Tags; len(got) != 4 || got[3] != "Docker" {
		t.Fatalf("expected the first four tags, got %v", got)
	}
	if cards[0].OverflowCount != 2 {
		t.Fatalf("expected overflow count 2, got %d", cards[0].OverflowCount)
	}
}

func TestDirectoryListReferrers_CacheHitSkipsRepos(t *testing.T) {
	users := &mockUserRepo{err: errors.New("must not be called")}
	referrers := &mockReferrerProfileRepo{err: errors.New("must not be called")}
	cache := &mockDirectoryCache{hit: true}
	uc := NewDirectoryUsecase(users, &mockSeekerProfileRepo{}, referrers, cache, time.Minute)

	if _, err := uc.ListReferrers(context.Background()); err != nil {
		t.Fatalf("cache hit must bypass repositories, got %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit must not rewrite the entry")
	}
}

func TestDirectoryGetJobSeeker(t *testing.T) {
	u := user.User{ID: uuid.New(), FullName: "Olga Smirnova", PasswordHash: "secret"}
	users := &mockUserRepo{users: []user.User{u}}
	seekers := &mockSeekerProfileRepo{byUser: map[uuid.UUID]profile.JobSeekerProfile{
		u.ID: {UserID: u.ID, CurrentPosition: "Backend Developer", Status: profile.StatusActive},
	}}
	uc := NewDirectoryUsecase(users, seekers, &mockReferrerProfileRepo{}, nil, 0)

	detail, err := uc.GetJobSeeker(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if detail.User.PasswordHash != "" {
		t.Fatal("password hash must not leak through the directory")
	}
	if detail.Profile.CurrentPosition != "Backend Developer" {
		t.Fatalf("unexpected profile: %+v", detail.Profile)
	}

	if _, err := uc.GetJobSeeker(context.Background(), uuid.New()); !errors.Is(err, ErrDirectoryEntryNotFound) {
		t.Fatalf("expected ErrDirectoryEntryNotFound, got %v", err)
	}
}

func TestDirectoryGetReferrer_InactiveHidden(t *testing.T) {
	u := user.User{ID: uuid.New(), FullName: "Pavel Volkov"}
	users := &mockUserRepo{users: []user.User{u}}
	referrers := &mockReferrerProfileRepo{byUser: map[uuid.UUID]profile.ReferrerProfile{
		u.ID: {UserID: u.ID, Status: profile.StatusInactive},
	}}
	uc := NewDirectoryUsecase(users, &mockSeekerProfileRepo{}, referrers, nil, 0)

	if _, err := uc.GetReferrer(context.Background(), u.ID); !errors.Is(err, ErrDirectoryEntryNotFound) {
		t.Fatalf("inactive profile must be hidden, got %v", err)
	}
}
