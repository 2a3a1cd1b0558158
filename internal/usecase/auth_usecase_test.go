package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"refernet/internal/domain/user"
	"refernet/internal/pkg/jwt"
	ucauth "refernet/internal/usecase/auth"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockJWTService struct {
	claims      jwt.Claims
	validateErr error
}

func (m *mockJWTService) GenerateAccessToken(uuid.UUID, string) (string, error) {
	return "access-token", nil
}

func (m *mockJWTService) GenerateRefreshToken(uuid.UUID) (string, error) {
	return "refresh-token", nil
}

func (m *mockJWTService) ValidateToken(string) (jwt.Claims, error) {
	return m.claims, m.validateErr
}

func (m *mockJWTService) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

type mockRevocationStore struct {
	revoked map[string]time.Duration
}

func newMockRevocationStore() *mockRevocationStore {
	return &mockRevocationStore{revoked: make(map[string]time.Duration)}
}

func (m *mockRevocationStore) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	m.revoked[tokenID] = ttl
	return nil
}

func (m *mockRevocationStore) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func TestAuthRegisterAndLogin(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewAuthUsecase(users, &mockJWTService{}, newMockRevocationStore())

	usr, access, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "Anna@Example.com",
		Password: "correct horse",
		FullName: "Anna Petrova",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "anna@example.com" {
		t.Fatalf("email must be normalized, got %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatal("password hash must not be returned")
	}
	if access == "" || refresh == "" {
		t.Fatal("registration must issue a token pair")
	}

	if _, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "anna@example.com",
		Password: "another pass",
	}); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	if _, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "anna@example.com",
		Password: "wrong password",
	}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	logged, access, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "anna@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if logged.ID != usr.ID || access == "" {
		t.Fatalf("unexpected login result: %+v", logged)
	}
}

func TestAuthLoginPasswordCheck(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := &mockUserRepo{users: []user.User{{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: string(hash),
	}}}
	uc := NewAuthUsecase(users, &mockJWTService{}, nil)

	if _, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "ivan@example.com", Password: "s3cret-pw"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "nobody@example.com", Password: "s3cret-pw"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAuthRefresh_RevokedToken(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: []user.User{{ID: userID, Email: "a@b.c"}}}
	store := newMockRevocationStore()

	claims := jwt.Claims{
		UserID:    userID,
		TokenType: jwt.TokenTypeRefresh,
		ExpiredAt: time.Now().Add(time.Hour),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID: "token-1",
		},
	}
	uc := NewAuthUsecase(users, &mockJWTService{claims: claims}, store)

	if _, _, err := uc.Refresh(context.Background(), "some-refresh"); err != nil {
		t.Fatalf("unexpected err before revocation: %v", err)
	}

	_ = store.RevokeToken(context.Background(), "token-1", time.Hour)

	if _, _, err := uc.Refresh(context.Background(), "some-refresh"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("revoked refresh must be rejected, got %v", err)
	}
}

func TestAuthLogout_RevokesRemainingLifetime(t *testing.T) {
	store := newMockRevocationStore()
	uc := NewAuthUsecase(&mockUserRepo{}, &mockJWTService{}, store)

	claims := jwt.Claims{
		TokenType: jwt.TokenTypeAccess,
		ExpiredAt: time.Now().Add(30 * time.Minute),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID: "token-2",
		},
	}
	if err := uc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ttl, ok := store.revoked["token-2"]
	if !ok {
		t.Fatal("logout must revoke the token")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("revocation ttl must match the remaining lifetime, got %s", ttl)
	}

	expired := jwt.Claims{
		TokenType: jwt.TokenTypeAccess,
		ExpiredAt: time.Now().Add(-time.Minute),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID: "token-3",
		},
	}
	if err := uc.Logout(context.Background(), expired); err != nil {
		t.Fatalf("expired token logout must be a no-op, got %v", err)
	}
	if _, ok := store.revoked["token-3"]; ok {
		t.Fatal("expired token must not be written to the deny-list")
	}
}
