package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/educourse/course-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "John Doe", "john@example.com", "password123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "John Clone", "john@example.com", "password456"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_TokenResolvesBackToUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "John Doe", "john@example.com", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "john@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved == nil || resolved.Email != "john@example.com" {
		t.Fatalf("token did not resolve back to the user: %+v", resolved)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookIdentical(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "John Doe", "john@example.com", "password123")

	_, _, errWrongPass := svc.Login(context.Background(), "john@example.com", "badpass")
	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "password123")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if errWrongPass.Error() != errUnknown.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPass, errUnknown)
	}
}

func TestAuthService_Resolve_FailsOpenToAnonymous(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, _ := svc.Register(context.Background(), "John Doe", "john@example.com", "password123")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	badSig := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": user.ID})
	badSigToken, err := badSig.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not-a-jwt"},
		{"expired", expiredToken},
		{"bad signature", badSigToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Resolve(context.Background(), tt.token)
			if err != nil {
				t.Fatalf("Resolve must not error, got %v", err)
			}
			if identity != nil {
				t.Fatalf("expected anonymous, got %+v", identity)
			}
		})
	}
}

func TestAuthService_Resolve_UnknownUserIsAnonymous(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "deleted-user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	identity, err := svc.Resolve(context.Background(), signed)
	if err != nil || identity != nil {
		t.Fatalf("expected anonymous without error, got %+v, %v", identity, err)
	}
}
