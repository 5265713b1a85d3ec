package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration, login, and bearer-token resolution.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials so account existence never leaks.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// Resolve verifies a bearer token and loads its user. Every failure mode
// (malformed token, bad signature, expiry, unknown user) yields (nil, nil):
// the request proceeds as anonymous rather than failing. Operations that
// need an identity enforce that themselves.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("identity lookup failed")
		}
		return nil, nil
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
