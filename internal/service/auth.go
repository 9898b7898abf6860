package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rcamargo/transporte-api/internal/domain"
	"github.com/rcamargo/transporte-api/internal/repo"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 2 * time.Hour

// errInvalidCredentials is shared by every login failure path — unknown
// email and wrong password must be indistinguishable to the caller.
var errInvalidCredentials = fmt.Errorf("%w: credenciais inválidas", domain.ErrAuth)

// Claims is the JWT payload of a session token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService implements registration, login and token verification.
// It is stateless per request: no session is stored beyond the token itself,
// and verification only needs the signing secret.
type AuthService struct {
	users  repo.UserRepo
	secret []byte
	now    func() time.Time
}

// NewAuthService constructs an AuthService backed by the provided UserRepo,
// signing tokens with secret. The secret must come from configuration —
// there is no default.
func NewAuthService(users repo.UserRepo, secret []byte) *AuthService {
	return NewAuthServiceWithClock(users, secret, time.Now)
}

// NewAuthServiceWithClock is NewAuthService with an injectable clock,
// used by tests to exercise token expiry without sleeping.
func NewAuthServiceWithClock(users repo.UserRepo, secret []byte, now func() time.Time) *AuthService {
	return &AuthService{users: users, secret: secret, now: now}
}

// Register validates the input, hashes the password with bcrypt and stores
// the new user, returning its id.
// Returns domain.ErrValidation for a blank field and domain.ErrConflict for
// a duplicate email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (int64, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"nome", name},
		{"email", email},
		{"senha", password},
	} {
		if strings.TrimSpace(f.value) == "" {
			return 0, fmt.Errorf("%w: %s é obrigatório", domain.ErrValidation, f.name)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return 0, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user.ID, nil
}

// Login checks the credentials and issues a signed session token valid for
// two hours. An unknown email and a wrong password fail with the exact same
// error so the response never reveals which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: email e senha são obrigatórios", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", errInvalidCredentials
		}
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", errInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return token, nil
}

// Verify parses and validates a session token, returning the user identity
// it carries. Signature mismatch, tampering and expiry all fail the same
// way, wrapped in domain.ErrAuth.
func (s *AuthService) Verify(token string) (int64, string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return 0, "", fmt.Errorf("%w: token inválido ou expirado", domain.ErrAuth)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, "", fmt.Errorf("%w: token inválido ou expirado", domain.ErrAuth)
	}
	return claims.UserID, claims.Email, nil
}
