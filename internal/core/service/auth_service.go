package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// bcryptCost is deliberately above the library default: signup is rare,
// login is interactive, and the extra factor keeps offline cracking costly.
const bcryptCost = 12

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements signup, login, and session token issue/verify.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL, log: log}
}

// sessionClaims is the signed token payload. Role rides alongside the
// registered claims so every privileged route can gate without a DB read.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Signup creates an account with a bcrypt-hashed password. The role must be
// one of the closed set; anything else is rejected before touching storage.
func (s *AuthService) Signup(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("account created")
	return created, nil
}

// Login verifies credentials and returns a signed session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser resolves the profile behind a verified claim.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// IssueToken produces a signed HS256 token with an absolute expiry. Tokens
// are immutable values: a refresh is a new token, never an edit.
func (s *AuthService) IssueToken(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// VerifyToken returns the claims behind a token, or nil on any failure:
// malformed input, wrong signature, wrong algorithm, or past expiry. The
// distinction is logged at debug level but never surfaces to callers, so an
// expired session and a forged one look identical from outside.
func (s *AuthService) VerifyToken(token string) *ports.Claims {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.log.Debug().Msg("session token expired")
		} else {
			s.log.Debug().Err(err).Msg("session token rejected")
		}
		return nil
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil || claims.UserID == "" {
		s.log.Debug().Msg("session token carries malformed claims")
		return nil
	}

	return &ports.Claims{UserID: claims.UserID, Role: role}
}
