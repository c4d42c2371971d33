package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paywallet/paywallet-backend/internal/domain"
)

// Service handles login and session token issuing
type Service struct {
	Repo      domain.AuthRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

// NewService creates a new auth Service instance
func NewService(repo domain.AuthRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		Repo:      repo,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

// Login authenticates the user and returns a signed session token.
// Input is trimmed before validation; empty email or password is
// rejected with ErrEmptyCredentials without hitting the repository.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return domain.User{}, "", domain.ErrEmptyCredentials
	}

	user, err := s.Repo.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return user, token, nil
}

// issueToken signs an HS256 JWT carrying the user's identity
func (s *Service) issueToken(user domain.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.JWTSecret)
}
