package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
)

// PayerID is the fixed identity of the sample authenticated user
var PayerID = uuid.MustParse("00000000-0000-0000-0000-000000000100")

// AuthRepository is an in-memory domain.AuthRepository holding one
// fixed-credential account
type AuthRepository struct {
	user     domain.User
	password string
}

// NewAuthRepository creates the repository with the sample account
func NewAuthRepository() *AuthRepository {
	return &AuthRepository{
		user: domain.User{
			ID:    PayerID,
			Name:  "John Doe",
			Email: "user@example.com",
		},
		password: "123456",
	}
}

// Login checks the credentials against the fixed account
func (r *AuthRepository) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email != r.user.Email || password != r.password {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return r.user, nil
}
