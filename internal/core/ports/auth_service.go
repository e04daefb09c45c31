package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
// New accounts always start as member; roles are assigned by admins later.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// TokenPair is an access/refresh token pair issued on register, login and
// refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService defines registration, login and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// Refresh rotates a refresh token: the old token is blacklisted and a
	// fresh pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout blacklists the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// RequestPasswordReset queues a reset mail when the email is known.
	// It never reveals whether the email exists.
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword, newPasswordConfirm string) error
}
