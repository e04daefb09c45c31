package ports

import (
	"context"
	"time"
)

// TokenStore holds short-lived token state: the refresh-token blacklist
// (rotation and logout) and outstanding password-reset tokens.
type TokenStore interface {
	// BlacklistRefresh voids a refresh token by its jti until it would have
	// expired anyway.
	BlacklistRefresh(ctx context.Context, jti string, ttl time.Duration) error
	IsRefreshBlacklisted(ctx context.Context, jti string) (bool, error)

	// StoreResetToken records a one-shot password-reset token for a user.
	StoreResetToken(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// ConsumeResetToken resolves and deletes a reset token atomically.
	// Returns domain.ErrInvalidResetToken when absent or expired.
	ConsumeResetToken(ctx context.Context, token string) (int64, error)
}
