package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

const (
	blacklistPrefix = "auth:blacklist:"
	resetPrefix     = "auth:reset:"
)

// TokenStore keeps refresh-token blacklist entries and outstanding
// password-reset tokens. Both expire on their own via key TTLs.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) BlacklistRefresh(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to void.
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) IsRefreshBlacklisted(ctx context.Context, jti string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := s.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check refresh blacklist: %w", err)
	}
	return n > 0, nil
}

func (s *TokenStore) StoreResetToken(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Set(ctx, resetPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken resolves and deletes the token in one round trip, so a
// reset link can only ever be redeemed once.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, token string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	val, err := s.client.GetDel(ctx, resetPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrInvalidResetToken
	}
	if err != nil {
		return 0, fmt.Errorf("consume reset token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse reset token value: %w", err)
	}
	return userID, nil
}
