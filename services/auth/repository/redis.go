package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/codermehran/Mo/internal/pkg/constants"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// IncrementVerifyAttempts counts verify calls from ip for purpose. The window
// starts at the first call; the key is created with its TTL in the same
// transaction as the increment so a counter can never outlive its window.
func (r *AuthRepo) IncrementVerifyAttempts(ctx context.Context, ip string, purpose models.OTPPurpose, window time.Duration) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPVerifyAttempts, ip, purpose)

	var incr *redis.IntCmd
	_, err := r.redisClient.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, window)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment verify attempts: %w", err)
	}
	return incr.Val(), nil
}

// BlacklistRefreshToken revokes tokenID for ttl. It reports false when the
// token was already revoked, so a refresh token can be rotated only once.
func (r *AuthRepo) BlacklistRefreshToken(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl < time.Second {
		ttl = time.Second
	}
	key := fmt.Sprintf(constants.KeyRefreshBlacklist, tokenID)
	ok, err := r.redisClient.Client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to blacklist refresh token: %w", err)
	}
	return ok, nil
}
