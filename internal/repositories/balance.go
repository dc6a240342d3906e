package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
)

// BalanceCacheRepository caches user balances read from the upstream profile.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached balances
}

// NewBalanceCacheRepository creates a new repository instance with the given TTL
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(userID uuid.UUID) string {
	return fmt.Sprintf("balance:%s", userID)
}

// GetBalance returns the cached balance. The second value is false on a cache miss.
func (r *BalanceCacheRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, bool, error) {
	key := balanceKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("key", key, "result", "miss", "error", nil)
		return 0, false, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "result", val, "error", err)
		return 0, false, err
	}

	balance, err := strconv.ParseFloat(val, 64)

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", balance,
		"error", err,
	)

	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

// SetBalance caches a balance with expiration
func (r *BalanceCacheRepository) SetBalance(ctx context.Context, userID uuid.UUID, balance float64) error {
	key := balanceKey(userID)
	err := r.client.Set(ctx, key, strconv.FormatFloat(balance, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"balance", balance,
		"result", "ok",
		"error", err,
	)

	return err
}
