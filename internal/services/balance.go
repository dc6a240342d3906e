package services

//go:generate mockgen -source=balance.go -destination=balance_mock_test.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

// ProfileReader reads the caller's profile from the upstream API.
type ProfileReader interface {
	GetProfile(ctx context.Context) (*models.Profile, error) // Returns the profile of the bearer of ctx
}

// BalanceCache caches balances per user.
type BalanceCache interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, bool, error) // Returns the cached balance and whether it was found
	SetBalance(ctx context.Context, userID uuid.UUID, balance float64) error // Caches a balance
}

// BalanceService resolves the user balance that gates card deposits.
type BalanceService struct {
	profile ProfileReader
	cache   BalanceCache
}

// NewBalanceService creates a new BalanceService. cache may be nil.
func NewBalanceService(profile ProfileReader, cache BalanceCache) *BalanceService {
	return &BalanceService{
		profile: profile,
		cache:   cache,
	}
}

// GetBalance returns the cached balance, falling back to the upstream profile.
func (s *BalanceService) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	if s.cache != nil {
		balance, ok, err := s.cache.GetBalance(ctx, userID)
		if err != nil {
			logger.Log.Warnw("failed to read cached balance", "userID", userID, "error", err)
		} else if ok {
			return balance, nil
		}
	}
	return s.RefreshBalance(ctx, userID)
}

// RefreshBalance reads the balance from the upstream profile and caches it.
func (s *BalanceService) RefreshBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		logger.Log.Errorw("failed to refresh balance", "userID", userID, "error", err)
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetBalance(ctx, userID, profile.Balance); err != nil {
			logger.Log.Warnw("failed to cache balance", "userID", userID, "error", err)
		}
	}
	return profile.Balance, nil
}
