package service

import (
	"context"
	"encoding/json"

	"commission-calculator/domain"
	"commission-calculator/logger"
	"commission-calculator/repository"
)

type CommissionService struct {
	repo  repository.ComparisonRepository
	cache repository.CacheRepository
}

// NewCommissionService creates a new CommissionService with the given history
// repository and result cache.
func NewCommissionService(
	repo repository.ComparisonRepository,
	cache repository.CacheRepository,
) *CommissionService {
	return &CommissionService{repo: repo, cache: cache}
}

// Compare validates the split selection and returns the comparison for input,
// served from cache when the same inputs were seen recently.
func (s *CommissionService) Compare(
	ctx context.Context,
	input domain.Inputs,
) (domain.ComparisonResult, error) {

	if err := ValidateSplit(input.Split); err != nil {
		return domain.ComparisonResult{}, err
	}

	key, keyErr := cacheKey(input)
	if keyErr == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.ComparisonResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				logger.L.Debug("comparison cache hit", "key", key)
				return result, nil
			}
			logger.L.Warn("discarding unreadable cache entry", "key", key)
		}
	}

	result := Compare(input)
	if !result.Finite() {
		logger.L.Debug("comparison overflowed, not caching or saving", "sale_price", input.SalePrice)
		return result, nil
	}

	// Neither caching nor history is critical to the answer.
	if keyErr == nil {
		if encoded, err := json.Marshal(result); err != nil {
			logger.L.Warn("failed to encode comparison for cache", "error", err)
		} else if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			logger.L.Warn("failed to cache comparison", "error", err)
		}
	}
	if _, err := s.repo.Save(ctx, input, result); err != nil {
		logger.L.Warn("failed to save comparison", "error", err)
	}

	return result, nil
}

// History returns the most recent comparisons, newest first.
func (s *CommissionService) History(
	ctx context.Context,
	limit int,
) ([]domain.ComparisonRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}

// SplitOptions lists the selectable broker splits.
func (s *CommissionService) SplitOptions() []domain.SplitOption {
	return SplitOptions()
}

func cacheKey(input domain.Inputs) (string, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
