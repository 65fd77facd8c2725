package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"commission-calculator/domain"
)

// ComparisonRepositoryMemory keeps the last capacity comparisons in memory.
type ComparisonRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.ComparisonRecord
	now      func() time.Time
}

// NewComparisonRepositoryMemory creates a new in-memory comparison history.
func NewComparisonRepositoryMemory(capacity int) *ComparisonRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &ComparisonRepositoryMemory{
		capacity: capacity,
		data:     make([]domain.ComparisonRecord, 0, capacity),
		now:      time.Now,
	}
}

// Save appends the comparison, dropping the oldest record once full.
func (r *ComparisonRepositoryMemory) Save(
	_ context.Context,
	input domain.Inputs,
	result domain.ComparisonResult,
) (domain.ComparisonRecord, error) {
	rec := domain.ComparisonRecord{
		ID:        uuid.NewString(),
		Inputs:    input,
		Result:    result,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, rec)
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (r *ComparisonRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.ComparisonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.ComparisonRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
