package repository

import (
	"context"

	"commission-calculator/domain"
)

type ComparisonRepository interface {
	Save(ctx context.Context, input domain.Inputs, result domain.ComparisonResult) (domain.ComparisonRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.ComparisonRecord, error)
}
