package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type CoveragePlanRepository interface {
	FindAll(ctx context.Context) ([]models.CoveragePlan, error)
	FindActive(ctx context.Context) ([]models.CoveragePlan, error)
	FindByCode(ctx context.Context, planCode string) (*models.CoveragePlan, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, plans []models.CoveragePlan, asOf time.Time) (int, error)
}
