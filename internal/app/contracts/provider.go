package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type ProviderRepository interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByNumber(ctx context.Context, providerNumber string) (*models.Provider, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, providers []models.Provider, asOf time.Time) (int, error)
}
