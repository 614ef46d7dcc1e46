package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type ClaimRepository interface {
	FindAll(ctx context.Context) ([]models.Claim, error)
	FindByNumber(ctx context.Context, claimNumber string) (*models.Claim, error)
	FindOpen(ctx context.Context) ([]models.Claim, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, claims []models.Claim, asOf time.Time) (int, error)
	UpdateStatus(ctx context.Context, claim models.Claim, asOf time.Time) error
}
