package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type PremiumPaymentRepository interface {
	FindAll(ctx context.Context) ([]models.PremiumPayment, error)
	FindByPolicy(ctx context.Context, policyID int) ([]models.PremiumPayment, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, payments []models.PremiumPayment, asOf time.Time) (int, error)
}
