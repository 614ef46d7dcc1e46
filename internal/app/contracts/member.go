package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type MemberRepository interface {
	FindAll(ctx context.Context) ([]models.Member, error)
	FindByNumber(ctx context.Context, memberNumber string) (*models.Member, error)
	FindNumbers(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, members []models.Member, asOf time.Time) (int, error)
	UpdateContact(ctx context.Context, member models.Member, asOf time.Time) error
}
