package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/models"
)

type PolicyRepository interface {
	FindAll(ctx context.Context) ([]models.Policy, error)
	FindByNumber(ctx context.Context, policyNumber string) (*models.Policy, error)
	FindDueForPayment(ctx context.Context, by time.Time) ([]models.Policy, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, policies []models.Policy, asOf time.Time) (int, error)
	UpdateDetails(ctx context.Context, policy models.Policy, asOf time.Time) error
	UpdatePaymentDates(ctx context.Context, policy models.Policy, asOf time.Time) error

	// Policy membership rows, including the Self link for the primary
	// member.
	FindMembersByPolicy(ctx context.Context, policyID int) ([]models.PolicyMember, error)
	MemberPairs(ctx context.Context) (map[[2]int]bool, error)
	BulkInsertMembers(ctx context.Context, policyMembers []models.PolicyMember, asOf time.Time) (int, error)
}
