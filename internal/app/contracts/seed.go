package contracts

import (
	"context"
	"time"
)

// SeedUsecase populates the insurance tables with an initial data set.
// Each method returns how many rows it inserted. Inserts are stamped
// with the asOf date so historical back-fills carry consistent
// LastModified values.
type SeedUsecase interface {
	SeedMembers(ctx context.Context, count int, asOf time.Time) (int, error)
	SeedPlans(ctx context.Context, count int, asOf time.Time) (int, error)
	SeedProviders(ctx context.Context, count int, asOf time.Time) (int, error)
}
