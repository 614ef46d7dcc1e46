package contracts

import (
	"context"
	"time"

	"aushealthsim/internal/pkg/dto/reports"
)

// TestRunnerUsecase executes one project test suite at a time and
// reports its outcome. A failing suite is a normal result, not an
// error; errors mean the suite could not be run at all. The asOf date
// is forwarded to the end-to-end suite so it runs against a fixed
// simulation day.
type TestRunnerUsecase interface {
	RunSuite(ctx context.Context, suite string, asOf time.Time) (reports.SuiteResult, error)
}
