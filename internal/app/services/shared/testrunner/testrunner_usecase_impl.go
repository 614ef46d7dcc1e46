package testrunner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
	"time"

	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/dto/reports"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/utils"

	"go.uber.org/zap"
)

const goCommand = "go"

// suiteArgs maps each suite to the go test invocation that runs it.
// Integration and e2e tests sit behind build tags and follow a
// TestIntegration/TestEndToEnd naming convention, so the tagged runs
// only pick up their own suite. -count=1 keeps cached results from
// masking database state.
var suiteArgs = map[string][]string{
	constvars.SuiteUnit:        {"test", "-count=1", "./..."},
	constvars.SuiteIntegration: {"test", "-count=1", "-tags", constvars.SuiteIntegration, "-run", "^TestIntegration", "./..."},
	constvars.SuiteEndToEnd:    {"test", "-count=1", "-tags", constvars.SuiteEndToEnd, "-run", "^TestEndToEnd", "./..."},
}

type testRunnerUsecase struct {
	Dir string
	Log *zap.Logger
}

var (
	testRunnerUsecaseInstance contracts.TestRunnerUsecase
	onceTestRunnerUsecase     sync.Once
)

// NewTestRunnerUsecase builds the runner. dir is the module root the
// go tool is invoked from; empty means the current working directory.
func NewTestRunnerUsecase(dir string, logger *zap.Logger) contracts.TestRunnerUsecase {
	onceTestRunnerUsecase.Do(func() {
		instance := &testRunnerUsecase{
			Dir: dir,
			Log: logger,
		}
		testRunnerUsecaseInstance = instance
	})
	return testRunnerUsecaseInstance
}

// DefaultSuites returns the suites that run when none are requested.
// The e2e suite is opt-in since it seeds a live database.
func DefaultSuites() []string {
	return []string{constvars.SuiteUnit, constvars.SuiteIntegration}
}

func (uc *testRunnerUsecase) RunSuite(ctx context.Context, suite string, asOf time.Time) (reports.SuiteResult, error) {
	uc.Log.Info("testRunnerUsecase.RunSuite called",
		zap.String(constvars.LoggingSuiteKey, suite),
		zap.Time(constvars.LoggingDateKey, asOf),
	)

	if _, ok := suiteArgs[suite]; !ok {
		uc.Log.Error("testRunnerUsecase.RunSuite rejected suite", zap.String(constvars.LoggingSuiteKey, suite))
		return reports.SuiteResult{}, exceptions.ErrUnknownTestSuite(suite)
	}

	cmd := exec.CommandContext(ctx, goCommand, suiteCommand(suite)...)
	cmd.Dir = uc.Dir
	cmd.Env = append(os.Environ(), suiteEnv(suite, asOf)...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			uc.Log.Error("testRunnerUsecase.RunSuite error", zap.String(constvars.LoggingSuiteKey, suite), zap.Error(err))
			return reports.SuiteResult{}, exceptions.ErrTestSuiteRun(err, suite)
		}
	}

	result := reports.SuiteResult{
		Suite:    suite,
		Passed:   err == nil,
		Output:   output.String(),
		Duration: duration,
	}
	if result.Passed {
		uc.Log.Info("testRunnerUsecase.RunSuite suite passed",
			zap.String(constvars.LoggingSuiteKey, suite),
			zap.Duration(constvars.LoggingDurationKey, duration),
		)
	} else {
		uc.Log.Warn("testRunnerUsecase.RunSuite suite failed",
			zap.String(constvars.LoggingSuiteKey, suite),
			zap.Duration(constvars.LoggingDurationKey, duration),
		)
	}
	return result, nil
}

// suiteCommand returns a fresh copy of the go arguments for the suite.
func suiteCommand(suite string) []string {
	args := suiteArgs[suite]
	command := make([]string, len(args))
	copy(command, args)
	return command
}

// suiteEnv returns the extra environment the suite needs. Only the
// end-to-end suite receives the simulation date.
func suiteEnv(suite string, asOf time.Time) []string {
	if suite != constvars.SuiteEndToEnd {
		return nil
	}
	return []string{constvars.TestDateEnvKey + "=" + utils.FormatDate(asOf)}
}
