package cli

import (
	"fmt"

	"aushealthsim/internal/app/services/shared/testrunner"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/dto/reports"
	"aushealthsim/internal/pkg/exceptions"

	"github.com/spf13/cobra"
)

type testOptions struct {
	E2E  bool
	Date string
}

func newTestCommand(app *application) *cobra.Command {
	opts := &testOptions{}

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the project test suites",
		Long: `Run the project test suites and report per-suite results.

The unit and integration suites always run; pass --e2e to include the
end-to-end suite, which seeds a live database for the given simulation
date. Every requested suite runs even when an earlier one fails. Exit
code is 0 when all suites pass and 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag(opts.Date)
			if err != nil {
				return err
			}

			suites := testrunner.DefaultSuites()
			if opts.E2E {
				suites = append(suites, constvars.SuiteEndToEnd)
			}

			runner := testrunner.NewTestRunnerUsecase("", app.Log)
			w := cmd.OutOrStdout()

			report := &reports.TestReport{}
			for _, suite := range suites {
				fmt.Fprintf(w, "Running %s tests...\n", suite)
				result, err := runner.RunSuite(cmd.Context(), suite, asOf)
				if err != nil {
					return err
				}
				fmt.Fprint(w, result.Output)
				report.Add(result)
			}

			fmt.Fprintln(w, "\nTest Summary:")
			for _, result := range report.Results {
				status := "PASS"
				if !result.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(w, "%s: %s\n", result.Suite, status)
			}

			if !report.AllPassed() {
				failed := report.Failed()
				return exceptions.WrapWithoutError(
					constvars.ExitFailure,
					fmt.Sprintf("%d test suite(s) failed", len(failed)),
					constvars.ErrDevTestSuiteFailed,
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.E2E, "e2e", false, "also run the end-to-end suite against a live database")
	cmd.Flags().StringVar(&opts.Date, "date", "", "simulation date in YYYY-MM-DD form for the end-to-end suite (default today)")
	return cmd
}
