package reports

import "time"

// SuiteResult captures the outcome of one test suite run.
type SuiteResult struct {
	Suite    string
	Passed   bool
	Output   string
	Duration time.Duration
}

// TestReport aggregates the results of every suite the runner executed.
type TestReport struct {
	Results []SuiteResult
}

// Add appends a suite outcome to the report.
func (r *TestReport) Add(result SuiteResult) {
	r.Results = append(r.Results, result)
}

// AllPassed reports whether every executed suite succeeded. An empty
// report counts as passing since nothing failed.
func (r *TestReport) AllPassed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Failed returns the names of the suites that did not pass.
func (r *TestReport) Failed() []string {
	var failed []string
	for _, result := range r.Results {
		if !result.Passed {
			failed = append(failed, result.Suite)
		}
	}
	return failed
}
