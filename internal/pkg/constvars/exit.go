package constvars

// Process exit codes for the CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)
