package cli

import (
	"errors"
	"testing"
	"time"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/exceptions"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func commandNames(cmd *cobra.Command) []string {
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	return names
}

func findCommand(t *testing.T, cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	t.Fatalf("command %q not found under %q", name, cmd.Name())
	return nil
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand(config.NewDriverConfig(), config.NewInternalConfig())

	t.Run("Has Every Operational Command", func(t *testing.T) {
		names := commandNames(root)

		for _, expected := range []string{"checkdb", "drivers", "initdb", "seed", "members", "test"} {
			assert.Contains(t, names, expected, "root command should expose %s", expected)
		}
	})

	t.Run("Members Has Show And Reset", func(t *testing.T) {
		membersCmd := findCommand(t, root, "members")

		assert.ElementsMatch(t, []string{"show", "reset"}, commandNames(membersCmd), "members should only manage the used list")
	})

	t.Run("Logging Flags Are Persistent", func(t *testing.T) {
		assert.NotNil(t, root.PersistentFlags().Lookup("log-level"), "log-level should apply to every command")
		assert.NotNil(t, root.PersistentFlags().Lookup("log-file"), "log-file should apply to every command")
	})

	t.Run("Seed Defaults Match The Initial Data Set", func(t *testing.T) {
		seedCmd := findCommand(t, root, "seed")

		assert.Equal(t, "50", seedCmd.Flags().Lookup("members").DefValue, "default member count")
		assert.Equal(t, "15", seedCmd.Flags().Lookup("plans").DefValue, "default plan count")
		assert.Equal(t, "30", seedCmd.Flags().Lookup("providers").DefValue, "default provider count")
	})

	t.Run("Test Command Keeps E2E Opt In", func(t *testing.T) {
		testCmd := findCommand(t, root, "test")

		e2eFlag := testCmd.Flags().Lookup("e2e")
		assert.NotNil(t, e2eFlag, "test command should offer --e2e")
		assert.Equal(t, "false", e2eFlag.DefValue, "e2e suite must not run by default")
		assert.NotNil(t, testCmd.Flags().Lookup("date"), "test command should offer --date")
	})
}

func TestParseDateFlag(t *testing.T) {
	t.Run("Empty Value Defaults To Today", func(t *testing.T) {
		parsed, err := parseDateFlag("")

		assert.NoError(t, err, "missing flag is not an error")
		now := time.Now().UTC()
		assert.Equal(t, now.Year(), parsed.Year(), "year should be today's")
		assert.Equal(t, now.YearDay(), parsed.YearDay(), "day should be today's")
		assert.Equal(t, 0, parsed.Hour(), "date should sit at midnight")
	})

	t.Run("Valid Date Parses", func(t *testing.T) {
		parsed, err := parseDateFlag("2023-05-15")

		assert.NoError(t, err, "YYYY-MM-DD should parse")
		assert.Equal(t, time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC), parsed, "parsed date should match")
	})

	t.Run("Invalid Date Is A Usage Error", func(t *testing.T) {
		_, err := parseDateFlag("15/05/2023")

		assert.Error(t, err, "slashes are not a valid layout")

		var customErr *exceptions.CustomError
		if assert.ErrorAs(t, err, &customErr, "date errors carry exit codes") {
			assert.Equal(t, constvars.ExitUsage, customErr.ExitCode, "bad dates are usage errors")
		}
	})
}

func TestExitCode(t *testing.T) {
	t.Run("Nil Error Exits Clean", func(t *testing.T) {
		assert.Equal(t, constvars.ExitOK, ExitCode(nil), "no error means exit 0")
	})

	t.Run("Custom Error Carries Its Own Code", func(t *testing.T) {
		err := exceptions.ErrUnknownTestSuite("smoke")

		assert.Equal(t, constvars.ExitUsage, ExitCode(err), "custom errors decide their exit status")
	})

	t.Run("Plain Error Is A Failure", func(t *testing.T) {
		assert.Equal(t, constvars.ExitFailure, ExitCode(errors.New("boom")), "unclassified errors exit 1")
	})
}

func TestMessage(t *testing.T) {
	t.Run("Custom Error Shows The Client Message", func(t *testing.T) {
		err := exceptions.ErrUnknownTestSuite("smoke")

		assert.Equal(t, constvars.ErrClientUnknownTestSuite, Message(err), "operators should see the short message")
	})

	t.Run("Plain Error Shows Its Text", func(t *testing.T) {
		assert.Equal(t, "boom", Message(errors.New("boom")), "plain errors pass through")
	})
}
