package cli

import (
	"errors"
	"time"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/drivers/logger"
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application carries what every subcommand shares: the parsed
// configuration and the zap logger built once flag overrides have
// landed. Database handles are opened per command, so commands that
// never touch the database keep working when it is down.
type application struct {
	DriverConfig   *config.DriverConfig
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

type rootOptions struct {
	LogLevel string
	LogFile  string
}

// NewRootCommand wires the healthsim command tree.
func NewRootCommand(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *cobra.Command {
	app := &application{
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "healthsim",
		Short:         "Operational tooling for the Australian health insurance simulation database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.LogLevel != "" {
				app.DriverConfig.Logger.Level = opts.LogLevel
			}
			if opts.LogFile != "" {
				app.DriverConfig.Logger.OutputFileName = opts.LogFile
				app.DriverConfig.Logger.MirrorToFile = true
			}
			app.Log = logger.NewZapLogger(app.DriverConfig, app.InternalConfig)
			app.Log.Debug("configured database target",
				zap.String(constvars.LoggingServerKey, app.DriverConfig.SQLServer.Server),
				zap.String(constvars.LoggingDatabaseKey, app.DriverConfig.SQLServer.Database),
				zap.String(constvars.LoggingDriverKey, app.DriverConfig.SQLServer.Driver),
			)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override the configured log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "mirror logs to this file next to the console output")

	cmd.AddCommand(newCheckDBCommand(app))
	cmd.AddCommand(newDriversCommand(app))
	cmd.AddCommand(newInitDBCommand(app))
	cmd.AddCommand(newSeedCommand(app))
	cmd.AddCommand(newMembersCommand(app))
	cmd.AddCommand(newTestCommand(app))

	return cmd
}

// parseDateFlag reads a --date value, defaulting to today when the
// flag was not given.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return utils.Today(), nil
	}
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err, value)
	}
	return parsed, nil
}

// ExitCode maps an error returned by Execute to the process exit
// status.
func ExitCode(err error) int {
	if err == nil {
		return constvars.ExitOK
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ExitCode
	}
	return constvars.ExitFailure
}

// Message returns the operator-facing line for an Execute error.
func Message(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
