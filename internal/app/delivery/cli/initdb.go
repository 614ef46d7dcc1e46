package cli

import (
	"fmt"

	"aushealthsim/cmd/migration"
	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/drivers/database"
	"aushealthsim/internal/pkg/constvars"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type initDBOptions struct {
	Drop bool
}

func newInitDBCommand(app *application) *cobra.Command {
	opts := &initDBOptions{}

	cmd := &cobra.Command{
		Use:   "initdb",
		Short: "Create the insurance schema by applying the SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := database.NewSQLServerDB(app.DriverConfig)
			bootstrap := &config.Bootstrap{DB: db, Logger: app.Log}
			defer bootstrap.Shutdown()

			if opts.Drop {
				app.Log.Warn("dropping existing schema before applying migrations")
			}

			applied, err := migration.Run(db, app.InternalConfig.App.MigrationsPath, opts.Drop)
			if err != nil {
				app.Log.Error("initdb failed", zap.Error(err))
				return err
			}

			app.Log.Info("initdb applied migrations", zap.Int(constvars.LoggingCountKey, applied))
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations\n", applied)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Drop, "drop", false, "run every down migration first, rebuilding the schema from scratch")
	return cmd
}
