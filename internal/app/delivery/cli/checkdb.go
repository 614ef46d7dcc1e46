package cli

import (
	"fmt"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/drivers/database"
	"aushealthsim/internal/app/services/insurance/schema"
	"aushealthsim/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

// detailTables are the tables whose columns checkdb lists in full.
var detailTables = []string{"Members", "Policies", "Claims", "Providers"}

func newCheckDBCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "checkdb",
		Short: "Print the live database structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Connecting to %s, %s...\n",
				app.DriverConfig.SQLServer.Server,
				app.DriverConfig.SQLServer.Database,
			)

			db := database.NewSQLServerDB(app.DriverConfig)
			bootstrap := &config.Bootstrap{DB: db, Logger: app.Log}
			defer bootstrap.Shutdown()

			schemaUsecase := schema.NewSchemaUsecase(db, app.Log)

			tables, err := schemaUsecase.Tables(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "\n=== Tables ===")
			for _, table := range tables {
				fmt.Fprintf(w, "%s.%s\n", table.Schema, table.Name)
			}

			for _, table := range detailTables {
				columns, err := schemaUsecase.Columns(cmd.Context(), constvars.SchemaName, table)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\n=== %s.%s Columns ===\n", constvars.SchemaName, table)
				for _, column := range columns {
					nullable := "NOT NULL"
					if column.IsNullable {
						nullable = "NULL"
					}
					fmt.Fprintf(w, "%s: %s(%d) %s\n", column.Name, column.TypeName, column.MaxLength, nullable)
				}
			}
			return nil
		},
	}
}
