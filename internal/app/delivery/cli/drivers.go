package cli

import (
	"fmt"
	"strings"

	"aushealthsim/internal/app/services/insurance/schema"

	"github.com/spf13/cobra"
)

func newDriversCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List the database/sql drivers compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Checking registered database/sql drivers:")
			fmt.Fprintln(w, strings.Repeat("-", 50))

			// Listing never opens a connection, so no database handle
			// is needed here.
			schemaUsecase := schema.NewSchemaUsecase(nil, app.Log)
			driverNames := schemaUsecase.RegisteredDrivers()
			if len(driverNames) == 0 {
				fmt.Fprintln(w, "No drivers found.")
			} else {
				fmt.Fprintln(w, "Found the following drivers:")
				for i, name := range driverNames {
					fmt.Fprintf(w, "%d. %s\n", i+1, name)
				}
			}

			fmt.Fprintln(w, "\nRecommended driver for SQL Server: sqlserver")
			fmt.Fprintln(w, "Example: DB_DRIVER=sqlserver")
			return nil
		},
	}
}
