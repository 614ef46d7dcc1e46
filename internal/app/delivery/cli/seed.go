package cli

import (
	"fmt"

	"aushealthsim/internal/app/config"
	"aushealthsim/internal/app/drivers/database"
	"aushealthsim/internal/app/services/insurance/members"
	"aushealthsim/internal/app/services/insurance/plans"
	"aushealthsim/internal/app/services/insurance/providers"
	"aushealthsim/internal/app/services/insurance/seeding"
	"aushealthsim/internal/app/services/shared/sampledata"
	"aushealthsim/internal/app/services/shared/sqlexec"

	"github.com/spf13/cobra"
)

type seedOptions struct {
	Members   int
	Plans     int
	Providers int
	Date      string
}

func newSeedCommand(app *application) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load initial members, coverage plans and providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag(opts.Date)
			if err != nil {
				return err
			}

			db := database.NewSQLServerDB(app.DriverConfig)
			bootstrap := &config.Bootstrap{DB: db, Logger: app.Log}
			defer bootstrap.Shutdown()

			sqlClient := sqlexec.NewMSSQLClient(db, app.Log)
			memberRepository := members.NewMemberMssqlRepository(db, sqlClient, app.Log)
			planRepository := plans.NewCoveragePlanMssqlRepository(db, sqlClient, app.Log)
			providerRepository := providers.NewProviderMssqlRepository(db, sqlClient, app.Log)
			sampleRepository := sampledata.NewSampleDataFileRepository(app.InternalConfig, app.Log)
			seeder := seeding.NewSeedUsecase(sampleRepository, memberRepository, planRepository, providerRepository, app.Log)

			w := cmd.OutOrStdout()

			insertedMembers, err := seeder.SeedMembers(cmd.Context(), opts.Members, asOf)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Added %d members\n", insertedMembers)

			insertedPlans, err := seeder.SeedPlans(cmd.Context(), opts.Plans, asOf)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Added %d coverage plans\n", insertedPlans)

			insertedProviders, err := seeder.SeedProviders(cmd.Context(), opts.Providers, asOf)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Added %d providers\n", insertedProviders)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Members, "members", 50, "number of sample members to load")
	cmd.Flags().IntVar(&opts.Plans, "plans", 15, "number of coverage plans to generate")
	cmd.Flags().IntVar(&opts.Providers, "providers", 30, "number of providers to generate")
	cmd.Flags().StringVar(&opts.Date, "date", "", "as-of date in YYYY-MM-DD form (default today)")
	return cmd
}
