package cli

import (
	"fmt"

	"aushealthsim/internal/app/services/shared/sampledata"

	"github.com/spf13/cobra"
)

func newMembersCommand(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the used sample member list",
	}
	cmd.AddCommand(newMembersShowCommand(app))
	cmd.AddCommand(newMembersResetCommand(app))
	return cmd
}

func newMembersShowCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the list of used member IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sampleRepository := sampledata.NewSampleDataFileRepository(app.InternalConfig, app.Log)

			usedIDs, err := sampleRepository.UsedMemberIDs()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Used member IDs (%d):\n", len(usedIDs))
			for _, id := range usedIDs {
				fmt.Fprintf(w, "  %s\n", id)
			}
			return nil
		},
	}
}

func newMembersResetCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the list of used member IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sampleRepository := sampledata.NewSampleDataFileRepository(app.InternalConfig, app.Log)

			if err := sampleRepository.Reset(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Reset the list of used member IDs")
			return nil
		},
	}
}
