package team

import (
	"strconv"

	"github.com/caarlos0/tablewriter"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/spf13/cobra"
)

// statsCommand returns a command that prints the attendance rates of a
// team.
func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats TEAM",
		Short: "Show attendance rates of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			team, err := be.ResolveActiveTeam(ctx, args[0])
			if err != nil {
				return err
			}

			stats, err := be.ComputeRates(ctx, team.ID)
			if err != nil {
				return err
			}

			if stats.Empty() {
				cmd.Println("No events yet")
				return nil
			}

			cmd.Printf("%d events\n", stats.TotalEvents)
			return tablewriter.Render(
				cmd.OutOrStdout(),
				stats.Members,
				[]string{"Name", "Attended", "Rate"},
				func(m backend.MemberRate) ([]string, error) {
					return []string{
						m.Name,
						strconv.Itoa(m.Count),
						strconv.FormatFloat(m.Rate, 'f', 1, 64) + "%",
					}, nil
				},
			)
		},
	}
}

// repairCommand returns a command that repairs teams missing their owner
// member.
func repairCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Recreate missing owner memberships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			n, err := be.RepairBootstraps(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("Repaired %d teams\n", n)
			return nil
		},
	}
}
