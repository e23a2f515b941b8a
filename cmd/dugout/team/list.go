package team

import (
	"github.com/caarlos0/tablewriter"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// listCommand returns a command that lists every team.
func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List teams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			teams, err := be.ListTeams(ctx)
			if err != nil {
				return err
			}

			if len(teams) == 0 {
				cmd.Println("No teams found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				teams,
				[]string{"ID", "Name", "Owner", "Sport", "Join Mode", "Created"},
				func(t models.Team) ([]string, error) {
					return []string{
						t.ID,
						t.Name,
						t.OwnerUID,
						t.SportType,
						string(t.JoinMode),
						humanize.Time(t.CreatedAt),
					}, nil
				},
			)
		},
	}
}

// membersCommand returns a command that lists the members of a team.
func membersCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "members TEAM",
		Short: "List the members of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			team, err := be.ResolveActiveTeam(ctx, args[0])
			if err != nil {
				return err
			}

			members, err := be.ListMembers(ctx, team.ID, !all)
			if err != nil {
				return err
			}

			if len(members) == 0 {
				cmd.Println("No members found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				members,
				[]string{"UID", "Name", "Role", "Active", "Joined"},
				func(m models.Member) ([]string, error) {
					active := "yes"
					if !m.IsActive {
						active = "no"
					}
					return []string{
						m.UID,
						m.DisplayName,
						m.AccessRole().String(),
						active,
						humanize.Time(m.JoinedAt),
					}, nil
				},
			)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include inactive members")

	return cmd
}
