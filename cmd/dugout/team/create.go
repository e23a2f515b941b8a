package team

import (
	"strings"

	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/db/models"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/spf13/cobra"
)

// createCommand is the command for creating a new team.
func createCommand() *cobra.Command {
	var (
		owner     string
		ownerName string
		sport     string
		invite    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			mode := models.JoinModeOpen
			if invite {
				mode = models.JoinModeInvite
			}

			team, err := be.CreateTeam(ctx, proto.Identity{UID: owner, Name: ownerName},
				strings.Join(args, " "), sport, mode)
			if err != nil {
				return err
			}

			cmd.Println(team.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&owner, "owner", "o", "", "uid of the team owner")
	cmd.Flags().StringVar(&ownerName, "owner-name", "", "display name of the team owner")
	cmd.Flags().StringVarP(&sport, "sport", "s", "", "sport the team plays")
	cmd.Flags().BoolVar(&invite, "invite", false, "only accept members by invitation")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
