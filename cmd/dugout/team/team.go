// Package team implements the team administration commands.
package team

import (
	"github.com/dugout-app/dugout/cmd"
	"github.com/spf13/cobra"
)

// Command is the team command.
var Command = &cobra.Command{
	Use:                "team",
	Aliases:            []string{"teams"},
	Short:              "Manage teams",
	PersistentPreRunE:  cmd.InitBackendContext,
	PersistentPostRunE: cmd.CloseDBContext,
}

func init() {
	Command.AddCommand(
		createCommand(),
		listCommand(),
		membersCommand(),
		statsCommand(),
		repairCommand(),
	)
}
