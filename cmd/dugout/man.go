package main

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

const manEnvironment = `DUGOUT_DATA_PATH
    Directory holding config.yaml and the SQLite database. Defaults to ./data.
DUGOUT_AUTH_SECRET
    HMAC secret used to sign and verify identity tokens.
DUGOUT_JOBS_BOOTSTRAP_REPAIR
    Cron spec of the team bootstrap repair job. Empty disables it.
DUGOUT_DEBUG, DUGOUT_VERBOSE
    Enable debug logging and query tracing.`

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate the dugout man page",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := mcobra.NewManPage(1, cmd.Root())
		if err != nil {
			return err
		}

		page = page.
			WithSection("Environment", manEnvironment).
			WithSection("Files", "$DUGOUT_DATA_PATH/config.yaml\n    Server configuration, written on first start.").
			WithSection("Copyright", "Released under MIT license.")
		fmt.Fprintln(cmd.OutOrStdout(), page.Build(roff.NewDocument()))
		return nil
	},
}
