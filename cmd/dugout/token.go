package main

import (
	"strings"
	"time"

	"github.com/caarlos0/duration"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/proto"
	"github.com/dugout-app/dugout/pkg/web"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	tokenName      string
	tokenExpiresIn string

	tokenCmd = &cobra.Command{
		Use:   "token UID",
		Short: "Issue an identity token for a user",
		Long: "Issue an identity token signed with the configured auth secret.\n" +
			"The token authenticates API requests as the given user.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			uid := strings.TrimSpace(args[0])
			if uid == "" {
				return proto.ErrMissingField
			}

			var ttl time.Duration
			if tokenExpiresIn != "" {
				d, err := duration.Parse(tokenExpiresIn)
				if err != nil {
					return err
				}
				ttl = d
			}

			token, expiresAt, err := web.IssueToken(cfg, proto.Identity{UID: uid, Name: tokenName}, ttl)
			if err != nil {
				return err
			}

			notice := "Token issued for " + uid
			if !expiresAt.IsZero() {
				notice += " (expires " + humanize.Time(expiresAt) + ")"
			}
			cmd.PrintErrln(notice)
			cmd.Println(token)
			return nil
		},
	}
)

func init() {
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name carried by the token")
	tokenCmd.Flags().StringVar(&tokenExpiresIn, "expires-in", "", "token expiration time (e.g. 1y, 3mo, 2w, 5d4h, 1h30m)")
}
