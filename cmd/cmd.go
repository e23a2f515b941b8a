// Package cmd holds helpers shared by the dugout commands.
package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/backend"
	"github.com/dugout-app/dugout/pkg/config"
	"github.com/dugout-app/dugout/pkg/db"
	"github.com/dugout-app/dugout/pkg/store"
	"github.com/dugout-app/dugout/pkg/store/database"
	"github.com/spf13/cobra"
)

// InitBackendContext opens the database and attaches the database, store
// and backend to the command context.
func InitBackendContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return config.ErrNilConfig
	}
	if _, err := os.Stat(cfg.DataPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ctx = db.WithContext(ctx, dbx)
	dbstore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, dbstore)
	be := backend.New(ctx, cfg, dbx, dbstore)
	ctx = backend.WithContext(ctx, be)

	cmd.SetContext(ctx)

	return nil
}

// CloseDBContext closes the backend and the database context.
func CloseDBContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if be := backend.FromContext(ctx); be != nil {
		_ = be.Close()
	}
	dbx := db.FromContext(ctx)
	if dbx != nil {
		if err := dbx.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	return nil
}

// EnsureAuthSecret makes sure cfg has a token signing secret. When none is
// configured a random one is generated; tokens signed with it do not
// survive a restart.
func EnsureAuthSecret(cfg *config.Config, logger *log.Logger) error {
	if cfg.Auth.Secret != "" {
		return nil
	}
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Errorf("generate auth secret: %w", err)
	}
	cfg.Auth.Secret = hex.EncodeToString(b[:])
	logger.Warn("no auth secret configured, using an ephemeral one; set DUGOUT_AUTH_SECRET to keep sessions across restarts")
	return nil
}
