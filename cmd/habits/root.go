// ABOUTME: Root Cobra command for habits CLI.
// ABOUTME: Opens the local store and remote backend via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/app"
	"github.com/harperreed/habits/internal/config"
	"github.com/harperreed/habits/internal/store"
	"github.com/harperreed/habits/internal/syncer"
)

var (
	appState   *app.App
	localStore *store.Store
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Personal habit tracker with streaks and milestones",
	Long: `Habits tracks daily weight, steps, exercise, water, and a wellness
checklist, derives consecutive-day streaks, and unlocks milestones you can
attach self-chosen rewards to.

QUICK START:

  $ habits setup --start 200 --goal 150 --steps 10000 --exercise 30 --water 2
  $ habits log --steps 12000 --exercise 35 --type run --water 2.5 --weight 198
  $ habits streaks                    # See your counters
  $ habits milestones                 # What you can claim
  $ habits claim streak 7             # Claim an achieved milestone

REWARDS:

  $ habits reward add streak 30 "new running shoes"
  $ habits reward list
  $ habits reward delete a1b2c3

SYNC (OFFLINE-FIRST):

  Local data is always authoritative for immediate use; a remote backend
  (sqlite, charm, or rest) is kept eventually consistent in the background.

  $ habits sync now       # Force a sync, clearing offline mode
  $ habits sync status    # Connectivity, last sync, pending queue

MCP INTEGRATION:

  Run 'habits mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "habits": { "command": "habits", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		localStore, err = store.Open(cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open local store: %w", err)
		}

		appState = app.New(localStore, nil)

		if cfg.GetBackend() != "local" {
			creds, err := localStore.Credentials()
			if err != nil {
				return fmt.Errorf("failed to read credentials: %w", err)
			}
			rs, err := cfg.OpenRemote(creds)
			if err != nil {
				return fmt.Errorf("failed to open remote backend: %w", err)
			}
			appState.Sync = syncer.New(localStore, rs, userKey(creds))

			// Startup merge is best-effort; the app stays usable offline.
			_ = appState.Sync.Reconcile(context.Background())
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if localStore != nil {
			return localStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(mcpCmd)
}
