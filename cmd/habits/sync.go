// ABOUTME: CLI commands for sync: now, status, offline, and credentials.
// ABOUTME: Local functionality never blocks on the remote store.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/syncer"
)

var (
	credServer  string
	credAPIKey  string
	credProject string
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync habit data with the remote backend",
	Long: `Sync habit data with the configured remote backend.

The app is offline-first: local data is always authoritative for immediate
use; the remote copy is kept eventually consistent. Conflicts resolve by
last-writer-wins over the whole record.

COMMANDS:

  now         Force a sync (clears offline mode)
  status      Show connectivity, last sync, and pending queue depth
  offline     Flip connectivity off without touching the remote
  login       Store remote credentials and run the startup merge`,
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Force a sync with the remote backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appState.Sync == nil {
			return fmt.Errorf("no remote backend configured (backend is %q)", cfg.GetBackend())
		}
		if err := appState.Sync.ForceSync(cmd.Context()); err != nil {
			if errors.Is(err, syncer.ErrSyncBusy) {
				color.Yellow("⚠ A sync is already in progress")
				return nil
			}
			return err
		}
		color.Green("✓ Synced")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appState.Sync == nil {
			fmt.Printf("backend: %s (local only, no remote sync)\n", cfg.GetBackend())
			return nil
		}

		st, err := appState.Sync.Status()
		if err != nil {
			return err
		}
		pending, err := appState.Sync.Queue().Pending()
		if err != nil {
			return err
		}

		connectivity := color.GreenString("online")
		if !st.Online {
			connectivity = color.YellowString("offline")
		}
		fmt.Printf("backend:      %s\n", cfg.GetBackend())
		fmt.Printf("connectivity: %s\n", connectivity)
		if st.LastSyncAt.IsZero() {
			fmt.Println("last sync:    never")
		} else {
			fmt.Printf("last sync:    %s\n", st.LastSyncAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("in progress:  %v\n", st.InProgress)
		fmt.Printf("pending:      %d item(s)\n", len(pending))
		return nil
	},
}

var syncOfflineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Go offline until the next forced sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := localStore.SyncState()
		if err != nil {
			return err
		}
		st.Online = false
		st.RetryCount = 0
		if err := localStore.SaveSyncState(st); err != nil {
			return err
		}
		color.Yellow("⚠ Offline. Run 'habits sync now' to reconnect.")
		return nil
	},
}

var syncLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store remote credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := &models.Credentials{
			Server:    credServer,
			APIKey:    credAPIKey,
			ProjectID: credProject,
		}
		if err := localStore.SaveCredentials(creds); err != nil {
			return err
		}
		color.Green("✓ Credentials saved")

		if appState.Sync != nil {
			if err := appState.Sync.Reconcile(cmd.Context()); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}
		return nil
	},
}

// userKey identifies the single remote user record.
func userKey(creds *models.Credentials) string {
	if creds != nil && creds.UserKey != "" {
		return creds.UserKey
	}
	return "primary"
}

func init() {
	syncLoginCmd.Flags().StringVar(&credServer, "server", "", "remote server URL or host")
	syncLoginCmd.Flags().StringVar(&credAPIKey, "api-key", "", "remote API key")
	syncLoginCmd.Flags().StringVar(&credProject, "project", "", "remote project ID")
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncOfflineCmd)
	syncCmd.AddCommand(syncLoginCmd)
}
