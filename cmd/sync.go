package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replay queued local bookings against the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		session := newSession(cfg)

		result, err := session.SyncPending(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Synced: %d\n", len(result.Synced))
		fmt.Printf("Remaining: %d\n", len(result.Remaining))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
