// Package cmd wires the bookbrick commands: the API server and the
// client-side booking, sync and admin operations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bookbrick/client"
	"bookbrick/config"
	"bookbrick/localstore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "bookbrick",
	Short:         "Booking management service and offline-capable client",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the config file")
}

func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}

// newSession builds the client session for one local profile: the HTTP
// API client plus the queue snapshot at the configured path.
func newSession(cfg config.Config) *client.Session {
	return client.NewSession(client.New(cfg.APIBaseURL), localstore.New(cfg.StorePath))
}
