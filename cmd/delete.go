package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookbrick/client"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a booking by its server id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid booking id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		api := client.New(cfg.APIBaseURL)
		if err := api.DeleteBooking(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Println("Booking deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
