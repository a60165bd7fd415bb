package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookbrick/client"
	"bookbrick/model"
)

var listPending bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings held by the server, or the local pending queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if listPending {
			session := newSession(cfg)
			pending := []model.BookingRecord{}
			for _, r := range session.Reservations() {
				if r.Status == model.StatusLocal {
					pending = append(pending, r)
				}
			}
			if len(pending) == 0 {
				fmt.Println("No pending local bookings.")
				return nil
			}
			for _, r := range pending {
				fmt.Printf("%s  %s — %s  %s • %s\n", r.ID, r.FullName, r.Service, r.Email, r.Date)
			}
			return nil
		}

		api := client.New(cfg.APIBaseURL)
		bookings, err := api.ListBookings(cmd.Context())
		if err != nil {
			return err
		}
		if len(bookings) == 0 {
			fmt.Println("No bookings yet.")
			return nil
		}
		for _, b := range bookings {
			fmt.Printf("#%d  %s — %s  %s • %s\n", b.ID, b.Name, b.Service, b.Email, b.Date)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listPending, "pending", false, "show the local queue instead of server bookings")
	rootCmd.AddCommand(listCmd)
}
