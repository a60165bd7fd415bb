package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	bookName    string
	bookEmail   string
	bookService string
	bookDate    string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Submit a reservation, falling back to the local queue when offline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		session := newSession(cfg)

		// Same trigger as opening the booking view: try to flush the
		// queue before taking new input.
		if _, err := session.SyncPending(cmd.Context()); err != nil {
			return err
		}

		result, err := session.Submit(cmd.Context(), bookName, bookEmail, bookService, bookDate)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookName, "name", "", "full name")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "email address")
	bookCmd.Flags().StringVar(&bookService, "service", "", "service to reserve")
	bookCmd.Flags().StringVar(&bookDate, "date", time.Now().Format("2006-01-02"), "reservation date (YYYY-MM-DD)")
	rootCmd.AddCommand(bookCmd)
}
