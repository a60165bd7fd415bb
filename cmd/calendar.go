package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bookbrick/calendar"
)

var (
	calYear  int
	calMonth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month grid with reservation counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		session := newSession(cfg)

		now := time.Now()
		year, month := calYear, time.Month(calMonth)
		if year == 0 {
			year = now.Year()
		}
		if calMonth == 0 {
			month = now.Month()
		} else if calMonth < 1 || calMonth > 12 {
			return fmt.Errorf("invalid month %d", calMonth)
		}

		today := now.Format("2006-01-02")
		counts := calendar.CountByDate(session.Reservations())
		grid := calendar.BuildGrid(year, month, today, "", counts)

		fmt.Printf("%s %d\n", month, year)
		fmt.Println("Sun  Mon  Tue  Wed  Thu  Fri  Sat")
		var row strings.Builder
		for i, day := range grid {
			cell := fmt.Sprintf("%2d", day.Date.Day())
			if !day.InMonth {
				cell = " ."
			}
			mark := "  "
			if day.ReservedCount > 0 {
				mark = fmt.Sprintf("*%d", day.ReservedCount)
			}
			row.WriteString(cell + mark + " ")
			if (i+1)%7 == 0 {
				fmt.Println(strings.TrimRight(row.String(), " "))
				row.Reset()
			}
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().IntVar(&calYear, "year", 0, "year to show (defaults to the current year)")
	calendarCmd.Flags().IntVar(&calMonth, "month", 0, "month to show, 1-12 (defaults to the current month)")
	rootCmd.AddCommand(calendarCmd)
}
