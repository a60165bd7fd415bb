package cmd

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"bookbrick/database"
	"bookbrick/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the booking API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := database.Init(cfg.DatabasePath); err != nil {
			return err
		}
		log.Print("bookings table is ready")

		app := fiber.New()
		router.SetupRoutes(app)

		log.Printf("server running on port %s", cfg.Port)
		return app.Listen(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
