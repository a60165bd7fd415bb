package router

import (
	"bookbrick/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	booking := api.Group("/bookings")
	booking.Get("/", handlers.GetBookings)
	booking.Post("/", handlers.CreateBooking)
	booking.Delete("/:id", handlers.DeleteBooking)
}
