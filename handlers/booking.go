package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"bookbrick/database"
	"bookbrick/httperr"
	"bookbrick/model"
	"bookbrick/validation"
)

func CreateBooking(c *fiber.Ctx) error {
	payload := new(model.BookingPayload)

	if err := c.BodyParser(payload); err != nil {
		return httperr.RaiseBadRequestError(c, "Missing required fields")
	}
	payload.Name = validation.Trim(payload.Name)
	payload.Email = validation.Trim(payload.Email)
	payload.Service = validation.Trim(payload.Service)
	payload.Date = validation.Trim(payload.Date)

	if err := validation.BookingFields(payload.Name, payload.Email, payload.Service, payload.Date); err != nil {
		return httperr.RaiseBadRequestError(c, validationMessage(err))
	}
	if err := validation.NotPast(payload.Date, time.Now()); err != nil {
		return httperr.RaiseBadRequestError(c, validationMessage(err))
	}

	booking, dberr := database.InsertBooking(*payload)
	if dberr != nil {
		log.Printf("error creating booking: %v", dberr)
		return httperr.RaiseInternalServerError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking})
}

func GetBookings(c *fiber.Ctx) error {
	bookings, dberr := database.GetBookings()
	if dberr != nil {
		log.Printf("error fetching bookings: %v", dberr)
		return httperr.RaiseInternalServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fetch bookings successful",
		"data":    bookings})
}

func DeleteBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return httperr.RaiseBadRequestError(c, "Missing booking id")
	}

	deleted, dberr := database.DeleteBooking(id)
	if dberr != nil {
		log.Printf("error deleting booking: %v", dberr)
		return httperr.RaiseInternalServerError(c)
	}
	if !deleted {
		return httperr.RaiseNotFoundError(c, "Booking not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking deleted"})
}

// validationMessage translates validation sentinels into the messages the
// original API contract promises.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, validation.ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, validation.ErrInvalidDate):
		return "Invalid date format"
	case errors.Is(err, validation.ErrPastDate):
		return "Cannot book a past date"
	}
	return err.Error()
}
