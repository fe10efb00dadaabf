package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (h *BookingController) Store(c *ctx.Context) {
	var in services.BookingInput
	if err := c.Bind(&in); err != nil {
		decodeFailed(c, err)
		c.Error(http.StatusBadRequest, invalidRequest)
		return
	}

	if _, err := h.bookings.Create(c.Context(), in); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.Error(http.StatusBadRequest, msg)
			return
		}
		internalError(c, "Error saving booking.", err)
		return
	}

	metrics.Bookings.Inc()
	c.Message(http.StatusCreated, "Booking saved successfully!")
}
