package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/dinein/app/models"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

// BookingInput is the booking request body. Every field is required.
type BookingInput struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Persons int    `json:"persons" validate:"required"`
	Date    string `json:"date"    validate:"required"`
}

type BookingService struct {
	bookings repositories.BookingRepository
}

func NewBookingService(bookings repositories.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

func (s *BookingService) Create(ctx context.Context, in BookingInput) (*models.Booking, error) {
	if msg := validate.First(in); msg != "" {
		return nil, invalid(msg)
	}

	booking := &models.Booking{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Persons: in.Persons,
		Date:    strings.TrimSpace(in.Date),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("booking: %w", err)
	}
	return booking, nil
}
