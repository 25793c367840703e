package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viniciusbarbosa/agendabarber-api/internal/model"
	"github.com/viniciusbarbosa/agendabarber-api/internal/repository"
)

// BookingUsecase defines the business logic for reserving appointment slots.
type BookingUsecase interface {
	// Book validates the requested slot against the opening schedule and
	// reserves it. The store's unique constraint decides conflicts, so two
	// concurrent requests for the same slot cannot both succeed.
	Book(ctx context.Context, params BookParams) (*model.Booking, error)

	// ListByDate returns all bookings on the given calendar date.
	ListByDate(ctx context.Context, date string) ([]*model.Booking, error)
}

// BookParams defines the parameters for reserving a slot.
type BookParams struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
}

var (
	ErrSlotTaken       = errors.New("slot already booked")
	ErrUnknownService  = errors.New("unknown service")
	ErrInvalidDate     = errors.New("invalid date")
	ErrOutsideSchedule = errors.New("time outside opening schedule")
)

const dateLayout = "2006-01-02"

// services lists the bookable service names.
var services = map[string]struct{}{
	"Corte":         {},
	"Barba":         {},
	"Corte + Barba": {},
}

// slotGrid holds the half-hour slots between 09:00 and 20:00, minus the
// 12:00 and 12:30 lunch break.
var slotGrid = buildSlotGrid()

func buildSlotGrid() map[string]struct{} {
	grid := make(map[string]struct{})
	for hour := 9; hour <= 20; hour++ {
		grid[fmt.Sprintf("%02d:00", hour)] = struct{}{}
		if hour < 20 {
			grid[fmt.Sprintf("%02d:30", hour)] = struct{}{}
		}
	}
	delete(grid, "12:00")
	delete(grid, "12:30")
	return grid
}

type bookingUsecase struct {
	bookingRepo repository.BookingRepository
}

// NewBookingUsecase creates a new instance of BookingUsecase.
func NewBookingUsecase(bookingRepo repository.BookingRepository) BookingUsecase {
	return &bookingUsecase{bookingRepo: bookingRepo}
}

func (u *bookingUsecase) Book(ctx context.Context, params BookParams) (*model.Booking, error) {
	if err := validateSlot(params); err != nil {
		return nil, err
	}

	booking, err := u.bookingRepo.CreateBooking(ctx, &model.Booking{
		Name:    params.Name,
		Phone:   params.Phone,
		Service: params.Service,
		Date:    params.Date,
		Time:    params.Time,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return booking, nil
}

func (u *bookingUsecase) ListByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	return u.bookingRepo.ListBookingsByDate(ctx, date)
}

// validateSlot enforces the opening schedule on the server side: known
// service, parseable date, time on the half-hour grid. Closed weekdays stay a
// client concern; the date picker never offers them.
func validateSlot(params BookParams) error {
	if _, ok := services[params.Service]; !ok {
		return ErrUnknownService
	}

	if _, err := time.Parse(dateLayout, params.Date); err != nil {
		return ErrInvalidDate
	}

	if _, ok := slotGrid[params.Time]; !ok {
		return ErrOutsideSchedule
	}

	return nil
}
