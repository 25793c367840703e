package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/viniciusbarbosa/agendabarber-api/internal/model"
)

// BookingRepository defines the interface for booking-related database
// operations.
type BookingRepository interface {
	// CreateBooking inserts a new booking. The (date, time, service) unique
	// constraint is the authority on slot conflicts: a violation is returned
	// as ErrDuplicateSlot.
	CreateBooking(ctx context.Context, booking *model.Booking) (*model.Booking, error)

	// ListBookingsByDate returns all bookings on the given calendar date,
	// ordered by time slot.
	ListBookingsByDate(ctx context.Context, date string) ([]*model.Booking, error)
}

type bookingPostgresRepository struct {
	pool *pgxpool.Pool
}

// NewBookingPostgresRepository creates a Postgres-backed BookingRepository.
func NewBookingPostgresRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingPostgresRepository{pool: pool}
}

func (r *bookingPostgresRepository) CreateBooking(
	ctx context.Context,
	booking *model.Booking,
) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (name, phone, service, date, time)
		VALUES ($1, $2, $3, $4::date, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		booking.Name, booking.Phone, booking.Service, booking.Date, booking.Time).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return booking, nil
}

func (r *bookingPostgresRepository) ListBookingsByDate(
	ctx context.Context,
	date string,
) ([]*model.Booking, error) {
	query := `
		SELECT id, name, phone, service, to_char(date, 'YYYY-MM-DD'), time, created_at
		FROM bookings
		WHERE date = $1::date
		ORDER BY time`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Service, &b.Date, &b.Time, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}
