package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viniciusbarbosa/agendabarber-api/internal/mailer"
	"github.com/viniciusbarbosa/agendabarber-api/internal/model"
	"github.com/viniciusbarbosa/agendabarber-api/internal/repository"
)

// In-memory repositories used across the usecase tests. They reproduce the
// store's uniqueness guarantees under a mutex so concurrent tests are
// meaningful.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  []*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)

	return user, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == userID {
			u.ResetToken = &token
			u.ResetExpires = &expiresAt
			return nil
		}
	}

	return repository.ErrNotFound
}

func (r *fakeUserRepo) GetUserByResetToken(_ context.Context, token string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) ConsumePasswordReset(_ context.Context, userID int64, token, passwordHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == userID && u.ResetToken != nil && *u.ResetToken == token {
			u.PasswordHash = passwordHash
			u.ResetToken = nil
			u.ResetExpires = nil
			return true, nil
		}
	}

	return false, nil
}

type fakeBookingRepo struct {
	mu     sync.Mutex
	nextID int64
	slots  map[string]*model.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{slots: make(map[string]*model.Booking)}
}

func slotKey(b *model.Booking) string {
	return fmt.Sprintf("%s|%s|%s", b.Date, b.Time, b.Service)
}

func (r *fakeBookingRepo) CreateBooking(_ context.Context, booking *model.Booking) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(booking)
	if _, exists := r.slots[key]; exists {
		return nil, repository.ErrDuplicateSlot
	}

	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	r.slots[key] = booking

	return booking, nil
}

func (r *fakeBookingRepo) ListBookingsByDate(_ context.Context, date string) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*model.Booking
	for _, b := range r.slots {
		if b.Date == date {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Email
	err  error
}

func (m *fakeMailer) Send(email mailer.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.sent = append(m.sent, email)
	return nil
}

func (m *fakeMailer) lastSent() (mailer.Email, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return mailer.Email{}, false
	}

	return m.sent[len(m.sent)-1], true
}
