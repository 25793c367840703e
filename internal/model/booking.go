package model

import "time"

// Booking represents one reserved appointment slot. Date uses the 2006-01-02
// layout and Time is a half-hour slot label such as "14:30". The store enforces
// uniqueness of the (date, time, service) triple.
type Booking struct {
	ID        int64
	Name      string
	Phone     string
	Service   string
	Date      string
	Time      string
	CreatedAt time.Time
}
