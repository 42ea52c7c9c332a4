package booking

import (
	"errors"

	"course-booking/internal/domain/course"
)

var (
	ErrDuplicate           = errors.New("applicant already booked this schedule")
	ErrCapacityExceeded    = errors.New("schedule is full")
	ErrRentalQuotaExceeded = errors.New("no pc rental slots left")
)

// Occupancy is what admission needs to know about the current bookings of
// one schedule.
type Occupancy struct {
	Total   int
	Rentals int
}

// Seat is the minimal projection of an existing booking used by admission.
type Seat struct {
	CompanyName   string
	FullName      string
	NeedsPCRental bool
}

func Occupy(seats []Seat) Occupancy {
	o := Occupancy{Total: len(seats)}
	for _, s := range seats {
		if s.NeedsPCRental {
			o.Rentals++
		}
	}
	return o
}

// CheckDuplicate reports ErrDuplicate when the applicant already holds a seat.
// Stored names are compared trimmed so legacy untrimmed rows still match.
func CheckDuplicate(seats []Seat, a Applicant) error {
	for _, s := range seats {
		if a.Matches(s.CompanyName, s.FullName) {
			return ErrDuplicate
		}
	}
	return nil
}

// CheckQuota enforces the capacity ceiling and, for rental requests, the
// independent pc rental quota.
func CheckQuota(o Occupancy, s course.Schedule, needsPCRental bool) error {
	if o.Total >= s.Capacity() {
		return ErrCapacityExceeded
	}
	if needsPCRental && o.Rentals >= s.PCRentalSlots() {
		return ErrRentalQuotaExceeded
	}
	return nil
}
