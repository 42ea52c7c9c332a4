package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleRM struct {
	ID            string     `json:"id"`
	DateTime      time.Time  `json:"dateTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Capacity      int        `json:"capacity"`
	PCRentalSlots int        `json:"pcRentalSlots"`
}

// End falls back to two hours after the start for schedules stored without an end.
func (s ScheduleRM) End() time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}
	return s.DateTime.Add(2 * time.Hour)
}

type CourseRM struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    *string      `json:"category,omitempty"`
	IsActive    bool         `json:"isActive"`
	Schedules   []ScheduleRM `json:"schedules"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (c CourseRM) Schedule(id string) (ScheduleRM, bool) {
	for _, s := range c.Schedules {
		if s.ID == id {
			return s, true
		}
	}
	return ScheduleRM{}, false
}

type ScheduleAvailabilityRM struct {
	ScheduleRM
	Booked          int  `json:"booked"`
	Rentals         int  `json:"rentals"`
	Remaining       int  `json:"remaining"`
	RentalRemaining int  `json:"rentalRemaining"`
	IsFull          bool `json:"isFull"`
}

type CourseAvailabilityRM struct {
	CourseRM
	Availability []ScheduleAvailabilityRM `json:"availability"`
}
