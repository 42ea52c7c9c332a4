package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID               uuid.UUID  `json:"id"`
	CourseID         uuid.UUID  `json:"courseId"`
	ScheduleID       string     `json:"scheduleId"`
	CompanyName      string     `json:"companyName"`
	FullName         string     `json:"fullName"`
	NeedsPCRental    bool       `json:"needsPcRental"`
	CourseTitle      string     `json:"courseTitle"`
	ScheduleDateTime time.Time  `json:"scheduleDateTime"`
	ScheduleEndTime  *time.Time `json:"scheduleEndTime,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CreatedBy        *string    `json:"createdBy,omitempty"`
}

type CancelLogRM struct {
	ID                uuid.UUID `json:"id"`
	OriginalBookingID uuid.UUID `json:"originalBookingId"`
	CourseID          uuid.UUID `json:"courseId"`
	CourseTitle       string    `json:"courseTitle"`
	ScheduleID        string    `json:"scheduleId"`
	ScheduleDateTime  time.Time `json:"scheduleDateTime"`
	CompanyName       string    `json:"companyName"`
	FullName          string    `json:"fullName"`
	NeedsPCRental     bool      `json:"needsPcRental"`
	OriginalCreatedAt time.Time `json:"originalCreatedAt"`
	CancelReason      string    `json:"cancelReason"`
	CanceledAt        time.Time `json:"canceledAt"`
	CancelMethod      string    `json:"cancelMethod"`
	UserAgent         string    `json:"userAgent"`
	SessionTimeZone   string    `json:"sessionTimeZone"`
	SessionTimestamp  time.Time `json:"sessionTimestamp"`
}
