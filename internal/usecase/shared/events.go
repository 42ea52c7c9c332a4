package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TopicBookingCreated  = "booking.created"
	TopicBookingCanceled = "booking.canceled"
)

// EventPublisher delivers booking lifecycle notifications after the store
// change has already happened. Callers treat failures as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	CourseID      uuid.UUID `json:"courseId"`
	ScheduleID    string    `json:"scheduleId"`
	CompanyName   string    `json:"companyName"`
	FullName      string    `json:"fullName"`
	NeedsPCRental bool      `json:"needsPcRental"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingCanceledEvent struct {
	BookingID    uuid.UUID `json:"bookingId"`
	CourseID     uuid.UUID `json:"courseId"`
	ScheduleID   string    `json:"scheduleId"`
	CancelMethod string    `json:"cancelMethod"`
	AuditWritten bool      `json:"auditWritten"`
	CanceledAt   time.Time `json:"canceledAt"`
}
