package response

import (
	"time"

	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type CancelLogResponse struct {
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
}

type CancelResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	AuditWritten bool      `json:"auditWritten"`
}

type ExistingBookingResponse struct {
	Booked bool `json:"booked"`
}

func FromBookingRMs(rms []readmodel.BookingRM) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(rms))
	if err := copier.Copy(&out, &rms); err != nil {
		return nil, err
	}
	return out, nil
}

func FromCancelLogRMs(rms []readmodel.CancelLogRM) ([]CancelLogResponse, error) {
	out := make([]CancelLogResponse, 0, len(rms))
	if err := copier.Copy(&out, &rms); err != nil {
		return nil, err
	}
	return out, nil
}
