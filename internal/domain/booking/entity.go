package booking

import (
	"time"

	"course-booking/internal/domain/course"

	"github.com/google/uuid"
)

// Booking is one seat reservation. The course title and schedule times are a
// snapshot taken at admission and are not refreshed when the course changes.
type Booking struct {
	id               uuid.UUID
	courseID         uuid.UUID
	scheduleID       string
	applicant        Applicant
	needsPCRental    bool
	courseTitle      string
	scheduleDateTime time.Time
	scheduleEndTime  *time.Time
	createdAt        time.Time
	createdBy        *string
}

// Candidate is an admission request before it has been checked.
type Candidate struct {
	CourseID      uuid.UUID
	ScheduleID    string
	CompanyName   string
	FullName      string
	NeedsPCRental bool
	CreatedBy     *string
}

// NewBooking snapshots c and s into a booking for the applicant.
func NewBooking(c *course.Course, s course.Schedule, applicant Applicant, needsPCRental bool, createdBy *string, now time.Time) *Booking {
	return &Booking{
		id:               uuid.New(),
		courseID:         c.ID(),
		scheduleID:       s.ID(),
		applicant:        applicant,
		needsPCRental:    needsPCRental,
		courseTitle:      c.Title(),
		scheduleDateTime: s.DateTime(),
		scheduleEndTime:  s.EndTime(),
		createdAt:        now,
		createdBy:        createdBy,
	}
}

func Reconstruct(
	id, courseID uuid.UUID,
	scheduleID string,
	applicant Applicant,
	needsPCRental bool,
	courseTitle string,
	scheduleDateTime time.Time,
	scheduleEndTime *time.Time,
	createdAt time.Time,
	createdBy *string,
) *Booking {
	return &Booking{
		id:               id,
		courseID:         courseID,
		scheduleID:       scheduleID,
		applicant:        applicant,
		needsPCRental:    needsPCRental,
		courseTitle:      courseTitle,
		scheduleDateTime: scheduleDateTime,
		scheduleEndTime:  scheduleEndTime,
		createdAt:        createdAt,
		createdBy:        createdBy,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CourseID() uuid.UUID         { return b.courseID }
func (b *Booking) ScheduleID() string          { return b.scheduleID }
func (b *Booking) Applicant() Applicant        { return b.applicant }
func (b *Booking) NeedsPCRental() bool         { return b.needsPCRental }
func (b *Booking) CourseTitle() string         { return b.courseTitle }
func (b *Booking) ScheduleDateTime() time.Time { return b.scheduleDateTime }
func (b *Booking) ScheduleEndTime() *time.Time { return b.scheduleEndTime }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) CreatedBy() *string          { return b.createdBy }
