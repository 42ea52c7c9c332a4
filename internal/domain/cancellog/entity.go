package cancellog

import (
	"strings"
	"time"

	"course-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// ClientInfo is what the canceling client told us about itself.
type ClientInfo struct {
	UserAgent string
	TimeZone  string
	Timestamp time.Time
}

// CancelLog is an append-only audit record holding a full snapshot of the
// booking it replaced.
type CancelLog struct {
	id                uuid.UUID
	originalBookingID uuid.UUID
	courseID          uuid.UUID
	courseTitle       string
	scheduleID        string
	scheduleDateTime  time.Time
	companyName       string
	fullName          string
	needsPCRental     bool
	originalCreatedAt time.Time
	cancelReason      string
	canceledAt        time.Time
	cancelMethod      Method
	client            ClientInfo
}

func NewFromBooking(b *booking.Booking, reason string, method Method, client ClientInfo, now time.Time) (*CancelLog, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	reason = strings.TrimSpace(reason)
	// only the applicant-facing flow must state a reason
	if reason == "" {
		switch method {
		case MethodAdminOverride:
			reason = DefaultAdminReason
		case MethodSystem:
			reason = DefaultSystemReason
		default:
			return nil, ErrReasonRequired
		}
	}
	if client.Timestamp.IsZero() {
		client.Timestamp = now
	}

	return &CancelLog{
		id:                uuid.New(),
		originalBookingID: b.ID(),
		courseID:          b.CourseID(),
		courseTitle:       b.CourseTitle(),
		scheduleID:        b.ScheduleID(),
		scheduleDateTime:  b.ScheduleDateTime(),
		companyName:       b.Applicant().CompanyName(),
		fullName:          b.Applicant().FullName(),
		needsPCRental:     b.NeedsPCRental(),
		originalCreatedAt: b.CreatedAt(),
		cancelReason:      reason,
		canceledAt:        now,
		cancelMethod:      method,
		client:            client,
	}, nil
}

func (l *CancelLog) ID() uuid.UUID                { return l.id }
func (l *CancelLog) OriginalBookingID() uuid.UUID { return l.originalBookingID }
func (l *CancelLog) CourseID() uuid.UUID          { return l.courseID }
func (l *CancelLog) CourseTitle() string          { return l.courseTitle }
func (l *CancelLog) ScheduleID() string           { return l.scheduleID }
func (l *CancelLog) ScheduleDateTime() time.Time  { return l.scheduleDateTime }
func (l *CancelLog) CompanyName() string          { return l.companyName }
func (l *CancelLog) FullName() string             { return l.fullName }
func (l *CancelLog) NeedsPCRental() bool          { return l.needsPCRental }
func (l *CancelLog) OriginalCreatedAt() time.Time { return l.originalCreatedAt }
func (l *CancelLog) CancelReason() string         { return l.cancelReason }
func (l *CancelLog) CanceledAt() time.Time        { return l.canceledAt }
func (l *CancelLog) CancelMethod() Method         { return l.cancelMethod }
func (l *CancelLog) Client() ClientInfo           { return l.client }
