package shared

import (
	"context"

	"course-booking/internal/domain/admin"
	"course-booking/internal/domain/booking"
	"course-booking/internal/domain/cancellog"
	"course-booking/internal/domain/category"
	"course-booking/internal/domain/course"
	"course-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRetriesExhausted marks a serializable transaction that kept conflicting.
var ErrRetriesExhausted = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary writes, run once
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction; every read inside it joins
	// conflict detection and the whole fn is retried on a detected conflict
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single statements on the pool, no surrounding transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one executor, either a live transaction
// or the pool (WithDB).
type Tx interface {
	Bookings() BookingRepository
	Courses() CourseRepository
	CancelLogs() CancelLogRepository
	Categories() CategoryRepository
	Admins() AdminRepository
	Reads() CommandReads
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	AdminByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type BookingRepository interface {
	// ListBySchedule returns the seats currently held on one schedule.
	ListBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]booking.Seat, error)
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseRepository interface {
	Create(ctx context.Context, c *course.Course) error
	Update(ctx context.Context, c *course.Course) error
}

// CancelLogRepository is append-only.
type CancelLogRepository interface {
	Create(ctx context.Context, l *cancellog.CancelLog) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) error
}

type AdminRepository interface {
	Create(ctx context.Context, a *admin.Admin) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// Prefill is the last applicant identity a browser client submitted. It only
// fills forms and is never consulted by admission.
type Prefill struct {
	CompanyName string `json:"companyName"`
	FullName    string `json:"fullName"`
}

type PrefillStore interface {
	Save(ctx context.Context, clientID string, p Prefill) error
	Load(ctx context.Context, clientID string) (Prefill, error)
}
