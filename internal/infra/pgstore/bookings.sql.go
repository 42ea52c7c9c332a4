package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, course_id, schedule_id, company_name, full_name, needs_pc_rental,
	course_title, schedule_date_time, schedule_end_time, created_at, created_by`

func collectBookings(rows pgx.Rows, err error) ([]Booking, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Booking])
}

const listBookings = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id`

func (q *Queries) ListBookings(ctx context.Context, db DBTX) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listBookings))
}

const listBookingsByCourse = `SELECT ` + bookingColumns + `
FROM bookings WHERE course_id = $1 ORDER BY created_at DESC, id`

func (q *Queries) ListBookingsByCourse(ctx context.Context, db DBTX, courseID uuid.UUID) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listBookingsByCourse, courseID))
}

// Inside a serializable transaction this read registers the predicate
// (course_id, schedule_id) so a concurrent insert into the same schedule
// fails one of the two commits.
const listBookingsBySchedule = `SELECT ` + bookingColumns + `
FROM bookings WHERE course_id = $1 AND schedule_id = $2 ORDER BY created_at, id`

type ListBookingsByScheduleParams struct {
	CourseID   uuid.UUID
	ScheduleID string
}

func (q *Queries) ListBookingsBySchedule(ctx context.Context, db DBTX, arg ListBookingsByScheduleParams) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listBookingsBySchedule, arg.CourseID, arg.ScheduleID))
}

const listBookingsByApplicant = `SELECT ` + bookingColumns + `
FROM bookings WHERE company_name = $1 AND full_name = $2 ORDER BY created_at DESC, id`

type ListBookingsByApplicantParams struct {
	CompanyName string
	FullName    string
}

func (q *Queries) ListBookingsByApplicant(ctx context.Context, db DBTX, arg ListBookingsByApplicantParams) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listBookingsByApplicant, arg.CompanyName, arg.FullName))
}

const existsBooking = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE course_id = $1 AND schedule_id = $2 AND company_name = $3 AND full_name = $4
)`

type ExistsBookingParams struct {
	CourseID    uuid.UUID
	ScheduleID  string
	CompanyName string
	FullName    string
}

func (q *Queries) ExistsBooking(ctx context.Context, db DBTX, arg ExistsBookingParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsBooking, arg.CourseID, arg.ScheduleID, arg.CompanyName, arg.FullName).Scan(&exists)
	return exists, err
}

const getBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	rows, err := db.Query(ctx, getBooking, id)
	if err != nil {
		return Booking{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Booking])
}

const createBooking = `
INSERT INTO bookings (
	id, course_id, schedule_id, company_name, full_name, needs_pc_rental,
	course_title, schedule_date_time, schedule_end_time, created_at, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

type CreateBookingParams struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	ScheduleID       string
	CompanyName      string
	FullName         string
	NeedsPcRental    bool
	CourseTitle      string
	ScheduleDateTime pgtype.Timestamptz
	ScheduleEndTime  pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	CreatedBy        pgtype.Text
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.CourseID,
		arg.ScheduleID,
		arg.CompanyName,
		arg.FullName,
		arg.NeedsPcRental,
		arg.CourseTitle,
		arg.ScheduleDateTime,
		arg.ScheduleEndTime,
		arg.CreatedAt,
		arg.CreatedBy,
	)
	return err
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
