package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const cancelLogColumns = `id, original_booking_id, course_id, course_title, schedule_id, schedule_date_time,
	company_name, full_name, needs_pc_rental, original_created_at, cancel_reason, canceled_at,
	cancel_method, user_agent, session_info`

const createCancelLog = `
INSERT INTO cancel_logs (` + cancelLogColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

type CreateCancelLogParams struct {
	ID                uuid.UUID
	OriginalBookingID uuid.UUID
	CourseID          uuid.UUID
	CourseTitle       string
	ScheduleID        string
	ScheduleDateTime  pgtype.Timestamptz
	CompanyName       string
	FullName          string
	NeedsPcRental     bool
	OriginalCreatedAt pgtype.Timestamptz
	CancelReason      string
	CanceledAt        pgtype.Timestamptz
	CancelMethod      string
	UserAgent         string
	SessionInfo       []byte
}

func (q *Queries) CreateCancelLog(ctx context.Context, db DBTX, arg CreateCancelLogParams) error {
	_, err := db.Exec(ctx, createCancelLog,
		arg.ID,
		arg.OriginalBookingID,
		arg.CourseID,
		arg.CourseTitle,
		arg.ScheduleID,
		arg.ScheduleDateTime,
		arg.CompanyName,
		arg.FullName,
		arg.NeedsPcRental,
		arg.OriginalCreatedAt,
		arg.CancelReason,
		arg.CanceledAt,
		arg.CancelMethod,
		arg.UserAgent,
		arg.SessionInfo,
	)
	return err
}

// Both bounds are optional; a NULL bound is open. The upper bound is exclusive.
const listCancelLogs = `SELECT ` + cancelLogColumns + `
FROM cancel_logs
WHERE ($1::timestamptz IS NULL OR canceled_at >= $1)
  AND ($2::timestamptz IS NULL OR canceled_at < $2)
ORDER BY canceled_at DESC, id`

type ListCancelLogsParams struct {
	From pgtype.Timestamptz
	To   pgtype.Timestamptz
}

func (q *Queries) ListCancelLogs(ctx context.Context, db DBTX, arg ListCancelLogsParams) ([]CancelLog, error) {
	rows, err := db.Query(ctx, listCancelLogs, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[CancelLog])
}
