package pgstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Course struct {
	ID          uuid.UUID          `db:"id"`
	Title       string             `db:"title"`
	Description string             `db:"description"`
	Category    pgtype.Text        `db:"category"`
	IsActive    bool               `db:"is_active"`
	Schedules   []byte             `db:"schedules"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

// ScheduleDoc is one element of courses.schedules.
type ScheduleDoc struct {
	ID            string     `json:"id"`
	DateTime      time.Time  `json:"dateTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Capacity      int        `json:"capacity"`
	PCRentalSlots int        `json:"pcRentalSlots"`
}

type Booking struct {
	ID               uuid.UUID          `db:"id"`
	CourseID         uuid.UUID          `db:"course_id"`
	ScheduleID       string             `db:"schedule_id"`
	CompanyName      string             `db:"company_name"`
	FullName         string             `db:"full_name"`
	NeedsPcRental    bool               `db:"needs_pc_rental"`
	CourseTitle      string             `db:"course_title"`
	ScheduleDateTime pgtype.Timestamptz `db:"schedule_date_time"`
	ScheduleEndTime  pgtype.Timestamptz `db:"schedule_end_time"`
	CreatedAt        pgtype.Timestamptz `db:"created_at"`
	CreatedBy        pgtype.Text        `db:"created_by"`
}

type CancelLog struct {
	ID                uuid.UUID          `db:"id"`
	OriginalBookingID uuid.UUID          `db:"original_booking_id"`
	CourseID          uuid.UUID          `db:"course_id"`
	CourseTitle       string             `db:"course_title"`
	ScheduleID        string             `db:"schedule_id"`
	ScheduleDateTime  pgtype.Timestamptz `db:"schedule_date_time"`
	CompanyName       string             `db:"company_name"`
	FullName          string             `db:"full_name"`
	NeedsPcRental     bool               `db:"needs_pc_rental"`
	OriginalCreatedAt pgtype.Timestamptz `db:"original_created_at"`
	CancelReason      string             `db:"cancel_reason"`
	CanceledAt        pgtype.Timestamptz `db:"canceled_at"`
	CancelMethod      string             `db:"cancel_method"`
	UserAgent         string             `db:"user_agent"`
	SessionInfo       []byte             `db:"session_info"`
}

// SessionInfo is the cancel_logs.session_info document.
type SessionInfo struct {
	Timestamp time.Time `json:"timestamp"`
	TimeZone  string    `json:"timezone"`
}

type Category struct {
	ID          uuid.UUID   `db:"id"`
	Name        string      `db:"name"`
	Description pgtype.Text `db:"description"`
	IsActive    bool        `db:"is_active"`
	Order       int32       `db:"order"`
}

type Admin struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	PasswordHash string             `db:"password_hash"`
	IsActive     bool               `db:"is_active"`
	LastLoginAt  pgtype.Timestamptz `db:"last_login_at"`
}
