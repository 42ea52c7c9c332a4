package queries

import (
	"context"
	"log/slog"
	"strings"

	"course-booking/internal/usecase/readmodel"
	"course-booking/internal/usecase/stats"

	"github.com/google/uuid"
)

type BookingQueries interface {
	HasExistingBooking(ctx context.Context, courseID uuid.UUID, scheduleID, companyName, fullName string) bool
	ListBookings(ctx context.Context) ([]readmodel.BookingRM, error)
	ListBookingsByCourse(ctx context.Context, courseID uuid.UUID) ([]readmodel.BookingRM, error)
	ListBookingsBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]readmodel.BookingRM, error)
	ListBookingsByApplicant(ctx context.Context, companyName, fullName string) ([]readmodel.BookingRM, error)
	FilterBookings(ctx context.Context, f stats.BookingFilter) ([]readmodel.BookingRM, error)
	SearchBookings(ctx context.Context, companyPart, namePart string) ([]stats.ApplicantGroup, error)
	ScheduleGroups(ctx context.Context) ([]stats.ScheduleGroup, error)
}

type BookingReadStore interface {
	List(ctx context.Context) ([]readmodel.BookingRM, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]readmodel.BookingRM, error)
	ListBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]readmodel.BookingRM, error)
	ListByApplicant(ctx context.Context, companyName, fullName string) ([]readmodel.BookingRM, error)
	Exists(ctx context.Context, courseID uuid.UUID, scheduleID, companyName, fullName string) (bool, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// HasExistingBooking is a UI hint only. Read failures answer false; the
// admission transaction still rejects real duplicates.
func (q *bookingQueriesImpl) HasExistingBooking(ctx context.Context, courseID uuid.UUID, scheduleID, companyName, fullName string) bool {
	if strings.TrimSpace(scheduleID) == "" || strings.TrimSpace(companyName) == "" || strings.TrimSpace(fullName) == "" {
		return false
	}
	exists, err := q.readStore.Exists(ctx, courseID, scheduleID, companyName, fullName)
	if err != nil {
		slog.WarnContext(ctx, "existing booking check failed, assuming none",
			"course_id", courseID.String(),
			"schedule_id", scheduleID,
			"error", err.Error())
		return false
	}
	return exists
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context) ([]readmodel.BookingRM, error) {
	return q.readStore.List(ctx)
}

func (q *bookingQueriesImpl) ListBookingsByCourse(ctx context.Context, courseID uuid.UUID) ([]readmodel.BookingRM, error) {
	return q.readStore.ListByCourse(ctx, courseID)
}

func (q *bookingQueriesImpl) ListBookingsBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]readmodel.BookingRM, error) {
	return q.readStore.ListBySchedule(ctx, courseID, scheduleID)
}

func (q *bookingQueriesImpl) ListBookingsByApplicant(ctx context.Context, companyName, fullName string) ([]readmodel.BookingRM, error) {
	if strings.TrimSpace(companyName) == "" || strings.TrimSpace(fullName) == "" {
		return []readmodel.BookingRM{}, nil
	}
	return q.readStore.ListByApplicant(ctx, companyName, fullName)
}

func (q *bookingQueriesImpl) FilterBookings(ctx context.Context, f stats.BookingFilter) ([]readmodel.BookingRM, error) {
	all, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FilterBookings(all, f), nil
}

func (q *bookingQueriesImpl) SearchBookings(ctx context.Context, companyPart, namePart string) ([]stats.ApplicantGroup, error) {
	if strings.TrimSpace(companyPart) == "" && strings.TrimSpace(namePart) == "" {
		return []stats.ApplicantGroup{}, nil
	}
	all, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GroupByApplicant(stats.MatchPartial(all, companyPart, namePart)), nil
}

func (q *bookingQueriesImpl) ScheduleGroups(ctx context.Context) ([]stats.ScheduleGroup, error) {
	all, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GroupBySchedule(all), nil
}
