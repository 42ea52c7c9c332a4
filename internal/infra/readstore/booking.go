package readstore

import (
	"context"
	"strings"

	"course-booking/internal/domain/booking"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, db pgstore.DBTX) ([]pgstore.Booking, error)
	ListBookingsByCourse(ctx context.Context, db pgstore.DBTX, courseID uuid.UUID) ([]pgstore.Booking, error)
	ListBookingsBySchedule(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByScheduleParams) ([]pgstore.Booking, error)
	ListBookingsByApplicant(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByApplicantParams) ([]pgstore.Booking, error)
	ExistsBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.ExistsBookingParams) (bool, error)
	GetBooking(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgstore.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// List returns every booking, most recent first.
func (r *BookingReadStore) List(ctx context.Context) ([]readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingRMsFromRows(rows), nil
}

func (r *BookingReadStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsByCourse(ctx, r.db, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by course", err)
	}
	return converter.BookingRMsFromRows(rows), nil
}

func (r *BookingReadStore) ListBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsBySchedule(ctx, r.db, pgstore.ListBookingsByScheduleParams{
		CourseID:   courseID,
		ScheduleID: scheduleID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by schedule", err)
	}
	return converter.BookingRMsFromRows(rows), nil
}

func (r *BookingReadStore) ListByApplicant(ctx context.Context, companyName, fullName string) ([]readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsByApplicant(ctx, r.db, pgstore.ListBookingsByApplicantParams{
		CompanyName: strings.TrimSpace(companyName),
		FullName:    strings.TrimSpace(fullName),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by applicant", err)
	}
	return converter.BookingRMsFromRows(rows), nil
}

func (r *BookingReadStore) Exists(ctx context.Context, courseID uuid.UUID, scheduleID, companyName, fullName string) (bool, error) {
	exists, err := r.queries.ExistsBooking(ctx, r.db, pgstore.ExistsBookingParams{
		CourseID:    courseID,
		ScheduleID:  scheduleID,
		CompanyName: strings.TrimSpace(companyName),
		FullName:    strings.TrimSpace(fullName),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}
	return exists, nil
}

func (r *BookingReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromRow(row), nil
}
