package repository

import (
	"context"

	"course-booking/internal/domain/booking"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	ListBookingsBySchedule(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByScheduleParams) ([]pgstore.Booking, error)
	CreateBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateBookingParams) error
	DeleteBooking(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgstore.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgstore.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) ListBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]booking.Seat, error) {
	rows, err := r.queries.ListBookingsBySchedule(ctx, r.db, pgstore.ListBookingsByScheduleParams{
		CourseID:   courseID,
		ScheduleID: scheduleID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by schedule", err)
	}
	return converter.SeatsFromRows(rows), nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
