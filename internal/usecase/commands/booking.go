package commands

import (
	"context"
	"errors"
	"log/slog"

	"course-booking/internal/domain/booking"
	"course-booking/internal/infra"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	CourseID      uuid.UUID
	ScheduleID    string
	CompanyName   string
	FullName      string
	NeedsPCRental bool
	CreatedBy     *string
}

type SubmitBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, publisher: publisher}
}

// SubmitBooking admits a candidate into a schedule. All reads and the single
// insert happen in one serializable transaction, so two submissions racing
// for the last seat cannot both commit: the loser is replayed, sees the full
// schedule, and fails with ErrCapacityExceeded.
func (uc *bookingCommandsImpl) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*SubmitBookingResult, error) {
	applicant, err := booking.NewApplicant(req.CompanyName, req.FullName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidApplicant)
	}

	var created *booking.Booking
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil

		seats, derr := tx.Bookings().ListBySchedule(ctx, req.CourseID, req.ScheduleID)
		if derr != nil {
			return derr
		}

		if derr = booking.CheckDuplicate(seats, applicant); derr != nil {
			return errs.Mark(derr, errs.ErrDuplicateBooking)
		}

		c, derr := tx.Reads().CourseByID(ctx, req.CourseID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrCourseNotFound)
			}
			return derr
		}
		schedule, ok := c.Schedule(req.ScheduleID)
		if !ok {
			return errs.ErrScheduleNotFound
		}

		if derr = booking.CheckQuota(booking.Occupy(seats), schedule, req.NeedsPCRental); derr != nil {
			return markQuotaErr(derr)
		}

		b := booking.NewBooking(c, schedule, applicant, req.NeedsPCRental, req.CreatedBy, uc.clock.Now())
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateBooking)
			}
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrRetriesExhausted) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, err
	}

	uc.publishCreated(ctx, created)
	return &SubmitBookingResult{BookingID: created.ID()}, nil
}

func markQuotaErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrCapacityExceeded):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errors.Is(err, booking.ErrRentalQuotaExceeded):
		return errs.Mark(err, errs.ErrRentalQuotaExceeded)
	default:
		return err
	}
}

func (uc *bookingCommandsImpl) publishCreated(ctx context.Context, b *booking.Booking) {
	evt := shared.BookingCreatedEvent{
		BookingID:     b.ID(),
		CourseID:      b.CourseID(),
		ScheduleID:    b.ScheduleID(),
		CompanyName:   b.Applicant().CompanyName(),
		FullName:      b.Applicant().FullName(),
		NeedsPCRental: b.NeedsPCRental(),
		CreatedAt:     b.CreatedAt(),
	}
	if err := uc.publisher.Publish(ctx, shared.TopicBookingCreated, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event",
			"topic", shared.TopicBookingCreated,
			"booking_id", b.ID().String(),
			"error", err.Error())
	}
}
