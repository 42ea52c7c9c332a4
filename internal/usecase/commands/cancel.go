package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"course-booking/internal/domain/booking"
	"course-booking/internal/domain/cancellog"
	"course-booking/internal/infra"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SelfCancelRequest struct {
	BookingID   uuid.UUID
	CompanyName string
	FullName    string
	Reason      string
	Client      cancellog.ClientInfo
}

type AdminCancelRequest struct {
	BookingID uuid.UUID
	Reason    string
	Client    cancellog.ClientInfo
}

type CancelResult struct {
	BookingID uuid.UUID
	// AuditWritten is false when the cancel log insert failed; the booking is
	// deleted regardless.
	AuditWritten bool
}

type CancelCommands interface {
	CancelOwnBooking(ctx context.Context, req SelfCancelRequest) (*CancelResult, error)
	AdminCancelBooking(ctx context.Context, req AdminCancelRequest) (*CancelResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, method cancellog.Method, client cancellog.ClientInfo) (*CancelResult, error)
}

type cancelCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewCancelCommands(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher) CancelCommands {
	return &cancelCommandsImpl{uow: uow, clock: clk, publisher: publisher}
}

func (uc *cancelCommandsImpl) CancelOwnBooking(ctx context.Context, req SelfCancelRequest) (*CancelResult, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, errs.ErrCancelReasonRequired
	}
	owner := func(b *booking.Booking) error {
		if !b.Applicant().Matches(req.CompanyName, req.FullName) {
			return errs.ErrBookingNotOwned
		}
		return nil
	}
	return uc.cancel(ctx, req.BookingID, req.Reason, cancellog.MethodSelfService, req.Client, owner)
}

func (uc *cancelCommandsImpl) AdminCancelBooking(ctx context.Context, req AdminCancelRequest) (*CancelResult, error) {
	return uc.cancel(ctx, req.BookingID, req.Reason, cancellog.MethodAdminOverride, req.Client, nil)
}

func (uc *cancelCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, method cancellog.Method, client cancellog.ClientInfo) (*CancelResult, error) {
	return uc.cancel(ctx, bookingID, reason, method, client, nil)
}

// cancel reads the booking, appends the audit log and deletes the booking.
// The log insert and the delete are separate statements: a failed log is
// logged and ignored, it never keeps the booking alive.
func (uc *cancelCommandsImpl) cancel(
	ctx context.Context,
	bookingID uuid.UUID,
	reason string,
	method cancellog.Method,
	client cancellog.ClientInfo,
	authorize func(*booking.Booking) error,
) (*CancelResult, error) {
	b, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}
	if authorize != nil {
		if err := authorize(b); err != nil {
			return nil, err
		}
	}

	entry, err := cancellog.NewFromBooking(b, reason, method, client, uc.clock.Now())
	if err != nil {
		if errors.Is(err, cancellog.ErrReasonRequired) {
			return nil, errs.Mark(err, errs.ErrCancelReasonRequired)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	audited := true
	if err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CancelLogs().Create(ctx, entry)
	}); err != nil {
		audited = false
		slog.WarnContext(ctx, "cancel log write failed, deleting booking anyway",
			"booking_id", bookingID.String(),
			"method", method.String(),
			"error", err.Error())
	}

	if err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Delete(ctx, bookingID)
	}); err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}

	evt := shared.BookingCanceledEvent{
		BookingID:    bookingID,
		CourseID:     b.CourseID(),
		ScheduleID:   b.ScheduleID(),
		CancelMethod: method.String(),
		AuditWritten: audited,
		CanceledAt:   entry.CanceledAt(),
	}
	if err := uc.publisher.Publish(ctx, shared.TopicBookingCanceled, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish booking event",
			"topic", shared.TopicBookingCanceled,
			"booking_id", bookingID.String(),
			"error", err.Error())
	}

	return &CancelResult{BookingID: bookingID, AuditWritten: audited}, nil
}

func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
