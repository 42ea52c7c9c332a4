package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"course-booking/internal/domain/admin"
	"course-booking/internal/domain/booking"
	"course-booking/internal/domain/course"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/infra/readstore"
	"course-booking/internal/infra/repository"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgstore.Queries
	clock clock.Clock

	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgstore.Queries, clk clock.Clock, cfg config.TxConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		clock:      clk,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		maxDelay:   cfg.MaxDelay,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, 0, fn)
}

// Serializable makes the rows and predicates read inside fn part of conflict
// detection. If another transaction commits a write that would have changed
// what fn read, one of the two fails with 40001 and is replayed from scratch.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, u.maxRetries, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.session(u.pool))
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) session(db pgstore.DBTX) *pgTx {
	return &pgTx{dbtx: db, uow: u}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, maxRetries int, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, u.session(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, shared.ErrRetriesExhausted)
		}

		waitTime := calculateBackoff(attempt, u.baseDelay, u.maxDelay)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrRetriesExhausted
}

func calculateBackoff(attempt int, base, limit time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	if limit > 0 && waitTime > limit {
		waitTime = limit
	}
	jitter := cryptoRandInt63n(int64(waitTime / 2))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.SQLState(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo   shared.BookingRepository
	courseRepo    shared.CourseRepository
	cancelLogRepo shared.CancelLogRepository
	categoryRepo  shared.CategoryRepository
	adminRepo     shared.AdminRepository
	commandReads  shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Courses() shared.CourseRepository {
	if t.courseRepo == nil {
		t.courseRepo = repository.NewCourseRepository(t.uow.q, t.dbtx)
	}
	return t.courseRepo
}

func (t *pgTx) CancelLogs() shared.CancelLogRepository {
	if t.cancelLogRepo == nil {
		t.cancelLogRepo = repository.NewCancelLogRepository(t.uow.q, t.dbtx)
	}
	return t.cancelLogRepo
}

func (t *pgTx) Categories() shared.CategoryRepository {
	if t.categoryRepo == nil {
		t.categoryRepo = repository.NewCategoryRepository(t.uow.q, t.dbtx)
	}
	return t.categoryRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.uow.q, t.dbtx, t.uow.clock.Now)
	}
	return t.adminRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgstore.DBTX

	// Lazy-initialized readstores
	bookingStore *readstore.BookingReadStore
	courseStore  *readstore.CourseReadStore
	adminStore   *readstore.AdminReadStore
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.FindDomainByID(ctx, id)
}

func (r *commandReads) CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	if r.courseStore == nil {
		r.courseStore = readstore.NewCourseReadStore(r.uow.q, r.dbtx)
	}
	return r.courseStore.FindDomainByID(ctx, id)
}

func (r *commandReads) AdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	if r.adminStore == nil {
		r.adminStore = readstore.NewAdminReadStore(r.uow.q, r.dbtx)
	}
	return r.adminStore.FindDomainByEmail(ctx, email)
}
