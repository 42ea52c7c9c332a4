//go:build integration

package uow_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"course-booking/internal/infra/events"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/infra/uow"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/shared"
	"course-booking/tests/common/builder"
	"course-booking/tests/common/dbtest"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type admissionSuite struct {
	suite.Suite
	pg        *dbtest.Postgres
	pool      *pgxpool.Pool
	uow       shared.UnitOfWork
	bookings  commands.BookingCommands
	cancels   commands.CancelCommands
}

func TestAdmissionSuite(t *testing.T) {
	suite.Run(t, new(admissionSuite))
}

func (s *admissionSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := dbtest.StartPostgres(ctx, "uow-integration")
	s.Require().NoError(err)
	s.pg = pg

	dbCfg, err := pg.CreateDatabase(ctx)
	s.Require().NoError(err)
	// 30 goroutines race for seats; leave headroom over the default pool size
	dbCfg.MaxConns = 50

	pool, _, err := dbtest.OpenWithSchema(ctx, dbCfg)
	s.Require().NoError(err)
	s.pool = pool

	clk := clock.NewRealClock(time.UTC)
	s.uow = uow.NewPostgresUoW(pool, pgstore.New(), clk, config.TxConfig{
		MaxRetries: 30,
		BaseDelay:  2 * time.Millisecond,
		MaxDelay:   50 * time.Millisecond,
	})
	s.bookings = commands.NewBookingCommands(s.uow, clk, events.NopPublisher{})
	s.cancels = commands.NewCancelCommands(s.uow, clk, events.NopPublisher{})
}

func (s *admissionSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pg != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.pg.Terminate(ctx)
	}
}

func (s *admissionSuite) SetupTest() {
	s.Require().NoError(dbtest.ResetDB(s.pool))
}

func (s *admissionSuite) TestConcurrentSubmissionsRespectCapacityAndRental() {
	ctx := context.Background()
	c := builder.NewCourseBuilder().WithSchedule("s1", 5, 2).BuildStored()
	courseID := dbtest.CreateTestCourse(s.T(), s.pool, c)

	const n = 30
	var (
		wg        sync.WaitGroup
		admitted  atomic.Int32
		conflicts atomic.Int32
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
				CourseID:      courseID,
				ScheduleID:    "s1",
				CompanyName:   "Acme",
				FullName:      fmt.Sprintf("Person %02d", i),
				NeedsPCRental: i%3 == 0,
			})
			switch {
			case err == nil:
				admitted.Add(1)
			case errs.Is(err, errs.ErrBookingConflict):
				conflicts.Add(1)
			default:
				assert.True(s.T(),
					errs.Is(err, errs.ErrCapacityExceeded) || errs.Is(err, errs.ErrRentalQuotaExceeded),
					"unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	s.LessOrEqual(admitted.Load(), int32(5))
	s.Equal(int(admitted.Load()), dbtest.CountBookings(s.T(), s.pool, courseID, "s1"))
	if conflicts.Load() == 0 {
		s.Equal(int32(5), admitted.Load())
	}

	var rentals int
	err := s.pool.QueryRow(ctx, "SELECT count(*) FROM bookings WHERE course_id = $1 AND needs_pc_rental", courseID).Scan(&rentals)
	s.Require().NoError(err)
	s.LessOrEqual(rentals, 2)
}

func (s *admissionSuite) TestConcurrentDuplicatesAdmitOnce() {
	ctx := context.Background()
	c := builder.NewCourseBuilder().WithSchedule("s1", 10, 0).BuildStored()
	courseID := dbtest.CreateTestCourse(s.T(), s.pool, c)

	const n = 8
	var wg sync.WaitGroup
	var admitted atomic.Int32
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
				CourseID:    courseID,
				ScheduleID:  "s1",
				CompanyName: "Acme",
				FullName:    "Taro",
			})
			if err == nil {
				admitted.Add(1)
				return
			}
			assert.True(s.T(), errs.Is(err, errs.ErrDuplicateBooking) || errs.Is(err, errs.ErrBookingConflict),
				"unexpected error: %v", err)
		}()
	}
	wg.Wait()

	s.Equal(int32(1), admitted.Load())
	s.Equal(1, dbtest.CountBookings(s.T(), s.pool, courseID, "s1"))
}

func (s *admissionSuite) TestCancelFreesSeatAndWritesAudit() {
	ctx := context.Background()
	c := builder.NewCourseBuilder().WithSchedule("s1", 1, 1).BuildStored()
	courseID := dbtest.CreateTestCourse(s.T(), s.pool, c)

	res, err := s.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
		CourseID: courseID, ScheduleID: "s1", CompanyName: "Acme", FullName: "Taro", NeedsPCRental: true,
	})
	s.Require().NoError(err)

	_, err = s.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
		CourseID: courseID, ScheduleID: "s1", CompanyName: "Globex", FullName: "Hanako",
	})
	require.True(s.T(), errs.Is(err, errs.ErrCapacityExceeded), "got %v", err)

	out, err := s.cancels.CancelOwnBooking(ctx, commands.SelfCancelRequest{
		BookingID: res.BookingID, CompanyName: "Acme", FullName: "Taro", Reason: "体調不良",
	})
	s.Require().NoError(err)
	s.True(out.AuditWritten)

	var logged int
	s.Require().NoError(s.pool.QueryRow(ctx,
		"SELECT count(*) FROM cancel_logs WHERE original_booking_id = $1", res.BookingID).Scan(&logged))
	s.Equal(1, logged)

	_, err = s.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
		CourseID: courseID, ScheduleID: "s1", CompanyName: "Globex", FullName: "Hanako",
	})
	s.NoError(err)
}
