//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/shared"
	"course-booking/tests/common/builder"
	"course-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testCourseID = uuid.MustParse("6f1c2a9e-3b4d-4c5e-8f70-112233445566")

type BookingCommandsSuite struct {
	suite.Suite
	store     *memStore
	publisher *recordingPublisher
	uc        commands.BookingCommands
	courseID  uuid.UUID
}

func (s *BookingCommandsSuite) SetupTest() {
	s.store = newMemStore()
	s.publisher = &recordingPublisher{}
	s.uc = commands.NewBookingCommands(s.store, clock.NewMockClock(builder.BaseTime), s.publisher)

	c := builder.NewCourseBuilder().WithSchedule("s1", 3, 1).With(func(b *builder.CourseBuilder) {
		b.ID = testCourseID
	}).BuildStored()
	s.courseID = c.ID()
	s.store.addCourse(c)
}

func (s *BookingCommandsSuite) submit(company, name string, rental bool) (*commands.SubmitBookingResult, error) {
	return s.uc.SubmitBooking(context.Background(), commands.SubmitBookingRequest{
		CourseID:      s.courseID,
		ScheduleID:    "s1",
		CompanyName:   company,
		FullName:      name,
		NeedsPCRental: rental,
	})
}

func (s *BookingCommandsSuite) TestSubmitBooking_Success() {
	res, err := s.submit("  Acme ", " Taro Yamada", true)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, res.BookingID)

	stored := s.store.bookings[res.BookingID]
	s.Require().NotNil(stored)
	s.Equal("Acme", stored.Applicant().CompanyName(), "applicant is stored trimmed")
	s.Equal("Go Basics", stored.CourseTitle())
	s.Equal(builder.BaseTime, stored.CreatedAt())
	s.Equal([]string{shared.TopicBookingCreated}, s.publisher.published())
}

func (s *BookingCommandsSuite) TestSubmitBooking_Errors() {
	tests := []struct {
		name    string
		setup   func()
		req     commands.SubmitBookingRequest
		wantErr error
	}{
		{
			name:    "空の申込者",
			req:     commands.SubmitBookingRequest{CourseID: s.courseID, ScheduleID: "s1", CompanyName: " ", FullName: "x"},
			wantErr: errs.ErrInvalidApplicant,
		},
		{
			name:    "存在しないコース",
			req:     commands.SubmitBookingRequest{CourseID: uuid.New(), ScheduleID: "s1", CompanyName: "Acme", FullName: "x"},
			wantErr: errs.ErrCourseNotFound,
		},
		{
			name:    "存在しないスケジュール",
			req:     commands.SubmitBookingRequest{CourseID: s.courseID, ScheduleID: "nope", CompanyName: "Acme", FullName: "x"},
			wantErr: errs.ErrScheduleNotFound,
		},
		{
			name: "同一スケジュールへの重複申込",
			setup: func() {
				_, err := s.submit("Acme", "Taro", false)
				s.Require().NoError(err)
			},
			req:     commands.SubmitBookingRequest{CourseID: s.courseID, ScheduleID: "s1", CompanyName: " Acme", FullName: "Taro "},
			wantErr: errs.ErrDuplicateBooking,
		},
		{
			name: "PCレンタル枠切れ",
			setup: func() {
				_, err := s.submit("Acme", "A", true)
				s.Require().NoError(err)
			},
			req:     commands.SubmitBookingRequest{CourseID: s.courseID, ScheduleID: "s1", CompanyName: "Acme", FullName: "B", NeedsPCRental: true},
			wantErr: errs.ErrRentalQuotaExceeded,
		},
		{
			name:    "リトライ上限",
			setup:   func() { s.store.txErr = errs.Mark(errors.New("40001"), shared.ErrRetriesExhausted) },
			req:     commands.SubmitBookingRequest{CourseID: s.courseID, ScheduleID: "s1", CompanyName: "Acme", FullName: "x"},
			wantErr: errs.ErrBookingConflict,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.setup != nil {
				tt.setup()
			}
			before := s.store.bookingCount()

			res, err := s.uc.SubmitBooking(context.Background(), tt.req)

			testutil.RequireMarked(s.T(), err, tt.wantErr)
			s.Nil(res)
			s.Equal(before, s.store.bookingCount())
		})
	}
}

func (s *BookingCommandsSuite) TestSubmitBooking_FullScheduleRejectsEvenWithoutRental() {
	for i := range 3 {
		_, err := s.submit("Acme", fmt.Sprintf("member-%d", i), false)
		s.Require().NoError(err)
	}

	_, err := s.submit("Acme", "late", false)
	testutil.AssertMarked(s.T(), err, errs.ErrCapacityExceeded)
}

func (s *BookingCommandsSuite) TestSubmitBooking_SameApplicantOtherScheduleAllowed() {
	c := builder.NewCourseBuilder().WithSchedule("a", 5, 0).AddSchedule(builder.NewCourseBuilder().Schedules[0]).BuildStored()
	s.store.addCourse(c)

	for _, sid := range []string{"a", "s1"} {
		_, err := s.uc.SubmitBooking(context.Background(), commands.SubmitBookingRequest{
			CourseID: c.ID(), ScheduleID: sid, CompanyName: "Acme", FullName: "Taro",
		})
		s.Require().NoError(err)
	}
}

func (s *BookingCommandsSuite) TestSubmitBooking_PublishFailureIsNotFatal() {
	s.publisher.err = errors.New("broker down")

	res, err := s.submit("Acme", "Taro", false)
	s.Require().NoError(err)
	s.NotNil(res)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsSuite))
}

func TestSubmitBooking_ConcurrentNeverExceedsCapacity(t *testing.T) {
	const capacity = 5
	const applicants = 40

	store := newMemStore()
	c := builder.NewCourseBuilder().WithSchedule("s1", capacity, 2).BuildStored()
	store.addCourse(c)
	uc := commands.NewBookingCommands(store, clock.NewMockClock(builder.BaseTime), &recordingPublisher{})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		rentals  int
		full     int
	)
	for i := range applicants {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rental := i%2 == 0
			_, err := uc.SubmitBooking(context.Background(), commands.SubmitBookingRequest{
				CourseID:      c.ID(),
				ScheduleID:    "s1",
				CompanyName:   "Acme",
				FullName:      fmt.Sprintf("applicant-%02d", i),
				NeedsPCRental: rental,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
				if rental {
					rentals++
				}
			case errs.Is(err, errs.ErrCapacityExceeded), errs.Is(err, errs.ErrRentalQuotaExceeded):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, capacity, admitted)
	assert.LessOrEqual(t, rentals, 2)
	assert.Equal(t, applicants-capacity, full)
	require.Equal(t, capacity, store.bookingCount())
}

func TestSubmitBooking_ConcurrentDuplicateAdmitsOnce(t *testing.T) {
	store := newMemStore()
	c := builder.NewCourseBuilder().WithSchedule("s1", 10, 0).BuildStored()
	store.addCourse(c)
	uc := commands.NewBookingCommands(store, clock.NewMockClock(builder.BaseTime), &recordingPublisher{})

	var wg sync.WaitGroup
	errsCh := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.SubmitBooking(context.Background(), commands.SubmitBookingRequest{
				CourseID: c.ID(), ScheduleID: "s1", CompanyName: "Acme", FullName: "Taro",
			})
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	ok, dup := 0, 0
	for err := range errsCh {
		if err == nil {
			ok++
		} else if errs.Is(err, errs.ErrDuplicateBooking) {
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 7, dup)
}
