//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-booking/internal/infra"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/queries"
	"course-booking/internal/usecase/readmodel"
	"course-booking/internal/usecase/stats"
	"course-booking/tests/common/builder"
	"course-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) List(ctx context.Context) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingStore) ListBySchedule(ctx context.Context, courseID uuid.UUID, scheduleID string) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx, courseID, scheduleID)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingStore) ListByApplicant(ctx context.Context, companyName, fullName string) ([]readmodel.BookingRM, error) {
	args := m.Called(ctx, companyName, fullName)
	return args.Get(0).([]readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingStore) Exists(ctx context.Context, courseID uuid.UUID, scheduleID, companyName, fullName string) (bool, error) {
	args := m.Called(ctx, courseID, scheduleID, companyName, fullName)
	return args.Bool(0), args.Error(1)
}

type mockCourseStore struct {
	mock.Mock
}

func (m *mockCourseStore) List(ctx context.Context) ([]readmodel.CourseRM, error) {
	args := m.Called(ctx)
	return args.Get(0).([]readmodel.CourseRM), args.Error(1)
}

func (m *mockCourseStore) FindByID(ctx context.Context, id uuid.UUID) (readmodel.CourseRM, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(readmodel.CourseRM), args.Error(1)
}

type mockCancelLogStore struct {
	mock.Mock
}

func (m *mockCancelLogStore) List(ctx context.Context, from, to *time.Time) ([]readmodel.CancelLogRM, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]readmodel.CancelLogRM), args.Error(1)
}

type stubCategoryStore struct {
	categories []readmodel.CategoryRM
	err        error
}

func (s stubCategoryStore) List(context.Context) ([]readmodel.CategoryRM, error) {
	return s.categories, s.err
}

func TestHasExistingBooking(t *testing.T) {
	ctx := context.Background()
	courseID := uuid.New()

	t.Run("予約あり", func(t *testing.T) {
		store := new(mockBookingStore)
		store.On("Exists", ctx, courseID, "s1", "Acme", "Taro").Return(true, nil)

		q := queries.NewBookingQueries(store)
		assert.True(t, q.HasExistingBooking(ctx, courseID, "s1", "Acme", "Taro"))
		store.AssertExpectations(t)
	})

	t.Run("読み取り失敗はfalse", func(t *testing.T) {
		store := new(mockBookingStore)
		store.On("Exists", ctx, courseID, "s1", "Acme", "Taro").
			Return(false, infra.WrapRepoErr("exists", errors.New("connection refused")))

		q := queries.NewBookingQueries(store)
		assert.False(t, q.HasExistingBooking(ctx, courseID, "s1", "Acme", "Taro"))
	})

	t.Run("入力が空なら問い合わせない", func(t *testing.T) {
		store := new(mockBookingStore)
		q := queries.NewBookingQueries(store)

		assert.False(t, q.HasExistingBooking(ctx, courseID, "s1", " ", "Taro"))
		assert.False(t, q.HasExistingBooking(ctx, courseID, "", "Acme", "Taro"))
		store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListBookingsByApplicant(t *testing.T) {
	ctx := context.Background()
	store := new(mockBookingStore)
	q := queries.NewBookingQueries(store)

	got, err := q.ListBookingsByApplicant(ctx, "", "Taro")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	store.AssertNotCalled(t, "ListByApplicant", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchBookings(t *testing.T) {
	ctx := context.Background()
	store := new(mockBookingStore)
	store.On("List", ctx).Return([]readmodel.BookingRM{
		builder.NewBookingBuilder().WithApplicant("Acme", "Taro").BuildReadModel(),
		builder.NewBookingBuilder().WithApplicant("Acme", "Taro").ForCourse(uuid.New(), "s2").BuildReadModel(),
		builder.NewBookingBuilder().WithApplicant("Beta", "Hanako").BuildReadModel(),
	}, nil)

	q := queries.NewBookingQueries(store)
	groups, err := q.SearchBookings(ctx, "acme", "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Bookings, 2)
}

func TestFilterBookingsPropagatesError(t *testing.T) {
	ctx := context.Background()
	store := new(mockBookingStore)
	boom := errors.New("boom")
	store.On("List", ctx).Return([]readmodel.BookingRM(nil), boom)

	_, err := queries.NewBookingQueries(store).FilterBookings(ctx, stats.BookingFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestCourseQueries(t *testing.T) {
	ctx := context.Background()
	active := builder.NewCourseBuilder().BuildReadModel()
	inactive := builder.NewCourseBuilder().AsInactive().BuildReadModel()

	t.Run("公開中のみ", func(t *testing.T) {
		courses := new(mockCourseStore)
		courses.On("List", ctx).Return([]readmodel.CourseRM{active, inactive}, nil)

		got, err := queries.NewCourseQueries(courses, new(mockBookingStore)).ListActiveCourses(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, active.ID, got[0].ID)
	})

	t.Run("空き状況", func(t *testing.T) {
		courses := new(mockCourseStore)
		bookings := new(mockBookingStore)
		courses.On("FindByID", ctx, active.ID).Return(active, nil)
		bookings.On("ListByCourse", ctx, active.ID).Return([]readmodel.BookingRM{
			builder.NewBookingBuilder().ForCourse(active.ID, "s1").WithRental().BuildReadModel(),
		}, nil)

		got, err := queries.NewCourseQueries(courses, bookings).GetCourseAvailability(ctx, active.ID)
		require.NoError(t, err)
		require.Len(t, got.Availability, 1)
		assert.Equal(t, 2, got.Availability[0].Remaining)
		assert.Equal(t, 0, got.Availability[0].RentalRemaining)
	})

	t.Run("存在しない", func(t *testing.T) {
		courses := new(mockCourseStore)
		id := uuid.New()
		courses.On("FindByID", ctx, id).Return(readmodel.CourseRM{}, infra.WrapRepoErr("find", nil, infra.KindNotFound))

		_, err := queries.NewCourseQueries(courses, new(mockBookingStore)).GetCourseAvailability(ctx, id)
		testutil.AssertMarked(t, err, errs.ErrCourseNotFound)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("未登録ならプレースホルダー", func(t *testing.T) {
		got, err := queries.NewCategoryQueries(stubCategoryStore{}).ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "default-1", got[0].ID)
		assert.True(t, got[0].Placeholder)
		assert.Equal(t, 2, got[1].Order)
	})

	t.Run("登録済みならそのまま", func(t *testing.T) {
		stored := []readmodel.CategoryRM{{ID: uuid.NewString(), Name: "Cloud", IsActive: true}}
		got, err := queries.NewCategoryQueries(stubCategoryStore{categories: stored}).ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})
}

func TestStatisticsQueries(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.BaseTime)

	t.Run("集計", func(t *testing.T) {
		bookings := new(mockBookingStore)
		courses := new(mockCourseStore)
		c := builder.NewCourseBuilder().BuildReadModel()
		bookings.On("List", ctx).Return([]readmodel.BookingRM{
			builder.NewBookingBuilder().ForCourse(c.ID, "s1").BuildReadModel(),
		}, nil)
		courses.On("List", ctx).Return([]readmodel.CourseRM{c}, nil)

		got, err := queries.NewStatisticsQueries(bookings, courses, new(mockCancelLogStore), clk).BookingStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, got.TotalBookings)
		assert.Equal(t, 2, got.Courses[0].Schedules[0].RemainingSlots)
	})

	t.Run("読み取り失敗", func(t *testing.T) {
		bookings := new(mockBookingStore)
		bookings.On("List", ctx).Return([]readmodel.BookingRM(nil), errors.New("down"))

		_, err := queries.NewStatisticsQueries(bookings, new(mockCourseStore), new(mockCancelLogStore), clk).BookingStatistics(ctx)
		testutil.AssertMarked(t, err, errs.ErrStatisticsUnavailable)
	})

	t.Run("キャンセル集計は時計の現在時刻基準", func(t *testing.T) {
		logs := new(mockCancelLogStore)
		logs.On("List", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]readmodel.CancelLogRM{
			{ID: uuid.New(), CanceledAt: builder.BaseTime.Add(-time.Hour)},
			{ID: uuid.New(), CanceledAt: builder.BaseTime.AddDate(0, -1, 0)},
		}, nil)

		got, err := queries.NewStatisticsQueries(new(mockBookingStore), new(mockCourseStore), logs, clk).CancelStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, 1, got.Today)
		assert.Equal(t, 1, got.Month)
	})
}

func TestListCancelLogsRejectsInvertedRange(t *testing.T) {
	tests := []struct {
		name string
		to   time.Time
	}{
		{name: "終了が開始より前", to: builder.BaseTime.Add(-time.Hour)},
		{name: "終了が開始と同時刻（空の半開区間）", to: builder.BaseTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := builder.BaseTime, tt.to
			store := new(mockCancelLogStore)

			_, err := queries.NewCancelLogQueries(store).ListCancelLogs(context.Background(), &from, &to)
			testutil.AssertMarked(t, err, errs.ErrDomainValidation)
			store.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
