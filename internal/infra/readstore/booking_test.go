//go:build unit

package readstore

import (
	"context"
	"testing"

	"course-booking/internal/infra"
	"course-booking/internal/infra/pgstore"
	"course-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) ListBookings(ctx context.Context, db pgstore.DBTX) ([]pgstore.Booking, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgstore.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByCourse(ctx context.Context, db pgstore.DBTX, courseID uuid.UUID) ([]pgstore.Booking, error) {
	args := m.Called(ctx, db, courseID)
	return args.Get(0).([]pgstore.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsBySchedule(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByScheduleParams) ([]pgstore.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgstore.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByApplicant(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByApplicantParams) ([]pgstore.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgstore.Booking), args.Error(1)
}

func (m *MockBookingReadQueries) ExistsBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.ExistsBookingParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingReadQueries) GetBooking(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Booking, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgstore.Booking), args.Error(1)
}

func TestBookingReadStore_List(t *testing.T) {
	rows := []pgstore.Booking{
		builder.NewBookingBuilder().WithRental().BuildInfra(),
		builder.NewBookingBuilder().WithApplicant("Beta", "Hanako").BuildInfra(),
	}

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookings", mock.Anything, mock.Anything).Return(rows, nil)

	got, err := NewBookingReadStore(mockQueries, nil).List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID)
	assert.True(t, got[0].NeedsPCRental)
	assert.Equal(t, builder.BaseTime.Unix(), got[0].CreatedAt.Unix())
	assert.Equal(t, "Hanako", got[1].FullName)
	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_ListEmptyIsNotNil(t *testing.T) {
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookingsByCourse", mock.Anything, mock.Anything, mock.Anything).Return([]pgstore.Booking(nil), nil)

	got, err := NewBookingReadStore(mockQueries, nil).ListByCourse(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBookingReadStore_Exists(t *testing.T) {
	courseID := uuid.New()

	tests := []struct {
		name      string
		mockOut   bool
		mockError error
		want      bool
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "exists", mockOut: true, want: true},
		{name: "not exists", mockOut: false, want: false},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("ExistsBooking", mock.Anything, mock.Anything, pgstore.ExistsBookingParams{
				CourseID:    courseID,
				ScheduleID:  "s1",
				CompanyName: "Acme",
				FullName:    "Taro Yamada",
			}).Return(tt.mockOut, tt.mockError)

			got, err := NewBookingReadStore(mockQueries, nil).Exists(context.Background(), courseID, "s1", "  Acme ", "Taro Yamada ")

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.False(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_FindDomainByID(t *testing.T) {
	row := builder.NewBookingBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockRow   pgstore.Booking
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "serialization failure", mockError: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindSerializationFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("GetBooking", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			got, err := NewBookingReadStore(mockQueries, nil).FindDomainByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID())
			assert.Equal(t, "Acme", got.Applicant().CompanyName())
		})
	}
}
