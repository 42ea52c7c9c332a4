//go:build unit

package readstore

import (
	"context"
	"testing"

	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourseReadQueries struct {
	mock.Mock
}

func (m *MockCourseReadQueries) ListCourses(ctx context.Context, db pgstore.DBTX) ([]pgstore.Course, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgstore.Course), args.Error(1)
}

func (m *MockCourseReadQueries) GetCourse(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Course, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgstore.Course), args.Error(1)
}

func courseRow(t *testing.T, b *builder.CourseBuilder) pgstore.Course {
	t.Helper()
	c := b.BuildStored()
	schedules, err := converter.SchedulesToJSON(c.Schedules())
	require.NoError(t, err)
	return pgstore.Course{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		Schedules:   schedules,
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func TestCourseReadStore_FindByID(t *testing.T) {
	row := courseRow(t, builder.NewCourseBuilder().WithSchedule("s1", 4, 2))

	tests := []struct {
		name      string
		mockRow   pgstore.Course
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "corrupt schedules", mockRow: pgstore.Course{ID: row.ID, Schedules: []byte("{")}, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCourseReadQueries)
			mockQueries.On("GetCourse", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			got, err := NewCourseReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Schedules, 1)
			assert.Equal(t, "s1", got.Schedules[0].ID)
			assert.Equal(t, 4, got.Schedules[0].Capacity)
			assert.Equal(t, 2, got.Schedules[0].PCRentalSlots)
			assert.True(t, got.Schedules[0].DateTime.Equal(builder.BaseTime.AddDate(0, 0, 7)))
		})
	}
}

func TestCourseReadStore_FindDomainByID(t *testing.T) {
	row := courseRow(t, builder.NewCourseBuilder())
	mockQueries := new(MockCourseReadQueries)
	mockQueries.On("GetCourse", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	c, err := NewCourseReadStore(mockQueries, nil).FindDomainByID(context.Background(), row.ID)

	require.NoError(t, err)
	s, ok := c.Schedule("s1")
	require.True(t, ok)
	assert.Equal(t, 3, s.Capacity())
	assert.Equal(t, "Go Basics", c.Title())
}
