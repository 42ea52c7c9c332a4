//go:build unit

package converter_test

import (
	"strings"
	"testing"

	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/errs"
	"course-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRowRoundTrip(t *testing.T) {
	c := builder.NewCourseBuilder().WithSchedule("s1", 3, 1).BuildStored()

	params, err := converter.CourseToCreateParams(c)
	require.NoError(t, err)

	rm, err := converter.CourseRMFromRow(pgstore.Course{
		ID:          params.ID,
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		IsActive:    params.IsActive,
		Schedules:   params.Schedules,
		CreatedAt:   params.CreatedAt,
		UpdatedAt:   params.UpdatedAt,
	})
	require.NoError(t, err)

	assert.Equal(t, c.ID(), rm.ID)
	require.Len(t, rm.Schedules, 1)
	got := rm.Schedules[0]
	want := c.Schedules()[0]
	if diff := cmp.Diff(
		[]any{want.ID(), want.DateTime().UTC(), want.Capacity(), want.PCRentalSlots()},
		[]any{got.ID, got.DateTime.UTC(), got.Capacity, got.PCRentalSlots},
	); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestCourseFromRow_BrokenSchedulesKeepStack(t *testing.T) {
	row := pgstore.Course{ID: uuid.New(), Title: "Go 入門", Schedules: []byte(`{"not":"an array"}`)}

	assertStack := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode schedules")

		lines := errs.ExtractStackLines(err, 0)
		assert.Greater(t, len(lines), 1, "wrapped error should render a stack trace")
		assert.Contains(t, strings.Join(lines, "\n"), "stack trace")
	}

	t.Run("ドメインへの変換", func(t *testing.T) {
		_, err := converter.CourseFromRow(row)
		assertStack(t, err)
	})
	t.Run("リードモデルへの変換", func(t *testing.T) {
		_, err := converter.CourseRMFromRow(row)
		assertStack(t, err)
	})
}
