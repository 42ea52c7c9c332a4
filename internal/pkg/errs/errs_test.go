//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"course-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("pq: could not serialize access")
	marked := errs.Mark(errs.Wrap(cause, "insert booking"), errs.ErrBookingConflict)

	assert.True(t, errs.Is(marked, errs.ErrBookingConflict))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.ErrCapacityExceeded))
	assert.Contains(t, marked.Error(), "insert booking")

	assert.Equal(t, errs.ErrCourseNotFound, errs.Mark(nil, errs.ErrCourseNotFound))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errors.New("boom"), "cancel booking")

	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "cancel booking")

	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 3)
}
