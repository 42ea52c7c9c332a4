//go:build unit || e2e || integration

package testutil

import (
	"testing"

	"course-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertMarked is assert.ErrorIs for errors tagged with errs.Mark.
func AssertMarked(t testing.TB, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected error marked %q, got: %v", target, err)
}

func RequireMarked(t testing.TB, err, target error) {
	t.Helper()
	require.Truef(t, errs.Is(err, target), "expected error marked %q, got: %v", target, err)
}
