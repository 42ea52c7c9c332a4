//go:build unit

package password_test

import (
	"testing"

	"course-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Run("hash verifies against the plain text", func(t *testing.T) {
		hashed, err := password.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", hashed)
		assert.NoError(t, password.Compare(hashed, "password123"))
	})

	t.Run("too short", func(t *testing.T) {
		_, err := password.Hash("short")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}

func TestCompare(t *testing.T) {
	hashed, err := password.Hash("password123")
	require.NoError(t, err)

	cases := []struct {
		name   string
		hashed string
		plain  string
	}{
		{"wrong password", hashed, "password124"},
		{"empty plain", hashed, ""},
		{"empty hash", "", "password123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Compare(tc.hashed, tc.plain), password.ErrMismatch)
		})
	}
}
