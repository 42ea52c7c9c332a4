//go:build unit

package booking_test

import (
	"testing"

	"course-booking/internal/domain/booking"
	"course-booking/internal/domain/course"
	"course-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicant(t *testing.T) {
	tests := []struct {
		name        string
		company     string
		fullName    string
		wantCompany string
		wantName    string
		wantErr     error
	}{
		{name: "前後の空白は除去される", company: "  Acme  ", fullName: " Taro Yamada ", wantCompany: "Acme", wantName: "Taro Yamada"},
		{name: "会社名が空白のみNG", company: "   ", fullName: "Taro", wantErr: booking.ErrEmptyApplicant},
		{name: "氏名が空NG", company: "Acme", fullName: "", wantErr: booking.ErrEmptyApplicant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := booking.NewApplicant(tt.company, tt.fullName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompany, a.CompanyName())
			assert.Equal(t, tt.wantName, a.FullName())
			assert.Equal(t, tt.wantCompany+"|"+tt.wantName, a.Key())
		})
	}
}

func TestCheckDuplicate(t *testing.T) {
	a, err := booking.NewApplicant("Acme", "Taro Yamada")
	require.NoError(t, err)

	t.Run("同一人物の予約があれば重複", func(t *testing.T) {
		seats := []booking.Seat{
			{CompanyName: "Other", FullName: "Hanako"},
			{CompanyName: " Acme ", FullName: "Taro Yamada  "},
		}
		assert.ErrorIs(t, booking.CheckDuplicate(seats, a), booking.ErrDuplicate)
	})

	t.Run("会社名が違えば別人", func(t *testing.T) {
		seats := []booking.Seat{{CompanyName: "Acme Inc", FullName: "Taro Yamada"}}
		assert.NoError(t, booking.CheckDuplicate(seats, a))
	})

	t.Run("大文字小文字は区別する", func(t *testing.T) {
		seats := []booking.Seat{{CompanyName: "acme", FullName: "taro yamada"}}
		assert.NoError(t, booking.CheckDuplicate(seats, a))
	})

	t.Run("予約なし", func(t *testing.T) {
		assert.NoError(t, booking.CheckDuplicate(nil, a))
	})
}

func TestCheckQuota(t *testing.T) {
	schedule := course.ReconstructSchedule(course.ScheduleInput{
		ID: "s1", DateTime: builder.BaseTime, Capacity: 3, PCRentalSlots: 1,
	})

	tests := []struct {
		name      string
		seats     []booking.Seat
		rental    bool
		wantErrIs error
	}{
		{name: "空きあり", seats: seats(1, 0)},
		{name: "残り1席", seats: seats(2, 0)},
		{name: "満席", seats: seats(3, 0), wantErrIs: booking.ErrCapacityExceeded},
		{name: "満席はレンタル枠より優先", seats: seats(3, 1), rental: true, wantErrIs: booking.ErrCapacityExceeded},
		{name: "レンタル枠あり", seats: seats(1, 0), rental: true},
		{name: "レンタル枠なし", seats: seats(1, 1), rental: true, wantErrIs: booking.ErrRentalQuotaExceeded},
		{name: "レンタル不要ならレンタル枠は無関係", seats: seats(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := booking.CheckQuota(booking.Occupy(tt.seats), schedule, tt.rental)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("レンタル枠0なら常にレンタル不可", func(t *testing.T) {
		none := course.ReconstructSchedule(course.ScheduleInput{ID: "s2", DateTime: builder.BaseTime, Capacity: 5})
		err := booking.CheckQuota(booking.Occupancy{}, none, true)
		assert.ErrorIs(t, err, booking.ErrRentalQuotaExceeded)
	})
}

func TestOccupy(t *testing.T) {
	o := booking.Occupy(seats(4, 2))
	assert.Equal(t, booking.Occupancy{Total: 4, Rentals: 2}, o)
}

func TestNewBookingSnapshotsCourse(t *testing.T) {
	c := builder.NewCourseBuilder().BuildStored()
	s, ok := c.Schedule("s1")
	require.True(t, ok)
	a, err := booking.NewApplicant("Acme", "Taro Yamada")
	require.NoError(t, err)

	b := booking.NewBooking(c, s, a, true, nil, builder.BaseTime)

	assert.Equal(t, c.ID(), b.CourseID())
	assert.Equal(t, "s1", b.ScheduleID())
	assert.Equal(t, c.Title(), b.CourseTitle())
	assert.Equal(t, s.DateTime(), b.ScheduleDateTime())
	assert.True(t, b.NeedsPCRental())
	assert.Equal(t, builder.BaseTime, b.CreatedAt())
}

// seats builds n seats with distinct applicants, the first rentals of which rent a pc.
func seats(n, rentals int) []booking.Seat {
	out := make([]booking.Seat, n)
	for i := range out {
		out[i] = booking.Seat{
			CompanyName:   "Acme",
			FullName:      string(rune('A' + i)),
			NeedsPCRental: i < rentals,
		}
	}
	return out
}
