// Package stats derives occupancy and rollup figures from already-fetched
// bookings, courses and cancel logs. Nothing here touches the store.
package stats

import (
	"sort"
	"time"

	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ScheduleCounts struct {
	Total   int `json:"total"`
	Rentals int `json:"rentals"`
}

// CountsForSchedule is the read-time mirror of what admission enforces.
func CountsForSchedule(courseID uuid.UUID, scheduleID string, bookings []readmodel.BookingRM) ScheduleCounts {
	var c ScheduleCounts
	for _, b := range bookings {
		if b.CourseID != courseID || b.ScheduleID != scheduleID {
			continue
		}
		c.Total++
		if b.NeedsPCRental {
			c.Rentals++
		}
	}
	return c
}

type ScheduleGroup struct {
	CourseID         uuid.UUID             `json:"courseId"`
	CourseTitle      string                `json:"courseTitle"`
	ScheduleID       string                `json:"scheduleId"`
	ScheduleDateTime time.Time             `json:"scheduleDateTime"`
	ScheduleEndTime  *time.Time            `json:"scheduleEndTime,omitempty"`
	Bookings         []readmodel.BookingRM `json:"bookings"`
	Total            int                   `json:"total"`
	Rentals          int                   `json:"rentals"`
}

type scheduleKey struct {
	courseID   uuid.UUID
	scheduleID string
}

// GroupBySchedule buckets bookings per (course, schedule). Display fields come
// from the first booking seen in each bucket. Groups are ordered by schedule
// start ascending; equal starts fall back to course id then schedule id.
func GroupBySchedule(bookings []readmodel.BookingRM) []ScheduleGroup {
	index := make(map[scheduleKey]int)
	groups := make([]ScheduleGroup, 0)

	for _, b := range bookings {
		k := scheduleKey{courseID: b.CourseID, scheduleID: b.ScheduleID}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, ScheduleGroup{
				CourseID:         b.CourseID,
				CourseTitle:      b.CourseTitle,
				ScheduleID:       b.ScheduleID,
				ScheduleDateTime: b.ScheduleDateTime,
				ScheduleEndTime:  b.ScheduleEndTime,
			})
		}
		g := &groups[i]
		g.Bookings = append(g.Bookings, b)
		g.Total++
		if b.NeedsPCRental {
			g.Rentals++
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.ScheduleDateTime.Equal(b.ScheduleDateTime) {
			return a.ScheduleDateTime.Before(b.ScheduleDateTime)
		}
		if a.CourseID != b.CourseID {
			return a.CourseID.String() < b.CourseID.String()
		}
		return a.ScheduleID < b.ScheduleID
	})
	return groups
}

// Availability computes per-schedule remaining seats for one course.
func Availability(course readmodel.CourseRM, bookings []readmodel.BookingRM) []readmodel.ScheduleAvailabilityRM {
	out := make([]readmodel.ScheduleAvailabilityRM, 0, len(course.Schedules))
	for _, s := range course.Schedules {
		c := CountsForSchedule(course.ID, s.ID, bookings)
		out = append(out, readmodel.ScheduleAvailabilityRM{
			ScheduleRM:      s,
			Booked:          c.Total,
			Rentals:         c.Rentals,
			Remaining:       max(s.Capacity-c.Total, 0),
			RentalRemaining: max(s.PCRentalSlots-c.Rentals, 0),
			IsFull:          c.Total >= s.Capacity,
		})
	}
	return out
}
