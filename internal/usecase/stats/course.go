package stats

import (
	"sort"
	"strings"
	"time"

	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const RecentLimit = 10

type ScheduleStats struct {
	ScheduleID       string    `json:"scheduleId"`
	DateTime         time.Time `json:"dateTime"`
	Capacity         int       `json:"capacity"`
	Bookings         int       `json:"bookings"`
	UniqueApplicants int       `json:"uniqueApplicants"`
	PCRentals        int       `json:"pcRentals"`
	RemainingSlots   int       `json:"remainingSlots"`
}

type CourseStats struct {
	CourseID         uuid.UUID       `json:"courseId"`
	CourseTitle      string          `json:"courseTitle"`
	TotalBookings    int             `json:"totalBookings"`
	UniqueApplicants int             `json:"uniqueApplicants"`
	PCRentals        int             `json:"pcRentals"`
	Schedules        []ScheduleStats `json:"scheduleStats"`
}

type BookingStatistics struct {
	TotalBookings   int                   `json:"totalBookings"`
	TotalApplicants int                   `json:"totalApplicants"`
	TotalPCRentals  int                   `json:"totalPcRentals"`
	Courses         []CourseStats         `json:"courseStats"`
	Recent          []readmodel.BookingRM `json:"recentBookings"`
}

func applicantKey(b readmodel.BookingRM) string {
	return strings.TrimSpace(b.CompanyName) + "|" + strings.TrimSpace(b.FullName)
}

// CourseStatistics rolls bookings up per course and per schedule. Unique
// applicants are distinct trimmed (company, name) pairs, so one person booked
// on two schedules counts once at the course level. Bookings whose course no
// longer exists still count toward the totals.
func CourseStatistics(bookings []readmodel.BookingRM, courses []readmodel.CourseRM) BookingStatistics {
	out := BookingStatistics{
		TotalBookings: len(bookings),
		Courses:       make([]CourseStats, 0, len(courses)),
	}

	all := make(map[string]struct{})
	byCourse := make(map[uuid.UUID][]readmodel.BookingRM)
	for _, b := range bookings {
		all[applicantKey(b)] = struct{}{}
		if b.NeedsPCRental {
			out.TotalPCRentals++
		}
		byCourse[b.CourseID] = append(byCourse[b.CourseID], b)
	}
	out.TotalApplicants = len(all)

	for _, c := range courses {
		cb := byCourse[c.ID]
		cs := CourseStats{
			CourseID:         c.ID,
			CourseTitle:      c.Title,
			TotalBookings:    len(cb),
			UniqueApplicants: countUnique(cb),
			PCRentals:        countRentals(cb),
			Schedules:        make([]ScheduleStats, 0, len(c.Schedules)),
		}
		for _, s := range c.Schedules {
			sb := filterSchedule(cb, s.ID)
			cs.Schedules = append(cs.Schedules, ScheduleStats{
				ScheduleID:       s.ID,
				DateTime:         s.DateTime,
				Capacity:         s.Capacity,
				Bookings:         len(sb),
				UniqueApplicants: countUnique(sb),
				PCRentals:        countRentals(sb),
				RemainingSlots:   s.Capacity - len(sb),
			})
		}
		out.Courses = append(out.Courses, cs)
	}

	out.Recent = RecentBookings(bookings, RecentLimit)
	return out
}

// RecentBookings returns up to n bookings, newest first.
func RecentBookings(bookings []readmodel.BookingRM, n int) []readmodel.BookingRM {
	sorted := make([]readmodel.BookingRM, len(bookings))
	copy(sorted, bookings)
	SortByCreatedDesc(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByCreatedDesc orders bookings most recent first; ties by id for stability.
func SortByCreatedDesc(bookings []readmodel.BookingRM) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

func filterSchedule(bookings []readmodel.BookingRM, scheduleID string) []readmodel.BookingRM {
	var out []readmodel.BookingRM
	for _, b := range bookings {
		if b.ScheduleID == scheduleID {
			out = append(out, b)
		}
	}
	return out
}

func countUnique(bookings []readmodel.BookingRM) int {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		seen[applicantKey(b)] = struct{}{}
	}
	return len(seen)
}

func countRentals(bookings []readmodel.BookingRM) int {
	n := 0
	for _, b := range bookings {
		if b.NeedsPCRental {
			n++
		}
	}
	return n
}
