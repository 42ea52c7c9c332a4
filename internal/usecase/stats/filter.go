package stats

import (
	"sort"
	"strings"
	"time"

	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BookingFilter narrows the admin booking list. Zero values do not filter.
// DateFrom and DateTo are calendar days; DateTo includes the whole day.
type BookingFilter struct {
	CourseID      *uuid.UUID
	ScheduleID    string
	CompanyName   string
	NeedsPCRental *bool
	DateFrom      *time.Time
	DateTo        *time.Time
}

func FilterBookings(bookings []readmodel.BookingRM, f BookingFilter) []readmodel.BookingRM {
	company := strings.ToLower(strings.TrimSpace(f.CompanyName))
	var from, until time.Time
	if f.DateFrom != nil {
		from = StartOfDay(*f.DateFrom)
	}
	if f.DateTo != nil {
		until = StartOfDay(*f.DateTo).AddDate(0, 0, 1)
	}

	out := make([]readmodel.BookingRM, 0, len(bookings))
	for _, b := range bookings {
		if f.CourseID != nil && b.CourseID != *f.CourseID {
			continue
		}
		if f.ScheduleID != "" && b.ScheduleID != f.ScheduleID {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(b.CompanyName), company) {
			continue
		}
		if f.NeedsPCRental != nil && b.NeedsPCRental != *f.NeedsPCRental {
			continue
		}
		if f.DateFrom != nil && b.CreatedAt.Before(from) {
			continue
		}
		if f.DateTo != nil && !b.CreatedAt.Before(until) {
			continue
		}
		out = append(out, b)
	}
	return out
}

type ApplicantGroup struct {
	CompanyName string                `json:"companyName"`
	FullName    string                `json:"fullName"`
	Bookings    []readmodel.BookingRM `json:"bookings"`
}

// MatchPartial keeps bookings whose company and name contain the given parts,
// case-insensitively. Both parts empty matches nothing.
func MatchPartial(bookings []readmodel.BookingRM, companyPart, namePart string) []readmodel.BookingRM {
	c := strings.ToLower(strings.TrimSpace(companyPart))
	n := strings.ToLower(strings.TrimSpace(namePart))
	if c == "" && n == "" {
		return nil
	}

	var out []readmodel.BookingRM
	for _, b := range bookings {
		if c != "" && !strings.Contains(strings.ToLower(b.CompanyName), c) {
			continue
		}
		if n != "" && !strings.Contains(strings.ToLower(b.FullName), n) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// GroupByApplicant groups bookings per (company, name) and orders the groups
// with Japanese collation, company first.
func GroupByApplicant(bookings []readmodel.BookingRM) []ApplicantGroup {
	index := make(map[string]int)
	groups := make([]ApplicantGroup, 0)
	for _, b := range bookings {
		k := applicantKey(b)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, ApplicantGroup{CompanyName: b.CompanyName, FullName: b.FullName})
		}
		groups[i].Bookings = append(groups[i].Bookings, b)
	}

	col := collate.New(language.Japanese)
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if c := col.CompareString(a.CompanyName, b.CompanyName); c != 0 {
			return c < 0
		}
		return col.CompareString(a.FullName, b.FullName) < 0
	})
	return groups
}
