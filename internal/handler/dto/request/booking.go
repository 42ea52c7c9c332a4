package request

import (
	"time"

	"course-booking/internal/domain/cancellog"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/stats"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var ErrInvertedRange = errs.New("from is after to")

type CreateBookingRequest struct {
	CourseID      uuid.UUID `json:"courseId" binding:"required"`
	ScheduleID    string    `json:"scheduleId" binding:"required"`
	CompanyName   string    `json:"companyName" binding:"required"`
	FullName      string    `json:"fullName" binding:"required"`
	NeedsPCRental bool      `json:"needsPcRental"`
}

type ApplicantQuery struct {
	CompanyName string `form:"companyName"`
	FullName    string `form:"fullName"`
}

type SearchQuery struct {
	Company string `form:"company"`
	Name    string `form:"name"`
}

type CancelBookingRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	TimeZone    string `json:"timezone"`
}

type AdminCancelRequest struct {
	Reason   string `json:"reason"`
	TimeZone string `json:"timezone"`
}

func ClientInfo(userAgent, timeZone string, now time.Time) cancellog.ClientInfo {
	return cancellog.ClientInfo{
		UserAgent: userAgent,
		TimeZone:  timeZone,
		Timestamp: now,
	}
}

// BookingFilterQuery mirrors the admin dashboard filters. Dates are calendar
// days (YYYY-MM-DD) in the service time zone.
type BookingFilterQuery struct {
	CourseID      string `form:"courseId"`
	ScheduleID    string `form:"scheduleId"`
	CompanyName   string `form:"companyName"`
	NeedsPCRental string `form:"needsPcRental"`
	DateFrom      string `form:"dateFrom"`
	DateTo        string `form:"dateTo"`
}

func (q BookingFilterQuery) ToFilter(loc *time.Location) (stats.BookingFilter, error) {
	var f stats.BookingFilter
	if q.CourseID != "" {
		id, err := uuid.Parse(q.CourseID)
		if err != nil {
			return f, err
		}
		f.CourseID = &id
	}
	f.ScheduleID = q.ScheduleID
	f.CompanyName = q.CompanyName
	switch q.NeedsPCRental {
	case "true":
		v := true
		f.NeedsPCRental = &v
	case "false":
		v := false
		f.NeedsPCRental = &v
	}
	var err error
	if f.DateFrom, err = parseDay(q.DateFrom, loc); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDay(q.DateTo, loc); err != nil {
		return f, err
	}
	return f, nil
}

type DateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Bounds returns [from 00:00, the day after to 00:00). from == to is one
// whole day; to before from is ErrInvertedRange.
func (q DateRangeQuery) Bounds(loc *time.Location) (from, to *time.Time, err error) {
	if from, err = parseDay(q.From, loc); err != nil {
		return nil, nil, err
	}
	if to, err = parseDay(q.To, loc); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrInvertedRange
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	return from, to, nil
}

func parseDay(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
