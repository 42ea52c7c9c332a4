package queries

import (
	"context"

	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/stats"
)

type StatisticsQueries interface {
	BookingStatistics(ctx context.Context) (*stats.BookingStatistics, error)
	CancelStatistics(ctx context.Context) (*stats.CancelStats, error)
}

type statisticsQueriesImpl struct {
	bookings   BookingReadStore
	courses    CourseReadStore
	cancelLogs CancelLogReadStore
	clock      clock.Clock
}

func NewStatisticsQueries(bookings BookingReadStore, courses CourseReadStore, cancelLogs CancelLogReadStore, clk clock.Clock) StatisticsQueries {
	return &statisticsQueriesImpl{
		bookings:   bookings,
		courses:    courses,
		cancelLogs: cancelLogs,
		clock:      clk,
	}
}

func (q *statisticsQueriesImpl) BookingStatistics(ctx context.Context) (*stats.BookingStatistics, error) {
	bookings, err := q.bookings.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsUnavailable)
	}
	courses, err := q.courses.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsUnavailable)
	}
	s := stats.CourseStatistics(bookings, courses)
	return &s, nil
}

func (q *statisticsQueriesImpl) CancelStatistics(ctx context.Context) (*stats.CancelStats, error) {
	logs, err := q.cancelLogs.List(ctx, nil, nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatisticsUnavailable)
	}
	s := stats.CancelStatistics(logs, q.clock.Now())
	return &s, nil
}
