package stats

import (
	"sort"
	"time"

	"course-booking/internal/usecase/readmodel"
)

type CancelStats struct {
	Total  int                     `json:"totalCancels"`
	Today  int                     `json:"todayCancels"`
	Week   int                     `json:"weekCancels"`
	Month  int                     `json:"monthCancels"`
	Recent []readmodel.CancelLogRM `json:"recentCancels"`
}

// CancelStatistics counts logs in calendar windows ending at now, evaluated in
// now's location. Weeks start on Sunday. Window starts are inclusive.
func CancelStatistics(logs []readmodel.CancelLogRM, now time.Time) CancelStats {
	dayStart := StartOfDay(now)
	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := CancelStats{Total: len(logs)}
	for _, l := range logs {
		at := l.CanceledAt.In(now.Location())
		if !at.Before(dayStart) && at.Before(dayEnd) {
			out.Today++
		}
		if !at.Before(weekStart) {
			out.Week++
		}
		if !at.Before(monthStart) {
			out.Month++
		}
	}

	sorted := make([]readmodel.CancelLogRM, len(logs))
	copy(sorted, logs)
	SortCancelLogsDesc(sorted)
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}
	out.Recent = sorted
	return out
}

func SortCancelLogsDesc(logs []readmodel.CancelLogRM) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CanceledAt.After(logs[j].CanceledAt)
	})
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
