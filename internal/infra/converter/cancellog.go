package converter

import (
	"encoding/json"

	"course-booking/internal/domain/cancellog"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"
)

func CancelLogToCreateParams(l *cancellog.CancelLog) (pgstore.CreateCancelLogParams, error) {
	client := l.Client()
	session, err := json.Marshal(pgstore.SessionInfo{
		Timestamp: client.Timestamp,
		TimeZone:  client.TimeZone,
	})
	if err != nil {
		return pgstore.CreateCancelLogParams{}, err
	}

	return pgstore.CreateCancelLogParams{
		ID:                l.ID(),
		OriginalBookingID: l.OriginalBookingID(),
		CourseID:          l.CourseID(),
		CourseTitle:       l.CourseTitle(),
		ScheduleID:        l.ScheduleID(),
		ScheduleDateTime:  pgconv.TimeToPgtype(l.ScheduleDateTime()),
		CompanyName:       l.CompanyName(),
		FullName:          l.FullName(),
		NeedsPcRental:     l.NeedsPCRental(),
		OriginalCreatedAt: pgconv.TimeToPgtype(l.OriginalCreatedAt()),
		CancelReason:      l.CancelReason(),
		CanceledAt:        pgconv.TimeToPgtype(l.CanceledAt()),
		CancelMethod:      l.CancelMethod().String(),
		UserAgent:         client.UserAgent,
		SessionInfo:       session,
	}, nil
}

// CancelLogRMFromRow tolerates a malformed session_info; it is diagnostic only.
func CancelLogRMFromRow(row pgstore.CancelLog) readmodel.CancelLogRM {
	var session pgstore.SessionInfo
	_ = json.Unmarshal(row.SessionInfo, &session)

	return readmodel.CancelLogRM{
		ID:                row.ID,
		OriginalBookingID: row.OriginalBookingID,
		CourseID:          row.CourseID,
		CourseTitle:       row.CourseTitle,
		ScheduleID:        row.ScheduleID,
		ScheduleDateTime:  pgconv.TimeFromPgtype(row.ScheduleDateTime),
		CompanyName:       row.CompanyName,
		FullName:          row.FullName,
		NeedsPCRental:     row.NeedsPcRental,
		OriginalCreatedAt: pgconv.TimeFromPgtype(row.OriginalCreatedAt),
		CancelReason:      row.CancelReason,
		CanceledAt:        pgconv.TimeFromPgtype(row.CanceledAt),
		CancelMethod:      row.CancelMethod,
		UserAgent:         row.UserAgent,
		SessionTimeZone:   session.TimeZone,
		SessionTimestamp:  session.Timestamp,
	}
}
