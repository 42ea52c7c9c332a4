package converter

import (
	"course-booking/internal/domain/booking"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"
)

func BookingToCreateParams(b *booking.Booking) pgstore.CreateBookingParams {
	return pgstore.CreateBookingParams{
		ID:               b.ID(),
		CourseID:         b.CourseID(),
		ScheduleID:       b.ScheduleID(),
		CompanyName:      b.Applicant().CompanyName(),
		FullName:         b.Applicant().FullName(),
		NeedsPcRental:    b.NeedsPCRental(),
		CourseTitle:      b.CourseTitle(),
		ScheduleDateTime: pgconv.TimeToPgtype(b.ScheduleDateTime()),
		ScheduleEndTime:  pgconv.TimePtrToPgtype(b.ScheduleEndTime()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		CreatedBy:        pgconv.StringPtrToPgtype(b.CreatedBy()),
	}
}

func BookingFromRow(row pgstore.Booking) *booking.Booking {
	return booking.Reconstruct(
		row.ID,
		row.CourseID,
		row.ScheduleID,
		booking.ReconstructApplicant(row.CompanyName, row.FullName),
		row.NeedsPcRental,
		row.CourseTitle,
		pgconv.TimeFromPgtype(row.ScheduleDateTime),
		pgconv.TimePtrFromPgtype(row.ScheduleEndTime),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.StringPtrFromPgtype(row.CreatedBy),
	)
}

func BookingRMFromRow(row pgstore.Booking) readmodel.BookingRM {
	return readmodel.BookingRM{
		ID:               row.ID,
		CourseID:         row.CourseID,
		ScheduleID:       row.ScheduleID,
		CompanyName:      row.CompanyName,
		FullName:         row.FullName,
		NeedsPCRental:    row.NeedsPcRental,
		CourseTitle:      row.CourseTitle,
		ScheduleDateTime: pgconv.TimeFromPgtype(row.ScheduleDateTime),
		ScheduleEndTime:  pgconv.TimePtrFromPgtype(row.ScheduleEndTime),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		CreatedBy:        pgconv.StringPtrFromPgtype(row.CreatedBy),
	}
}

func BookingRMsFromRows(rows []pgstore.Booking) []readmodel.BookingRM {
	out := make([]readmodel.BookingRM, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingRMFromRow(r))
	}
	return out
}

func SeatsFromRows(rows []pgstore.Booking) []booking.Seat {
	seats := make([]booking.Seat, 0, len(rows))
	for _, r := range rows {
		seats = append(seats, booking.Seat{
			CompanyName:   r.CompanyName,
			FullName:      r.FullName,
			NeedsPCRental: r.NeedsPcRental,
		})
	}
	return seats
}
