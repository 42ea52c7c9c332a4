//go:build unit || e2e || integration

package builder

import (
	"time"

	"course-booking/internal/domain/booking"
	reqdto "course-booking/internal/handler/dto/request"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	CourseTitle      string
	ScheduleID       string
	ScheduleDateTime time.Time
	CompanyName      string
	FullName         string
	NeedsPCRental    bool
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               uuid.New(),
		CourseID:         uuid.New(),
		CourseTitle:      "Go Basics",
		ScheduleID:       "s1",
		ScheduleDateTime: BaseTime.AddDate(0, 0, 7),
		CompanyName:      "Acme",
		FullName:         "Taro Yamada",
		CreatedAt:        BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForCourse(courseID uuid.UUID, scheduleID string) *BookingBuilder {
	b.CourseID = courseID
	b.ScheduleID = scheduleID
	return b
}

func (b *BookingBuilder) WithApplicant(companyName, fullName string) *BookingBuilder {
	b.CompanyName = companyName
	b.FullName = fullName
	return b
}

func (b *BookingBuilder) WithRental() *BookingBuilder {
	b.NeedsPCRental = true
	return b
}

func (b *BookingBuilder) CreatedAtTime(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID,
		b.CourseID,
		b.ScheduleID,
		booking.ReconstructApplicant(b.CompanyName, b.FullName),
		b.NeedsPCRental,
		b.CourseTitle,
		b.ScheduleDateTime,
		nil,
		b.CreatedAt,
		nil,
	)
}

func (b *BookingBuilder) BuildReadModel() readmodel.BookingRM {
	return readmodel.BookingRM{
		ID:               b.ID,
		CourseID:         b.CourseID,
		ScheduleID:       b.ScheduleID,
		CompanyName:      b.CompanyName,
		FullName:         b.FullName,
		NeedsPCRental:    b.NeedsPCRental,
		CourseTitle:      b.CourseTitle,
		ScheduleDateTime: b.ScheduleDateTime,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() pgstore.Booking {
	return pgstore.Booking{
		ID:               b.ID,
		CourseID:         b.CourseID,
		ScheduleID:       b.ScheduleID,
		CompanyName:      b.CompanyName,
		FullName:         b.FullName,
		NeedsPcRental:    b.NeedsPCRental,
		CourseTitle:      b.CourseTitle,
		ScheduleDateTime: pgconv.TimeToPgtype(b.ScheduleDateTime),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourseID:      b.CourseID,
		ScheduleID:    b.ScheduleID,
		CompanyName:   b.CompanyName,
		FullName:      b.FullName,
		NeedsPCRental: b.NeedsPCRental,
	}
}
