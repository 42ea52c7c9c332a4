package response

import (
	"time"

	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScheduleResponse struct {
	ID            string     `json:"id"`
	DateTime      time.Time  `json:"dateTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Capacity      int        `json:"capacity"`
	PCRentalSlots int        `json:"pcRentalSlots"`
}

type CourseResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    *string            `json:"category,omitempty"`
	IsActive    bool               `json:"isActive"`
	Schedules   []ScheduleResponse `json:"schedules"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ScheduleAvailabilityResponse struct {
	ID              string     `json:"id"`
	DateTime        time.Time  `json:"dateTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	Capacity        int        `json:"capacity"`
	PCRentalSlots   int        `json:"pcRentalSlots"`
	Booked          int        `json:"booked"`
	Rentals         int        `json:"rentals"`
	Remaining       int        `json:"remaining"`
	RentalRemaining int        `json:"rentalRemaining"`
	IsFull          bool       `json:"isFull"`
}

type CourseDetailResponse struct {
	CourseResponse
	Availability []ScheduleAvailabilityResponse `json:"availability"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCourseRMs(rms []readmodel.CourseRM) ([]CourseResponse, error) {
	out := make([]CourseResponse, 0, len(rms))
	if err := copier.Copy(&out, &rms); err != nil {
		return nil, err
	}
	return out, nil
}

func FromCourseAvailabilityRM(rm *readmodel.CourseAvailabilityRM) (*CourseDetailResponse, error) {
	var res CourseDetailResponse
	if err := copier.Copy(&res.CourseResponse, &rm.CourseRM); err != nil {
		return nil, err
	}
	res.Availability = make([]ScheduleAvailabilityResponse, 0, len(rm.Availability))
	for _, a := range rm.Availability {
		res.Availability = append(res.Availability, ScheduleAvailabilityResponse{
			ID:              a.ID,
			DateTime:        a.DateTime,
			EndTime:         a.EndTime,
			Capacity:        a.Capacity,
			PCRentalSlots:   a.PCRentalSlots,
			Booked:          a.Booked,
			Rentals:         a.Rentals,
			Remaining:       a.Remaining,
			RentalRemaining: a.RentalRemaining,
			IsFull:          a.IsFull,
		})
	}
	return &res, nil
}
