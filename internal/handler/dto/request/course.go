package request

import (
	"time"

	"course-booking/internal/domain/course"
)

type ScheduleRequest struct {
	ID            string     `json:"id"`
	DateTime      time.Time  `json:"dateTime" binding:"required"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Capacity      int        `json:"capacity" binding:"required,min=1"`
	PCRentalSlots int        `json:"pcRentalSlots" binding:"min=0"`
}

type CreateCourseRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Category    *string           `json:"category,omitempty"`
	IsActive    *bool             `json:"isActive,omitempty"`
	Schedules   []ScheduleRequest `json:"schedules" binding:"required,min=1,dive"`
}

// UpdateCourseRequest: omitted fields keep their stored values.
type UpdateCourseRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Category    *string            `json:"category,omitempty"`
	IsActive    *bool              `json:"isActive,omitempty"`
	Schedules   *[]ScheduleRequest `json:"schedules,omitempty"`
}

func (r CreateCourseRequest) ToInput() course.Input {
	return course.Input{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		IsActive:    r.IsActive,
		Schedules:   toScheduleInputs(r.Schedules),
	}
}

func (r UpdateCourseRequest) ToPatch() course.Patch {
	p := course.Patch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		IsActive:    r.IsActive,
	}
	if r.Schedules != nil {
		inputs := toScheduleInputs(*r.Schedules)
		p.Schedules = &inputs
	}
	return p
}

func toScheduleInputs(rs []ScheduleRequest) []course.ScheduleInput {
	out := make([]course.ScheduleInput, len(rs))
	for i, s := range rs {
		out[i] = course.ScheduleInput{
			ID:            s.ID,
			DateTime:      s.DateTime,
			EndTime:       s.EndTime,
			Capacity:      s.Capacity,
			PCRentalSlots: s.PCRentalSlots,
		}
	}
	return out
}
