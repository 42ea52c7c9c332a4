//go:build unit || e2e || integration

package builder

import (
	"time"

	"course-booking/internal/domain/course"
	reqdto "course-booking/internal/handler/dto/request"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BaseTime is a fixed Monday morning in JST used across tests.
var BaseTime = time.Date(2025, 3, 10, 10, 0, 0, 0, time.FixedZone("JST", 9*60*60))

type CourseBuilder struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    *string
	IsActive    bool
	Schedules   []course.ScheduleInput
	CreatedAt   time.Time
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:          uuid.New(),
		Title:       "Go Basics",
		Description: "Hands-on introduction",
		IsActive:    true,
		Schedules: []course.ScheduleInput{
			{ID: "s1", DateTime: BaseTime.AddDate(0, 0, 7), Capacity: 3, PCRentalSlots: 1},
		},
		CreatedAt: BaseTime,
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

func (b *CourseBuilder) WithTitle(title string) *CourseBuilder {
	b.Title = title
	return b
}

// WithSchedule replaces the schedule list with a single schedule.
func (b *CourseBuilder) WithSchedule(id string, capacity, rentalSlots int) *CourseBuilder {
	b.Schedules = []course.ScheduleInput{
		{ID: id, DateTime: BaseTime.AddDate(0, 0, 7), Capacity: capacity, PCRentalSlots: rentalSlots},
	}
	return b
}

func (b *CourseBuilder) AddSchedule(s course.ScheduleInput) *CourseBuilder {
	b.Schedules = append(b.Schedules, s)
	return b
}

func (b *CourseBuilder) AsInactive() *CourseBuilder {
	b.IsActive = false
	return b
}

func (b *CourseBuilder) BuildInput() course.Input {
	active := b.IsActive
	return course.Input{
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		IsActive:    &active,
		Schedules:   append([]course.ScheduleInput(nil), b.Schedules...),
	}
}

func (b *CourseBuilder) BuildDomain() (*course.Course, error) {
	return course.NewCourse(b.BuildInput(), b.CreatedAt)
}

// BuildStored returns a course as if loaded back from the store, keeping b.ID.
func (b *CourseBuilder) BuildStored() *course.Course {
	schedules := make([]course.Schedule, len(b.Schedules))
	for i, s := range b.Schedules {
		schedules[i] = course.ReconstructSchedule(s)
	}
	return course.Reconstruct(b.ID, b.Title, b.Description, b.Category, b.IsActive, schedules, b.CreatedAt, b.CreatedAt)
}

func (b *CourseBuilder) BuildReadModel() readmodel.CourseRM {
	schedules := make([]readmodel.ScheduleRM, len(b.Schedules))
	for i, s := range b.Schedules {
		schedules[i] = readmodel.ScheduleRM{
			ID:            s.ID,
			DateTime:      s.DateTime,
			EndTime:       s.EndTime,
			Capacity:      s.Capacity,
			PCRentalSlots: s.PCRentalSlots,
		}
	}
	return readmodel.CourseRM{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		IsActive:    b.IsActive,
		Schedules:   schedules,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *CourseBuilder) BuildDTO() reqdto.CreateCourseRequest {
	active := b.IsActive
	schedules := make([]reqdto.ScheduleRequest, len(b.Schedules))
	for i, s := range b.Schedules {
		schedules[i] = reqdto.ScheduleRequest{
			ID:            s.ID,
			DateTime:      s.DateTime,
			EndTime:       s.EndTime,
			Capacity:      s.Capacity,
			PCRentalSlots: s.PCRentalSlots,
		}
	}
	return reqdto.CreateCourseRequest{
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		IsActive:    &active,
		Schedules:   schedules,
	}
}
