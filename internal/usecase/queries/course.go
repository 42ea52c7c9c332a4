package queries

import (
	"context"

	"course-booking/internal/infra"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/readmodel"
	"course-booking/internal/usecase/stats"

	"github.com/google/uuid"
)

type CourseQueries interface {
	ListCourses(ctx context.Context) ([]readmodel.CourseRM, error)
	ListActiveCourses(ctx context.Context) ([]readmodel.CourseRM, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*readmodel.CourseRM, error)
	GetCourseAvailability(ctx context.Context, id uuid.UUID) (*readmodel.CourseAvailabilityRM, error)
}

type CourseReadStore interface {
	List(ctx context.Context) ([]readmodel.CourseRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (readmodel.CourseRM, error)
}

type courseQueriesImpl struct {
	courses  CourseReadStore
	bookings BookingReadStore
}

func NewCourseQueries(courses CourseReadStore, bookings BookingReadStore) CourseQueries {
	return &courseQueriesImpl{courses: courses, bookings: bookings}
}

func (q *courseQueriesImpl) ListCourses(ctx context.Context) ([]readmodel.CourseRM, error) {
	return q.courses.List(ctx)
}

// ListActiveCourses keeps courses not explicitly deactivated.
func (q *courseQueriesImpl) ListActiveCourses(ctx context.Context) ([]readmodel.CourseRM, error) {
	all, err := q.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]readmodel.CourseRM, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (q *courseQueriesImpl) GetCourse(ctx context.Context, id uuid.UUID) (*readmodel.CourseRM, error) {
	c, err := q.courses.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (q *courseQueriesImpl) GetCourseAvailability(ctx context.Context, id uuid.UUID) (*readmodel.CourseAvailabilityRM, error) {
	c, err := q.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	bookings, err := q.bookings.ListByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return &readmodel.CourseAvailabilityRM{
		CourseRM:     *c,
		Availability: stats.Availability(*c, bookings),
	}, nil
}
