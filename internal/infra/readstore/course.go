package readstore

import (
	"context"

	"course-booking/internal/domain/course"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CourseReadQueries interface {
	ListCourses(ctx context.Context, db pgstore.DBTX) ([]pgstore.Course, error)
	GetCourse(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Course, error)
}

type CourseReadStore struct {
	queries CourseReadQueries
	db      pgstore.DBTX
}

func NewCourseReadStore(queries CourseReadQueries, db pgstore.DBTX) *CourseReadStore {
	return &CourseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CourseReadStore) List(ctx context.Context) ([]readmodel.CourseRM, error) {
	rows, err := r.queries.ListCourses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	out := make([]readmodel.CourseRM, 0, len(rows))
	for _, row := range rows {
		rm, err := converter.CourseRMFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode course", err, infra.KindDBFailure)
		}
		out = append(out, rm)
	}
	return out, nil
}

func (r *CourseReadStore) FindByID(ctx context.Context, id uuid.UUID) (readmodel.CourseRM, error) {
	row, err := r.queries.GetCourse(ctx, r.db, id)
	if err != nil {
		return readmodel.CourseRM{}, infra.WrapRepoErr("failed to get course", err)
	}
	rm, err := converter.CourseRMFromRow(row)
	if err != nil {
		return readmodel.CourseRM{}, infra.WrapRepoErr("failed to decode course", err, infra.KindDBFailure)
	}
	return rm, nil
}

// FindDomainByID loads the aggregate for command-side use.
func (r *CourseReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	row, err := r.queries.GetCourse(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get course", err)
	}
	c, err := converter.CourseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode course", err, infra.KindDBFailure)
	}
	return c, nil
}
