package repository

import (
	"context"

	"course-booking/internal/domain/course"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
)

type CourseWriteQueries interface {
	CreateCourse(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateCourseParams) error
	UpdateCourse(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateCourseParams) (int64, error)
}

type CourseRepository struct {
	queries CourseWriteQueries
	db      pgstore.DBTX
}

func NewCourseRepository(queries CourseWriteQueries, db pgstore.DBTX) *CourseRepository {
	return &CourseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	params, err := converter.CourseToCreateParams(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode course", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateCourse(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create course", err)
	}
	return nil
}

// Update overwrites every field; concurrent admin edits are last-write-wins.
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	params, err := converter.CourseToUpdateParams(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode course", err, infra.KindDBFailure)
	}
	affected, err := r.queries.UpdateCourse(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update course", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}
