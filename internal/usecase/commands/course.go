package commands

import (
	"context"

	"course-booking/internal/domain/course"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CourseCommands interface {
	CreateCourse(ctx context.Context, in course.Input) (uuid.UUID, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, p course.Patch) error
}

type courseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCourseCommands(uow shared.UnitOfWork, clk clock.Clock) CourseCommands {
	return &courseCommandsImpl{uow: uow, clock: clk}
}

func (uc *courseCommandsImpl) CreateCourse(ctx context.Context, in course.Input) (uuid.UUID, error) {
	c, err := course.NewCourse(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCourse)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Courses().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

// UpdateCourse merges p into the stored course. Concurrent edits are not
// detected; the last commit wins.
func (uc *courseCommandsImpl) UpdateCourse(ctx context.Context, id uuid.UUID, p course.Patch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CourseByID(ctx, id)
		if err != nil {
			return markNotFound(err, errs.ErrCourseNotFound)
		}
		if err := c.Apply(p, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidCourse)
		}
		if err := tx.Courses().Update(ctx, c); err != nil {
			return markNotFound(err, errs.ErrCourseNotFound)
		}
		return nil
	})
}
