package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const courseColumns = `id, title, description, category, is_active, schedules, created_at, updated_at`

const listCourses = `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC, id`

func (q *Queries) ListCourses(ctx context.Context, db DBTX) ([]Course, error) {
	rows, err := db.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Course])
}

const getCourse = `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

func (q *Queries) GetCourse(ctx context.Context, db DBTX, id uuid.UUID) (Course, error) {
	rows, err := db.Query(ctx, getCourse, id)
	if err != nil {
		return Course{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Course])
}

const createCourse = `
INSERT INTO courses (id, title, description, category, is_active, schedules, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreateCourseParams struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    pgtype.Text
	IsActive    bool
	Schedules   []byte
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateCourse(ctx context.Context, db DBTX, arg CreateCourseParams) error {
	_, err := db.Exec(ctx, createCourse,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Category,
		arg.IsActive,
		arg.Schedules,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateCourse = `
UPDATE courses
SET title = $2, description = $3, category = $4, is_active = $5, schedules = $6, updated_at = $7
WHERE id = $1`

type UpdateCourseParams struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    pgtype.Text
	IsActive    bool
	Schedules   []byte
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateCourse(ctx context.Context, db DBTX, arg UpdateCourseParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCourse,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Category,
		arg.IsActive,
		arg.Schedules,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
