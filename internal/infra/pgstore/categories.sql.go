package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listCategories = `SELECT id, name, description, is_active, "order" FROM categories ORDER BY "order", name`

func (q *Queries) ListCategories(ctx context.Context, db DBTX) ([]Category, error) {
	rows, err := db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Category])
}

const createCategory = `INSERT INTO categories (id, name, description, is_active, "order") VALUES ($1, $2, $3, $4, $5)`

type CreateCategoryParams struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	IsActive    bool
	Order       int32
}

func (q *Queries) CreateCategory(ctx context.Context, db DBTX, arg CreateCategoryParams) error {
	_, err := db.Exec(ctx, createCategory, arg.ID, arg.Name, arg.Description, arg.IsActive, arg.Order)
	return err
}
