package repository

import (
	"context"

	"course-booking/internal/domain/category"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
)

type CategoryWriteQueries interface {
	CreateCategory(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateCategoryParams) error
}

type CategoryRepository struct {
	queries CategoryWriteQueries
	db      pgstore.DBTX
}

func NewCategoryRepository(queries CategoryWriteQueries, db pgstore.DBTX) *CategoryRepository {
	return &CategoryRepository{queries: queries, db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if err := r.queries.CreateCategory(ctx, r.db, converter.CategoryToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}
