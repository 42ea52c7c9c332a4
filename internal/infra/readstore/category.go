package readstore

import (
	"context"

	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/usecase/readmodel"
)

type CategoryReadQueries interface {
	ListCategories(ctx context.Context, db pgstore.DBTX) ([]pgstore.Category, error)
}

type CategoryReadStore struct {
	queries CategoryReadQueries
	db      pgstore.DBTX
}

func NewCategoryReadStore(queries CategoryReadQueries, db pgstore.DBTX) *CategoryReadStore {
	return &CategoryReadStore{queries: queries, db: db}
}

func (r *CategoryReadStore) List(ctx context.Context) ([]readmodel.CategoryRM, error) {
	rows, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	out := make([]readmodel.CategoryRM, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CategoryRMFromRow(row))
	}
	return out, nil
}
