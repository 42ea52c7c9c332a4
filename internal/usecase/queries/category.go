package queries

import (
	"context"

	"course-booking/internal/usecase/readmodel"
)

type CategoryQueries interface {
	ListCategories(ctx context.Context) ([]readmodel.CategoryRM, error)
}

type CategoryReadStore interface {
	List(ctx context.Context) ([]readmodel.CategoryRM, error)
}

type categoryQueriesImpl struct {
	readStore CategoryReadStore
}

func NewCategoryQueries(readStore CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{readStore: readStore}
}

// ListCategories falls back to two built-in entries while nothing is stored,
// so the course form always has something to offer.
func (q *categoryQueriesImpl) ListCategories(ctx context.Context) ([]readmodel.CategoryRM, error) {
	stored, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}
	return PlaceholderCategories(), nil
}

func PlaceholderCategories() []readmodel.CategoryRM {
	return []readmodel.CategoryRM{
		{ID: "default-1", Name: "General", IsActive: true, Order: 1, Placeholder: true},
		{ID: "default-2", Name: "Technical", IsActive: true, Order: 2, Placeholder: true},
	}
}
