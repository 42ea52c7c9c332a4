package queries

import (
	"context"
	"time"

	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/readmodel"
)

type CancelLogQueries interface {
	ListCancelLogs(ctx context.Context, from, to *time.Time) ([]readmodel.CancelLogRM, error)
}

type CancelLogReadStore interface {
	List(ctx context.Context, from, to *time.Time) ([]readmodel.CancelLogRM, error)
}

type cancelLogQueriesImpl struct {
	readStore CancelLogReadStore
}

func NewCancelLogQueries(readStore CancelLogReadStore) CancelLogQueries {
	return &cancelLogQueriesImpl{readStore: readStore}
}

func (q *cancelLogQueriesImpl) ListCancelLogs(ctx context.Context, from, to *time.Time) ([]readmodel.CancelLogRM, error) {
	// to is exclusive, so an empty window is as wrong as an inverted one
	if from != nil && to != nil && !to.After(*from) {
		return nil, errs.ErrDomainValidation
	}
	return q.readStore.List(ctx, from, to)
}
