package queries

import (
	"context"
	"strings"

	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"
)

type PrefillQueries interface {
	Recall(ctx context.Context, clientID string) (*shared.Prefill, error)
}

type prefillQueriesImpl struct {
	store shared.PrefillStore
}

func NewPrefillQueries(store shared.PrefillStore) PrefillQueries {
	return &prefillQueriesImpl{store: store}
}

func (q *prefillQueriesImpl) Recall(ctx context.Context, clientID string) (*shared.Prefill, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errs.ErrPrefillNotFound
	}
	p, err := q.store.Load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
