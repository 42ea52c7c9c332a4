package readstore

import (
	"context"
	"time"

	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"
)

type CancelLogReadQueries interface {
	ListCancelLogs(ctx context.Context, db pgstore.DBTX, arg pgstore.ListCancelLogsParams) ([]pgstore.CancelLog, error)
}

type CancelLogReadStore struct {
	queries CancelLogReadQueries
	db      pgstore.DBTX
}

func NewCancelLogReadStore(queries CancelLogReadQueries, db pgstore.DBTX) *CancelLogReadStore {
	return &CancelLogReadStore{
		queries: queries,
		db:      db,
	}
}

// List returns logs canceled within [from, to), newest first. Nil bounds are open.
func (r *CancelLogReadStore) List(ctx context.Context, from, to *time.Time) ([]readmodel.CancelLogRM, error) {
	rows, err := r.queries.ListCancelLogs(ctx, r.db, pgstore.ListCancelLogsParams{
		From: pgconv.TimePtrToPgtype(from),
		To:   pgconv.TimePtrToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancel logs", err)
	}
	out := make([]readmodel.CancelLogRM, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CancelLogRMFromRow(row))
	}
	return out, nil
}
