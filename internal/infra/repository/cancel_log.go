package repository

import (
	"context"

	"course-booking/internal/domain/cancellog"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
)

type CancelLogWriteQueries interface {
	CreateCancelLog(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateCancelLogParams) error
}

type CancelLogRepository struct {
	queries CancelLogWriteQueries
	db      pgstore.DBTX
}

func NewCancelLogRepository(queries CancelLogWriteQueries, db pgstore.DBTX) *CancelLogRepository {
	return &CancelLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CancelLogRepository) Create(ctx context.Context, l *cancellog.CancelLog) error {
	params, err := converter.CancelLogToCreateParams(l)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cancel log", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateCancelLog(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create cancel log", err)
	}
	return nil
}
