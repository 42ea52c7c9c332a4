package readstore

import (
	"context"

	"course-booking/internal/domain/admin"
	"course-booking/internal/infra"
	"course-booking/internal/infra/converter"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	GetAdminByEmail(ctx context.Context, db pgstore.DBTX, email string) (pgstore.Admin, error)
	GetAdminByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Admin, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      pgstore.DBTX
}

func NewAdminReadStore(queries AdminReadQueries, db pgstore.DBTX) *AdminReadStore {
	return &AdminReadStore{queries: queries, db: db}
}

func (r *AdminReadStore) FindDomainByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	row, err := r.queries.GetAdminByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get admin by email", err)
	}
	return converter.AdminFromRow(row), nil
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AdminRM, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get admin by id", err)
	}
	rm := converter.AdminRMFromRow(row)
	return &rm, nil
}
