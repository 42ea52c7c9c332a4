package repository

import (
	"context"
	"time"

	"course-booking/internal/domain/admin"
	"course-booking/internal/infra"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateAdminParams) error
	UpdateAdminLastLogin(ctx context.Context, db pgstore.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
}

type AdminRepository struct {
	queries AdminWriteQueries
	db      pgstore.DBTX
	now     func() time.Time
}

func NewAdminRepository(queries AdminWriteQueries, db pgstore.DBTX, now func() time.Time) *AdminRepository {
	return &AdminRepository{queries: queries, db: db, now: now}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	err := r.queries.CreateAdmin(ctx, r.db, pgstore.CreateAdminParams{
		ID:           a.ID(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		IsActive:     a.IsActive(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create admin", err)
	}
	return nil
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateAdminLastLogin(ctx, r.db, id, pgconv.TimeToPgtype(r.now())); err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}
