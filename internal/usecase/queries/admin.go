package queries

import (
	"context"

	"course-booking/internal/infra"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*readmodel.AdminRM, error)
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AdminRM, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*readmodel.AdminRM, error) {
	a, err := q.readStore.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}
	if !a.IsActive {
		return nil, errs.ErrAdminInactive
	}
	return a, nil
}
