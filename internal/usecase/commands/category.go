package commands

import (
	"context"

	"course-booking/internal/domain/category"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CategoryCommands interface {
	CreateCategory(ctx context.Context, name string, description *string, order int) (uuid.UUID, error)
}

type categoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCategoryCommands(uow shared.UnitOfWork) CategoryCommands {
	return &categoryCommandsImpl{uow: uow}
}

func (uc *categoryCommandsImpl) CreateCategory(ctx context.Context, name string, description *string, order int) (uuid.UUID, error) {
	c, err := category.NewCategory(name, description, order)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCategory)
	}
	if err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, c)
	}); err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}
