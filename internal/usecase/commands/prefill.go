package commands

import (
	"context"
	"strings"

	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"
)

type PrefillCommands interface {
	Remember(ctx context.Context, clientID string, p shared.Prefill) error
}

type prefillCommandsImpl struct {
	store shared.PrefillStore
}

func NewPrefillCommands(store shared.PrefillStore) PrefillCommands {
	return &prefillCommandsImpl{store: store}
}

func (uc *prefillCommandsImpl) Remember(ctx context.Context, clientID string, p shared.Prefill) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return errs.ErrDomainValidation
	}
	return uc.store.Save(ctx, clientID, shared.Prefill{
		CompanyName: strings.TrimSpace(p.CompanyName),
		FullName:    strings.TrimSpace(p.FullName),
	})
}
