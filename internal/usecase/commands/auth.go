package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"course-booking/internal/domain/admin"
	"course-booking/internal/infra"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/pkg/password"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type TokenIssuer interface {
	GenerateToken(adminID uuid.UUID, email string) (string, error)
	Duration() time.Duration
}

type LoginResult struct {
	AdminID   uuid.UUID
	Email     string
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	CreateAdmin(ctx context.Context, email, plainPassword string) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{uow: uow, tokens: tokens}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	normalized, err := admin.NormalizeEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	adm, err := a.uow.CommandReads().AdminByEmail(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}
	if !adm.IsActive() {
		return nil, errs.ErrAdminInactive
	}
	if err := password.Compare(adm.PasswordHash(), plainPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	token, err := a.tokens.GenerateToken(adm.ID(), adm.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().TouchLastLogin(ctx, adm.ID())
	}); err != nil {
		slog.WarnContext(ctx, "failed to record admin login", "admin_id", adm.ID().String(), "error", err.Error())
	}

	return &LoginResult{
		AdminID:   adm.ID(),
		Email:     adm.Email(),
		Token:     token,
		ExpiresIn: a.tokens.Duration(),
	}, nil
}

func (a *authCommandsImpl) CreateAdmin(ctx context.Context, email, plainPassword string) (uuid.UUID, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	adm, err := admin.NewAdmin(email, hash)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().Create(ctx, adm)
	}); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrAdminExists)
		}
		return uuid.Nil, err
	}
	return adm.ID(), nil
}
