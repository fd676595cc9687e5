package commands

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/commands/dwelling.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/dwelling"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type DwellingCommands interface {
	PublishDwelling(ctx context.Context, ownerID uuid.UUID, details dwelling.Details) (*dwelling.Dwelling, error)
}

type dwellingUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator SearchInvalidator
	clock       clock.Clock
}

func NewDwellingUseCase(uow shared.UnitOfWork, invalidator SearchInvalidator, clk clock.Clock) DwellingCommands {
	return &dwellingUseCaseImpl{uow: uow, invalidator: invalidator, clock: clk}
}

func (uc *dwellingUseCaseImpl) PublishDwelling(ctx context.Context, ownerID uuid.UUID, details dwelling.Details) (*dwelling.Dwelling, error) {
	d, err := dwelling.NewDwelling(ownerID, details, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Accounts().Ensure(ctx, ownerID); derr != nil {
			return derr
		}
		derr := tx.Dwellings().Create(ctx, d)
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return errs.InvalidInput("area_id", "unknown area")
		}
		return derr
	})
	if err != nil {
		return nil, errs.Classify(err)
	}

	uc.invalidator.InvalidateSearch(context.WithoutCancel(ctx))
	return d, nil
}
