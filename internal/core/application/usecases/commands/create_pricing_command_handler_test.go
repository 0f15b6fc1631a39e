package commands_test

import (
	"errors"
	"testing"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePricingCommand_RequiresNameAndCode(t *testing.T) {
	_, err := commands.NewCreatePricingCommand(kernel.NewUUID(), " ", "", "CHF", pricing.Amounts{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreatePricingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	unit := chf(t, "150")
	fee := chf(t, "50")
	cmd, err := commands.NewCreatePricingCommand(kernel.NewUUID(), "Cadastre", "BY_AREA", "CHF",
		pricing.Amounts{UnitPrice: &unit, BaseFee: &fee})
	require.NoError(t, err)

	pricingRepo := new(MockPricingRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("Add", ctx, mock.MatchedBy(func(p *pricing.Pricing) bool {
			return p.ID().IsEqual(cmd.PricingID()) && p.Type() == pricing.ByArea
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePricingCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	pricingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePricingCommandHandler_Handle_MissingUnitPrice(t *testing.T) {
	cmd, err := commands.NewCreatePricingCommand(kernel.NewUUID(), "Cadastre", "SINGLE", "CHF", pricing.Amounts{})
	require.NoError(t, err)

	factory := new(MockCatalogUoWFactory)
	handler := commands.NewCreatePricingCommandHandler(factory)

	err = handler.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePricingCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePricingCommand(kernel.NewUUID(), "Free", "FREE", "CHF", pricing.Amounts{})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreatePricingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "PricingRepository")
}
