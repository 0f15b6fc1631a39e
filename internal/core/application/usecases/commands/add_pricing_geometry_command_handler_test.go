package commands_test

import (
	"testing"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func layerPricing(t *testing.T) *pricing.Pricing {
	t.Helper()
	p, err := pricing.NewPricing(kernel.NewUUID(), "Zones", "FROM_PRICING_LAYER", "CHF", pricing.Amounts{})
	require.NoError(t, err)
	return p
}

func TestAddPricingGeometryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := layerPricing(t)
	ownerID := owner.ID()
	price := chf(t, "12.50")
	cmd, err := commands.NewAddPricingGeometryCommand(kernel.NewUUID(), "Zone A", square(t, 500), &ownerID, &price)
	require.NoError(t, err)

	pricingRepo := new(MockPricingRepository)
	geometryRepo := new(MockPricingGeometryRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("Get", ctx, ownerID).Return(owner, nil).Once(),
		uow.On("PricingGeometryRepository").Return(geometryRepo).Once(),
		geometryRepo.On("Add", ctx, mock.AnythingOfType("*pricing.Geometry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddPricingGeometryCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	pricingRepo.AssertExpectations(t)
	geometryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddPricingGeometryCommandHandler_Handle_CurrencyMismatch(t *testing.T) {
	ctx := t.Context()
	owner := layerPricing(t)
	ownerID := owner.ID()
	price, err := kernel.NewMoneyFromString("10", "EUR")
	require.NoError(t, err)
	cmd, err := commands.NewAddPricingGeometryCommand(kernel.NewUUID(), "Zone A", square(t, 500), &ownerID, &price)
	require.NoError(t, err)

	pricingRepo := new(MockPricingRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("Get", ctx, ownerID).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddPricingGeometryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "PricingGeometryRepository")
	uow.AssertExpectations(t)
}

func TestAddPricingGeometryCommandHandler_Handle_SharedPoint(t *testing.T) {
	ctx := t.Context()
	point, err := kernel.NewPoint(orb.Point{2600010, 1200010}, kernel.DefaultSRID)
	require.NoError(t, err)
	cmd, err := commands.NewAddPricingGeometryCommand(kernel.NewUUID(), "Parcel 12", point, nil, nil)
	require.NoError(t, err)

	geometryRepo := new(MockPricingGeometryRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingGeometryRepository").Return(geometryRepo).Once(),
		geometryRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddPricingGeometryCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	uow.AssertNotCalled(t, "PricingRepository")
	uow.AssertExpectations(t)
}
