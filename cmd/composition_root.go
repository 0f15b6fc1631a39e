package cmd

import (
	"log/slog"

	httpin "geoshop/internal/adapters/in/http"
	"geoshop/internal/adapters/out/notifier"
	"geoshop/internal/adapters/out/planar"
	"geoshop/internal/adapters/out/postgres"
	"geoshop/internal/adapters/out/postgres/postgis"
	"geoshop/internal/adapters/out/postgres/pricingrepo"
	"geoshop/internal/adapters/out/postgres/productrepo"
	"geoshop/internal/core/application/notifications"
	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/application/usecases/queries"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/core/ports"
	"geoshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	catalog    *productrepo.CachedCatalog
	pricer     *services.ItemPricer
	confirmer  *services.OrderConfirmer
	dispatcher *notifications.Dispatcher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	c := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	policy, err := c.pricingPolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	c.catalog = productrepo.NewCachedCatalog(c.uowFactory.Create().ProductRepository(), cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	engine := services.NewPricingEngine(
		c.geometryProvider(),
		pricingrepo.NewGormGeometryRepository(gormDB),
		c.catalog,
		cfg.PricingGeometryTimeout,
		logger,
	)
	c.pricer = services.NewItemPricer(engine, c.catalog, policy, logger)
	c.confirmer = services.NewOrderConfirmer(c.pricer, engine, c.catalog, logger)
	c.dispatcher = notifications.NewDispatcher(
		notifier.NewLogSink(logger),
		c.uowFactory.Create().IdentityRepository(),
		notifications.Config{
			OperatorsEmail: cfg.OperatorsEmail,
			Workers:        cfg.NotifyWorkers,
			QueueSize:      cfg.NotifyQueueSize,
			Timeout:        cfg.NotifyTimeout,
		},
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) pricingPolicy() (services.Policy, error) {
	subscriberType, err := order.NewType(c.cfg.SubscriberOrderType)
	if err != nil {
		return services.Policy{}, err
	}

	freeTypes := make([]order.Type, 0, len(c.cfg.FreeOrderTypes))
	for _, name := range c.cfg.FreeOrderTypes {
		t, typeErr := order.NewType(name)
		if typeErr != nil {
			return services.Policy{}, typeErr
		}
		freeTypes = append(freeTypes, t)
	}

	return services.Policy{
		VATRate:        c.cfg.VATRate,
		SubscriberType: subscriberType,
		FreeTypes:      freeTypes,
		Workers:        c.cfg.PricingWorkers,
	}, nil
}

func (c *CompositionRoot) geometryProvider() ports.GeometryProvider {
	if c.cfg.GeometryProvider == "planar" {
		return planar.NewProvider()
	}
	return postgis.NewProvider(c.gormDB)
}

// Dispatcher must be started before the server accepts requests and
// stopped after it has drained.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateIdentity:      c.CreateCreateIdentityCommandHandler(),
		CreatePricing:       c.CreateCreatePricingCommandHandler(),
		AddPricingGeometry:  c.CreateAddPricingGeometryCommandHandler(),
		CreateProduct:       c.CreateCreateProductCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrder:         c.CreateUpdateOrderCommandHandler(),
		AddOrderItem:        c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:     c.CreateRemoveOrderItemCommandHandler(),
		SetItemFormat:       c.CreateSetItemFormatCommandHandler(),
		ConfirmOrder:        c.CreateConfirmOrderCommandHandler(),
		QuoteItem:           c.CreateQuoteItemCommandHandler(),
		CompleteQuote:       c.CreateCompleteQuoteCommandHandler(),
		ValidateItem:        c.CreateValidateItemCommandHandler(),
		UploadExtractResult: c.CreateUploadExtractResultCommandHandler(),
		RejectExtractItem:   c.CreateRejectExtractItemCommandHandler(),
		MarkOrderDownloaded: c.CreateMarkOrderDownloadedCommandHandler(),
		FetchExtraction:     c.CreateFetchExtractionCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetLastDraft:        c.CreateGetLastDraftQueryHandler(),
		GetExtractItems:     c.CreateGetExtractItemsQueryHandler(),
	}, c.cfg.SRID, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateArchiveProcessedOrdersCommandHandler(),
		jobs.ArchiveSettings{
			Schedule:  c.cfg.ArchiveSchedule,
			Retention: c.cfg.DownloadRetention,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateIdentityCommandHandler() commands.CreateIdentityCommandHandler {
	return commands.NewCreateIdentityCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateCreatePricingCommandHandler() commands.CreatePricingCommandHandler {
	return commands.NewCreatePricingCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddPricingGeometryCommandHandler() commands.AddPricingGeometryCommandHandler {
	return commands.NewAddPricingGeometryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderingUoWFactory(), c.cfg.Currency)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderingUoWFactory(), c.pricer, c.dispatcher)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderingUoWFactory(), c.catalog, c.pricer, c.dispatcher)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory(), c.pricer)
}

func (c *CompositionRoot) CreateSetItemFormatCommandHandler() commands.SetItemFormatCommandHandler {
	return commands.NewSetItemFormatCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderingUoWFactory(), c.confirmer, c.dispatcher)
}

func (c *CompositionRoot) CreateQuoteItemCommandHandler() commands.QuoteItemCommandHandler {
	return commands.NewQuoteItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteQuoteCommandHandler() commands.CompleteQuoteCommandHandler {
	return commands.NewCompleteQuoteCommandHandler(c.orderUoWFactory(), c.pricer, c.dispatcher)
}

func (c *CompositionRoot) CreateValidateItemCommandHandler() commands.ValidateItemCommandHandler {
	return commands.NewValidateItemCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateFetchExtractionCommandHandler() commands.FetchExtractionCommandHandler {
	return commands.NewFetchExtractionCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateUploadExtractResultCommandHandler() commands.UploadExtractResultCommandHandler {
	return commands.NewUploadExtractResultCommandHandler(c.orderUoWFactory(), c.catalog, c.dispatcher)
}

func (c *CompositionRoot) CreateRejectExtractItemCommandHandler() commands.RejectExtractItemCommandHandler {
	return commands.NewRejectExtractItemCommandHandler(c.orderUoWFactory(), c.catalog, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkOrderDownloadedCommandHandler() commands.MarkOrderDownloadedCommandHandler {
	return commands.NewMarkOrderDownloadedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveProcessedOrdersCommandHandler() commands.ArchiveProcessedOrdersCommandHandler {
	return commands.NewArchiveProcessedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLastDraftQueryHandler() queries.GetLastDraftQueryHandler {
	return queries.NewGetLastDraftQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExtractItemsQueryHandler() queries.GetExtractItemsQueryHandler {
	return queries.NewGetExtractItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
