package cmd

import (
	"fmt"
	"log/slog"

	"printshop/internal/adapters/out/geodata"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/stripepay"
	"printshop/internal/adapters/out/upsship"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/services/packing"
	"printshop/internal/core/domain/services/quoting"
	"printshop/internal/core/domain/services/rating"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    material.Catalog
	quotes     quoting.Calculator
	packer     packing.Optimizer
	gateway    *stripepay.Client
	carrier    *upsship.Client
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	originZip, err := kernel.NewZipCode(config.OriginZip)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid origin zip: %w", err)
	}

	zipIndex, err := geodata.LoadZipIndex(config.ZipDataPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("loading zip index: %w", err)
	}

	shipping, err := rating.NewCalculator(zipIndex, originZip)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("building rate calculator: %w", err)
	}

	catalog := material.DefaultCatalog()

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		quotes:     quoting.NewCalculator(catalog, shipping),
		packer:     packing.NewOptimizer(),
		gateway: stripepay.NewClient(stripepay.Config{
			SecretKey: config.StripeSecretKey,
		}),
		carrier: upsship.NewClient(upsship.Config{
			ClientID:      config.UPSClientID,
			ClientSecret:  config.UPSClientSecret,
			ShipperNumber: config.UPSShipperNum,
			OriginZip:     config.OriginZip,
		}),
		logger: logger,
	}, nil
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.quotes, c.gateway)
}

func (c *CompositionRoot) CreateCreateLabelCommandHandler() commands.CreateLabelCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLabelCommandHandler(f, c.carrier, c.packer)
}

func (c *CompositionRoot) CreateRefreshTrackingCommandHandler() commands.RefreshTrackingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshTrackingCommandHandler(f, c.carrier, c.logger)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.quotes)
}

func (c *CompositionRoot) CreateGetPackingPlanQueryHandler() queries.GetPackingPlanQueryHandler {
	return queries.NewGetPackingPlanQueryHandler(c.packer)
}

func (c *CompositionRoot) CreateGetMaterialsQueryHandler() queries.GetMaterialsQueryHandler {
	return queries.NewGetMaterialsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetUnshippedOrdersQueryHandler() queries.GetUnshippedOrdersQueryHandler {
	return queries.NewGetUnshippedOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
