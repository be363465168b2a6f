package cmd

import (
	"log/slog"
	"os"

	"deliveries/internal/adapters/out/postgres"
	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateApproveDeliveryCommandHandler() commands.ApproveDeliveryCommandHandler {
	return commands.NewApproveDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllDeliveriesQueryHandler(), c.logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
