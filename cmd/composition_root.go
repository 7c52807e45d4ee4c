package cmd

import (
	"log/slog"
	"time"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		c.orderUoWFactory(),
		services.NewFulfillmentService(),
	)
}

func (c *CompositionRoot) CreateAddBoxCommandHandler() commands.AddBoxCommandHandler {
	return commands.NewAddBoxCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRenameBoxCommandHandler() commands.RenameBoxCommandHandler {
	return commands.NewRenameBoxCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveBoxCommandHandler() commands.RemoveBoxCommandHandler {
	return commands.NewRemoveBoxCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusCountsQueryHandler() queries.GetStatusCountsQueryHandler {
	return queries.NewGetStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleThreshold time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStaleOrdersQueryHandler(), staleThreshold, logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
