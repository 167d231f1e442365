package cmd

import (
	"log/slog"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/packagerepo"
	"tracking/internal/core/application/projection"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/application/validation"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	table      parcel.TransitionTable
	projector  projection.DefaultProjector
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		table:      parcel.NewTransitionTable(),
		projector:  projection.NewProjector(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f, validation.NewPackageRequestValidator(), c.projector)
}

func (c *CompositionRoot) CreateExchangeStatusCommandHandler() commands.ExchangeStatusCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExchangeStatusCommandHandler(f, c.table, c.projector, c.config.ExchangeMaxRetries)
}

func (c *CompositionRoot) CreateSenderService() commands.EntityService[*party.Sender] {
	var f commands.EntityUoWFactory[*party.Sender] = FuncEntityUoWFactory[*party.Sender](
		func() commands.EntityUoW[*party.Sender] {
			return entityUoW[*party.Sender]{
				UnitOfWork: c.uowFactory.Create(),
				repository: ports.UnitOfWork.SenderRepository,
			}
		})
	return commands.NewEntityService[*party.Sender](f, validation.NewContactValidator[*party.Sender]())
}

func (c *CompositionRoot) CreateRecipientService() commands.EntityService[*party.Recipient] {
	var f commands.EntityUoWFactory[*party.Recipient] = FuncEntityUoWFactory[*party.Recipient](
		func() commands.EntityUoW[*party.Recipient] {
			return entityUoW[*party.Recipient]{
				UnitOfWork: c.uowFactory.Create(),
				repository: ports.UnitOfWork.RecipientRepository,
			}
		})
	return commands.NewEntityService[*party.Recipient](f, validation.NewContactValidator[*party.Recipient]())
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.packageReader(), c.projector)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.packageReader(), c.projector)
}

func (c *CompositionRoot) CreateFilterPackagesQueryHandler() queries.FilterPackagesQueryHandler {
	return queries.NewFilterPackagesQueryHandler(c.packageReader(), c.projector)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.packageReader(), c.projector)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatusSummaryQueryHandler(), c.config.StatusReportSchedule, c.logger)
}

// CreateHTTPServer wires every handler into the Echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreatePackage:  c.CreateCreatePackageCommandHandler(),
		ExchangeStatus: c.CreateExchangeStatusCommandHandler(),
		GetPackage:     c.CreateGetPackageQueryHandler(),
		ListPackages:   c.CreateListPackagesQueryHandler(),
		FilterPackages: c.CreateFilterPackagesQueryHandler(),
		StatusHistory:  c.CreateGetStatusHistoryQueryHandler(),
		Senders:        c.CreateSenderService(),
		Recipients:     c.CreateRecipientService(),
	}, c.table, c.logger)
	return httpin.NewRouter(server)
}

// packageReader is a package store outside any transaction, for queries.
func (c *CompositionRoot) packageReader() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(c.gormDB, nil)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncEntityUoWFactory[T any] func() commands.EntityUoW[T]

func (f FuncEntityUoWFactory[T]) Create() commands.EntityUoW[T] {
	return f()
}

// entityUoW narrows a full unit of work to the one store an entity service needs.
type entityUoW[T any] struct {
	ports.UnitOfWork
	repository func(ports.UnitOfWork) ports.EntityRepository[T]
}

func (u entityUoW[T]) EntityRepository() ports.EntityRepository[T] {
	return u.repository(u.UnitOfWork)
}
