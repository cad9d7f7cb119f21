package app

import (
	"context"
	"fmt"
	"log"

	"inhouse/internal/adapter/persistence/repository"
	"inhouse/internal/config"
	"inhouse/internal/domain/billing"
	"inhouse/internal/infrastructure/database"
	"inhouse/internal/usecase"
)

// UseCases is the set of services shared by the HTTP API and the CLI.
type UseCases struct {
	Projects  usecase.IProjectUseCase
	Steps     usecase.IProjectStepUseCase
	Bookings  usecase.IBookingUseCase
	Days      usecase.IDayUseCase
	Invoices  usecase.IInvoiceUseCase
	Timers    usecase.ITimerUseCase
	Stars     usecase.IStarUseCase
	Profiles  usecase.IProfileUseCase
	Customers usecase.ICustomerUseCase
	Sanity    usecase.ISanityUseCase
}

// Connect opens the DynamoDB client and, when cfg.CreateTables is set,
// creates the missing tables.
func Connect(ctx context.Context, cfg config.Config) (repository.DynamoAPI, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.CreateTables {
		if err := database.EnsureTables(ctx, ddb, repository.Tables()); err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
		log.Printf("[app] dynamodb tables ensured")
	}
	return ddb, nil
}

// Build wires the repositories and use cases on top of ddb.
func Build(ddb repository.DynamoAPI, cfg config.Config) UseCases {
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	stepRepo := repository.NewProjectStepDynamoRepository(ddb)
	dayRepo := repository.NewDayDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	positionRepo := repository.NewPositionDynamoRepository(ddb)

	resolver := billing.NewCoefficientResolver(cfg.DefaultCoefficientSaturday, cfg.DefaultCoefficientSunday)

	return UseCases{
		Projects:  usecase.NewProjectUseCase(projectRepo, stepRepo, positionRepo),
		Steps:     usecase.NewProjectStepUseCase(stepRepo, projectRepo, positionRepo),
		Bookings:  usecase.NewBookingUseCase(bookingRepo, dayRepo, projectRepo, stepRepo, positionRepo, resolver),
		Days:      usecase.NewDayUseCase(dayRepo, bookingRepo),
		Invoices:  usecase.NewInvoiceUseCase(invoiceRepo, projectRepo, bookingRepo, dayRepo, stepRepo, positionRepo, resolver),
		Timers:    usecase.NewTimerUseCase(repository.NewTimerDynamoRepository(ddb)),
		Stars:     usecase.NewStarUseCase(repository.NewStarDynamoRepository(ddb)),
		Profiles:  usecase.NewProfileUseCase(repository.NewUserProfileDynamoRepository(ddb), cfg),
		Customers: usecase.NewCustomerUseCase(repository.NewCustomerDynamoRepository(ddb)),
		Sanity:    usecase.NewSanityUseCase(bookingRepo, stepRepo, positionRepo),
	}
}
