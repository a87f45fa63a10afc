package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/payments-service/application"
	"github.com/shopyard/fulfillment/payments-service/handlers"
	"github.com/shopyard/fulfillment/payments-service/infrastructure"
	"github.com/shopyard/fulfillment/payments-service/migrations"
	"github.com/shopyard/fulfillment/payments-service/providers"
	"github.com/shopyard/fulfillment/shared/events"
	sharedinfra "github.com/shopyard/fulfillment/shared/infrastructure"
	"github.com/shopyard/fulfillment/shared/resilience"
	"github.com/shopyard/fulfillment/shared/saga"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

const orderServiceDependency = "order-service"

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	PaymentRepository *infrastructure.PostgresPaymentRepository

	// Remote services
	Breakers           *resilience.Registry
	OrderServiceClient *infrastructure.OrderServiceClient
	BankGateway        *infrastructure.HTTPBankGateway
	ProviderRegistry   *providers.Registry

	// Use Cases
	InitPayment            *application.InitPayment
	CapturePayment         *application.CapturePayment
	CreatePaymentFromEvent *application.CreatePaymentFromEvent
	GetPayment             *application.GetPayment

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers
	BreakerHandlers *handlers.BreakerHandlers

	// Event Handlers
	EventRouter *saga.Router

	// Infrastructure
	EventSubscriber *sharedinfra.SQSEventSubscriber

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, cfg *Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	if cfg.Telemetry.Enabled {
		telConfig := telemetry.PaymentsServiceConfig.
			WithOTLPEndpoint(cfg.Telemetry.OTLPEndpoint).
			WithEnvironment(cfg.Env)
		tel, shutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			logger.Warn("telemetry disabled", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = shutdown
		}
	}

	db, err := sharedinfra.OpenPostgres(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	deps.DB = db

	if cfg.Database.Migrate {
		if err := sharedinfra.Migrate(ctx, db.DB, migrations.FS, logger); err != nil {
			deps.Close()
			return nil, err
		}
	}

	awsSettings := cfg.AWS.Settings()
	awsConfig, err := sharedinfra.LoadAWSConfig(ctx, awsSettings)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.EventSubscriber = sharedinfra.NewSQSEventSubscriber(
		sharedinfra.NewSQSClient(awsConfig, awsSettings), cfg.AWS.SQSQueueURL, nil, logger,
		sharedinfra.WithWorkers(cfg.AWS.SQSWorkers),
	)

	// Remote services
	breakers, err := resilience.NewRegistry(resilience.DefaultSettings(), logger)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Breakers = breakers

	orderBreaker, err := breakers.Configure(orderServiceDependency, cfg.OrderService.CircuitBreaker.Settings())
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.OrderServiceClient = infrastructure.NewOrderServiceClient(
		cfg.OrderService.BaseURL,
		infrastructure.NewInstrumentedHTTPClient(0),
		resilience.NewClient(orderBreaker, cfg.OrderService.Timeout),
	)
	deps.BankGateway = infrastructure.NewHTTPBankGateway(cfg.Bank.BaseURL, infrastructure.NewInstrumentedHTTPClient(cfg.Bank.Timeout))

	deps.ProviderRegistry, err = providers.NewRegistry(
		providers.NewCODHandler(),
		providers.NewBankingHandler(deps.BankGateway),
	)
	if err != nil {
		deps.Close()
		return nil, err
	}

	// Initialize repositories
	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)

	// Initialize use cases
	deps.InitPayment = application.NewInitPayment(deps.ProviderRegistry)
	deps.CapturePayment = application.NewCapturePayment(deps.ProviderRegistry, deps.PaymentRepository, deps.OrderServiceClient)
	deps.CreatePaymentFromEvent = application.NewCreatePaymentFromEvent(deps.PaymentRepository)
	deps.GetPayment = application.NewGetPayment(deps.PaymentRepository)

	// Initialize handlers
	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.InitPayment, deps.CapturePayment, deps.GetPayment, logger)
	deps.BreakerHandlers = handlers.NewBreakerHandlers(deps.Breakers)
	deps.EventRouter = saga.NewRouter("payments-service", logger).
		Register(events.CheckoutCompletedTopic, handlers.NewCheckoutCompletedHandler(deps.CreatePaymentFromEvent, logger))

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close event subscriber"))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close database"))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return errors.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
