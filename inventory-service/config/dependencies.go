package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/inventory-service/application"
	"github.com/shopyard/fulfillment/inventory-service/handlers"
	"github.com/shopyard/fulfillment/inventory-service/infrastructure"
	"github.com/shopyard/fulfillment/inventory-service/migrations"
	"github.com/shopyard/fulfillment/shared/events"
	sharedinfra "github.com/shopyard/fulfillment/shared/infrastructure"
	"github.com/shopyard/fulfillment/shared/saga"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	StockRepository *infrastructure.PostgresStockRepository

	// Use Cases
	SubtractStock   *application.SubtractStock
	GetProductStock *application.GetProductStock

	// HTTP Handlers
	StockHandlers *handlers.StockHandlers

	// Event Handlers
	EventRouter *saga.Router

	// Infrastructure
	EventPublisher  *sharedinfra.SNSEventPublisher
	EventSubscriber *sharedinfra.SQSEventSubscriber

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, cfg *Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	if cfg.Telemetry.Enabled {
		telConfig := telemetry.InventoryServiceConfig.
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

	deps.EventPublisher = sharedinfra.NewSNSEventPublisher(
		sharedinfra.NewSNSClient(awsConfig, awsSettings), cfg.AWS.SNSTopicArn, logger)
	deps.EventSubscriber = sharedinfra.NewSQSEventSubscriber(
		sharedinfra.NewSQSClient(awsConfig, awsSettings), cfg.AWS.SQSQueueURL, nil, logger,
		sharedinfra.WithWorkers(cfg.AWS.SQSWorkers),
	)

	// Initialize repositories
	deps.StockRepository = infrastructure.NewPostgresStockRepository(db, sharedinfra.NewPostgresInbox())

	// Initialize use cases
	deps.SubtractStock = application.NewSubtractStock(deps.StockRepository, deps.EventPublisher)
	deps.GetProductStock = application.NewGetProductStock(deps.StockRepository)

	// Initialize handlers
	deps.StockHandlers = handlers.NewStockHandlers(deps.GetProductStock, logger)
	deps.EventRouter = saga.NewRouter("inventory-service", logger).
		Register(events.StockSubtractionTopic, handlers.NewStockCommandHandler(deps.SubtractStock, logger))

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
