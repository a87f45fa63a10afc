package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/order-service/application"
	"github.com/shopyard/fulfillment/order-service/handlers"
	"github.com/shopyard/fulfillment/order-service/infrastructure"
	"github.com/shopyard/fulfillment/order-service/migrations"
	"github.com/shopyard/fulfillment/shared/events"
	sharedinfra "github.com/shopyard/fulfillment/shared/infrastructure"
	"github.com/shopyard/fulfillment/shared/saga"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	CheckoutRepository *infrastructure.PostgresCheckoutRepository
	OrderRepository    *infrastructure.PostgresOrderRepository

	// Use Cases
	CreateCheckout              *application.CreateCheckout
	GetPendingCheckout          *application.GetPendingCheckout
	UpdateCheckoutPaymentMethod *application.UpdateCheckoutPaymentMethod
	ConfirmCheckout             *application.ConfirmCheckout
	GetOrder                    *application.GetOrder
	UpdateCheckoutStatus        *application.UpdateCheckoutStatus
	UpdateOrderStatus           *application.UpdateOrderStatus
	HandleStockReply            *application.HandleStockReply

	// HTTP Handlers
	CheckoutHandlers *handlers.CheckoutHandlers
	InternalHandlers *handlers.InternalHandlers

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

	// Initialize telemetry first
	if cfg.Telemetry.Enabled {
		telConfig := telemetry.OrderServiceConfig.
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
	deps.CheckoutRepository = infrastructure.NewPostgresCheckoutRepository(db)
	deps.OrderRepository = infrastructure.NewPostgresOrderRepository(db)

	// Initialize use cases
	var publisher events.Publisher = deps.EventPublisher
	deps.CreateCheckout = application.NewCreateCheckout(deps.CheckoutRepository)
	deps.GetPendingCheckout = application.NewGetPendingCheckout(deps.CheckoutRepository)
	deps.UpdateCheckoutPaymentMethod = application.NewUpdateCheckoutPaymentMethod(deps.CheckoutRepository)
	deps.ConfirmCheckout = application.NewConfirmCheckout(deps.CheckoutRepository, deps.OrderRepository, publisher)
	deps.GetOrder = application.NewGetOrder(deps.OrderRepository)
	deps.UpdateCheckoutStatus = application.NewUpdateCheckoutStatus(deps.CheckoutRepository, deps.OrderRepository, publisher)
	deps.UpdateOrderStatus = application.NewUpdateOrderStatus(deps.OrderRepository, publisher)
	deps.HandleStockReply = application.NewHandleStockReply(deps.OrderRepository, publisher)

	// Initialize handlers
	deps.CheckoutHandlers = handlers.NewCheckoutHandlers(
		deps.CreateCheckout,
		deps.GetPendingCheckout,
		deps.UpdateCheckoutPaymentMethod,
		deps.ConfirmCheckout,
		deps.GetOrder,
		logger,
	)
	deps.InternalHandlers = handlers.NewInternalHandlers(deps.UpdateCheckoutStatus, deps.UpdateOrderStatus, logger)
	deps.EventRouter = saga.NewRouter("order-service", logger).
		Register(events.StockSubtractionReplyTopic, handlers.NewStockReplyHandler(deps.HandleStockReply, logger))

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
