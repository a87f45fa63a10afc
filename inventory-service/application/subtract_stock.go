package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopyard/fulfillment/inventory-service/domain"
	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/models"
	"github.com/shopyard/fulfillment/shared/saga"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

const subtractSuccessMessage = "Subtract product stock quantity success"

// SubtractStockCommand is one stock-subtraction command off the channel
type SubtractStockCommand struct {
	CommandID     string
	CorrelationID string
	ReplyTo       events.Topic
	Command       saga.StockCommand
}

// SubtractStock decrements stock for a command as one unit and answers on
// the reply channel. Business failures are replies, never errors.
type SubtractStock struct {
	stockRepository domain.StockRepository
	eventPublisher  events.Publisher
}

// NewSubtractStock creates a new SubtractStock use case
func NewSubtractStock(stockRepository domain.StockRepository, eventPublisher events.Publisher) *SubtractStock {
	return &SubtractStock{
		stockRepository: stockRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute returns an error only when the command could not be processed or
// its reply could not be published; the message should then be redelivered.
// A redelivered command gets the reply recorded the first time.
func (uc *SubtractStock) Execute(ctx context.Context, cmd *SubtractStockCommand) (*saga.StockReply, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "subtract_stock",
		trace.WithAttributes(
			attribute.String("command_id", cmd.CommandID),
			attribute.String("correlation_id", cmd.CorrelationID),
			attribute.Int("lines", len(cmd.Command.ProductItems)),
		),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "stock_commands_total", "Total stock subtraction commands", 1,
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "stock_command_duration_seconds", "Stock subtraction duration", time.Since(start).Seconds(),
			attribute.String("status", status),
		)
	}()

	reply, err := uc.subtract(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.eventPublisher.Publish(ctx, newStockReplyEvent(cmd, reply)); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to publish stock reply")
	}

	status = "success"
	if !reply.Success {
		status = reply.Reason
	}
	span.SetAttributes(attribute.Bool("success", reply.Success))

	return reply, nil
}

func (uc *SubtractStock) subtract(ctx context.Context, cmd *SubtractStockCommand) (*saga.StockReply, error) {
	if err := cmd.Command.Validate(); err != nil {
		return saga.FailureReply(saga.ReasonInvalidCommand, err.Error()), nil
	}

	ids, quantities := cmd.Command.Lines()
	lines := make([]domain.StockLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, domain.StockLine{ProductID: id, Quantity: quantities[id]})
	}

	reply, err := uc.stockRepository.SubtractStock(ctx, cmd.CommandID, cmd.CorrelationID, lines, stockReply)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subtract stock")
	}

	return reply, nil
}

// stockReply maps a subtraction outcome to the reply sent back to the saga.
func stockReply(outcome error) *saga.StockReply {
	var notFound *domain.ProductNotFoundError
	var insufficient *domain.InsufficientStockError

	switch {
	case outcome == nil:
		return saga.SuccessReply(subtractSuccessMessage)
	case errors.As(outcome, &notFound):
		return saga.FailureReply(saga.ReasonProductNotFound, outcome.Error())
	case errors.As(outcome, &insufficient):
		return saga.FailureReply(saga.ReasonInsufficientStock, outcome.Error())
	default:
		return saga.FailureReply(saga.ReasonInvalidCommand, outcome.Error())
	}
}

func newStockReplyEvent(cmd *SubtractStockCommand, reply *saga.StockReply) *events.Event {
	topic := cmd.ReplyTo
	if topic == "" {
		topic = events.StockSubtractionReplyTopic
	}

	return events.NewEvent(models.ID(cmd.Command.CheckoutID), topic, reply).
		WithID(models.NameBasedID("stock-reply:" + cmd.CommandID)).
		WithCorrelationID(models.ID(cmd.CorrelationID))
}
