package infrastructure

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopyard/fulfillment/shared/events"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

var _ events.Publisher = (*SNSEventPublisher)(nil)

const maxBatchSize = 10

// TopicAttribute is the SNS message attribute subscriptions filter on.
const TopicAttribute = "topic"

// wireEvent is the JSON body published to SNS and read back by the SQS subscriber.
type wireEvent struct {
	ID            string          `json:"id"`
	AggregateID   string          `json:"aggregate_id"`
	Topic         string          `json:"topic"`
	Version       string          `json:"version"`
	Data          json.RawMessage `json:"data"`
	Metadata      events.Metadata `json:"metadata"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
}

// SNSAPI is the subset of the SNS client the publisher needs.
type SNSAPI interface {
	PublishBatch(ctx context.Context, params *sns.PublishBatchInput, optFns ...func(*sns.Options)) (*sns.PublishBatchOutput, error)
}

// SNSEventPublisher implements events.Publisher using AWS SNS
type SNSEventPublisher struct {
	client   SNSAPI
	topicArn string
	logger   *zap.Logger
}

func NewSNSEventPublisher(client SNSAPI, topicArn string, logger *zap.Logger) *SNSEventPublisher {
	return &SNSEventPublisher{
		client:   client,
		topicArn: topicArn,
		logger:   logger,
	}
}

// Publish publishes events to SNS in batches
func (p *SNSEventPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	gr, ctx := errgroup.WithContext(ctx)

	for _, eventBatch := range splitToChunks(evts, maxBatchSize) {
		eventBatch := eventBatch
		gr.Go(func() error {
			return p.batchPublish(ctx, eventBatch)
		})
	}

	return gr.Wait()
}

func (p *SNSEventPublisher) batchPublish(ctx context.Context, batch []*events.Event) error {
	requests := make([]types.PublishBatchRequestEntry, len(batch))

	for i, event := range batch {
		if event.Metadata == nil {
			event.Metadata = make(events.Metadata)
		}
		telemetry.Inject(ctx, event.Metadata)

		entry, err := toBatchEntry(event)
		if err != nil {
			return err
		}
		requests[i] = entry
	}

	res, err := p.client.PublishBatch(ctx, &sns.PublishBatchInput{
		TopicArn:                   aws.String(p.topicArn),
		PublishBatchRequestEntries: requests,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish batch to SNS")
	}

	var failed []string
	for _, entry := range res.Failed {
		id := aws.ToString(entry.Id)
		failed = append(failed, id)
		p.logger.Error("event rejected by SNS",
			zap.String("event_id", id),
			zap.String("code", aws.ToString(entry.Code)),
			zap.String("message", aws.ToString(entry.Message)),
		)
	}

	for _, event := range batch {
		telemetry.RecordCounter(ctx, "events_published_total", "Events published to SNS", 1,
			attribute.String("topic", event.Topic.String()),
			attribute.Bool("success", !slices.Contains(failed, event.ID.String())),
		)
	}

	if len(failed) > 0 {
		return errors.Errorf("SNS rejected %d of %d events: %s", len(failed), len(batch), strings.Join(failed, ","))
	}

	return nil
}

func toBatchEntry(event *events.Event) (types.PublishBatchRequestEntry, error) {
	payload, err := event.MarshalPayload()
	if err != nil {
		return types.PublishBatchRequestEntry{}, errors.Wrap(err, "failed to marshal payload")
	}

	body, err := json.Marshal(&wireEvent{
		ID:            event.ID.String(),
		AggregateID:   event.AggregateID.String(),
		Topic:         event.Topic.String(),
		Version:       event.Version,
		Data:          payload,
		Metadata:      event.Metadata,
		Timestamp:     event.Timestamp,
		CorrelationID: event.CorrelationID.String(),
	})
	if err != nil {
		return types.PublishBatchRequestEntry{}, errors.Wrap(err, "failed to marshal message")
	}

	attrs := map[string]types.MessageAttributeValue{
		TopicAttribute: {
			DataType:    aws.String("String"),
			StringValue: aws.String(event.Topic.String()),
		},
	}

	for k, v := range event.Metadata {
		if k == SQSMessageIDKey || k == SQSReceiptHandleKey || k == TopicAttribute {
			continue
		}

		attrs[k] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(v),
		}
	}

	return types.PublishBatchRequestEntry{
		Id:                aws.String(event.ID.String()),
		Message:           aws.String(string(body)),
		MessageAttributes: attrs,
	}, nil
}

// splitToChunks splits slice into chunks of specified size
func splitToChunks[T any](slice []T, chunkSize int) [][]T {
	var chunks [][]T
	for i := 0; i < len(slice); i += chunkSize {
		end := i + chunkSize
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[i:end])
	}
	return chunks
}
