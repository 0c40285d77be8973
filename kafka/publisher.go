package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/AY-10/inventryy/pkg/logger"
)

// Publisher wraps a Kafka sync producer. All publishes are fire-and-forget
// from the caller's point of view: failures are logged, never propagated
// into the transaction that produced the event.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishSaleCompleted publishes a sale completed event. Safe on nil.
func (p *Publisher) PublishSaleCompleted(ctx context.Context, event SaleCompletedEvent) {
	if p == nil {
		return
	}
	event.EventType = EventTypeSaleCompleted
	stamp(&event.EventID, &event.Timestamp)
	p.publish(ctx, TopicSaleCompleted, fmt.Sprintf("sale_%d", event.SaleID), event.EventID, event,
		attribute.Int("sale.id", int(event.SaleID)),
		attribute.Int("sale.store_id", int(event.StoreID)),
	)
}

// PublishLowStock publishes a low stock event. Safe on nil.
func (p *Publisher) PublishLowStock(ctx context.Context, event LowStockEvent) {
	if p == nil {
		return
	}
	event.EventType = EventTypeLowStock
	stamp(&event.EventID, &event.Timestamp)
	p.publish(ctx, TopicLowStock, fmt.Sprintf("product_%d", event.ProductID), event.EventID, event,
		attribute.Int("inventory.store_id", int(event.StoreID)),
		attribute.Int("inventory.product_id", int(event.ProductID)),
		attribute.Int("inventory.quantity", event.Quantity),
	)
}

// PublishPriceUpdated publishes a price updated event. Safe on nil.
func (p *Publisher) PublishPriceUpdated(ctx context.Context, event PriceUpdatedEvent) {
	if p == nil {
		return
	}
	event.EventType = EventTypePriceUpdated
	stamp(&event.EventID, &event.Timestamp)
	p.publish(ctx, TopicPriceUpdated, fmt.Sprintf("product_%d", event.ProductID), event.EventID, event,
		attribute.Int("product.id", int(event.ProductID)),
	)
}

// stamp fills the event id and timestamp before the event is serialized
func stamp(eventID *string, timestamp *time.Time) {
	if *eventID == "" {
		*eventID = uuid.New().String()
	}
	*timestamp = time.Now()
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventID string, event interface{}, attrs ...attribute.KeyValue) {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append(attrs,
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
		)...),
	)
	defer span.End()

	span.SetAttributes(attribute.String("event.id", eventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		logger.Error(ctx).Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).Err(err).Str("topic", topic).Msg("Failed to publish event")
		return
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
