package outbox

import (
	"context"
	"log/slog"
	"time"

	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/pkg/tracing"
	"campsite-reservation/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("campsite-reservation/infra/outbox")

// Source yields unpublished booking events. publish must succeed before the
// events are marked as sent.
type Source interface {
	Drain(ctx context.Context, limit int, publish func(ctx context.Context, events []shared.BookingEvent) error) (int, error)
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Relay moves booking events from the outbox to Kafka.
type Relay struct {
	source    Source
	writer    MessageWriter
	topic     string
	pollEvery time.Duration
	batchSize int
}

const (
	defaultPollEvery = 2 * time.Second
	defaultBatchSize = 50
)

// NewRelay falls back to the default interval and batch size for non-positive values.
func NewRelay(source Source, writer MessageWriter, cfg config.KafkaConfig) *Relay {
	r := &Relay{
		source:    source,
		writer:    writer,
		topic:     cfg.Topic,
		pollEvery: cfg.PollEvery,
		batchSize: cfg.BatchSize,
	}
	if r.pollEvery <= 0 {
		r.pollEvery = defaultPollEvery
	}
	if r.batchSize < 1 {
		r.batchSize = defaultBatchSize
	}
	return r
}

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
			slog.Error("outbox relay failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Flush drains full batches until the outbox is empty.
func (r *Relay) Flush(ctx context.Context) (total int, err error) {
	ctx, span := tracer.Start(ctx, "outbox.Flush")
	defer func() {
		span.SetAttributes(attribute.Int("outbox.published", total))
		tracing.End(span, err)
	}()

	for {
		n, err := r.source.Drain(ctx, r.batchSize, r.publish)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 || n < r.batchSize {
			return total, nil
		}
	}
}

func (r *Relay) publish(ctx context.Context, events []shared.BookingEvent) error {
	msgs := make([]kafka.Message, len(events))
	for i, e := range events {
		msgs[i] = kafka.Message{
			Topic: r.topic,
			Key:   []byte(e.BookingID.String()),
			Value: e.Payload,
			Time:  e.OccurredAt,
			Headers: injectTraceHeaders(ctx, []kafka.Header{
				{Key: "event_id", Value: []byte(e.ID.String())},
				{Key: "event_type", Value: []byte(e.Type)},
			}),
		}
	}
	if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
		return errs.Wrapf(err, "failed to publish %d booking events", len(msgs))
	}
	slog.Debug("published booking events", "count", len(msgs))
	return nil
}
