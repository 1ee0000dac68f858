// Package consumer reads booking events from Kafka and feeds them to the meal service.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"

	"github.com/wanderplan/itinerary/internal/domain"
)

// Reader exposes the minimal kafka.Reader interface needed by the processor.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler receives decoded messages from Kafka.
type Handler interface {
	Handle(context.Context, Message) error
}

// Message is the decoded representation of a booking event record.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	EventType string
	Key       string
	Payload   json.RawMessage
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithRetryBackoff overrides the backoff used between attempts at a message
// whose handler failed transiently. newBackoff is called once per message.
func WithRetryBackoff(newBackoff func() retry.Backoff) Option {
	return func(p *Processor) {
		p.newBackoff = newBackoff
	}
}

// defaultBackoff starts at 250ms and doubles up to 30s between attempts.
func defaultBackoff() retry.Backoff {
	return retry.WithCappedDuration(30*time.Second, retry.NewExponential(250*time.Millisecond))
}

// Processor pulls messages from Kafka, decodes them, and dispatches to a Handler.
type Processor struct {
	reader     Reader
	handler    Handler
	logger     *slog.Logger
	newBackoff func() retry.Backoff
}

// NewProcessor constructs a Processor with the provided reader and handler.
func NewProcessor(reader Reader, handler Handler, opts ...Option) *Processor {
	p := &Processor{
		reader:     reader,
		handler:    handler,
		logger:     slog.Default().With("component", "consumer"),
		newBackoff: defaultBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts a blocking loop that processes Kafka messages until the context is cancelled.
//
// Malformed messages and events rejected with domain.ErrValidation or
// domain.ErrNotFound are committed, since redelivery cannot fix them. Any other
// handler error is retried on the same message with backoff; the partition does
// not advance until it succeeds. If ctx is cancelled meanwhile, Run returns
// without committing and the message is redelivered to the next reader.
func (p *Processor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			p.logger.ErrorContext(ctx, "fetch error", "error", err)
			continue
		}

		event, decodeErr := decodeMessage(msg)
		if decodeErr != nil {
			p.logger.WarnContext(ctx, "decode error",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", decodeErr)
			recordDecodeError(msg.Topic)
			p.commit(ctx, msg)
			continue
		}

		if handleErr := p.handle(ctx, event); handleErr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			recordHandlerError(event)
			p.logger.WarnContext(ctx, "event rejected",
				"event_type", event.EventType, "offset", event.Offset, "error", handleErr)
			p.commit(ctx, msg)
			continue
		}

		if p.commit(ctx, msg) {
			recordProcessed(event)
		}
	}
}

// handle runs the handler until it succeeds, fails permanently, or ctx ends.
func (p *Processor) handle(ctx context.Context, event Message) error {
	attempt := 0
	return retry.Do(ctx, p.newBackoff(), func(ctx context.Context) error {
		attempt++
		err := p.handler.Handle(ctx, event)
		if err == nil || isPermanent(err) {
			return err
		}
		recordHandlerError(event)
		recordRetry(event)
		p.logger.ErrorContext(ctx, "handler error, retrying",
			"event_type", event.EventType, "offset", event.Offset, "attempt", attempt, "error", err)
		return retry.RetryableError(err)
	})
}

func (p *Processor) commit(ctx context.Context, msg kafka.Message) bool {
	if err := p.reader.CommitMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "commit error", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		return false
	}
	return true
}

func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound)
}

func decodeMessage(msg kafka.Message) (Message, error) {
	eventType, ok := headerValue(msg, "event_type")
	if !ok || len(eventType) == 0 {
		return Message{}, errors.New("missing event_type header")
	}
	if !json.Valid(msg.Value) {
		return Message{}, fmt.Errorf("payload is not JSON (%d bytes)", len(msg.Value))
	}

	return Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
		EventType: string(eventType),
		Key:       string(msg.Key),
		Payload:   json.RawMessage(append([]byte(nil), msg.Value...)),
	}, nil
}

func headerValue(msg kafka.Message, key string) ([]byte, bool) {
	for _, header := range msg.Headers {
		if header.Key == key {
			return header.Value, true
		}
	}
	return nil, false
}
