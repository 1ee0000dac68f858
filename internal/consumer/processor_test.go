package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
)

func bookingMessage(offset int64, eventType, payload string) kafka.Message {
	msg := kafka.Message{
		Topic:     "bookings",
		Partition: 0,
		Offset:    offset,
		Time:      time.Now().UTC(),
		Key:       []byte("bk-1"),
		Value:     []byte(payload),
	}
	if eventType != "" {
		msg.Headers = []kafka.Header{{Key: "event_type", Value: []byte(eventType)}}
	}
	return msg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastRetry() Option {
	return WithRetryBackoff(func() retry.Backoff { return retry.NewConstant(time.Millisecond) })
}

func TestProcessorCommitsOnSuccess(t *testing.T) {
	payload := `{"booking_id":"bk-1"}`
	reader := &stubReader{messages: []kafka.Message{bookingMessage(10, EventBookingDeleted, payload)}}
	handler := &stubHandler{}

	err := NewProcessor(reader, handler, WithLogger(quietLogger())).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, EventBookingDeleted, handler.last.EventType)
	require.Equal(t, "bk-1", handler.last.Key)
	require.Equal(t, int64(10), handler.last.Offset)
	require.JSONEq(t, payload, string(handler.last.Payload))
}

func TestProcessorRetriesTransientErrorBeforeMovingOn(t *testing.T) {
	reader := &stubReader{messages: []kafka.Message{
		bookingMessage(20, EventBookingCreated, `{}`),
		bookingMessage(21, EventBookingCreated, `{}`),
	}}
	handler := &stubHandler{errs: []error{errors.New("connection reset")}}

	err := NewProcessor(reader, handler, WithLogger(quietLogger()), fastRetry()).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, []int64{20, 20, 21}, handler.offsets)
	require.Equal(t, []int64{20, 21}, reader.committed)
}

func TestProcessorLeavesFailingMessageUncommittedOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &stubReader{messages: []kafka.Message{
		bookingMessage(20, EventBookingCreated, `{}`),
		bookingMessage(21, EventBookingCreated, `{}`),
	}}
	handler := &stubHandler{err: errors.New("connection reset")}
	handler.onCall = func(calls int) {
		if calls == 3 {
			cancel()
		}
	}

	err := NewProcessor(reader, handler, WithLogger(quietLogger()), fastRetry()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, []int64{20, 20, 20}, handler.offsets)
	require.Empty(t, reader.committed)
	require.Equal(t, 1, reader.index, "offset 21 must not be fetched")
}

func TestProcessorCommitsPermanentErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrNotFound} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			reader := &stubReader{messages: []kafka.Message{bookingMessage(30, EventBookingCreated, `{}`)}}
			handler := &stubHandler{err: fmt.Errorf("service: %w", sentinel)}

			err := NewProcessor(reader, handler, WithLogger(quietLogger()), fastRetry()).Run(context.Background())
			require.ErrorIs(t, err, context.Canceled)

			require.Equal(t, 1, handler.calls)
			require.Equal(t, 1, reader.commitCalls)
		})
	}
}

func TestProcessorCommitsUndecodableMessages(t *testing.T) {
	reader := &stubReader{messages: []kafka.Message{
		bookingMessage(40, "", `{"booking_id":"x"}`),
		bookingMessage(41, EventBookingDeleted, `not json`),
	}}
	handler := &stubHandler{}

	err := NewProcessor(reader, handler, WithLogger(quietLogger())).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 0, handler.calls)
	require.Equal(t, 2, reader.commitCalls)
}

func TestProcessorStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reader := &stubReader{messages: []kafka.Message{bookingMessage(1, EventBookingDeleted, `{}`)}}

	err := NewProcessor(reader, &stubHandler{}, WithLogger(quietLogger())).Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, reader.index)
}

type stubReader struct {
	messages    []kafka.Message
	index       int
	commitCalls int
	committed   []int64
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.index >= len(r.messages) {
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.commitCalls++
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *stubReader) Close() error { return nil }

// stubHandler returns errs in order, one per call, then err for every later call.
type stubHandler struct {
	calls   int
	last    Message
	offsets []int64
	errs    []error
	err     error
	onCall  func(calls int)
}

func (h *stubHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	h.offsets = append(h.offsets, msg.Offset)
	if h.onCall != nil {
		h.onCall(h.calls)
	}
	if h.calls <= len(h.errs) {
		return h.errs[h.calls-1]
	}
	return h.err
}
