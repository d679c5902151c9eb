package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hanksha/court-booking-backend/booking"
)

type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewConsumer(url, exchange, queue string, keys []string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	for _, rk := range keys {
		if err := ch.QueueBind(q.Name, rk, exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("bind %s: %w", rk, err)
		}
	}
	return &Consumer{conn: conn, ch: ch, queue: q.Name}, nil
}

func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	return c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

type Confirmer interface {
	ConfirmBooking(ctx context.Context, id int64) (booking.Booking, error)
}

// ConfirmationMessage is the upstream notice (typically a settled payment)
// that moves a pending booking to confirmed.
type ConfirmationMessage struct {
	BookingID int64 `json:"bookingId"`
}

type outcome int

const (
	ack outcome = iota
	requeue
	drop
)

// ConfirmationWorker confirms bookings from a queue. Redelivered or late
// messages for bookings that are no longer pending are acknowledged and
// ignored; store failures are requeued.
type ConfirmationWorker struct {
	confirmer Confirmer
	logger    *slog.Logger
}

func NewConfirmationWorker(confirmer Confirmer) *ConfirmationWorker {
	return &ConfirmationWorker{
		confirmer: confirmer,
		logger:    slog.Default().With("component", "confirmation-worker"),
	}
}

// Run consumes deliveries until ctx is cancelled or the channel closes.
// Every delivery taken off the channel is settled; one taken while ctx is
// already cancelled is requeued untouched. Deliveries still buffered by the
// client are redelivered by the broker once the channel closes.
func (w *ConfirmationWorker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			result := requeue
			if ctx.Err() == nil {
				result = w.handle(ctx, d.RoutingKey, d.Body)
			}
			if err := settle(d, result); err != nil {
				return fmt.Errorf("settle delivery: %w", err)
			}
		}
	}
}

func settle(d amqp.Delivery, result outcome) error {
	switch result {
	case ack:
		return d.Ack(false)
	case drop:
		return d.Nack(false, false)
	default:
		return d.Nack(false, true)
	}
}

func (w *ConfirmationWorker) handle(ctx context.Context, key string, body []byte) outcome {
	var msg ConfirmationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		w.logger.Warn("malformed confirmation message", "key", key, "err", err)
		return drop
	}
	if msg.BookingID <= 0 {
		w.logger.Warn("confirmation message without booking id", "key", key)
		return drop
	}

	_, err := w.confirmer.ConfirmBooking(ctx, msg.BookingID)

	switch {
	case err == nil:
		return ack
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrInvalidBookingState):
		w.logger.Info("confirmation ignored", "booking_id", msg.BookingID, "err", err)
		return ack
	default:
		w.logger.Error("failed to confirm booking", "booking_id", msg.BookingID, "err", err)
		return requeue
	}
}
