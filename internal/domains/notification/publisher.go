package notification

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"futsal/config"
	"futsal/infras/kafka"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
)

type Event struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	UserID        string    `json:"user_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Delivery is fire-and-forget:
// the booking write has already committed, so a broker failure is only logged.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event Event)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.BookingID,
			Value: event,
		}

		if err := p.client.SendMessages(c, p.cfg.Kafka.TopicBooking, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}
