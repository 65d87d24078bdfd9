package di

import (
	"context"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/kafka"
	"tripgate/internal/email"
	"tripgate/internal/events"
)

// Worker consumes booking events and dispatches confirmation email.
type Worker struct {
	config *config.Config
	kafka  kafka.Client
	sender email.Sender
}

func NewWorker(cfg *config.Config, kafkaClient kafka.Client, sender email.Sender) *Worker {
	return &Worker{
		config: cfg,
		kafka:  kafkaClient,
		sender: sender,
	}
}

// Run blocks consuming the booking.created topic until the context is done.
func (w *Worker) Run(ctx context.Context) {
	topic := w.config.Kafka.Topics.BookingCreated

	log.Info().Str("topic", topic).Msg("Starting booking event worker.")

	w.kafka.Consume(ctx, w.config.Kafka.ConsumerGroup, topic, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[events.BookingCreated](message)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode booking event.")

			return
		}

		event, ok := decoded.Value.(events.BookingCreated)
		if !ok {
			log.Error().Str("key", decoded.Key).Msg("Unexpected booking event payload.")

			return
		}

		if err := w.sender.SendBookingConfirmation(ctx, event); err != nil {
			log.Error().Err(err).Str("flow_id", event.FlowID).Msg("Failed to send booking confirmation.")
		}
	})
}
