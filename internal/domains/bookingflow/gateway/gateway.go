package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/internal/domains/bookingflow/model"
	"tripgate/internal/domains/bookingflow/model/dto"
	catalogModel "tripgate/internal/domains/catalog/model"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
)

// Gateway covers the upstream calls the booking flow makes. FetchEntity snapshots
// the bookable object; the OTP pair and CreateBooking drive the final steps.
type Gateway interface {
	FetchEntity(ctx context.Context, kind, objectID string) (model.Entity, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	CreateBooking(ctx context.Context, kind string, payload dto.BookingPayload) (dto.BookingResult, error)
}

type gatewayImpl struct {
	client coreapi.Client
	otel   otel.Otel
}

func New(client coreapi.Client, otel otel.Otel) Gateway {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) FetchEntity(ctx context.Context, kind, objectID string) (entity model.Entity, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".FetchEntity")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch kind {
	case model.KindRoom:
		entity, err = g.fetchRoom(ctx, objectID)
	case model.KindApartment:
		entity, err = g.fetchApartment(ctx, objectID)
	case model.KindTicket:
		entity, err = g.fetchJourney(ctx, objectID)
	case model.KindRetreat:
		entity, err = g.fetchRetreat(ctx, objectID)
	default:
		return entity, failure.BadRequestFromString("unknown booking kind: " + kind) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind).Str("object_id", objectID).Msg("failed to fetch entity")

		return entity, err
	}

	return entity, nil
}

func (g *gatewayImpl) fetchRoom(ctx context.Context, objectID string) (model.Entity, error) {
	var out struct {
		catalogModel.Room
		Bookings []catalogModel.DateRange `json:"bookings"`
	}

	err := g.client.GetJSON(ctx, coreapi.EndpointClientRooms+"/"+objectID, nil, &out)
	if err != nil {
		return model.Entity{}, fmt.Errorf("failed to fetch room: %w", err)
	}

	return model.Entity{
		Kind:      model.KindRoom,
		ObjectID:  out.ID,
		Name:      out.Name,
		BasePrice: out.Price,
		Currency:  out.Currency,
		Bookings:  toBookedRanges(out.Bookings),
	}, nil
}

func (g *gatewayImpl) fetchApartment(ctx context.Context, objectID string) (model.Entity, error) {
	var out catalogModel.Apartment

	err := g.client.GetJSON(ctx, coreapi.EndpointClientApartments+"/"+objectID, nil, &out)
	if err != nil {
		return model.Entity{}, fmt.Errorf("failed to fetch apartment: %w", err)
	}

	return model.Entity{
		Kind:         model.KindApartment,
		ObjectID:     out.ID,
		Name:         out.Name,
		BasePrice:    out.PricePerNight,
		MonthlyPrice: out.PricePerMonth,
		Currency:     out.Currency,
		Bookings:     toBookedRanges(out.Bookings),
	}, nil
}

func (g *gatewayImpl) fetchJourney(ctx context.Context, objectID string) (model.Entity, error) {
	var out catalogModel.Journey

	err := g.client.GetJSON(ctx, coreapi.EndpointClientJourneys+"/"+objectID, nil, &out)
	if err != nil {
		return model.Entity{}, fmt.Errorf("failed to fetch journey: %w", err)
	}

	booked := make([]int, 0, len(out.Bookings))
	for _, booking := range out.Bookings {
		booked = append(booked, booking.Seat)
	}

	return model.Entity{
		Kind:        model.KindTicket,
		ObjectID:    out.ID,
		Name:        out.From + " - " + out.To,
		BasePrice:   out.Price,
		Currency:    out.Currency,
		SeatLayout:  out.Bus.Layout,
		BookedSeats: booked,
	}, nil
}

func (g *gatewayImpl) fetchRetreat(ctx context.Context, objectID string) (model.Entity, error) {
	var out catalogModel.Retreat

	err := g.client.GetJSON(ctx, coreapi.EndpointClientRetreats+"/"+objectID, nil, &out)
	if err != nil {
		return model.Entity{}, fmt.Errorf("failed to fetch retreat: %w", err)
	}

	return model.Entity{
		Kind:      model.KindRetreat,
		ObjectID:  out.ID,
		Name:      out.Title,
		BasePrice: out.Price,
		PerPerson: out.PricingType == catalogModel.PricingTypePerPerson,
		Currency:  out.Currency,
	}, nil
}

func (g *gatewayImpl) SendOTP(ctx context.Context, email string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".SendOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := map[string]string{"email": email}

	err = g.client.PostJSON(ctx, coreapi.EndpointSendOTP, body, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to send otp")

		return fmt.Errorf("failed to send otp: %w", err)
	}

	return nil
}

func (g *gatewayImpl) VerifyOTP(ctx context.Context, email, otp string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".VerifyOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := map[string]string{"email": email, "otp": otp}

	err = g.client.PostJSON(ctx, coreapi.EndpointVerifyOTP, body, nil)
	if err != nil {
		log.Error().Err(err).Msg("otp verification failed")

		return fmt.Errorf("otp verification failed: %w", err)
	}

	return nil
}

// CreateBooking posts the accumulated payload. Ticket bookings go to their own
// endpoint; everything else shares the generic one. See DESIGN.md on why the
// split is kept.
func (g *gatewayImpl) CreateBooking(ctx context.Context, kind string, payload dto.BookingPayload) (res dto.BookingResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := coreapi.EndpointBookings
	if kind == model.KindTicket {
		endpoint = coreapi.EndpointTicketBooking
	}

	err = g.client.PostJSON(ctx, endpoint, payload, &res)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}

func toBookedRanges(ranges []catalogModel.DateRange) []model.BookedRange {
	booked := make([]model.BookedRange, 0, len(ranges))
	for _, r := range ranges {
		booked = append(booked, model.BookedRange{StartDate: r.StartDate, EndDate: r.EndDate})
	}

	return booked
}
