package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/kafka"
	"tripgate/infras/otel"
	"tripgate/internal/domains/bookingflow/gateway"
	"tripgate/internal/domains/bookingflow/model"
	"tripgate/internal/domains/bookingflow/model/dto"
	ratesService "tripgate/internal/domains/rates/service"
	"tripgate/internal/domains/seatmap"
	"tripgate/internal/events"
	"tripgate/shared"
	"tripgate/shared/cache"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
	"tripgate/shared/timezone"
)

const (
	cacheFlow = "flow"
)

// BookingFlow drives the multi-step booking state machine. One flow record in
// redis per in-progress booking; every upstream failure is terminal for the
// attempt and leaves the flow where it was, so the client retries the same step.
type BookingFlow interface {
	Start(ctx context.Context, req dto.StartFlowRequest) (dto.FlowResponse, error)
	SelectSeat(ctx context.Context, flowID string, req dto.SelectSeatRequest) (dto.FlowResponse, error)
	SubmitForm(ctx context.Context, flowID string, req dto.SubmitFormRequest) (dto.FlowResponse, error)
	SubmitPayment(ctx context.Context, flowID string, req dto.SubmitPaymentRequest) (dto.FlowResponse, error)
	SubmitOTP(ctx context.Context, flowID string, req dto.SubmitOTPRequest) (dto.FlowResponse, error)
	Back(ctx context.Context, flowID string) (dto.FlowResponse, error)
	Get(ctx context.Context, flowID string) (dto.FlowResponse, error)
	Abandon(ctx context.Context, flowID string) error
}

type serviceImpl struct {
	gateway  gateway.Gateway
	rates    ratesService.Rates
	cfg      *config.Config
	cache    cache.RedisCache
	producer kafka.Client
	otel     otel.Otel
}

func New(
	gateway gateway.Gateway,
	rates ratesService.Rates,
	cfg *config.Config,
	cache cache.RedisCache,
	producer kafka.Client,
	otel otel.Otel,
) BookingFlow {
	return &serviceImpl{
		gateway:  gateway,
		rates:    rates,
		cfg:      cfg,
		cache:    cache,
		producer: producer,
		otel:     otel,
	}
}

// Start snapshots the bookable entity and opens a flow in its first state.
func (s *serviceImpl) Start(ctx context.Context, req dto.StartFlowRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartFlow")
	defer scope.End()
	defer scope.TraceIfError(err)

	entity, err := s.gateway.FetchEntity(ctx, req.Kind, req.ObjectID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	flow := model.Flow{
		ID:        uuid.NewString(),
		Kind:      req.Kind,
		State:     model.StateForm,
		Entity:    entity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Kind == model.KindTicket {
		flow.State = model.StateSelectSeat
	}

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) SelectSeat(ctx context.Context, flowID string, req dto.SelectSeatRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	if flow.Kind != model.KindTicket {
		return res, failure.BadRequestFromString("seat selection only applies to ticket bookings") // nolint:wrapcheck
	}

	if flow.State != model.StateSelectSeat {
		return res, failure.Conflict("flow is not awaiting seat selection") // nolint:wrapcheck
	}

	grid := seatmap.Build(flow.Entity.SeatLayout, flow.Entity.BookedSeats)
	if !grid.Bookable(req.Seat) {
		return res, failure.Conflict(fmt.Sprintf("seat %d is not available", req.Seat)) // nolint:wrapcheck
	}

	flow.Seat = req.Seat
	flow.State = model.StateForm

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

// SubmitForm validates the contact and stay details, prices the booking in the
// entity's own currency, and advances to payment.
func (s *serviceImpl) SubmitForm(ctx context.Context, flowID string, req dto.SubmitFormRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	if flow.State != model.StateForm {
		return res, failure.Conflict("flow is not awaiting form submission") // nolint:wrapcheck
	}

	days, baseTotal, err := s.priceFlow(&flow, req)
	if err != nil {
		return res, err
	}

	flow.Form = model.Form{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Country:       req.Country,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Guests:        req.Guests,
		PricingMethod: req.PricingMethod,
	}
	flow.DayCount = days
	flow.BaseTotal = baseTotal
	flow.State = model.StatePayment

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

// priceFlow applies the kind-specific validation and pricing rules. The result
// is advisory; the core API reprices on its own data when the booking lands.
func (s *serviceImpl) priceFlow(flow *model.Flow, req dto.SubmitFormRequest) (days int, baseTotal float64, err error) {
	switch flow.Kind {
	case model.KindRoom, model.KindApartment:
		days, err = s.validateStay(flow, req)
		if err != nil {
			return 0, 0, err
		}

		if flow.Kind == model.KindApartment && req.PricingMethod == model.PricingMethodMonthly {
			return days, flow.Entity.MonthlyPrice * float64(model.MonthCount(days)), nil
		}

		return days, flow.Entity.BasePrice * float64(days), nil

	case model.KindTicket:
		if flow.Seat == 0 {
			return 0, 0, failure.Conflict("no seat selected") // nolint:wrapcheck
		}

		return 0, flow.Entity.BasePrice, nil

	case model.KindRetreat:
		if flow.Entity.PerPerson {
			if req.Guests < 1 {
				return 0, 0, failure.BadRequestFromString("guest count is required") // nolint:wrapcheck
			}

			return 0, flow.Entity.BasePrice * float64(req.Guests), nil
		}

		return 0, flow.Entity.BasePrice, nil
	}

	return 0, 0, failure.BadRequestFromString("unknown booking kind: " + flow.Kind) // nolint:wrapcheck
}

func (s *serviceImpl) validateStay(flow *model.Flow, req dto.SubmitFormRequest) (int, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return 0, failure.BadRequestFromString("start and end dates are required") // nolint:wrapcheck
	}

	requested, err := model.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid date range: " + err.Error()) // nolint:wrapcheck
	}

	if requested.End.Before(requested.Start) {
		return 0, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	days := requested.DayCount()
	if days < 1 {
		return 0, failure.BadRequestFromString("stay must cover at least one night") // nolint:wrapcheck
	}

	if flow.Kind == model.KindApartment && req.PricingMethod == model.PricingMethodMonthly && days < constant.MinMonthlyDay {
		return 0, failure.BadRequestFromString("Minimum 30 days required") // nolint:wrapcheck
	}

	for _, booked := range flow.Entity.Bookings {
		existing, parseErr := model.ParseDateRange(booked.StartDate, booked.EndDate)
		if parseErr != nil {
			log.Warn().Str("start", booked.StartDate).Str("end", booked.EndDate).Msg("skipping unparseable booked range")

			continue
		}

		if requested.Overlaps(existing) {
			return 0, failure.Conflict("selected dates overlap an existing booking") // nolint:wrapcheck
		}
	}

	return days, nil
}

// SubmitPayment converts the base total into the chosen display currency and
// dispatches the OTP. A failed dispatch leaves the flow in the payment state.
func (s *serviceImpl) SubmitPayment(ctx context.Context, flowID string, req dto.SubmitPaymentRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	if flow.State != model.StatePayment {
		return res, failure.Conflict("flow is not awaiting payment details") // nolint:wrapcheck
	}

	amount, err := s.rates.Convert(ctx, flow.BaseTotal, flow.Entity.Currency, req.CurrencyCode)
	if err != nil {
		return res, err
	}

	if err = s.gateway.SendOTP(ctx, flow.Form.Email); err != nil {
		return res, err
	}

	flow.AmountToPay = amount
	flow.CurrencyCode = req.CurrencyCode
	flow.PaymentMethod = req.PaymentMethod
	flow.State = model.StateOTP

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

// SubmitOTP verifies the code and immediately posts the accumulated booking.
// Either call failing keeps the flow in the otp state for another attempt.
func (s *serviceImpl) SubmitOTP(ctx context.Context, flowID string, req dto.SubmitOTPRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	if flow.State != model.StateOTP {
		return res, failure.Conflict("flow is not awaiting otp verification") // nolint:wrapcheck
	}

	if err = s.gateway.VerifyOTP(ctx, flow.Form.Email, req.OTP); err != nil {
		return res, err
	}

	payload := dto.BookingPayload{
		Name:          flow.Form.FullName,
		Email:         flow.Form.Email,
		Phone:         flow.Form.Phone,
		Country:       flow.Form.Country,
		ObjectType:    flow.Kind,
		ObjectID:      flow.Entity.ObjectID,
		StartDate:     flow.Form.StartDate,
		EndDate:       flow.Form.EndDate,
		Seat:          flow.Seat,
		Guests:        flow.Form.Guests,
		AmountToPay:   flow.AmountToPay,
		CurrencyCode:  flow.CurrencyCode,
		PaymentMethod: flow.PaymentMethod,
	}

	result, err := s.gateway.CreateBooking(ctx, flow.Kind, payload)
	if err != nil {
		return res, err
	}

	flow.State = model.StateSuccess

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	s.publishBookingCreated(ctx, flow, result)

	res.FromFlow(flow)

	return res, nil
}

// publishBookingCreated emits the event for the email worker. The booking is
// already accepted upstream, so a broker failure is logged, not surfaced.
func (s *serviceImpl) publishBookingCreated(ctx context.Context, flow model.Flow, result dto.BookingResult) {
	event := events.BookingCreated{
		FlowID:       flow.ID,
		BookingID:    result.ID,
		Kind:         flow.Kind,
		ObjectID:     flow.Entity.ObjectID,
		Name:         flow.Form.FullName,
		Email:        flow.Form.Email,
		AmountToPay:  flow.AmountToPay,
		CurrencyCode: flow.CurrencyCode,
		CreatedAt:    timezone.Now(),
	}

	message := kafka.Message{Key: flow.ID, Value: event}

	if err := s.producer.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
		log.Error().Err(err).Str("flow_id", flow.ID).Msg("failed to publish booking created event")
	}
}

func (s *serviceImpl) Back(ctx context.Context, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BackFlow")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	previous := flow.PreviousState()
	if previous == constant.Empty {
		return res, failure.Conflict("cannot go back from state " + flow.State) // nolint:wrapcheck
	}

	flow.State = previous

	if err = s.saveFlow(ctx, &flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFlow")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) Abandon(ctx context.Context, flowID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AbandonFlow")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheFlow, flowID)); err != nil {
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to delete booking flow")

		return fmt.Errorf("failed to delete booking flow: %w", err)
	}

	return nil
}

func (s *serviceImpl) loadFlow(ctx context.Context, flowID string) (flow model.Flow, err error) {
	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheFlow, flowID), &flow)
	if err != nil {
		return flow, failure.NotFound("booking flow") // nolint:wrapcheck
	}

	return flow, nil
}

func (s *serviceImpl) saveFlow(ctx context.Context, flow *model.Flow) error {
	flow.UpdatedAt = timezone.Now()

	ttl := s.cfg.Booking.FlowTTLMin * 60
	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheFlow, flow.ID), *flow, ttl); err != nil {
		log.Error().Err(err).Str("flow_id", flow.ID).Msg("failed to store booking flow")

		return fmt.Errorf("failed to store booking flow: %w", err)
	}

	return nil
}
