package flow

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripgate/infras/otel"
	"tripgate/internal/domains/bookingflow/model/dto"
	"tripgate/internal/domains/bookingflow/service"
	"tripgate/shared/constant"
	"tripgate/shared/validator"
	"tripgate/transport/http/response"
)

type Handler struct {
	service service.BookingFlow
	otel    otel.Otel
}

func New(service service.BookingFlow, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flows", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartFlow)
		routerGroup.Get("/{id}", handler.GetFlow)
		routerGroup.Delete("/{id}", handler.AbandonFlow)
		routerGroup.Post("/{id}/seat", handler.SelectSeat)
		routerGroup.Post("/{id}/form", handler.SubmitForm)
		routerGroup.Post("/{id}/payment", handler.SubmitPayment)
		routerGroup.Post("/{id}/otp", handler.SubmitOTP)
		routerGroup.Post("/{id}/back", handler.BackFlow)
	})
}

// StartFlow opens a booking flow for an entity.
// @Summary Start a booking flow
// @Description Snapshot a bookable entity and open a flow in its first state.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param request body dto.StartFlowRequest true "Start Flow Request"
// @Success 201 {object} response.Data[dto.FlowResponse] "Flow started"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/flows [post]
func (handler *Handler) StartFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartFlow")
	defer scope.End()

	req := dto.StartFlowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flow, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking flow")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking flow started for " + req.Kind + " " + req.ObjectID)

	response.WithJSON(w, http.StatusCreated, flow)
}

// GetFlow retrieves the current state of a booking flow.
// @Summary Get a booking flow
// @Description Retrieve the current state and accumulated data of a flow.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Data[dto.FlowResponse] "Flow state"
// @Failure 404 {object} response.Error
// @Router /v1/flows/{id} [get]
func (handler *Handler) GetFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flow, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking flow")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flow)
}

// AbandonFlow discards a booking flow.
// @Summary Abandon a booking flow
// @Description Delete a flow and all its accumulated state.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Message "Flow abandoned"
// @Failure 500 {object} response.Error
// @Router /v1/flows/{id} [delete]
func (handler *Handler) AbandonFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonFlow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Abandon(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to abandon booking flow")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Flow abandoned")
}

// SelectSeat picks a seat on a ticket flow.
// @Summary Select a seat
// @Description Pick a bookable seat on a ticket flow and advance to the form.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.SelectSeatRequest true "Select Seat Request"
// @Success 200 {object} response.Data[dto.FlowResponse] "Seat selected"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/flows/{id}/seat [post]
func (handler *Handler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectSeat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SelectSeatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flow, err := handler.service.SelectSeat(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select seat")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flow)
}

// SubmitForm submits the contact and stay details.
// @Summary Submit the booking form
// @Description Validate contact details, dates and pricing, then advance to payment.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.SubmitFormRequest true "Submit Form Request"
// @Success 200 {object} response.Data[dto.FlowResponse] "Form accepted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/flows/{id}/form [post]
func (handler *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SubmitFormRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flow, err := handler.service.SubmitForm(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flow)
}

// SubmitPayment picks the display currency and payment method.
// @Summary Submit payment details
// @Description Convert the total into the chosen currency and dispatch the OTP.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.SubmitPaymentRequest true "Submit Payment Request"
// @Success 200 {object} response.Data[dto.FlowResponse] "OTP dispatched"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/flows/{id}/payment [post]
func (handler *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SubmitPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flow, err := handler.service.SubmitPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit payment details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flow)
}

// SubmitOTP verifies the code and finalizes the booking.
// @Summary Submit the OTP
// @Description Verify the one-time password and post the booking upstream.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.SubmitOTPRequest true "Submit OTP Request"
// @Success 200 {object} response.Data[dto.FlowResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/flows/{id}/otp [post]
func (handler *Handler) SubmitOTP(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitOTP")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SubmitOTPRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	flow, err := handler.service.SubmitOTP(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify otp")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created for flow " + id)

	response.WithJSON(w, http.StatusOK, flow)
}

// BackFlow steps a flow back one state.
// @Summary Step back
// @Description Return the flow to its previous state.
// @Tags BookingFlow
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} response.Data[dto.FlowResponse] "Flow stepped back"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/flows/{id}/back [post]
func (handler *Handler) BackFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BackFlow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flow, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to step booking flow back")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, flow)
}
