package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripgate/infras/otel"
	"tripgate/internal/domains/catalog/service"
	"tripgate/shared/constant"
	gDto "tripgate/shared/dto"
	"tripgate/transport/http/response"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListRooms)
		routerGroup.Get("/{id}", handler.GetRoom)
	})
	router.Route("/apartments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListApartments)
		routerGroup.Get("/{id}", handler.GetApartment)
	})
	router.Route("/journeys", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListJourneys)
		routerGroup.Get("/{id}", handler.GetJourney)
	})
	router.Route("/retreats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListRetreats)
		routerGroup.Get("/{id}", handler.GetRetreat)
	})
}

// ListRooms retrieves the public room listing.
// @Summary List rooms
// @Description Retrieve the paginated public room listing with optional filters.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param category query string false "Room category"
// @Success 200 {object} response.Data[dto.ListPage[model.Room]] "List of rooms"
// @Failure 502 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.ListingFilter{}
	filter.FromQuery(r.URL.Query())

	rooms, err := handler.service.ListRooms(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom retrieves one room with similar rooms and existing bookings.
// @Summary Get a room by ID
// @Description Retrieve a room plus similar rooms and booked date ranges.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomDetailResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.GetRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// ListApartments retrieves the public apartment listing.
// @Summary List apartments
// @Description Retrieve the paginated public apartment listing with optional filters.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Success 200 {object} response.Data[dto.ListPage[model.Apartment]] "List of apartments"
// @Failure 502 {object} response.Error
// @Router /v1/apartments [get]
func (handler *Handler) ListApartments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListApartments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.ListingFilter{}
	filter.FromQuery(r.URL.Query())

	apartments, err := handler.service.ListApartments(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list apartments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, apartments)
}

// GetApartment retrieves one apartment with its booked date ranges.
// @Summary Get an apartment by ID
// @Description Retrieve an apartment plus the date ranges already booked.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} response.Data[dto.ApartmentDetailResponse] "Apartment details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/apartments/{id} [get]
func (handler *Handler) GetApartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApartment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	apartment, err := handler.service.GetApartment(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get apartment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, apartment)
}

// ListJourneys retrieves the public journey listing.
// @Summary List journeys
// @Description Retrieve the paginated public bus journey listing with optional filters.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param from query string false "Departure town"
// @Param to query string false "Arrival town"
// @Success 200 {object} response.Data[dto.ListPage[model.Journey]] "List of journeys"
// @Failure 502 {object} response.Error
// @Router /v1/journeys [get]
func (handler *Handler) ListJourneys(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListJourneys")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.ListingFilter{}
	filter.FromQuery(r.URL.Query())

	journeys, err := handler.service.ListJourneys(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list journeys")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, journeys)
}

// GetJourney retrieves one journey with its rendered seat grid.
// @Summary Get a journey by ID
// @Description Retrieve a journey plus its seat grid with availability flags.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Journey ID"
// @Success 200 {object} response.Data[dto.JourneyDetailResponse] "Journey details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/journeys/{id} [get]
func (handler *Handler) GetJourney(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJourney")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	journey, err := handler.service.GetJourney(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get journey")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, journey)
}

// ListRetreats retrieves the public retreat listing.
// @Summary List retreats
// @Description Retrieve the paginated public retreat listing with optional filters.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.ListPage[model.Retreat]] "List of retreats"
// @Failure 502 {object} response.Error
// @Router /v1/retreats [get]
func (handler *Handler) ListRetreats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRetreats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.ListingFilter{}
	filter.FromQuery(r.URL.Query())

	retreats, err := handler.service.ListRetreats(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list retreats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, retreats)
}

// GetRetreat retrieves one retreat.
// @Summary Get a retreat by ID
// @Description Retrieve a retreat by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Retreat ID"
// @Success 200 {object} response.Data[dto.RetreatDetailResponse] "Retreat details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/retreats/{id} [get]
func (handler *Handler) GetRetreat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRetreat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	retreat, err := handler.service.GetRetreat(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get retreat")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, retreat)
}
