package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/internal/domains/catalog/model"
	"tripgate/internal/domains/catalog/model/dto"
	"tripgate/internal/domains/seatmap"
	"tripgate/shared"
	"tripgate/shared/cache"
	"tripgate/shared/constant"
	gDto "tripgate/shared/dto"
	"tripgate/shared/failure"
)

const (
	cacheListRooms      = "catalog:rooms"
	cacheListApartments = "catalog:apartments"
	cacheListJourneys   = "catalog:journeys"
	cacheListRetreats   = "catalog:retreats"
	cacheDetail         = "catalog:detail"

	similarRoomsLimit = 4
)

// Catalog serves the public browse surface: paginated, filtered listings and entity
// details, all sourced from the core API with a short-lived cache in front.
type Catalog interface {
	ListRooms(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (dto.ListPage[model.Room], error)
	ListApartments(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (dto.ListPage[model.Apartment], error)
	ListJourneys(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (dto.ListPage[model.Journey], error)
	ListRetreats(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (dto.ListPage[model.Retreat], error)
	GetRoom(ctx context.Context, id string) (dto.RoomDetailResponse, error)
	GetApartment(ctx context.Context, id string) (dto.ApartmentDetailResponse, error)
	GetJourney(ctx context.Context, id string) (dto.JourneyDetailResponse, error)
	GetRetreat(ctx context.Context, id string) (dto.RetreatDetailResponse, error)
}

type serviceImpl struct {
	client coreapi.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client coreapi.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// list is the one listing path all four entity kinds share: encode pagination and
// filters, fetch the upstream page, decode its data into the typed slice.
func list[T any](ctx context.Context, s *serviceImpl, endpoint, cachePrefix string, q gDto.QueryParams, f gDto.ListingFilter) (res dto.ListPage[T], err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefix, q, f)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	query := url.Values{}
	q.Encode(query)
	f.Encode(query)

	page, err := s.client.GetPage(ctx, endpoint, query)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to fetch listing")

		return res, fmt.Errorf("failed to fetch listing: %w", err)
	}

	var data []T
	if err = json.Unmarshal(page.Data, &data); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("unexpected listing data shape")

		return res, failure.Upstream(http.StatusBadGateway, "unexpected listing data shape") // nolint:wrapcheck
	}

	res.FromPage(page, data)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save listing to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListRooms(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (res dto.ListPage[model.Room], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	return list[model.Room](ctx, s, coreapi.EndpointClientRooms, cacheListRooms, q, f)
}

func (s *serviceImpl) ListApartments(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (res dto.ListPage[model.Apartment], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListApartments")
	defer scope.End()
	defer scope.TraceIfError(err)

	return list[model.Apartment](ctx, s, coreapi.EndpointClientApartments, cacheListApartments, q, f)
}

func (s *serviceImpl) ListJourneys(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (res dto.ListPage[model.Journey], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListJourneys")
	defer scope.End()
	defer scope.TraceIfError(err)

	return list[model.Journey](ctx, s, coreapi.EndpointClientJourneys, cacheListJourneys, q, f)
}

func (s *serviceImpl) ListRetreats(ctx context.Context, q gDto.QueryParams, f gDto.ListingFilter) (res dto.ListPage[model.Retreat], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRetreats")
	defer scope.End()
	defer scope.TraceIfError(err)

	return list[model.Retreat](ctx, s, coreapi.EndpointClientRetreats, cacheListRetreats, q, f)
}

func (s *serviceImpl) GetRoom(ctx context.Context, id string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDetail, "room", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	detail := struct {
		model.Room
		Bookings []model.DateRange `json:"bookings"`
	}{}

	if err = s.client.GetJSON(ctx, coreapi.EndpointClientRooms+"/"+id, nil, &detail); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to fetch room")

		return res, fmt.Errorf("failed to fetch room: %w", err)
	}

	res.Room = detail.Room
	res.Bookings = detail.Bookings
	res.SimilarRooms = s.similarRooms(ctx, detail.Room)

	s.saveDetail(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) similarRooms(ctx context.Context, room model.Room) []model.Room {
	query := url.Values{}
	query.Set("category", room.Type)
	query.Set(constant.RequestParamLimit, strconv.Itoa(similarRoomsLimit+1))

	page, err := s.client.GetPage(ctx, coreapi.EndpointClientRooms, query)
	if err != nil {
		// Similar rooms are decoration; the detail still renders without them.
		log.Warn().Err(err).Str("room_id", room.ID).Msg("failed to fetch similar rooms")

		return []model.Room{}
	}

	var rooms []model.Room
	if err = json.Unmarshal(page.Data, &rooms); err != nil {
		log.Warn().Err(err).Msg("unexpected similar rooms shape")

		return []model.Room{}
	}

	similar := make([]model.Room, 0, similarRoomsLimit)

	for _, candidate := range rooms {
		if candidate.ID == room.ID {
			continue
		}

		similar = append(similar, candidate)
		if len(similar) == similarRoomsLimit {
			break
		}
	}

	return similar
}

func (s *serviceImpl) GetApartment(ctx context.Context, id string) (res dto.ApartmentDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetApartment")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDetail, "apartment", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	apartment := model.Apartment{}
	if err = s.client.GetJSON(ctx, coreapi.EndpointClientApartments+"/"+id, nil, &apartment); err != nil {
		log.Error().Err(err).Str("apartment_id", id).Msg("failed to fetch apartment")

		return res, fmt.Errorf("failed to fetch apartment: %w", err)
	}

	res.Apartment = apartment
	res.Bookings = apartment.Bookings
	if res.Bookings == nil {
		res.Bookings = []model.DateRange{}
	}

	s.saveDetail(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetJourney(ctx context.Context, id string) (res dto.JourneyDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetJourney")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDetail, "journey", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	journey := model.Journey{}
	if err = s.client.GetJSON(ctx, coreapi.EndpointClientJourneys+"/"+id, nil, &journey); err != nil {
		log.Error().Err(err).Str("journey_id", id).Msg("failed to fetch journey")

		return res, fmt.Errorf("failed to fetch journey: %w", err)
	}

	booked := make([]int, 0, len(journey.Bookings))
	for _, booking := range journey.Bookings {
		booked = append(booked, booking.Seat)
	}

	res.Journey = journey
	res.Seats = seatmap.Build(journey.Bus.Layout, booked)

	s.saveDetail(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetRetreat(ctx context.Context, id string) (res dto.RetreatDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRetreat")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDetail, "retreat", id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	retreat := model.Retreat{}
	if err = s.client.GetJSON(ctx, coreapi.EndpointClientRetreats+"/"+id, nil, &retreat); err != nil {
		log.Error().Err(err).Str("retreat_id", id).Msg("failed to fetch retreat")

		return res, fmt.Errorf("failed to fetch retreat: %w", err)
	}

	res.Retreat = retreat

	s.saveDetail(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) saveDetail(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save detail to cache")
		}
	}()
}
