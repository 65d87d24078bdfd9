package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripgate/config"
	"tripgate/infras/coreapi"
	coreapiMocks "tripgate/infras/coreapi/mocks"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/internal/domains/catalog/service"
	cacheMocks "tripgate/shared/cache/mocks"
	gDto "tripgate/shared/dto"
)

func newService(t *testing.T) (service.Catalog, *coreapiMocks.MockClient, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockClient, cfg, mockCache, otelMocks.NewOtel()), mockClient, mockCache
}

func TestListRooms(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetPage(gomock.Any(), coreapi.EndpointClientRooms, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values) (gDto.Page, error) {
			assert.Equal(t, "2", query.Get("page"))
			assert.Equal(t, "100", query.Get("price_max"))

			return gDto.Page{
				CurrentPage: 2,
				LastPage:    3,
				Data:        json.RawMessage(`[{"id":"r1","name":"Standard","price":40}]`),
			}, nil
		})

	res, err := svc.ListRooms(context.Background(),
		gDto.QueryParams{Page: 2, Limit: 10},
		gDto.ListingFilter{PriceMax: 100},
	)

	assert.NoError(t, err)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, "r1", res.Data[0].ID)
	assert.Equal(t, 2, res.Meta.CurrentPage)
	assert.True(t, res.Meta.HasPrev)
	assert.True(t, res.Meta.HasNext)
}

func TestListJourneys_UpstreamFailure(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetPage(gomock.Any(), coreapi.EndpointClientJourneys, gomock.Any()).
		Return(gDto.Page{}, errors.New("upstream down"))

	_, err := svc.ListJourneys(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.ListingFilter{})

	assert.Error(t, err)
}

func TestGetRoom_WithSimilar(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointClientRooms+"/r1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return json.Unmarshal([]byte(`{"id":"r1","name":"Deluxe","type":"suite","bookings":[{"start_date":"2024-05-01","end_date":"2024-05-05"}]}`), out)
		})

	mockClient.EXPECT().
		GetPage(gomock.Any(), coreapi.EndpointClientRooms, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values) (gDto.Page, error) {
			assert.Equal(t, "suite", query.Get("category"))

			return gDto.Page{
				CurrentPage: 1,
				LastPage:    1,
				Data:        json.RawMessage(`[{"id":"r1"},{"id":"r2"},{"id":"r3"}]`),
			}, nil
		})

	res, err := svc.GetRoom(context.Background(), "r1")

	assert.NoError(t, err)
	assert.Equal(t, "Deluxe", res.Room.Name)
	assert.Len(t, res.Bookings, 1)

	// The room itself never shows up in its own similar list.
	assert.Len(t, res.SimilarRooms, 2)
	for _, similar := range res.SimilarRooms {
		assert.NotEqual(t, "r1", similar.ID)
	}
}

func TestGetRoom_SimilarFailureIsNotFatal(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointClientRooms+"/r9", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return json.Unmarshal([]byte(`{"id":"r9","type":"twin"}`), out)
		})

	mockClient.EXPECT().
		GetPage(gomock.Any(), coreapi.EndpointClientRooms, gomock.Any()).
		Return(gDto.Page{}, errors.New("upstream down"))

	res, err := svc.GetRoom(context.Background(), "r9")

	assert.NoError(t, err)
	assert.Equal(t, "r9", res.Room.ID)
	assert.Empty(t, res.SimilarRooms)
}

func TestGetJourney_BuildsSeatGrid(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointClientJourneys+"/j1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return json.Unmarshal([]byte(`{
				"id":"j1","from":"Douala","to":"Yaounde","price":5000,
				"bus":{"id":"b1","seat_layout":{"row":2,"seats_per_row":2,"exclude":[1]}},
				"bookings":[{"seat":3}]
			}`), out)
		})

	res, err := svc.GetJourney(context.Background(), "j1")

	assert.NoError(t, err)
	assert.Len(t, res.Seats.Rows, 2)
	assert.False(t, res.Seats.Bookable(1))
	assert.True(t, res.Seats.Bookable(2))
	assert.False(t, res.Seats.Bookable(3))
	assert.True(t, res.Seats.Bookable(4))
}

func TestGetApartment(t *testing.T) {
	svc, mockClient, _ := newService(t)

	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointClientApartments+"/a1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return json.Unmarshal([]byte(`{"id":"a1","price_per_night":30,"price_per_month":700}`), out)
		})

	res, err := svc.GetApartment(context.Background(), "a1")

	assert.NoError(t, err)
	assert.Equal(t, "a1", res.Apartment.ID)
	assert.NotNil(t, res.Bookings)
	assert.Empty(t, res.Bookings)
}

func TestListApartments_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := coreapiMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockClient, cfg, mockCache, otelMocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.ListApartments(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.ListingFilter{})

	assert.NoError(t, err)
}
