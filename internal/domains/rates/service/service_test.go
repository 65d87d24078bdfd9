package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripgate/config"
	"tripgate/infras/coreapi"
	coreapiMocks "tripgate/infras/coreapi/mocks"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/internal/domains/rates/model"
	"tripgate/internal/domains/rates/service"
	cacheMocks "tripgate/shared/cache/mocks"
)

var rateTable = []model.Rate{
	{CurrencyCode: "USD", RateToUSD: 1},
	{CurrencyCode: "XAF", RateToUSD: 600},
	{CurrencyCode: "NGN", RateToUSD: 1300},
}

func newService(t *testing.T) (service.Rates, *coreapiMocks.MockClient, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockClient, cfg, mockCache, otelMocks.NewOtel()), mockClient, mockCache
}

func expectRateFetch(mockClient *coreapiMocks.MockClient, mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointExchangeRates, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			rates, _ := out.(*[]model.Rate)
			*rates = rateTable

			return nil
		}).
		AnyTimes()
}

func TestList_CacheHit(t *testing.T) {
	svc, _, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "rates:table", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			rates, _ := value.(*[]model.Rate)
			*rates = rateTable

			return nil
		})

	rates, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rateTable, rates)
}

func TestList_UpstreamFailure(t *testing.T) {
	svc, mockClient, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	mockClient.EXPECT().
		GetJSON(gomock.Any(), coreapi.EndpointExchangeRates, gomock.Any(), gomock.Any()).
		Return(errors.New("upstream down"))

	_, err := svc.List(context.Background())

	assert.Error(t, err)
}

func TestRateFor(t *testing.T) {
	svc, mockClient, mockCache := newService(t)
	expectRateFetch(mockClient, mockCache)

	rate, err := svc.RateFor(context.Background(), "xaf")

	assert.NoError(t, err)
	assert.Equal(t, 600.0, rate.RateToUSD)

	_, err = svc.RateFor(context.Background(), "GBP")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown currency code")
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		base   string
		target string
		want   float64
	}{
		{name: "usd to ngn", amount: 100, base: "USD", target: "NGN", want: 130000},
		{name: "same currency", amount: 250, base: "XAF", target: "XAF", want: 250},
		{name: "xaf to usd", amount: 600, base: "XAF", target: "USD", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)
			expectRateFetch(mockClient, mockCache)

			got, err := svc.Convert(context.Background(), tt.amount, tt.base, tt.target)

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	svc, mockClient, mockCache := newService(t)
	expectRateFetch(mockClient, mockCache)

	_, err := svc.Convert(context.Background(), 100, "USD", "GBP")

	assert.Error(t, err)
}
