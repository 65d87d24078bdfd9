package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/internal/domains/rates/model"
	"tripgate/shared/cache"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
)

const (
	cacheRates = "rates:table"
)

// Rates serves the exchange-rate table and currency conversions for displayed
// prices. Conversions are a UX convenience; the core API recomputes amounts on its
// own rates when a booking lands.
type Rates interface {
	List(ctx context.Context) ([]model.Rate, error)
	RateFor(ctx context.Context, currencyCode string) (model.Rate, error)
	Convert(ctx context.Context, amount float64, baseCurrency, targetCurrency string) (float64, error)
}

type serviceImpl struct {
	client coreapi.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client coreapi.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rates {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Rate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRates, &res)
	if err == nil {
		return res, nil
	}

	err = s.client.GetJSON(ctx, coreapi.EndpointExchangeRates, nil, &res)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch exchange rates")

		return res, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save exchange rates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) RateFor(ctx context.Context, currencyCode string) (model.Rate, error) {
	rates, err := s.List(ctx)
	if err != nil {
		return model.Rate{}, err
	}

	for _, rate := range rates {
		if strings.EqualFold(rate.CurrencyCode, currencyCode) {
			return rate, nil
		}
	}

	return model.Rate{}, failure.BadRequestFromString("unknown currency code: " + currencyCode) // nolint:wrapcheck
}

// Convert moves an amount from the base currency into the target one through USD:
// converted = (amount / baseRateToUSD) * targetRateToUSD.
func (s *serviceImpl) Convert(ctx context.Context, amount float64, baseCurrency, targetCurrency string) (float64, error) {
	base, err := s.RateFor(ctx, baseCurrency)
	if err != nil {
		return 0, err
	}

	if base.RateToUSD <= 0 {
		return 0, failure.BadRequestFromString("invalid base rate for currency: " + baseCurrency) // nolint:wrapcheck
	}

	target, err := s.RateFor(ctx, targetCurrency)
	if err != nil {
		return 0, err
	}

	return amount / base.RateToUSD * target.RateToUSD, nil
}
