package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/internal/domains/payment/model/dto"
	"tripgate/shared/constant"
)

// Payment confirms gateway transactions against the core API.
type Payment interface {
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
}

type serviceImpl struct {
	client coreapi.Client
	otel   otel.Otel
}

func New(client coreapi.Client, otel otel.Otel) Payment {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.client.PostJSON(ctx, coreapi.EndpointFlutterwaveVerify, req, &res.Confirmation)
	if err != nil {
		log.Error().Err(err).Str("tx_ref", req.TxRef).Msg("failed to verify payment")

		return res, err
	}

	return res, nil
}
