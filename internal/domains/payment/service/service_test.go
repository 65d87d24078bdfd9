package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripgate/infras/coreapi"
	coreapiMocks "tripgate/infras/coreapi/mocks"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/internal/domains/payment/model/dto"
	"tripgate/internal/domains/payment/service"
	"tripgate/shared/failure"
)

func TestVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, otelMocks.NewOtel())

	req := dto.VerifyRequest{TransactionID: "8412734", TxRef: "trip-1", Status: "successful"}

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointFlutterwaveVerify, req, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			raw, _ := out.(*json.RawMessage)
			*raw = json.RawMessage(`{"status":"successful"}`)

			return nil
		})

	res, err := svc.Verify(context.Background(), req)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"successful"}`, string(res.Confirmation))
}

func TestVerify_UpstreamRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, otelMocks.NewOtel())

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointFlutterwaveVerify, gomock.Any(), gomock.Any()).
		Return(failure.Upstream(422, "transaction not found"))

	_, err := svc.Verify(context.Background(), dto.VerifyRequest{TransactionID: "x", TxRef: "y", Status: "failed"})

	assert.Error(t, err)
	assert.Equal(t, 422, failure.GetCode(err))
}
