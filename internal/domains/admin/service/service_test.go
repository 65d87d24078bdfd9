package service_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripgate/infras/coreapi"
	coreapiMocks "tripgate/infras/coreapi/mocks"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/internal/domains/admin/service"
	"tripgate/shared/dto"
	"tripgate/shared/failure"
)

func newService(t *testing.T) (service.Admin, *coreapiMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)

	return service.New(mockClient, otelMocks.NewOtel()), mockClient
}

func TestResource(t *testing.T) {
	svc, _ := newService(t)

	hotels, err := svc.Resource("hotels")
	assert.NoError(t, err)
	assert.Equal(t, coreapi.EndpointHotels, hotels.Endpoint)
	assert.True(t, hotels.Multipart)

	payments, err := svc.Resource("payments")
	assert.NoError(t, err)
	assert.True(t, payments.ReadOnly)

	_, err = svc.Resource("unicorns")
	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestList(t *testing.T) {
	svc, mockClient := newService(t)

	query := url.Values{"page": []string{"2"}}
	expected := dto.Page{CurrentPage: 2, LastPage: 5, Data: json.RawMessage(`[{"id":"h1"}]`)}

	mockClient.EXPECT().
		GetPage(gomock.Any(), coreapi.EndpointHotels, query).
		Return(expected, nil)

	page, err := svc.List(context.Background(), "hotels", query)

	assert.NoError(t, err)
	assert.Equal(t, expected, page)
	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
}

func TestList_UnknownResource(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.List(context.Background(), "unicorns", nil)

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCreate(t *testing.T) {
	svc, mockClient := newService(t)

	body := json.RawMessage(`{"name":"Agency One"}`)

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointAgencies, body, gomock.Any()).
		Return(nil)

	_, err := svc.Create(context.Background(), "agencies", body)

	assert.NoError(t, err)
}

func TestCreate_ReadOnlyResource(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), "payments", json.RawMessage(`{}`))

	assert.Error(t, err)
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestUpdate(t *testing.T) {
	svc, mockClient := newService(t)

	body := json.RawMessage(`{"name":"Renamed"}`)

	mockClient.EXPECT().
		PutJSON(gomock.Any(), coreapi.EndpointBuses+"/b1", body, gomock.Any()).
		Return(nil)

	_, err := svc.Update(context.Background(), "buses", "b1", body)

	assert.NoError(t, err)
}

func TestUpdateForm_SpoofsPut(t *testing.T) {
	svc, mockClient := newService(t)

	form := coreapi.Form{
		Fields: map[string]string{"name": "Hotel Roc"},
		Files: []coreapi.FormFile{
			{Field: "photo", Name: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
		},
	}

	mockClient.EXPECT().
		PostForm(gomock.Any(), coreapi.EndpointHotels+"/h1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sent coreapi.Form, _ any) error {
			assert.True(t, sent.SpoofPut)
			assert.Equal(t, "Hotel Roc", sent.Fields["name"])

			return nil
		})

	_, err := svc.UpdateForm(context.Background(), "hotels", "h1", form)

	assert.NoError(t, err)
}

func TestUpdateForm_JSONOnlyResource(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.UpdateForm(context.Background(), "buses", "b1", coreapi.Form{})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestCreateForm_NoMethodOverride(t *testing.T) {
	svc, mockClient := newService(t)

	mockClient.EXPECT().
		PostForm(gomock.Any(), coreapi.EndpointPhotos, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sent coreapi.Form, _ any) error {
			assert.False(t, sent.SpoofPut)

			return nil
		})

	_, err := svc.CreateForm(context.Background(), "photos", coreapi.Form{SpoofPut: true})

	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	svc, mockClient := newService(t)

	mockClient.EXPECT().
		Delete(gomock.Any(), coreapi.EndpointPhotos+"/p1").
		Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "photos", "p1"))
}

func TestDelete_ReadOnlyResource(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Delete(context.Background(), "payments", "p1")

	assert.Error(t, err)
	assert.Equal(t, 403, failure.GetCode(err))
}
