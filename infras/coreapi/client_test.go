package coreapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgate/config"
	"tripgate/infras/coreapi"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/shared/failure"
)

func newClient(t *testing.T, handler http.HandlerFunc) coreapi.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.TimeoutSeconds = 5

	return coreapi.New(cfg, otelMocks.NewOtel())
}

func TestGetJSON_BareValue(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/client/exchange-rates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"currency_code":"USD","rate_to_usd":1}]`))
	})

	var rates []struct {
		CurrencyCode string  `json:"currency_code"`
		RateToUSD    float64 `json:"rate_to_usd"`
	}

	err := client.GetJSON(context.Background(), coreapi.EndpointExchangeRates, nil, &rates)

	assert.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.Equal(t, "USD", rates[0].CurrencyCode)
}

func TestGetJSON_DataEnvelope(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"currency_code":"XAF","rate_to_usd":600}]}`))
	})

	var rates []struct {
		CurrencyCode string  `json:"currency_code"`
		RateToUSD    float64 `json:"rate_to_usd"`
	}

	err := client.GetJSON(context.Background(), coreapi.EndpointExchangeRates, nil, &rates)

	assert.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.Equal(t, "XAF", rates[0].CurrencyCode)
}

func TestGetPage_Envelope(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"current_page":2,"last_page":4,"data":[{"id":"r1"}]}`))
	})

	query := url.Values{}
	query.Set("page", "2")

	page, err := client.GetPage(context.Background(), coreapi.EndpointClientRooms, query)

	assert.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 4, page.LastPage)
	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
}

func TestGetPage_BareArray(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"r1"},{"id":"r2"}]`))
	})

	page, err := client.GetPage(context.Background(), coreapi.EndpointClientRetreats, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.LastPage)
	assert.False(t, page.HasNext())
	assert.JSONEq(t, `[{"id":"r1"},{"id":"r2"}]`, string(page.Data))
}

func TestPostJSON_BearerFromContext(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	ctx := coreapi.WithToken(context.Background(), "upstream-token")
	err := client.PostJSON(ctx, coreapi.EndpointBookings, map[string]string{"email": "a@b.c"}, nil)

	assert.NoError(t, err)
}

func TestPostJSON_NoTokenNoHeader(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.PostJSON(context.Background(), coreapi.EndpointSendOTP, map[string]string{"email": "a@b.c"}, nil)

	assert.NoError(t, err)
}

func TestNon2xxCarriesStatusAndMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"dates unavailable"}`))
	})

	err := client.PostJSON(context.Background(), coreapi.EndpointBookings, map[string]string{}, nil)

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, "dates unavailable", err.Error())
}

func TestTransportFailureMapsToBadGateway(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upstream.BaseURL = "http://127.0.0.1:1"
	cfg.Upstream.TimeoutSeconds = 1

	client := coreapi.New(cfg, otelMocks.NewOtel())

	err := client.GetJSON(context.Background(), coreapi.EndpointClientRooms, nil, nil)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestPostForm_SpoofPut(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "Sea View Suite", r.FormValue("name"))

		file, header, err := r.FormFile("photo")
		assert.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "room.jpg", header.Filename)

		_, _ = w.Write([]byte(`{"message":"updated"}`))
	})

	form := coreapi.Form{
		Fields:   map[string]string{"name": "Sea View Suite"},
		SpoofPut: true,
		Files: []coreapi.FormFile{
			{Field: "photo", Name: "room.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		},
	}

	err := client.PostForm(context.Background(), coreapi.EndpointRooms+"/room-1", form, nil)

	assert.NoError(t, err)
}
