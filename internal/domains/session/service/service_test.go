package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tripgate/config"
	"tripgate/infras/coreapi"
	coreapiMocks "tripgate/infras/coreapi/mocks"
	"tripgate/infras/jwt"
	otelMocks "tripgate/infras/otel/mocks"
	"tripgate/internal/domains/session/model"
	"tripgate/internal/domains/session/model/dto"
	"tripgate/internal/domains/session/service"
	cacheMocks "tripgate/shared/cache/mocks"
	"tripgate/shared/failure"
)

func newService(t *testing.T) (service.Session, *coreapiMocks.MockClient, *cacheMocks.MockRedisCache, jwt.JWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := coreapiMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "tripgate-test"
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpireMin = 30

	jwtService := jwt.New(cfg)

	return service.New(mockClient, jwtService, cfg, mockCache, otelMocks.NewOtel()), mockClient, mockCache, jwtService
}

func TestLogin(t *testing.T) {
	svc, mockClient, mockCache, _ := newService(t)

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointLogin, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out any) error {
			return json.Unmarshal([]byte(`{
				"token":"upstream-token",
				"user":{"id":"u1","email":"admin@example.com","role":"admin"},
				"userType":"hotel"
			}`), out)
		})

	var storedKey string
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).
		DoAndReturn(func(_ context.Context, key string, value any, _ int) error {
			storedKey = key
			session, _ := value.(model.Session)
			assert.Equal(t, "upstream-token", session.Token)
			assert.Equal(t, "hotel", session.UserType)

			return nil
		})

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "secret1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(1800), res.ExpiresIn)
	assert.Equal(t, "u1", res.User.ID)
	assert.Contains(t, storedKey, "session:")

	// The upstream token must never appear in what the browser receives.
	assert.NotContains(t, res.AccessToken, "upstream-token")
}

func TestLogin_UpstreamRejects(t *testing.T) {
	svc, mockClient, _, _ := newService(t)

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointLogin, gomock.Any(), gomock.Any()).
		Return(failure.Upstream(401, "bad credentials"))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "wrong123"})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestLogin_EmptyToken(t *testing.T) {
	svc, mockClient, _, _ := newService(t)

	mockClient.EXPECT().
		PostJSON(gomock.Any(), coreapi.EndpointLogin, gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "secret1"})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestResolve_RoundTrip(t *testing.T) {
	svc, _, mockCache, jwtService := newService(t)

	token, _, err := jwtService.GenerateSessionToken("sess-1", "hotel")
	assert.NoError(t, err)

	mockCache.EXPECT().
		Get(gomock.Any(), "session:sess-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			session, _ := value.(*model.Session)
			session.ID = "sess-1"
			session.Token = "upstream-token"
			session.UserType = "hotel"

			return nil
		})

	session, err := svc.Resolve(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)
	assert.Equal(t, "upstream-token", session.Token)
}

func TestResolve_InvalidToken(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.Resolve(context.Background(), "not-a-jwt")

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestResolve_EvictedSession(t *testing.T) {
	svc, _, mockCache, jwtService := newService(t)

	token, _, err := jwtService.GenerateSessionToken("sess-gone", "")
	assert.NoError(t, err)

	mockCache.EXPECT().
		Get(gomock.Any(), "session:sess-gone", gomock.Any()).
		Return(errors.New("redis: nil"))

	_, err = svc.Resolve(context.Background(), token)

	assert.ErrorIs(t, err, failure.SessionExpiredError)
}

func TestLogout(t *testing.T) {
	svc, _, mockCache, _ := newService(t)

	mockCache.EXPECT().
		Delete(gomock.Any(), "session:sess-1").
		Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "sess-1"))
}
