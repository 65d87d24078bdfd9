package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/coreapi"
	"tripgate/infras/jwt"
	"tripgate/infras/otel"
	"tripgate/internal/domains/session/model"
	"tripgate/internal/domains/session/model/dto"
	"tripgate/shared"
	"tripgate/shared/cache"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
	"tripgate/shared/timezone"
)

const (
	cacheSession = "session"
)

// Session owns authentication state for the gateway. The upstream core API issues
// the actual credentials; this service stores them server-side and hands the browser
// a signed pointer.
type Session interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, tokenString string) (model.Session, error)
	Current(ctx context.Context, sessionID string) (dto.CurrentUserResponse, error)
}

type serviceImpl struct {
	client coreapi.Client
	jwt    jwt.JWT
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client coreapi.Client, jwtService jwt.JWT, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		client: client,
		jwt:    jwtService,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	upstream := struct {
		Token    string     `json:"token"`
		User     model.User `json:"user"`
		UserType string     `json:"userType"`
	}{}

	if err = s.client.PostJSON(ctx, coreapi.EndpointLogin, req, &upstream); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("login rejected by core api")

		return res, fmt.Errorf("login failed: %w", err)
	}

	if upstream.Token == "" {
		return res, failure.Unauthorized("core api returned no token") // nolint:wrapcheck
	}

	session := model.Session{
		ID:        uuid.NewString(),
		Token:     upstream.Token,
		User:      upstream.User,
		UserType:  upstream.UserType,
		CreatedAt: timezone.Now(),
	}

	ttl := s.cfg.Session.ExpireMin * 60
	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheSession, session.ID), session, ttl); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	token, expiresIn, err := s.jwt.GenerateSessionToken(session.ID, session.UserType)
	if err != nil {
		return res, fmt.Errorf("failed to mint session token: %w", err)
	}

	scope.AddEvent("Session created for user " + session.User.ID)

	res = dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        session.User,
		UserType:    session.UserType,
	}

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheSession, sessionID)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Resolve turns a gateway bearer token into the stored session. Both an invalid
// token and an evicted session come back as unauthorized.
func (s *serviceImpl) Resolve(ctx context.Context, tokenString string) (session model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return session, failure.SessionExpiredError // nolint:wrapcheck
		}

		return session, failure.Unauthorized("invalid session token") // nolint:wrapcheck
	}

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheSession, claims.SessionID), &session)
	if err != nil {
		return session, failure.SessionExpiredError // nolint:wrapcheck
	}

	return session, nil
}

func (s *serviceImpl) Current(ctx context.Context, sessionID string) (res dto.CurrentUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	session := model.Session{}

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheSession, sessionID), &session)
	if err != nil {
		return res, failure.SessionExpiredError // nolint:wrapcheck
	}

	res.User = session.User
	res.UserType = session.UserType

	return res, nil
}
