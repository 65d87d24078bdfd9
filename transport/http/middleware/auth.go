package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"tripgate/infras/coreapi"
	"tripgate/infras/jwt"
	"tripgate/infras/otel"
	"tripgate/internal/domains/session/service"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
	"tripgate/transport/http/response"
)

type Auth interface {
	Auth(next http.Handler) http.Handler
}

type authImpl struct {
	session service.Session
	otel    otel.Otel
}

func NewAuthMiddleware(session service.Session, otel otel.Otel) Auth {
	return &authImpl{
		session: session,
		otel:    otel,
	}
}

// Auth resolves the bearer token into a stored session and injects the session
// identity and the upstream token into the request context. Requests without a
// valid session are rejected; there is no anonymous access behind this gate.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			log.Warn().Msg("missing or malformed authorization header")

			response.WithError(writer, failure.Unauthorized("missing bearer token"))

			return
		}

		session, err := m.session.Resolve(ctx, token)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("failed to resolve session")

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, session.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, session.User.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, session.User.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserType, session.UserType)
		ctx = coreapi.WithToken(ctx, session.Token)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
