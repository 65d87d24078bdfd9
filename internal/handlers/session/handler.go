package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripgate/infras/otel"
	"tripgate/internal/domains/session/model/dto"
	"tripgate/internal/domains/session/service"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
	"tripgate/shared/validator"
	"tripgate/transport/http/response"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/login", handler.Login)
}

// AuthRouter mounts the routes that need a resolved session.
func (handler *Handler) AuthRouter(router chi.Router) {
	router.Post("/logout", handler.Logout)
	router.Get("/me", handler.CurrentUser)
}

// Login authenticates against the core API and opens a gateway session.
// @Summary Log in
// @Description Authenticate upstream and receive a gateway session token.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session opened"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("login failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session opened for " + req.Email)

	response.WithJSON(w, http.StatusOK, res)
}

// Logout closes the current gateway session.
// @Summary Log out
// @Description Delete the current session; the token becomes unusable.
// @Tags Session
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Session closed"
// @Failure 401 {object} response.Error
// @Router /v1/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID, ok := ctx.Value(constant.ContextKeySessionID).(string)
	if !ok || sessionID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get session ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("logout failed")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Session closed")
}

// CurrentUser returns the user attached to the current session.
// @Summary Current user
// @Description Retrieve the user and user type of the active session.
// @Tags Session
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CurrentUserResponse] "Current user"
// @Failure 401 {object} response.Error
// @Router /v1/me [get]
// @Security BearerAuth
func (handler *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentUser")
	defer scope.End()

	sessionID, ok := ctx.Value(constant.ContextKeySessionID).(string)
	if !ok || sessionID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get session ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	res, err := handler.service.Current(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
