package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/internal/domains/admin/service"
	"tripgate/shared/constant"
	"tripgate/shared/failure"
	"tripgate/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/{resource}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.List)
		routerGroup.Post("/", handler.Create)
		routerGroup.Get("/{id}", handler.Detail)
		routerGroup.Put("/{id}", handler.Update)
		routerGroup.Post("/{id}", handler.UpdateForm)
		routerGroup.Delete("/{id}", handler.Delete)
	})
}

// List retrieves a paginated resource collection.
// @Summary List a managed resource
// @Description Retrieve a paginated collection of the named resource.
// @Tags Admin
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[gDto.Page] "Resource page"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource} [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminList")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)

	page, err := handler.service.List(ctx, resource, r.URL.Query())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to list resource")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// Detail retrieves one record of a resource.
// @Summary Get a managed record
// @Description Retrieve one record of the named resource by ID.
// @Tags Admin
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[json.RawMessage] "Record"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource}/{id} [get]
// @Security BearerAuth
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDetail")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)
	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Detail(ctx, resource, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to get record")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, record)
}

// Create adds a record, accepting JSON or multipart bodies.
// @Summary Create a managed record
// @Description Create a record of the named resource. Photo-bearing resources accept multipart bodies.
// @Tags Admin
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param resource path string true "Resource name"
// @Success 201 {object} response.Data[json.RawMessage] "Created record"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource} [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminCreate")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)

	var (
		record json.RawMessage
		err    error
	)

	if isMultipart(r) {
		var form coreapi.Form

		form, err = parseForm(r)
		if err == nil {
			record, err = handler.service.CreateForm(ctx, resource, form)
		}
	} else {
		var body json.RawMessage

		body, err = readBody(r)
		if err == nil {
			record, err = handler.service.Create(ctx, resource, body)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to create record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Record created in " + resource)

	response.WithJSON(w, http.StatusCreated, record)
}

// Update replaces a record via JSON PUT.
// @Summary Update a managed record
// @Description Update a record of the named resource with a JSON body.
// @Tags Admin
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[json.RawMessage] "Updated record"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource}/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUpdate")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)
	id := chi.URLParam(r, constant.RequestParamID)

	body, err := readBody(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read request body")

		response.WithError(w, err)

		return
	}

	record, err := handler.service.Update(ctx, resource, id, body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to update record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Record updated in " + resource)

	response.WithJSON(w, http.StatusOK, record)
}

// UpdateForm updates a record via a multipart POST. Where the upstream requires
// it, the proxy adds the _method=PUT override field.
// @Summary Update a managed record with files
// @Description Update a photo-bearing record with a multipart body.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Data[json.RawMessage] "Updated record"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource}/{id} [post]
// @Security BearerAuth
func (handler *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUpdateForm")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)
	id := chi.URLParam(r, constant.RequestParamID)

	if !isMultipart(r) {
		response.WithError(w, failure.BadRequestFromString("multipart body required; use PUT for JSON updates"))

		return
	}

	form, err := parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart body")

		response.WithError(w, err)

		return
	}

	record, err := handler.service.UpdateForm(ctx, resource, id, form)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to update record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Record updated in " + resource)

	response.WithJSON(w, http.StatusOK, record)
}

// Delete removes a record.
// @Summary Delete a managed record
// @Description Delete a record of the named resource by ID.
// @Tags Admin
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Message "Record deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/{resource}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDelete")
	defer scope.End()

	resource := chi.URLParam(r, constant.RequestParamResource)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, resource, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", resource).Msg("failed to delete record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Record deleted from " + resource)

	response.WithMessage(w, http.StatusOK, "Record deleted")
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData)
}

func readBody(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if len(body) == 0 || !json.Valid(body) {
		return nil, failure.BadRequestFromString("request body must be valid JSON") // nolint:wrapcheck
	}

	return body, nil
}

// parseForm flattens a multipart request into the upstream form shape. Only the
// first value per field survives; that matches what the dashboard sends.
func parseForm(r *http.Request) (coreapi.Form, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return coreapi.Form{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	form := coreapi.Form{Fields: map[string]string{}}

	for field, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			form.Fields[field] = values[0]
		}
	}

	for field, headers := range r.MultipartForm.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				return coreapi.Form{}, failure.BadRequest(err) // nolint:wrapcheck
			}

			data, err := io.ReadAll(file)
			_ = file.Close()

			if err != nil {
				return coreapi.Form{}, failure.BadRequest(err) // nolint:wrapcheck
			}

			form.Files = append(form.Files, coreapi.FormFile{
				Field:       field,
				Name:        header.Filename,
				ContentType: header.Header.Get(constant.RequestHeaderContentType),
				Data:        data,
			})
		}
	}

	return form, nil
}
