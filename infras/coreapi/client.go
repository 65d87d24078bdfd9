package coreapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/infras/otel"
	"tripgate/shared/constant"
	"tripgate/shared/dto"
	"tripgate/shared/failure"
)

const (
	otelScopeName = "coreapi"

	defaultTimeoutSeconds = 15
)

// Form is a multipart payload forwarded to the core API as-is. SpoofPut adds the
// `_method=PUT` override field some upstream update endpoints require on multipart
// requests.
type Form struct {
	Fields   map[string]string
	Files    []FormFile
	SpoofPut bool
}

type FormFile struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Client is the typed HTTP client for the upstream core API. Every entity this
// service shows or mutates lives behind it; calls are single-attempt and carry the
// caller's context so a dropped client connection cancels upstream work too.
type Client interface {
	GetJSON(ctx context.Context, endpoint string, query url.Values, out any) error
	GetPage(ctx context.Context, endpoint string, query url.Values) (dto.Page, error)
	PostJSON(ctx context.Context, endpoint string, body, out any) error
	PutJSON(ctx context.Context, endpoint string, body, out any) error
	Delete(ctx context.Context, endpoint string) error
	PostForm(ctx context.Context, endpoint string, form Form, out any) error
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := cfg.Upstream.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	log.Info().
		Str("base_url", cfg.Upstream.BaseURL).
		Int("timeout_seconds", timeout).
		Msg("Core API client initialized")

	return &clientImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) GetJSON(ctx context.Context, endpoint string, query url.Values, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetJSON")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, endpoint)

	body, err := c.do(ctx, http.MethodGet, endpoint, query, nil, "")
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decodeFlexible(body, out)
}

func (c *clientImpl) GetPage(ctx context.Context, endpoint string, query url.Values) (page dto.Page, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetPage")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, endpoint)

	body, err := c.do(ctx, http.MethodGet, endpoint, query, nil, "")
	if err != nil {
		return page, err
	}

	// A few listing endpoints skip pagination entirely and answer a bare array.
	if isJSONArray(body) {
		page.CurrentPage = 1
		page.LastPage = 1
		page.Data = body

		return page, nil
	}

	if err = json.Unmarshal(body, &page); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("unexpected page envelope from core api")

		return page, failure.Upstream(http.StatusBadGateway, "unexpected response shape from core api")
	}

	if page.Data == nil {
		page.Data = json.RawMessage("[]")
	}

	return page, nil
}

func (c *clientImpl) PostJSON(ctx context.Context, endpoint string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, endpoint, body, out)
}

func (c *clientImpl) PutJSON(ctx context.Context, endpoint string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, endpoint, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, endpoint string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, endpoint)

	_, err = c.do(ctx, http.MethodDelete, endpoint, nil, nil, "")

	return err
}

func (c *clientImpl) PostForm(ctx context.Context, endpoint string, form Form, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".PostForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, endpoint)

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for field, value := range form.Fields {
		if err = writer.WriteField(field, value); err != nil {
			return failure.InternalError(fmt.Errorf("writing form field %s: %w", field, err))
		}
	}

	if form.SpoofPut {
		if err = writer.WriteField(constant.FormMethodOverride, http.MethodPut); err != nil {
			return failure.InternalError(fmt.Errorf("writing method override: %w", err))
		}
	}

	for _, file := range form.Files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		header.Set(constant.RequestHeaderContentType, file.ContentType)

		part, partErr := writer.CreatePart(header)
		if partErr != nil {
			return failure.InternalError(fmt.Errorf("creating form part %s: %w", file.Field, partErr))
		}

		if _, err = part.Write(file.Data); err != nil {
			return failure.InternalError(fmt.Errorf("writing form part %s: %w", file.Field, err))
		}
	}

	if err = writer.Close(); err != nil {
		return failure.InternalError(fmt.Errorf("closing multipart writer: %w", err))
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, nil, buf, writer.FormDataContentType())
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decodeFlexible(body, out)
}

func (c *clientImpl) sendJSON(ctx context.Context, method, endpoint string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+method)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelEndpointAttributeKey, endpoint)

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return failure.InternalError(fmt.Errorf("marshaling request body: %w", marshalErr))
		}

		reader = bytes.NewReader(payload)
	}

	respBody, err := c.do(ctx, method, endpoint, nil, reader, constant.ContentTypeJSON)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decodeFlexible(respBody, out)
}

func (c *clientImpl) do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	target := strings.TrimRight(c.config.Upstream.BaseURL, "/") + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, failure.InternalError(fmt.Errorf("building request: %w", err))
	}

	if contentType != "" {
		request.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if token, ok := ctx.Value(constant.ContextKeyToken).(string); ok && token != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("core api request failed")

		return nil, failure.UpstreamUnavailable(err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, failure.UpstreamUnavailable(err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		msg := upstreamMessage(respBody)

		log.Error().
			Int("status", response.StatusCode).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("message", msg).
			Msg("core api answered non-2xx")

		return nil, failure.Upstream(response.StatusCode, msg)
	}

	return respBody, nil
}

// decodeFlexible decodes a core API body whose shape varies between a bare value
// and a `{"data": ...}` envelope depending on the endpoint.
func decodeFlexible(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		if err = json.Unmarshal(envelope.Data, out); err == nil {
			return nil
		}
	}

	return failure.Upstream(http.StatusBadGateway, "unexpected response shape from core api")
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) > 0 && trimmed[0] == '['
}

func upstreamMessage(body []byte) string {
	parsed := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}{}

	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}

		if parsed.Error != "" {
			return parsed.Error
		}
	}

	if len(body) > 0 {
		return string(body)
	}

	return "core api request failed"
}

// WithToken returns a context carrying the upstream bearer token for subsequent calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyToken, token)
}
