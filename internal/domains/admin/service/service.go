package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"

	"tripgate/infras/coreapi"
	"tripgate/infras/otel"
	"tripgate/shared/constant"
	sharedDTO "tripgate/shared/dto"
	"tripgate/shared/failure"
)

// Resource describes one upstream collection the dashboard manages.
type Resource struct {
	Name      string
	Endpoint  string
	ReadOnly  bool
	Multipart bool
	SpoofPut  bool
}

// registry maps the URL segment the dashboard uses to the upstream endpoint.
// Photo-bearing resources accept multipart bodies; their updates go out as
// POST with a _method=PUT override because the upstream parses multipart on
// POST only. Payments are read-only here.
var registry = map[string]Resource{
	"admins":           {Name: "admins", Endpoint: coreapi.EndpointAdmins},
	"hotels":           {Name: "hotels", Endpoint: coreapi.EndpointHotels, Multipart: true, SpoofPut: true},
	"rooms":            {Name: "rooms", Endpoint: coreapi.EndpointRooms, Multipart: true, SpoofPut: true},
	"apartments":       {Name: "apartments", Endpoint: coreapi.EndpointApartments, Multipart: true, SpoofPut: true},
	"apartment-owners": {Name: "apartment-owners", Endpoint: coreapi.EndpointApartmentOwners},
	"buses":            {Name: "buses", Endpoint: coreapi.EndpointBuses},
	"seat-types":       {Name: "seat-types", Endpoint: coreapi.EndpointSeatTypes},
	"agencies":         {Name: "agencies", Endpoint: coreapi.EndpointAgencies},
	"journeys":         {Name: "journeys", Endpoint: coreapi.EndpointJourneys},
	"retreats":         {Name: "retreats", Endpoint: coreapi.EndpointRetreats, Multipart: true, SpoofPut: true},
	"exchange-rates":   {Name: "exchange-rates", Endpoint: coreapi.EndpointAdminRates},
	"payments":         {Name: "payments", Endpoint: coreapi.EndpointPayments, ReadOnly: true},
	"photos":           {Name: "photos", Endpoint: coreapi.EndpointPhotos, Multipart: true},
}

// Admin proxies dashboard CRUD onto the core API. The gateway adds nothing of
// its own to these resources beyond the session check and uniform errors, so
// bodies pass through as raw JSON.
type Admin interface {
	Resource(name string) (Resource, error)
	List(ctx context.Context, resource string, query url.Values) (sharedDTO.Page, error)
	Detail(ctx context.Context, resource, id string) (json.RawMessage, error)
	Create(ctx context.Context, resource string, body json.RawMessage) (json.RawMessage, error)
	CreateForm(ctx context.Context, resource string, form coreapi.Form) (json.RawMessage, error)
	Update(ctx context.Context, resource, id string, body json.RawMessage) (json.RawMessage, error)
	UpdateForm(ctx context.Context, resource, id string, form coreapi.Form) (json.RawMessage, error)
	Delete(ctx context.Context, resource, id string) error
}

type serviceImpl struct {
	client coreapi.Client
	otel   otel.Otel
}

func New(client coreapi.Client, otel otel.Otel) Admin {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

func (s *serviceImpl) Resource(name string) (Resource, error) {
	resource, ok := registry[name]
	if !ok {
		return Resource{}, failure.NotFound("resource " + name) // nolint:wrapcheck
	}

	return resource, nil
}

func (s *serviceImpl) writable(name string) (Resource, error) {
	resource, err := s.Resource(name)
	if err != nil {
		return Resource{}, err
	}

	if resource.ReadOnly {
		return Resource{}, failure.Forbidden("resource " + name + " is read-only") // nolint:wrapcheck
	}

	return resource, nil
}

func (s *serviceImpl) List(ctx context.Context, resource string, query url.Values) (page sharedDTO.Page, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminList")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.Resource(resource)
	if err != nil {
		return page, err
	}

	page, err = s.client.GetPage(ctx, res.Endpoint, query)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("failed to list resource")

		return page, err
	}

	return page, nil
}

func (s *serviceImpl) Detail(ctx context.Context, resource, id string) (out json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.Resource(resource)
	if err != nil {
		return nil, err
	}

	err = s.client.GetJSON(ctx, res.Endpoint+"/"+id, nil, &out)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Str("id", id).Msg("failed to fetch resource")

		return nil, err
	}

	return out, nil
}

func (s *serviceImpl) Create(ctx context.Context, resource string, body json.RawMessage) (out json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.writable(resource)
	if err != nil {
		return nil, err
	}

	err = s.client.PostJSON(ctx, res.Endpoint, body, &out)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("failed to create resource")

		return nil, err
	}

	return out, nil
}

func (s *serviceImpl) CreateForm(ctx context.Context, resource string, form coreapi.Form) (out json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminCreateForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.writable(resource)
	if err != nil {
		return nil, err
	}

	if !res.Multipart {
		return nil, failure.BadRequestFromString("resource " + resource + " does not accept multipart bodies") // nolint:wrapcheck
	}

	form.SpoofPut = false

	err = s.client.PostForm(ctx, res.Endpoint, form, &out)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("failed to create resource")

		return nil, err
	}

	return out, nil
}

func (s *serviceImpl) Update(ctx context.Context, resource, id string, body json.RawMessage) (out json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.writable(resource)
	if err != nil {
		return nil, err
	}

	err = s.client.PutJSON(ctx, res.Endpoint+"/"+id, body, &out)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Str("id", id).Msg("failed to update resource")

		return nil, err
	}

	return out, nil
}

// UpdateForm sends a multipart update. Where the upstream only parses multipart
// bodies on POST, the request goes out as POST with a _method=PUT field.
func (s *serviceImpl) UpdateForm(ctx context.Context, resource, id string, form coreapi.Form) (out json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminUpdateForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.writable(resource)
	if err != nil {
		return nil, err
	}

	if !res.Multipart {
		return nil, failure.BadRequestFromString("resource " + resource + " does not accept multipart bodies") // nolint:wrapcheck
	}

	form.SpoofPut = res.SpoofPut

	err = s.client.PostForm(ctx, res.Endpoint+"/"+id, form, &out)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Str("id", id).Msg("failed to update resource")

		return nil, err
	}

	return out, nil
}

func (s *serviceImpl) Delete(ctx context.Context, resource, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.writable(resource)
	if err != nil {
		return err
	}

	err = s.client.Delete(ctx, res.Endpoint+"/"+id)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Str("id", id).Msg("failed to delete resource")

		return err
	}

	return nil
}
