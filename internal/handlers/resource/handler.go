package resource

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/model/dto"
	"campusbook/internal/domains/resource/service"
	"campusbook/policy"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/validator"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Resource
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Resource, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		// Reads are open to anonymous callers.
		routerGroup.Group(func(public chi.Router) {
			public.Use(handler.auth.Optional)
			public.Get("/", handler.GetResources)
			public.Get("/{id}", handler.GetResourceByID)
		})

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.Require)
			protected.Post("/", handler.CreateResource)
			protected.Patch("/{id}", handler.UpdateResource)
			protected.Delete("/{id}", handler.DeleteResource)
		})
	})
}

// CreateResource handles the creation of a new resource.
// @Summary Create a new resource
// @Description Create a bookable resource. Staff only.
// @Tags Resource
// @Accept json
// @Produce json
// @Param request body dto.CreateResourceRequest true "Resource details"
// @Success 201 {object} response.Data[dto.ResourceResponse] "Resource created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources [post]
// @Security BearerAuth
func (handler *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResource")
	defer scope.End()

	var req dto.CreateResourceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	resource, err := handler.service.Create(ctx, policy.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resource")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, resource)
}

// GetResources retrieves all resources based on query parameters.
// @Summary Get all resources
// @Description Retrieve all resources with optional filtering and pagination. No authentication required.
// @Tags Resource
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetResourcesResponse] "List of resources"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources [get]
func (handler *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if resourceType := r.URL.Query().Get(model.FieldType); resourceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceType,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	resources, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resources")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resources retrieved successfully")

	response.WithJSON(w, http.StatusOK, resources)
}

// GetResourceByID retrieves a resource by its ID.
// @Summary Get a resource by ID
// @Description Retrieve a resource by its unique identifier. No authentication required.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resource details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [get]
func (handler *Handler) GetResourceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	resource, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resource by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resource retrieved successfully")

	response.WithJSON(w, http.StatusOK, resource)
}

// UpdateResource updates an existing resource by its ID.
// @Summary Update a resource by ID
// @Description Update the details of an existing resource. Staff only.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} response.Message "Resource updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResource")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateResourceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, policy.FromContext(ctx), req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resource")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Resource updated successfully")
}

// DeleteResource deletes a resource by its ID.
// @Summary Delete a resource by ID
// @Description Delete a resource and its bookings. Staff only.
// @Tags Resource
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Message "Resource deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResource")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, policy.FromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resource")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Resource deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Resource deleted successfully")
}
