package activity

import (
	"net/http"

	"campusbook/infras/otel"
	"campusbook/internal/domains/activity/model"
	"campusbook/internal/domains/activity/service"
	"campusbook/policy"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/transport/http/middleware"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
	auth    middleware.Auth
}

func New(service service.Activity, otel otel.Otel, auth middleware.Auth) Handler {
	return Handler{
		service: service,
		otel:    otel,
		auth:    auth,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user-activities", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Require)
		routerGroup.Get("/", handler.GetActivities)
	})
}

// GetActivities retrieves the login/logout history.
// @Summary Get user activity records
// @Description Retrieve login and logout sessions with optional filtering and pagination. Staff only.
// @Tags Activity
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse] "List of activities"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user-activities [get]
// @Security BearerAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if userID := r.URL.Query().Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	activities, err := handler.service.GetAll(ctx, policy.FromContext(ctx), queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user activities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User activities retrieved successfully")

	response.WithJSON(w, http.StatusOK, activities)
}
