package field

import (
	"net/http"

	"futsal/infras/otel"
	"futsal/internal/domains/field/model"
	"futsal/internal/domains/field/model/dto"
	"futsal/internal/domains/field/service"
	"futsal/shared"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/validator"
	"futsal/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Field
	otel    otel.Otel
}

func New(service service.Field, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fields", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateField)
		routerGroup.Get("/", handler.GetFields)
		routerGroup.Get("/{id}", handler.GetFieldByID)
		routerGroup.Patch("/{id}", handler.UpdateField)
		routerGroup.Delete("/{id}", handler.DeleteField)
	})
}

// CreateField handles the creation of a new futsal field.
// @Summary Create a new field
// @Description Create a new futsal field with the provided details.
// @Tags Field
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Field name"
// @Param description formData string false "Field description"
// @Param field_type formData string true "Field surface type (synthetic, vinyl, parquette)"
// @Param hourly_rate formData number true "Hourly rate"
// @Param active formData boolean false "Field active status"
// @Param photo formData file false "Field photo"
// @Success 201 {object} response.Message "Field created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields [post]
// @Security BearerAuth
func (handler *Handler) CreateField(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateField")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateFieldRequest{
		Name:        request.FormValue("name"),
		Description: request.FormValue("description"),
		FieldType:   request.FormValue("field_type"),
	}

	if rateStr := request.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = rate
		}
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create field")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Field created successfully")
}

// GetFields retrieves all fields based on query parameters.
// @Summary Get all fields
// @Description Retrieve all fields with optional filtering and pagination.
// @Tags Field
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param field_type query string false "Filter by surface type"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.FieldResponse] "List of fields"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields [get]
func (handler *Handler) GetFields(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFields")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	fieldType := r.URL.Query().Get(model.FieldType)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if fieldType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    fieldType,
			Table:    model.TableName,
		})
	}

	if activeValue := shared.ConvertStringToBool(active); activeValue != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *activeValue,
			Table:    model.TableName,
		})
	}

	fields, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fields")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Fields retrieved successfully")

	response.WithJSON(w, http.StatusOK, fields)
}

// GetFieldByID retrieves a field by its ID.
// @Summary Get a field by ID
// @Description Retrieve a field by its unique identifier.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[dto.FieldResponse] "Field details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [get]
func (handler *Handler) GetFieldByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFieldByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	field, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get field by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Field retrieved successfully")

	response.WithJSON(w, http.StatusOK, field)
}

// UpdateField updates an existing field by its ID.
// @Summary Update a field by ID
// @Description Update the details of an existing field.
// @Tags Field
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Field ID"
// @Param name formData string false "Field name"
// @Param description formData string false "Field description"
// @Param field_type formData string false "Field surface type"
// @Param hourly_rate formData number false "Hourly rate"
// @Param active formData boolean false "Field active status"
// @Param photo formData file false "Field photo"
// @Success 200 {object} response.Message "Field updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateFieldRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		FieldType:   r.FormValue("field_type"),
	}

	if rateStr := r.FormValue("hourly_rate"); rateStr != "" {
		if rate, err := shared.ConvertStringToFloat(rateStr); err == nil {
			req.HourlyRate = &rate
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field updated successfully")
}

// DeleteField deletes a field by its ID.
// @Summary Delete a field by ID
// @Description Delete a field using its unique identifier.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Message "Field deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field deleted successfully")
}
