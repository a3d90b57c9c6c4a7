package admin

import (
	"net/http"

	"futsal/infras/otel"
	historyService "futsal/internal/domains/history/service"
	"futsal/internal/scheduler"
	"futsal/shared"
	"futsal/shared/constant"
	"futsal/shared/failure"
	"futsal/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	completion scheduler.Completion
	history    historyService.Logger
	otel       otel.Otel
}

func New(completion scheduler.Completion, history historyService.Logger, otel otel.Otel) Handler {
	return Handler{
		completion: completion,
		history:    history,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/auto-complete", handler.TriggerAutoComplete)
		routerGroup.Post("/histories/purge", handler.PurgeHistories)
	})
}

// TriggerAutoComplete runs the auto-completion sweep on demand.
// @Summary Trigger the auto-completion sweep
// @Description Run the same sweep the scheduler runs, recording the triggering admin in the audit summary.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[scheduler.SweepResult] "Sweep result"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auto-complete [post]
// @Security BearerAuth
func (handler *Handler) TriggerAutoComplete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TriggerAutoComplete")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	res, err := handler.completion.Sweep(ctx, &userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run auto-completion sweep")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Auto-completion sweep triggered by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// PurgeHistories removes audit entries past the retention window.
// @Summary Purge old audit entries
// @Description Remove booking histories and payment logs older than the given number of days (defaults to the configured retention).
// @Tags Admin
// @Accept json
// @Produce json
// @Param days query integer false "Retention in days"
// @Success 200 {object} response.Data[dto.PurgeResponse] "Purge result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/histories/purge [post]
// @Security BearerAuth
func (handler *Handler) PurgeHistories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurgeHistories")
	defer scope.End()

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := shared.ConvertStringToInt(daysStr)
		if err != nil || parsed <= 0 {
			response.WithError(w, failure.BadRequestFromString("days must be a positive integer"))

			return
		}

		days = parsed
	}

	res, err := handler.history.PurgeOlderThan(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purge audit entries")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Audit entries purged by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
