package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallbackService/internal/api/handlers"
	"github.com/m04kA/SMC-CallbackService/internal/api/middleware"
	"github.com/m04kA/SMC-CallbackService/internal/service/schedule"
	"github.com/m04kA/SMC-CallbackService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgNoWorkingDays      = "расписание должно содержать хотя бы один рабочий день"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule
// Защищенный endpoint - требует заголовок X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /schedule - Invalid schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, schedule.ErrNoWorkingDays):
			h.logger.Warn("PUT /schedule - No working days: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoWorkingDays)

		default:
			h.logger.Error("PUT /schedule - Failed to replace schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule replaced successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
