package request_callback

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CallbackService/internal/api/handlers"
	requestCallback "github.com/m04kA/SMC-CallbackService/internal/usecase/request_callback"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase RequestCallbackUseCase
	logger  Logger
}

func NewHandler(useCase RequestCallbackUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/callbacks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestCallbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /callbacks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Все ошибки валидации - клиентские, повтор без нового ввода
		// не изменит результат; сообщение прокидывается как есть,
		// оно содержит отклоненное значение
		switch {
		case errors.Is(err, requestCallback.ErrBadDateFormat),
			errors.Is(err, requestCallback.ErrDateInPast),
			errors.Is(err, requestCallback.ErrLeadTimeTooShort),
			errors.Is(err, requestCallback.ErrLeadTimeTooLong),
			errors.Is(err, requestCallback.ErrNonWorkingDay),
			errors.Is(err, requestCallback.ErrOutsideOfficeHours):
			h.logger.Warn("POST /callbacks - Validation failed: requested_at=%q, error=%v",
				req.RequestedAt, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /callbacks - Failed to process request: requested_at=%q, error=%v",
				req.RequestedAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /callbacks - Callback scheduled: scheduled_at=%s", result.ScheduledAt)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
