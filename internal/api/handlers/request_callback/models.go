package request_callback

import (
	"github.com/m04kA/SMC-CallbackService/internal/domain"
	requestCallback "github.com/m04kA/SMC-CallbackService/internal/usecase/request_callback"
)

// RequestCallbackRequest HTTP request model
type RequestCallbackRequest struct {
	RequestedAt string `json:"requestedAt"` // "2024-04-02T12:00"
}

// CallbackResponse HTTP response model
type CallbackResponse struct {
	ScheduledAt  string `json:"scheduledAt"`  // Нормализованное время звонка
	Confirmation string `json:"confirmation"` // Человекочитаемое подтверждение
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestCallbackRequest) ToUseCaseRequest() *requestCallback.Request {
	return &requestCallback.Request{
		RequestedAt: r.RequestedAt,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestCallback.Response) *CallbackResponse {
	return &CallbackResponse{
		ScheduledAt:  resp.ScheduledAt.Format(domain.CallbackTimeFormat),
		Confirmation: resp.Confirmation,
	}
}
