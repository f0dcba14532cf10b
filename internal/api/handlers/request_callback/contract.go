package request_callback

import (
	"context"

	requestCallback "github.com/m04kA/SMC-CallbackService/internal/usecase/request_callback"
)

type RequestCallbackUseCase interface {
	Execute(ctx context.Context, req *requestCallback.Request) (*requestCallback.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
