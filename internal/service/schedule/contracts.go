package schedule

import (
	"context"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания офиса
type ScheduleRepository interface {
	GetWeek(ctx context.Context) (*domain.WeekSchedule, error)
	ReplaceWeek(ctx context.Context, week *domain.WeekSchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
