package request_callback

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания офиса
type ScheduleRepository interface {
	GetWeek(ctx context.Context) (*domain.WeekSchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
