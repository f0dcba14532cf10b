package request_callback

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CallbackService/internal/infra/storage/schedule"
)

// UseCase use case валидации запроса на обратный звонок.
// Не хранит состояния между вызовами: текущее время читается заново
// на каждый запрос через TimeProvider, поэтому один экземпляр безопасно
// использовать из нескольких HTTP запросов одновременно.
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
	minLeadHours float64
	maxLeadHours float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	logger Logger,
	minLeadHours float64,
	maxLeadHours float64,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		minLeadHours: minLeadHours,
		maxLeadHours: maxLeadHours,
	}
}

// Execute выполняет валидацию запроса на обратный звонок.
// Последовательность фиксирована: парсинг -> окно приема -> рабочие часы;
// первая неудавшаяся проверка прерывает обработку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestCallback: requested_at=%q", req.RequestedAt)

	// 1. Читаем текущее время один раз на запрос
	now := uc.timeProvider.Now()

	// 2. Парсим строку даты в зоне текущего времени (до обращения к БД -
	// короткое замыкание). Парсинг в той же зоне гарантирует, что запрошенное
	// и текущее время сравниваются как одно настенное время независимо от
	// часового пояса сервера
	scheduled, err := parseRequestedDate(req.RequestedAt, domain.CallbackTimeFormat, now.Location())
	if err != nil {
		uc.logger.Warn("RequestCallback: parsing failed: %v", err)
		return nil, err
	}

	// 3. Загружаем расписание офиса; если оно не настроено,
	// используем стандартные рабочие часы
	week, err := uc.scheduleRepo.GetWeek(ctx)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("RequestCallback: failed to load schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}
		week = domain.DefaultWeekSchedule()
		uc.logger.Info("RequestCallback: no schedule configured, using default office hours")
	}

	// 4. Проверяем окно приема (прошлое / слишком рано / слишком поздно)
	if err := checkAcceptedWindow(scheduled, now, uc.minLeadHours, uc.maxLeadHours, week); err != nil {
		uc.logger.Warn("RequestCallback: window check failed: %v", err)
		return nil, err
	}

	// 5. Проверяем рабочие часы (нерабочий день / вне рабочих часов)
	if err := checkWorkingHours(scheduled, week); err != nil {
		uc.logger.Warn("RequestCallback: working hours check failed: %v", err)
		return nil, err
	}

	// 6. Подтверждение содержит исходный текст запроса
	confirmation := fmt.Sprintf("Your appointment is booked for %s", req.RequestedAt)
	uc.logger.Info("RequestCallback: accepted, scheduled_at=%s",
		scheduled.Format(domain.CallbackTimeFormat))

	return &Response{
		ScheduledAt:  scheduled,
		Confirmation: confirmation,
	}, nil
}
