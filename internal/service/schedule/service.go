package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CallbackService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-CallbackService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием офиса
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает действующее расписание недели.
// Публичный метод - доступен всем.
// Если расписание не настроено, возвращает стандартные рабочие часы
// с флагом isDefault.
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching week schedule")

	week, err := s.scheduleRepo.GetWeek(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetSchedule: no schedule configured, returning default office hours")
			return models.FromDomainWeek(domain.DefaultWeekSchedule(), true), nil
		}
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched schedule")
	return models.FromDomainWeek(week, false), nil
}

// Replace полностью заменяет расписание недели.
// Доступно только аутентифицированным операторам (X-User-ID).
// Замена выполняется атомарно в сериализуемой транзакции.
func (s *Service) Replace(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: replacing week schedule by user=%d", req.UserID)

	week := req.ToDomainWeek()

	// 1. Валидируем расписание (формат времени, открытие раньше закрытия)
	if err := week.Validate(); err != nil {
		s.logger.Warn("ReplaceSchedule: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 2. Расписание без единого рабочего дня сделало бы все запросы
	// на обратный звонок невыполнимыми
	if !week.HasWorkingDay() {
		s.logger.Warn("ReplaceSchedule: schedule has no working days")
		return nil, ErrNoWorkingDays
	}

	// 3. Заменяем расписание атомарно (delete + insert в одной транзакции)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceWeek(txCtx, week)
	})
	if err != nil {
		s.logger.Error("ReplaceSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSchedule: successfully replaced schedule by user=%d", req.UserID)
	return models.FromDomainWeek(week, false), nil
}
