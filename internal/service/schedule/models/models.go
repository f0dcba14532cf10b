package models

import (
	"time"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
	"github.com/m04kA/SMC-CallbackService/pkg/ptr"
	"github.com/m04kA/SMC-CallbackService/pkg/types"
)

// Request модели

// DayScheduleModel расписание одного дня недели.
// Для закрытого дня isOpen=false, время открытия/закрытия отсутствует.
type DayScheduleModel struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00"
	CloseTime *string `json:"closeTime,omitempty"` // "18:00"
}

// ReplaceScheduleRequest запрос на полную замену расписания недели
type ReplaceScheduleRequest struct {
	UserID    int64            `json:"-"` // Из заголовка X-User-ID
	Monday    DayScheduleModel `json:"monday"`
	Tuesday   DayScheduleModel `json:"tuesday"`
	Wednesday DayScheduleModel `json:"wednesday"`
	Thursday  DayScheduleModel `json:"thursday"`
	Friday    DayScheduleModel `json:"friday"`
	Saturday  DayScheduleModel `json:"saturday"`
	Sunday    DayScheduleModel `json:"sunday"`
}

// Response модели

// ScheduleResponse ответ с расписанием недели
type ScheduleResponse struct {
	Monday    DayScheduleModel `json:"monday"`
	Tuesday   DayScheduleModel `json:"tuesday"`
	Wednesday DayScheduleModel `json:"wednesday"`
	Thursday  DayScheduleModel `json:"thursday"`
	Friday    DayScheduleModel `json:"friday"`
	Saturday  DayScheduleModel `json:"saturday"`
	Sunday    DayScheduleModel `json:"sunday"`

	// IsDefault true, если расписание не настроено и возвращены
	// стандартные рабочие часы
	IsDefault bool `json:"isDefault"`
}

// Методы конвертации

// FromDomainDay конвертирует domain модель дня в DTO
func FromDomainDay(d domain.DaySchedule) DayScheduleModel {
	if !d.IsOpen {
		return DayScheduleModel{IsOpen: false}
	}
	return DayScheduleModel{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(d.OpenTime.String()),
		CloseTime: ptr.Ptr(d.CloseTime.String()),
	}
}

// ToDomainDay конвертирует DTO в domain модель дня
func (m DayScheduleModel) ToDomainDay() domain.DaySchedule {
	if !m.IsOpen || m.OpenTime == nil || m.CloseTime == nil {
		return domain.Closed()
	}
	return domain.Open(types.TimeString(*m.OpenTime), types.TimeString(*m.CloseTime))
}

// FromDomainWeek конвертирует domain модель недели в DTO
func FromDomainWeek(w *domain.WeekSchedule, isDefault bool) *ScheduleResponse {
	return &ScheduleResponse{
		Monday:    FromDomainDay(w.Monday),
		Tuesday:   FromDomainDay(w.Tuesday),
		Wednesday: FromDomainDay(w.Wednesday),
		Thursday:  FromDomainDay(w.Thursday),
		Friday:    FromDomainDay(w.Friday),
		Saturday:  FromDomainDay(w.Saturday),
		Sunday:    FromDomainDay(w.Sunday),
		IsDefault: isDefault,
	}
}

// ToDomainWeek конвертирует ReplaceScheduleRequest в domain модель недели
func (r *ReplaceScheduleRequest) ToDomainWeek() *domain.WeekSchedule {
	week := &domain.WeekSchedule{}
	week.SetForWeekday(time.Monday, r.Monday.ToDomainDay())
	week.SetForWeekday(time.Tuesday, r.Tuesday.ToDomainDay())
	week.SetForWeekday(time.Wednesday, r.Wednesday.ToDomainDay())
	week.SetForWeekday(time.Thursday, r.Thursday.ToDomainDay())
	week.SetForWeekday(time.Friday, r.Friday.ToDomainDay())
	week.SetForWeekday(time.Saturday, r.Saturday.ToDomainDay())
	week.SetForWeekday(time.Sunday, r.Sunday.ToDomainDay())
	return week
}
