package schedule

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректном расписании
	// (неверный формат времени, открытие позже закрытия)
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrNoWorkingDays возвращается при попытке сохранить расписание
	// без единого рабочего дня
	ErrNoWorkingDays = errors.New("schedule has no working days")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
