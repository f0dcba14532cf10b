package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание офиса не настроено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrInvalidWeekday возвращается при некорректном номере дня недели в БД
	ErrInvalidWeekday = errors.New("schedule.repository: invalid weekday value")
)
