package request_callback

import "errors"

var (
	// ErrBadDateFormat возвращается, когда строка даты не соответствует формату
	// или кодирует невозможную дату (месяц 13, час 25 и т.п.)
	ErrBadDateFormat = errors.New("request_callback: bad date format")

	// ErrDateInPast возвращается, когда запрошенное время уже прошло
	ErrDateInPast = errors.New("request_callback: requested time is in the past")

	// ErrLeadTimeTooShort возвращается, когда до запрошенного времени осталось
	// меньше минимального интервала
	ErrLeadTimeTooShort = errors.New("request_callback: lead time too short")

	// ErrLeadTimeTooLong возвращается, когда запрошенное время дальше
	// максимального горизонта планирования
	ErrLeadTimeTooLong = errors.New("request_callback: lead time too long")

	// ErrNonWorkingDay возвращается, когда запрошенный день - нерабочий
	ErrNonWorkingDay = errors.New("request_callback: non-working day")

	// ErrOutsideOfficeHours возвращается, когда запрошенное время вне рабочих часов
	ErrOutsideOfficeHours = errors.New("request_callback: outside office hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_callback: internal error")
)
