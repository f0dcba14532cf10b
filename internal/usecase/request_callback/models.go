package request_callback

import "time"

// Request модель запроса на обратный звонок
type Request struct {
	RequestedAt string // Запрошенные дата и время в формате YYYY-MM-DDTHH:mm
}

// Response модель ответа с подтвержденным временем звонка
type Response struct {
	ScheduledAt  time.Time // Нормализованное время звонка (секунды обнулены)
	Confirmation string    // Человекочитаемое подтверждение с исходным текстом запроса
}
