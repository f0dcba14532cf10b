package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24-часовой)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString строковое представление времени суток в формате "HH:MM".
// Используется на границах API и хранилища вместо time.Time,
// чтобы не тянуть дату и таймзону там, где они не нужны.
type TimeString string

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// FractionalHours возвращает время суток в виде дробного часа,
// например "12:30" -> 12.5. Для некорректного значения возвращает 0.
func (t TimeString) FractionalHours() float64 {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return float64(parsed.Hour()) + float64(parsed.Minute())/60
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.FractionalHours() < other.FractionalHours()
}
