package request_callback

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
)

// parseRequestedDate парсит пользовательскую строку даты по заданному layout
// в указанной временной зоне. Зона должна совпадать с зоной текущего времени,
// с которым результат будет сравниваться: обе стороны сравнения живут в одном
// настенном времени. Секунды и доли секунды в layout отсутствуют, поэтому
// результат всегда нормализован до минуты. Невозможные даты (месяц 13,
// час 25, минута 60, день 32) отклоняются самим time.ParseInLocation.
func parseRequestedDate(raw string, layout string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(layout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q, did you use format %s",
			ErrBadDateFormat, raw, domain.CallbackTimeFormatName)
	}
	return parsed, nil
}

// checkAcceptedWindow проверяет, что запрошенное время попадает в окно
// [now + minLeadHours, now + maxLeadHours]. Порядок проверок фиксирован:
// прошлое -> слишком рано -> слишком поздно.
//
// Верхняя граница ослабляется на 1/86400 секунды за каждый нерабочий
// календарный день в диапазоне [date(now), date(requested)] включительно.
// Поправка исторически именно такая - доля секунды, а не целые дни -
// и сохранена без изменений, поведение закреплено тестами.
func checkAcceptedWindow(
	requested time.Time,
	now time.Time,
	minLeadHours float64,
	maxLeadHours float64,
	week *domain.WeekSchedule,
) error {
	deltaSecs := requested.Sub(now).Seconds()

	if deltaSecs < 0 {
		return fmt.Errorf("%w: %s is in the past",
			ErrDateInPast, requested.Format(domain.CallbackTimeFormat))
	}

	if deltaSecs/domain.SecondsPerHour < minLeadHours {
		return fmt.Errorf("%w: %s is too soon, cannot call back within %v hours",
			ErrLeadTimeTooShort, requested.Format(domain.CallbackTimeFormat), minLeadHours)
	}

	nonWorkingDays := countNonWorkingDays(now, requested, week)
	adjustedSecs := deltaSecs - float64(nonWorkingDays)/domain.SecondsPerDay

	if adjustedSecs > maxLeadHours*domain.SecondsPerHour {
		return fmt.Errorf("%w: %s is too late, cannot book a callback more than %d days into the future",
			ErrLeadTimeTooLong, requested.Format(domain.CallbackTimeFormat), int(maxLeadHours/domain.HoursPerDay))
	}

	return nil
}

// checkWorkingHours проверяет, что запрошенное время попадает в рабочие часы.
// Граница закрытия исключающая: запрос ровно во время закрытия отклоняется.
func checkWorkingHours(requested time.Time, week *domain.WeekSchedule) error {
	day := week.ForWeekday(requested.Weekday())
	dayAbbr := requested.Format(domain.DayAbbrFormat)

	if !day.IsOpen {
		return fmt.Errorf("%w: callbacks are unavailable on %s", ErrNonWorkingDay, dayAbbr)
	}

	requestedHour := float64(requested.Hour()) + float64(requested.Minute())/60

	if !day.Contains(requestedHour) {
		return fmt.Errorf("%w: office hours on %s: %s-%s",
			ErrOutsideOfficeHours, dayAbbr, day.OpenTime, day.CloseTime)
	}

	return nil
}

// countNonWorkingDays считает нерабочие календарные дни в диапазоне
// от даты from до даты to включительно (по одной записи на день)
func countNonWorkingDays(from time.Time, to time.Time, week *domain.WeekSchedule) int {
	fromDate := truncateToDate(from)
	toDate := truncateToDate(to)

	count := 0
	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		if !week.ForWeekday(d.Weekday()).IsOpen {
			count++
		}
	}
	return count
}

// truncateToDate обнуляет время, оставляя только календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
