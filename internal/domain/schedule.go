package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallbackService/pkg/types"
)

// DaySchedule represents office hours for a single weekday.
// A closed day carries IsOpen == false and empty times, so a half-configured
// day (open time without close time) is not representable.
type DaySchedule struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Open constructs an open-day schedule
func Open(openTime, closeTime types.TimeString) DaySchedule {
	return DaySchedule{IsOpen: true, OpenTime: openTime, CloseTime: closeTime}
}

// Closed constructs a non-working-day schedule
func Closed() DaySchedule {
	return DaySchedule{IsOpen: false}
}

// Contains returns true if the fractional hour of day lies inside the
// open interval. The closing boundary is exclusive: a request exactly at
// closing time is outside office hours.
func (d DaySchedule) Contains(fractionalHour float64) bool {
	if !d.IsOpen {
		return false
	}
	return fractionalHour >= d.OpenTime.FractionalHours() &&
		fractionalHour < d.CloseTime.FractionalHours()
}

// Validate checks the invariants of a single day schedule
func (d DaySchedule) Validate() error {
	if !d.IsOpen {
		return nil
	}
	if err := d.OpenTime.Validate(); err != nil {
		return fmt.Errorf("open time: %w", err)
	}
	if err := d.CloseTime.Validate(); err != nil {
		return fmt.Errorf("close time: %w", err)
	}
	if !d.OpenTime.IsBefore(d.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", d.OpenTime, d.CloseTime)
	}
	return nil
}

// WeekSchedule represents the office-hours table for a full week
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// DefaultWeekSchedule returns the standard call-centre office hours:
// Mon-Wed 09:00-18:00, Thu-Fri 09:00-20:00, Sat 09:00-12:30, Sun closed
func DefaultWeekSchedule() *WeekSchedule {
	return &WeekSchedule{
		Monday:    Open("09:00", "18:00"),
		Tuesday:   Open("09:00", "18:00"),
		Wednesday: Open("09:00", "18:00"),
		Thursday:  Open("09:00", "20:00"),
		Friday:    Open("09:00", "20:00"),
		Saturday:  Open("09:00", "12:30"),
		Sunday:    Closed(),
	}
}

// ForWeekday returns the schedule configured for the given weekday
func (w *WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return Closed()
	}
}

// SetForWeekday replaces the schedule for the given weekday
func (w *WeekSchedule) SetForWeekday(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	case time.Sunday:
		w.Sunday = day
	}
}

// Validate checks the invariants of every day in the week
func (w *WeekSchedule) Validate() error {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if err := w.ForWeekday(wd).Validate(); err != nil {
			return fmt.Errorf("%s: %w", wd, err)
		}
	}
	return nil
}

// HasWorkingDay returns true if at least one weekday is open
func (w *WeekSchedule) HasWorkingDay() bool {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if w.ForWeekday(wd).IsOpen {
			return true
		}
	}
	return false
}
