package request_callback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
)

// 2024-01-01 - понедельник
var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func allClosedWeek() *domain.WeekSchedule {
	return &domain.WeekSchedule{}
}

func TestParseRequestedDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		parsed, err := parseRequestedDate("2024-04-02T12:00", domain.CallbackTimeFormat, time.UTC)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC), parsed)
		assert.Zero(t, parsed.Second())
		assert.Zero(t, parsed.Nanosecond())
	})

	t.Run("parsing is idempotent", func(t *testing.T) {
		first, err := parseRequestedDate("2024-04-02T12:00", domain.CallbackTimeFormat, time.UTC)
		require.NoError(t, err)

		second, err := parseRequestedDate("2024-04-02T12:00", domain.CallbackTimeFormat, time.UTC)
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
	})

	t.Run("parses as wall clock of the supplied location", func(t *testing.T) {
		loc := time.FixedZone("UTC-6", -6*3600)

		parsed, err := parseRequestedDate("2024-01-01T12:00", domain.CallbackTimeFormat, loc)

		require.NoError(t, err)
		assert.True(t, parsed.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, loc)))
		// Один и тот же текст в разных зонах - разные моменты времени
		assert.False(t, parsed.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"impossible date and time", "2025-01-32T25:60"},
			{"impossible calendar date", "2024-02-30T10:00"},
			{"wrong separator", "2024-04-02 12:00"},
			{"wrong field order", "02-04-2024T12:00"},
			{"with seconds", "2024-04-02T12:00:30"},
			{"empty string", ""},
			{"garbage", "next tuesday"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parseRequestedDate(tt.raw, domain.CallbackTimeFormat, time.UTC)

				require.ErrorIs(t, err, ErrBadDateFormat)
				// Сообщение называет ожидаемый формат
				assert.Contains(t, err.Error(), domain.CallbackTimeFormatName)
			})
		}
	})
}

func TestCheckAcceptedWindow(t *testing.T) {
	week := domain.DefaultWeekSchedule()

	t.Run("requested time in the past", func(t *testing.T) {
		requested := time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		require.ErrorIs(t, err, ErrDateInPast)
		assert.Contains(t, err.Error(), "2023-12-31T09:00")
		assert.Contains(t, err.Error(), "past")
	})

	t.Run("exactly min lead hours passes", func(t *testing.T) {
		// Граница минимума включающая
		requested := testNow.Add(2 * time.Hour)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		assert.NoError(t, err)
	})

	t.Run("one second less than min lead fails", func(t *testing.T) {
		requested := testNow.Add(2*time.Hour - time.Second)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		require.ErrorIs(t, err, ErrLeadTimeTooShort)
		assert.Contains(t, err.Error(), "too soon")
	})

	t.Run("far future fails mentioning 6 days", func(t *testing.T) {
		requested := time.Date(2050, 1, 1, 9, 0, 0, 0, time.UTC)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		require.ErrorIs(t, err, ErrLeadTimeTooLong)
		assert.Contains(t, err.Error(), "6 days")
	})

	t.Run("exactly max lead hours passes", func(t *testing.T) {
		// Пн 12:00 + 144h = Вс 12:00; поправка за нерабочее воскресенье
		// уводит скорректированную дельту чуть ниже границы
		requested := testNow.Add(144 * time.Hour)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		assert.NoError(t, err)
	})

	t.Run("one second over max lead fails", func(t *testing.T) {
		requested := testNow.Add(144*time.Hour + time.Second)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		require.ErrorIs(t, err, ErrLeadTimeTooLong)
	})

	t.Run("non-working day adjustment is fractional, not whole days", func(t *testing.T) {
		// Если бы за каждый нерабочий день вычитались целые сутки,
		// неделя закрытых дней простила бы лишнюю секунду с запасом.
		// Вычитается 7/86400 секунды - запрос все равно отклоняется.
		requested := testNow.Add(144*time.Hour + time.Second)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, allClosedWeek())

		require.ErrorIs(t, err, ErrLeadTimeTooLong)
	})

	t.Run("past check runs before lead time checks", func(t *testing.T) {
		requested := testNow.Add(-time.Second)

		err := checkAcceptedWindow(requested, testNow, 2.0, 144.0, week)

		require.ErrorIs(t, err, ErrDateInPast)
		assert.NotErrorIs(t, err, ErrLeadTimeTooShort)
	})
}

func TestCountNonWorkingDays(t *testing.T) {
	week := domain.DefaultWeekSchedule()

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "two weeks span two sundays",
			from: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),  // Пн
			to:   time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC), // Вс
			want: 2,
		},
		{
			name: "same working day",
			from: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same non-working day counts once",
			from: time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC), // Вс
			to:   time.Date(2024, 1, 7, 18, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "monday to sunday inclusive",
			from: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countNonWorkingDays(tt.from, tt.to, week))
		})
	}
}

func TestCheckWorkingHours(t *testing.T) {
	week := domain.DefaultWeekSchedule()

	t.Run("non-working day", func(t *testing.T) {
		requested := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC) // Вс

		err := checkWorkingHours(requested, week)

		require.ErrorIs(t, err, ErrNonWorkingDay)
		assert.Contains(t, err.Error(), "Sun")
	})

	t.Run("exactly at closing time is rejected", func(t *testing.T) {
		// Граница закрытия исключающая
		requested := time.Date(2024, 1, 6, 12, 30, 0, 0, time.UTC) // Сб

		err := checkWorkingHours(requested, week)

		require.ErrorIs(t, err, ErrOutsideOfficeHours)
		assert.Contains(t, err.Error(), "09:00")
		assert.Contains(t, err.Error(), "12:30")
	})

	t.Run("one minute before closing passes", func(t *testing.T) {
		requested := time.Date(2024, 1, 6, 12, 29, 0, 0, time.UTC) // Сб

		assert.NoError(t, checkWorkingHours(requested, week))
	})

	t.Run("exactly at opening time passes", func(t *testing.T) {
		requested := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) // Пн

		assert.NoError(t, checkWorkingHours(requested, week))
	})

	t.Run("before opening is rejected", func(t *testing.T) {
		requested := time.Date(2024, 1, 1, 8, 59, 0, 0, time.UTC) // Пн

		require.ErrorIs(t, checkWorkingHours(requested, week), ErrOutsideOfficeHours)
	})

	t.Run("monday closes at 18:00", func(t *testing.T) {
		requested := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

		require.ErrorIs(t, checkWorkingHours(requested, week), ErrOutsideOfficeHours)
	})

	t.Run("thursday is open until 20:00", func(t *testing.T) {
		requested := time.Date(2024, 1, 4, 19, 59, 0, 0, time.UTC) // Чт

		assert.NoError(t, checkWorkingHours(requested, week))
	})
}
