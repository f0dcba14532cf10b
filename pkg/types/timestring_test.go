package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"24:00", "25:00", "12:60", "aa:bb", "noon", ""}
	for _, s := range invalid {
		require.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeString, s)
	}
}

func TestTimeString_FractionalHours(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"00:00", 0},
		{"09:00", 9.0},
		{"12:30", 12.5},
		{"18:45", 18.75},
		{"23:59", 23 + 59.0/60},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, TimeString(tt.value).FractionalHours(), 1e-9, tt.value)
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_String(t *testing.T) {
	assert.Equal(t, "18:30", TimeString("18:30").String())
}
