package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

func TestParseTimeOfDaySuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		seconds  int
	}{
		{name: "hours and minutes", input: "09:30", expected: "09:30:00", seconds: 9*3600 + 30*60},
		{name: "with seconds", input: "21:30:15", expected: "21:30:15", seconds: 21*3600 + 30*60 + 15},
		{name: "midnight", input: "00:00", expected: "00:00:00", seconds: 0},
		{name: "last second", input: "23:59:59", expected: "23:59:59", seconds: 86399},
		{name: "surrounding spaces", input: " 07:05 ", expected: "07:05:00", seconds: 7*3600 + 5*60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := domain.ParseTimeOfDay(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tod.String())
			assert.Equal(t, tt.seconds, tod.Seconds())
		})
	}
}

func TestParseTimeOfDayError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "hour out of range", input: "24:00"},
		{name: "minute out of range", input: "10:60"},
		{name: "fractional seconds", input: "10:00:00.5"},
		{name: "not a time", input: "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseTimeOfDay(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidTimeOfDay)
		})
	}
}

func TestTimeOfDayFromSeconds(t *testing.T) {
	tod, err := domain.TimeOfDayFromSeconds(3661)
	assert.NoError(t, err)
	assert.Equal(t, 1, tod.Hour())
	assert.Equal(t, 1, tod.Minute())
	assert.Equal(t, 1, tod.Second())

	_, err = domain.TimeOfDayFromSeconds(86400)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeOfDay)

	_, err = domain.TimeOfDayFromSeconds(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeOfDay)
}

func TestTimeOfDayOfTruncatesToSecond(t *testing.T) {
	moment := time.Date(2025, 1, 1, 21, 30, 5, 999_000_000, time.UTC)

	assert.Equal(t, domain.MustTimeOfDay(21, 30, 5), domain.TimeOfDayOf(moment))
}
