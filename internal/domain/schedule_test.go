package domain_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

func TestWeeklyDays(t *testing.T) {
	tests := []struct {
		name     string
		input    []time.Weekday
		expected []time.Weekday
	}{
		{
			name:     "sorted monday first",
			input:    []time.Weekday{time.Sunday, time.Friday, time.Monday},
			expected: []time.Weekday{time.Monday, time.Friday, time.Sunday},
		},
		{
			name:     "duplicates collapse",
			input:    []time.Weekday{time.Tuesday, time.Tuesday},
			expected: []time.Weekday{time.Tuesday},
		},
		{
			name:     "out of range weekdays are ignored",
			input:    []time.Weekday{time.Weekday(9), time.Thursday},
			expected: []time.Weekday{time.Thursday},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []time.Weekday{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.NewWeekly(tt.input...)

			assert.Equal(t, tt.expected, w.Days())
			assert.Equal(t, len(tt.expected) == 0, w.IsEmpty())
			assert.Equal(t, domain.KindWeekly, w.Kind())
		})
	}
}

func TestNewFortnightlyError(t *testing.T) {
	_, err := domain.NewFortnightly(civil.Date{Year: 2025, Month: time.February, Day: 30})

	assert.ErrorIs(t, err, domain.ErrMalformedSchedule)
}

func TestNewMonthlyByDay(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		wantErr bool
	}{
		{name: "first day", day: 1},
		{name: "last possible day", day: 31},
		{name: "zero", day: 0, wantErr: true},
		{name: "negative", day: -3, wantErr: true},
		{name: "too large", day: 32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMonthlyByDay(tt.day)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMalformedSchedule)
				assert.False(t, m.IsValid())

				return
			}

			assert.NoError(t, err)
			assert.True(t, m.IsValid())
			assert.True(t, m.IsByDay())
			assert.False(t, m.IsByNthWeekday())
			assert.Equal(t, tt.day, m.DayOfMonth().MustGet())
		})
	}
}

func TestNewMonthlyByNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		weekday time.Weekday
		nth     int
		wantErr bool
	}{
		{name: "first monday", weekday: time.Monday, nth: 1},
		{name: "fifth sunday", weekday: time.Sunday, nth: 5},
		{name: "sixth occurrence", weekday: time.Monday, nth: 6, wantErr: true},
		{name: "zeroth occurrence", weekday: time.Monday, nth: 0, wantErr: true},
		{name: "invalid weekday", weekday: time.Weekday(7), nth: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMonthlyByNthWeekday(tt.weekday, tt.nth)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMalformedSchedule)

				return
			}

			assert.NoError(t, err)
			assert.True(t, m.IsByNthWeekday())
			assert.Equal(t, tt.weekday, m.Weekday().MustGet())
			assert.Equal(t, tt.nth, m.NthOfMonth().MustGet())
		})
	}
}

func TestMonthlyZeroValueIsInvalid(t *testing.T) {
	var m domain.Monthly

	assert.False(t, m.IsValid())
	assert.False(t, m.IsByDay())
	assert.False(t, m.IsByNthWeekday())
	assert.Equal(t, domain.KindMonthly, m.Kind())
}
