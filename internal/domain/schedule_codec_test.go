package domain_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

func mustFortnightly(t *testing.T, anchor string) domain.Fortnightly {
	t.Helper()

	d, err := civil.ParseDate(anchor)
	require.NoError(t, err)

	f, err := domain.NewFortnightly(d)
	require.NoError(t, err)

	return f
}

func mustMonthlyByDay(t *testing.T, day int) domain.Monthly {
	t.Helper()

	m, err := domain.NewMonthlyByDay(day)
	require.NoError(t, err)

	return m
}

func mustMonthlyByNthWeekday(t *testing.T, weekday time.Weekday, nth int) domain.Monthly {
	t.Helper()

	m, err := domain.NewMonthlyByNthWeekday(weekday, nth)
	require.NoError(t, err)

	return m
}

func TestParseScheduleSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(t *testing.T) domain.Schedule
	}{
		{
			name:  "daily",
			input: "DAILY",
			expected: func(t *testing.T) domain.Schedule {
				return domain.Daily{}
			},
		},
		{
			name:  "weekly in any order",
			input: "WEEKLY:FRIDAY,MONDAY",
			expected: func(t *testing.T) domain.Schedule {
				return domain.NewWeekly(time.Monday, time.Friday)
			},
		},
		{
			name:  "weekly with duplicates",
			input: "WEEKLY:SUNDAY,SUNDAY",
			expected: func(t *testing.T) domain.Schedule {
				return domain.NewWeekly(time.Sunday)
			},
		},
		{
			name:  "fortnightly",
			input: "FORTNIGHTLY:2025-01-01",
			expected: func(t *testing.T) domain.Schedule {
				return mustFortnightly(t, "2025-01-01")
			},
		},
		{
			name:  "monthly by day",
			input: "MONTHLY:30",
			expected: func(t *testing.T) domain.Schedule {
				return mustMonthlyByDay(t, 30)
			},
		},
		{
			name:  "monthly by nth weekday",
			input: "MONTHLY:WEDNESDAY,5",
			expected: func(t *testing.T) domain.Schedule {
				return mustMonthlyByNthWeekday(t, time.Wednesday, 5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := domain.ParseSchedule(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected(t), s)
		})
	}
}

func TestParseScheduleError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "lowercase daily", input: "daily"},
		{name: "daily with payload", input: "DAILY:"},
		{name: "unknown prefix", input: "HOURLY:1"},
		{name: "weekly without days", input: "WEEKLY:"},
		{name: "weekly mixed case day", input: "WEEKLY:Monday"},
		{name: "weekly empty entry", input: "WEEKLY:MONDAY,,FRIDAY"},
		{name: "weekly unknown day", input: "WEEKLY:FUNDAY"},
		{name: "fortnightly missing date", input: "FORTNIGHTLY:"},
		{name: "fortnightly invalid month", input: "FORTNIGHTLY:2025-13-01"},
		{name: "fortnightly not a date", input: "FORTNIGHTLY:tomorrow"},
		{name: "monthly day zero", input: "MONTHLY:0"},
		{name: "monthly day too large", input: "MONTHLY:32"},
		{name: "monthly day not a number", input: "MONTHLY:abc"},
		{name: "monthly nth too large", input: "MONTHLY:WEDNESDAY,6"},
		{name: "monthly nth zero", input: "MONTHLY:WEDNESDAY,0"},
		{name: "monthly unknown weekday", input: "MONTHLY:FUNDAY,1"},
		{name: "monthly too many parts", input: "MONTHLY:1,2,3"},
		{name: "monthly empty", input: "MONTHLY:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := domain.ParseSchedule(tt.input)

			assert.ErrorIs(t, err, domain.ErrMalformedSchedule)
			assert.Nil(t, s)
		})
	}
}

func TestFormatScheduleSuccess(t *testing.T) {
	tests := []struct {
		name     string
		schedule func(t *testing.T) domain.Schedule
		expected string
	}{
		{
			name:     "daily",
			schedule: func(t *testing.T) domain.Schedule { return domain.Daily{} },
			expected: "DAILY",
		},
		{
			name: "weekly is written monday first",
			schedule: func(t *testing.T) domain.Schedule {
				return domain.NewWeekly(time.Sunday, time.Wednesday, time.Monday)
			},
			expected: "WEEKLY:MONDAY,WEDNESDAY,SUNDAY",
		},
		{
			name:     "fortnightly",
			schedule: func(t *testing.T) domain.Schedule { return mustFortnightly(t, "2025-01-01") },
			expected: "FORTNIGHTLY:2025-01-01",
		},
		{
			name:     "monthly by day",
			schedule: func(t *testing.T) domain.Schedule { return mustMonthlyByDay(t, 7) },
			expected: "MONTHLY:7",
		},
		{
			name: "monthly by nth weekday",
			schedule: func(t *testing.T) domain.Schedule {
				return mustMonthlyByNthWeekday(t, time.Tuesday, 2)
			},
			expected: "MONTHLY:TUESDAY,2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := domain.FormatSchedule(tt.schedule(t))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestFormatScheduleError(t *testing.T) {
	tests := []struct {
		name        string
		schedule    domain.Schedule
		expectedErr error
	}{
		{
			name:        "monthly without parameters",
			schedule:    domain.Monthly{},
			expectedErr: domain.ErrInvalidMonthlySchedule,
		},
		{
			name:        "weekly without days",
			schedule:    domain.NewWeekly(),
			expectedErr: domain.ErrMalformedSchedule,
		},
		{
			name:        "nil schedule",
			schedule:    nil,
			expectedErr: domain.ErrMalformedSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.FormatSchedule(tt.schedule)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	schedules := []domain.Schedule{
		domain.Daily{},
		domain.NewWeekly(time.Monday),
		domain.NewWeekly(time.Saturday, time.Sunday),
		domain.NewWeekly(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday),
		mustFortnightly(t, "2025-01-01"),
		mustFortnightly(t, "1999-12-31"),
	}

	for day := domain.MinDayOfMonth; day <= domain.MaxDayOfMonth; day++ {
		schedules = append(schedules, mustMonthlyByDay(t, day))
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for nth := domain.MinNthOfMonth; nth <= domain.MaxNthOfMonth; nth++ {
			schedules = append(schedules, mustMonthlyByNthWeekday(t, wd, nth))
		}
	}

	for _, s := range schedules {
		text, err := domain.FormatSchedule(s)
		require.NoError(t, err)

		parsed, err := domain.ParseSchedule(text)
		require.NoError(t, err, text)

		assert.Equal(t, s, parsed, text)

		again, err := domain.FormatSchedule(parsed)
		require.NoError(t, err)
		assert.Equal(t, text, again)
	}
}
