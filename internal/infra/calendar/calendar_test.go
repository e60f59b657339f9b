package calendar_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/calendar"
)

func mustReminder(t *testing.T, scheduleText string) *domain.Reminder {
	t.Helper()

	schedule, err := domain.ParseSchedule(scheduleText)
	require.NoError(t, err)

	reminder, err := domain.NewReminder("Check mail", domain.MustTimeOfDay(9, 0, 0), schedule)
	require.NoError(t, err)

	return reminder
}

func TestRecurrenceRuleSuccess(t *testing.T) {
	tests := []struct {
		name         string
		scheduleText string
		expected     string
	}{
		{name: "daily", scheduleText: "DAILY", expected: "FREQ=DAILY"},
		{name: "weekly", scheduleText: "WEEKLY:FRIDAY,MONDAY", expected: "FREQ=WEEKLY;BYDAY=MO,FR"},
		{name: "fortnightly", scheduleText: "FORTNIGHTLY:2024-01-03", expected: "FREQ=WEEKLY;INTERVAL=2;BYDAY=WE"},
		{name: "monthly by day", scheduleText: "MONTHLY:31", expected: "FREQ=MONTHLY;BYMONTHDAY=31"},
		{name: "monthly by nth weekday", scheduleText: "MONTHLY:WEDNESDAY,5", expected: "FREQ=MONTHLY;BYDAY=+5WE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := domain.ParseSchedule(tt.scheduleText)
			require.NoError(t, err)

			option, err := calendar.RecurrenceRule(schedule)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, option.RRuleString())
		})
	}
}

func TestRecurrenceRuleError(t *testing.T) {
	tests := []struct {
		name        string
		schedule    domain.Schedule
		expectedErr error
	}{
		{name: "monthly without parameters", schedule: domain.Monthly{}, expectedErr: domain.ErrInvalidMonthlySchedule},
		{name: "weekly without days", schedule: domain.NewWeekly(), expectedErr: domain.ErrMalformedSchedule},
		{name: "nil schedule", schedule: nil, expectedErr: domain.ErrMalformedSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.RecurrenceRule(tt.schedule)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestExportedRuleMatchesOccurrences(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(1, 0, 0)

	for _, text := range []string{"DAILY", "WEEKLY:TUESDAY,SUNDAY", "FORTNIGHTLY:2023-12-27", "MONTHLY:30", "MONTHLY:FRIDAY,5"} {
		t.Run(text, func(t *testing.T) {
			reminder := mustReminder(t, text)

			option, err := calendar.RecurrenceRule(reminder.Schedule())
			require.NoError(t, err)

			start, ok := calendar.FirstOccurrence(reminder, now)
			require.True(t, ok)

			option.Dtstart = start
			rule, err := rrule.NewRRule(option)
			require.NoError(t, err)

			expected := domain.OccurrencesBetween(reminder.Schedule(), reminder.TimeOfDay(), now, end, 400)
			got := rule.Between(now, end, true)

			require.Equal(t, len(expected), len(got))

			for i := range expected {
				assert.True(t, expected[i].Equal(got[i]), "occurrence %d: want %s, got %s", i, expected[i], got[i])
			}
		})
	}
}

func TestBuildAndEncode(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	reminders := []*domain.Reminder{
		mustReminder(t, "DAILY"),
		mustReminder(t, "WEEKLY:MONDAY,FRIDAY"),
		domain.Reconstitute(domain.NewReminderID(), "broken", domain.MustTimeOfDay(9, 0, 0), domain.Monthly{}, now, now),
	}

	cal, omitted := calendar.Build(reminders, now)

	assert.Equal(t, 1, omitted)

	data, err := calendar.Encode(cal)
	require.NoError(t, err)

	decoded, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := decoded.Events()
	require.Len(t, events, 2)

	rules := make(map[string]string, len(events))

	for _, event := range events {
		uid, err := event.Props.Text(ical.PropUID)
		require.NoError(t, err)

		prop := event.Props.Get(ical.PropRecurrenceRule)
		require.NotNil(t, prop)

		rules[uid] = prop.Value

		start, err := event.DateTimeStart(time.UTC)
		require.NoError(t, err)
		assert.False(t, start.Before(now))
	}

	assert.Equal(t, "FREQ=DAILY", rules[reminders[0].ID().String()])
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,FR", rules[reminders[1].ID().String()])
}

func TestEncodeEmptyCalendar(t *testing.T) {
	cal, omitted := calendar.Build(nil, time.Now())

	assert.Zero(t, omitted)

	data, err := calendar.Encode(cal)

	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "PRODID:"+calendar.ProductID)
	assert.Contains(t, string(data), "END:VCALENDAR")
}
