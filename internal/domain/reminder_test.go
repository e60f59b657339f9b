package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

func TestNewReminderSuccess(t *testing.T) {
	tests := []struct {
		name         string
		inputName    string
		expectedName string
		schedule     domain.Schedule
	}{
		{
			name:         "daily reminder",
			inputName:    "Take medication",
			expectedName: "Take medication",
			schedule:     domain.Daily{},
		},
		{
			name:         "name is trimmed",
			inputName:    "  Water plants  ",
			expectedName: "Water plants",
			schedule:     domain.NewWeekly(time.Saturday),
		},
		{
			name:         "fifty multibyte characters",
			inputName:    strings.Repeat("薬", 50),
			expectedName: strings.Repeat("薬", 50),
			schedule:     mustMonthlyByDay(t, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()

			r, err := domain.NewReminder(tt.inputName, nineAM, tt.schedule)

			require.NoError(t, err)
			assert.False(t, r.ID().IsZero())
			assert.Equal(t, tt.expectedName, r.Name())
			assert.Equal(t, nineAM, r.TimeOfDay())
			assert.Equal(t, tt.schedule, r.Schedule())
			assert.False(t, r.CreatedAt().Before(before))
			assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
		})
	}
}

func TestNewReminderError(t *testing.T) {
	tests := []struct {
		name        string
		inputName   string
		schedule    domain.Schedule
		expectedErr error
	}{
		{
			name:        "blank name",
			inputName:   "   ",
			schedule:    domain.Daily{},
			expectedErr: domain.ErrInvalidReminderName,
		},
		{
			name:        "name too long",
			inputName:   strings.Repeat("a", 51),
			schedule:    domain.Daily{},
			expectedErr: domain.ErrInvalidReminderName,
		},
		{
			name:        "invalid monthly",
			inputName:   "Pay rent",
			schedule:    domain.Monthly{},
			expectedErr: domain.ErrInvalidMonthlySchedule,
		},
		{
			name:        "weekly without days",
			inputName:   "Gym",
			schedule:    domain.NewWeekly(),
			expectedErr: domain.ErrMalformedSchedule,
		},
		{
			name:        "missing schedule",
			inputName:   "Gym",
			schedule:    nil,
			expectedErr: domain.ErrMalformedSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.NewReminder(tt.inputName, nineAM, tt.schedule)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, r)
		})
	}
}

func TestReminderUpdate(t *testing.T) {
	r, err := domain.NewReminder("Stretch", nineAM, domain.Daily{})
	require.NoError(t, err)

	createdAt := r.CreatedAt()
	evening := domain.MustTimeOfDay(20, 0, 0)

	require.NoError(t, r.Update("Evening stretch", evening, domain.NewWeekly(time.Monday)))

	assert.Equal(t, "Evening stretch", r.Name())
	assert.Equal(t, evening, r.TimeOfDay())
	assert.Equal(t, domain.NewWeekly(time.Monday), r.Schedule())
	assert.Equal(t, createdAt, r.CreatedAt())
	assert.False(t, r.UpdatedAt().Before(createdAt))

	err = r.Update("", evening, domain.Daily{})
	assert.ErrorIs(t, err, domain.ErrInvalidReminderName)
	assert.Equal(t, "Evening stretch", r.Name())
}

func TestReminderDelegatesToCalculators(t *testing.T) {
	r := domain.Reconstitute(
		domain.NewReminderID(),
		"Stand up",
		nineAM,
		domain.Daily{},
		at(2025, time.January, 1, 0, 0, 0),
		at(2025, time.January, 1, 0, 0, 0),
	)

	assert.True(t, r.IsActiveAt(at(2025, time.January, 2, 9, 0, 0)))
	assert.True(t, at(2025, time.January, 2, 9, 0, 0).Equal(r.NextOccurrenceAfter(at(2025, time.January, 1, 9, 0, 0)).MustGet()))
	assert.True(t, r.EvaluateDue(at(2025, time.January, 1, 8, 30, 0), mo.None[time.Time]()).Due())
}
