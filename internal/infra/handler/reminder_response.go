package handler

import (
	"time"

	"github.com/KasumiMercury/primind-remind-again/internal/app"
)

type ReminderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TimeOfDay string    `json:"time_of_day"`
	Schedule  string    `json:"schedule"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
	Skipped   int32              `json:"skipped"`
}

type OccurrencesResponse struct {
	ReminderID  string      `json:"reminder_id"`
	Occurrences []time.Time `json:"occurrences"`
}

type ReminderStatusResponse struct {
	Reminder             ReminderResponse `json:"reminder"`
	Due                  bool             `json:"due"`
	Suppressed           bool             `json:"suppressed"`
	ActiveNow            bool             `json:"active_now"`
	UpcomingOccurrence   *time.Time       `json:"upcoming_occurrence,omitempty"`
	NextOccurrence       *time.Time       `json:"next_occurrence,omitempty"`
	LastDismissedAt      *time.Time       `json:"last_dismissed_at,omitempty"`
	LastPostponedAt      *time.Time       `json:"last_postponed_at,omitempty"`
	LaterAvailable       bool             `json:"later_available"`
	LaterIntervalSeconds int              `json:"later_interval_seconds"`
}

type TriggerResponse struct {
	ReminderID            string     `json:"reminder_id"`
	IsRepeat              bool       `json:"is_repeat"`
	RepeatScheduled       bool       `json:"repeat_scheduled"`
	RepeatIntervalSeconds int        `json:"repeat_interval_seconds"`
	ShowLater             bool       `json:"show_later"`
	LaterIntervalSeconds  int        `json:"later_interval_seconds"`
	NextOccurrence        *time.Time `json:"next_occurrence,omitempty"`
	Reason                string     `json:"reason"`
}

type SnoozeResponse struct {
	ReminderID      string    `json:"reminder_id"`
	IntervalSeconds int       `json:"interval_seconds"`
	FireAt          time.Time `json:"fire_at"`
}

type DueReminderResponse struct {
	Reminder   ReminderResponse `json:"reminder"`
	Occurrence time.Time        `json:"occurrence"`
	ActiveNow  bool             `json:"active_now"`
}

type DueRemindersResponse struct {
	Due     []DueReminderResponse `json:"due"`
	Checked int32                 `json:"checked"`
	Skipped int32                 `json:"skipped"`
}

type SyncAlarmsResponse struct {
	Scheduled int32 `json:"scheduled"`
	Removed   int32 `json:"removed"`
	Skipped   int32 `json:"skipped"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromDTO(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:        output.ID,
		Name:      output.Name,
		TimeOfDay: output.TimeOfDay,
		Schedule:  output.Schedule,
		Kind:      output.Kind,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

func FromDTOs(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
		Skipped:   output.Skipped,
	}
}

func FromOccurrencesDTO(output app.OccurrencesOutput) OccurrencesResponse {
	occurrences := output.Occurrences
	if occurrences == nil {
		occurrences = []time.Time{}
	}

	return OccurrencesResponse{
		ReminderID:  output.ReminderID,
		Occurrences: occurrences,
	}
}

func FromStatusDTO(output app.ReminderStatusOutput) ReminderStatusResponse {
	return ReminderStatusResponse{
		Reminder:             FromDTO(output.Reminder),
		Due:                  output.Due,
		Suppressed:           output.Suppressed,
		ActiveNow:            output.ActiveNow,
		UpcomingOccurrence:   output.UpcomingOccurrence,
		NextOccurrence:       output.NextOccurrence,
		LastDismissedAt:      output.LastDismissedAt,
		LastPostponedAt:      output.LastPostponedAt,
		LaterAvailable:       output.LaterAvailable,
		LaterIntervalSeconds: output.LaterIntervalSeconds,
	}
}

func FromTriggerDTO(output app.TriggerOutput) TriggerResponse {
	return TriggerResponse{
		ReminderID:            output.ReminderID,
		IsRepeat:              output.IsRepeat,
		RepeatScheduled:       output.RepeatScheduled,
		RepeatIntervalSeconds: output.RepeatIntervalSeconds,
		ShowLater:             output.ShowLater,
		LaterIntervalSeconds:  output.LaterIntervalSeconds,
		NextOccurrence:        output.NextOccurrence,
		Reason:                output.Reason,
	}
}

func FromSnoozeDTO(output app.SnoozeOutput) SnoozeResponse {
	return SnoozeResponse{
		ReminderID:      output.ReminderID,
		IntervalSeconds: output.IntervalSeconds,
		FireAt:          output.FireAt,
	}
}

func FromDueDTO(output app.DueRemindersOutput) DueRemindersResponse {
	due := make([]DueReminderResponse, 0, len(output.Due))
	for _, d := range output.Due {
		due = append(due, DueReminderResponse{
			Reminder:   FromDTO(d.Reminder),
			Occurrence: d.Occurrence,
			ActiveNow:  d.ActiveNow,
		})
	}

	return DueRemindersResponse{
		Due:     due,
		Checked: output.Checked,
		Skipped: output.Skipped,
	}
}

func FromSyncDTO(output app.SyncAlarmsOutput) SyncAlarmsResponse {
	return SyncAlarmsResponse(output)
}
