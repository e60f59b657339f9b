package handler

import "time"

type CreateReminderRequest struct {
	Name      string `json:"name" binding:"required"`
	TimeOfDay string `json:"time_of_day" binding:"required"`
	Schedule  string `json:"schedule" binding:"required"`
}

type UpdateReminderRequest struct {
	Name      string `json:"name" binding:"required"`
	TimeOfDay string `json:"time_of_day" binding:"required"`
	Schedule  string `json:"schedule" binding:"required"`
}

type ListOccurrencesRequest struct {
	From  time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To    time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit int       `form:"limit"`
}

// AtRequest lets callers evaluate a reminder at a chosen instant instead of now.
type AtRequest struct {
	At time.Time `form:"at" time_format:"2006-01-02T15:04:05Z07:00"`
}

type TriggerRequest struct {
	IsRepeat        bool `json:"is_repeat"`
	IntervalSeconds int  `json:"interval_seconds" binding:"min=0"`
}

type SnoozeRequest struct {
	IntervalSeconds int `json:"interval_seconds" binding:"min=0"`
}
