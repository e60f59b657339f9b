package domain

import "time"

type ActionType string

const (
	ActionDismiss  ActionType = "dismiss"
	ActionPostpone ActionType = "postpone"
)

// Action is one entry of a reminder's append-only dismiss/postpone history.
type Action struct {
	reminderID ReminderID
	actionType ActionType
	timestamp  time.Time
	interval   SnoozeInterval
}

func NewDismissAction(reminderID ReminderID, at time.Time) Action {
	return Action{reminderID: reminderID, actionType: ActionDismiss, timestamp: at}
}

func NewPostponeAction(reminderID ReminderID, at time.Time, interval SnoozeInterval) Action {
	return Action{reminderID: reminderID, actionType: ActionPostpone, timestamp: at, interval: interval}
}

// ReconstituteAction rebuilds a stored history entry.
func ReconstituteAction(reminderID ReminderID, actionType ActionType, at time.Time, interval SnoozeInterval) Action {
	return Action{reminderID: reminderID, actionType: actionType, timestamp: at, interval: interval}
}

func (a Action) ReminderID() ReminderID {
	return a.reminderID
}

func (a Action) Type() ActionType {
	return a.actionType
}

func (a Action) Timestamp() time.Time {
	return a.timestamp
}

// Interval is zero for dismiss actions.
func (a Action) Interval() SnoozeInterval {
	return a.interval
}
