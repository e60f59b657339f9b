package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/mo"
)

const (
	DefaultSnoozeSeconds = 60
	MaxSnoozeSeconds     = math.MaxInt32
)

var DefaultSnoozeInterval = SnoozeInterval{seconds: DefaultSnoozeSeconds}

// SnoozeInterval is the armed delay before a repeat notification.
type SnoozeInterval struct {
	seconds int
}

func NewSnoozeInterval(seconds int) (SnoozeInterval, error) {
	if seconds <= 0 {
		return SnoozeInterval{}, fmt.Errorf("%w: %d", ErrInvalidSnoozeInterval, seconds)
	}

	if seconds > MaxSnoozeSeconds {
		seconds = MaxSnoozeSeconds
	}

	return SnoozeInterval{seconds: seconds}, nil
}

func MustSnoozeInterval(seconds int) SnoozeInterval {
	i, err := NewSnoozeInterval(seconds)
	if err != nil {
		panic(err)
	}

	return i
}

func (i SnoozeInterval) Seconds() int {
	return i.seconds
}

func (i SnoozeInterval) Duration() time.Duration {
	return time.Duration(i.seconds) * time.Second
}

func (i SnoozeInterval) IsZero() bool {
	return i.seconds == 0
}

// Double returns twice the interval, saturating at MaxSnoozeSeconds.
func (i SnoozeInterval) Double() SnoozeInterval {
	if i.seconds > MaxSnoozeSeconds/2 {
		return SnoozeInterval{seconds: MaxSnoozeSeconds}
	}

	return SnoozeInterval{seconds: i.seconds * 2}
}

type SnoozeDecision struct {
	Interval          SnoozeInterval
	ContinueRepeating bool
}

// NextSnooze doubles the interval that produced the current notification and
// continues only while the doubled fire time stays before the next main
// occurrence. The interval is returned even when repeating stops.
func NextSnooze(lastArmed SnoozeInterval, nextMain mo.Option[time.Time], now time.Time) SnoozeDecision {
	interval := lastArmed.Double()

	return SnoozeDecision{
		Interval:          interval,
		ContinueRepeating: FiresBefore(now.Add(interval.Duration()), nextMain),
	}
}
