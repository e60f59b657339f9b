package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-remind-again/internal/observability/tracing"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const (
	TopicReminderNotify = "reminder.notify"

	EventTypeReminderNotify = "reminder.notify"
)

// NotifyEvent asks the notification presenter to show a reminder.
type NotifyEvent struct {
	ReminderID           string    `json:"reminder_id"`
	Name                 string    `json:"name"`
	OccurrenceAt         time.Time `json:"occurrence_at"`
	IsRepeat             bool      `json:"is_repeat"`
	ShowLater            bool      `json:"show_later"`
	LaterIntervalSeconds int       `json:"later_interval_seconds"`
	PublishedAt          time.Time `json:"published_at"`
}

type Publisher interface {
	PublishReminderNotify(ctx context.Context, event NotifyEvent) error
	io.Closer
}

// MessagePublisher sends events through any watermill publisher.
type MessagePublisher struct {
	publisher message.Publisher
}

func NewMessagePublisher(publisher message.Publisher) *MessagePublisher {
	return &MessagePublisher{publisher: publisher}
}

func (p *MessagePublisher) PublishReminderNotify(ctx context.Context, event NotifyEvent) error {
	msg, err := newNotifyMessage(ctx, event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(TopicReminderNotify, msg); err != nil {
		slog.Error("failed to publish reminder notify event",
			slog.String("reminder_id", event.ReminderID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published reminder notify event",
		slog.String("reminder_id", event.ReminderID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *MessagePublisher) Close() error {
	return p.publisher.Close()
}

func newNotifyMessage(ctx context.Context, event NotifyEvent) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", EventTypeReminderNotify)
	msg.Metadata.Set("reminder_id", event.ReminderID)

	if event.IsRepeat {
		msg.Metadata.Set("is_repeat", "true")
	}

	tracing.InjectToMap(ctx, msg.Metadata)

	return msg, nil
}
