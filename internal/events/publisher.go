package events

//go:generate mockgen -source=publisher.go -destination=../mock/publisher_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/item-api/internal/utils"
	"github.com/MKhiriev/item-api/models"
)

// Publisher delivers item events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event models.ItemEvent) error
	Close() error
}

// NewItemEvent builds an event of eventType for the item with itemID.
// item may be nil for deletions. Trace id and subject are taken from ctx.
func NewItemEvent(ctx context.Context, eventType string, itemID int64, item *models.Item) models.ItemEvent {
	subject, _ := utils.GetSubjectFromContext(ctx)

	return models.ItemEvent{
		EventID:   utils.NewEventID(),
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		TraceID:   utils.GetTraceIDFromContext(ctx),
		Subject:   subject,
		ItemID:    itemID,
		Item:      item,
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.ItemEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
