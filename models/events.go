package models

// Item change event types published after a successful commit.
const (
	EventTypeItemCreated = "item.created"
	EventTypeItemUpdated = "item.updated"
	EventTypeItemDeleted = "item.deleted"
)

// ItemEvent describes a committed change to an item.
type ItemEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Timestamp string `json:"timestamp"`
	TraceID   string `json:"trace_id,omitempty"`
	Subject   string `json:"subject,omitempty"`
	ItemID    int64  `json:"item_id"`
	Item      *Item  `json:"item,omitempty"`
}
