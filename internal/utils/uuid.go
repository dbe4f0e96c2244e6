package utils

import "github.com/google/uuid"

// NewEventID returns a time-ordered UUIDv7 so event ids sort by creation.
// It falls back to a random UUIDv4 if the clock source fails.
func NewEventID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// NewTraceID returns a random request trace id.
func NewTraceID() string {
	return uuid.NewString()
}
