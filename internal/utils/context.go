// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key used to store the authenticated username in the
// context once a bearer token has been verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "alice")
var SubjectCtxKey = contextKey("subject")

// TraceIDCtxKey is the key used to store the per-request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// GetSubjectFromContext retrieves the authenticated username from the context.
//
// Returns the subject and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	subject, ok := utils.GetSubjectFromContext(ctx)
//	if !ok {
//	    // request did not pass the auth gate
//	}
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

// GetTraceIDFromContext retrieves the trace identifier set by the HTTP
// trace middleware. Returns an empty string when none is present.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
