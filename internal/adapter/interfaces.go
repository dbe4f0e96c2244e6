// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the item API.
//
// The primary abstraction is [ItemsClient], which hides the REST transport
// from callers such as integration tooling and other services.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/item-api/models"
)

// ItemsClient defines communication with the item API. Implementations are
// responsible for serialisation, bearer token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ItemsClient interface {
	// SetToken stores the bearer token attached to all subsequent item
	// requests. Login calls it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for an access token and stores it via
	// SetToken. Returns [ErrUnauthorized] (wrapped) for rejected credentials.
	Login(ctx context.Context, credential models.Credential) (models.TokenResponse, error)

	// GetItem fetches a single item. Returns [ErrNotFound] (wrapped) when the
	// id does not exist.
	GetItem(ctx context.Context, id int64) (models.Item, error)

	// ListItems fetches the items of company, or every item when all is true.
	ListItems(ctx context.Context, company string, all bool) ([]models.Item, error)

	// CreateItem stores a new item and returns it with the assigned ID.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// UpdateItem replaces the item identified by item.ID. A missing id is
	// not an error.
	UpdateItem(ctx context.Context, item models.Item) error

	// DeleteItem removes the item with id. A missing id is not an error.
	DeleteItem(ctx context.Context, id int64) error
}
