package store

//go:generate mockgen -source=interfaces.go -destination=../mock/item_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/item-api/models"
)

// ItemRepository persists [models.Item] rows. Every method runs inside its
// own transaction that is committed on success and rolled back on failure.
type ItemRepository interface {
	// GetItem returns the item with the given id or [ErrItemNotFound].
	GetItem(ctx context.Context, id int64) (models.Item, error)
	// GetItemsByCompany returns every item whose company equals company.
	// An empty result is not an error.
	GetItemsByCompany(ctx context.Context, company string) ([]models.Item, error)
	// GetAllItems returns every stored item.
	GetAllItems(ctx context.Context) ([]models.Item, error)
	// CreateItem inserts item, ignoring item.ID, and returns it with the
	// store-assigned id.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	// UpdateItem overwrites the four non-id fields of the row item.ID.
	// It reports false when no such row exists; that case still commits.
	UpdateItem(ctx context.Context, item models.Item) (bool, error)
	// DeleteItem removes the row with the given id. It reports false when no
	// such row exists; that case still commits.
	DeleteItem(ctx context.Context, id int64) (bool, error)
}
