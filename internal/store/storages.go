package store

import (
	"context"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
)

// Storages bundles the repositories and the connection they share.
type Storages struct {
	ItemRepository ItemRepository
	DB             *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		ItemRepository: NewItemRepository(db),
		DB:             db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
