package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "items.db") + "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: dsn, MaxOpenConns: 8},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestItemRepository_SQLiteLifecycle(t *testing.T) {
	repo := newSQLiteStorages(t).ItemRepository
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, models.Item{ID: 1000, Name: "Widget", Price: 100, Company: "Acme", Remarks: "-"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, int64(1000), created.ID)

	got, err := repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.CreateItem(ctx, models.Item{Name: "Bolt", Price: 1, Company: "Other", Remarks: ""})
	require.NoError(t, err)

	byCompany, err := repo.GetItemsByCompany(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, []models.Item{created}, byCompany)

	none, err := repo.GetItemsByCompany(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := repo.UpdateItem(ctx, models.Item{ID: created.ID, Name: "Widget v2", Price: 120, Company: "Acme", Remarks: "new"})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Item{ID: created.ID, Name: "Widget v2", Price: 120, Company: "Acme", Remarks: "new"}, got)

	updated, err = repo.UpdateItem(ctx, models.Item{ID: 987654, Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetItem(ctx, created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	deleted, err = repo.DeleteItem(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestItemRepository_SQLiteConcurrentInsertsGetDistinctIDs(t *testing.T) {
	repo := newSQLiteStorages(t).ItemRepository
	ctx := context.Background()

	const workers = 16
	ids := make(chan int64, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			item, err := repo.CreateItem(ctx, models.Item{Name: fmt.Sprintf("item-%d", n), Price: int64(n), Company: "Acme"})
			if err != nil {
				errs <- err
				return
			}
			ids <- item.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[int64]struct{}, workers)
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers)

	all, err := repo.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers)
}
