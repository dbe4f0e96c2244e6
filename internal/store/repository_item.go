package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/models"
)

var readOnlyTx = &sql.TxOptions{ReadOnly: true}

// itemRepository is the SQL-backed implementation of [ItemRepository].
// Every public method runs exactly one statement inside [DB.WithTx], so the
// connection is acquired for the duration of one logical operation only.
type itemRepository struct {
	db *DB
}

// NewItemRepository constructs an [ItemRepository] over db.
func NewItemRepository(db *DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	found := false
	err := r.db.WithTx(ctx, "get_item", readOnlyTx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildSelectItemByIDQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		scanErr := scanItem(tx.QueryRowContext(ctx, query, args...), &item)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		found = true
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Int64("item_id", id).
			Msg("failed to get item")
		return models.Item{}, err
	}

	if !found {
		return models.Item{}, ErrItemNotFound
	}

	return item, nil
}

func (r *itemRepository) GetItemsByCompany(ctx context.Context, company string) ([]models.Item, error) {
	return r.listItems(ctx, "get_items_by_company", &company)
}

func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return r.listItems(ctx, "get_all_items", nil)
}

func (r *itemRepository) listItems(ctx context.Context, operation string, company *string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items := make([]models.Item, 0)
	err := r.db.WithTx(ctx, operation, readOnlyTx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildSelectItemsQuery(r.db.builder, company)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var item models.Item
			if scanErr := scanItem(rows, &item); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			items = append(items, item)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.listItems").
			Str("operation", operation).
			Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	created := item
	err := r.db.WithTx(ctx, "create_item", nil, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildInsertItemQuery(r.db.builder, item.Name, item.Price, item.Company, item.Remarks)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Str("company", item.Company).
			Msg("failed to create item")
		return models.Item{}, err
	}

	return created, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (bool, error) {
	log := logger.FromContext(ctx)

	var updated bool
	err := r.db.WithTx(ctx, "update_item", nil, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildUpdateItemQuery(r.db.builder, item.ID, item.Name, item.Price, item.Company, item.Remarks)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = execAffectingRows(ctx, tx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Int64("item_id", item.ID).
			Msg("failed to update item")
		return false, err
	}

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var deleted bool
	err := r.db.WithTx(ctx, "delete_item", nil, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildDeleteItemQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		deleted, err = execAffectingRows(ctx, tx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Int64("item_id", id).
			Msg("failed to delete item")
		return false, err
	}

	return deleted, nil
}

// execAffectingRows runs a DML statement and reports whether any row matched.
func execAffectingRows(ctx context.Context, tx DBTX, query string, args []any) (bool, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *models.Item) error {
	return row.Scan(&item.ID, &item.Name, &item.Price, &item.Company, &item.Remarks)
}
