package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/item-api/internal/events"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/store"
	"github.com/MKhiriev/item-api/internal/validators"
	"github.com/MKhiriev/item-api/models"
)

const publishTimeout = 10 * time.Second

// itemService delegates persistence to an [store.ItemRepository] and
// announces committed changes through an [events.Publisher]. A failed
// publish is logged and never fails the request.
type itemService struct {
	itemRepository store.ItemRepository
	publisher      events.Publisher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewItemService constructs an ItemService. A nil publisher disables events.
func NewItemService(itemRepository store.ItemRepository, publisher events.Publisher, logger *logger.Logger) ItemService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	return &itemService{
		itemRepository: itemRepository,
		publisher:      publisher,
		validator:      validators.NewItemValidator(),
		logger:         logger,
	}
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, company string, all bool) ([]models.Item, error) {
	if all {
		return s.itemRepository.GetAllItems(ctx)
	}

	return s.itemRepository.GetItemsByCompany(ctx, company)
}

func (s *itemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := s.validator.Validate(ctx, item, validators.CreateFields...); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}

	s.publish(ctx, events.NewItemEvent(ctx, models.EventTypeItemCreated, created.ID, &created))
	return created, nil
}

func (s *itemService) UpdateItem(ctx context.Context, item models.Item) (bool, error) {
	if err := s.validator.Validate(ctx, item, validators.UpdateFields...); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	updated, err := s.itemRepository.UpdateItem(ctx, item)
	if err != nil {
		return false, err
	}

	if updated {
		s.publish(ctx, events.NewItemEvent(ctx, models.EventTypeItemUpdated, item.ID, &item))
	}
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.itemRepository.DeleteItem(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.publish(ctx, events.NewItemEvent(ctx, models.EventTypeItemDeleted, id, nil))
	}
	return deleted, nil
}

// publish outlives a cancelled request context but not publishTimeout.
func (s *itemService) publish(ctx context.Context, event models.ItemEvent) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(publishCtx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "itemService.publish").
			Str("event_type", event.EventType).
			Int64("item_id", event.ItemID).
			Msg("failed to publish item event")
	}
}
