package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/mock"
	"github.com/MKhiriev/item-api/internal/store"
	"github.com/MKhiriev/item-api/internal/validators"
	"github.com/MKhiriev/item-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemSvc(t *testing.T) (ItemService, *mock.MockItemRepository, *mock.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	publisher := mock.NewMockPublisher(ctrl)

	return NewItemService(repo, publisher, logger.Nop()), repo, publisher
}

func eventOfType(eventType string, itemID int64) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		event, ok := x.(models.ItemEvent)
		return ok && event.EventType == eventType && event.ItemID == itemID
	})
}

var widget = models.Item{ID: 7, Name: "Widget", Price: 100, Company: "Acme", Remarks: "-"}

func TestItemService_GetItem(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, int64(7)).Return(widget, nil)

	item, err := svc.GetItem(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, widget, item)
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, int64(8)).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.GetItem(ctx, 8)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_GetItem_InfrastructureError(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, int64(8)).Return(models.Item{}, store.ErrBeginningTransaction)

	_, err := svc.GetItem(ctx, 8)
	assert.ErrorIs(t, err, store.ErrBeginningTransaction)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_ListItems_AllIgnoresCompany(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetAllItems(ctx).Return([]models.Item{widget}, nil)

	items, err := svc.ListItems(ctx, "Whatever", true)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{widget}, items)
}

func TestItemService_ListItems_ByCompany(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetItemsByCompany(ctx, "Acme").Return([]models.Item{}, nil)

	items, err := svc.ListItems(ctx, "Acme", false)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_CreateItem_PublishesAfterCommit(t *testing.T) {
	svc, repo, publisher := newTestItemSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().CreateItem(ctx, models.Item{Name: "Widget"}).Return(widget, nil),
		publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventTypeItemCreated, 7)).Return(nil),
	)

	created, err := svc.CreateItem(ctx, models.Item{Name: "Widget"})
	require.NoError(t, err)
	assert.Equal(t, widget, created)
}

func TestItemService_CreateItem_RepoErrorSkipsPublish(t *testing.T) {
	svc, repo, _ := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.Item{}, store.ErrExecutingStatement)

	_, err := svc.CreateItem(ctx, models.Item{Name: "Widget"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestItemService_CreateItem_PublishErrorDoesNotFail(t *testing.T) {
	svc, repo, publisher := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(widget, nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	created, err := svc.CreateItem(ctx, models.Item{Name: "Widget"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestItemService_UpdateItem(t *testing.T) {
	t.Run("updated publishes", func(t *testing.T) {
		svc, repo, publisher := newTestItemSvc(t)
		ctx := context.Background()

		repo.EXPECT().UpdateItem(ctx, widget).Return(true, nil)
		publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventTypeItemUpdated, 7)).Return(nil)

		updated, err := svc.UpdateItem(ctx, widget)
		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("missing id is silent", func(t *testing.T) {
		svc, repo, _ := newTestItemSvc(t)
		ctx := context.Background()

		repo.EXPECT().UpdateItem(ctx, widget).Return(false, nil)

		updated, err := svc.UpdateItem(ctx, widget)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("error", func(t *testing.T) {
		svc, repo, _ := newTestItemSvc(t)
		ctx := context.Background()

		repo.EXPECT().UpdateItem(ctx, widget).Return(false, store.ErrExecutingStatement)

		_, err := svc.UpdateItem(ctx, widget)
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	t.Run("deleted publishes", func(t *testing.T) {
		svc, repo, publisher := newTestItemSvc(t)
		ctx := context.Background()

		repo.EXPECT().DeleteItem(ctx, int64(7)).Return(true, nil)
		publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventTypeItemDeleted, 7)).Return(nil)

		deleted, err := svc.DeleteItem(ctx, 7)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing id is silent", func(t *testing.T) {
		svc, repo, _ := newTestItemSvc(t)
		ctx := context.Background()

		repo.EXPECT().DeleteItem(ctx, int64(7)).Return(false, nil)

		deleted, err := svc.DeleteItem(ctx, 7)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestNewItemService_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	ctx := context.Background()

	svc := NewItemService(repo, nil, logger.Nop())
	repo.EXPECT().DeleteItem(ctx, int64(1)).Return(true, nil)

	deleted, err := svc.DeleteItem(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestItemService_RejectsInvalidItemBeforeRepository(t *testing.T) {
	svc, _, _ := newTestItemSvc(t)
	ctx := context.Background()

	long := widget
	long.Name = strings.Repeat("n", validators.MaxNameLength+1)

	_, err := svc.CreateItem(ctx, long)
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorIs(t, err, validators.ErrNameTooLong)

	noID := widget
	noID.ID = 0
	updated, err := svc.UpdateItem(ctx, noID)
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorIs(t, err, validators.ErrInvalidItemID)
	assert.False(t, updated)
}
