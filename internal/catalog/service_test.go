package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varmintworks/varmint-server/internal/domain"
)

func TestService_GetItem(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCatalogRepository()
	repo.items[1] = domain.Item{ID: 1, Name: "Apple", Category: "food", Price: 5}

	svc := NewService(repo)

	t.Run("found", func(t *testing.T) {
		item, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Apple", item.Name)
	})

	t.Run("second lookup hits cache", func(t *testing.T) {
		before := repo.getItemCalls
		_, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, before, repo.getItemCalls)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetItem(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestService_GetItemOrNil(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCatalogRepository()
	repo.items[1] = domain.Item{ID: 1, Name: "Apple"}

	svc := NewService(repo)

	item, err := svc.GetItemOrNil(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, item)

	// Dangling inventory references resolve to nil, not an error.
	item, err = svc.GetItemOrNil(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestService_SyncFromConfig(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCatalogRepository()
	svc := NewService(repo)

	path := writeTempConfig(t, validConfigJSON)

	result, err := svc.SyncFromConfig(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsUpserted)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestService_SyncFromConfig_InvalidConfig(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCatalogRepository())

	path := writeTempConfig(t, `{"version": "1.0", "items": []}`)

	_, err := svc.SyncFromConfig(ctx, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
