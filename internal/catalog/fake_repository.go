package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// fakeCatalogRepository is an in-memory repository.Catalog for tests.
type fakeCatalogRepository struct {
	mu       sync.Mutex
	items    map[int]domain.Item
	syncMeta map[string]domain.CatalogSync

	getItemCalls int
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		items:    make(map[int]domain.Item),
		syncMeta: make(map[string]domain.CatalogSync),
	}
}

var _ repository.Catalog = (*fakeCatalogRepository)(nil)

func (f *fakeCatalogRepository) GetItem(_ context.Context, itemID int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getItemCalls++
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeCatalogRepository) ListItems(_ context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, f.items[id])
	}
	return items, nil
}

func (f *fakeCatalogRepository) UpsertItem(_ context.Context, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeCatalogRepository) GetSyncMetadata(_ context.Context, configName string) (*domain.CatalogSync, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, ok := f.syncMeta[configName]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func (f *fakeCatalogRepository) UpsertSyncMetadata(_ context.Context, metadata *domain.CatalogSync) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncMeta[metadata.ConfigName] = *metadata
	return nil
}
