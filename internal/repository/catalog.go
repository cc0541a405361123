package repository

import (
	"context"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// Catalog defines the interface for item catalog persistence
type Catalog interface {
	// GetItem returns domain.ErrItemNotFound on miss.
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpsertItem(ctx context.Context, item *domain.Item) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.CatalogSync, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.CatalogSync) error
}
