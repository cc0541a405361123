package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// Service defines the item catalog business logic interface
type Service interface {
	// GetItem returns domain.ErrItemNotFound when the id is unknown.
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)

	// GetItemOrNil is the lookup used when embedding items into inventory
	// reads: an unknown id is not an error, it is a nil item.
	GetItemOrNil(ctx context.Context, itemID int) (*domain.Item, error)

	ListItems(ctx context.Context) ([]domain.Item, error)

	// SyncFromConfig loads, validates and syncs the config file at path.
	SyncFromConfig(ctx context.Context, path string) (*SyncResult, error)
}

type service struct {
	repo   repository.Catalog
	loader Loader
	cache  *itemCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:   repo,
		loader: NewLoader(),
		cache:  newItemCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(itemID, item)
	return item, nil
}

func (s *service) GetItemOrNil(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) SyncFromConfig(ctx context.Context, path string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	config, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load item config: %w", err)
	}
	if err := s.loader.Validate(config); err != nil {
		return nil, fmt.Errorf("validate item config: %w", err)
	}

	result, err := s.loader.SyncToDatabase(ctx, config, s.repo, path)
	if err != nil {
		return nil, fmt.Errorf("sync item config: %w", err)
	}

	if result.ItemsUpserted > 0 {
		s.cache.Clear()
		log.Info("Item cache cleared after catalog sync", "upserted", result.ItemsUpserted)
	}
	return result, nil
}
