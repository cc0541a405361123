package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

const (
	queryGetItem = `
		SELECT item_id, item_name, category, description, price, hunger_restore,
		       happiness_boost, health_effect, footprint_w, footprint_h,
		       held_effect, size_class, storable, sprite
		FROM items
		WHERE item_id = $1`

	queryListItems = `
		SELECT item_id, item_name, category, description, price, hunger_restore,
		       happiness_boost, health_effect, footprint_w, footprint_h,
		       held_effect, size_class, storable, sprite
		FROM items
		ORDER BY item_id`

	queryUpsertItem = `
		INSERT INTO items (item_id, item_name, category, description, price,
		                   hunger_restore, happiness_boost, health_effect,
		                   footprint_w, footprint_h, held_effect, size_class,
		                   storable, sprite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (item_id) DO UPDATE SET
			item_name = EXCLUDED.item_name,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			hunger_restore = EXCLUDED.hunger_restore,
			happiness_boost = EXCLUDED.happiness_boost,
			health_effect = EXCLUDED.health_effect,
			footprint_w = EXCLUDED.footprint_w,
			footprint_h = EXCLUDED.footprint_h,
			held_effect = EXCLUDED.held_effect,
			size_class = EXCLUDED.size_class,
			storable = EXCLUDED.storable,
			sprite = EXCLUDED.sprite`

	queryGetSyncMetadata = `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM catalog_sync
		WHERE config_name = $1`

	queryUpsertSyncMetadata = `
		INSERT INTO catalog_sync (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`
)

type catalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, queryGetItem, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func (r *catalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, queryListItems)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

func (r *catalogRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	_, err := r.db.Exec(ctx, queryUpsertItem,
		item.ID, item.Name, item.Category, item.Description, item.Price,
		item.HungerRestore, item.HappinessBoost, item.HealthEffect,
		item.FootprintW, item.FootprintH, item.HeldEffect, item.SizeClass,
		item.Storable, item.Sprite)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItem, err)
	}
	return nil
}

func (r *catalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.CatalogSync, error) {
	var metadata domain.CatalogSync
	err := r.db.QueryRow(ctx, queryGetSyncMetadata, configName).
		Scan(&metadata.ConfigName, &metadata.LastSyncTime, &metadata.FileHash, &metadata.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSync, err)
	}
	return &metadata, nil
}

func (r *catalogRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.CatalogSync) error {
	_, err := r.db.Exec(ctx, queryUpsertSyncMetadata,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSync, err)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Description,
		&item.Price, &item.HungerRestore, &item.HappinessBoost, &item.HealthEffect,
		&item.FootprintW, &item.FootprintH, &item.HeldEffect, &item.SizeClass,
		&item.Storable, &item.Sprite)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
