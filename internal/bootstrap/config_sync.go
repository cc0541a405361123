package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/varmintworks/varmint-server/internal/catalog"
)

// SyncCatalog loads, validates, and syncs the item catalog configuration to
// the database. Hash-based change detection inside the service skips the sync
// entirely when the config file is unchanged.
func SyncCatalog(ctx context.Context, catalogService catalog.Service, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	result, err := catalogService.SyncFromConfig(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.ItemsUpserted > 0 {
		slog.Info(LogMsgCatalogSynced,
			"upserted", result.ItemsUpserted,
			"skipped", result.ItemsSkipped)
	} else {
		slog.Info(LogMsgCatalogUnchanged)
	}

	return nil
}
