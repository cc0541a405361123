package catalog

import "time"

// Config file constants
const (
	// ConfigFileName keys the sync metadata row for the item config
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the JSON schema the item config is validated against
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// Cache constants
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Error message constants
const (
	ErrMsgReadConfigFileFailed  = "failed to read item config file: %w"
	ErrMsgParseConfigFailed     = "failed to parse item config: %w"
	ErrMsgConfigNil             = "config is nil"
	ErrMsgNoItemsDefined        = "no items defined"
	ErrMsgStatConfigFileFailed  = "failed to stat config file: %w"
	ErrMsgCheckFileChangeFailed = "failed to check config file for changes: %w"
	ErrMsgListExistingFailed    = "failed to list existing items: %w"
	ErrMsgUpsertItemFailed      = "failed to upsert item '%s': %w"
)

// Log message constants
const (
	LogMsgConfigUnchanged      = "Item config unchanged since last sync, skipping"
	LogMsgUpdateMetadataFailed = "Failed to update catalog sync metadata"
	LogMsgSyncCompleted        = "Item catalog sync completed"
)
