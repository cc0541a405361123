package domain

import "time"

// CatalogSync tracks when a catalog config file was last synced to the
// database, keyed by config name. Used to skip re-syncing unchanged files.
type CatalogSync struct {
	ConfigName   string
	LastSyncTime time.Time
	FileHash     string
	FileModTime  time.Time
}
