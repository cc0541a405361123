package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/repository"
	"github.com/varmintworks/varmint-server/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON. Field names mirror
// the wire form of domain.Item so designers edit the same keys the client
// receives.
type Def struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Price          int     `json:"price"`
	HungerRestore  float64 `json:"hungerRestore,omitempty"`
	HappinessBoost float64 `json:"happinessBoost,omitempty"`
	HealthEffect   float64 `json:"healthEffect,omitempty"`
	FootprintW     int     `json:"footprintW,omitempty"`
	FootprintH     int     `json:"footprintH,omitempty"`
	HeldEffect     string  `json:"heldEffect,omitempty"`
	SizeClass      string  `json:"sizeClass,omitempty"`
	Storable       bool    `json:"storable"`
	Sprite         string  `json:"sprite,omitempty"`
}

// Loader handles loading and validating the item catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsUpserted int
	ItemsSkipped  int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an item catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seenIDs := make(map[int]bool, len(config.Items))

	for i := range config.Items {
		item := &config.Items[i]

		if item.ID <= 0 {
			return fmt.Errorf("%w: item at index %d has non-positive id", ErrInvalidConfig, i)
		}
		if seenIDs[item.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
		}
		seenIDs[item.ID] = true

		if item.Name == "" {
			return fmt.Errorf("%w: item %d has empty name", ErrInvalidConfig, item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item '%s' has negative price", ErrInvalidConfig, item.Name)
		}
	}

	return nil
}

// SyncToDatabase syncs the item configuration to the database idempotently.
// Unchanged files (by hash and mod time) are skipped entirely; changed files
// upsert every definition that differs from its stored row.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	hasChanged, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !hasChanged {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	existing, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListExistingFailed, err)
	}
	existingByID := make(map[int]domain.Item, len(existing))
	for _, item := range existing {
		existingByID[item.ID] = item
	}

	result := &SyncResult{}
	for _, def := range config.Items {
		item := def.toDomain()
		if stored, ok := existingByID[item.ID]; ok && stored == *item {
			result.ItemsSkipped++
			continue
		}
		if err := repo.UpsertItem(ctx, item); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.Name, err)
		}
		result.ItemsUpserted++
	}

	if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"upserted", result.ItemsUpserted,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func (d *Def) toDomain() *domain.Item {
	return &domain.Item{
		ID:             d.ID,
		Name:           d.Name,
		Category:       d.Category,
		Description:    d.Description,
		Price:          d.Price,
		HungerRestore:  d.HungerRestore,
		HappinessBoost: d.HappinessBoost,
		HealthEffect:   d.HealthEffect,
		FootprintW:     d.FootprintW,
		FootprintH:     d.FootprintH,
		HeldEffect:     d.HeldEffect,
		SizeClass:      d.SizeClass,
		Storable:       d.Storable,
		Sprite:         d.Sprite,
	}
}

func fileHashAndModTime(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), fileInfo.ModTime(), nil
}

// hasFileChanged checks if the config file has changed since last sync
func hasFileChanged(ctx context.Context, repo repository.Catalog, configPath string) (bool, error) {
	fileHash, modTime, err := fileHashAndModTime(configPath)
	if err != nil {
		return false, err
	}

	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		return false, err
	}
	if syncMeta == nil {
		// First sync - no metadata exists
		return true, nil
	}

	if syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime) {
		return true, nil
	}
	return false, nil
}

// updateSyncMetadata updates the sync metadata after a successful sync
func updateSyncMetadata(ctx context.Context, repo repository.Catalog, configPath string) error {
	fileHash, modTime, err := fileHashAndModTime(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.CatalogSync{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}
