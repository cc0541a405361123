package main

import (
	"context"
	"log"
	"time"

	"github.com/varmintworks/varmint-server/internal/catalog"
	"github.com/varmintworks/varmint-server/internal/config"
	"github.com/varmintworks/varmint-server/internal/database"
	"github.com/varmintworks/varmint-server/internal/database/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbPool, err := database.NewPool(connString, 2, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	catalogService := catalog.NewService(postgres.NewCatalogRepository(dbPool))

	result, err := catalogService.SyncFromConfig(context.Background(), cfg.CatalogConfig)
	if err != nil {
		log.Fatalf("Catalog sync failed: %v", err)
	}

	if result.ItemsUpserted > 0 {
		log.Printf("Catalog seeded: %d items upserted, %d unchanged\n", result.ItemsUpserted, result.ItemsSkipped)
	} else {
		log.Println("Catalog already up to date")
	}
}
