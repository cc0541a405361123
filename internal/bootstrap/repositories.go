package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varmintworks/varmint-server/internal/database/postgres"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Account  repository.Account
	Progress repository.Progress
	Catalog  repository.Catalog
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Account:  postgres.NewAccountRepository(dbPool),
		Progress: postgres.NewProgressRepository(dbPool),
		Catalog:  postgres.NewCatalogRepository(dbPool),
	}
}
