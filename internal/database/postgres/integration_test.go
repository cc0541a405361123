package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/varmintworks/varmint-server/internal/database"
	"github.com/varmintworks/varmint-server/internal/domain"
)

// startTestDatabase spins up a throwaway Postgres container, runs the
// embedded migrations against it and returns the connection string.
func startTestDatabase(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *tcpostgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("testdb"),
			tcpostgres.WithUsername("testuser"),
			tcpostgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return ""
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(connStr); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return connStr
}

func TestRepositories_Integration(t *testing.T) {
	connStr := startTestDatabase(t)
	ctx := context.Background()

	pool, err := database.NewPool(connStr, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	accounts := NewAccountRepository(pool)
	progressRepo := NewProgressRepository(pool)
	catalog := NewCatalogRepository(pool)

	t.Run("account create and lookup", func(t *testing.T) {
		account := &domain.Account{Username: "mossy", Credential: "hunter2"}
		require.NoError(t, accounts.CreateWithProgress(ctx, account))
		assert.NotZero(t, account.ID)

		byName, err := accounts.GetByUsername(ctx, "mossy")
		require.NoError(t, err)
		assert.Equal(t, account.ID, byName.ID)
		assert.Equal(t, "hunter2", byName.Credential)

		// Registration seeds an empty progress record under the same id.
		progress, err := progressRepo.Get(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ID, progress.ID)
		assert.False(t, progress.TutorialCompleted)
		assert.Equal(t, 0, progress.Currency)
	})

	t.Run("duplicate username", func(t *testing.T) {
		first := &domain.Account{Username: "taken", Credential: "a"}
		require.NoError(t, accounts.CreateWithProgress(ctx, first))

		second := &domain.Account{Username: "taken", Credential: "b"}
		err := accounts.CreateWithProgress(ctx, second)
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("account not found", func(t *testing.T) {
		_, err := accounts.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		_, err = accounts.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("progress tx commit is atomic", func(t *testing.T) {
		account := &domain.Account{Username: "txowner", Credential: "c"}
		require.NoError(t, accounts.CreateWithProgress(ctx, account))

		tx, err := progressRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		progress, err := tx.Get(ctx, account.ID)
		require.NoError(t, err)
		progress.Currency = 150
		progress.TutorialCompleted = true
		require.NoError(t, tx.UpdateScalars(ctx, progress))

		created := time.Now().UnixMilli()
		pet := &domain.Pet{
			ProgressID: account.ID,
			Name:       "Ziggy",
			Level:      domain.DefaultPetLevel,
			Hunger:     domain.DefaultPetHunger,
			Happiness:  domain.DefaultPetHappiness,
			Abilities:  "fly,swim",
			CreatedAt:  &created,
		}
		require.NoError(t, tx.InsertPet(ctx, pet))
		assert.NotZero(t, pet.ID)

		// Uncommitted writes must not be visible outside the transaction.
		outside, err := progressRepo.Get(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, outside.Currency)

		require.NoError(t, tx.Commit(ctx))

		after, err := progressRepo.Get(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, 150, after.Currency)
		assert.True(t, after.TutorialCompleted)

		pets, err := progressRepo.ListPets(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, pets, 1)
		assert.Equal(t, "Ziggy", pets[0].Name)
		assert.Equal(t, "fly,swim", pets[0].Abilities)
		require.NotNil(t, pets[0].CreatedAt)
		assert.Equal(t, created, *pets[0].CreatedAt)
		assert.Nil(t, pets[0].LastUpdate)
	})

	t.Run("progress tx rollback discards writes", func(t *testing.T) {
		account := &domain.Account{Username: "rollback", Credential: "c"}
		require.NoError(t, accounts.CreateWithProgress(ctx, account))

		tx, err := progressRepo.BeginTx(ctx)
		require.NoError(t, err)

		require.NoError(t, tx.InsertHomeObject(ctx, &domain.HomeObject{
			ProgressID: account.ID, Type: "decor", ObjectIndex: 3, X: 1.5, Y: 2.5,
		}))
		require.NoError(t, tx.Rollback(ctx))

		objects, err := progressRepo.ListHomeObjects(ctx, account.ID)
		require.NoError(t, err)
		assert.Empty(t, objects)
	})

	t.Run("tx get returns nil on miss", func(t *testing.T) {
		tx, err := progressRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		pet, err := tx.GetPet(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, pet)

		obj, err := tx.GetHomeObject(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, obj)

		entry, err := tx.GetInventoryEntry(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("delete home object returns owner", func(t *testing.T) {
		account := &domain.Account{Username: "deleter", Credential: "c"}
		require.NoError(t, accounts.CreateWithProgress(ctx, account))

		tx, err := progressRepo.BeginTx(ctx)
		require.NoError(t, err)
		obj := &domain.HomeObject{ProgressID: account.ID, Type: "temporary", ObjectIndex: 1}
		require.NoError(t, tx.InsertHomeObject(ctx, obj))
		require.NoError(t, tx.Commit(ctx))

		owner, err := progressRepo.DeleteHomeObject(ctx, obj.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ID, owner)

		_, err = progressRepo.DeleteHomeObject(ctx, obj.ID)
		assert.ErrorIs(t, err, domain.ErrHomeObjectNotFound)
	})

	t.Run("inventory list is creation ordered", func(t *testing.T) {
		account := &domain.Account{Username: "collector", Credential: "c"}
		require.NoError(t, accounts.CreateWithProgress(ctx, account))

		tx, err := progressRepo.BeginTx(ctx)
		require.NoError(t, err)
		for _, itemID := range []int{7, 3, 9} {
			require.NoError(t, tx.InsertInventoryEntry(ctx, &domain.InventoryEntry{
				ProgressID: account.ID, ItemID: itemID, Quantity: 1,
			}))
		}
		require.NoError(t, tx.Commit(ctx))

		entries, err := progressRepo.ListInventory(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 7, entries[0].ItemID)
		assert.Equal(t, 3, entries[1].ItemID)
		assert.Equal(t, 9, entries[2].ItemID)
	})

	t.Run("catalog upsert and sync metadata", func(t *testing.T) {
		item := &domain.Item{ID: 1, Name: "apple", Category: "food", Price: 5, HungerRestore: 0.2}
		require.NoError(t, catalog.UpsertItem(ctx, item))

		got, err := catalog.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "apple", got.Name)

		item.Price = 6
		require.NoError(t, catalog.UpsertItem(ctx, item))
		got, err = catalog.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 6, got.Price)

		_, err = catalog.GetItem(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		meta, err := catalog.GetSyncMetadata(ctx, "items.json")
		require.NoError(t, err)
		assert.Nil(t, meta)

		now := time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, catalog.UpsertSyncMetadata(ctx, &domain.CatalogSync{
			ConfigName:   "items.json",
			LastSyncTime: now,
			FileHash:     "abc123",
			FileModTime:  now,
		}))

		meta, err = catalog.GetSyncMetadata(ctx, "items.json")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "abc123", meta.FileHash)
	})
}
