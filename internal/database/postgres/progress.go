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
	queryGetProgress = `
		SELECT progress_id, tutorial_completed, currency
		FROM progress
		WHERE progress_id = $1`

	queryUpdateProgressScalars = `
		UPDATE progress
		SET tutorial_completed = $2, currency = $3
		WHERE progress_id = $1`

	queryGetPet = `
		SELECT pet_id, progress_id, evolution_stage, evolution_line, pet_name,
		       pet_level, xp, hunger, happiness, abilities, created_at, last_update
		FROM pets
		WHERE pet_id = $1`

	queryListPets = `
		SELECT pet_id, progress_id, evolution_stage, evolution_line, pet_name,
		       pet_level, xp, hunger, happiness, abilities, created_at, last_update
		FROM pets
		WHERE progress_id = $1
		ORDER BY pet_id`

	queryInsertPet = `
		INSERT INTO pets (progress_id, evolution_stage, evolution_line, pet_name,
		                  pet_level, xp, hunger, happiness, abilities, created_at, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING pet_id`

	queryUpdatePet = `
		UPDATE pets
		SET evolution_stage = $2, evolution_line = $3, pet_name = $4, pet_level = $5,
		    xp = $6, hunger = $7, happiness = $8, abilities = $9, created_at = $10,
		    last_update = $11
		WHERE pet_id = $1`

	queryGetHomeObject = `
		SELECT home_object_id, progress_id, object_type, object_index, x, y
		FROM home_objects
		WHERE home_object_id = $1`

	queryListHomeObjects = `
		SELECT home_object_id, progress_id, object_type, object_index, x, y
		FROM home_objects
		WHERE progress_id = $1
		ORDER BY home_object_id`

	queryInsertHomeObject = `
		INSERT INTO home_objects (progress_id, object_type, object_index, x, y)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING home_object_id`

	queryUpdateHomeObject = `
		UPDATE home_objects
		SET object_type = $2, object_index = $3, x = $4, y = $5
		WHERE home_object_id = $1`

	queryDeleteHomeObject = `
		DELETE FROM home_objects
		WHERE home_object_id = $1
		RETURNING progress_id`

	queryGetInventoryEntry = `
		SELECT entry_id, progress_id, item_id, quantity
		FROM inventory_entries
		WHERE entry_id = $1`

	queryListInventory = `
		SELECT entry_id, progress_id, item_id, quantity
		FROM inventory_entries
		WHERE progress_id = $1
		ORDER BY entry_id`

	queryInsertInventoryEntry = `
		INSERT INTO inventory_entries (progress_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING entry_id`

	queryUpdateInventoryEntry = `
		UPDATE inventory_entries
		SET item_id = $2, quantity = $3
		WHERE entry_id = $1`
)

type progressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new PostgreSQL progress repository
func NewProgressRepository(db *pgxpool.Pool) repository.Progress {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, progressID int64) (*domain.Progress, error) {
	return getProgress(ctx, r.db, progressID)
}

func (r *progressRepository) ListPets(ctx context.Context, progressID int64) ([]domain.Pet, error) {
	return listPets(ctx, r.db, progressID)
}

func (r *progressRepository) ListHomeObjects(ctx context.Context, progressID int64) ([]domain.HomeObject, error) {
	return listHomeObjects(ctx, r.db, progressID)
}

func (r *progressRepository) ListInventory(ctx context.Context, progressID int64) ([]domain.InventoryEntry, error) {
	return listInventory(ctx, r.db, progressID)
}

func (r *progressRepository) DeleteHomeObject(ctx context.Context, homeObjectID int64) (int64, error) {
	var progressID int64
	err := r.db.QueryRow(ctx, queryDeleteHomeObject, homeObjectID).Scan(&progressID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrHomeObjectNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteHomeObject, err)
	}
	return progressID, nil
}

func (r *progressRepository) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &progressTx{tx: tx}, nil
}

// progressTx implements repository.ProgressTx over a pgx transaction.
type progressTx struct {
	tx pgx.Tx
}

func (t *progressTx) Get(ctx context.Context, progressID int64) (*domain.Progress, error) {
	return getProgress(ctx, t.tx, progressID)
}

func (t *progressTx) UpdateScalars(ctx context.Context, progress *domain.Progress) error {
	_, err := t.tx.Exec(ctx, queryUpdateProgressScalars,
		progress.ID, progress.TutorialCompleted, progress.Currency)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateProgress, err)
	}
	return nil
}

func (t *progressTx) GetPet(ctx context.Context, petID int64) (*domain.Pet, error) {
	pet, err := scanPet(t.tx.QueryRow(ctx, queryGetPet, petID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPet, err)
	}
	return pet, nil
}

func (t *progressTx) InsertPet(ctx context.Context, pet *domain.Pet) error {
	err := t.tx.QueryRow(ctx, queryInsertPet,
		pet.ProgressID, pet.EvolutionStage, pet.EvolutionLine, pet.Name,
		pet.Level, pet.XP, pet.Hunger, pet.Happiness, pet.Abilities,
		pet.CreatedAt, pet.LastUpdate).Scan(&pet.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPet, err)
	}
	return nil
}

func (t *progressTx) UpdatePet(ctx context.Context, pet *domain.Pet) error {
	_, err := t.tx.Exec(ctx, queryUpdatePet,
		pet.ID, pet.EvolutionStage, pet.EvolutionLine, pet.Name, pet.Level,
		pet.XP, pet.Hunger, pet.Happiness, pet.Abilities, pet.CreatedAt,
		pet.LastUpdate)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePet, err)
	}
	return nil
}

func (t *progressTx) ListPets(ctx context.Context, progressID int64) ([]domain.Pet, error) {
	return listPets(ctx, t.tx, progressID)
}

func (t *progressTx) GetHomeObject(ctx context.Context, homeObjectID int64) (*domain.HomeObject, error) {
	obj, err := scanHomeObject(t.tx.QueryRow(ctx, queryGetHomeObject, homeObjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHomeObject, err)
	}
	return obj, nil
}

func (t *progressTx) InsertHomeObject(ctx context.Context, obj *domain.HomeObject) error {
	err := t.tx.QueryRow(ctx, queryInsertHomeObject,
		obj.ProgressID, obj.Type, obj.ObjectIndex, obj.X, obj.Y).Scan(&obj.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertHomeObject, err)
	}
	return nil
}

func (t *progressTx) UpdateHomeObject(ctx context.Context, obj *domain.HomeObject) error {
	_, err := t.tx.Exec(ctx, queryUpdateHomeObject,
		obj.ID, obj.Type, obj.ObjectIndex, obj.X, obj.Y)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateHomeObject, err)
	}
	return nil
}

func (t *progressTx) ListHomeObjects(ctx context.Context, progressID int64) ([]domain.HomeObject, error) {
	return listHomeObjects(ctx, t.tx, progressID)
}

func (t *progressTx) GetInventoryEntry(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	entry, err := scanInventoryEntry(t.tx.QueryRow(ctx, queryGetInventoryEntry, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryEntry, err)
	}
	return entry, nil
}

func (t *progressTx) InsertInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error {
	err := t.tx.QueryRow(ctx, queryInsertInventoryEntry,
		entry.ProgressID, entry.ItemID, entry.Quantity).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertInventoryEntry, err)
	}
	return nil
}

func (t *progressTx) UpdateInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error {
	_, err := t.tx.Exec(ctx, queryUpdateInventoryEntry,
		entry.ID, entry.ItemID, entry.Quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventoryEntry, err)
	}
	return nil
}

func (t *progressTx) ListInventory(ctx context.Context, progressID int64) ([]domain.InventoryEntry, error) {
	return listInventory(ctx, t.tx, progressID)
}

func (t *progressTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// Rollback is safe to defer alongside Commit; rolling back a committed
// transaction is a no-op.
func (t *progressTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// ---- Shared query helpers ----

func getProgress(ctx context.Context, q querier, progressID int64) (*domain.Progress, error) {
	var progress domain.Progress
	err := q.QueryRow(ctx, queryGetProgress, progressID).
		Scan(&progress.ID, &progress.TutorialCompleted, &progress.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return &progress, nil
}

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var pet domain.Pet
	err := row.Scan(&pet.ID, &pet.ProgressID, &pet.EvolutionStage, &pet.EvolutionLine,
		&pet.Name, &pet.Level, &pet.XP, &pet.Hunger, &pet.Happiness, &pet.Abilities,
		&pet.CreatedAt, &pet.LastUpdate)
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func listPets(ctx context.Context, q querier, progressID int64) ([]domain.Pet, error) {
	rows, err := q.Query(ctx, queryListPets, progressID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPets, err)
	}
	defer rows.Close()

	pets := []domain.Pet{}
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPets, err)
		}
		pets = append(pets, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPets, err)
	}
	return pets, nil
}

func scanHomeObject(row pgx.Row) (*domain.HomeObject, error) {
	var obj domain.HomeObject
	err := row.Scan(&obj.ID, &obj.ProgressID, &obj.Type, &obj.ObjectIndex, &obj.X, &obj.Y)
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

func listHomeObjects(ctx context.Context, q querier, progressID int64) ([]domain.HomeObject, error) {
	rows, err := q.Query(ctx, queryListHomeObjects, progressID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHomeObjects, err)
	}
	defer rows.Close()

	objects := []domain.HomeObject{}
	for rows.Next() {
		obj, err := scanHomeObject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHomeObjects, err)
		}
		objects = append(objects, *obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHomeObjects, err)
	}
	return objects, nil
}

func scanInventoryEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var entry domain.InventoryEntry
	err := row.Scan(&entry.ID, &entry.ProgressID, &entry.ItemID, &entry.Quantity)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func listInventory(ctx context.Context, q querier, progressID int64) ([]domain.InventoryEntry, error) {
	rows, err := q.Query(ctx, queryListInventory, progressID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		entry, err := scanInventoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return entries, nil
}
