package progress

import (
	"context"
	"fmt"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// Outcome tags what a reconciliation did with one patch record.
type Outcome string

const (
	OutcomeCreated Outcome = outcomeCreatedLabel
	OutcomeUpdated Outcome = outcomeUpdatedLabel
)

// reconcilePet merges one pet patch into the aggregate owned by ownerID.
//
// A patch with a known id belonging to ownerID updates that pet in place.
// Everything else - no id, unknown id, or an id owned by someone else -
// falls through to creation with defaults. The ownership mismatch case is
// deliberate: a save replayed against the wrong account must never mutate
// another player's pet, so it re-creates the record under the caller instead.
func reconcilePet(ctx context.Context, tx repository.ProgressTx, ownerID int64, patch PetPatch) (Outcome, error) {
	if patch.ID != nil {
		existing, err := tx.GetPet(ctx, *patch.ID)
		if err != nil {
			return "", err
		}
		if existing != nil && existing.ProgressID == ownerID {
			applyPetPatch(existing, patch)
			if err := tx.UpdatePet(ctx, existing); err != nil {
				return "", err
			}
			return OutcomeUpdated, nil
		}
	}

	pet := newPetFromPatch(ownerID, patch)
	if err := tx.InsertPet(ctx, pet); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

// applyPetPatch overwrites exactly the fields the patch carries.
func applyPetPatch(pet *domain.Pet, patch PetPatch) {
	if stage, line, ok := decodeEvolution(patch.EvolutionID); ok {
		pet.EvolutionStage = stage
		pet.EvolutionLine = line
	}
	if patch.Name != nil {
		pet.Name = *patch.Name
	}
	if patch.Level != nil {
		pet.Level = *patch.Level
	}
	if patch.XP != nil {
		pet.XP = *patch.XP
	}
	if patch.Hunger != nil {
		pet.Hunger = *patch.Hunger
	}
	if patch.Happiness != nil {
		pet.Happiness = *patch.Happiness
	}
	if stored, ok := decodeAbilities(patch.Abilities); ok {
		pet.Abilities = stored
	}
	if patch.CreatedAt != nil {
		pet.CreatedAt = patch.CreatedAt
	}
	if patch.LastUpdate != nil {
		pet.LastUpdate = patch.LastUpdate
	}
}

func newPetFromPatch(ownerID int64, patch PetPatch) *domain.Pet {
	pet := &domain.Pet{
		ProgressID: ownerID,
		Level:      domain.DefaultPetLevel,
		XP:         domain.DefaultPetXP,
		Hunger:     domain.DefaultPetHunger,
		Happiness:  domain.DefaultPetHappiness,
	}
	applyPetPatch(pet, patch)
	return pet
}

// reconcileHomeObject follows the same identity resolution as reconcilePet.
func reconcileHomeObject(ctx context.Context, tx repository.ProgressTx, ownerID int64, patch HomeObjectPatch) (Outcome, error) {
	if patch.ID != nil {
		existing, err := tx.GetHomeObject(ctx, *patch.ID)
		if err != nil {
			return "", err
		}
		if existing != nil && existing.ProgressID == ownerID {
			applyHomeObjectPatch(existing, patch)
			if err := tx.UpdateHomeObject(ctx, existing); err != nil {
				return "", err
			}
			return OutcomeUpdated, nil
		}
	}

	obj := &domain.HomeObject{ProgressID: ownerID}
	applyHomeObjectPatch(obj, patch)
	if err := tx.InsertHomeObject(ctx, obj); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

func applyHomeObjectPatch(obj *domain.HomeObject, patch HomeObjectPatch) {
	if patch.Type != nil {
		obj.Type = *patch.Type
	}
	if patch.ObjectID != nil {
		obj.ObjectIndex = *patch.ObjectID
	}
	if patch.X != nil {
		obj.X = *patch.X
	}
	if patch.Y != nil {
		obj.Y = *patch.Y
	}
}

// reconcileInventoryEntry follows the same identity resolution as
// reconcilePet, except that creation requires an itemId: an entry without
// one references nothing and is rejected rather than stored dangling.
func reconcileInventoryEntry(ctx context.Context, tx repository.ProgressTx, ownerID int64, patch InventoryPatch) (Outcome, error) {
	if patch.ID != nil {
		existing, err := tx.GetInventoryEntry(ctx, *patch.ID)
		if err != nil {
			return "", err
		}
		if existing != nil && existing.ProgressID == ownerID {
			applyInventoryPatch(existing, patch)
			if err := tx.UpdateInventoryEntry(ctx, existing); err != nil {
				return "", err
			}
			return OutcomeUpdated, nil
		}
	}

	if patch.ItemID == nil {
		return "", fmt.Errorf("%w: inventory entry requires itemId", domain.ErrInvalidInput)
	}

	entry := &domain.InventoryEntry{
		ProgressID: ownerID,
		Quantity:   domain.DefaultInventoryQuantity,
	}
	applyInventoryPatch(entry, patch)
	if err := tx.InsertInventoryEntry(ctx, entry); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

func applyInventoryPatch(entry *domain.InventoryEntry, patch InventoryPatch) {
	if patch.ItemID != nil {
		entry.ItemID = *patch.ItemID
	}
	if patch.Quantity != nil {
		entry.Quantity = *patch.Quantity
	}
}
