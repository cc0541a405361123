package progress

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varmintworks/varmint-server/internal/domain"
)

type testEnv struct {
	svc   Service
	store *fakeStore
	repo  *fakeProgressRepository
}

func newTestEnv(items map[int]domain.Item) *testEnv {
	store := newFakeStore()
	repo := &fakeProgressRepository{store: store}
	if items == nil {
		items = map[int]domain.Item{}
	}
	svc := NewService(&fakeAccountRepository{store: store}, repo, &fakeItemSource{items: items})
	return &testEnv{svc: svc, store: store, repo: repo}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty aggregate after registration", func(t *testing.T) {
		env := newTestEnv(nil)
		id := env.store.addAccount("mossy")

		agg, err := env.svc.Fetch(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, agg.ID)
		assert.Equal(t, "mossy", agg.Username)
		assert.False(t, agg.TutorialCompleted)
		assert.Equal(t, 0, agg.Currency)
		// Collections serialize as [], never null.
		assert.NotNil(t, agg.Pets)
		assert.Empty(t, agg.Pets)
		assert.NotNil(t, agg.HomeObjects)
		assert.NotNil(t, agg.Inventory)
	})

	t.Run("unknown account", func(t *testing.T) {
		env := newTestEnv(nil)

		_, err := env.svc.Fetch(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestUpdate_Scalars(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		TutorialCompleted: ptr(true),
		Currency:          ptr(250),
	})
	require.NoError(t, err)
	assert.True(t, agg.TutorialCompleted)
	assert.Equal(t, 250, agg.Currency)

	// Omitted scalars persist across later saves.
	agg, err = env.svc.Update(ctx, id, &Patch{Currency: ptr(300)})
	require.NoError(t, err)
	assert.True(t, agg.TutorialCompleted)
	assert.Equal(t, 300, agg.Currency)
}

func TestUpdate_CreatesPetWithDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{Name: ptr("Ziggy")}},
	})
	require.NoError(t, err)
	require.Len(t, agg.Pets, 1)

	pet := agg.Pets[0]
	assert.NotZero(t, pet.ID)
	assert.Equal(t, id, pet.ProgressID)
	assert.Equal(t, "Ziggy", pet.Name)
	assert.Equal(t, domain.DefaultPetLevel, pet.Level)
	assert.Equal(t, domain.DefaultPetHunger, pet.Hunger)
	assert.Equal(t, domain.DefaultPetHappiness, pet.Happiness)
	assert.Equal(t, [2]int{0, 0}, pet.EvolutionID)
	assert.Equal(t, []string{}, pet.Abilities)
	assert.Nil(t, pet.CreatedAt)
}

func TestUpdate_RoundTripIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	first, err := env.svc.Update(ctx, id, &Patch{
		Pets:        []PetPatch{{Name: ptr("Ziggy"), Abilities: json.RawMessage(`["fly","swim"]`), EvolutionID: json.RawMessage(`[1,0]`)}},
		HomeObjects: []HomeObjectPatch{{Type: ptr("decor"), ObjectID: ptr(4), X: ptr(2.0), Y: ptr(3.0)}},
	})
	require.NoError(t, err)
	require.Len(t, first.Pets, 1)

	// Echo the fetched state back, ids included: nothing new may appear.
	echo := &Patch{
		Pets: []PetPatch{{
			ID:          ptr(first.Pets[0].ID),
			Name:        ptr(first.Pets[0].Name),
			Level:       ptr(first.Pets[0].Level),
			Abilities:   json.RawMessage(`["fly","swim"]`),
			EvolutionID: json.RawMessage(`[1,0]`),
		}},
		HomeObjects: []HomeObjectPatch{{
			ID:   ptr(first.HomeObjects[0].ID),
			Type: ptr(first.HomeObjects[0].Type),
			X:    ptr(first.HomeObjects[0].X),
			Y:    ptr(first.HomeObjects[0].Y),
		}},
	}
	second, err := env.svc.Update(ctx, id, echo)
	require.NoError(t, err)

	assert.Len(t, second.Pets, 1)
	assert.Len(t, second.HomeObjects, 1)
	assert.Equal(t, first.Pets[0].ID, second.Pets[0].ID)
	assert.Equal(t, []string{"fly", "swim"}, second.Pets[0].Abilities)
	assert.Equal(t, [2]int{1, 0}, second.Pets[0].EvolutionID)
}

func TestUpdate_OmittedCollectionsUntouched(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	_, err := env.svc.Update(ctx, id, &Patch{
		Pets:        []PetPatch{{Name: ptr("Ziggy")}},
		HomeObjects: []HomeObjectPatch{{Type: ptr("decor")}},
	})
	require.NoError(t, err)

	// A save carrying only currency must not delete anything.
	agg, err := env.svc.Update(ctx, id, &Patch{Currency: ptr(10)})
	require.NoError(t, err)
	assert.Len(t, agg.Pets, 1)
	assert.Len(t, agg.HomeObjects, 1)
}

func TestUpdate_UnknownIDCreates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{ID: ptr(int64(9999)), Name: ptr("Ghost")}},
	})
	require.NoError(t, err)
	require.Len(t, agg.Pets, 1)
	// The stale client id is discarded; storage assigns a fresh one.
	assert.NotEqual(t, int64(9999), agg.Pets[0].ID)
	assert.Equal(t, "Ghost", agg.Pets[0].Name)
	assert.Equal(t, domain.DefaultPetLevel, agg.Pets[0].Level)
}

func TestUpdate_OwnershipMismatchCreatesForCaller(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	aliceID := env.store.addAccount("alice")
	bobID := env.store.addAccount("bob")

	aliceAgg, err := env.svc.Update(ctx, aliceID, &Patch{
		Pets: []PetPatch{{Name: ptr("Ziggy"), Level: ptr(5)}},
	})
	require.NoError(t, err)
	alicePetID := aliceAgg.Pets[0].ID

	// Bob replays a save that references Alice's pet id.
	bobAgg, err := env.svc.Update(ctx, bobID, &Patch{
		Pets: []PetPatch{{ID: ptr(alicePetID), Name: ptr("Stolen")}},
	})
	require.NoError(t, err)
	require.Len(t, bobAgg.Pets, 1)
	assert.NotEqual(t, alicePetID, bobAgg.Pets[0].ID)
	assert.Equal(t, bobID, bobAgg.Pets[0].ProgressID)
	// The new pet gets defaults, not Alice's values.
	assert.Equal(t, domain.DefaultPetLevel, bobAgg.Pets[0].Level)

	// Alice's pet is untouched.
	aliceAgg, err = env.svc.Fetch(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "Ziggy", aliceAgg.Pets[0].Name)
	assert.Equal(t, 5, aliceAgg.Pets[0].Level)
}

func TestUpdate_PartialPetUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{Name: ptr("Ziggy"), Level: ptr(3), Hunger: ptr(0.8)}},
	})
	require.NoError(t, err)
	petID := agg.Pets[0].ID

	agg, err = env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{ID: ptr(petID), Hunger: ptr(0.2)}},
	})
	require.NoError(t, err)
	require.Len(t, agg.Pets, 1)
	assert.Equal(t, 0.2, agg.Pets[0].Hunger)
	assert.Equal(t, "Ziggy", agg.Pets[0].Name)
	assert.Equal(t, 3, agg.Pets[0].Level)
}

func TestUpdate_MalformedShapesDegradeSilently(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{Name: ptr("Ziggy"), Abilities: json.RawMessage(`["fly"]`), EvolutionID: json.RawMessage(`[2,1]`)}},
	})
	require.NoError(t, err)
	petID := agg.Pets[0].ID

	// Malformed shapes on update leave the stored values alone.
	agg, err = env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{ID: ptr(petID), Abilities: json.RawMessage(`{"bad": true}`), EvolutionID: json.RawMessage(`"2-1"`)}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fly"}, agg.Pets[0].Abilities)
	assert.Equal(t, [2]int{2, 1}, agg.Pets[0].EvolutionID)

	// Malformed shapes on create fall back to defaults.
	agg, err = env.svc.Update(ctx, id, &Patch{
		Pets: []PetPatch{{Name: ptr("Blob"), Abilities: json.RawMessage(`42`), EvolutionID: json.RawMessage(`[]`)}},
	})
	require.NoError(t, err)
	require.Len(t, agg.Pets, 2)
	assert.Equal(t, []string{}, agg.Pets[1].Abilities)
	assert.Equal(t, [2]int{0, 0}, agg.Pets[1].EvolutionID)
}

func TestUpdate_InventoryCreateRequiresItemID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	_, err := env.svc.Update(ctx, id, &Patch{
		Currency:  ptr(50),
		Inventory: []InventoryPatch{{Quantity: ptr(2)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// The failed save must not have applied its scalar changes either.
	agg, err := env.svc.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Currency)
	assert.Empty(t, agg.Inventory)
}

func TestUpdate_InventoryDefaultsAndItemEmbed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(map[int]domain.Item{
		3: {ID: 3, Name: "Meat", Category: "food", Price: 15},
	})
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		Inventory: []InventoryPatch{
			{ItemID: ptr(3)},
			{ItemID: ptr(404), Quantity: ptr(7)},
		},
	})
	require.NoError(t, err)
	require.Len(t, agg.Inventory, 2)

	assert.Equal(t, domain.DefaultInventoryQuantity, agg.Inventory[0].Quantity)
	require.NotNil(t, agg.Inventory[0].Item)
	assert.Equal(t, "Meat", agg.Inventory[0].Item.Name)

	// Dangling catalog references embed null, not an error.
	assert.Equal(t, 7, agg.Inventory[1].Quantity)
	assert.Nil(t, agg.Inventory[1].Item)
}

func TestUpdate_CommitFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	env.repo.failCommit = true
	_, err := env.svc.Update(ctx, id, &Patch{
		Currency: ptr(500),
		Pets:     []PetPatch{{Name: ptr("Ziggy")}},
	})
	require.Error(t, err)

	agg, err := env.svc.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Currency)
	assert.Empty(t, agg.Pets)
}

func TestUpdate_NilPatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	_, err := env.svc.Update(ctx, id, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)

	_, err := env.svc.Update(ctx, 12345, &Patch{Currency: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDeleteHomeObject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	agg, err := env.svc.Update(ctx, id, &Patch{
		HomeObjects: []HomeObjectPatch{{Type: ptr("temporary"), ObjectID: ptr(2)}},
	})
	require.NoError(t, err)
	objID := agg.HomeObjects[0].ID

	ownerID, err := env.svc.DeleteHomeObject(ctx, objID)
	require.NoError(t, err)
	assert.Equal(t, id, ownerID)

	agg, err = env.svc.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, agg.HomeObjects)

	_, err = env.svc.DeleteHomeObject(ctx, objID)
	assert.ErrorIs(t, err, domain.ErrHomeObjectNotFound)
}

func TestUpdate_ConcurrentSavesSerializePerAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(nil)
	id := env.store.addAccount("mossy")

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := env.svc.Update(ctx, id, &Patch{
				Pets: []PetPatch{{Name: ptr("Racer")}},
			})
			done <- err
		}()
	}
	require.NoError(t, <-done)
	require.NoError(t, <-done)

	agg, err := env.svc.Fetch(ctx, id)
	require.NoError(t, err)
	// Both saves carried no pet id, so both create; the point is that the
	// staged transactions did not clobber each other.
	assert.Len(t, agg.Pets, 2)
}
