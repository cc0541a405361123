package progress

import (
	"context"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// Aggregate is the wire form of one account's full game state, exactly as
// the GET and PUT responses serialize it.
type Aggregate struct {
	ID                int64  `json:"id"`
	Username          string `json:"username"`
	TutorialCompleted bool   `json:"tutorialCompleted"`
	Currency          int    `json:"currency"`

	Pets        []PetView            `json:"pets"`
	HomeObjects []HomeObjectView     `json:"homeObjects"`
	Inventory   []InventoryEntryView `json:"inventory"`
}

// PetView is the wire form of one pet. EvolutionID is the ordered pair
// [stage, line] and Abilities is always a JSON array, [] when empty.
type PetView struct {
	ID          int64    `json:"id"`
	ProgressID  int64    `json:"progressId"`
	EvolutionID [2]int   `json:"evolutionId"`
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	XP          int      `json:"xp"`
	Hunger      float64  `json:"hunger"`
	Happiness   float64  `json:"happiness"`
	Abilities   []string `json:"abilities"`
	CreatedAt   *int64   `json:"createdAt"`
	LastUpdate  *int64   `json:"lastUpdate"`
}

// HomeObjectView is the wire form of one placed home object.
type HomeObjectView struct {
	ID         int64   `json:"id"`
	ProgressID int64   `json:"progressId"`
	Type       string  `json:"type"`
	ObjectID   int     `json:"objectId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// InventoryEntryView is the wire form of one inventory entry. Item is the
// embedded catalog definition, or null when ItemID references nothing.
type InventoryEntryView struct {
	ID         int64        `json:"id"`
	ProgressID int64        `json:"progressId"`
	ItemID     int          `json:"itemId"`
	Quantity   int          `json:"quantity"`
	Item       *domain.Item `json:"item"`
}

// ItemSource resolves catalog items for inventory embedding. Unknown ids
// resolve to nil rather than an error.
type ItemSource interface {
	GetItemOrNil(ctx context.Context, itemID int) (*domain.Item, error)
}

func petView(pet domain.Pet) PetView {
	return PetView{
		ID:          pet.ID,
		ProgressID:  pet.ProgressID,
		EvolutionID: [2]int{pet.EvolutionStage, pet.EvolutionLine},
		Name:        pet.Name,
		Level:       pet.Level,
		XP:          pet.XP,
		Hunger:      pet.Hunger,
		Happiness:   pet.Happiness,
		Abilities:   pet.AbilityList(),
		CreatedAt:   pet.CreatedAt,
		LastUpdate:  pet.LastUpdate,
	}
}

func homeObjectView(obj domain.HomeObject) HomeObjectView {
	return HomeObjectView{
		ID:         obj.ID,
		ProgressID: obj.ProgressID,
		Type:       obj.Type,
		ObjectID:   obj.ObjectIndex,
		X:          obj.X,
		Y:          obj.Y,
	}
}

func inventoryEntryView(ctx context.Context, items ItemSource, entry domain.InventoryEntry) (InventoryEntryView, error) {
	item, err := items.GetItemOrNil(ctx, entry.ItemID)
	if err != nil {
		return InventoryEntryView{}, err
	}
	return InventoryEntryView{
		ID:         entry.ID,
		ProgressID: entry.ProgressID,
		ItemID:     entry.ItemID,
		Quantity:   entry.Quantity,
		Item:       item,
	}, nil
}

// assembleAggregate builds the wire aggregate from stored records.
func assembleAggregate(ctx context.Context, items ItemSource, account *domain.Account, state *domain.Progress,
	pets []domain.Pet, objects []domain.HomeObject, entries []domain.InventoryEntry) (*Aggregate, error) {

	agg := &Aggregate{
		ID:                state.ID,
		Username:          account.Username,
		TutorialCompleted: state.TutorialCompleted,
		Currency:          state.Currency,
		Pets:              make([]PetView, 0, len(pets)),
		HomeObjects:       make([]HomeObjectView, 0, len(objects)),
		Inventory:         make([]InventoryEntryView, 0, len(entries)),
	}

	for _, pet := range pets {
		agg.Pets = append(agg.Pets, petView(pet))
	}
	for _, obj := range objects {
		agg.HomeObjects = append(agg.HomeObjects, homeObjectView(obj))
	}
	for _, entry := range entries {
		view, err := inventoryEntryView(ctx, items, entry)
		if err != nil {
			return nil, err
		}
		agg.Inventory = append(agg.Inventory, view)
	}

	return agg, nil
}
