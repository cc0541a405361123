package progress

import (
	"encoding/json"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// Patch is the decoded body of a progress save. Every field is optional:
// pointer fields distinguish an omitted key from an explicit zero, and a nil
// collection means "no records of that kind in this save", never "delete".
//
// Abilities and EvolutionID stay raw because clients have shipped malformed
// shapes for both; a shape that does not decode degrades to "field absent"
// instead of failing the whole save.
type Patch struct {
	TutorialCompleted *bool `json:"tutorialCompleted"`
	Currency          *int  `json:"currency"`

	Pets        []PetPatch        `json:"pets"`
	HomeObjects []HomeObjectPatch `json:"homeObjects"`
	Inventory   []InventoryPatch  `json:"inventory"`
}

// PetPatch carries the client state of one pet.
type PetPatch struct {
	ID          *int64          `json:"id"`
	EvolutionID json.RawMessage `json:"evolutionId"`
	Name        *string         `json:"name"`
	Level       *int            `json:"level"`
	XP          *int            `json:"xp"`
	Hunger      *float64        `json:"hunger"`
	Happiness   *float64        `json:"happiness"`
	Abilities   json.RawMessage `json:"abilities"`
	CreatedAt   *int64          `json:"createdAt"`
	LastUpdate  *int64          `json:"lastUpdate"`
}

// HomeObjectPatch carries the client state of one placed home object.
type HomeObjectPatch struct {
	ID       *int64   `json:"id"`
	Type     *string  `json:"type"`
	ObjectID *int     `json:"objectId"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

// InventoryPatch carries the client state of one inventory entry.
type InventoryPatch struct {
	ID       *int64 `json:"id"`
	ItemID   *int   `json:"itemId"`
	Quantity *int   `json:"quantity"`
}

// decodeEvolution extracts the [stage, line] pair from a raw evolutionId.
// Anything other than a two-element integer array reports ok=false and the
// field is treated as absent.
func decodeEvolution(raw json.RawMessage) (stage, line int, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, 0, false
	}
	var pair []int
	if err := json.Unmarshal(raw, &pair); err != nil {
		return 0, 0, false
	}
	if len(pair) != 2 {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}

// decodeAbilities extracts the stored comma-joined form from a raw
// abilities value. An array of strings is joined; a scalar string is kept
// verbatim, since older clients ship the stored form directly. Any other
// shape reports ok=false and the field is treated as absent.
func decodeAbilities(raw json.RawMessage) (stored string, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return domain.JoinAbilities(list), true
	}
	var scalar string
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return scalar, true
	}
	return "", false
}
