package domain

// InventoryEntry is a single item/quantity pair in an account's inventory.
// ItemID references the item catalog but is not validated at write time; a
// dangling reference surfaces as a null embedded item on read.
type InventoryEntry struct {
	ID         int64
	ProgressID int64
	ItemID     int
	Quantity   int
}

// DefaultInventoryQuantity is used when the client omits quantity on create.
const DefaultInventoryQuantity = 1
