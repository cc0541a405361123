package postgres

// Error message constants for repository operations
const (
	ErrMsgFailedToBeginTx  = "failed to begin transaction"
	ErrMsgFailedToCommitTx = "failed to commit transaction"

	ErrMsgFailedToCreateAccount = "failed to create account"
	ErrMsgFailedToGetAccount    = "failed to get account"

	ErrMsgFailedToGetProgress    = "failed to get progress"
	ErrMsgFailedToUpdateProgress = "failed to update progress"

	ErrMsgFailedToGetPet    = "failed to get pet"
	ErrMsgFailedToInsertPet = "failed to insert pet"
	ErrMsgFailedToUpdatePet = "failed to update pet"
	ErrMsgFailedToListPets  = "failed to list pets"

	ErrMsgFailedToGetHomeObject    = "failed to get home object"
	ErrMsgFailedToInsertHomeObject = "failed to insert home object"
	ErrMsgFailedToUpdateHomeObject = "failed to update home object"
	ErrMsgFailedToDeleteHomeObject = "failed to delete home object"
	ErrMsgFailedToListHomeObjects  = "failed to list home objects"

	ErrMsgFailedToGetInventoryEntry    = "failed to get inventory entry"
	ErrMsgFailedToInsertInventoryEntry = "failed to insert inventory entry"
	ErrMsgFailedToUpdateInventoryEntry = "failed to update inventory entry"
	ErrMsgFailedToListInventory        = "failed to list inventory"

	ErrMsgFailedToGetItem    = "failed to get item"
	ErrMsgFailedToListItems  = "failed to list items"
	ErrMsgFailedToUpsertItem = "failed to upsert item"
	ErrMsgFailedToGetSync    = "failed to get catalog sync metadata"
	ErrMsgFailedToUpsertSync = "failed to upsert catalog sync metadata"
)

// uniqueViolationCode is the Postgres error code for unique constraint violations
const uniqueViolationCode = "23505"
