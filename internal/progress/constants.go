package progress

// Record kind labels for reconciliation metrics
const (
	KindPet        = "pet"
	KindHomeObject = "home_object"
	KindInventory  = "inventory"
)

// Outcome labels
const (
	outcomeCreatedLabel = "created"
	outcomeUpdatedLabel = "updated"
)

// Log message constants
const (
	LogMsgProgressFetched   = "Progress fetched"
	LogMsgProgressUpdated   = "Progress updated"
	LogMsgHomeObjectDeleted = "Home object deleted"
)
