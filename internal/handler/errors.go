package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Account error messages
	ErrMsgRegisterFailed = "Failed to register user"
	ErrMsgLoginFailed    = "Failed to log in"

	// Progress error messages
	ErrMsgGetProgressFailed    = "Failed to retrieve user data"
	ErrMsgUpdateProgressFailed = "Failed to save user data"
	ErrMsgDeleteObjectFailed   = "Failed to delete home object"

	// Catalog error messages
	ErrMsgGetItemsFailed = "Failed to retrieve items"
	ErrMsgInvalidItemID  = "Invalid item ID"
)

// Success messages for API responses
const (
	MsgObjectDeletedSuccess = "Home object deleted successfully"
)
