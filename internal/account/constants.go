package account

import "time"

// Cache constants
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Validation constants
const (
	MaxUsernameLength   = 64
	MaxCredentialLength = 256
)

// Log message constants
const (
	LogMsgAccountRegistered = "Account registered"
	LogMsgLoginSucceeded    = "Login succeeded"
	LogMsgLoginFailed       = "Login failed"
)
