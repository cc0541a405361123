package domain

// Account represents a registered player account.
// Credential is an opaque string compared verbatim on login; this service
// does not hash or otherwise harden it.
type Account struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Credential string `json:"-"`
}
