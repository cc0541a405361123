package domain

// Item is one definition in the read-only item catalog. The json tags are
// the wire contract for the embedded item in inventory reads and for the
// catalog endpoints.
type Item struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Price          int     `json:"price"`
	HungerRestore  float64 `json:"hungerRestore"`
	HappinessBoost float64 `json:"happinessBoost"`
	HealthEffect   float64 `json:"healthEffect"`
	FootprintW     int     `json:"footprintW"`
	FootprintH     int     `json:"footprintH"`
	HeldEffect     string  `json:"heldEffect"`
	SizeClass      string  `json:"sizeClass"`
	Storable       bool    `json:"storable"`
	Sprite         string  `json:"sprite"`
}
