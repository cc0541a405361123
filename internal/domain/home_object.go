package domain

// HomeObject is an object placed in an account's home scene: decor, food,
// droppings and so on. Type is the category tag (e.g. "decor", "temporary")
// and ObjectIndex is the design-time catalog index within that type; the
// object catalog itself is client-side art data, not a stored entity.
type HomeObject struct {
	ID          int64
	ProgressID  int64
	Type        string
	ObjectIndex int
	X           float64
	Y           float64
}
