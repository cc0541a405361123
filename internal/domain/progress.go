package domain

// Progress holds the scalar game state of one account. It shares the owning
// account's id (one-to-one, no surrogate key) and owns the pets, home objects
// and inventory entries that reference it by ProgressID.
type Progress struct {
	ID                int64
	TutorialCompleted bool
	Currency          int
}
