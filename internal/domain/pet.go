package domain

import "strings"

// AbilityDelimiter joins ability names into the stored string form.
const AbilityDelimiter = ","

// Pet is a single virtual pet owned by a progress record.
//
// EvolutionStage and EvolutionLine jointly form the compound evolution
// identifier, transmitted on the wire as the ordered pair [stage, line].
// Abilities is kept in its stored form: a delimiter-joined string, empty for
// no abilities. CreatedAt and LastUpdate are epoch-milliseconds; LastUpdate
// exists for offline hunger/happiness decay tracking but no decay is
// computed server-side.
type Pet struct {
	ID             int64
	ProgressID     int64
	EvolutionStage int
	EvolutionLine  int
	Name           string
	Level          int
	XP             int
	Hunger         float64
	Happiness      float64
	Abilities      string
	CreatedAt      *int64
	LastUpdate     *int64
}

// Pet field defaults applied on creation when the client omits a field.
const (
	DefaultPetLevel     = 1
	DefaultPetXP        = 0
	DefaultPetHunger    = 0.5
	DefaultPetHappiness = 0.5
)

// AbilityList decodes the stored abilities string into an ordered slice.
// An empty stored string decodes to an empty (non-nil) slice so it
// serializes as [] rather than null.
func (p *Pet) AbilityList() []string {
	if p.Abilities == "" {
		return []string{}
	}
	return strings.Split(p.Abilities, AbilityDelimiter)
}

// JoinAbilities encodes an ordered ability sequence into the stored form.
func JoinAbilities(abilities []string) string {
	return strings.Join(abilities, AbilityDelimiter)
}
