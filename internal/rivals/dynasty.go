// Package rivals simulates the independent rival dynasties: their yearly
// demographics, succession, autonomous marriages, status and treasury
// formulas, and title assignment.
package rivals

import (
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/dynastia/internal/people"
)

// Tuning constants for the rival model. Rivals live shorter and breed
// earlier than the player's line; their simulation is intentionally coarser.
const (
	Lifespan          = 70
	LifespanVariation = 15
	ChanceDeathOldAge = 0.05 // per year past age 60

	MaxChildren            = 4
	ChanceBirthFirstChild  = 0.25
	ChanceBirthSecondChild = 0.15
	ChanceBirthSubsequent  = 0.05

	MinMarriageAge     = 16
	MaxChildBearingAge = 40
	ChanceSeekMarriage = 0.3

	BaseIncome            = 10
	IncomePerStatusPoint  = 0.5
	StatusMonarchWeight   = 0.5
	StatusTreasuryFactor  = 0.01
	StatusPerMemberFactor = 0.25

	InitialMembersMin  = 2
	InitialMembersMax  = 4
	InitialTreasuryMin = 100
	InitialTreasuryMax = 500
	InitialStatusMin   = 10
	InitialStatusMax   = 40
)

// Banners are the opaque cosmetic tags cycled across rival houses.
var Banners = []string{"rose", "sky", "purple", "amber", "lime", "indigo"}

// Dynasty is a rival house simulated alongside the player's.
type Dynasty struct {
	ID      string
	Name    string // e.g. "House of Habsburg of Valerium"
	Country string
	Banner  string // cosmetic only

	Status   float64 // aggregate, within [0, 100]
	Treasury int     // never negative

	Members          map[people.ID]*people.RivalPerson
	CurrentMonarchID people.ID
	FoundedYear      int
	AlliedWithPlayer bool
}

// NewDynastyID returns a fresh rival dynasty identifier.
func NewDynastyID() string {
	return uuid.NewString()
}

// Basename returns the bare house name.
func (d *Dynasty) Basename() string {
	return people.HouseBasename(d.Name)
}

// Monarch returns the current monarch, or nil when the throne is vacant.
func (d *Dynasty) Monarch() *people.RivalPerson {
	if d.CurrentMonarchID == "" {
		return nil
	}
	return d.Members[d.CurrentMonarchID]
}

// LivingMembers counts members still alive.
func (d *Dynasty) LivingMembers() int {
	n := 0
	for _, m := range d.Members {
		if m.Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the dynasty.
func (d *Dynasty) Clone() *Dynasty {
	c := *d
	c.Members = make(map[people.ID]*people.RivalPerson, len(d.Members))
	for id, m := range d.Members {
		c.Members[id] = m.Clone()
	}
	return &c
}

// sortedMemberIDs returns member ids in a stable order so that random draws
// are consumed identically for identical states.
func (d *Dynasty) sortedMemberIDs() []people.ID {
	ids := make([]people.ID, 0, len(d.Members))
	for id := range d.Members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
