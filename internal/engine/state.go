// Package engine provides the turn-based dynasty simulation: the per-year
// state transition, player actions, and world initialization. Every public
// entry point takes the previous immutable state and returns a fresh
// snapshot; callers never observe partial mutation.
package engine

import (
	"fmt"
	"sort"

	"github.com/talgya/dynastia/internal/economy"
	"github.com/talgya/dynastia/internal/people"
	"github.com/talgya/dynastia/internal/rivals"
)

// HistoricalPoint is one (year, value) sample in an append-only series.
type HistoricalPoint struct {
	Year  int
	Value float64
}

// StatusBreakdown decomposes the dynasty's effective status.
type StatusBreakdown struct {
	BaseRoyalStatus      float64
	ItemStatusBoost      float64
	TotalEffectiveStatus float64
}

// State is the aggregate game state. A nil-equivalent DynastyFounderID
// (empty string) is the terminal extinction signal.
type State struct {
	AllPeople        map[people.ID]*people.Person
	DynastyFounderID people.ID
	DynastyName      string // e.g. "House of Tudor"
	PlayerOrigin     string
	CurrentYear      int

	PotentialSuitors []*people.Person // ephemeral, regenerated yearly
	CurrentMonarchID people.ID

	Treasury   int
	OwnedItems map[string]int
	Catalog    []economy.Item // static reference data, shared across snapshots

	Rivals             []*rivals.Dynasty
	Alliances          []string       // allied rival dynasty ids
	DiplomaticAttempts map[string]int // rival id → attempt count

	Notifications      []string
	HistoricalStatus   []HistoricalPoint
	HistoricalTreasury []HistoricalPoint
}

// Clone returns a deep copy of the state. The item catalog is immutable
// reference data and is shared, everything else is copied.
func (s *State) Clone() *State {
	c := &State{
		DynastyFounderID: s.DynastyFounderID,
		DynastyName:      s.DynastyName,
		PlayerOrigin:     s.PlayerOrigin,
		CurrentYear:      s.CurrentYear,
		CurrentMonarchID: s.CurrentMonarchID,
		Treasury:         s.Treasury,
		Catalog:          s.Catalog,
	}

	c.AllPeople = make(map[people.ID]*people.Person, len(s.AllPeople))
	for id, p := range s.AllPeople {
		c.AllPeople[id] = p.Clone()
	}

	c.PotentialSuitors = make([]*people.Person, len(s.PotentialSuitors))
	for i, p := range s.PotentialSuitors {
		c.PotentialSuitors[i] = p.Clone()
	}

	c.Rivals = make([]*rivals.Dynasty, len(s.Rivals))
	for i, r := range s.Rivals {
		c.Rivals[i] = r.Clone()
	}

	c.OwnedItems = make(map[string]int, len(s.OwnedItems))
	for id, n := range s.OwnedItems {
		c.OwnedItems[id] = n
	}
	c.DiplomaticAttempts = make(map[string]int, len(s.DiplomaticAttempts))
	for id, n := range s.DiplomaticAttempts {
		c.DiplomaticAttempts[id] = n
	}

	c.Alliances = append([]string(nil), s.Alliances...)
	c.Notifications = append([]string(nil), s.Notifications...)
	c.HistoricalStatus = append([]HistoricalPoint(nil), s.HistoricalStatus...)
	c.HistoricalTreasury = append([]HistoricalPoint(nil), s.HistoricalTreasury...)
	return c
}

// Extinct reports whether the dynasty has ended.
func (s *State) Extinct() bool {
	return s.DynastyFounderID == ""
}

// Basename returns the bare dynasty name without the "House of" decoration.
func (s *State) Basename() string {
	return people.HouseBasename(s.DynastyName)
}

// Monarch returns the current monarch, or nil when the throne is vacant.
func (s *State) Monarch() *people.Person {
	if s.CurrentMonarchID == "" {
		return nil
	}
	return s.AllPeople[s.CurrentMonarchID]
}

// FindRival returns the rival dynasty with the given id, or nil.
func (s *State) FindRival(id string) *rivals.Dynasty {
	for _, r := range s.Rivals {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// notify appends a formatted notification to the current year's log.
func (s *State) notify(format string, args ...any) {
	s.Notifications = append(s.Notifications, fmt.Sprintf(format, args...))
}

// sortedPersonIDs returns person ids in a stable order so random draws are
// consumed identically for identical states.
func (s *State) sortedPersonIDs() []people.ID {
	ids := make([]people.ID, 0, len(s.AllPeople))
	for id := range s.AllPeople {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// findSuitorInPool returns the pool index of a suitor, or -1.
func (s *State) findSuitorInPool(id people.ID) int {
	for i, p := range s.PotentialSuitors {
		if p.ID == id {
			return i
		}
	}
	return -1
}
