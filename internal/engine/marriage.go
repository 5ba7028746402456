package engine

import (
	"sort"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

// MarryPeople marries a dynasty member to a suitor, who may come from the
// yearly suitor pool or already be part of the tree. Validation failures are
// reported through notifications on the returned state, never as errors.
func (e *Engine) MarryPeople(prev *State, royalID, suitorID people.ID) *State {
	s := prev.Clone()
	e.marryInto(s, royalID, suitorID)
	return s
}

// marryInto performs the marriage against the working state. Shared between
// the player action and the autonomous yearly pass.
func (e *Engine) marryInto(s *State, royalID, suitorID people.ID) {
	royal := s.AllPeople[royalID]
	suitor := s.AllPeople[suitorID]
	poolIdx := -1
	if suitor == nil {
		if poolIdx = s.findSuitorInPool(suitorID); poolIdx >= 0 {
			suitor = s.PotentialSuitors[poolIdx]
		}
	}

	if royal == nil || suitor == nil {
		s.notify("Marriage failed: one of the individuals could not be found.")
		return
	}
	if royal.Gender == suitor.Gender {
		s.notify("Marriage failed: %s and %s are of the same gender.", royal.FirstName, suitor.FirstName)
		return
	}
	if royal.SpouseID != "" || suitor.SpouseID != "" {
		s.notify("Marriage failed: One or both individuals are already married.")
		return
	}

	// Pool suitors are materialized into the tree at marriage time.
	if poolIdx >= 0 {
		suitor = suitor.Clone()
		s.AllPeople[suitor.ID] = suitor
		s.PotentialSuitors = append(s.PotentialSuitors[:poolIdx], s.PotentialSuitors[poolIdx+1:]...)
	}

	originalRoyalStatus := royal.StatusPoints
	originalSuitorStatus := suitor.StatusPoints

	royal.SpouseID = suitor.ID
	suitor.SpouseID = royal.ID

	switch {
	case royal.IsRoyalBlood:
		suitor.IsMarriedToRoyal = true
		// A foreign royal who marries in renounces their own claim; only
		// one dynasty's blood may flow through the line.
		suitor.IsRoyalBlood = false
		suitor.LastName = royal.LastName
		suitor.Generation = royal.Generation
		s.notify("%s %s and %s %s (now %s) have married.",
			royal.FirstName, royal.LastName, suitor.FirstName, suitor.OriginalLastName, suitor.LastName)
	case suitor.IsRoyalBlood && suitor.IsForeignRoyal:
		royal.IsMarriedToRoyal = true
		house := ""
		if suitor.ForeignHouse != nil {
			house = suitor.ForeignHouse.Name
		}
		s.notify("%s %s and %s %s (of %s) have married.",
			royal.FirstName, royal.LastName, suitor.FirstName, suitor.LastName, house)
	default:
		suitor.IsMarriedToRoyal = royal.IsMarriedToRoyal
		suitor.LastName = royal.LastName
		suitor.Generation = royal.Generation
		s.notify("%s %s and %s %s (now %s) have married.",
			royal.FirstName, royal.LastName, suitor.FirstName, suitor.OriginalLastName, suitor.LastName)
	}

	// The lower-status partner is boosted by a fifth of the higher partner's
	// pre-marriage status, but never above it. The higher partner is unchanged.
	lower := suitor
	higherOriginal := originalRoyalStatus
	if originalRoyalStatus <= originalSuitorStatus {
		lower = royal
		higherOriginal = originalSuitorStatus
	}
	boosted := min(lower.StatusPoints+higherOriginal*20/100, higherOriginal)
	lower.StatusPoints = entropy.Clamp(boosted, 0, 100)

	e.updateTitles(s)
}

// processAutonomousMarriages gives every unmarried adult of the royal line a
// small yearly chance to marry on their own, preferring the best pool suitor
// of at least 40% of their own status and falling back to a generated
// commoner spouse.
func (e *Engine) processAutonomousMarriages(s *State) {
	base := s.Basename()
	for _, id := range s.sortedPersonIDs() {
		p := s.AllPeople[id]
		if p == nil || !p.Alive || p.Excommunicated || p.SpouseID != "" {
			continue
		}
		if !p.IsRoyalBlood || p.LastName != base {
			continue
		}
		if p.Age(s.CurrentYear) < people.MinMarriageAge {
			continue
		}
		if !entropy.Chance(e.src, ChanceAutonomousMarriage) {
			continue
		}

		if chosen := e.bestPoolSuitorFor(s, p); chosen != nil {
			e.marryInto(s, p.ID, chosen.ID)
			continue
		}

		spouse := e.factory.GeneratedSpouse(p, s.CurrentYear, s.PlayerOrigin)
		s.AllPeople[spouse.ID] = spouse
		p.SpouseID = spouse.ID
		spouse.SpouseID = p.ID
		spouse.IsMarriedToRoyal = true
		spouse.LastName = p.LastName
		s.notify("%s %s has autonomously married %s %s (now %s, Status: %d).",
			p.FirstName, p.LastName, spouse.FirstName, spouse.OriginalLastName, spouse.LastName, spouse.StatusPoints)
	}
	e.updateTitles(s)
}

func (e *Engine) bestPoolSuitorFor(s *State, p *people.Person) *people.Person {
	var eligible []*people.Person
	for _, suitor := range s.PotentialSuitors {
		if suitor.Gender == p.Gender || suitor.SpouseID != "" || suitor.Excommunicated {
			continue
		}
		if suitor.Age(s.CurrentYear) < people.MinMarriageAge {
			continue
		}
		if float64(suitor.StatusPoints) < float64(p.StatusPoints)*0.4 {
			continue
		}
		eligible = append(eligible, suitor)
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].StatusPoints != eligible[j].StatusPoints {
			return eligible[i].StatusPoints > eligible[j].StatusPoints
		}
		return eligible[i].ID < eligible[j].ID
	})
	if len(eligible) == 0 {
		return nil
	}
	return eligible[0]
}
