package engine

import (
	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

// updatePopulation runs the yearly aging, death, and birth passes over the
// player dynasty, mutating the working state in place.
func (e *Engine) updatePopulation(s *State) {
	e.processDeaths(s)
	e.processBirths(s)
}

func (e *Engine) processDeaths(s *State) {
	for _, id := range s.sortedPersonIDs() {
		p := s.AllPeople[id]
		if !p.Alive {
			continue
		}
		age := p.Age(s.CurrentYear)
		lifespan := AverageLifespan + e.src.IntBetween(-LifespanVariation, LifespanVariation)
		if age <= lifespan && !entropy.Chance(e.src, ChanceRandomDeath) {
			continue
		}

		p.Alive = false
		deathYear := s.CurrentYear
		p.DeathYear = &deathYear
		s.notify("%s has died at age %d.", p.FullName(), age)

		if p.SpouseID != "" {
			if spouse, ok := s.AllPeople[p.SpouseID]; ok {
				spouse.SpouseID = ""
			}
		}
		if s.CurrentMonarchID == p.ID {
			s.notify("The realm mourns the passing of their Monarch, %s.", p.FirstName)
		}
	}
}

func (e *Engine) processBirths(s *State) {
	for _, id := range s.sortedPersonIDs() {
		mother := s.AllPeople[id]
		if !e.isFertileWife(s, mother) {
			continue
		}
		father := s.AllPeople[mother.SpouseID]

		existing := countChildrenOfCouple(s, mother.ID, father.ID)
		if !entropy.Chance(e.src, birthChanceForCount(existing)) {
			continue
		}
		if !mother.IsRoyalBlood && !father.IsRoyalBlood {
			continue
		}

		child := e.spawnChild(s, mother, father)
		s.notify("%s was born to %s and %s.", child.FullName(), mother.FirstName, father.FirstName)
	}
}

// isFertileWife reports whether the person qualifies for the yearly birth
// roll: a living, non-excommunicated woman of the dynasty (by blood or
// marriage) with a living, non-excommunicated spouse, within the
// child-bearing window.
func (e *Engine) isFertileWife(s *State, p *people.Person) bool {
	if !p.Alive || p.Gender != people.Female || p.Excommunicated {
		return false
	}
	if !p.IsRoyalBlood && !p.IsMarriedToRoyal {
		return false
	}
	spouse, ok := s.AllPeople[p.SpouseID]
	if p.SpouseID == "" || !ok || !spouse.Alive || spouse.Excommunicated {
		return false
	}
	age := p.Age(s.CurrentYear)
	return age >= people.MinMarriageAge && age <= people.MaxChildBearingAge
}

func countChildrenOfCouple(s *State, motherID, fatherID people.ID) int {
	n := 0
	for _, p := range s.AllPeople {
		if p.MotherID == motherID && p.FatherID == fatherID {
			n++
		}
	}
	return n
}

// birthChanceForCount tapers the yearly birth probability with existing
// children of the couple.
func birthChanceForCount(count int) float64 {
	switch count {
	case 0:
		return ChanceBirthFirstChild
	case 1:
		return ChanceBirthSecondChild
	case 2:
		return ChanceBirthThirdChild
	default:
		return ChanceBirthSubsequent
	}
}

// spawnChild creates a royal-blood child of the couple, attaches it to both
// parents, and registers it in the state.
func (e *Engine) spawnChild(s *State, mother, father *people.Person) *people.Person {
	gender := people.Male
	if entropy.Chance(e.src, 0.5) {
		gender = people.Female
	}
	child := e.factory.NewPerson(people.PersonParams{
		BirthYear:    s.CurrentYear,
		Gender:       gender,
		RoyalBlood:   true,
		DynastyName:  s.DynastyName,
		Generation:   max(mother.Generation, father.Generation) + 1,
		Father:       father,
		Mother:       mother,
		PlayerOrigin: s.PlayerOrigin,
	})
	s.AllPeople[child.ID] = child
	mother.ChildrenIDs = append(mother.ChildrenIDs, child.ID)
	father.ChildrenIDs = append(father.ChildrenIDs, child.ID)
	return child
}
