package engine

import (
	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

// TryForChild rolls for a birth for the given mother this year. The outer
// roll decides whether conception happens at all; a second roll over the
// multiple-birth weights decides how many children arrive at once.
func (e *Engine) TryForChild(prev *State, motherID people.ID) *State {
	s := prev.Clone()

	mother := s.AllPeople[motherID]
	if mother == nil || !mother.Alive || mother.Gender != people.Female || mother.SpouseID == "" || mother.Excommunicated {
		s.notify("Cannot try for a child: conditions not met for the mother.")
		return s
	}
	father := s.AllPeople[mother.SpouseID]
	if father == nil || !father.Alive || father.Excommunicated {
		s.notify("Cannot try for a child: conditions not met for the father.")
		return s
	}
	age := mother.Age(s.CurrentYear)
	if age > people.MaxChildBearingAge || age < people.MinMarriageAge {
		s.notify("%s is not of child-bearing age.", mother.FirstName)
		return s
	}

	born := 0
	if entropy.Chance(e.src, TryForChildBaseChance) {
		prob := e.src.Float()
		switch {
		case prob < multipleBirthWeights[0]:
			born = 1
		case prob < multipleBirthWeights[0]+multipleBirthWeights[1]:
			born = 2
		case prob < multipleBirthWeights[0]+multipleBirthWeights[1]+multipleBirthWeights[2]:
			born = 3
		}
	}

	if born == 0 {
		s.notify("%s and %s tried for a child, but to no avail this year.", mother.FirstName, father.FirstName)
		e.updateTitles(s)
		return s
	}

	if !mother.IsRoyalBlood && !father.IsRoyalBlood {
		s.notify("%s and %s tried for a child, but the stars did not align for a royal birth this time.",
			mother.FirstName, father.FirstName)
		e.updateTitles(s)
		return s
	}

	for i := 0; i < born; i++ {
		child := e.spawnChild(s, mother, father)
		noun := "son"
		if child.Gender == people.Female {
			noun = "daughter"
		}
		s.notify("A %s, %s, was born to %s and %s!", noun, child.FirstName, mother.FirstName, father.FirstName)
	}
	if born > 1 {
		s.notify("It's multiples! %s gave birth to %d children!", mother.FirstName, born)
	}

	e.updateTitles(s)
	return s
}
