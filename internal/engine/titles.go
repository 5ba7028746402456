package engine

import "github.com/talgya/dynastia/internal/people"

// updateTitles recomputes every title in the tree from scratch. The pass is
// deterministic and idempotent: clear everything, then cascade down from the
// monarch. Cosmetic ranks on unmarried pool suitors are not touched since
// suitors live outside the tree until marriage.
func (e *Engine) updateTitles(s *State) {
	base := s.Basename()
	for _, p := range s.AllPeople {
		p.Title = people.TitleNone
	}

	monarch := s.Monarch()

	if monarch != nil && monarch.Alive && !monarch.Excommunicated && monarch.LastName == base {
		if monarch.Gender == people.Male {
			monarch.Title = people.TitleKing
		} else {
			monarch.Title = people.TitleQueen
		}
		if spouse := s.AllPeople[monarch.SpouseID]; spouse != nil && spouse.Alive && !spouse.Excommunicated && spouse.Title == people.TitleNone {
			if monarch.Gender == people.Male {
				spouse.Title = people.TitleQueen
			} else {
				spouse.Title = people.TitlePrinceConsort
			}
		}
	}

	// The monarch's children keep princely rank even across the year the
	// monarch dies, until succession installs a successor.
	if monarch != nil {
		for _, childID := range monarch.ChildrenIDs {
			child := s.AllPeople[childID]
			if child == nil || !child.Alive || child.Excommunicated || !child.IsRoyalBlood || child.LastName != base {
				continue
			}
			if child.Gender == people.Male {
				child.Title = people.TitlePrince
			} else {
				child.Title = people.TitlePrincess
			}
			if spouse := s.AllPeople[child.SpouseID]; spouse != nil && spouse.Alive && !spouse.Excommunicated && spouse.Title == people.TitleNone {
				if child.Gender == people.Female && spouse.Gender == people.Male {
					spouse.Title = people.TitlePrinceConsort
				} else if child.Gender == people.Male && spouse.Gender == people.Female {
					spouse.Title = people.TitlePrincess
				}
			}
		}
	}

	// Full siblings of the monarch rank as dukes.
	if monarch != nil && monarch.FatherID != "" && monarch.MotherID != "" {
		for _, id := range s.sortedPersonIDs() {
			p := s.AllPeople[id]
			if p.ID == monarch.ID || p.FatherID != monarch.FatherID || p.MotherID != monarch.MotherID {
				continue
			}
			if !p.Alive || !p.IsRoyalBlood || p.Excommunicated || p.LastName != base || p.Title != people.TitleNone {
				continue
			}
			e.assignDucal(s, p)
		}
	}

	// Children of princes and princesses rank as dukes.
	var princely []*people.Person
	for _, id := range s.sortedPersonIDs() {
		p := s.AllPeople[id]
		if (p.Title == people.TitlePrince || p.Title == people.TitlePrincess) && p.LastName == base {
			princely = append(princely, p)
		}
	}
	for _, parent := range princely {
		for _, childID := range parent.ChildrenIDs {
			child := s.AllPeople[childID]
			if child == nil || !child.Alive || child.Excommunicated || !child.IsRoyalBlood || child.LastName != base || child.Title != people.TitleNone {
				continue
			}
			e.assignDucal(s, child)
		}
	}

	// Remaining untitled royals get the generic court rank.
	for _, p := range s.AllPeople {
		if p.Alive && p.IsRoyalBlood && !p.Excommunicated && p.LastName == base && p.Title == people.TitleNone {
			p.Title = people.TitleRegalite
		}
	}
}

func (e *Engine) assignDucal(s *State, p *people.Person) {
	if p.Gender == people.Male {
		p.Title = people.TitleDuke
	} else {
		p.Title = people.TitleDuchess
	}
	if spouse := s.AllPeople[p.SpouseID]; spouse != nil && spouse.Alive && !spouse.Excommunicated && spouse.Title == people.TitleNone {
		if p.Gender == people.Male {
			spouse.Title = people.TitleDuchess
		} else {
			spouse.Title = people.TitleDukeConsort
		}
	}
}
