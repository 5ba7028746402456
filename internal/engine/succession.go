package engine

import (
	"sort"

	"github.com/talgya/dynastia/internal/people"
)

// updateSuccession resolves a vacant or invalid throne. When nobody of the
// royal line survives the dynasty is marked extinct; extinction skips the
// closing title pass since there is nothing left to title.
func (e *Engine) updateSuccession(s *State) {
	monarch := s.Monarch()
	if monarch != nil && monarch.Alive && !monarch.Excommunicated {
		e.updateTitles(s)
		return
	}
	base := s.Basename()

	if !e.anyLivingRoyal(s, base) {
		s.notify("The %s has fallen. There are no living heirs.", s.DynastyName)
		s.DynastyFounderID = ""
		s.CurrentMonarchID = ""
		return
	}

	heirs := e.collectHeirs(s, base)
	sort.Slice(heirs, func(i, j int) bool {
		a, b := heirs[i], heirs[j]
		if a.Generation != b.Generation {
			return a.Generation < b.Generation
		}
		if a.BirthYear != b.BirthYear {
			return a.BirthYear < b.BirthYear
		}
		return a.ID < b.ID
	})

	if len(heirs) > 0 {
		s.CurrentMonarchID = heirs[0].ID
		s.notify("%s has ascended to the throne of the %s!", heirs[0].FullName(), s.DynastyName)
	} else {
		// Living royals exist but none is reachable from the founder line.
		s.CurrentMonarchID = ""
		s.notify("The %s has no clear heir. The dynasty may be in peril!", s.DynastyName)
	}
	e.updateTitles(s)
}

func (e *Engine) anyLivingRoyal(s *State, base string) bool {
	for _, p := range s.AllPeople {
		if p.IsRoyalBlood && p.Alive && !p.Excommunicated && p.LastName == base {
			return true
		}
	}
	return false
}

// collectHeirs walks the founder's descent tree depth-first, eldest child
// first, gathering every living eligible royal. When the founder is gone the
// walk restarts at the earliest-born remaining eligible royal.
func (e *Engine) collectHeirs(s *State, base string) []*people.Person {
	seen := make(map[people.ID]bool)
	var heirs []*people.Person

	var walk func(id people.ID)
	walk = func(id people.ID) {
		p := s.AllPeople[id]
		if p == nil || p.LastName != base || !p.IsRoyalBlood {
			return
		}
		if p.Alive && !p.Excommunicated && !seen[p.ID] {
			seen[p.ID] = true
			heirs = append(heirs, p)
		}

		children := make([]*people.Person, 0, len(p.ChildrenIDs))
		for _, cid := range p.ChildrenIDs {
			if c := s.AllPeople[cid]; c != nil && c.IsRoyalBlood && c.LastName == base {
				children = append(children, c)
			}
		}
		sort.Slice(children, func(i, j int) bool {
			if children[i].BirthYear != children[j].BirthYear {
				return children[i].BirthYear < children[j].BirthYear
			}
			return children[i].ID < children[j].ID
		})
		for _, c := range children {
			walk(c.ID)
		}
	}

	if s.DynastyFounderID != "" && s.AllPeople[s.DynastyFounderID] != nil {
		walk(s.DynastyFounderID)
	} else {
		var root *people.Person
		for _, id := range s.sortedPersonIDs() {
			p := s.AllPeople[id]
			if !p.IsRoyalBlood || !p.Alive || p.Excommunicated || p.LastName != base {
				continue
			}
			if root == nil || p.BirthYear < root.BirthYear {
				root = p
			}
		}
		if root != nil {
			walk(root.ID)
		}
	}
	return heirs
}
