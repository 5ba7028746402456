package engine

import "github.com/talgya/dynastia/internal/people"

// Excommunicate casts a member out of the dynasty: royal standing, title, and
// marriage are revoked and their status collapses under the configured
// penalty formula. The founder cannot be cast out while they are the last of
// their bloodline.
func (e *Engine) Excommunicate(prev *State, personID people.ID) *State {
	s := prev.Clone()
	person := s.AllPeople[personID]
	if person == nil {
		return s
	}

	if personID == s.DynastyFounderID && s.DynastyFounderID != "" {
		if !e.hasOtherLivingRoyals(s, person) {
			s.notify("Cannot excommunicate %s as they are the last of their royal bloodline.", person.FirstName)
			return s
		}
	}

	formerSpouseID := person.SpouseID

	person.Excommunicated = true
	switch e.cfg.ExcomPenalty {
	case ExcomPenaltyFlat:
		person.StatusPoints = max(0, person.StatusPoints-50)
	default:
		person.StatusPoints = person.StatusPoints * 20 / 100
	}
	person.IsRoyalBlood = false
	person.IsMarriedToRoyal = false
	person.Title = people.TitleNone
	person.SpouseID = ""

	s.notify("%s %s has been excommunicated from the dynasty!", person.FirstName, person.LastName)

	if formerSpouse := s.AllPeople[formerSpouseID]; formerSpouseID != "" && formerSpouse != nil {
		formerSpouse.SpouseID = ""
		s.notify("The marriage between %s and %s %s has been dissolved due to excommunication.",
			person.FirstName, formerSpouse.FirstName, formerSpouse.LastName)
	}

	if s.CurrentMonarchID == personID {
		s.CurrentMonarchID = ""
		e.updateSuccession(s)
	} else {
		e.updateTitles(s)
	}
	return s
}

// RemovePersonFromTree erases a dead or excommunicated person from the
// records, detaching every link that pointed at them. Removing the founder is
// only permitted once no other living royals of their line remain.
func (e *Engine) RemovePersonFromTree(prev *State, personID people.ID) *State {
	s := prev.Clone()
	person := s.AllPeople[personID]
	if person == nil {
		s.notify("Person not found, cannot remove.")
		return s
	}

	if person.Alive && !person.Excommunicated {
		s.notify("Cannot remove %s from the tree while they are alive and not excommunicated.", person.FirstName)
		return s
	}

	if personID == s.DynastyFounderID && s.DynastyFounderID != "" {
		if e.hasOtherLivingRoyals(s, person) {
			s.notify("Cannot remove the primary dynasty founder %s if other royals of their line exist.", person.FirstName)
			return s
		}
		s.DynastyFounderID = ""
	}

	if spouse := s.AllPeople[person.SpouseID]; person.SpouseID != "" && spouse != nil {
		spouse.SpouseID = ""
	}
	if father := s.AllPeople[person.FatherID]; person.FatherID != "" && father != nil {
		father.ChildrenIDs = removeID(father.ChildrenIDs, personID)
	}
	if mother := s.AllPeople[person.MotherID]; person.MotherID != "" && mother != nil {
		mother.ChildrenIDs = removeID(mother.ChildrenIDs, personID)
	}

	delete(s.AllPeople, personID)
	s.notify("%s %s has been removed from the dynasty records.", person.FirstName, person.LastName)

	if s.CurrentMonarchID == personID {
		s.CurrentMonarchID = ""
		e.updateSuccession(s)
	} else {
		e.updateTitles(s)
	}
	return s
}

func (e *Engine) hasOtherLivingRoyals(s *State, person *people.Person) bool {
	for _, p := range s.AllPeople {
		if p.ID != person.ID && p.IsRoyalBlood && p.Alive && !p.Excommunicated && p.LastName == person.LastName {
			return true
		}
	}
	return false
}

func removeID(ids []people.ID, drop people.ID) []people.ID {
	out := ids[:0]
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
