package rivals

import "github.com/talgya/dynastia/internal/people"

// UpdateTitles recomputes every member's title from scratch. Rivals carry no
// explicit parent/child links for non-monarch members, so princely and ducal
// ranks are approximated from each member's age gap to the monarch.
func (s *Simulator) UpdateTitles(d *Dynasty) {
	for _, m := range d.Members {
		m.Title = people.TitleNone
	}

	monarch := d.Monarch()
	if monarch == nil || !monarch.Alive {
		return
	}
	base := d.Basename()

	if monarch.Gender == people.Male {
		monarch.Title = people.TitleKing
	} else {
		monarch.Title = people.TitleQueen
	}
	if monarch.Spouse != nil {
		if consort := s.findUntitledByName(d, monarch.Spouse); consort != nil {
			if monarch.Gender == people.Male {
				consort.Title = people.TitleQueenConsort
			} else {
				consort.Title = people.TitlePrinceConsort
			}
		}
	}

	// Members born more than a generation after the monarch pass as the
	// monarch's children.
	var princes []*people.RivalPerson
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if !m.Alive || m.ID == monarch.ID || m.Spouse != nil || m.LastName != base || m.Title != people.TitleNone {
			continue
		}
		if monarch.BirthYear-m.BirthYear < -MinMarriageAge {
			if m.Gender == people.Male {
				m.Title = people.TitlePrince
			} else {
				m.Title = people.TitlePrincess
			}
			princes = append(princes, m)
		}
	}

	// Rough contemporaries of the monarch rank as dukes.
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if !m.Alive || m.ID == monarch.ID || m.LastName != base || m.Title != people.TitleNone {
			continue
		}
		diff := monarch.BirthYear - m.BirthYear
		if diff <= -MinMarriageAge || diff > 15 || diff < -15 {
			continue
		}
		s.assignDucal(d, m)
	}

	// Members a generation below a prince pass as grandchildren.
	for _, prince := range princes {
		for _, id := range d.sortedMemberIDs() {
			m := d.Members[id]
			if !m.Alive || m.LastName != base || m.Title != people.TitleNone {
				continue
			}
			if prince.BirthYear-m.BirthYear < -(MinMarriageAge - 5) {
				s.assignDucal(d, m)
			}
		}
	}
}

func (s *Simulator) assignDucal(d *Dynasty, m *people.RivalPerson) {
	if m.Gender == people.Male {
		m.Title = people.TitleDuke
	} else {
		m.Title = people.TitleDuchess
	}
	if m.Spouse != nil {
		if consort := s.findUntitledByName(d, m.Spouse); consort != nil {
			if m.Gender == people.Male {
				consort.Title = people.TitleDuchess
			} else {
				consort.Title = people.TitleDukeConsort
			}
		}
	}
}

// findUntitledByName locates a living untitled member matching a spouse
// snapshot. Best-effort: snapshots carry no id, so a name collision can pick
// the wrong member.
func (s *Simulator) findUntitledByName(d *Dynasty, spouse *people.SpouseInfo) *people.RivalPerson {
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if m.Alive && m.Title == people.TitleNone &&
			m.FirstName == spouse.FirstName && m.LastName == spouse.LastName {
			return m
		}
	}
	return nil
}
