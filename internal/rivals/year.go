package rivals

import (
	"fmt"
	"math"
	"sort"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

// Simulator runs the yearly rival-dynasty transition.
type Simulator struct {
	src     entropy.Source
	factory *people.Factory
}

// NewSimulator creates a rival simulator drawing from src.
func NewSimulator(src entropy.Source, factory *people.Factory) *Simulator {
	return &Simulator{src: src, factory: factory}
}

// NewDynasty builds a freshly founded rival house at the given year: a
// founder aged 25–45, an 80% chance of an inline spouse, and up to
// min(MaxChildren, members−1) children under age and fertility constraints.
func (s *Simulator) NewDynasty(baseName, country string, year int, banner string) *Dynasty {
	name := fmt.Sprintf("House of %s of %s", baseName, country)

	founderGender := people.Male
	if entropy.Chance(s.src, 0.5) {
		founderGender = people.Female
	}
	founder := s.factory.NewRivalPerson(year-s.src.IntBetween(25, 45), founderGender, name, true)

	members := map[people.ID]*people.RivalPerson{founder.ID: founder}

	if entropy.Chance(s.src, 0.8) {
		founder.Spouse = s.factory.NewSpouseInfo(founderGender.Opposite(), founder.LastName, 30, 60)
	}

	numMembers := s.src.IntBetween(InitialMembersMin, InitialMembersMax)
	children := 0
	if founder.Spouse != nil && numMembers > 1 {
		wanted := min(MaxChildren, numMembers-1)
		for i := 0; i < wanted; i++ {
			ageAtBirth := founder.Age(year - s.src.IntBetween(1, 15))
			if ageAtBirth <= MinMarriageAge || ageAtBirth >= MaxChildBearingAge || children >= MaxChildren {
				continue
			}
			maxChildAge := min(15, founder.Age(year)-(MinMarriageAge+1))
			if maxChildAge < 1 {
				continue
			}
			childGender := people.Male
			if entropy.Chance(s.src, 0.5) {
				childGender = people.Female
			}
			child := s.factory.NewRivalPerson(year-s.src.IntBetween(1, maxChildAge), childGender, name, false)
			child.StatusPoints = s.src.IntBetween(15, 50)
			members[child.ID] = child
			children++
		}
	}
	founder.ChildrenCount = children

	d := &Dynasty{
		ID:               NewDynastyID(),
		Name:             name,
		Country:          country,
		Banner:           banner,
		Status:           float64(s.src.IntBetween(InitialStatusMin, InitialStatusMax)),
		Treasury:         s.src.IntBetween(InitialTreasuryMin, InitialTreasuryMax),
		Members:          members,
		CurrentMonarchID: founder.ID,
		FoundedYear:      year - s.src.IntBetween(0, 10),
	}
	s.UpdateTitles(d)
	return d
}

// ProcessYear advances one rival dynasty by a year and returns the new
// snapshot: deaths, succession, monarch births, autonomous marriages, then
// the status and treasury formulas and a title recompute.
func (s *Simulator) ProcessYear(prev *Dynasty, year int) *Dynasty {
	d := prev.Clone()

	s.processDeaths(d, year)
	s.resolveSuccession(d)
	s.processMonarchBirth(d, year)
	s.processMarriageSeeking(d, year)
	s.recomputeStatus(d)
	s.applyIncome(d)
	s.UpdateTitles(d)

	return d
}

func (s *Simulator) processDeaths(d *Dynasty, year int) {
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if !m.Alive {
			continue
		}
		age := m.Age(year)
		lifespan := Lifespan + s.src.IntBetween(-LifespanVariation, LifespanVariation)
		if age <= lifespan && !(age > 60 && entropy.Chance(s.src, ChanceDeathOldAge)) {
			continue
		}

		m.Alive = false
		deathYear := year
		m.DeathYear = &deathYear
		if m.ID == d.CurrentMonarchID {
			d.CurrentMonarchID = ""
		}
		if m.Spouse != nil {
			// Best-effort: spouses are inline snapshots, so the reverse
			// link can only be found by name and may miss or mismatch.
			if widow := s.findConsortMember(d, m.Spouse, m.FirstName); widow != nil {
				widow.Spouse = nil
			}
		}
	}
}

// findConsortMember locates a living member whose identity matches the
// spouse snapshot and whose own spouse snapshot names the deceased.
func (s *Simulator) findConsortMember(d *Dynasty, spouse *people.SpouseInfo, deceasedFirstName string) *people.RivalPerson {
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if m.Alive && m.FirstName == spouse.FirstName && m.LastName == spouse.LastName &&
			m.Spouse != nil && m.Spouse.FirstName == deceasedFirstName {
			return m
		}
	}
	return nil
}

// resolveSuccession fills a vacant throne with the earliest-born living
// member of the house.
func (s *Simulator) resolveSuccession(d *Dynasty) {
	if d.CurrentMonarchID != "" || d.LivingMembers() == 0 {
		return
	}
	base := d.Basename()
	var heirs []*people.RivalPerson
	for _, m := range d.Members {
		if m.Alive && m.LastName == base {
			heirs = append(heirs, m)
		}
	}
	sort.Slice(heirs, func(i, j int) bool {
		if heirs[i].BirthYear != heirs[j].BirthYear {
			return heirs[i].BirthYear < heirs[j].BirthYear
		}
		return heirs[i].ID < heirs[j].ID
	})
	if len(heirs) > 0 {
		d.CurrentMonarchID = heirs[0].ID
	}
}

func (s *Simulator) processMonarchBirth(d *Dynasty, year int) {
	monarch := d.Monarch()
	if monarch == nil || !monarch.Alive || monarch.Spouse == nil || monarch.ChildrenCount >= MaxChildren {
		return
	}

	var birthChance float64
	switch monarch.ChildrenCount {
	case 0:
		birthChance = ChanceBirthFirstChild
	case 1:
		birthChance = ChanceBirthSecondChild
	default:
		birthChance = ChanceBirthSubsequent
	}

	age := monarch.Age(year)
	fertileFemale := monarch.Gender == people.Female && age >= MinMarriageAge && age <= MaxChildBearingAge
	if monarch.Gender != people.Male && !fertileFemale {
		return
	}
	if !entropy.Chance(s.src, birthChance) {
		return
	}

	childGender := people.Male
	if entropy.Chance(s.src, 0.5) {
		childGender = people.Female
	}
	child := s.factory.NewRivalPerson(year, childGender, d.Name, false)
	d.Members[child.ID] = child
	monarch.ChildrenCount++
}

// processMarriageSeeking lets every unattached adult member independently
// roll for a spontaneously generated inline spouse.
func (s *Simulator) processMarriageSeeking(d *Dynasty, year int) {
	for _, id := range d.sortedMemberIDs() {
		m := d.Members[id]
		if !m.Alive || m.Spouse != nil || m.Age(year) < MinMarriageAge {
			continue
		}
		if !entropy.Chance(s.src, ChanceSeekMarriage) {
			continue
		}
		m.Spouse = s.factory.NewSpouseInfo(m.Gender.Opposite(), m.LastName, 15, 50)
	}
}

// recomputeStatus rebuilds the aggregate status from the monarch couple,
// treasury, and living headcount, with slight symmetric noise.
func (s *Simulator) recomputeStatus(d *Dynasty) {
	var status float64
	if monarch := d.Monarch(); monarch != nil && monarch.Alive {
		status += float64(monarch.StatusPoints) * StatusMonarchWeight
		if monarch.Spouse != nil {
			status += float64(monarch.Spouse.StatusPoints) * (StatusMonarchWeight / 2)
		}
	}
	status += float64(d.Treasury) * StatusTreasuryFactor
	status += float64(d.LivingMembers()) * StatusPerMemberFactor
	status += float64(s.src.IntBetween(-2, 2))

	status = entropy.Clamp(status, 0, 100)
	d.Status = math.Round(status*100) / 100
}

func (s *Simulator) applyIncome(d *Dynasty) {
	income := BaseIncome + int(d.Status*IncomePerStatusPoint) + s.src.IntBetween(-5, 10)
	d.Treasury = max(0, d.Treasury+income)
}
