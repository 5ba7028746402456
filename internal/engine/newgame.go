package engine

import (
	"github.com/talgya/dynastia/internal/economy"
	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/names"
	"github.com/talgya/dynastia/internal/people"
	"github.com/talgya/dynastia/internal/rivals"
)

// StartNewGame builds the founding state: a lone founder on the throne, a
// first batch of suitors, and the configured number of rival houses, each
// with a unique name and country.
func (e *Engine) StartNewGame() *State {
	base := entropy.Pick(e.src, names.DynastyBasenames)
	dynastyName := "House of " + base

	founderGender := people.Male
	if entropy.Chance(e.src, 0.5) {
		founderGender = people.Female
	}
	founder := e.factory.NewPerson(people.PersonParams{
		BirthYear:    InitialYear - e.src.IntBetween(20, 35),
		Gender:       founderGender,
		RoyalBlood:   true,
		DynastyName:  dynastyName,
		Founder:      true,
		PlayerOrigin: e.cfg.PlayerOrigin,
	})

	s := &State{
		AllPeople:          map[people.ID]*people.Person{founder.ID: founder},
		DynastyFounderID:   founder.ID,
		DynastyName:        dynastyName,
		PlayerOrigin:       e.cfg.PlayerOrigin,
		CurrentYear:        InitialYear,
		CurrentMonarchID:   founder.ID,
		Treasury:           InitialTreasury,
		OwnedItems:         make(map[string]int),
		Catalog:            economy.DefaultCatalog(),
		DiplomaticAttempts: make(map[string]int),
	}
	s.notify("The %s was founded in year %d in %s. %s begins their reign alone.",
		dynastyName, InitialYear, s.PlayerOrigin, founder.FullName())

	playerStatus := EffectiveDynastyStatus(s).TotalEffectiveStatus
	s.PotentialSuitors = e.factory.GenerateSuitors(InitialYear, dynastyName, s.PlayerOrigin, s.AllPeople, playerStatus)

	s.Rivals = e.spawnRivals(base)

	s.HistoricalTreasury = append(s.HistoricalTreasury, HistoricalPoint{Year: InitialYear, Value: float64(s.Treasury)})
	s.HistoricalStatus = append(s.HistoricalStatus, HistoricalPoint{Year: InitialYear, Value: EffectiveDynastyStatus(s).TotalEffectiveStatus})

	e.updateSuccession(s)
	return s
}

// spawnRivals founds the rival houses, drawing names and countries without
// collision against the player or each other while the pools last.
func (e *Engine) spawnRivals(playerBase string) []*rivals.Dynasty {
	usedNames := map[string]bool{playerBase: true}
	usedCountries := map[string]bool{e.cfg.PlayerOrigin: true}

	out := make([]*rivals.Dynasty, 0, e.cfg.NumRivalDynasties)
	for i := 0; i < e.cfg.NumRivalDynasties; i++ {
		var rivalBase string
		for {
			rivalBase = entropy.Pick(e.src, names.DynastyBasenames)
			if !usedNames[rivalBase] {
				break
			}
		}
		usedNames[rivalBase] = true

		country := e.pickCountry(usedCountries)
		usedCountries[country] = true

		banner := rivals.Banners[i%len(rivals.Banners)]
		out = append(out, e.rivalSim.NewDynasty(rivalBase, country, InitialYear, banner))
	}
	return out
}

func (e *Engine) pickCountry(used map[string]bool) string {
	available := make([]string, 0, len(names.Countries))
	for _, c := range names.Countries {
		if !used[c] {
			available = append(available, c)
		}
	}
	if len(available) > 0 {
		return entropy.Pick(e.src, available)
	}
	// Pool exhausted; reuse any non-player country.
	fallback := make([]string, 0, len(names.Countries))
	for _, c := range names.Countries {
		if c != e.cfg.PlayerOrigin {
			fallback = append(fallback, c)
		}
	}
	if len(fallback) == 0 {
		fallback = names.Countries
	}
	return entropy.Pick(e.src, fallback)
}
