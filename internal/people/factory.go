package people

import (
	"fmt"
	"strings"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/names"
)

// Demographic and suitor-generation constants shared across the engine.
const (
	MinMarriageAge     = 18
	MaxChildBearingAge = 42

	FounderMinStatus = 5
	FounderMaxStatus = 15

	NumSuitorsPerYear        = 4
	MinSuitorAge             = 18
	MaxSuitorAge             = 45
	ChanceForeignRoyalSuitor = 0.03

	foreignRoyalMinStatus = 15
	foreignRoyalMaxStatus = 30

	socialiteThreshold = 55
)

// HouseBasename strips the "House of X of Y" decoration down to the bare
// dynasty name X.
func HouseBasename(houseName string) string {
	base := strings.TrimPrefix(houseName, "House of ")
	if idx := strings.Index(base, " of "); idx >= 0 {
		base = base[:idx]
	}
	return base
}

// Factory constructs persons and rival members with derived fields. All
// randomness flows through the injected source.
type Factory struct {
	src entropy.Source
}

// NewFactory creates a person factory drawing from src.
func NewFactory(src entropy.Source) *Factory {
	return &Factory{src: src}
}

// PersonParams collects the inputs to NewPerson. Father and Mother are nil
// for founders and generated people; ReferenceStatus, when set, anchors a
// foreign royal's status to the player's.
type PersonParams struct {
	BirthYear       int
	Gender          Gender
	RoyalBlood      bool
	DynastyName     string
	Generation      int
	Father          *Person
	Mother          *Person
	Founder         bool
	ForeignRoyal    bool
	ForeignHouse    *ForeignHouse
	PlayerOrigin    string
	ReferenceStatus *float64
}

// NewPerson constructs a Person with derived name, status, origin, and
// feature fields.
func (f *Factory) NewPerson(p PersonParams) *Person {
	firstName := f.firstName(p.Gender)
	effectivelyRoyal := p.RoyalBlood || p.ForeignRoyal

	lastName := entropy.Pick(f.src, names.CommonSurnames)
	if effectivelyRoyal {
		if p.ForeignHouse != nil {
			lastName = HouseBasename(p.ForeignHouse.Name)
		} else {
			lastName = HouseBasename(p.DynastyName)
		}
	}

	person := &Person{
		ID:               NewID(),
		FirstName:        firstName,
		LastName:         lastName,
		OriginalLastName: lastName,
		Gender:           p.Gender,
		BirthYear:        p.BirthYear,
		Alive:            true,
		Features:         f.physicalFeatures(),
		Generation:       p.Generation,
		StatusPoints:     f.statusFor(p),
		IsRoyalBlood:     p.RoyalBlood,
		IsForeignRoyal:   p.ForeignRoyal,
		ForeignHouse:     p.ForeignHouse,
		OriginCountry:    f.originFor(p),
	}
	if p.Father != nil {
		person.FatherID = p.Father.ID
	}
	if p.Mother != nil {
		person.MotherID = p.Mother.ID
	}
	return person
}

func (f *Factory) firstName(g Gender) string {
	if g == Male {
		return entropy.Pick(f.src, names.MaleFirst)
	}
	return entropy.Pick(f.src, names.FemaleFirst)
}

func (f *Factory) physicalFeatures() []string {
	return []string{
		entropy.Pick(f.src, names.HairFeatures),
		entropy.Pick(f.src, names.EyeFeatures),
		entropy.Pick(f.src, names.BuildFeatures),
	}
}

func (f *Factory) statusFor(p PersonParams) int {
	var status int
	switch {
	case p.Founder:
		status = f.src.IntBetween(FounderMinStatus, FounderMaxStatus)
	case p.ForeignRoyal && p.ForeignHouse != nil && p.ReferenceStatus != nil:
		target := *p.ReferenceStatus*0.8 + float64(f.src.IntBetween(-10, 10))
		status = int(max(foreignRoyalMinStatus, target) + 0.5)
	case p.ForeignRoyal && p.ForeignHouse != nil:
		status = f.src.IntBetween(foreignRoyalMinStatus+5, foreignRoyalMaxStatus+15)
	case p.Father != nil && p.Mother != nil:
		status = max(p.Father.StatusPoints, p.Mother.StatusPoints) + f.src.IntBetween(0, 2)
	default:
		status = f.src.IntBetween(1, 10)
	}
	return entropy.Clamp(status, 0, 100)
}

func (f *Factory) originFor(p PersonParams) string {
	switch {
	case p.RoyalBlood && !p.ForeignRoyal && p.PlayerOrigin != "":
		return p.PlayerOrigin
	case p.ForeignHouse != nil:
		return p.ForeignHouse.Country
	case p.Father != nil && p.Mother != nil:
		pool := []string{p.Father.OriginCountry, p.Mother.OriginCountry, entropy.Pick(f.src, names.Countries)}
		return entropy.Pick(f.src, pool)
	default:
		pool := make([]string, 0, len(names.Countries))
		for _, c := range names.Countries {
			if c != p.PlayerOrigin {
				pool = append(pool, c)
			}
		}
		if len(pool) == 0 {
			pool = names.Countries
		}
		return entropy.Pick(f.src, pool)
	}
}

// NewRivalPerson constructs a member of a rival dynasty. Founders draw a
// higher status range than later members.
func (f *Factory) NewRivalPerson(birthYear int, g Gender, houseName string, founder bool) *RivalPerson {
	lo, hi := 20, 60
	if founder {
		lo, hi = 40, 70
	}
	return &RivalPerson{
		ID:           NewID(),
		FirstName:    f.firstName(g),
		LastName:     HouseBasename(houseName),
		Gender:       g,
		BirthYear:    birthYear,
		Alive:        true,
		StatusPoints: f.src.IntBetween(lo, hi),
	}
}

// NewSpouseInfo generates an inline spouse snapshot for a rival member.
func (f *Factory) NewSpouseInfo(g Gender, excludeSurname string, minStatus, maxStatus int) *SpouseInfo {
	pool := make([]string, 0, len(names.DynastyBasenames))
	for _, n := range names.DynastyBasenames {
		if n != excludeSurname {
			pool = append(pool, n)
		}
	}
	return &SpouseInfo{
		FirstName:    f.firstName(g),
		LastName:     entropy.Pick(f.src, pool),
		StatusPoints: f.src.IntBetween(minStatus, maxStatus),
	}
}

// GenerateSuitors builds the ephemeral yearly suitor pool. Each suitor has a
// small chance of being a foreign royal whose status tracks the player's;
// the rest are commoners at roughly 60% of the player's status. Commoners
// above the socialite threshold get the cosmetic Socialite rank.
func (f *Factory) GenerateSuitors(year int, dynastyName, playerOrigin string, existing map[ID]*Person, playerStatus float64) []*Person {
	takenOrigins := make(map[string]bool)
	for _, p := range existing {
		if p.IsForeignRoyal && p.ForeignHouse != nil {
			takenOrigins[p.ForeignHouse.Country] = true
		} else if p.IsRoyalBlood && playerOrigin != "" {
			takenOrigins[playerOrigin] = true
		}
	}

	playerBase := HouseBasename(dynastyName)
	suitors := make([]*Person, 0, NumSuitorsPerYear)

	for i := 0; i < NumSuitorsPerYear; i++ {
		gender := Male
		if entropy.Chance(f.src, 0.5) {
			gender = Female
		}
		birthYear := year - f.src.IntBetween(MinSuitorAge, MaxSuitorAge)
		foreignRoyal := entropy.Chance(f.src, ChanceForeignRoyalSuitor)

		var house *ForeignHouse
		suitorDynasty := "Commoner"
		if foreignRoyal {
			house = f.newForeignHouse(playerBase, takenOrigins)
			takenOrigins[house.Country] = true
			suitorDynasty = house.Name
		}

		ref := playerStatus
		suitor := f.NewPerson(PersonParams{
			BirthYear:       birthYear,
			Gender:          gender,
			RoyalBlood:      foreignRoyal,
			DynastyName:     suitorDynasty,
			Generation:      0,
			ForeignRoyal:    foreignRoyal,
			ForeignHouse:    house,
			PlayerOrigin:    playerOrigin,
			ReferenceStatus: &ref,
		})

		if !foreignRoyal {
			target := playerStatus*0.6 + float64(f.src.IntBetween(-8, 8))
			suitor.StatusPoints = entropy.Clamp(int(max(1, target)+0.5), 0, 100)
			if suitor.StatusPoints > socialiteThreshold {
				suitor.Title = TitleSocialite
			}
		}
		suitors = append(suitors, suitor)
	}
	return suitors
}

func (f *Factory) newForeignHouse(playerBase string, takenOrigins map[string]bool) *ForeignHouse {
	basePool := make([]string, 0, len(names.DynastyBasenames))
	for _, n := range names.DynastyBasenames {
		if n != playerBase {
			basePool = append(basePool, n)
		}
	}

	countryPool := make([]string, 0, len(names.Countries))
	for _, c := range names.Countries {
		if !takenOrigins[c] {
			countryPool = append(countryPool, c)
		}
	}
	if len(countryPool) == 0 {
		countryPool = names.Countries
	}

	base := entropy.Pick(f.src, basePool)
	country := entropy.Pick(f.src, countryPool)
	return &ForeignHouse{
		ID:      NewID(),
		Name:    fmt.Sprintf("House of %s of %s", base, country),
		Country: country,
	}
}

// GeneratedSpouse builds a commoner spouse for a royal who found nobody in
// the suitor pool. Age lands within ten years of the royal, clamped to the
// marriageable range; status is anchored to half the royal's.
func (f *Factory) GeneratedSpouse(royal *Person, year int, playerOrigin string) *Person {
	age := royal.Age(year)
	minAge := max(MinMarriageAge, age-10)
	maxAge := min(age+10, 50)
	if minAge > maxAge {
		// A royal past 60 still draws a spouse within the window ceiling.
		minAge = maxAge
	}
	spouseAge := f.src.IntBetween(minAge, maxAge)

	spouse := f.NewPerson(PersonParams{
		BirthYear:    year - spouseAge,
		Gender:       royal.Gender.Opposite(),
		DynastyName:  "Commoner",
		Generation:   royal.Generation,
		PlayerOrigin: playerOrigin,
	})

	status := royal.StatusPoints/2 + f.src.IntBetween(-5, 10)
	spouse.StatusPoints = entropy.Clamp(status, 10, 100)
	if spouse.StatusPoints > socialiteThreshold {
		spouse.Title = TitleSocialite
	}
	return spouse
}
