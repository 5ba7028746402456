// Package people provides the person data model for both the player dynasty
// and rival dynasties, the person factory, and kinship eligibility queries.
package people

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is a unique identifier for a person or house.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Gender represents a person's gender for demographic simulation.
type Gender uint8

const (
	Male   Gender = 0
	Female Gender = 1
)

// Opposite returns the other gender.
func (g Gender) Opposite() Gender {
	if g == Male {
		return Female
	}
	return Male
}

func (g Gender) String() string {
	if g == Male {
		return "Male"
	}
	return "Female"
}

// Title is the closed set of ranks the title engine can assign. Display
// strings exist only at the presentation boundary via String.
type Title uint8

const (
	TitleNone Title = iota
	TitleKing
	TitleQueen
	TitleQueenConsort
	TitlePrinceConsort
	TitlePrince
	TitlePrincess
	TitleDuke
	TitleDuchess
	TitleDukeConsort
	TitleRegalite
	TitleSocialite
)

var titleNames = map[Title]string{
	TitleNone:          "",
	TitleKing:          "King",
	TitleQueen:         "Queen",
	TitleQueenConsort:  "Queen Consort",
	TitlePrinceConsort: "Prince Consort",
	TitlePrince:        "Prince",
	TitlePrincess:      "Princess",
	TitleDuke:          "Duke",
	TitleDuchess:       "Duchess",
	TitleDukeConsort:   "Duke Consort",
	TitleRegalite:      "Regalite",
	TitleSocialite:     "Socialite",
}

func (t Title) String() string {
	return titleNames[t]
}

// ForeignHouse describes the dynasty a foreign royal belongs to.
type ForeignHouse struct {
	ID      ID
	Name    string // e.g. "House of Habsburg of Valerium"
	Country string
}

// Person is a member of the player's world: dynasty members, their spouses,
// and pool suitors all share this shape.
type Person struct {
	ID               ID
	FirstName        string
	LastName         string // dynasty basename for royals, surname otherwise
	OriginalLastName string // pre-marital surname, preserved across marriage

	Gender    Gender
	BirthYear int
	DeathYear *int
	Alive     bool

	OriginCountry string
	Features      []string // hair, eyes, build tags
	Generation    int      // 0 for founders and generated suitors

	StatusPoints     int // always within [0, 100]
	IsRoyalBlood     bool
	IsMarriedToRoyal bool
	IsForeignRoyal   bool
	ForeignHouse     *ForeignHouse
	Excommunicated   bool
	Title            Title

	SpouseID    ID
	FatherID    ID
	MotherID    ID
	ChildrenIDs []ID // insertion order is birth order
}

// Age returns the person's age in the given year.
func (p *Person) Age(year int) int {
	return year - p.BirthYear
}

// FullName returns the display name.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PortraitURL returns the cosmetic portrait reference keyed by id.
func (p *Person) PortraitURL() string {
	return fmt.Sprintf("https://api.dicebear.com/8.x/pixel-art/svg?seed=%s", p.ID)
}

// Clone returns a deep copy of the person.
func (p *Person) Clone() *Person {
	c := *p
	if p.DeathYear != nil {
		y := *p.DeathYear
		c.DeathYear = &y
	}
	if p.ForeignHouse != nil {
		fh := *p.ForeignHouse
		c.ForeignHouse = &fh
	}
	c.Features = append([]string(nil), p.Features...)
	c.ChildrenIDs = append([]ID(nil), p.ChildrenIDs...)
	return &c
}

// SpouseInfo is the inline snapshot of a rival member's spouse. Rival
// spouses are not simulated people, so only name and status are kept; any
// back-reference lookup by name is best-effort and lossy under collisions.
type SpouseInfo struct {
	FirstName    string
	LastName     string
	StatusPoints int
}

// RivalPerson is the lighter-weight member of a rival dynasty. Family links
// are not materialized beyond a child counter on the monarch line.
type RivalPerson struct {
	ID        ID
	FirstName string
	LastName  string
	Gender    Gender
	BirthYear int
	DeathYear *int
	Alive     bool

	StatusPoints  int
	Spouse        *SpouseInfo
	ChildrenCount int
	Title         Title
}

// Age returns the member's age in the given year.
func (r *RivalPerson) Age(year int) int {
	return year - r.BirthYear
}

// Clone returns a deep copy of the rival member.
func (r *RivalPerson) Clone() *RivalPerson {
	c := *r
	if r.DeathYear != nil {
		y := *r.DeathYear
		c.DeathYear = &y
	}
	if r.Spouse != nil {
		s := *r.Spouse
		c.Spouse = &s
	}
	return &c
}
