package rivals

import (
	"testing"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

func newTestDynasty() *Dynasty {
	monarch := &people.RivalPerson{
		ID: "m1", FirstName: "Otto", LastName: "Habsburg",
		Gender: people.Male, BirthYear: -40, Alive: true, StatusPoints: 50,
	}
	elder := &people.RivalPerson{
		ID: "e1", FirstName: "Rudolf", LastName: "Habsburg",
		Gender: people.Male, BirthYear: -45, Alive: true, StatusPoints: 30,
	}
	younger := &people.RivalPerson{
		ID: "y1", FirstName: "Ida", LastName: "Habsburg",
		Gender: people.Female, BirthYear: -20, Alive: true, StatusPoints: 20,
	}
	return &Dynasty{
		ID:               "d1",
		Name:             "House of Habsburg of Valerium",
		Country:          "Valerium",
		Banner:           "rose",
		Status:           30,
		Treasury:         200,
		Members:          map[people.ID]*people.RivalPerson{"m1": monarch, "e1": elder, "y1": younger},
		CurrentMonarchID: "m1",
		FoundedYear:      -5,
	}
}

func TestNewDynastyShape(t *testing.T) {
	sim := newSim(entropy.NewRand(17))
	d := sim.NewDynasty("Habsburg", "Valerium", 0, "sky")

	if d.Name != "House of Habsburg of Valerium" {
		t.Fatalf("unexpected name %q", d.Name)
	}
	if d.Basename() != "Habsburg" {
		t.Fatalf("unexpected basename %q", d.Basename())
	}
	monarch := d.Monarch()
	if monarch == nil || !monarch.Alive {
		t.Fatal("a new dynasty must have a living monarch")
	}
	age := monarch.Age(0)
	if age < 25 || age > 45 {
		t.Fatalf("founder age %d outside [25, 45]", age)
	}
	if d.Status < InitialStatusMin || d.Status > InitialStatusMax {
		t.Fatalf("status %v outside initial range", d.Status)
	}
	if d.Treasury < InitialTreasuryMin || d.Treasury > InitialTreasuryMax {
		t.Fatalf("treasury %d outside initial range", d.Treasury)
	}
	if d.FoundedYear > 0 || d.FoundedYear < -10 {
		t.Fatalf("founded year %d outside [-10, 0]", d.FoundedYear)
	}
	if monarch.Gender == people.Male && monarch.Title != people.TitleKing {
		t.Fatalf("male monarch should be King, got %v", monarch.Title)
	}
	if monarch.Gender == people.Female && monarch.Title != people.TitleQueen {
		t.Fatalf("female monarch should be Queen, got %v", monarch.Title)
	}
}

func TestSuccessionPicksEarliestBorn(t *testing.T) {
	sim := newSim(&entropy.Scripted{})
	d := newTestDynasty()
	d.Members["m1"].Alive = false
	d.CurrentMonarchID = ""

	sim.resolveSuccession(d)
	if d.CurrentMonarchID != "e1" {
		t.Fatalf("expected the earliest-born living member e1, got %s", d.CurrentMonarchID)
	}
}

func TestSuccessionLeavesThroneWhenHouseEmpty(t *testing.T) {
	sim := newSim(&entropy.Scripted{})
	d := newTestDynasty()
	for _, m := range d.Members {
		m.Alive = false
	}
	d.CurrentMonarchID = ""

	sim.resolveSuccession(d)
	if d.CurrentMonarchID != "" {
		t.Fatalf("expected vacant throne, got %s", d.CurrentMonarchID)
	}
}

func TestApplyIncome(t *testing.T) {
	// Jitter of -100 clamps to the worst roll of -5.
	sim := newSim(&entropy.Scripted{Ints: []int{-100}})
	d := newTestDynasty()
	d.Status = 0
	d.Treasury = 0

	sim.applyIncome(d)
	if d.Treasury != 5 {
		t.Fatalf("expected treasury 5 (10 base - 5 jitter), got %d", d.Treasury)
	}

	sim = newSim(&entropy.Scripted{Ints: []int{7}})
	d.Status = 40
	sim.applyIncome(d)
	// 5 carried + 10 base + 20 status-scaled + 7 jitter.
	if d.Treasury != 42 {
		t.Fatalf("expected treasury 42, got %d", d.Treasury)
	}
}

func TestRecomputeStatusClamped(t *testing.T) {
	sim := newSim(&entropy.Scripted{})
	d := newTestDynasty()
	d.Treasury = 1000000
	sim.recomputeStatus(d)
	if d.Status > 100 {
		t.Fatalf("status %v exceeds 100", d.Status)
	}

	d2 := newTestDynasty()
	d2.Treasury = 0
	d2.CurrentMonarchID = ""
	for _, m := range d2.Members {
		m.Alive = false
	}
	sim.recomputeStatus(d2)
	if d2.Status < 0 {
		t.Fatalf("status %v below 0", d2.Status)
	}
}

func TestProcessYearSuccessionAfterMonarchDeath(t *testing.T) {
	// A 90-year-old monarch always exceeds the worst-case lifespan of 85,
	// while the other members are too young for either death path.
	d := newTestDynasty()
	d.Members["m1"].BirthYear = -90
	d.Members["e1"].BirthYear = -30
	d.Members["y1"].BirthYear = -20

	sim := newSim(entropy.NewRand(3))
	next := sim.ProcessYear(d, 0)

	if d.Members["m1"].Alive != true {
		t.Fatal("ProcessYear must not mutate its input")
	}
	if next.Members["m1"].Alive {
		t.Fatal("a 90-year-old monarch cannot outlive the maximum lifespan")
	}
	if next.CurrentMonarchID == "m1" {
		t.Fatal("dead monarch still on the throne")
	}
	if next.CurrentMonarchID == "" {
		t.Fatal("living members remain, the throne must be filled")
	}
}

func TestUpdateTitlesConsortByNameMatch(t *testing.T) {
	sim := newSim(&entropy.Scripted{})
	d := newTestDynasty()
	d.Members["m1"].Spouse = &people.SpouseInfo{FirstName: "Ida", LastName: "Habsburg", StatusPoints: 40}

	sim.UpdateTitles(d)
	if got := d.Members["m1"].Title; got != people.TitleKing {
		t.Fatalf("expected King, got %v", got)
	}
	// y1 matches the spouse snapshot by name and becomes the consort.
	if got := d.Members["y1"].Title; got != people.TitleQueenConsort {
		t.Fatalf("expected Queen Consort for the name-matched member, got %v", got)
	}
}

func newSim(src entropy.Source) *Simulator {
	return NewSimulator(src, people.NewFactory(src))
}
