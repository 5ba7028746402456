package engine

import (
	"testing"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

func TestProcessDeathsOldAge(t *testing.T) {
	// Float 1 disables the flat random-death roll; IntBetween at min pins
	// every lifespan to the 65-year floor.
	e := testEngine(entropy.FixedFloat{F: 1})
	s := newHouseState()
	s.AllPeople["monarch"].BirthYear = -45 // age 75

	e.processDeaths(s)

	monarch := s.AllPeople["monarch"]
	if monarch.Alive {
		t.Fatal("a 75-year-old cannot outlive the pinned 65-year lifespan")
	}
	if monarch.DeathYear == nil || *monarch.DeathYear != s.CurrentYear {
		t.Fatalf("death year not recorded: %v", monarch.DeathYear)
	}
	if s.AllPeople["consort"].SpouseID != "" {
		t.Fatal("widow keeps a spouse link to the dead")
	}
	if !hasNotification(s, "has died at age 75") {
		t.Fatalf("missing death notification: %v", s.Notifications)
	}
	if !hasNotification(s, "The realm mourns the passing of their Monarch, Henry.") {
		t.Fatalf("missing mourning notification: %v", s.Notifications)
	}

	// Everyone younger than the floor survives.
	for _, id := range []people.ID{"sister", "son", "daughter", "grandchild"} {
		if !s.AllPeople[id].Alive {
			t.Fatalf("%s died below the lifespan floor", id)
		}
	}
}

func TestProcessBirthsRoyalCouple(t *testing.T) {
	// Float 0 makes every birth roll succeed.
	e := testEngine(entropy.FixedFloat{F: 0})
	s := newHouseState()
	s.CurrentYear = 10 // consort is 38; the son's wife is still 17

	before := len(s.AllPeople)
	e.processBirths(s)

	if len(s.AllPeople) != before+1 {
		t.Fatalf("expected exactly one birth, got %d new people", len(s.AllPeople)-before)
	}
	consort := s.AllPeople["consort"]
	if len(consort.ChildrenIDs) != 3 {
		t.Fatalf("expected a third child for the monarch couple, got %d", len(consort.ChildrenIDs))
	}
	child := s.AllPeople[consort.ChildrenIDs[2]]
	if !child.IsRoyalBlood || child.LastName != "Tudor" || child.Generation != 2 {
		t.Fatalf("malformed newborn: %+v", child)
	}
	if !hasNotification(s, "was born to") {
		t.Fatalf("missing birth notification: %v", s.Notifications)
	}
}

func TestProcessBirthsSkipsWidowsAndElders(t *testing.T) {
	e := testEngine(entropy.FixedFloat{F: 0})
	s := newHouseState()
	s.CurrentYear = 10
	s.AllPeople["monarch"].Alive = false

	before := len(s.AllPeople)
	e.processBirths(s)
	if len(s.AllPeople) != before {
		t.Fatal("a widow cannot bear children")
	}

	s2 := newHouseState() // year 30: consort is 58
	e.processBirths(s2)
	if got := len(s2.AllPeople["consort"].ChildrenIDs); got != 2 {
		t.Fatal("no births past the child-bearing window")
	}
}
