package engine

import (
	"testing"

	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

func TestSuccessionPrefersSeniorGeneration(t *testing.T) {
	e := testEngine(&entropy.Scripted{})
	s := newHouseState()

	// The monarch dies; the sister (generation 1) outranks the children
	// (generation 2) even though they stand in the direct line.
	s.AllPeople["monarch"].Alive = false
	e.updateSuccession(s)

	if s.CurrentMonarchID != "sister" {
		t.Fatalf("expected the sister to ascend, got %s", s.CurrentMonarchID)
	}
	if !hasNotification(s, "has ascended to the throne") {
		t.Fatalf("missing ascension notification: %v", s.Notifications)
	}
}

func TestSuccessionEldestWithinGeneration(t *testing.T) {
	e := testEngine(&entropy.Scripted{})
	s := newHouseState()

	s.AllPeople["monarch"].Alive = false
	s.AllPeople["sister"].Alive = false
	e.updateSuccession(s)

	// Within generation 2, the son (born -8) precedes the daughter (born -5).
	if s.CurrentMonarchID != "son" {
		t.Fatalf("expected the elder child to ascend, got %s", s.CurrentMonarchID)
	}
	if got := s.AllPeople["son"].Title; got != people.TitleKing {
		t.Fatalf("new monarch should be crowned, got %v", got)
	}
}

func TestSuccessionNoOpWhileMonarchReigns(t *testing.T) {
	e := testEngine(&entropy.Scripted{})
	s := newHouseState()
	e.updateSuccession(s)

	if s.CurrentMonarchID != "monarch" {
		t.Fatalf("reigning monarch displaced: %s", s.CurrentMonarchID)
	}
	if hasNotification(s, "ascended") {
		t.Fatalf("no ascension should occur: %v", s.Notifications)
	}
}

func TestSuccessionExtinction(t *testing.T) {
	e := testEngine(&entropy.Scripted{})
	s := newHouseState()

	for _, p := range s.AllPeople {
		if p.IsRoyalBlood {
			p.Alive = false
		}
	}
	e.updateSuccession(s)

	if !s.Extinct() {
		t.Fatal("dynasty with no living royals must be extinct")
	}
	if s.CurrentMonarchID != "" {
		t.Fatalf("extinct dynasty cannot keep a monarch: %s", s.CurrentMonarchID)
	}
	if !hasNotification(s, "There are no living heirs") {
		t.Fatalf("missing extinction notification: %v", s.Notifications)
	}
}

func TestSuccessionRestartsFromEldestWhenFounderRemoved(t *testing.T) {
	e := testEngine(&entropy.Scripted{})
	s := newHouseState()

	s.AllPeople["monarch"].Alive = false
	delete(s.AllPeople, "founder")
	s.DynastyFounderID = ""
	e.updateSuccession(s)

	// The walk restarts at the earliest-born living eligible royal: the
	// sister is generation 1 and becomes monarch.
	if s.CurrentMonarchID != "sister" {
		t.Fatalf("expected the sister to ascend, got %s", s.CurrentMonarchID)
	}
}
