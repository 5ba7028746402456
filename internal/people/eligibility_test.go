package people

import "testing"

// buildRoyalFamily returns a three-generation house: grandparents, their two
// children (one married into the house), and a grandchild.
func buildRoyalFamily() (map[ID]*Person, *Person) {
	grandfather := &Person{ID: "gf", FirstName: "Edmund", LastName: "Tudor", Gender: Male, BirthYear: -60, Alive: true, IsRoyalBlood: true}
	grandmother := &Person{ID: "gm", FirstName: "Margaret", LastName: "Tudor", Gender: Female, BirthYear: -58, Alive: true, IsRoyalBlood: true}
	grandfather.SpouseID = grandmother.ID
	grandmother.SpouseID = grandfather.ID

	father := &Person{ID: "fa", FirstName: "Henry", LastName: "Tudor", Gender: Male, BirthYear: -30, Alive: true, IsRoyalBlood: true, FatherID: "gf", MotherID: "gm", Generation: 1}
	uncle := &Person{ID: "un", FirstName: "Arthur", LastName: "Tudor", Gender: Male, BirthYear: -28, Alive: true, IsRoyalBlood: true, FatherID: "gf", MotherID: "gm", Generation: 1}
	mother := &Person{ID: "mo", FirstName: "Anne", LastName: "Tudor", Gender: Female, BirthYear: -28, Alive: true, IsMarriedToRoyal: true, Generation: 1}
	father.SpouseID = mother.ID
	mother.SpouseID = father.ID
	grandfather.ChildrenIDs = []ID{"fa", "un"}
	grandmother.ChildrenIDs = []ID{"fa", "un"}

	royal := &Person{ID: "ry", FirstName: "Edward", LastName: "Tudor", Gender: Male, BirthYear: 0, Alive: true, IsRoyalBlood: true, FatherID: "fa", MotherID: "mo", Generation: 2}
	sister := &Person{ID: "si", FirstName: "Mary", LastName: "Tudor", Gender: Female, BirthYear: 1, Alive: true, IsRoyalBlood: true, FatherID: "fa", MotherID: "mo", Generation: 2, StatusPoints: 20}
	father.ChildrenIDs = []ID{"ry", "si"}
	mother.ChildrenIDs = []ID{"ry", "si"}

	all := map[ID]*Person{
		"gf": grandfather, "gm": grandmother,
		"fa": father, "un": uncle, "mo": mother,
		"ry": royal, "si": sister,
	}
	return all, royal
}

func TestEligibleRelatedRoyalSuitorsAllowsSiblings(t *testing.T) {
	all, royal := buildRoyalFamily()

	got := EligibleRelatedRoyalSuitors(royal, all, 30, false)
	if len(got) != 1 || got[0].ID != "si" {
		t.Fatalf("expected only the sister to qualify, got %v", ids(got))
	}
}

func TestEligibleRelatedRoyalSuitorsForbidsSiblings(t *testing.T) {
	all, royal := buildRoyalFamily()

	got := EligibleRelatedRoyalSuitors(royal, all, 30, true)
	if len(got) != 0 {
		t.Fatalf("expected no eligible relatives with sibling marriage forbidden, got %v", ids(got))
	}
}

func TestEligibleRelatedRoyalSuitorsExcludesKinClasses(t *testing.T) {
	all, royal := buildRoyalFamily()

	// A royal-blood cousin-in-line: child of the uncle. Not excluded by any
	// kinship rule, so she must appear alongside the sister.
	cousin := &Person{ID: "co", FirstName: "Jane", LastName: "Tudor", Gender: Female, BirthYear: -5, Alive: true, IsRoyalBlood: true, FatherID: "un", Generation: 2, StatusPoints: 40}
	all["co"] = cousin

	got := EligibleRelatedRoyalSuitors(royal, all, 30, false)
	if len(got) != 2 {
		t.Fatalf("expected sister and cousin, got %v", ids(got))
	}
	if got[0].ID != "co" || got[1].ID != "si" {
		t.Fatalf("expected status-descending order [co si], got %v", ids(got))
	}

	for _, g := range got {
		if g.ID == "mo" || g.ID == "gm" {
			t.Fatalf("kin class leaked into eligible set: %s", g.ID)
		}
	}
}

func TestEligibleRelatedRoyalSuitorsExcludesMinorsAndMarried(t *testing.T) {
	all, royal := buildRoyalFamily()

	// Sister not yet of age.
	got := EligibleRelatedRoyalSuitors(royal, all, 10, false)
	if len(got) != 0 {
		t.Fatalf("underage relatives must not qualify, got %v", ids(got))
	}

	// Married sister.
	all["si"].SpouseID = "xx"
	got = EligibleRelatedRoyalSuitors(royal, all, 30, false)
	if len(got) != 0 {
		t.Fatalf("married relatives must not qualify, got %v", ids(got))
	}
}

func TestEligibleRelatedRoyalSuitorsNonRoyalInitiator(t *testing.T) {
	all, _ := buildRoyalFamily()
	if got := EligibleRelatedRoyalSuitors(all["mo"], all, 30, false); got != nil {
		t.Fatalf("non-royal initiator should get nil, got %v", ids(got))
	}
}

func ids(ps []*Person) []ID {
	out := make([]ID, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
