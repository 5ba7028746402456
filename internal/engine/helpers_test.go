package engine

import (
	"strings"

	"github.com/talgya/dynastia/internal/economy"
	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
)

func testEngine(src entropy.Source) *Engine {
	return New(DefaultConfig(), src)
}

// newHouseState builds a small three-generation Tudor court: a dead founder
// couple, a reigning monarch with spouse and two children, the monarch's
// sister, and a grandchild through the elder son.
func newHouseState() *State {
	founder := &people.Person{
		ID: "founder", FirstName: "Owen", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Male, BirthYear: -55, Alive: false, IsRoyalBlood: true, StatusPoints: 12,
	}
	foundress := &people.Person{
		ID: "foundress", FirstName: "Catherine", LastName: "Tudor", OriginalLastName: "Valois",
		Gender: people.Female, BirthYear: -52, Alive: false, IsMarriedToRoyal: true, StatusPoints: 10,
	}

	monarch := &people.Person{
		ID: "monarch", FirstName: "Henry", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Male, BirthYear: -30, Alive: true, IsRoyalBlood: true, StatusPoints: 40,
		Generation: 1, FatherID: "founder", MotherID: "foundress",
	}
	sister := &people.Person{
		ID: "sister", FirstName: "Margaret", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Female, BirthYear: -28, Alive: true, IsRoyalBlood: true, StatusPoints: 25,
		Generation: 1, FatherID: "founder", MotherID: "foundress",
	}
	consort := &people.Person{
		ID: "consort", FirstName: "Elizabeth", LastName: "Tudor", OriginalLastName: "Woodville",
		Gender: people.Female, BirthYear: -28, Alive: true, IsMarriedToRoyal: true, StatusPoints: 30,
		Generation: 1,
	}
	monarch.SpouseID = "consort"
	consort.SpouseID = "monarch"
	founder.ChildrenIDs = []people.ID{"monarch", "sister"}
	foundress.ChildrenIDs = []people.ID{"monarch", "sister"}

	son := &people.Person{
		ID: "son", FirstName: "Arthur", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Male, BirthYear: -8, Alive: true, IsRoyalBlood: true, StatusPoints: 35,
		Generation: 2, FatherID: "monarch", MotherID: "consort",
	}
	daughter := &people.Person{
		ID: "daughter", FirstName: "Mary", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Female, BirthYear: -5, Alive: true, IsRoyalBlood: true, StatusPoints: 30,
		Generation: 2, FatherID: "monarch", MotherID: "consort",
	}
	monarch.ChildrenIDs = []people.ID{"son", "daughter"}
	consort.ChildrenIDs = []people.ID{"son", "daughter"}

	sonWife := &people.Person{
		ID: "sonwife", FirstName: "Jane", LastName: "Tudor", OriginalLastName: "Seymour",
		Gender: people.Female, BirthYear: -7, Alive: true, IsMarriedToRoyal: true, StatusPoints: 20,
		Generation: 2,
	}
	son.SpouseID = "sonwife"
	sonWife.SpouseID = "son"

	grandchild := &people.Person{
		ID: "grandchild", FirstName: "Edmund", LastName: "Tudor", OriginalLastName: "Tudor",
		Gender: people.Male, BirthYear: 10, Alive: true, IsRoyalBlood: true, StatusPoints: 35,
		Generation: 3, FatherID: "son", MotherID: "sonwife",
	}
	son.ChildrenIDs = []people.ID{"grandchild"}
	sonWife.ChildrenIDs = []people.ID{"grandchild"}

	return &State{
		AllPeople: map[people.ID]*people.Person{
			"founder": founder, "foundress": foundress,
			"monarch": monarch, "sister": sister, "consort": consort,
			"son": son, "daughter": daughter, "sonwife": sonWife,
			"grandchild": grandchild,
		},
		DynastyFounderID:   "founder",
		DynastyName:        "House of Tudor",
		PlayerOrigin:       "Kingdom of England",
		CurrentYear:        30,
		CurrentMonarchID:   "monarch",
		Treasury:           500,
		OwnedItems:         map[string]int{},
		Catalog:            economy.DefaultCatalog(),
		DiplomaticAttempts: map[string]int{},
	}
}

func hasNotification(s *State, substr string) bool {
	for _, n := range s.Notifications {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}
