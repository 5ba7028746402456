// Package names holds the static word-list corpus: given names, commoner
// surnames, countries, physical feature tags, and dynasty basenames.
package names

// MaleFirst and FemaleFirst are the given-name pools, indexed by gender at
// the call sites.
var MaleFirst = []string{
	"William", "Henry", "Richard", "John", "Edward", "Charles", "James", "Robert", "Louis", "Philip",
	"Frederick", "Leopold", "Maximilian", "Otto", "Conrad", "Hugh", "Roger", "Walter", "Geoffrey",
	"Stephen", "Peter", "Paul", "Andrew", "Thomas", "Simon", "Bartholomew", "Matthew", "Michael",
	"Gabriel", "David", "Samuel", "Joseph", "Daniel", "Alfonso", "Ferdinand", "Sancho", "Rodrigo",
	"Giovanni", "Marco", "Lorenzo", "Alessandro", "Antonio", "Pietro", "Stefan", "Ivan", "Dmitri",
	"Vladimir", "Erik", "Lars", "Olaf", "Harald", "Casimir", "Wladyslaw", "Vaclav", "Istvan",
	"Arthur", "George", "Albert", "Victor", "Alfred", "Cecil", "Neville", "Winston",
}

var FemaleFirst = []string{
	"Eleanor", "Isabella", "Matilda", "Victoria", "Elizabeth", "Catherine", "Mary", "Anne", "Margaret", "Sophia",
	"Charlotte", "Amelia", "Josephine", "Constance", "Beatrice", "Alice", "Joan", "Agnes", "Cecilia",
	"Blanche", "Theresa", "Maria", "Juana", "Isabelle", "Marguerite", "Genevieve", "Astrid", "Ingrid",
	"Svetlana", "Olga", "Anna", "Helena", "Clara", "Emma", "Rose", "Lydia", "Sofia", "Natalia", "Anastasia",
	"Diana", "Philippa", "Maud", "Edith", "Harriet",
}

// CommonSurnames is the surname pool for people born outside any dynasty.
var CommonSurnames = []string{
	"Smith", "Jones", "Williams", "Brown", "Taylor", "Davies", "Wilson", "Evans", "Thomas", "Roberts",
	"Attlee", "Churchill", "Gladstone", "Disraeli", "Pitt", "Walpole", "Peel", "Palmerston", "Thatcher", "Blair",
	"Baker", "Wright", "Walker", "Green", "Hall", "Wood", "Jackson", "Clarke", "Harris", "Cooper",
	"King", "Lee", "Johnson", "White", "Edwards", "Lewis", "Scott", "Hill", "Adams", "Mitchell",
}

// DynastyBasenames seeds both the player's house and every rival house.
var DynastyBasenames = []string{
	"Plantagenet", "Capet", "Valois", "Bourbon", "Habsburg", "Hohenzollern", "Wittelsbach", "Romanov",
	"Stuart", "Tudor", "Lancaster", "York", "Angevin", "Norman", "Saxon", "Guelf", "Savoy", "Medici",
	"Trastámara", "Jiménez", "Piast", "Jagiellon", "Árpád", "Přemyslid", "Rurikid", "Komnenos", "Palaiologos",
	"De Vere", "Percy", "Neville", "Mortimer", "Howard", "Douglas", "Hamilton", "Bruce",
}

// Countries is the origin pool for generated people and rival dynasties.
var Countries = []string{
	"Eldoria", "Valerium", "Crystalia", "Ironhold", "Sylvandell",
	"Meridia", "Aerilon", "Pyronia", "Aquaria", "Terragard",
}

// Physical feature pools; one tag is drawn from each.
var (
	HairFeatures  = []string{"Black Hair", "Brown Hair", "Blonde Hair", "Red Hair", "Silver Hair"}
	EyeFeatures   = []string{"Blue Eyes", "Green Eyes", "Brown Eyes", "Hazel Eyes", "Grey Eyes"}
	BuildFeatures = []string{"Slender Build", "Athletic Build", "Average Build", "Sturdy Build"}
)
