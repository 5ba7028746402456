// Package economy provides the purchasable-item catalog and the status
// bonuses owned items contribute to the dynasty.
package economy

// ItemCategory classifies a purchasable item.
type ItemCategory uint8

const (
	CategoryBuilding ItemCategory = iota
	CategoryArtifact
	CategoryTitle
	CategoryHolding
)

func (c ItemCategory) String() string {
	switch c {
	case CategoryBuilding:
		return "Building"
	case CategoryArtifact:
		return "Artifact"
	case CategoryTitle:
		return "Title"
	default:
		return "Holding"
	}
}

// Item is a purchasable status symbol. Catalog entries are static reference
// data shared between states.
type Item struct {
	ID          string
	Name        string
	Description string
	Cost        int
	StatusBoost float64
	Category    ItemCategory
}

// DefaultCatalog returns the standard item catalog.
func DefaultCatalog() []Item {
	return []Item{
		{ID: "item_manor_1", Name: "Small Manor Deed", Description: "Claim to a modest but respectable estate.", Cost: 150, StatusBoost: 0.2, Category: CategoryHolding},
		{ID: "item_keep_1", Name: "Stone Keep Blueprint", Description: "Plans for a fortified keep, projecting strength.", Cost: 500, StatusBoost: 0.5, Category: CategoryBuilding},
		{ID: "item_regalia_1", Name: "Minor Regalia Set", Description: "Symbols of office that lend an air of legitimacy.", Cost: 250, StatusBoost: 0.3, Category: CategoryArtifact},
		{ID: "item_charter_1", Name: "Local Market Stall", Description: "Rights to a stall in a nearby town market.", Cost: 300, StatusBoost: 0.3, Category: CategoryTitle},
		{ID: "item_castle_1", Name: "Regional Castle Claim", Description: "A claim to a significant castle, a seat of power.", Cost: 2000, StatusBoost: 1.0, Category: CategoryBuilding},
		{ID: "item_crown_1", Name: "Ceremonial Circlet", Description: "A finely crafted circlet, recognized by local peers.", Cost: 1200, StatusBoost: 0.7, Category: CategoryArtifact},
		{ID: "item_land_grant_1", Name: "Paddock Land Grant", Description: "Tracts of fertile land, bringing minor prestige.", Cost: 2500, StatusBoost: 1.2, Category: CategoryHolding},
		{ID: "item_grand_palace_1", Name: "Palace Wing Blueprint", Description: "Architectural plans for a wing of a grand palace.", Cost: 7500, StatusBoost: 2.0, Category: CategoryBuilding},
	}
}

// FindItem returns the catalog entry with the given id, or nil.
func FindItem(catalog []Item, id string) *Item {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// TotalBoost sums statusBoost × ownedCount over the catalog.
func TotalBoost(catalog []Item, owned map[string]int) float64 {
	var boost float64
	for id, count := range owned {
		if count <= 0 {
			continue
		}
		if item := FindItem(catalog, id); item != nil {
			boost += item.StatusBoost * float64(count)
		}
	}
	return boost
}
