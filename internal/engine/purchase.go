package engine

import "github.com/talgya/dynastia/internal/economy"

// PurchaseItem buys one unit of a catalog item, debiting the treasury. Items
// stack: each owned copy contributes its status boost.
func (e *Engine) PurchaseItem(prev *State, itemID string) *State {
	s := prev.Clone()
	item := economy.FindItem(s.Catalog, itemID)
	if item == nil {
		s.notify("Item not found.")
		return s
	}
	if s.Treasury < item.Cost {
		s.notify("Not enough gold to purchase %s.", item.Name)
		return s
	}

	s.Treasury -= item.Cost
	s.OwnedItems[itemID]++
	s.notify("%s purchased for %d gold.", item.Name, item.Cost)
	return s
}
