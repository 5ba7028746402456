package people

import "sort"

// EligibleRelatedRoyalSuitors returns the living, unmarried, opposite-gender
// royal-blood members of the royal's own house who could be offered in a
// consanguine marriage, sorted by status descending. Parents, children,
// grandparents, aunts and uncles, and nieces and nephews are always
// excluded; full siblings only when forbidSiblings is set.
func EligibleRelatedRoyalSuitors(royal *Person, all map[ID]*Person, year int, forbidSiblings bool) []*Person {
	if !royal.IsRoyalBlood {
		return nil
	}

	houseName := royal.LastName
	var eligible []*Person

	for _, cand := range all {
		if cand.ID == royal.ID || !cand.Alive || cand.Excommunicated || cand.SpouseID != "" {
			continue
		}
		if cand.Age(year) < MinMarriageAge || cand.Gender == royal.Gender {
			continue
		}
		if cand.ID == royal.FatherID || cand.ID == royal.MotherID {
			continue
		}
		if containsID(royal.ChildrenIDs, cand.ID) {
			continue
		}
		if forbidSiblings && isFullSibling(royal, cand) {
			continue
		}
		if !cand.IsRoyalBlood || cand.LastName != houseName {
			continue
		}
		if isGrandparent(royal, cand, all) || isParentSibling(royal, cand, all) || isSiblingChild(royal, cand, all) {
			continue
		}
		eligible = append(eligible, cand)
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].StatusPoints != eligible[j].StatusPoints {
			return eligible[i].StatusPoints > eligible[j].StatusPoints
		}
		return eligible[i].ID < eligible[j].ID
	})
	return eligible
}

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// isFullSibling reports whether a and b share both known parents.
func isFullSibling(a, b *Person) bool {
	return a.FatherID != "" && a.MotherID != "" &&
		a.FatherID == b.FatherID && a.MotherID == b.MotherID
}

func isGrandparent(royal, cand *Person, all map[ID]*Person) bool {
	for _, parentID := range []ID{royal.FatherID, royal.MotherID} {
		parent, ok := all[parentID]
		if !ok {
			continue
		}
		if cand.ID == parent.FatherID || cand.ID == parent.MotherID {
			return true
		}
	}
	return false
}

// isParentSibling reports whether cand is a full sibling of either of the
// royal's parents.
func isParentSibling(royal, cand *Person, all map[ID]*Person) bool {
	for _, parentID := range []ID{royal.FatherID, royal.MotherID} {
		parent, ok := all[parentID]
		if !ok || parent.FatherID == "" || parent.MotherID == "" {
			continue
		}
		if cand.ID != parent.ID && cand.FatherID == parent.FatherID && cand.MotherID == parent.MotherID {
			return true
		}
	}
	return false
}

// isSiblingChild reports whether cand is the child of one of the royal's
// full siblings.
func isSiblingChild(royal, cand *Person, all map[ID]*Person) bool {
	if royal.FatherID == "" || royal.MotherID == "" {
		return false
	}
	for _, p := range all {
		if p.ID == royal.ID || !isFullSibling(royal, p) {
			continue
		}
		if cand.FatherID == p.ID || cand.MotherID == p.ID {
			return true
		}
	}
	return false
}
