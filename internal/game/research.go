package game

import "global-conflict/internal/catalog"

// TechAvailable reports whether a nation may start researching a tech: it is
// a known tech, not yet researched, and all its prerequisites are.
func TechAvailable(cat *catalog.Catalog, n *Nation, id catalog.TechID) bool {
	tech, ok := cat.Tech(id)
	if !ok || n.HasTech(id) {
		return false
	}
	for _, pre := range tech.Prerequisites {
		if !n.HasTech(pre) {
			return false
		}
	}
	return true
}

// AvailableTechs returns the techs a nation may start, in catalog order.
func AvailableTechs(cat *catalog.Catalog, n *Nation) []catalog.TechID {
	var out []catalog.TechID
	for _, id := range cat.TechIDs() {
		if TechAvailable(cat, n, id) {
			out = append(out, id)
		}
	}
	return out
}

// UnlockedUnits returns the unit types a nation may recruit, in catalog order.
func UnlockedUnits(cat *catalog.Catalog, n *Nation) []catalog.UnitID {
	var out []catalog.UnitID
	for _, id := range cat.UnitIDs() {
		def, _ := cat.Unit(id)
		if def.TechRequired == "" || n.HasTech(def.TechRequired) {
			out = append(out, id)
		}
	}
	return out
}
