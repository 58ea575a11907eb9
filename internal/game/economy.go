package game

import "global-conflict/internal/catalog"

const (
	populationTaxRate  = 0.001
	armyUpkeepFactor   = 1.5
	armyFoodPerUnit    = 0.2
	armyOilPerVehicle  = 0.8
	labResearchPerTurn = 50
)

// ComputeIncome returns the per-turn resource delta for a nation. Every term
// is additive and nothing is clamped, so the result may be negative.
// Building upkeep and tech multipliers are catalog data only and do not
// contribute.
func ComputeIncome(cat *catalog.Catalog, n *Nation, g *GameState) Resources {
	var income Resources

	// Territory
	for _, t := range g.OwnedTiles(n.ID) {
		income.Money += t.ResourceBonus.Money
		income.Food += t.ResourceBonus.Food
		income.Oil += t.ResourceBonus.Oil
	}

	// Buildings
	for _, id := range cat.BuildingIDs() {
		count := n.Buildings[id]
		if count <= 0 {
			continue
		}
		def, _ := cat.Building(id)
		for res, amount := range def.Output {
			income.AddTo(res, amount*float64(count))
		}
	}

	// Population tax
	income.Money += n.Resources.Population * populationTaxRate

	// Reserve upkeep
	for _, id := range cat.UnitIDs() {
		def, _ := cat.Unit(id)
		income.Money -= def.Upkeep * float64(n.Units[id])
	}

	// Deployed armies
	for _, armyID := range n.Armies {
		a := g.Armies[armyID]
		if a == nil {
			continue
		}
		for _, id := range cat.UnitIDs() {
			count := float64(a.Units[id])
			if count == 0 {
				continue
			}
			def, _ := cat.Unit(id)
			income.Money -= def.Upkeep * count * armyUpkeepFactor
			income.Food -= count * armyFoodPerUnit
			if def.Category != catalog.CategoryInfantry {
				income.Oil -= count * armyOilPerVehicle
			}
		}
	}

	return income
}
