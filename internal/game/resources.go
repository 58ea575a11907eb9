package game

import "global-conflict/internal/catalog"

// Resources holds a nation's stockpile or a per-turn delta. Values may go
// negative; there is no bankruptcy floor.
type Resources struct {
	Money          float64 `json:"money"`
	Food           float64 `json:"food"`
	Oil            float64 `json:"oil"`
	Energy         float64 `json:"energy"`
	Population     float64 `json:"population"`
	ResearchPoints float64 `json:"researchPoints"`
}

// Get returns the amount of a resource.
func (r Resources) Get(t catalog.ResourceType) float64 {
	switch t {
	case catalog.ResourceMoney:
		return r.Money
	case catalog.ResourceFood:
		return r.Food
	case catalog.ResourceOil:
		return r.Oil
	case catalog.ResourceEnergy:
		return r.Energy
	case catalog.ResourcePopulation:
		return r.Population
	case catalog.ResourceResearchPoints:
		return r.ResearchPoints
	default:
		return 0
	}
}

// AddTo adds amount to one resource.
func (r *Resources) AddTo(t catalog.ResourceType, amount float64) {
	switch t {
	case catalog.ResourceMoney:
		r.Money += amount
	case catalog.ResourceFood:
		r.Food += amount
	case catalog.ResourceOil:
		r.Oil += amount
	case catalog.ResourceEnergy:
		r.Energy += amount
	case catalog.ResourcePopulation:
		r.Population += amount
	case catalog.ResourceResearchPoints:
		r.ResearchPoints += amount
	}
}

// Add returns the component-wise sum.
func (r Resources) Add(o Resources) Resources {
	return Resources{
		Money:          r.Money + o.Money,
		Food:           r.Food + o.Food,
		Oil:            r.Oil + o.Oil,
		Energy:         r.Energy + o.Energy,
		Population:     r.Population + o.Population,
		ResearchPoints: r.ResearchPoints + o.ResearchPoints,
	}
}

// Scale returns every component multiplied by f.
func (r Resources) Scale(f float64) Resources {
	return Resources{
		Money:          r.Money * f,
		Food:           r.Food * f,
		Oil:            r.Oil * f,
		Energy:         r.Energy * f,
		Population:     r.Population * f,
		ResearchPoints: r.ResearchPoints * f,
	}
}

// CanAfford reports whether the stockpile holds at least amount money.
func (r Resources) CanAfford(amount float64) bool {
	return r.Money >= amount
}

// Spend debits money. Returns false and leaves the stockpile untouched if
// insufficient.
func (r *Resources) Spend(amount float64) bool {
	if !r.CanAfford(amount) {
		return false
	}
	r.Money -= amount
	return true
}
