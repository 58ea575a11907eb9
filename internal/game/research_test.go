package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"global-conflict/internal/catalog"
)

func TestTechAvailability(t *testing.T) {
	cat := catalog.Default()
	n := &Nation{}

	assert.Equal(t, []catalog.TechID{"basic_eco"}, AvailableTechs(cat, n))
	assert.False(t, TechAvailable(cat, n, "ind_automation"))
	assert.False(t, TechAvailable(cat, n, "warp_drive"))

	n.ResearchedTechs = []catalog.TechID{"basic_eco"}
	assert.Equal(t, []catalog.TechID{"ind_automation", "adv_farming"}, AvailableTechs(cat, n))
	assert.False(t, TechAvailable(cat, n, "basic_eco"))

	// Both prerequisites are required.
	n.ResearchedTechs = append(n.ResearchedTechs, "ind_automation", "missile_tech")
	assert.False(t, TechAvailable(cat, n, "ai_research"))
	n.ResearchedTechs = append(n.ResearchedTechs, "naval_dominance")
	assert.True(t, TechAvailable(cat, n, "ai_research"))
}

func TestUnlockedUnits(t *testing.T) {
	cat := catalog.Default()
	n := &Nation{}

	assert.Equal(t, []catalog.UnitID{catalog.UnitSoldier, catalog.UnitTank, catalog.UnitArtillery, catalog.UnitDestroyer}, UnlockedUnits(cat, n))

	n.ResearchedTechs = []catalog.TechID{"adv_aviation"}
	assert.Contains(t, UnlockedUnits(cat, n), catalog.UnitJet)
	assert.Contains(t, UnlockedUnits(cat, n), catalog.UnitHelicopter)
	assert.NotContains(t, UnlockedUnits(cat, n), catalog.UnitBomber)
}
