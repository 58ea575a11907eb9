package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogContents(t *testing.T) {
	c := Default()

	assert.Len(t, c.BiomeIDs(), 7)
	assert.Len(t, c.BuildingIDs(), 7)
	assert.Len(t, c.UnitIDs(), 11)
	assert.Len(t, c.TechIDs(), 9)

	ocean, ok := c.Biome(BiomeOcean)
	require.True(t, ok)
	assert.Equal(t, 99, ocean.MoveCost)

	desert, ok := c.Biome(BiomeDesert)
	require.True(t, ok)
	assert.Equal(t, -10.0, desert.Defense)

	lab, ok := c.Building(BuildingLab)
	require.True(t, ok)
	assert.Equal(t, 10000.0, lab.Cost)
	assert.Equal(t, 50.0, lab.Output[ResourceResearchPoints])

	barracks, ok := c.Building(BuildingBarracks)
	require.True(t, ok)
	assert.Empty(t, barracks.Output)

	jet, ok := c.Unit(UnitJet)
	require.True(t, ok)
	assert.Equal(t, TechID("adv_aviation"), jet.TechRequired)
	assert.Equal(t, CategoryAir, jet.Category)

	nuclear, ok := c.Tech("nuclear_tech")
	require.True(t, ok)
	assert.ElementsMatch(t, []TechID{"ai_research", "stealth_tech"}, nuclear.Prerequisites)
	assert.Equal(t, 90.0, nuclear.Layout.X)
}

func TestDefinitionOrderIsStable(t *testing.T) {
	c := Default()

	units := c.UnitIDs()
	require.NotEmpty(t, units)
	assert.Equal(t, UnitSoldier, units[0])
	assert.Equal(t, UnitNuke, units[len(units)-1])

	// Returned slices are copies.
	units[0] = "mutated"
	assert.Equal(t, UnitSoldier, c.UnitIDs()[0])
}

func TestTerrainMultiplier(t *testing.T) {
	c := Default()

	soldier, _ := c.Unit(UnitSoldier)
	assert.Equal(t, 1.5, soldier.TerrainMultiplier(BiomeForest))
	assert.Equal(t, 1.0, soldier.TerrainMultiplier(BiomeDesert))

	tank, _ := c.Unit(UnitTank)
	assert.Equal(t, 0.5, tank.TerrainMultiplier(BiomeMountain))

	artillery, _ := c.Unit(UnitArtillery)
	assert.Equal(t, 1.0, artillery.TerrainMultiplier(BiomeCity))
}

func TestLoadRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown prerequisite",
			doc: `
techs:
  - id: a
    cost: 1
    prerequisites: [missing]
`,
			want: "unknown prerequisite",
		},
		{
			name: "unknown required tech",
			doc: `
units:
  - id: tank
    tech_required: missing
`,
			want: "unknown required tech",
		},
		{
			name: "unknown terrain biome",
			doc: `
units:
  - id: tank
    terrain_bonuses: {lava: 2}
`,
			want: "unknown biome",
		},
		{
			name: "duplicate unit",
			doc: `
units:
  - id: tank
  - id: tank
`,
			want: "duplicate unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMinimalDocument(t *testing.T) {
	c, err := Load(strings.NewReader(`
biomes:
  - id: plains
    move_cost: 1
units:
  - id: soldier
    attack: 5
    terrain_bonuses: {plains: 2}
`))
	require.NoError(t, err)

	u, ok := c.Unit(UnitSoldier)
	require.True(t, ok)
	assert.Equal(t, 2.0, u.TerrainMultiplier(BiomePlains))

	_, ok = c.Tech("basic_eco")
	assert.False(t, ok)
}
