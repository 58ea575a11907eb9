package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
	"global-conflict/internal/pkg/idgen"
)

// Helper to create a small test world: a radius-2 map of plains, the player
// nation c_0 owning the centre, a rival c_1, and an available general gen_x
// serving c_0.
func createTestGameState() *GameState {
	g := &GameState{
		Turn:           1,
		Year:           2027,
		Month:          1,
		PlayerNationID: "c_0",
		Nations:        make(map[string]*Nation),
		Map:            make(map[string]*Tile),
		Armies:         make(map[string]*Army),
		Generals:       make(map[string]*General),
		Relations:      make(map[string]map[string]*Relation),
	}

	for _, h := range HexesInRadius(2) {
		id := h.ID()
		g.Map[id] = &Tile{
			ID:           id,
			Coords:       h,
			Biome:        catalog.BiomePlains,
			Name:         "Province " + id,
			MovementCost: 1,
		}
	}
	g.Map["0,0"].OwnerID = "c_0"

	names := map[string]string{"c_0": "Atlantis", "c_1": "Oceania"}
	for id, name := range names {
		g.Nations[id] = &Nation{
			ID:              id,
			Name:            name,
			Resources:       Resources{Money: 100000, Population: 5_000_000},
			Buildings:       map[catalog.BuildingID]int{},
			Units:           map[catalog.UnitID]int{catalog.UnitSoldier: 50, catalog.UnitTank: 10},
			Armies:          []string{},
			Generals:        []string{},
			ResearchedTechs: []catalog.TechID{},
			Intelligence:    map[string]int{},
		}
	}
	g.Nations["c_0"].IsPlayer = true

	for src := range names {
		g.Relations[src] = make(map[string]*Relation)
		for dst := range names {
			if src != dst {
				g.Relations[src][dst] = &Relation{TargetID: dst, Status: RelationNeutral}
				g.Nations[src].Intelligence[dst] = 10
			}
		}
	}

	addGeneral(g, "c_0", "gen_x", GeneralStats{Strategy: 1, Bravery: 0, Logistics: 1})
	return g
}

func addGeneral(g *GameState, nationID, id string, stats GeneralStats) *General {
	gen := &General{ID: id, Name: "General " + id, Level: 1, Stats: stats, Status: GeneralAvailable}
	g.Generals[id] = gen
	g.Nations[nationID].Generals = append(g.Nations[nationID].Generals, id)
	return gen
}

// addArmy deploys an army directly, bypassing reserves.
func addArmy(g *GameState, nationID, id, location string, stats GeneralStats, units map[catalog.UnitID]int) *Army {
	gen := addGeneral(g, nationID, "gen_"+id, stats)
	gen.Status = GeneralAssigned
	a := &Army{
		ID:             id,
		Name:           id + " Corps",
		OwnerID:        nationID,
		GeneralID:      gen.ID,
		Location:       location,
		Units:          units,
		MovementPoints: 2,
		MaxMovement:    2,
	}
	g.Armies[id] = a
	g.Nations[nationID].Armies = append(g.Nations[nationID].Armies, id)
	return a
}

// newTestEngine returns an engine whose random draws replay values.
func newTestEngine(values ...float64) *Engine {
	return NewEngine(
		WithRand(entropy.NewScripted(values...)),
		WithIDs(idgen.NewSequential("")),
	)
}

func TestCreateTestGameStateIsValid(t *testing.T) {
	require.NoError(t, createTestGameState().Validate())
}

func TestCloneSharesNoMemory(t *testing.T) {
	g := createTestGameState()
	addArmy(g, "c_0", "army_a", "0,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 5})
	g.LastBattle = &BattleResult{AttackerLosses: map[catalog.UnitID]int{catalog.UnitSoldier: 1}, Details: []string{"x"}}
	g.Messages = []Message{{ID: "msg_0"}}

	c := g.Clone()
	c.Nations["c_0"].Resources.Money = 1
	c.Nations["c_0"].Units[catalog.UnitSoldier] = 0
	c.Nations["c_0"].Armies[0] = "changed"
	c.Map["0,0"].OwnerID = "c_1"
	c.Armies["army_a"].Units[catalog.UnitSoldier] = 0
	c.Generals["gen_x"].Status = GeneralDead
	c.Relations["c_0"]["c_1"].Opinion = 99
	c.LastBattle.AttackerLosses[catalog.UnitSoldier] = 7
	c.LastBattle.Details[0] = "y"
	c.Messages[0].Read = true

	assert.Equal(t, 100000.0, g.Nations["c_0"].Resources.Money)
	assert.Equal(t, 50, g.Nations["c_0"].Units[catalog.UnitSoldier])
	assert.Equal(t, "army_a", g.Nations["c_0"].Armies[0])
	assert.Equal(t, "c_0", g.Map["0,0"].OwnerID)
	assert.Equal(t, 5, g.Armies["army_a"].Units[catalog.UnitSoldier])
	assert.Equal(t, GeneralAvailable, g.Generals["gen_x"].Status)
	assert.Equal(t, 0, g.Relations["c_0"]["c_1"].Opinion)
	assert.Equal(t, 1, g.LastBattle.AttackerLosses[catalog.UnitSoldier])
	assert.Equal(t, "x", g.LastBattle.Details[0])
	assert.False(t, g.Messages[0].Read)
}

func TestValidateDetectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *GameState)
		want   error
	}{
		{
			name:   "dangling tile owner",
			mutate: func(g *GameState) { g.Map["1,0"].OwnerID = "c_9" },
			want:   ErrUnknownNation,
		},
		{
			name:   "roster lists missing army",
			mutate: func(g *GameState) { g.Nations["c_0"].Armies = []string{"army_missing"} },
			want:   ErrUnknownArmy,
		},
		{
			name:   "roster lists missing general",
			mutate: func(g *GameState) { g.Nations["c_1"].Generals = []string{"gen_missing"} },
			want:   ErrUnknownGeneral,
		},
		{
			name: "army off the map",
			mutate: func(g *GameState) {
				addArmy(g, "c_0", "army_a", "9,9", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 1})
			},
			want: ErrUnknownTile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := createTestGameState()
			tt.mutate(g)
			assert.ErrorIs(t, g.Validate(), tt.want)
		})
	}
}

func TestValidateRequiresAssignedGeneral(t *testing.T) {
	g := createTestGameState()
	a := addArmy(g, "c_0", "army_a", "0,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 1})
	g.Generals[a.GeneralID].Status = GeneralAvailable
	assert.Error(t, g.Validate())
}

func TestValidateRejectsBadCoordinates(t *testing.T) {
	g := createTestGameState()
	g.Map["0,0"].Coords.S = 5
	assert.Error(t, g.Validate())
}

func TestArmiesAtIsSorted(t *testing.T) {
	g := createTestGameState()
	addArmy(g, "c_1", "army_b", "1,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 1})
	addArmy(g, "c_1", "army_a", "1,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 1})
	addArmy(g, "c_0", "army_c", "0,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitSoldier: 1})

	at := g.ArmiesAt("1,0")
	require.Len(t, at, 2)
	assert.Equal(t, "army_a", at[0].ID)
	assert.Equal(t, "army_b", at[1].ID)
	assert.Empty(t, g.ArmiesAt("2,0"))
}

func TestLookups(t *testing.T) {
	g := createTestGameState()
	assert.Equal(t, "Atlantis", g.PlayerNation().Name)
	assert.NotNil(t, g.Tile("0,0"))
	assert.Nil(t, g.Tile("7,7"))
	assert.Nil(t, g.Army("army_none"))
	assert.NotNil(t, g.General("gen_x"))
	assert.NotNil(t, g.Relation("c_0", "c_1"))
	assert.Nil(t, g.Relation("c_0", "c_0"))
	assert.Equal(t, []string{"c_0", "c_1"}, g.NationIDs())
	assert.Len(t, g.OwnedTiles("c_0"), 1)
}
