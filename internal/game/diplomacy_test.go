package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"global-conflict/internal/catalog"
)

func diplo(action DiplomaticAction) DiplomacyAction {
	return DiplomacyAction{SourceID: "c_0", TargetID: "c_1", Action: action}
}

func TestImproveRelations(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()

	next, err := e.Apply(g, diplo(ActionImproveRelations))
	require.NoError(t, err)
	assert.Equal(t, 99000.0, next.Nations["c_0"].Resources.Money)
	assert.Equal(t, 10, next.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, 0, next.Relation("c_0", "c_1").Opinion)
	require.Len(t, next.Messages, 1)
	assert.Equal(t, "Relations Improved", next.Messages[0].Title)

	g.Nations["c_0"].Resources.Money = 999
	broke, err := e.Apply(g, diplo(ActionImproveRelations))
	require.NoError(t, err)
	assert.Same(t, g, broke)
}

func TestOpinionIsClampedAndDrivesStatus(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()
	g.Relation("c_1", "c_0").Opinion = 95

	next, err := e.Apply(g, diplo(ActionSendAid))
	require.NoError(t, err)
	r := next.Relation("c_1", "c_0")
	assert.Equal(t, 100, r.Opinion)
	assert.Equal(t, RelationFriendly, r.Status)
	assert.Equal(t, 95000.0, next.Nations["c_0"].Resources.Money)
	assert.Equal(t, 105000.0, next.Nations["c_1"].Resources.Money)
}

func TestTradeAgreement(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()

	refused, err := e.Apply(g, diplo(ActionTradeAgreement))
	require.NoError(t, err)
	assert.Same(t, g, refused)

	g.Relation("c_1", "c_0").Opinion = 30
	next, err := e.Apply(g, diplo(ActionTradeAgreement))
	require.NoError(t, err)
	assert.True(t, next.Relation("c_0", "c_1").IsTradePartner)
	assert.True(t, next.Relation("c_1", "c_0").IsTradePartner)
	assert.Equal(t, 35, next.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, 5, next.Relation("c_0", "c_1").Opinion)
	assert.Equal(t, MessageEconomy, next.Messages[0].Category)
}

func TestAllianceOffer(t *testing.T) {
	e := newTestEngine()

	g := createTestGameState()
	g.Relation("c_1", "c_0").Opinion = 80
	accepted, err := e.Apply(g, diplo(ActionAllianceOffer))
	require.NoError(t, err)
	assert.Equal(t, RelationAlliance, accepted.Relation("c_0", "c_1").Status)
	assert.Equal(t, RelationAlliance, accepted.Relation("c_1", "c_0").Status)
	assert.Equal(t, "Alliance Formed", accepted.Messages[0].Title)

	g = createTestGameState()
	g.Relation("c_1", "c_0").Opinion = 10
	rejected, err := e.Apply(g, diplo(ActionAllianceOffer))
	require.NoError(t, err)
	assert.Equal(t, 5, rejected.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, RelationNeutral, rejected.Relation("c_0", "c_1").Status)
	assert.Equal(t, "Alliance Rejected", rejected.Messages[0].Title)
}

func TestDeclareWar(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()
	g.Relation("c_0", "c_1").IsTradePartner = true
	g.Relation("c_1", "c_0").IsTradePartner = true

	next, err := e.Apply(g, diplo(ActionDeclareWar))
	require.NoError(t, err)
	for _, r := range []*Relation{next.Relation("c_0", "c_1"), next.Relation("c_1", "c_0")} {
		assert.Equal(t, RelationWar, r.Status)
		assert.Equal(t, -50, r.Opinion)
		assert.False(t, r.IsTradePartner)
	}
	assert.Equal(t, MessageWar, next.Messages[0].Category)

	again, err := e.Apply(next, diplo(ActionDeclareWar))
	require.NoError(t, err)
	assert.Same(t, next, again)

	// War locks the status while opinion keeps moving.
	improved, err := e.Apply(next, diplo(ActionImproveRelations))
	require.NoError(t, err)
	assert.Equal(t, RelationWar, improved.Relation("c_1", "c_0").Status)
	assert.Equal(t, -40, improved.Relation("c_1", "c_0").Opinion)

	noTrade, err := e.Apply(next, diplo(ActionTradeAgreement))
	require.NoError(t, err)
	assert.Same(t, next, noTrade)
}

func TestCeasefireBlocksWar(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()
	g.Relation("c_0", "c_1").CeasefireTurns = 1

	blocked, err := e.Apply(g, diplo(ActionDeclareWar))
	require.NoError(t, err)
	assert.Same(t, g, blocked)

	later, err := e.Apply(g, AdvanceTurn{})
	require.NoError(t, err)
	assert.Zero(t, later.Relation("c_0", "c_1").CeasefireTurns)

	war, err := e.Apply(later, diplo(ActionDeclareWar))
	require.NoError(t, err)
	assert.Equal(t, RelationWar, war.Relation("c_0", "c_1").Status)
}

func TestDemandTribute(t *testing.T) {
	e := newTestEngine()

	g := createTestGameState()
	g.Nations["c_1"].Units = map[catalog.UnitID]int{}
	paid, err := e.Apply(g, diplo(ActionDemandTribute))
	require.NoError(t, err)
	assert.Equal(t, 90000.0, paid.Nations["c_1"].Resources.Money)
	assert.Equal(t, 110000.0, paid.Nations["c_0"].Resources.Money)
	assert.Equal(t, -20, paid.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, "Tribute Paid", paid.Messages[0].Title)

	g = createTestGameState()
	refused, err := e.Apply(g, diplo(ActionDemandTribute))
	require.NoError(t, err)
	assert.Equal(t, 100000.0, refused.Nations["c_1"].Resources.Money)
	assert.Equal(t, -20, refused.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, "Tribute Refused", refused.Messages[0].Title)
}

func TestMilitaryStrengthCountsArmies(t *testing.T) {
	g := createTestGameState()
	addArmy(g, "c_0", "army_a", "0,0", GeneralStats{}, map[catalog.UnitID]int{catalog.UnitTank: 1})

	// 50 soldiers and 11 tanks
	assert.Equal(t, 910.0, MilitaryStrength(catalog.Default(), g, "c_0"))
	assert.Zero(t, MilitaryStrength(catalog.Default(), g, "c_missing"))
}

func TestDiplomacyErrors(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()

	_, err := e.Apply(g, DiplomacyAction{SourceID: "c_0", TargetID: "c_5", Action: ActionSendAid})
	assert.ErrorIs(t, err, ErrUnknownNation)

	_, err = e.Apply(g, diplo("annex"))
	assert.ErrorIs(t, err, ErrUnknownAction)

	self, err := e.Apply(g, DiplomacyAction{SourceID: "c_0", TargetID: "c_0", Action: ActionSendAid})
	require.NoError(t, err)
	assert.Same(t, g, self)
}

func TestAIOnlyDiplomacyPostsNothing(t *testing.T) {
	e := newTestEngine()
	g := createTestGameState()
	g.PlayerNationID = "c_9"
	g.Nations["c_0"].IsPlayer = false

	next, err := e.Apply(g, diplo(ActionImproveRelations))
	require.NoError(t, err)
	assert.Empty(t, next.Messages)
}

func spy(mission SpyMission) SendSpy {
	return SendSpy{SourceID: "c_0", TargetID: "c_1", Mission: mission}
}

func TestSpyMissions(t *testing.T) {
	tests := []struct {
		name   string
		cmd    SendSpy
		cost   float64
		setup  func(g *GameState)
		verify func(t *testing.T, next *GameState)
	}{
		{
			name: "gather intel",
			cmd:  spy(MissionGatherIntel),
			cost: 2000,
			verify: func(t *testing.T, next *GameState) {
				assert.Equal(t, 40, next.Nations["c_0"].Intelligence["c_1"])
			},
		},
		{
			name:  "sabotage industry",
			cmd:   spy(MissionSabotageIndustry),
			cost:  5000,
			setup: func(g *GameState) { g.Nations["c_1"].Buildings[catalog.BuildingFactory] = 2 },
			verify: func(t *testing.T, next *GameState) {
				assert.Equal(t, 1, next.Nations["c_1"].Buildings[catalog.BuildingFactory])
				assert.Equal(t, 15, next.Nations["c_0"].Intelligence["c_1"])
			},
		},
		{
			name: "steal tech",
			cmd:  spy(MissionStealTech),
			cost: 8000,
			setup: func(g *GameState) {
				g.Nations["c_1"].ResearchedTechs = []catalog.TechID{"basic_eco", "adv_farming"}
				g.Nations["c_0"].ResearchedTechs = []catalog.TechID{"adv_farming"}
				g.Nations["c_0"].CurrentResearch = "basic_eco"
				g.Nations["c_0"].ResearchProgress = 120
			},
			verify: func(t *testing.T, next *GameState) {
				n := next.Nations["c_0"]
				assert.True(t, n.HasTech("basic_eco"))
				assert.Empty(t, n.CurrentResearch)
				assert.Zero(t, n.ResearchProgress)
			},
		},
		{
			name: "incite unrest",
			cmd:  spy(MissionInciteUnrest),
			cost: 4000,
			verify: func(t *testing.T, next *GameState) {
				assert.InDelta(t, 4_900_000.0, next.Nations["c_1"].Resources.Population, 1e-6)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := createTestGameState()
			if tt.setup != nil {
				tt.setup(g)
			}
			next, err := newTestEngine(0.0).Apply(g, tt.cmd)
			require.NoError(t, err)

			assert.Equal(t, 100000.0-tt.cost, next.Nations["c_0"].Resources.Money)
			require.Len(t, next.Messages, 1)
			assert.Equal(t, "Mission Succeeded", next.Messages[0].Title)
			assert.Equal(t, MessageSpy, next.Messages[0].Category)
			tt.verify(t, next)
		})
	}
}

func TestSpyCaught(t *testing.T) {
	g := createTestGameState()

	// Success needs a draw below 0.45 at intel 10.
	next, err := newTestEngine(0.5).Apply(g, spy(MissionGatherIntel))
	require.NoError(t, err)
	assert.Equal(t, 98000.0, next.Nations["c_0"].Resources.Money)
	assert.Equal(t, 10, next.Nations["c_0"].Intelligence["c_1"])
	assert.Equal(t, -15, next.Relation("c_1", "c_0").Opinion)
	assert.Equal(t, "Mission Failed", next.Messages[0].Title)
}

func TestPlayerCatchesSpy(t *testing.T) {
	g := createTestGameState()

	next, err := newTestEngine(0.99).Apply(g, SendSpy{SourceID: "c_1", TargetID: "c_0", Mission: MissionStealTech})
	require.NoError(t, err)
	require.Len(t, next.Messages, 1)
	assert.Equal(t, "Spy Captured", next.Messages[0].Title)
	assert.Equal(t, -15, next.Relation("c_0", "c_1").Opinion)
}

func TestSpyPreconditions(t *testing.T) {
	e := newTestEngine(0.0)
	g := createTestGameState()

	_, err := e.Apply(g, spy("assassinate"))
	assert.ErrorIs(t, err, ErrUnknownAction)

	g.Nations["c_0"].Resources.Money = 100
	broke, err := e.Apply(g, spy(MissionGatherIntel))
	require.NoError(t, err)
	assert.Same(t, g, broke)
}

func TestIntelCapsAtMaximum(t *testing.T) {
	g := createTestGameState()
	g.Nations["c_0"].Intelligence["c_1"] = 80

	next, err := newTestEngine(0.0).Apply(g, spy(MissionGatherIntel))
	require.NoError(t, err)
	assert.Equal(t, 100, next.Nations["c_0"].Intelligence["c_1"])
}
