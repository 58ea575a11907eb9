package game

import (
	"errors"
	"fmt"
	"math"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
)

// DefaultStartYear is the calendar year of turn 1.
const DefaultStartYear = 2027

const (
	capitalDefenseBonus = 50
	capitalRadius       = 2
	initialIntel        = 10
)

// NationSeed describes a nation before the game starts.
type NationSeed struct {
	Name       string
	Flag       string
	Population float64 // Thousands of people
}

// DefaultNations are the ten playable nations in start-position order.
var DefaultNations = []NationSeed{
	{Name: "United States", Flag: "🇺🇸", Population: 330000},
	{Name: "China", Flag: "🇨🇳", Population: 1400000},
	{Name: "Russia", Flag: "🇷🇺", Population: 144000},
	{Name: "Germany", Flag: "🇩🇪", Population: 83000},
	{Name: "United Kingdom", Flag: "🇬🇧", Population: 67000},
	{Name: "France", Flag: "🇫🇷", Population: 65000},
	{Name: "Japan", Flag: "🇯🇵", Population: 126000},
	{Name: "India", Flag: "🇮🇳", Population: 1380000},
	{Name: "Brazil", Flag: "🇧🇷", Population: 212000},
	{Name: "Italy", Flag: "🇮🇹", Population: 60000},
}

// StartPositions are the capital coordinates, one per nation slot.
var StartPositions = []HexCoord{
	NewHex(0, 0),
	NewHex(5, -5), NewHex(-5, 5), NewHex(5, 0), NewHex(-5, 0),
	NewHex(0, 5), NewHex(0, -5), NewHex(3, 3), NewHex(-3, -3), NewHex(3, -3),
}

// Settings control game setup.
type Settings struct {
	PlayerIndex int
	StartYear   int          // Defaults to DefaultStartYear
	Nations     []NationSeed // Defaults to DefaultNations
}

var initialBuildings = map[catalog.BuildingID]int{
	catalog.BuildingFarm:       5,
	catalog.BuildingFactory:    2,
	catalog.BuildingOilWell:    1,
	catalog.BuildingPowerPlant: 1,
	catalog.BuildingBarracks:   1,
}

var initialUnits = map[catalog.UnitID]int{
	catalog.UnitSoldier:   50,
	catalog.UnitTank:      10,
	catalog.UnitArtillery: 5,
}

// InitializeGame places nations on a generated map and returns turn 1. The
// tiles are owned by the returned state afterwards.
func InitializeGame(cat *catalog.Catalog, tiles map[string]*Tile, settings Settings, rng entropy.Source) (*GameState, error) {
	seeds := settings.Nations
	if seeds == nil {
		seeds = DefaultNations
	}
	if len(seeds) > len(StartPositions) {
		seeds = seeds[:len(StartPositions)]
	}
	if len(seeds) == 0 {
		return nil, errors.New("need at least 1 nation")
	}
	if settings.PlayerIndex < 0 || settings.PlayerIndex >= len(seeds) {
		return nil, fmt.Errorf("player index %d out of range [0, %d)", settings.PlayerIndex, len(seeds))
	}
	year := settings.StartYear
	if year == 0 {
		year = DefaultStartYear
	}

	state := &GameState{
		Turn:           1,
		Year:           year,
		Month:          1,
		PlayerNationID: nationID(settings.PlayerIndex),
		Nations:        make(map[string]*Nation, len(seeds)),
		Map:            tiles,
		Armies:         make(map[string]*Army),
		Generals:       make(map[string]*General),
		Relations:      make(map[string]map[string]*Relation, len(seeds)),
	}

	tileIDs := sortedTileIDs(tiles)
	for i, seed := range seeds {
		id := nationID(i)
		pos := StartPositions[i]

		if capital := tiles[pos.ID()]; capital != nil {
			capital.OwnerID = id
			capital.Biome = catalog.BiomeCity
			capital.Name = seed.Name + " Capital"
			capital.DefenseBonus = capitalDefenseBonus
		}
		for _, tid := range tileIDs {
			t := tiles[tid]
			if t.OwnerID == "" && Distance(t.Coords, pos) <= capitalRadius {
				t.OwnerID = id
			}
		}

		n := newNation(cat, id, i, seed)
		n.IsPlayer = i == settings.PlayerIndex
		if !n.IsPlayer {
			n.AIPersonality = AIEconomist
			if rng.Float64() > 0.5 {
				n.AIPersonality = AIAggressive
			}
		}
		state.Nations[id] = n
	}

	for _, src := range state.NationIDs() {
		state.Relations[src] = make(map[string]*Relation, len(seeds)-1)
		for _, dst := range state.NationIDs() {
			if src == dst {
				continue
			}
			state.Relations[src][dst] = &Relation{TargetID: dst, Status: RelationNeutral}
			state.Nations[src].Intelligence[dst] = initialIntel
		}
	}

	state.Messages = []Message{{
		ID:       "msg_0",
		Turn:     1,
		Title:    "Global Conflict Imminent",
		Body:     fmt.Sprintf("The year is %d. Resources are scarce. Command your armies to secure territories on the map.", year),
		Category: MessageInfo,
	}}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	return state, nil
}

func newNation(cat *catalog.Catalog, id string, index int, seed NationSeed) *Nation {
	scale := math.Max(0.1, seed.Population/1_000_000)

	n := &Nation{
		ID:    id,
		Name:  seed.Name,
		Flag:  seed.Flag,
		Color: fmt.Sprintf("hsl(%d, 70%%, 40%%)", index*36),
		Resources: Resources{
			Money:      math.Floor(10000 * scale),
			Food:       math.Floor(5000 * scale),
			Oil:        math.Floor(1000 * scale),
			Energy:     math.Floor(2000 * scale),
			Population: seed.Population * 1000,
		},
		Buildings:       make(map[catalog.BuildingID]int),
		Units:           make(map[catalog.UnitID]int),
		Armies:          []string{},
		Generals:        []string{},
		ResearchedTechs: []catalog.TechID{},
		Intelligence:    make(map[string]int),
	}
	for _, b := range cat.BuildingIDs() {
		n.Buildings[b] = initialBuildings[b]
	}
	for _, u := range cat.UnitIDs() {
		n.Units[u] = initialUnits[u]
	}
	return n
}

func nationID(index int) string {
	return fmt.Sprintf("c_%d", index)
}
