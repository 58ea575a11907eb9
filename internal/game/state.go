// Package game contains the turn-resolution core for Global Conflict: the
// world state, its invariants, and the engine that applies commands to it.
package game

import (
	"fmt"
	"sort"

	"global-conflict/internal/catalog"
)

// GameState is one immutable-by-convention snapshot of the world. The engine
// never mutates a snapshot it has returned; every successful command yields a
// fresh Clone.
type GameState struct {
	Turn           int                             `json:"turn"`
	Year           int                             `json:"year"`
	Month          int                             `json:"month"`
	PlayerNationID string                          `json:"playerCountryId"`
	Nations        map[string]*Nation              `json:"countries"`
	Map            map[string]*Tile                `json:"map"`
	Armies         map[string]*Army                `json:"armies"`
	Generals       map[string]*General             `json:"generals"`
	Relations      map[string]map[string]*Relation `json:"relations"`
	Messages       []Message                       `json:"messages"`

	// Presentation state. Never read by any rule.
	ModalOpen        bool          `json:"modalOpen"`
	ModalContent     ModalContent  `json:"modalContent,omitempty"`
	SelectedTileID   string        `json:"selectedTileId,omitempty"`
	SelectedArmyID   string        `json:"selectedArmyId,omitempty"`
	SelectedNationID string        `json:"selectedCountryId,omitempty"`
	LastBattle       *BattleResult `json:"currentBattleResult,omitempty"`
}

// ModalContent names the dialog the presentation layer should show.
type ModalContent string

const (
	ModalNone         ModalContent = ""
	ModalBattleResult ModalContent = "battle_result"
	ModalEvent        ModalContent = "event"
	ModalArmyManager  ModalContent = "army_manager"
)

// Tile is one hex of the world map.
type Tile struct {
	ID            string          `json:"id"`
	Coords        HexCoord        `json:"coords"`
	Biome         catalog.BiomeID `json:"biome"`
	OwnerID       string          `json:"ownerId,omitempty"` // Empty when unclaimed
	Name          string          `json:"name"`
	ResourceBonus Resources       `json:"resourceBonus"`
	DefenseBonus  float64         `json:"defenseBonus"` // Percentage
	MovementCost  int             `json:"movementCost"`
}

// AIPersonality tags a computer-controlled nation. No policy reads it yet.
type AIPersonality string

const (
	AIAggressive AIPersonality = "aggressive"
	AIEconomist  AIPersonality = "economist"
	AIDiplomat   AIPersonality = "diplomat"
)

// Nation is a playable country.
type Nation struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Flag          string        `json:"flagEmoji"`
	Color         string        `json:"color"`
	IsPlayer      bool          `json:"isPlayer"`
	AIPersonality AIPersonality `json:"aiPersonality,omitempty"`

	Resources Resources `json:"resources"`

	Buildings map[catalog.BuildingID]int `json:"buildings"`
	Units     map[catalog.UnitID]int     `json:"units"` // Reserves not assigned to an army
	Armies    []string                   `json:"armies"`
	Generals  []string                   `json:"generals"`

	ResearchedTechs  []catalog.TechID `json:"researchedTechs"`
	CurrentResearch  catalog.TechID   `json:"currentResearch,omitempty"`
	ResearchProgress float64          `json:"researchProgress"`

	// Intelligence maps every other nation id to a level in 0..100.
	Intelligence map[string]int `json:"intelligence"`
}

// HasTech reports whether the nation has researched a tech.
func (n *Nation) HasTech(id catalog.TechID) bool {
	for _, t := range n.ResearchedTechs {
		if t == id {
			return true
		}
	}
	return false
}

// GeneralStatus is the lifecycle state of a general.
type GeneralStatus string

const (
	GeneralAvailable GeneralStatus = "available"
	GeneralAssigned  GeneralStatus = "assigned"
	GeneralInjured   GeneralStatus = "injured"
	GeneralDead      GeneralStatus = "dead"
)

// GeneralStats are the three leadership stats, each 1..5 at recruitment.
type GeneralStats struct {
	Strategy  int `json:"strategy"`  // Boosts defense
	Bravery   int `json:"bravery"`   // Boosts attack
	Logistics int `json:"logistics"` // Boosts movement
}

// General commands at most one army.
type General struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Portrait string        `json:"portrait"`
	Level    int           `json:"level"`
	XP       int           `json:"xp"`
	Stats    GeneralStats  `json:"stats"`
	Traits   []string      `json:"traits"`
	Status   GeneralStatus `json:"status"`
}

// Army is a deployed force standing on a tile.
type Army struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	OwnerID        string                 `json:"ownerId"`
	GeneralID      string                 `json:"generalId"`
	Location       string                 `json:"location"` // Tile id
	Units          map[catalog.UnitID]int `json:"units"`
	MovementPoints int                    `json:"movementPoints"`
	MaxMovement    int                    `json:"maxMovement"`
}

// TotalUnits returns the number of units across all types.
func (a *Army) TotalUnits() int {
	total := 0
	for _, c := range a.Units {
		total += c
	}
	return total
}

// RelationStatus is the diplomatic stance of one nation toward another.
type RelationStatus string

const (
	RelationWar      RelationStatus = "war"
	RelationHostile  RelationStatus = "hostile"
	RelationNeutral  RelationStatus = "neutral"
	RelationFriendly RelationStatus = "friendly"
	RelationAlliance RelationStatus = "alliance"
)

// Relation is one directed diplomatic record, source toward TargetID.
type Relation struct {
	TargetID       string         `json:"targetCountryId"`
	Status         RelationStatus `json:"status"`
	Opinion        int            `json:"opinion"` // -100..100
	CeasefireTurns int            `json:"ceasefireTurns,omitempty"`
	IsTradePartner bool           `json:"isTradePartner"`
}

// MessageCategory classifies a feed entry.
type MessageCategory string

const (
	MessageInfo    MessageCategory = "info"
	MessageWar     MessageCategory = "war"
	MessageEconomy MessageCategory = "economy"
	MessageAlert   MessageCategory = "alert"
	MessageSpy     MessageCategory = "spy"
)

// Message is an entry in the player's news feed.
type Message struct {
	ID       string          `json:"id"`
	Turn     int             `json:"turn"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Category MessageCategory `json:"type"`
	Read     bool            `json:"read"`
}

// BattleResult is the outcome of one battle. Losses are keyed by unit type.
type BattleResult struct {
	WinnerID       string                 `json:"winnerId"`
	LoserID        string                 `json:"loserId"`
	AttackerLosses map[catalog.UnitID]int `json:"attackerLosses"`
	DefenderLosses map[catalog.UnitID]int `json:"defenderLosses"`
	Location       string                 `json:"location"`
	AttackerPower  float64                `json:"attackerPower"`
	DefenderPower  float64                `json:"defenderPower"`
	Details        []string               `json:"details"`
}

// Nation returns the nation with the given id, or nil.
func (g *GameState) Nation(id string) *Nation {
	return g.Nations[id]
}

// PlayerNation returns the human player's nation.
func (g *GameState) PlayerNation() *Nation {
	return g.Nations[g.PlayerNationID]
}

// Tile returns the tile with the given id, or nil.
func (g *GameState) Tile(id string) *Tile {
	return g.Map[id]
}

// Army returns the army with the given id, or nil.
func (g *GameState) Army(id string) *Army {
	return g.Armies[id]
}

// General returns the general with the given id, or nil.
func (g *GameState) General(id string) *General {
	return g.Generals[id]
}

// Relation returns the directed relation from source to target, or nil.
func (g *GameState) Relation(source, target string) *Relation {
	return g.Relations[source][target]
}

// ArmiesAt returns the armies standing on a tile, sorted by id.
func (g *GameState) ArmiesAt(tileID string) []*Army {
	var out []*Army
	for _, a := range g.Armies {
		if a.Location == tileID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OwnedTiles returns the tiles owned by a nation, sorted by id.
func (g *GameState) OwnedTiles(nationID string) []*Tile {
	var out []*Tile
	for _, t := range g.Map {
		if t.OwnerID == nationID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NationIDs returns all nation ids, sorted.
func (g *GameState) NationIDs() []string {
	ids := make([]string, 0, len(g.Nations))
	for id := range g.Nations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy that shares no mutable memory with g.
func (g *GameState) Clone() *GameState {
	c := *g

	c.Nations = make(map[string]*Nation, len(g.Nations))
	for id, n := range g.Nations {
		c.Nations[id] = n.clone()
	}

	c.Map = make(map[string]*Tile, len(g.Map))
	for id, t := range g.Map {
		tc := *t
		c.Map[id] = &tc
	}

	c.Armies = make(map[string]*Army, len(g.Armies))
	for id, a := range g.Armies {
		ac := *a
		ac.Units = copyCounts(a.Units)
		c.Armies[id] = &ac
	}

	c.Generals = make(map[string]*General, len(g.Generals))
	for id, gen := range g.Generals {
		gc := *gen
		gc.Traits = append([]string(nil), gen.Traits...)
		c.Generals[id] = &gc
	}

	c.Relations = make(map[string]map[string]*Relation, len(g.Relations))
	for src, row := range g.Relations {
		cr := make(map[string]*Relation, len(row))
		for dst, r := range row {
			rc := *r
			cr[dst] = &rc
		}
		c.Relations[src] = cr
	}

	c.Messages = append([]Message(nil), g.Messages...)

	if g.LastBattle != nil {
		b := *g.LastBattle
		b.AttackerLosses = copyCounts(g.LastBattle.AttackerLosses)
		b.DefenderLosses = copyCounts(g.LastBattle.DefenderLosses)
		b.Details = append([]string(nil), g.LastBattle.Details...)
		c.LastBattle = &b
	}

	return &c
}

// shallowClone copies only the top-level struct. Used by commands that touch
// presentation fields alone.
func (g *GameState) shallowClone() *GameState {
	c := *g
	return &c
}

func (n *Nation) clone() *Nation {
	c := *n
	c.Buildings = make(map[catalog.BuildingID]int, len(n.Buildings))
	for k, v := range n.Buildings {
		c.Buildings[k] = v
	}
	c.Units = copyCounts(n.Units)
	c.Armies = append([]string(nil), n.Armies...)
	c.Generals = append([]string(nil), n.Generals...)
	c.ResearchedTechs = append([]catalog.TechID(nil), n.ResearchedTechs...)
	c.Intelligence = make(map[string]int, len(n.Intelligence))
	for k, v := range n.Intelligence {
		c.Intelligence[k] = v
	}
	return &c
}

func copyCounts(m map[catalog.UnitID]int) map[catalog.UnitID]int {
	if m == nil {
		return nil
	}
	c := make(map[catalog.UnitID]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Validate checks the structural invariants of the world: hex coordinates,
// referential integrity between nations, tiles, armies and generals, and
// non-negative unit counts.
func (g *GameState) Validate() error {
	for id, t := range g.Map {
		if !t.Coords.IsValid() {
			return fmt.Errorf("tile %s: coordinates violate q+r+s=0", id)
		}
		if t.ID != id || t.Coords.ID() != id {
			return fmt.Errorf("tile %s: id does not match coordinates", id)
		}
		if t.OwnerID != "" && g.Nations[t.OwnerID] == nil {
			return fmt.Errorf("tile %s: owner %s: %w", id, t.OwnerID, ErrUnknownNation)
		}
	}

	for id, n := range g.Nations {
		for _, aid := range n.Armies {
			a := g.Armies[aid]
			if a == nil {
				return fmt.Errorf("nation %s: army %s: %w", id, aid, ErrUnknownArmy)
			}
			if a.OwnerID != id {
				return fmt.Errorf("nation %s: army %s is owned by %s", id, aid, a.OwnerID)
			}
		}
		for _, gid := range n.Generals {
			if g.Generals[gid] == nil {
				return fmt.Errorf("nation %s: general %s: %w", id, gid, ErrUnknownGeneral)
			}
		}
		for u, c := range n.Units {
			if c < 0 {
				return fmt.Errorf("nation %s: negative reserve of %s", id, u)
			}
		}
	}

	for id, a := range g.Armies {
		if g.Nations[a.OwnerID] == nil {
			return fmt.Errorf("army %s: owner %s: %w", id, a.OwnerID, ErrUnknownNation)
		}
		if g.Map[a.Location] == nil {
			return fmt.Errorf("army %s: location %s: %w", id, a.Location, ErrUnknownTile)
		}
		gen := g.Generals[a.GeneralID]
		if gen == nil {
			return fmt.Errorf("army %s: general %s: %w", id, a.GeneralID, ErrUnknownGeneral)
		}
		if gen.Status != GeneralAssigned {
			return fmt.Errorf("army %s: general %s is %s, want assigned", id, a.GeneralID, gen.Status)
		}
		for u, c := range a.Units {
			if c < 0 {
				return fmt.Errorf("army %s: negative count of %s", id, u)
			}
		}
	}

	for src, row := range g.Relations {
		if g.Nations[src] == nil {
			return fmt.Errorf("relations: source %s: %w", src, ErrUnknownNation)
		}
		for dst, r := range row {
			if g.Nations[dst] == nil || r.TargetID != dst {
				return fmt.Errorf("relations %s->%s: %w", src, dst, ErrUnknownNation)
			}
			if r.Opinion < minOpinion || r.Opinion > maxOpinion {
				return fmt.Errorf("relations %s->%s: opinion %d out of range", src, dst, r.Opinion)
			}
		}
	}

	return nil
}

func sortedTileIDs(tiles map[string]*Tile) []string {
	ids := make([]string, 0, len(tiles))
	for id := range tiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
