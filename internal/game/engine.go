package game

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
	"global-conflict/internal/pkg/idgen"
)

const (
	generalCost       = 5000
	generalStatDie    = 5
	baseArmyMovement  = 2
	logisticsPerPoint = 5
)

var generalCallSigns = []string{"Wolf", "Hawk", "Viper", "Bear", "Fox", "Eagle", "Lion", "Tiger", "Shark", "Cobra"}

// Engine applies commands to game states. It is the only mutator of world
// state and holds no state of its own besides its dependencies; callers
// serialize calls to Apply.
type Engine struct {
	Catalog *catalog.Catalog
	Rand    entropy.Source
	Dice    dice.Roller
	IDs     idgen.Generator
	Logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog sets the static definitions.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.Catalog = c }
}

// WithRand sets the random source used for combat, names and espionage.
func WithRand(r entropy.Source) Option {
	return func(e *Engine) { e.Rand = r }
}

// WithDice sets the roller used for general stats.
func WithDice(d dice.Roller) Option {
	return func(e *Engine) { e.Dice = d }
}

// WithIDs sets the id generator for armies, generals and messages.
func WithIDs(g idgen.Generator) Option {
	return func(e *Engine) { e.IDs = g }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.Logger = l }
}

// NewEngine builds an engine. Unset dependencies default to the embedded
// catalog, a time-seeded source, UUID ids and a no-op logger. When no dice
// roller is given and the random source can roll dice, it is used for both.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.Catalog == nil {
		e.Catalog = catalog.Default()
	}
	if e.Rand == nil {
		e.Rand = entropy.NewSeeded(time.Now().UnixNano())
	}
	if e.Dice == nil {
		if r, ok := e.Rand.(dice.Roller); ok {
			e.Dice = r
		} else {
			e.Dice = dice.DefaultRoller
		}
	}
	if e.IDs == nil {
		e.IDs = idgen.NewUUID("")
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

// Apply applies one command to g and returns the resulting snapshot; g is
// never modified. When a precondition the player can fix is unmet the same
// snapshot is returned with a nil error. Commands that reference unknown
// entities or break reserve and general invariants return g and an error.
func (e *Engine) Apply(g *GameState, cmd Command) (*GameState, error) {
	if cmd == nil {
		return g, fmt.Errorf("nil command: %w", ErrUnknownCommand)
	}
	e.Logger.Debug("applying command",
		zap.String("type", string(cmd.Type())),
		zap.Int("turn", g.Turn))

	var (
		next *GameState
		err  error
	)
	switch c := cmd.(type) {
	case AdvanceTurn:
		next = e.advanceTurn(g)
	case BuildBuilding:
		next, err = e.buildBuilding(g, c)
	case RecruitUnit:
		next, err = e.recruitUnit(g, c)
	case RecruitGeneral:
		next, err = e.recruitGeneral(g, c)
	case CreateArmy:
		next, err = e.createArmy(g, c)
	case MoveArmy:
		next, err = e.moveArmy(g, c)
	case StartResearch:
		next, err = e.startResearch(g, c)
	case SelectTile:
		next, err = e.selectTile(g, c)
	case SelectArmy:
		next, err = e.selectArmy(g, c)
	case SelectNation:
		next, err = e.selectNation(g, c)
	case DismissMessage:
		next = e.dismissMessage(g, c)
	case OpenModal:
		next = g.shallowClone()
		next.ModalOpen = true
		next.ModalContent = c.Content
	case CloseModal:
		next = g.shallowClone()
		next.ModalOpen = false
	case DiplomacyAction:
		next, err = e.diplomacy(g, c)
	case SendSpy:
		next, err = e.sendSpy(g, c)
	default:
		err = fmt.Errorf("%s: %w", cmd.Type(), ErrUnknownCommand)
	}

	if err != nil {
		e.Logger.Warn("command failed",
			zap.String("type", string(cmd.Type())),
			zap.Error(err))
		return g, err
	}
	return next, nil
}

// reject logs a recoverable precondition failure and returns g unchanged.
func (e *Engine) reject(g *GameState, cmd Command, reason string) (*GameState, error) {
	e.Logger.Debug("command not applied",
		zap.String("type", string(cmd.Type())),
		zap.String("reason", reason))
	return g, nil
}

func (e *Engine) newID(prefix string) string {
	return prefix + "_" + e.IDs.Generate()
}

// postMessage appends a message for the current turn.
func (e *Engine) postMessage(g *GameState, title, body string, category MessageCategory) {
	g.Messages = append(g.Messages, Message{
		ID:       e.newID("msg"),
		Turn:     g.Turn,
		Title:    title,
		Body:     body,
		Category: category,
	})
}

func (e *Engine) advanceTurn(g *GameState) *GameState {
	next := g.Clone()
	next.Turn++
	next.Month++
	if next.Month > 12 {
		next.Month = 1
		next.Year++
	}

	for _, id := range next.NationIDs() {
		n := next.Nations[id]
		income := ComputeIncome(e.Catalog, n, next)
		n.Resources.Money += income.Money
		n.Resources.Food += income.Food
		n.Resources.Oil += income.Oil

		if n.CurrentResearch == "" {
			continue
		}
		n.ResearchProgress += income.ResearchPoints + float64(n.Buildings[catalog.BuildingLab]*labResearchPerTurn)
		tech, ok := e.Catalog.Tech(n.CurrentResearch)
		if !ok || n.ResearchProgress < tech.Cost {
			continue
		}
		n.ResearchedTechs = append(n.ResearchedTechs, tech.ID)
		n.CurrentResearch = ""
		n.ResearchProgress = 0
		e.Logger.Info("research completed",
			zap.String("nation", n.ID),
			zap.String("tech", string(tech.ID)))
		if n.IsPlayer {
			e.postMessage(next, "Tech Unlocked", "Researched "+tech.Name, MessageInfo)
		}
	}

	for _, a := range next.Armies {
		a.MovementPoints = a.MaxMovement
	}

	for _, row := range next.Relations {
		for _, r := range row {
			if r.CeasefireTurns > 0 {
				r.CeasefireTurns--
			}
		}
	}

	return next
}

func (e *Engine) buildBuilding(g *GameState, c BuildBuilding) (*GameState, error) {
	n := g.Nation(c.NationID)
	if n == nil {
		return g, fmt.Errorf("build %s: nation %q: %w", c.BuildingID, c.NationID, ErrUnknownNation)
	}
	def, ok := e.Catalog.Building(c.BuildingID)
	if !ok {
		return g, fmt.Errorf("build: building %q: %w", c.BuildingID, ErrUnknownDefinition)
	}
	if c.Amount <= 0 {
		return g, fmt.Errorf("build %s: %d: %w", c.BuildingID, c.Amount, ErrInvalidAmount)
	}
	cost := def.Cost * float64(c.Amount)
	if !n.Resources.CanAfford(cost) {
		return e.reject(g, c, "insufficient funds")
	}

	next := g.Clone()
	nn := next.Nations[n.ID]
	nn.Resources.Money -= cost
	if nn.Buildings == nil {
		nn.Buildings = make(map[catalog.BuildingID]int)
	}
	nn.Buildings[c.BuildingID] += c.Amount
	return next, nil
}

func (e *Engine) recruitUnit(g *GameState, c RecruitUnit) (*GameState, error) {
	n := g.Nation(c.NationID)
	if n == nil {
		return g, fmt.Errorf("recruit %s: nation %q: %w", c.UnitID, c.NationID, ErrUnknownNation)
	}
	def, ok := e.Catalog.Unit(c.UnitID)
	if !ok {
		return g, fmt.Errorf("recruit: unit %q: %w", c.UnitID, ErrUnknownDefinition)
	}
	if c.Amount <= 0 {
		return g, fmt.Errorf("recruit %s: %d: %w", c.UnitID, c.Amount, ErrInvalidAmount)
	}
	if def.TechRequired != "" && !n.HasTech(def.TechRequired) {
		return e.reject(g, c, "requires "+string(def.TechRequired))
	}
	cost := def.Cost * float64(c.Amount)
	if !n.Resources.CanAfford(cost) {
		return e.reject(g, c, "insufficient funds")
	}

	next := g.Clone()
	nn := next.Nations[n.ID]
	nn.Resources.Money -= cost
	if nn.Units == nil {
		nn.Units = make(map[catalog.UnitID]int)
	}
	nn.Units[c.UnitID] += c.Amount
	return next, nil
}

func (e *Engine) recruitGeneral(g *GameState, c RecruitGeneral) (*GameState, error) {
	n := g.Nation(c.NationID)
	if n == nil {
		return g, fmt.Errorf("recruit general: nation %q: %w", c.NationID, ErrUnknownNation)
	}
	if !n.Resources.CanAfford(generalCost) {
		return e.reject(g, c, "insufficient funds")
	}

	name := fmt.Sprintf("%s %d", generalCallSigns[e.Rand.Intn(len(generalCallSigns))], e.Rand.Intn(100))
	rolls, err := e.Dice.RollN(3, generalStatDie)
	if err != nil {
		return g, fmt.Errorf("recruit general: roll stats: %w", err)
	}

	next := g.Clone()
	nn := next.Nations[n.ID]
	nn.Resources.Money -= generalCost

	gen := &General{
		ID:       e.newID("gen"),
		Name:     name,
		Portrait: "🎖️",
		Level:    1,
		Stats: GeneralStats{
			Strategy:  rolls[0],
			Bravery:   rolls[1],
			Logistics: rolls[2],
		},
		Traits: []string{},
		Status: GeneralAvailable,
	}
	next.Generals[gen.ID] = gen
	nn.Generals = append(nn.Generals, gen.ID)
	return next, nil
}

func (e *Engine) createArmy(g *GameState, c CreateArmy) (*GameState, error) {
	n := g.Nation(c.NationID)
	if n == nil {
		return g, fmt.Errorf("create army: nation %q: %w", c.NationID, ErrUnknownNation)
	}

	units := make(map[catalog.UnitID]int, len(c.Units))
	for id, count := range c.Units {
		if _, ok := e.Catalog.Unit(id); !ok {
			return g, fmt.Errorf("create army: unit %q: %w", id, ErrUnknownDefinition)
		}
		if count < 0 {
			return g, fmt.Errorf("create army: %d %s: %w", count, id, ErrInvalidAmount)
		}
		if count > n.Units[id] {
			return g, fmt.Errorf("create army: %d %s requested, %d in reserve: %w", count, id, n.Units[id], ErrReserveExceeded)
		}
		if count > 0 {
			units[id] = count
		}
	}
	if len(units) == 0 {
		return g, fmt.Errorf("create army: %w", ErrEmptyArmy)
	}

	gen := g.General(c.GeneralID)
	if gen == nil {
		return g, fmt.Errorf("create army: general %q: %w", c.GeneralID, ErrUnknownGeneral)
	}
	if !contains(n.Generals, gen.ID) || gen.Status != GeneralAvailable {
		return g, fmt.Errorf("create army: general %q is %s: %w", gen.ID, gen.Status, ErrGeneralUnavailable)
	}
	if g.Tile(c.Location) == nil {
		return g, fmt.Errorf("create army: location %q: %w", c.Location, ErrUnknownTile)
	}

	next := g.Clone()
	nn := next.Nations[n.ID]
	for id, count := range units {
		nn.Units[id] -= count
	}

	movement := baseArmyMovement + gen.Stats.Logistics/logisticsPerPoint
	army := &Army{
		ID:             e.newID("army"),
		Name:           gen.Name + "'s Corps",
		OwnerID:        n.ID,
		GeneralID:      gen.ID,
		Location:       c.Location,
		Units:          units,
		MovementPoints: movement,
		MaxMovement:    movement,
	}
	next.Armies[army.ID] = army
	nn.Armies = append(nn.Armies, army.ID)
	next.Generals[gen.ID].Status = GeneralAssigned
	return next, nil
}

func (e *Engine) moveArmy(g *GameState, c MoveArmy) (*GameState, error) {
	army := g.Army(c.ArmyID)
	if army == nil {
		return g, fmt.Errorf("move: army %q: %w", c.ArmyID, ErrUnknownArmy)
	}
	from := g.Tile(army.Location)
	if from == nil {
		return g, fmt.Errorf("move %s: location %q: %w", army.ID, army.Location, ErrUnknownTile)
	}
	target := g.Tile(c.TargetTileID)
	if target == nil {
		return g, fmt.Errorf("move %s: target %q: %w", army.ID, c.TargetTileID, ErrUnknownTile)
	}

	if army.MovementPoints <= 0 {
		return e.reject(g, c, "no movement points")
	}
	if Distance(from.Coords, target.Coords) != 1 {
		return e.reject(g, c, "target is not adjacent")
	}
	hostile := target.OwnerID != "" && target.OwnerID != army.OwnerID
	if !hostile && army.MovementPoints < target.MovementCost {
		return e.reject(g, c, "insufficient movement points")
	}

	next := g.Clone()
	a := next.Armies[army.ID]
	t := next.Map[target.ID]

	if !hostile {
		a.Location = t.ID
		a.MovementPoints -= t.MovementCost
		if t.OwnerID == "" {
			t.OwnerID = a.OwnerID
		}
		return next, nil
	}

	var defender *Army
	for _, other := range next.ArmiesAt(t.ID) {
		if other.OwnerID != a.OwnerID {
			defender = other
			break
		}
	}
	result := ResolveBattle(e.Catalog, e.Rand, a, defender, t, next)
	e.applyBattle(next, a, defender, t, result)
	return next, nil
}

// applyBattle carries a resolved battle's consequences into the world.
func (e *Engine) applyBattle(g *GameState, attacker, defender *Army, tile *Tile, result *BattleResult) {
	if attacker.TotalUnits() == 0 {
		g.removeArmy(attacker.ID, GeneralDead)
	}
	if defender != nil && defender.TotalUnits() == 0 {
		g.removeArmy(defender.ID, GeneralDead)
	}

	if result.WinnerID == attacker.OwnerID {
		if defender != nil && g.Armies[defender.ID] != nil {
			g.removeArmy(defender.ID, GeneralInjured)
		}
		tile.OwnerID = attacker.OwnerID
		attacker.Location = tile.ID
	}
	attacker.MovementPoints = 0

	g.LastBattle = result
	g.ModalOpen = true
	g.ModalContent = ModalBattleResult

	e.Logger.Info("battle resolved",
		zap.String("tile", tile.ID),
		zap.String("winner", result.WinnerID),
		zap.String("loser", result.LoserID),
		zap.Float64("attackerPower", result.AttackerPower),
		zap.Float64("defenderPower", result.DefenderPower))

	if g.PlayerNationID == "" || (result.WinnerID != g.PlayerNationID && result.LoserID != g.PlayerNationID) {
		return
	}
	title := "Defeat at " + tile.Name
	if result.WinnerID == g.PlayerNationID {
		title = "Victory at " + tile.Name
	}
	e.postMessage(g, title, result.Details[len(result.Details)-1], MessageWar)
}

// removeArmy deletes an army, drops it from its owner's roster and moves its
// general to status.
func (g *GameState) removeArmy(id string, status GeneralStatus) {
	a := g.Armies[id]
	if a == nil {
		return
	}
	delete(g.Armies, id)
	if n := g.Nations[a.OwnerID]; n != nil {
		n.Armies = without(n.Armies, id)
	}
	if gen := g.Generals[a.GeneralID]; gen != nil {
		gen.Status = status
	}
}

func (e *Engine) startResearch(g *GameState, c StartResearch) (*GameState, error) {
	n := g.Nation(c.NationID)
	if n == nil {
		return g, fmt.Errorf("research: nation %q: %w", c.NationID, ErrUnknownNation)
	}
	if _, ok := e.Catalog.Tech(c.TechID); !ok {
		return g, fmt.Errorf("research: tech %q: %w", c.TechID, ErrUnknownDefinition)
	}
	if !TechAvailable(e.Catalog, n, c.TechID) {
		return e.reject(g, c, "tech not available")
	}

	next := g.Clone()
	nn := next.Nations[n.ID]
	nn.CurrentResearch = c.TechID
	nn.ResearchProgress = 0
	return next, nil
}

func (e *Engine) selectTile(g *GameState, c SelectTile) (*GameState, error) {
	if c.TileID != "" && g.Tile(c.TileID) == nil {
		return g, fmt.Errorf("select tile %q: %w", c.TileID, ErrUnknownTile)
	}
	next := g.shallowClone()
	next.SelectedTileID = c.TileID
	next.SelectedArmyID = ""
	return next, nil
}

func (e *Engine) selectArmy(g *GameState, c SelectArmy) (*GameState, error) {
	if c.ArmyID != "" && g.Army(c.ArmyID) == nil {
		return g, fmt.Errorf("select army %q: %w", c.ArmyID, ErrUnknownArmy)
	}
	next := g.shallowClone()
	next.SelectedArmyID = c.ArmyID
	return next, nil
}

func (e *Engine) selectNation(g *GameState, c SelectNation) (*GameState, error) {
	if c.NationID != "" && g.Nation(c.NationID) == nil {
		return g, fmt.Errorf("select nation %q: %w", c.NationID, ErrUnknownNation)
	}
	next := g.shallowClone()
	next.SelectedNationID = c.NationID
	return next, nil
}

func (e *Engine) dismissMessage(g *GameState, c DismissMessage) *GameState {
	next := g.shallowClone()
	next.Messages = make([]Message, 0, len(g.Messages))
	for _, m := range g.Messages {
		if m.ID != c.MessageID {
			next.Messages = append(next.Messages, m)
		}
	}
	return next
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
