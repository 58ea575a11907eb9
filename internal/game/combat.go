package game

import (
	"fmt"
	"math"
	"strings"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
)

const (
	attackerMargin      = 1.1
	militiaDefense      = 50
	defenseBonusWeight  = 10
	generalStatBonus    = 0.05
	lossScale           = 0.3
	minLossRatio        = 0.05
	maxAttackLossRatio  = 0.5
	maxDefenseLossRatio = 1.0
)

// Outcome reports whether an attack succeeds. The attacker needs a strict
// ten percent edge; anything less goes to the defender.
func Outcome(attackPower, defensePower float64) bool {
	return attackPower > defensePower*attackerMargin
}

// AttackPower returns the offensive strength of an army on a biome.
func AttackPower(cat *catalog.Catalog, a *Army, biome catalog.BiomeID, gen *General) float64 {
	power := 0.0
	for _, id := range cat.UnitIDs() {
		count := a.Units[id]
		if count <= 0 {
			continue
		}
		def, _ := cat.Unit(id)
		p := def.Attack * float64(count) * def.TerrainMultiplier(biome)
		if gen != nil {
			p *= 1 + float64(gen.Stats.Bravery)*generalStatBonus
		}
		power += p
	}
	return power
}

// DefensePower returns the defensive strength of a tile. A nil army means
// the tile is held by local militia.
func DefensePower(cat *catalog.Catalog, a *Army, tile *Tile, gen *General) float64 {
	power := tile.DefenseBonus * defenseBonusWeight
	if a == nil {
		return power + militiaDefense
	}
	for _, id := range cat.UnitIDs() {
		count := a.Units[id]
		if count <= 0 {
			continue
		}
		def, _ := cat.Unit(id)
		p := def.Defense * float64(count) * def.TerrainMultiplier(tile.Biome)
		if gen != nil {
			p *= 1 + float64(gen.Stats.Strategy)*generalStatBonus
		}
		power += p
	}
	return power
}

// ResolveBattle fights one battle on tile and subtracts losses from both
// armies in place. defender may be nil. Side effects on the wider world
// (army removal, ownership, generals) are left to the caller.
func ResolveBattle(cat *catalog.Catalog, rng entropy.Source, attacker, defender *Army, tile *Tile, g *GameState) *BattleResult {
	attNation := g.Nations[attacker.OwnerID]
	defNationID := tile.OwnerID
	if defender != nil {
		defNationID = defender.OwnerID
	}
	defNation := g.Nations[defNationID]

	attName := attacker.OwnerID
	if attNation != nil {
		attName = attNation.Name
	}
	defName := "Rebels"
	if defNation != nil {
		defName = defNation.Name
	}
	garrison := "Garrison"
	if defender != nil {
		garrison = defender.Name
	}

	result := &BattleResult{
		AttackerLosses: make(map[catalog.UnitID]int),
		DefenderLosses: make(map[catalog.UnitID]int),
		Location:       tile.ID,
	}
	result.Details = append(result.Details,
		fmt.Sprintf("Battle at %s (%s)", tile.Name, tile.Biome),
		fmt.Sprintf("Attacker: %s (%s)", attacker.Name, attName),
		fmt.Sprintf("Defender: %s (%s)", garrison, defName),
	)

	var defGen *General
	if defender != nil {
		defGen = g.Generals[defender.GeneralID]
	}
	att := AttackPower(cat, attacker, tile.Biome, g.Generals[attacker.GeneralID])
	def := DefensePower(cat, defender, tile, defGen)
	result.AttackerPower = att
	result.DefenderPower = def
	result.Details = append(result.Details,
		fmt.Sprintf("Attacker Power: %d | Defender Power: %d", int(math.Floor(att)), int(math.Floor(def))))

	attRatio := clamp(def/(att+1)*lossScale, minLossRatio, maxAttackLossRatio)
	defRatio := clamp(att/(def+1)*lossScale, minLossRatio, maxDefenseLossRatio)

	applyLosses(cat, rng, attacker, attRatio, result.AttackerLosses)
	if defender != nil {
		applyLosses(cat, rng, defender, defRatio, result.DefenderLosses)
	}
	result.Details = append(result.Details,
		"Attacker losses: "+formatLosses(cat, result.AttackerLosses),
		"Defender losses: "+formatLosses(cat, result.DefenderLosses),
	)

	if Outcome(att, def) {
		result.WinnerID = attacker.OwnerID
		result.LoserID = defNationID
		result.Details = append(result.Details, fmt.Sprintf("%s is victorious!", attName))
	} else {
		result.WinnerID = defNationID
		result.LoserID = attacker.OwnerID
		result.Details = append(result.Details, fmt.Sprintf("%s was repelled.", attName))
	}

	return result
}

// applyLosses removes ceil(count * ratio * u) of each unit type, drawing one
// u per type in catalog order.
func applyLosses(cat *catalog.Catalog, rng entropy.Source, a *Army, ratio float64, losses map[catalog.UnitID]int) {
	for _, id := range cat.UnitIDs() {
		count := a.Units[id]
		if count <= 0 {
			continue
		}
		loss := int(math.Ceil(float64(count) * ratio * rng.Float64()))
		loss = min(loss, count)
		a.Units[id] = count - loss
		losses[id] = loss
	}
}

func formatLosses(cat *catalog.Catalog, losses map[catalog.UnitID]int) string {
	var parts []string
	for _, id := range cat.UnitIDs() {
		if n := losses[id]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, id))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
