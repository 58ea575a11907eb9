package game

import (
	"fmt"

	"go.uber.org/zap"

	"global-conflict/internal/catalog"
)

const (
	minOpinion = -100
	maxOpinion = 100

	improveRelationsCost  = 1000
	improveRelationsGain  = 10
	tradeOpinionRequired  = 25
	tradeOpinionGain      = 5
	allianceOpinionNeeded = 75
	allianceRejectPenalty = 5
	warOpinionPenalty     = 50
	aidAmount             = 5000
	aidOpinionGain        = 15
	tributeStrengthRatio  = 2
	tributeShare          = 0.10
	tributeOpinionPenalty = 20

	friendlyThreshold = 50
	hostileThreshold  = -50

	spyBaseChance        = 0.4
	spyIntelDivisor      = 200
	spyIntelGain         = 5
	gatherIntelGain      = 25
	maxIntel             = 100
	spyCaughtPenalty     = 15
	unrestPopulationLoss = 0.02
)

var spyMissionCost = map[SpyMission]float64{
	MissionGatherIntel:      2000,
	MissionSabotageIndustry: 5000,
	MissionStealTech:        8000,
	MissionInciteUnrest:     4000,
}

// ensureRelation returns the source->target record, creating a neutral one
// if the pair has never been initialized.
func (g *GameState) ensureRelation(source, target string) *Relation {
	row := g.Relations[source]
	if row == nil {
		row = make(map[string]*Relation)
		if g.Relations == nil {
			g.Relations = make(map[string]map[string]*Relation)
		}
		g.Relations[source] = row
	}
	r := row[target]
	if r == nil {
		r = &Relation{TargetID: target, Status: RelationNeutral}
		row[target] = r
	}
	return r
}

// adjustOpinion changes opinion within -100..100 and lets the status follow
// it unless the pair is at war or allied.
func (r *Relation) adjustOpinion(delta int) {
	r.Opinion = min(max(r.Opinion+delta, minOpinion), maxOpinion)
	if r.Status == RelationWar || r.Status == RelationAlliance {
		return
	}
	switch {
	case r.Opinion >= friendlyThreshold:
		r.Status = RelationFriendly
	case r.Opinion <= hostileThreshold:
		r.Status = RelationHostile
	default:
		r.Status = RelationNeutral
	}
}

// MilitaryStrength sums the attack value of every unit a nation fields,
// in reserve and in armies.
func MilitaryStrength(cat *catalog.Catalog, g *GameState, nationID string) float64 {
	n := g.Nations[nationID]
	if n == nil {
		return 0
	}
	total := 0.0
	for _, id := range cat.UnitIDs() {
		def, _ := cat.Unit(id)
		count := n.Units[id]
		for _, aid := range n.Armies {
			if a := g.Armies[aid]; a != nil {
				count += a.Units[id]
			}
		}
		total += def.Attack * float64(count)
	}
	return total
}

func (e *Engine) diplomacy(g *GameState, c DiplomacyAction) (*GameState, error) {
	src, tgt, err := diplomaticParties(g, c.SourceID, c.TargetID)
	if err != nil {
		return g, fmt.Errorf("diplomacy %s: %w", c.Action, err)
	}
	if src.ID == tgt.ID {
		return e.reject(g, c, "source and target are the same nation")
	}

	atWar := func(s *GameState) bool {
		return s.ensureRelation(src.ID, tgt.ID).Status == RelationWar ||
			s.ensureRelation(tgt.ID, src.ID).Status == RelationWar
	}

	next := g.Clone()
	ns, nt := next.Nations[src.ID], next.Nations[tgt.ID]
	out := next.ensureRelation(ns.ID, nt.ID)
	in := next.ensureRelation(nt.ID, ns.ID)

	var title, body string
	category := MessageInfo

	switch c.Action {
	case ActionImproveRelations:
		if !ns.Resources.Spend(improveRelationsCost) {
			return e.reject(g, c, "insufficient funds")
		}
		in.adjustOpinion(improveRelationsGain)
		title = "Relations Improved"
		body = fmt.Sprintf("%s has improved relations with %s.", ns.Name, nt.Name)

	case ActionTradeAgreement:
		if atWar(next) || in.Opinion < tradeOpinionRequired {
			return e.reject(g, c, "target refuses to trade")
		}
		out.IsTradePartner = true
		in.IsTradePartner = true
		out.adjustOpinion(tradeOpinionGain)
		in.adjustOpinion(tradeOpinionGain)
		title = "Trade Agreement Signed"
		body = fmt.Sprintf("%s and %s are now trade partners.", ns.Name, nt.Name)
		category = MessageEconomy

	case ActionAllianceOffer:
		if atWar(next) {
			return e.reject(g, c, "nations are at war")
		}
		if in.Opinion >= allianceOpinionNeeded {
			out.Status = RelationAlliance
			in.Status = RelationAlliance
			title = "Alliance Formed"
			body = fmt.Sprintf("%s and %s have formed an alliance.", ns.Name, nt.Name)
		} else {
			in.adjustOpinion(-allianceRejectPenalty)
			title = "Alliance Rejected"
			body = fmt.Sprintf("%s rejected the alliance offer from %s.", nt.Name, ns.Name)
		}

	case ActionDeclareWar:
		if out.Status == RelationWar {
			return e.reject(g, c, "already at war")
		}
		if out.CeasefireTurns > 0 {
			return e.reject(g, c, "ceasefire in effect")
		}
		for _, r := range []*Relation{out, in} {
			r.Status = RelationWar
			r.IsTradePartner = false
			r.adjustOpinion(-warOpinionPenalty)
		}
		title = "War Declared"
		body = fmt.Sprintf("%s has declared war on %s!", ns.Name, nt.Name)
		category = MessageWar

	case ActionSendAid:
		if !ns.Resources.Spend(aidAmount) {
			return e.reject(g, c, "insufficient funds")
		}
		nt.Resources.Money += aidAmount
		in.adjustOpinion(aidOpinionGain)
		title = "Aid Delivered"
		body = fmt.Sprintf("%s sent %d in aid to %s.", ns.Name, aidAmount, nt.Name)
		category = MessageEconomy

	case ActionDemandTribute:
		srcStrength := MilitaryStrength(e.Catalog, next, ns.ID)
		tgtStrength := MilitaryStrength(e.Catalog, next, nt.ID)
		in.adjustOpinion(-tributeOpinionPenalty)
		if srcStrength > tgtStrength*tributeStrengthRatio && nt.Resources.Money > 0 {
			paid := nt.Resources.Money * tributeShare
			nt.Resources.Money -= paid
			ns.Resources.Money += paid
			title = "Tribute Paid"
			body = fmt.Sprintf("%s paid %.0f in tribute to %s.", nt.Name, paid, ns.Name)
			category = MessageEconomy
		} else {
			title = "Tribute Refused"
			body = fmt.Sprintf("%s refused to pay tribute to %s.", nt.Name, ns.Name)
		}

	default:
		return g, fmt.Errorf("diplomacy %q: %w", c.Action, ErrUnknownAction)
	}

	e.Logger.Info("diplomatic action resolved",
		zap.String("action", string(c.Action)),
		zap.String("source", ns.ID),
		zap.String("target", nt.ID),
		zap.String("status", string(out.Status)))
	if next.PlayerNationID == ns.ID || next.PlayerNationID == nt.ID {
		e.postMessage(next, title, body, category)
	}
	return next, nil
}

func (e *Engine) sendSpy(g *GameState, c SendSpy) (*GameState, error) {
	src, tgt, err := diplomaticParties(g, c.SourceID, c.TargetID)
	if err != nil {
		return g, fmt.Errorf("spy %s: %w", c.Mission, err)
	}
	cost, ok := spyMissionCost[c.Mission]
	if !ok {
		return g, fmt.Errorf("spy mission %q: %w", c.Mission, ErrUnknownAction)
	}
	if src.ID == tgt.ID {
		return e.reject(g, c, "cannot spy on self")
	}
	if !src.Resources.CanAfford(cost) {
		return e.reject(g, c, "insufficient funds")
	}

	next := g.Clone()
	ns, nt := next.Nations[src.ID], next.Nations[tgt.ID]
	ns.Resources.Money -= cost
	if ns.Intelligence == nil {
		ns.Intelligence = make(map[string]int)
	}

	intel := ns.Intelligence[nt.ID]
	success := e.Rand.Float64() < spyBaseChance+float64(intel)/spyIntelDivisor

	var body string
	if success {
		switch c.Mission {
		case MissionGatherIntel:
			ns.Intelligence[nt.ID] = min(ns.Intelligence[nt.ID]+gatherIntelGain, maxIntel)
			body = fmt.Sprintf("Our agents compiled a detailed dossier on %s.", nt.Name)
		case MissionSabotageIndustry:
			if nt.Buildings[catalog.BuildingFactory] > 0 {
				nt.Buildings[catalog.BuildingFactory]--
			}
			body = fmt.Sprintf("A factory in %s was destroyed.", nt.Name)
		case MissionStealTech:
			body = fmt.Sprintf("Our agents found nothing new in %s.", nt.Name)
			for _, id := range e.Catalog.TechIDs() {
				if nt.HasTech(id) && !ns.HasTech(id) {
					ns.ResearchedTechs = append(ns.ResearchedTechs, id)
					if ns.CurrentResearch == id {
						ns.CurrentResearch = ""
						ns.ResearchProgress = 0
					}
					tech, _ := e.Catalog.Tech(id)
					body = fmt.Sprintf("Our agents stole the plans for %s from %s.", tech.Name, nt.Name)
					break
				}
			}
		case MissionInciteUnrest:
			nt.Resources.Population -= nt.Resources.Population * unrestPopulationLoss
			body = fmt.Sprintf("Riots broke out across %s.", nt.Name)
		}
		ns.Intelligence[nt.ID] = min(ns.Intelligence[nt.ID]+spyIntelGain, maxIntel)
	} else {
		next.ensureRelation(nt.ID, ns.ID).adjustOpinion(-spyCaughtPenalty)
		body = fmt.Sprintf("Our agents were captured in %s.", nt.Name)
	}

	e.Logger.Info("spy mission resolved",
		zap.String("mission", string(c.Mission)),
		zap.String("source", ns.ID),
		zap.String("target", nt.ID),
		zap.Bool("success", success))

	switch next.PlayerNationID {
	case ns.ID:
		title := "Mission Failed"
		if success {
			title = "Mission Succeeded"
		}
		e.postMessage(next, title, body, MessageSpy)
	case nt.ID:
		if !success {
			e.postMessage(next, "Spy Captured", fmt.Sprintf("We caught an agent working for %s.", ns.Name), MessageSpy)
		}
	}
	return next, nil
}

func diplomaticParties(g *GameState, sourceID, targetID string) (*Nation, *Nation, error) {
	src := g.Nation(sourceID)
	if src == nil {
		return nil, nil, fmt.Errorf("source %q: %w", sourceID, ErrUnknownNation)
	}
	tgt := g.Nation(targetID)
	if tgt == nil {
		return nil, nil, fmt.Errorf("target %q: %w", targetID, ErrUnknownNation)
	}
	return src, tgt, nil
}
