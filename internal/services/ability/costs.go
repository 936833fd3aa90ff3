package ability

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
)

// PayAbilityCosts settles the table costs of def after a successful use
// and decides whether the turn is over.
func (e *Engine) PayAbilityCosts(p *player.Player, def *abilities.Definition) *CostsPaid {
	p.TurnIsOver = !def.Flags.Has(abilities.FlagInstant)

	food := def.FoodCost + e.roller.Random2Avg(def.FoodCost, 2)
	piety := e.scalePietyCost(def.ID, def.PietyCost.Cost(e.roller))

	paid := &CostsPaid{
		MP:    def.MPCost,
		HP:    def.HPCost.Cost(p.MaxHP()),
		Food:  food,
		Piety: piety,
	}

	logger.Debug("ability costs",
		"ability", def.Name, "mp", paid.MP, "hp", paid.HP, "food", paid.Food, "piety", paid.Piety)

	if paid.MP > 0 {
		p.DecMP(paid.MP)
		if def.Flags.Has(abilities.FlagPermanentMP) {
			p.RotMP(1)
			paid.PermanentMP = true
		}
	}

	if def.HPCost.Any() {
		p.DecHP(paid.HP, false)
		if def.Flags.Has(abilities.FlagPermanentHP) {
			p.RotHP(paid.HP)
			paid.PermanentHP = true
		}
	}

	if paid.Food > 0 {
		p.MakeHungry(paid.Food)
	}

	if paid.Piety > 0 {
		p.LosePiety(paid.Piety)
	}

	return paid
}

// scalePietyCost makes the abilities that are too strong in sprint cost
// two and a half times as much there.
func (e *Engine) scalePietyCost(id abilities.ID, cost int) int {
	if e.sprint && (id == abilities.TrogBrothersInArms || id == abilities.MakhlebGreaterServant) {
		return e.roller.DivRandRound(cost*5, 2)
	}
	return cost
}
