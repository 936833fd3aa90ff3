package talent

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// Fixup swaps placeholder abilities for what they stand for right now.
// Applying it twice gives the same answer as applying it once.
func (r *Resolver) Fixup(p *player.Player, id abilities.ID) abilities.ID {
	switch id {
	case abilities.YredAnimateRemains:
		// animate dead supersedes it
		if p.InGoodStanding(shared.GodYredelemnul, 2) {
			return abilities.NonAbility
		}

	case abilities.YredRecallUndeadSlaves, abilities.BeoghRecallOrcishFollowers:
		if len(p.RecallList) > 0 {
			return abilities.StopRecall
		}

	case abilities.EvokeBerserk, abilities.TrogBerserk:
		if p.IsLifelessUndead(false) || p.Species == shared.SpeciesFormicid {
			return abilities.NonAbility
		}

	case abilities.Blink, abilities.EvokeBlink:
		if p.Species == shared.SpeciesFormicid {
			return abilities.NonAbility
		}

	case abilities.LugonuAbyssExit, abilities.LugonuAbyssEnter:
		if !r.world.AbyssExists() {
			return abilities.NonAbility
		}

	case abilities.TSOBlessWeapon, abilities.KikuBlessWeapon, abilities.LugonuBlessWeapon:
		if p.Species == shared.SpeciesFelid {
			return abilities.NonAbility
		}
	}

	return id
}
