package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
)

// ruSacrificeXPLevels is how many levels the experience sacrifice takes
const ruSacrificeXPLevels = 2

// CheckAbilityPossible reports whether id could be attempted right now.
// Unless quiet, the reason it cannot is shown to the player. A
// confirm_action prompt is asked even when quiet.
func (e *Engine) CheckAbilityPossible(ctx context.Context, p *player.Player, id abilities.ID, hungerCheck, quiet bool) bool {
	def := abilities.Lookup(id)
	say := func(msg string) {
		if !quiet {
			e.say(msg)
		}
	}

	if p.Berserk() {
		say(msgTooBerserk)
		return false
	}

	if p.Confused() && !def.Flags.Has(abilities.FlagConfOK) {
		say(msgTooConfused)
		return false
	}

	if e.world.Silenced() && e.resolver.GetTalent(p, id, false).IsInvocation {
		say(fmt.Sprintf("You cannot call out to %s while silenced.", p.Religion))
		return false
	}

	// keep a margin for natural hunger so this can't insta-starve
	if hungerCheck && p.UndeadState(true) == shared.Alive {
		expected := p.Hunger - def.FoodCost*2
		if !quiet {
			logger.Debug("hunger check",
				"hunger", p.Hunger, "max_food_cost", def.FoodCost*2, "expected", expected)
		}
		if expected <= 50 {
			say(msgTooHungry)
			return false
		}
	}

	// rotting MP must come out of innate capacity, not gear
	if def.Flags.Has(abilities.FlagPermanentMP) && p.RealMP(false) < def.MPCost {
		say("You don't have enough innate magic capacity to sacrifice.")
		return false
	}

	if !e.confirmAction(def) {
		return false
	}

	return e.abilityFeasible(p, id, say)
}

// confirmAction asks for confirmation when the name matches a
// confirm_action pattern. Only the first matching pattern asks.
func (e *Engine) confirmAction(def *abilities.Definition) bool {
	for _, re := range e.confirm {
		if !re.MatchString(def.Name) {
			continue
		}
		if !e.prompter.YesNo("Really use "+def.Name+"?", false) {
			e.say(msgOK)
			return false
		}
		break
	}
	return true
}

// abilityFeasible runs the per-ability conditions
func (e *Engine) abilityFeasible(p *player.Player, id abilities.ID, say func(string)) bool {
	fail := func(msg string) bool {
		say(msg)
		return false
	}

	switch id {
	case abilities.ZinRecite:
		switch {
		case p.Duration(shared.DurRecite) > 0:
			return fail("You're already reciting.")
		case p.Duration(shared.DurBreathWeapon) > 0:
			return fail("You're not ready to recite again yet.")
		case !e.world.ReciteAudience():
			return fail("There's no appreciative audience!")
		}

	case abilities.ZinCureAllMutations:
		if p.HowMutated(false) == 0 {
			return fail("You have no mutations to be cured!")
		}

	case abilities.ZinSanctuary:
		if e.world.SanctuaryActive() {
			return fail("There's already a sanctuary in place on this level.")
		}

	case abilities.ZinDonateGold:
		if p.Gold == 0 {
			return fail("You have nothing to donate!")
		}

	case abilities.ElyvilonPurification:
		if !p.Ailing() {
			return fail("Nothing ails you!")
		}

	case abilities.MummyRestoration:
		if !p.Stats.Drained() && p.Rotted() == 0 {
			return fail("You don't need to restore your attributes or health!")
		}

	case abilities.LugonuAbyssExit:
		if !e.world.InAbyss() {
			return fail("You aren't in the Abyss!")
		}

	case abilities.LugonuCorrupt:
		if msg := e.world.CorruptionBlocker(); msg != "" {
			return fail(msg)
		}

	case abilities.LugonuAbyssEnter:
		if e.world.InAbyss() {
			return fail("You're already here!")
		}

	case abilities.SifMunaForgetSpell:
		if p.SpellCount() == 0 {
			return fail(msgNoSpells)
		}

	case abilities.AshenzariTransferKnowledge:
		if p.AllSkillsMaxed() {
			return fail("You have nothing more to learn.")
		}

	case abilities.FedhasSpawnSpores:
		if e.world.CorpsesInRange() <= 0 {
			return fail("No corpses are in range.")
		}

	case abilities.SpitPoison, abilities.BreatheFire, abilities.BreatheFrost,
		abilities.BreathePoison, abilities.BreatheLightning, abilities.SpitAcid,
		abilities.BreathePower, abilities.BreatheStickyFlame, abilities.BreatheSteam,
		abilities.BreatheMephitic:
		if p.Duration(shared.DurBreathWeapon) > 0 {
			return fail(msgCannotDoYet)
		}

	case abilities.Blink, abilities.EvokeBlink:
		if msg := p.NoTeleportReason(true); msg != "" {
			return fail(msg)
		}

	case abilities.EvokeBerserk, abilities.TrogBerserk:
		if msg := p.BerserkBlocker(); msg != "" {
			return fail(msg)
		}

	case abilities.EvokeFog:
		if e.world.CloudHere() {
			return fail("It's too cloudy to do that here.")
		}

	case abilities.RuSacrificeExperience:
		if p.XL <= ruSacrificeXPLevels {
			return fail("You don't have enough experience to sacrifice.")
		}

	case abilities.PakellasDeviceSurge:
		if p.MP == 0 {
			return fail("You have no magic power.")
		}

	case abilities.PakellasQuickCharge:
		if abilities.QuickChargeMP(p.MP) <= 0 {
			return fail("You have no magic power.")
		}
	}

	return true
}
