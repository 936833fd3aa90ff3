package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

func registerZinHandlers(e *Engine) {
	e.handle(abilities.ZinRecite, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		if !in.World.ReciteAudience() {
			e.say(msgOK)
			return OutcomeAbort, nil
		}

		p := in.Player
		setDuration(p, shared.DurRecite, 3)
		e.say("You clear your throat and prepare to recite.")
		increaseDuration(p, shared.DurBreathWeapon, 3+in.Roller.Random2(10)+in.Roller.Random2(30), 0)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.ZinImprison, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		target, err := e.chooseTarget(ctx, TargetRequest{
			Ability: abilities.ZinImprison,
			Range:   spells.LOSRadius,
			Hostile: true,
		})
		if err != nil {
			return OutcomeNone, err
		}
		if target == nil {
			return OutcomeAbort, nil
		}
		if target.Self() {
			e.say("You cannot imprison yourself!")
			return OutcomeAbort, nil
		}

		if in.Fail {
			return OutcomeFail, nil
		}

		power := 3 + dice.RollDice(in.Roller, 5, in.Player.Skill(shared.SkillInvocations, 5)+12)/26
		return e.applyOrAbort(ctx, &Effect{
			Ability: abilities.ZinImprison,
			Power:   power,
			Target:  target,
			Range:   spells.LOSRadius,
		})
	})

	e.handle(abilities.ZinCureAllMutations, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		cured := 0
		for m, lvl := range p.Mutations {
			if m.IsSacrifice() || lvl == 0 {
				continue
			}
			delete(p.Mutations, m)
			cured++
		}
		if cured == 0 {
			return OutcomeAbort, nil
		}

		e.say("You feel cleansed of all your mutations.")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.ZinDonateGold, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		in.Player.Gold = 0
		e.say("You donate your money.")
		return OutcomeSuccess, nil
	})
}
