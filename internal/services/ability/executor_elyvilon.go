package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// maxHealingPower caps every Elyvilon heal
const maxHealingPower = 50

func registerElyvilonHandlers(e *Engine) {
	e.handle(abilities.ElyvilonLifesaving, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Duration(shared.DurLifesaving) > 0 {
			e.say("You renew your call for help.")
		} else {
			e.say(fmt.Sprintf("You beseech %s to protect your life.", p.Religion))
		}
		// may shorten an active call; that's fine
		p.SetDuration(shared.DurLifesaving,
			9*shared.BaselineDelay+in.Roller.Random2Avg(p.Piety*shared.BaselineDelay, 2)/10)
		return OutcomeSuccess, nil
	})

	heal := func(id abilities.ID, base, div int) {
		e.handle(id, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
			if in.Fail {
				return OutcomeFail, nil
			}

			p := in.Player
			power := min(maxHealingPower, base+skillRdiv(p, in.Roller, shared.SkillInvocations, 1, div))
			healed := power + dice.RollDice(in.Roller, 2, power) - 2
			e.say("You are healed.")
			healHP(p, healed)
			return OutcomeSuccess, nil
		})
	}
	heal(abilities.ElyvilonLesserHealing, 3, 6)
	heal(abilities.ElyvilonGreaterHealing, 10, 3)

	e.handle(abilities.ElyvilonPurification, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		e.say("You feel purified!")
		p.Disease = 0
		for _, d := range []shared.Duration{
			shared.DurPoisoning, shared.DurConfusion, shared.DurSlow, shared.DurPetrifying, shared.DurWeak,
		} {
			p.SetDuration(d, 0)
		}
		restoreBody(p)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.ElyvilonDivineVigour, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Attr.DivineVigour > 0 {
			e.say("You are already imbued with divine vigour.")
			return OutcomeAbort, nil
		}
		e.say(fmt.Sprintf("%s grants you divine vigour.", p.Religion))
		p.Attr.DivineVigour = 1 + skillRdiv(p, in.Roller, shared.SkillInvocations, 1, 3)
		return OutcomeSuccess, nil
	})
}
