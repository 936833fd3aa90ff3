package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

func registerPakellasHandlers(e *Engine) {
	e.handle(abilities.PakellasDeviceSurge, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		p := in.Player
		e.say("You feel a buildup of energy.")
		increaseDuration(p, shared.DurDeviceSurge, in.Roller.Random2Avg(p.Piety/4, 2)+3, 100)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.PakellasQuickCharge, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		mp := abilities.QuickChargeMP(p.MP)
		if mp <= 0 {
			panic(fmt.Sprintf("quick charge with %d MP", p.MP))
		}

		// the MP comes from the handler since the table cost is variable
		ok, err := e.apply(ctx, &Effect{
			Ability: abilities.PakellasQuickCharge,
			Power:   in.Roller.Random2Avg(p.Skill(shared.SkillEvocations, 10), 2) * mp,
		})
		if err != nil {
			return OutcomeNone, err
		}
		if !ok {
			e.say(msgOK)
			return OutcomeAbort, nil
		}
		p.DecMP(mp)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.PakellasSupercharge, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		e.say(fmt.Sprintf("%s will supercharge a wand or rod.", in.Player.Religion))

		outcome, err := e.applyOrAbort(ctx, &Effect{Ability: abilities.PakellasSupercharge})
		if err != nil || outcome != OutcomeSuccess {
			return outcome, err
		}
		in.Player.Attr.Supercharged = true
		return OutcomeSuccess, nil
	})
}
