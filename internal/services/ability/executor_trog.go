package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// Trog's gifts neither use nor train Invocations
func registerTrogHandlers(e *Engine) {
	e.handle(abilities.TrogRegenMR, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		power := p.Piety / 2
		e.say("You feel resistant to hostile enchantments.")
		e.say("Your body begins to regenerate.")
		increaseDuration(p, shared.DurRegeneration, 5+dice.RollDice(in.Roller, 2, power/3+1), 100)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.TrogBrothersInArms, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		piety := in.Player.Piety
		power := piety + in.Roller.Random2(piety/4) - in.Roller.Random2(piety/4)
		if _, err := e.apply(ctx, &Effect{Ability: abilities.TrogBrothersInArms, Power: power}); err != nil {
			return OutcomeNone, err
		}
		return OutcomeSuccess, nil
	})
}
