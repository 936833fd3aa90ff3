package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

func registerLugonuHandlers(e *Engine) {
	e.handle(abilities.LugonuAbyssEnter, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		// the trip through the void deflates HP and MP
		p := in.Player
		p.DecHP(in.Roller.Random2Avg(p.HP, 2), false)
		if p.MP > 0 {
			p.DecMP(in.Roller.Random2Avg(p.MP, 2))
		}

		if _, err := e.apply(ctx, &Effect{Ability: abilities.LugonuAbyssEnter}); err != nil {
			return OutcomeNone, err
		}
		return OutcomeSuccess, nil
	})

	e.handle(abilities.LugonuBanish, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		power := 16 + in.Player.Skill(shared.SkillInvocations, 8)

		target, err := e.chooseTarget(ctx, TargetRequest{
			Ability:   abilities.LugonuBanish,
			Range:     spells.LOSRadius,
			Hostile:   true,
			NeedsPath: true,
		})
		if err != nil {
			return OutcomeNone, err
		}
		if target == nil {
			return OutcomeAbort, nil
		}
		if target.Self() {
			e.say("You cannot banish yourself!")
			return OutcomeAbort, nil
		}

		if in.Fail {
			return OutcomeFail, nil
		}

		if _, err := e.apply(ctx, &Effect{
			Ability: abilities.LugonuBanish,
			Power:   power,
			Target:  target,
			Range:   spells.LOSRadius,
		}); err != nil {
			return OutcomeNone, err
		}
		return OutcomeSuccess, nil
	})
}
