package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

func registerOkawaruHandlers(e *Engine) {
	boost := func(id abilities.ID, d shared.Duration, renewed, fresh string) {
		e.handle(id, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
			if in.Fail {
				return OutcomeFail, nil
			}

			p := in.Player
			if p.Duration(d) > 0 {
				e.say(renewed)
			} else {
				e.say(fresh)
			}
			increaseDuration(p, d, 10+in.Roller.Random2Avg(p.Skill(shared.SkillInvocations, 6), 2), 100)
			return OutcomeSuccess, nil
		})
	}

	boost(abilities.OkawaruHeroism, shared.DurHeroism,
		"You feel more confident with your borrowed prowess.",
		"You gain the combat prowess of a mighty hero.")
	boost(abilities.OkawaruFinesse, shared.DurFinesse,
		"Your hands get new energy.",
		"You can now deal lightning-fast blows.")
}
