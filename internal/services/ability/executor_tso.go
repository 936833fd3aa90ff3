package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

func registerShiningOneHandlers(e *Engine) {
	e.handle(abilities.TSODivineShield, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Duration(shared.DurDivineShield) > 0 {
			e.say("Your divine shield is renewed.")
		} else {
			e.say("A divine shield forms around you!")
		}
		setDuration(p, shared.DurDivineShield, 15+skillRdiv(p, in.Roller, shared.SkillInvocations, 1, 5))
		return OutcomeSuccess, nil
	})
}
