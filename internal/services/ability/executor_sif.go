package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

func registerSifHandlers(e *Engine) {
	e.handle(abilities.SifMunaChannelEnergy, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		e.say("You channel some magical energy.")
		restoreMP(p, 1+in.Roller.Random2(skillRdiv(p, in.Roller, shared.SkillInvocations, 1, 4)+2))
		return OutcomeSuccess, nil
	})

	e.handle(abilities.SifMunaForgetSpell, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		choice := e.prompter.ChooseSpell("Forget which spell?", p.KnownSpells())
		if choice == spells.NoSpell || !p.Knows(choice) {
			e.say(msgOK)
			return OutcomeAbort, nil
		}

		e.say(spells.ForgetMessage(choice))
		p.ForgetSpell(choice)
		return OutcomeSuccess, nil
	})
}
