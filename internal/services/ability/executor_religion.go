package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// startingPiety is what a new follower begins with
const startingPiety = 15

// registerReligionHandlers covers the god-agnostic religion abilities and
// the ally recall pair
func registerReligionHandlers(e *Engine) {
	recall := func(id abilities.ID) {
		e.handle(id, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
			if in.Fail {
				return OutcomeFail, nil
			}
			if _, err := e.apply(ctx, &Effect{Ability: id}); err != nil {
				return OutcomeNone, err
			}
			e.say("You begin recalling your allies.")
			return OutcomeSuccess, nil
		})
	}
	recall(abilities.YredRecallUndeadSlaves)
	recall(abilities.BeoghRecallOrcishFollowers)

	e.handle(abilities.StopRecall, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		e.say("You stop recalling your allies.")
		in.Player.RecallList = nil
		return OutcomeSuccess, nil
	})

	e.handle(abilities.YredInjuryMirror, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Duration(shared.DurMirrorDamage) > 0 {
			e.say("Another wave of unholy energy enters you.")
		} else {
			e.say(fmt.Sprintf("You offer yourself to %s, and fill with unholy energy.", p.Religion))
		}
		p.SetDuration(shared.DurMirrorDamage,
			9*shared.BaselineDelay+in.Roller.Random2Avg(p.Piety*shared.BaselineDelay, 2)/10)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.AshenzariTransferKnowledge, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		ok, err := e.apply(ctx, &Effect{Ability: abilities.AshenzariTransferKnowledge})
		if err != nil {
			return OutcomeNone, err
		}
		if !ok {
			e.say(msgOK)
			return OutcomeAbort, nil
		}
		return OutcomeSuccess, nil
	})

	e.handle(abilities.AshenzariEndTransfer, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		if !e.prompter.YesNo("Are you sure you want to cancel the transfer?", false) {
			e.say(msgOK)
			return OutcomeAbort, nil
		}
		in.Player.TransferPoints = 0
		e.say("You are no longer transferring knowledge.")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.RenounceReligion, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		if !e.prompter.YesNo("Really renounce your faith, foregoing its fabulous benefits?", false) ||
			!e.prompter.YesNo("Are you sure you won't change your mind later?", false) {
			e.say(msgOK)
			return OutcomeAbort, nil
		}

		p := in.Player
		p.Religion = shared.GodNone
		p.Piety = 0
		p.RuSacrifices = nil
		p.SacrificePiety = nil
		p.TransferPoints = 0
		p.RecallList = nil
		e.say("You have lost your religion!")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.ConvertToBeogh, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		if !e.prompter.YesNo(fmt.Sprintf("Do you wish to join the religion of %s?", shared.GodBeogh), false) {
			e.say(msgOK)
			return OutcomeAbort, nil
		}

		p := in.Player
		p.Religion = shared.GodBeogh
		p.Piety = startingPiety
		e.say(fmt.Sprintf("You are now a follower of %s.", shared.GodBeogh))
		return OutcomeSuccess, nil
	})
}
