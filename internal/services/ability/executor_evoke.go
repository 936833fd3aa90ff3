package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// smokeClouds are the fog colours a cloak can release
var smokeClouds = []dice.Weighted[string]{
	{Weight: 1, Value: "grey smoke"},
	{Weight: 1, Value: "blue smoke"},
	{Weight: 1, Value: "black smoke"},
	{Weight: 1, Value: "purple smoke"},
}

const fogCloudSize = 50

func registerEvocationHandlers(e *Engine) {
	e.handle(abilities.EvokeTurnInvisible, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		power := p.Skill(shared.SkillEvocations, 2) + 5
		e.say("You fade into invisibility!")
		increaseDuration(p, shared.DurInvisibility, 15+in.Roller.Random2(power), 100)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.EvokeTurnVisible, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Attr.InvisUncancellable {
			panic("turning visible while invisibility cannot be cancelled")
		}
		e.say("You feel less transparent.")
		// expires on the next tick
		p.SetDuration(shared.DurInvisibility, 1)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.EvokeFog, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		e.say("With a swish of your cloak, you release a cloud of fog.")
		cloud := dice.ChooseWeighted(in.Roller, smokeClouds)
		if _, err := e.apply(ctx, &Effect{
			Ability: abilities.EvokeFog,
			Power:   8 + in.Roller.Random2(8),
			Range:   fogCloudSize,
			Variant: cloud,
		}); err != nil {
			return OutcomeNone, err
		}
		return OutcomeSuccess, nil
	})
}
