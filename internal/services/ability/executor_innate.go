package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
)

// registerInnateHandlers covers racial, mutation and leftover-spell
// abilities
func registerInnateHandlers(e *Engine) {
	e.handle(abilities.NonAbility, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		e.say(msgNonAbility)
		return OutcomeSuccess, nil
	})

	e.handle(abilities.MummyRestoration, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		e.say("You infuse your body with magical energy.")

		restored := p.Stats.Drained() || p.Rotted() > 0
		restoreBody(p)

		// nothing to fix: no max MP lost, no turn spent
		if !restored {
			e.say(msgNothingHappens)
			return OutcomeAbort, nil
		}
		return OutcomeSuccess, nil
	})

	e.handle(abilities.Recharging, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		return e.applyOrAbort(ctx, &Effect{Ability: abilities.Recharging})
	})

	e.handle(abilities.Dig, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		if in.Player.Attr.Digging {
			e.say("You are already prepared to dig.")
			return OutcomeAbort, nil
		}
		in.Player.Attr.Digging = true
		e.say("You extend your mandibles.")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.ShaftSelf, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		switch {
		case in.World.OneLevelBranch():
			e.say("You can't shaft yourself here.")
			return OutcomeAbort, nil
		case in.World.TerrainHere() != world.TerrainFloor:
			e.say("You can't shaft yourself on this terrain.")
			return OutcomeAbort, nil
		}

		if !e.prompter.YesNo("Are you sure you want to shaft yourself?", true) {
			return OutcomeAbort, nil
		}
		return e.applyOrAbort(ctx, &Effect{Ability: abilities.ShaftSelf})
	})

	e.handle(abilities.DelayedFireball, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		power := min(spells.PowerCap(spells.DelayedFireball),
			p.Skill(shared.SkillSpellcasting, 1)/2+
				(p.Skill(shared.SkillConjurations, 2)+p.Skill(shared.SkillFireMagic, 2))/2)
		rng := spells.Range(spells.Fireball, power, true, p.View(nil))

		target, err := e.chooseTarget(ctx, TargetRequest{
			Ability:   abilities.DelayedFireball,
			Range:     rng,
			Prompt:    "Aiming: Delayed Fireball",
			Hostile:   true,
			NeedsPath: true,
		})
		if err != nil {
			return OutcomeNone, err
		}
		if target == nil {
			return OutcomeAbort, nil
		}

		outcome, err := e.applyOrAbort(ctx, &Effect{
			Ability: abilities.DelayedFireball,
			Power:   power,
			Target:  target,
			Range:   rng,
		})
		if err != nil || outcome != OutcomeSuccess {
			return outcome, err
		}

		// only one is ever charged
		p.Attr.DelayedFireball = false
		return OutcomeSuccess, nil
	})

	e.handle(abilities.StopSinging, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		in.Player.SetDuration(shared.DurSongOfSlaying, 0)
		e.say("You stop singing.")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.Hellfire, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		return e.applyOrAbort(ctx, &Effect{Ability: abilities.Hellfire, Power: in.Player.XL * 10})
	})
}
