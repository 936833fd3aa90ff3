package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

func equally(values ...string) []dice.Weighted[string] {
	out := make([]dice.Weighted[string], len(values))
	for i, v := range values {
		out[i] = dice.Weighted[string]{Weight: 1, Value: v}
	}
	return out
}

var (
	minorDestructionZaps = []string{"throw flame", "pain", "stone arrow", "shock", "acid"}
	majorDestructionZaps = equally("bolt of fire", "fireball", "lightning bolt",
		"sticky flame", "iron shot", "bolt of draining", "orb of electricity")

	lesserServants  = equally("hellwing", "neqoxec", "orange demon", "smoke demon", "ynoxinul")
	greaterServants = equally("executioner", "green death", "blizzard demon", "balrug", "cacodemon")
)

const majorDestructionRange = 6

func registerMakhlebHandlers(e *Engine) {
	e.RegisterHandler(&destructionExecutor{engine: e, id: abilities.MakhlebMinorDestruction, rng: spells.LOSRadius})
	e.RegisterHandler(&destructionExecutor{engine: e, id: abilities.MakhlebMajorDestruction, rng: majorDestructionRange})
	e.RegisterHandler(&servantExecutor{engine: e, id: abilities.MakhlebLesserServant, demons: lesserServants})
	e.RegisterHandler(&servantExecutor{engine: e, id: abilities.MakhlebGreaterServant, demons: greaterServants})
}

// destructionExecutor fires a random beam at a chosen target
type destructionExecutor struct {
	engine *Engine
	id     abilities.ID
	rng    int
}

func (d *destructionExecutor) Key() abilities.ID {
	return d.id
}

func (d *destructionExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	target, err := d.engine.chooseTarget(ctx, TargetRequest{
		Ability:   d.id,
		Range:     d.rng,
		Hostile:   true,
		NeedsPath: true,
	})
	if err != nil {
		return OutcomeNone, err
	}
	if target == nil {
		return OutcomeAbort, nil
	}

	skill := in.Player.Skill(shared.SkillInvocations, 1)
	power := skill + in.Roller.Random2(1+skill) + in.Roller.Random2(1+skill)

	// the beam is random, so trace the longest it could be
	if !d.engine.traceConfirmed(in, target, spells.LOSRadius) {
		return OutcomeAbort, nil
	}

	if in.Fail {
		return OutcomeFail, nil
	}

	eff := &Effect{Ability: d.id, Power: power, Target: target, Range: d.rng}
	if d.id == abilities.MakhlebMinorDestruction {
		eff.Variant = minorDestructionZaps[in.Roller.Random2(len(minorDestructionZaps))]
		if eff.Variant == "acid" {
			eff.Power /= 2
		}
	} else {
		eff.Variant = dice.ChooseWeighted(in.Roller, majorDestructionZaps)
	}

	if _, err := d.engine.apply(ctx, eff); err != nil {
		return OutcomeNone, err
	}
	return OutcomeSuccess, nil
}

// servantExecutor summons a demon. Failing does not stop the summons;
// the demon arrives hostile instead.
type servantExecutor struct {
	engine *Engine
	id     abilities.ID
	demons []dice.Weighted[string]
}

func (s *servantExecutor) Key() abilities.ID {
	return s.id
}

func (s *servantExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	eff := &Effect{
		Ability: s.id,
		Power:   20 + in.Player.Skill(shared.SkillInvocations, 3),
		Variant: dice.ChooseWeighted(in.Roller, s.demons),
		Hostile: in.Fail,
	}
	if _, err := s.engine.apply(ctx, eff); err != nil {
		return OutcomeNone, err
	}
	return OutcomeSuccess, nil
}
