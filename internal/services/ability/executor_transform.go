package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// transformExecutor puts the player into a form
type transformExecutor struct {
	engine  *Engine
	id      abilities.ID
	form    shared.Form
	message string
	power   func(p *player.Player) int
}

func newBatFormExecutor(e *Engine) Handler {
	return &transformExecutor{
		engine:  e,
		id:      abilities.TranBat,
		form:    shared.FormBat,
		message: "You turn into a vampire bat.",
		power:   func(*player.Player) int { return 100 },
	}
}

func newShadowFormExecutor(e *Engine) Handler {
	return &transformExecutor{
		engine:  e,
		id:      abilities.DithmenosShadowForm,
		form:    shared.FormShadow,
		message: "You feel less conspicuous.",
		power: func(p *player.Player) int {
			return p.Skill(shared.SkillInvocations, 2)
		},
	}
}

func (t *transformExecutor) Key() abilities.ID {
	return t.id
}

func (t *transformExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	if !transform(in.Player, in.Roller, t.form, t.power(in.Player)) {
		return OutcomeAbort, nil
	}
	t.engine.say(t.message)
	return OutcomeSuccess, nil
}

// transform changes form, reporting false when already in it
func transform(p *player.Player, r dice.Roller, form shared.Form, power int) bool {
	if p.Form == form {
		return false
	}

	p.Form = form
	p.FormUncancellable = false
	p.SetDuration(shared.DurTransformation, 0)
	increaseDuration(p, shared.DurTransformation, 10+r.Random2(power)+r.Random2(power), 100)
	return true
}

type endTransformationExecutor struct {
	engine *Engine
}

func newEndTransformationExecutor(e *Engine) Handler {
	return &endTransformationExecutor{engine: e}
}

func (t *endTransformationExecutor) Key() abilities.ID {
	return abilities.EndTransformation
}

func (t *endTransformationExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	p := in.Player
	p.Form = shared.FormNone
	p.FormUncancellable = false
	p.SetDuration(shared.DurTransformation, 0)
	t.engine.say("Your transformation has ended.")
	return OutcomeSuccess, nil
}
