package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
)

// registerDefaultHandlers wires every built-in ability to its executor
func registerDefaultHandlers(e *Engine) {
	for _, id := range breathAbilities {
		e.RegisterHandler(newBreathExecutor(e, id))
	}

	e.RegisterHandler(newBlinkExecutor(e, abilities.Blink))
	e.RegisterHandler(newBlinkExecutor(e, abilities.EvokeBlink))
	e.RegisterHandler(newBerserkExecutor(e, abilities.TrogBerserk))
	e.RegisterHandler(newBerserkExecutor(e, abilities.EvokeBerserk))
	e.RegisterHandler(newFlyExecutor(e))
	e.RegisterHandler(newEvokeFlightExecutor(e))
	e.RegisterHandler(newStopFlyingExecutor(e))
	e.RegisterHandler(newBatFormExecutor(e))
	e.RegisterHandler(newEndTransformationExecutor(e))
	e.RegisterHandler(newShadowFormExecutor(e))

	registerInnateHandlers(e)
	registerEvocationHandlers(e)
	registerZinHandlers(e)
	registerShiningOneHandlers(e)
	registerElyvilonHandlers(e)
	registerTrogHandlers(e)
	registerMakhlebHandlers(e)
	registerSifHandlers(e)
	registerOkawaruHandlers(e)
	registerLugonuHandlers(e)
	registerReligionHandlers(e)
	registerRuHandlers(e)
	registerPakellasHandlers(e)
	registerEffectHandlers(e)
}

// funcExecutor adapts a plain function to Handler for abilities whose
// effect fits in a few lines
type funcExecutor struct {
	id abilities.ID
	fn func(ctx context.Context, in *ExecuteInput) (Outcome, error)
}

func (f *funcExecutor) Key() abilities.ID {
	return f.id
}

func (f *funcExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	return f.fn(ctx, in)
}

func (e *Engine) handle(id abilities.ID, fn func(ctx context.Context, in *ExecuteInput) (Outcome, error)) {
	e.RegisterHandler(&funcExecutor{id: id, fn: fn})
}

// increaseDuration extends a status by turns, capped at capTurns when
// capTurns is positive
func increaseDuration(p *player.Player, d shared.Duration, turns, capTurns int) {
	total := p.Duration(d) + turns*shared.BaselineDelay
	if capTurns > 0 {
		total = min(total, capTurns*shared.BaselineDelay)
	}
	p.SetDuration(d, total)
}

// setDuration replaces a status duration, in turns
func setDuration(p *player.Player, d shared.Duration, turns int) {
	p.SetDuration(d, turns*shared.BaselineDelay)
}

// skillRdiv is skill * mult / div with random rounding
func skillRdiv(p *player.Player, r dice.Roller, sk shared.Skill, mult, div int) int {
	return r.DivRandRound(p.Skill(sk, mult*10), div*10)
}

// chooseTarget asks where to aim. A nil target means the player cancelled.
func (e *Engine) chooseTarget(ctx context.Context, req TargetRequest) (*Target, error) {
	if req.Prompt == "" {
		req.Prompt = "Aiming: " + abilities.Name(req.Ability)
	}

	target, err := e.targeter.ChooseTarget(ctx, req)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to choose target for %s", abilities.Name(req.Ability))
	}
	return target, nil
}

// apply hands an effect to the dungeon. false means nothing happened.
func (e *Engine) apply(ctx context.Context, eff *Effect) (bool, error) {
	ok, err := e.effector.Apply(ctx, eff)
	if err != nil {
		return false, dnderr.Wrapf(err, "failed to apply %s", abilities.Name(eff.Ability))
	}
	return ok, nil
}

// applyOrAbort maps an effect that did not happen to OutcomeAbort
func (e *Engine) applyOrAbort(ctx context.Context, eff *Effect) (Outcome, error) {
	ok, err := e.apply(ctx, eff)
	if err != nil {
		return OutcomeNone, err
	}
	if !ok {
		return OutcomeAbort, nil
	}
	return OutcomeSuccess, nil
}

// healHP restores HP up to the current maximum
func healHP(p *player.Player, n int) {
	p.HP = min(p.MaxHP(), p.HP+max(0, n))
}

// restoreMP restores MP up to the current maximum
func restoreMP(p *player.Player, n int) {
	p.MP = min(p.MaxMP(), p.MP+max(0, n))
}

// restoreBody undoes stat drain and rot
func restoreBody(p *player.Player) {
	p.Stats.Str = max(p.Stats.Str, p.Stats.MaxStr)
	p.Stats.Int = max(p.Stats.Int, p.Stats.MaxInt)
	p.Stats.Dex = max(p.Stats.Dex, p.Stats.MaxDex)
	p.HPRot = 0
}
