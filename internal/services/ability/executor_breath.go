package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

var breathAbilities = []abilities.ID{
	abilities.SpitPoison,
	abilities.BreatheFire,
	abilities.BreatheFrost,
	abilities.BreathePoison,
	abilities.BreatheMephitic,
	abilities.BreatheLightning,
	abilities.BreathePower,
	abilities.BreatheStickyFlame,
	abilities.BreatheSteam,
	abilities.SpitAcid,
}

// spitPoisonRange follows venom bolt
const spitPoisonRange = 6

// breathRanges follow the matching monster breaths
var breathRanges = map[abilities.ID]int{
	abilities.BreatheFire:        6,
	abilities.BreatheFrost:       6,
	abilities.BreatheMephitic:    7,
	abilities.BreatheLightning:   8,
	abilities.SpitAcid:           8,
	abilities.BreathePower:       8,
	abilities.BreatheStickyFlame: 1,
	abilities.BreatheSteam:       7,
	abilities.BreathePoison:      7,
}

var breathMessages = map[abilities.ID]string{
	abilities.BreatheFrost:       "You exhale a wave of freezing cold.",
	abilities.BreathePoison:      "You exhale a blast of poison gas.",
	abilities.BreatheLightning:   "You breathe a wild blast of lightning!",
	abilities.SpitAcid:           "You spit a glob of acid.",
	abilities.BreathePower:       "You breathe a bolt of dispelling energy.",
	abilities.BreatheStickyFlame: "You spit a glob of burning liquid.",
	abilities.BreatheSteam:       "You exhale a blast of scalding steam.",
	abilities.BreatheMephitic:    "You exhale a blast of noxious fumes.",
}

// BreathRange is the reach of a breath weapon. Asking for anything else
// is a programming error.
func BreathRange(id abilities.ID) int {
	rng, ok := breathRanges[id]
	if !ok {
		panic(fmt.Sprintf("bad breath type %s", abilities.Name(id)))
	}
	return rng
}

// breathExecutor handles every breath and spit weapon
type breathExecutor struct {
	engine *Engine
	id     abilities.ID
}

func newBreathExecutor(e *Engine, id abilities.ID) Handler {
	return &breathExecutor{engine: e, id: id}
}

func (b *breathExecutor) Key() abilities.ID {
	return b.id
}

func (b *breathExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	switch b.id {
	case abilities.SpitPoison:
		return b.spitPoison(ctx, in)
	case abilities.BreatheLightning:
		// not aimed
		return b.breathe(ctx, in, nil)
	}

	target, err := b.engine.chooseTarget(ctx, TargetRequest{
		Ability:   b.id,
		Range:     BreathRange(b.id),
		Hostile:   true,
		NeedsPath: true,
	})
	if err != nil {
		return OutcomeNone, err
	}
	if target == nil {
		return OutcomeAbort, nil
	}

	return b.breathe(ctx, in, target)
}

func (b *breathExecutor) spitPoison(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	p := in.Player
	power := p.XL + p.MutationLevel(shared.MutSpitPoison)*5

	target, err := b.engine.chooseTarget(ctx, TargetRequest{
		Ability:   b.id,
		Range:     spitPoisonRange,
		Hostile:   true,
		NeedsPath: true,
	})
	if err != nil {
		return OutcomeNone, err
	}
	if target == nil || !b.engine.traceConfirmed(in, target, spitPoisonRange) {
		return OutcomeAbort, nil
	}

	if in.Fail {
		return OutcomeFail, nil
	}

	if _, err := b.engine.apply(ctx, &Effect{Ability: b.id, Power: power, Target: target, Range: spitPoisonRange}); err != nil {
		return OutcomeNone, err
	}
	setDuration(p, shared.DurBreathWeapon, 3+in.Roller.Random2(5))
	return OutcomeSuccess, nil
}

func (b *breathExecutor) breathe(ctx context.Context, in *ExecuteInput, target *Target) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	p := in.Player
	power, msg := breathPower(p, b.id)
	b.engine.say(msg)

	ok, err := b.engine.apply(ctx, &Effect{Ability: b.id, Power: power, Target: target, Range: BreathRange(b.id)})
	if err != nil {
		return OutcomeNone, err
	}
	// sticky flame and lightning go off regardless of the beam
	if !ok && b.id != abilities.BreatheStickyFlame && b.id != abilities.BreatheLightning {
		return OutcomeAbort, nil
	}

	increaseDuration(p, shared.DurBreathWeapon,
		3+in.Roller.Random2(10)+in.Roller.Random2(30-p.XL), 0)
	if b.id == abilities.BreatheSteam || b.id == abilities.SpitAcid {
		p.SetDuration(shared.DurBreathWeapon, p.Duration(shared.DurBreathWeapon)/2)
	}

	return OutcomeSuccess, nil
}

// breathPower is the beam power and the line shown as it goes off.
// Dragon form doubles most breaths; fire gets a flat bonus instead.
func breathPower(p *player.Player, id abilities.ID) (int, string) {
	power := p.XL
	dragon := p.Form == shared.FormDragon

	switch id {
	case abilities.BreatheFire:
		if dragon {
			power += 12
		}
		msg := "You breathe a blast of fire."
		if power >= 15 {
			msg = "You breathe a blast of fire!"
		}
		return power, msg
	case abilities.BreatheLightning, abilities.BreathePoison:
		return power, breathMessages[id]
	}

	if dragon {
		power *= 2
	}
	return power, breathMessages[id]
}

// traceConfirmed fires a tracer at target and asks before hitting allies
func (e *Engine) traceConfirmed(in *ExecuteInput, target *Target, rng int) bool {
	bf := in.World.Battlefield(in.Player.View(nil))
	res := bf.Trace(spells.MagicDart, target.Pos, rng)
	if res.Friends == 0 {
		return true
	}

	if e.prompter.YesNo("You might hit your allies. Continue?", false) {
		return true
	}
	e.say(msgOK)
	return false
}
