package ability

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

type flyExecutor struct {
	engine *Engine
}

func newFlyExecutor(e *Engine) Handler {
	return &flyExecutor{engine: e}
}

func (f *flyExecutor) Key() abilities.ID {
	return abilities.Fly
}

func (f *flyExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	p := in.Player
	if p.RacialPermanentFlight() {
		p.Attr.PermFlight = true
	} else {
		power := p.XL * 4
		increaseDuration(p, shared.DurFlight, 25+in.Roller.Random2(power)+in.Roller.Random2(power), 100)
		p.Attr.FlightUncancellable = true
	}
	f.engine.floatPlayer(p)

	if p.Species == shared.SpeciesTengu {
		f.engine.say("You feel very comfortable in the air.")
	}
	return OutcomeSuccess, nil
}

type evokeFlightExecutor struct {
	engine *Engine
}

func newEvokeFlightExecutor(e *Engine) Handler {
	return &evokeFlightExecutor{engine: e}
}

func (f *evokeFlightExecutor) Key() abilities.ID {
	return abilities.EvokeFlight
}

func (f *evokeFlightExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	p := in.Player
	if p.Form.ForbidsFlight() {
		panic("evoked flight in a form that forbids it")
	}

	standing := !p.Airborne()
	if p.Gear.FlyingArmour {
		p.Attr.PermFlight = true
		if standing {
			f.engine.floatPlayer(p)
		} else {
			f.engine.say("You feel more buoyant.")
		}
		return OutcomeSuccess, nil
	}

	power := p.Skill(shared.SkillEvocations, 2) + 30
	buoyancy := "more"
	if standing {
		buoyancy = "very"
	}
	f.engine.say(fmt.Sprintf("You feel %s buoyant.", buoyancy))
	increaseDuration(p, shared.DurFlight, 25+in.Roller.Random2(power), 100)
	if standing {
		f.engine.floatPlayer(p)
	}
	return OutcomeSuccess, nil
}

type stopFlyingExecutor struct {
	engine *Engine
}

func newStopFlyingExecutor(e *Engine) Handler {
	return &stopFlyingExecutor{engine: e}
}

func (f *stopFlyingExecutor) Key() abilities.ID {
	return abilities.StopFlying
}

func (f *stopFlyingExecutor) Execute(_ context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	p := in.Player
	p.SetDuration(shared.DurFlight, 0)
	p.Attr.PermFlight = false
	p.Attr.FlightUncancellable = false
	if !p.Airborne() {
		f.engine.say("You float gracefully downwards.")
	}
	return OutcomeSuccess, nil
}

func (e *Engine) floatPlayer(p *player.Player) {
	if p.Species == shared.SpeciesTengu {
		e.say("You swoop lightly up into the air.")
		return
	}
	e.say("You fly up into the air.")
}
