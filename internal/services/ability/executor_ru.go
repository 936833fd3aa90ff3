package ability

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// sacrificeMutations are the sacrifices this service can apply itself;
// the rest are handed to the Effector
var sacrificeMutations = map[abilities.ID]shared.Mutation{
	abilities.RuSacrificeArtifice: shared.MutNoArtifice,
	abilities.RuSacrificeLove:     shared.MutNoLove,
}

func registerRuHandlers(e *Engine) {
	for id := abilities.RuSacrificePurity; id <= abilities.RuSacrificeResistance; id++ {
		e.RegisterHandler(newSacrificeExecutor(e, id))
	}

	e.handle(abilities.RuRejectSacrifices, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}
		if !e.prompter.YesNo("Do you really want to reject the sacrifices Ru is offering?", false) {
			e.say(msgOK)
			return OutcomeAbort, nil
		}
		in.Player.RuSacrifices = nil
		in.Player.SacrificePiety = nil
		e.say("Ru will take longer to evaluate your readiness.")
		return OutcomeSuccess, nil
	})

	e.handle(abilities.RuDrawOutPower, func(_ context.Context, in *ExecuteInput) (Outcome, error) {
		if in.Fail {
			return OutcomeFail, nil
		}

		p := in.Player
		if p.Duration(shared.DurExhausted) > 0 {
			e.say("You're too exhausted to draw out your power.")
			return OutcomeAbort, nil
		}
		if !needsPower(p) {
			e.say("You have no need to draw out power.")
			return OutcomeAbort, nil
		}

		e.drawOutPower(p, in)
		increaseDuration(p, shared.DurExhausted, 12+in.Roller.Random2(5), 0)
		return OutcomeSuccess, nil
	})

	exhausting := func(id abilities.ID, tooTired string, okOnFizzle bool, base, spread int) {
		e.handle(id, func(ctx context.Context, in *ExecuteInput) (Outcome, error) {
			if in.Fail {
				return OutcomeFail, nil
			}

			p := in.Player
			if p.Duration(shared.DurExhausted) > 0 {
				e.say(tooTired)
				return OutcomeAbort, nil
			}

			ok, err := e.apply(ctx, &Effect{Ability: id, Power: p.Piety})
			if err != nil {
				return OutcomeNone, err
			}
			if !ok {
				if okOnFizzle {
					e.say(msgOK)
				}
				return OutcomeAbort, nil
			}

			increaseDuration(p, shared.DurExhausted, base+in.Roller.Random2(spread), 0)
			return OutcomeSuccess, nil
		})
	}
	exhausting(abilities.RuPowerLeap, "You're too exhausted to power leap.", true, 18, 8)
	exhausting(abilities.RuApocalypse, "You're too exhausted to unleash your apocalyptic power.", false, 30, 20)
}

// needsPower reports whether drawing out power would fix anything
func needsPower(p *player.Player) bool {
	return p.HP < p.MaxHP() ||
		p.MP < p.MaxMP() ||
		p.Duration(shared.DurConfusion) > 0 ||
		p.Duration(shared.DurSlow) > 0 ||
		p.Duration(shared.DurPetrifying) > 0
}

// drawOutPower restores a slice of HP and MP scaled by piety and clears
// the statuses that hold the player back
func (e *Engine) drawOutPower(p *player.Player, in *ExecuteInput) {
	for _, d := range []shared.Duration{shared.DurConfusion, shared.DurSlow, shared.DurPetrifying} {
		p.SetDuration(d, 0)
	}

	hp := in.Roller.DivRandRound(p.MaxHP()*(p.Piety+in.Roller.Random2(p.Piety+1)), 400)
	mp := in.Roller.DivRandRound(p.MaxMP()*(p.Piety+in.Roller.Random2(p.Piety+1)), 400)
	healHP(p, max(1, hp))
	restoreMP(p, max(1, mp))
	e.say("You feel a surge of power rushing into your body.")
}

// sacrificeExecutor gives up one of the sacrifices Ru is offering
type sacrificeExecutor struct {
	engine *Engine
	id     abilities.ID
}

func newSacrificeExecutor(e *Engine, id abilities.ID) Handler {
	return &sacrificeExecutor{engine: e, id: id}
}

func (s *sacrificeExecutor) Key() abilities.ID {
	return s.id
}

func (s *sacrificeExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	if in.Fail {
		return OutcomeFail, nil
	}

	e := s.engine
	p := in.Player
	what := strings.ToLower(abilities.Name(s.id))
	if !e.prompter.YesNo(fmt.Sprintf("Do you really want to %s?", what), false) {
		e.say(msgOK)
		return OutcomeAbort, nil
	}

	switch mut, ok := sacrificeMutations[s.id]; {
	case ok:
		if p.Mutations == nil {
			p.Mutations = make(map[shared.Mutation]int)
		}
		p.Mutations[mut] = 1
	case s.id == abilities.RuSacrificeExperience:
		p.XL -= ruSacrificeXPLevels
	default:
		if _, err := e.apply(ctx, &Effect{Ability: s.id}); err != nil {
			return OutcomeNone, err
		}
	}

	// a new set is offered once piety builds again
	p.RuSacrifices = nil
	p.SacrificePiety = nil
	e.say(fmt.Sprintf("%s is pleased with your sacrifice.", shared.GodRu))
	return OutcomeSuccess, nil
}
