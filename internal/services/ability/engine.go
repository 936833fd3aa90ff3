package ability

import (
	"context"
	"fmt"
	"regexp"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/events"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
	"github.com/KirkDiggler/crawl-talents/internal/uuid"
)

// Engine turns a chosen talent into an attempt: it checks the attempt is
// allowed, rolls for failure, runs the ability's handler and settles
// costs.
type Engine struct {
	resolver    *talent.Resolver
	world       world.World
	roller      dice.Roller
	messenger   Messenger
	prompter    Prompter
	targeter    Targeter
	progression Progression
	effector    Effector
	eventBus    *events.Bus
	ids         uuid.Generator
	registry    *HandlerRegistry
	confirm     []*regexp.Regexp
	sprint      bool
}

// EngineConfig holds the collaborators of an Engine
type EngineConfig struct {
	Resolver    *talent.Resolver
	Messenger   Messenger
	Prompter    Prompter
	Targeter    Targeter
	Effector    Effector
	Progression Progression
	Roller      dice.Roller
	EventBus    *events.Bus
	IDs         uuid.Generator
	// ConfirmActions ask "Really use <name>?" for matching abilities
	ConfirmActions []*regexp.Regexp
	Sprint         bool
}

// NewEngine creates an engine with every built-in handler registered
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		panic("engine config is required")
	}
	if cfg.Resolver == nil {
		panic("talent resolver is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}
	if cfg.Prompter == nil {
		panic("prompter is required")
	}
	if cfg.Targeter == nil {
		panic("targeter is required")
	}
	if cfg.Effector == nil {
		panic("effector is required")
	}

	e := &Engine{
		resolver:    cfg.Resolver,
		world:       cfg.Resolver.World(),
		roller:      cfg.Roller,
		messenger:   cfg.Messenger,
		prompter:    cfg.Prompter,
		targeter:    cfg.Targeter,
		progression: cfg.Progression,
		effector:    cfg.Effector,
		eventBus:    cfg.EventBus,
		ids:         cfg.IDs,
		registry:    NewHandlerRegistry(),
		confirm:     cfg.ConfirmActions,
		sprint:      cfg.Sprint,
	}

	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.progression == nil {
		e.progression = nopProgression{}
	}
	if e.eventBus == nil {
		e.eventBus = events.NewBus()
	}
	if e.ids == nil {
		e.ids = uuid.NewGoogleUUIDGenerator()
	}

	registerDefaultHandlers(e)
	return e
}

// RegisterHandler adds or replaces the handler for one ability
func (e *Engine) RegisterHandler(h Handler) {
	e.registry.Register(h)
}

// Handlers lists the abilities that have a handler
func (e *Engine) Handlers() []abilities.ID {
	return e.registry.List()
}

// EventBus is the bus activation events are emitted on
func (e *Engine) EventBus() *events.Bus {
	return e.eventBus
}

// CostsPaid is what a successful activation actually took
type CostsPaid struct {
	MP          int  `json:"mp"`
	HP          int  `json:"hp"`
	Food        int  `json:"food"`
	Piety       int  `json:"piety"`
	PermanentMP bool `json:"permanent_mp,omitempty"`
	PermanentHP bool `json:"permanent_hp,omitempty"`
}

// ActivationResult summarises one attempt
type ActivationResult struct {
	ActivationID string       `json:"activation_id"`
	Ability      abilities.ID `json:"ability"`
	Outcome      Outcome      `json:"outcome"`
	TurnUsed     bool         `json:"turn_used"`
	Paid         *CostsPaid   `json:"paid,omitempty"`
}

// Succeeded reports whether the ability took effect
func (r *ActivationResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// hungerExempt abilities skip every hunger check
var hungerExempt = map[abilities.ID]bool{
	abilities.RenounceReligion:     true,
	abilities.ConvertToBeogh:       true,
	abilities.StopFlying:           true,
	abilities.EvokeTurnVisible:     true,
	abilities.EndTransformation:    true,
	abilities.DelayedFireball:      true,
	abilities.StopSinging:          true,
	abilities.MummyRestoration:     true,
	abilities.TranBat:              true,
	abilities.AshenzariEndTransfer: true,
}

// ActivateTalent attempts to use tal. Checks that stop the attempt and
// cancelled prompts end in OutcomeAbort with no turn spent. Errors are
// reserved for collaborator failures.
func (e *Engine) ActivateTalent(ctx context.Context, p *player.Player, tal talent.Talent) (*ActivationResult, error) {
	if p == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	res := &ActivationResult{
		ActivationID: e.ids.New(),
		Ability:      tal.Which,
	}

	if !e.preflight(p, tal.Which) {
		return e.finish(p, res, OutcomeAbort)
	}

	hungerCheck := !hungerExempt[tal.Which]
	if hungerCheck && p.UndeadState(true) == shared.Alive && !p.Foodless() &&
		p.HungerState() <= shared.HungerStarving {
		e.say(msgTooHungry)
		return e.finish(p, res, OutcomeAbort)
	}

	def := abilities.Lookup(tal.Which)

	// mutation shenanigans can leave MP negative; only check real costs
	if def.MPCost > 0 {
		if ok, msg := p.EnoughMP(def.MPCost); !ok {
			e.say(msg)
			return e.finish(p, res, OutcomeAbort)
		}
	}

	if hp := def.HPCost.Cost(p.MaxHP()); hp > 0 {
		if ok, msg := p.EnoughHP(hp); !ok {
			e.say(msg)
			return e.finish(p, res, OutcomeAbort)
		}
	}

	if !e.CheckAbilityPossible(ctx, p, tal.Which, hungerCheck, false) {
		return e.finish(p, res, OutcomeAbort)
	}

	before := &events.BeforeActivationEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeBeforeActivation, Actor: p},
		ActivationID: res.ActivationID,
		Ability:      tal.Which,
		Fail:         tal.Fail,
	}
	if err := e.eventBus.Emit(before); err != nil {
		return nil, dnderr.Wrap(err, "failed to emit before activation event")
	}
	if before.IsCancelled() {
		logger.Debug("activation vetoed", "ability", def.Name, "activation", res.ActivationID)
		return e.finish(p, res, OutcomeAbort)
	}

	fail := e.roller.Random2Avg(100, 3) < tal.Fail

	handler, ok := e.registry.Get(tal.Which)
	if !ok {
		logger.Error("no handler for ability", "ability", def.Name, "id", int(tal.Which))
		panic(fmt.Sprintf("invalid ability %d", tal.Which))
	}

	outcome, err := handler.Execute(ctx, &ExecuteInput{
		Player: p,
		World:  e.world,
		Talent: tal,
		Fail:   fail,
		Roller: e.roller,
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to use %s", def.Name)
	}

	switch outcome {
	case OutcomeSuccess:
		if fail && !def.Flags.Has(abilities.FlagHostile) {
			logger.Error("handler ignored failure", "ability", def.Name)
			panic(fmt.Sprintf("%s succeeded despite failing", def.Name))
		}

		e.progression.Practise(def.ID)
		res.Paid = e.PayAbilityCosts(p, def)
		kind := ActionAbility
		if tal.IsInvocation {
			kind = ActionInvoke
		}
		e.progression.CountAction(kind, def.ID)

		if err := e.emitCostsPaid(p, res); err != nil {
			return nil, err
		}
		res.Outcome = OutcomeSuccess
		res.TurnUsed = p.TurnIsOver
		return res, e.emitAfter(p, res)

	case OutcomeFail:
		e.say(msgFailed)
		p.TurnIsOver = true
		res.Outcome = OutcomeFail
		res.TurnUsed = true
		return res, e.emitAfter(p, res)

	case OutcomeAbort:
		return e.finish(p, res, OutcomeAbort)

	default:
		logger.Error("weird ability outcome", "ability", def.Name, "outcome", int(outcome))
		panic("weird ability return type")
	}
}

// preflight runs the checks that come before hunger and costs: berserk,
// lethal terrain, stat safety and the berserk and flight blockers.
func (e *Engine) preflight(p *player.Player, id abilities.ID) bool {
	if p.Berserk() {
		e.say(msgTooBerserk)
		return false
	}

	switch id {
	case abilities.StopFlying:
		if e.world.TerrainHere().Dangerous() {
			e.say("Stopping flight right now would be fatal!")
			return false
		}
	case abilities.TranBat:
		if !e.checkFormStatSafety(p, shared.FormBat) {
			return false
		}
	case abilities.EndTransformation:
		if t := e.world.TerrainHere(); t.Dangerous() {
			verb := "drown"
			if t == world.TerrainLava {
				verb = "burn"
			}
			e.say(fmt.Sprintf("Turning back right now would cause you to %s!", verb))
			return false
		}
		if !e.checkFormStatSafety(p, shared.FormNone) {
			return false
		}
	}

	switch id {
	case abilities.EvokeBerserk, abilities.TrogBerserk:
		if msg := p.BerserkBlocker(); msg != "" {
			e.say(msg)
			return false
		}
	case abilities.EvokeFlight, abilities.TranBat, abilities.Fly:
		if msg := flightBlocker(p); msg != "" {
			e.say(msg)
			return false
		}
	}

	return true
}

// checkFormStatSafety asks before a form change that would zero a stat
func (e *Engine) checkFormStatSafety(p *player.Player, form shared.Form) bool {
	stat := p.FormStatRisk(form)
	if stat == "" {
		return true
	}

	verb := "Transforming"
	if form == shared.FormNone {
		verb = "Turning back"
	}
	if e.prompter.YesNo(fmt.Sprintf("%s will reduce your %s to zero. Continue?", verb, stat), false) {
		return true
	}
	e.say(msgOK)
	return false
}

// flightBlocker explains why the player cannot take off, "" if they can
func flightBlocker(p *player.Player) string {
	switch {
	case p.Form == shared.FormTree:
		return "Your roots keep you in place."
	case p.Form.ForbidsFlight():
		return "You can't fly in this form."
	case p.Duration(shared.DurLiquefying) > 0 && !p.Airborne():
		return "You can't fly while stuck in liquid ground."
	case p.Duration(shared.DurGraspingRoots) > 0:
		return "The grasping roots prevent you from becoming airborne."
	default:
		return ""
	}
}

// finish records an outcome that spent no turn
func (e *Engine) finish(p *player.Player, res *ActivationResult, outcome Outcome) (*ActivationResult, error) {
	p.TurnIsOver = false
	res.Outcome = outcome
	res.TurnUsed = false
	return res, e.emitAfter(p, res)
}

func (e *Engine) emitAfter(p *player.Player, res *ActivationResult) error {
	logger.Debug("ability activated",
		"ability", abilities.Name(res.Ability),
		"activation", res.ActivationID,
		"outcome", res.Outcome.String(),
		"turn_used", res.TurnUsed)

	err := e.eventBus.Emit(&events.AfterActivationEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeAfterActivation, Actor: p},
		ActivationID: res.ActivationID,
		Ability:      res.Ability,
		Outcome:      res.Outcome.String(),
		TurnUsed:     res.TurnUsed,
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to emit after activation event")
	}
	return nil
}

func (e *Engine) emitCostsPaid(p *player.Player, res *ActivationResult) error {
	err := e.eventBus.Emit(&events.CostsPaidEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeCostsPaid, Actor: p},
		ActivationID: res.ActivationID,
		Ability:      res.Ability,
		MP:           res.Paid.MP,
		HP:           res.Paid.HP,
		Food:         res.Paid.Food,
		Piety:        res.Paid.Piety,
		PermanentMP:  res.Paid.PermanentMP,
		PermanentHP:  res.Paid.PermanentHP,
	})
	if err != nil {
		return dnderr.Wrap(err, "failed to emit costs paid event")
	}
	return nil
}

func (e *Engine) say(msg string) {
	if msg != "" {
		e.messenger.Say(msg)
	}
}

type nopProgression struct{}

func (nopProgression) Practise(abilities.ID)                {}
func (nopProgression) CountAction(ActionKind, abilities.ID) {}
