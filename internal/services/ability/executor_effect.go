package ability

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// effectRule describes an ability whose whole job happens in the dungeon.
// The engine only checks failure, aims, works out power and reports.
type effectRule struct {
	id abilities.ID

	// aim, when set, asks for a target before the fail check
	aim *TargetRequest
	// selfMsg refuses a target on the player's own square
	selfMsg string
	// aimAfterFail asks for the target only once the fail check passed
	aimAfterFail bool

	power func(in *ExecuteInput) int

	// announce is said before the effect, success after it. A %s is
	// replaced by the player's god.
	announce string
	success  string
	// noEffect is said when the dungeon reports nothing happened
	noEffect string
	// mustWork turns "nothing happened" into an abort
	mustWork bool
	// neverFails skips the fail roll
	neverFails bool
}

func invocations(mult int) func(in *ExecuteInput) int {
	return func(in *ExecuteInput) int {
		return in.Player.Skill(shared.SkillInvocations, mult)
	}
}

var effectRules = []effectRule{
	{id: abilities.ZinVitalisation, announce: "You feel %s's divine power.", power: invocations(1)},
	{id: abilities.ZinSanctuary, announce: "You are surrounded by a sanctuary!"},

	{id: abilities.TSOCleansingFlame, power: func(in *ExecuteInput) int {
		return 10 + skillRdiv(in.Player, in.Roller, shared.SkillInvocations, 7, 6)
	}},
	{id: abilities.TSOSummonDivineWarrior, power: invocations(4)},
	{id: abilities.TSOBlessWeapon, announce: "%s will bless one of your weapons.", mustWork: true},

	{id: abilities.KikuReceiveCorpses, power: func(in *ExecuteInput) int {
		return in.Player.Skill(shared.SkillNecromancy, 4)
	}},
	{id: abilities.KikuTorment, success: "%s torments the living!",
		noEffect: "There are no corpses to sacrifice!", mustWork: true},
	{id: abilities.KikuGiftNecronomicon, mustWork: true},
	{id: abilities.KikuBlessWeapon, announce: "%s will bloody one of your weapons with pain.", mustWork: true},

	{id: abilities.YredAnimateRemains, announce: "You attempt to give life to the dead...",
		noEffect: "There are no remains here to animate!", mustWork: true},
	{id: abilities.YredAnimateDead, announce: "You call on the dead to rise...", power: func(in *ExecuteInput) int {
		return skillRdiv(in.Player, in.Roller, shared.SkillInvocations, 1, 1) + 1
	}},
	{id: abilities.YredDrainLife, power: func(in *ExecuteInput) int {
		return skillRdiv(in.Player, in.Roller, shared.SkillInvocations, 1, 1)
	}},
	{
		id:       abilities.YredEnslaveSoul,
		aim:      &TargetRequest{Range: spells.LOSRadius, Hostile: true},
		selfMsg:  "Your soul already belongs to Yredelemnul.",
		power:    invocations(4),
		noEffect: "You see nothing there you can enslave the soul of!",
		mustWork: true,
	},

	{id: abilities.TrogBurnSpellbooks, mustWork: true},

	{
		id:  abilities.ElyvilonHealOther,
		aim: &TargetRequest{Range: spells.LOSRadius, Prompt: "Heal whom?"},
		power: func(in *ExecuteInput) int {
			return min(maxHealingPower, 10+skillRdiv(in.Player, in.Roller, shared.SkillInvocations, 1, 3))
		},
		selfMsg:  "Try another prayer to heal yourself.",
		mustWork: true,
	},

	{id: abilities.LugonuAbyssExit},
	{id: abilities.LugonuBendSpace, announce: "Space bends around you!"},
	{id: abilities.LugonuCorrupt, power: func(in *ExecuteInput) int {
		return 300 + in.Player.Skill(shared.SkillInvocations, 15)
	}, mustWork: true},
	{id: abilities.LugonuBlessWeapon,
		announce: "%s will brand one of your weapons with the corruption of the Abyss.", mustWork: true},

	{id: abilities.NemelexTripleDraw, mustWork: true},
	{id: abilities.NemelexDealFour, mustWork: true},
	{id: abilities.NemelexStackFive, mustWork: true},

	{
		id:           abilities.BeoghSmiting,
		aim:          &TargetRequest{Range: spells.LOSRadius, Hostile: true, Prompt: "Smite whom?"},
		aimAfterFail: true,
		power: func(in *ExecuteInput) int {
			return 12 + in.Player.Skill(shared.SkillInvocations, 6)
		},
		mustWork: true,
	},
	{id: abilities.BeoghGiftItem, neverFails: true, mustWork: true},

	{id: abilities.JiyvaCallJelly, mustWork: true},
	{id: abilities.JiyvaJellyParalyse},
	{id: abilities.JiyvaSlimify, announce: "A thick mucus forms on your weapon.", power: func(in *ExecuteInput) int {
		return in.Roller.Random2Avg(in.Player.Piety/4, 2) + 3
	}},
	{id: abilities.JiyvaCureBadMutation},

	{id: abilities.FedhasSunlight, aim: &TargetRequest{Range: spells.LOSRadius}},
	{id: abilities.FedhasPlantRing, mustWork: true},
	{id: abilities.FedhasSpawnSpores},
	{id: abilities.FedhasRain, noEffect: msgNothingHappens, mustWork: true},
	{id: abilities.FedhasEvolution, aim: &TargetRequest{Range: spells.LOSRadius}, mustWork: true},

	{id: abilities.CheibriadosTimeStep, power: func(in *ExecuteInput) int {
		return in.Player.Skill(shared.SkillInvocations, 10) * in.Player.Piety / 100
	}},
	{id: abilities.CheibriadosTimeBend, power: func(in *ExecuteInput) int {
		return 16 + in.Player.Skill(shared.SkillInvocations, 8)
	}},
	{id: abilities.CheibriadosDistortion},
	{id: abilities.CheibriadosSlouch, mustWork: true},

	{id: abilities.AshenzariScrying, announce: "You gain astral sight.", power: func(in *ExecuteInput) int {
		return 100 + in.Roller.Random2Avg(in.Player.Piety*2, 2)
	}},

	{id: abilities.DithmenosShadowStep, noEffect: msgOK, mustWork: true},

	{id: abilities.GozagPotionPetition},
	{id: abilities.GozagCallMerchant},
	{id: abilities.GozagBribeBranch, mustWork: true},

	{id: abilities.QazlalUpheaval, aim: &TargetRequest{Range: spells.LOSRadius, Hostile: true}},
	{id: abilities.QazlalElementalForce},
	{id: abilities.QazlalDisasterArea, mustWork: true},
}

func registerEffectHandlers(e *Engine) {
	for i := range effectRules {
		e.RegisterHandler(&effectExecutor{engine: e, rule: &effectRules[i]})
	}
}

// effectExecutor runs one effectRule
type effectExecutor struct {
	engine *Engine
	rule   *effectRule
}

func (x *effectExecutor) Key() abilities.ID {
	return x.rule.id
}

func (x *effectExecutor) Execute(ctx context.Context, in *ExecuteInput) (Outcome, error) {
	r := x.rule
	failed := in.Fail && !r.neverFails

	var target *Target
	if r.aim != nil && !r.aimAfterFail {
		var outcome Outcome
		var err error
		if target, outcome, err = x.aim(ctx); target == nil {
			return outcome, err
		}
	}

	if failed {
		return OutcomeFail, nil
	}

	if r.aim != nil && r.aimAfterFail {
		var outcome Outcome
		var err error
		if target, outcome, err = x.aim(ctx); target == nil {
			return outcome, err
		}
	}

	p := in.Player
	x.say(r.announce, p.Religion)

	eff := &Effect{Ability: r.id, Target: target}
	if r.power != nil {
		eff.Power = r.power(in)
	}
	if r.aim != nil {
		eff.Range = r.aim.Range
		eff.Hostile = r.aim.Hostile
	}

	ok, err := x.engine.apply(ctx, eff)
	if err != nil {
		return OutcomeNone, err
	}
	if !ok {
		x.say(r.noEffect, p.Religion)
		if r.mustWork {
			return OutcomeAbort, nil
		}
		return OutcomeSuccess, nil
	}

	x.say(r.success, p.Religion)
	return OutcomeSuccess, nil
}

// aim returns the chosen target, or nil with the outcome to return
func (x *effectExecutor) aim(ctx context.Context) (*Target, Outcome, error) {
	req := *x.rule.aim
	req.Ability = x.rule.id

	target, err := x.engine.chooseTarget(ctx, req)
	if err != nil {
		return nil, OutcomeNone, err
	}
	if target == nil {
		return nil, OutcomeAbort, nil
	}
	if x.rule.selfMsg != "" && target.Self() {
		x.engine.say(x.rule.selfMsg)
		return nil, OutcomeAbort, nil
	}
	return target, OutcomeNone, nil
}

func (x *effectExecutor) say(msg string, god shared.God) {
	if strings.Contains(msg, "%s") {
		msg = fmt.Sprintf(msg, god)
	}
	x.engine.say(msg)
}
