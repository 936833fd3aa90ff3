package ability_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	mockdice "github.com/KirkDiggler/crawl-talents/internal/dice/mock"
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/events"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
	mockability "github.com/KirkDiggler/crawl-talents/internal/services/ability/mock"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
	"github.com/KirkDiggler/crawl-talents/internal/testutils"
	"github.com/KirkDiggler/crawl-talents/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// harness wires an engine to mocks. The roller falls back to zero, so
// every fail roll is 0 and every random cost is its base.
type harness struct {
	engine      *ability.Engine
	resolver    *talent.Resolver
	world       *world.Snapshot
	roller      *mockdice.ManualMockRoller
	prompter    *mockability.MockPrompter
	targeter    *mockability.MockTargeter
	effector    *mockability.MockEffector
	progression *mockability.MockProgression
	bus         *events.Bus
	said        []string
}

func newHarness(t *testing.T, opts ...func(*ability.EngineConfig)) *harness {
	ctrl := gomock.NewController(t)

	h := &harness{
		world:       &world.Snapshot{},
		roller:      mockdice.NewManualMockRoller(),
		prompter:    mockability.NewMockPrompter(ctrl),
		targeter:    mockability.NewMockTargeter(ctrl),
		effector:    mockability.NewMockEffector(ctrl),
		progression: mockability.NewMockProgression(ctrl),
		bus:         events.NewBus(),
	}

	messenger := mockability.NewMockMessenger(ctrl)
	messenger.EXPECT().Say(gomock.Any()).Do(func(msg string) {
		h.said = append(h.said, msg)
	}).AnyTimes()

	h.resolver = talent.NewResolver(&talent.ResolverConfig{World: h.world})
	cfg := &ability.EngineConfig{
		Resolver:    h.resolver,
		Messenger:   messenger,
		Prompter:    h.prompter,
		Targeter:    h.targeter,
		Effector:    h.effector,
		Progression: h.progression,
		Roller:      h.roller,
		EventBus:    h.bus,
		IDs:         uuid.NewSequenceGenerator("act"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	h.engine = ability.NewEngine(cfg)
	return h
}

func (h *harness) expectPractised(id abilities.ID, kind ability.ActionKind) {
	h.progression.EXPECT().Practise(id)
	h.progression.EXPECT().CountAction(kind, id)
}

func invocation(id abilities.ID, fail int) talent.Talent {
	return talent.Talent{Which: id, Fail: fail, IsInvocation: true}
}

// listener records events and optionally vetoes them
type listener struct {
	id     string
	veto   bool
	events []events.Event
}

func (l *listener) HandleEvent(e events.Event) error {
	l.events = append(l.events, e)
	if l.veto {
		e.Cancel()
	}
	return nil
}

func (l *listener) Priority() int { return events.PriorityDefault }
func (l *listener) ID() string    { return l.id }

// stubHandler stands in for a built-in executor
type stubHandler struct {
	id      abilities.ID
	outcome ability.Outcome
	err     error
	calls   int
}

func (s *stubHandler) Key() abilities.ID { return s.id }

func (s *stubHandler) Execute(context.Context, *ability.ExecuteInput) (ability.Outcome, error) {
	s.calls++
	return s.outcome, s.err
}

func TestNewEngine_RequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := talent.NewResolver(&talent.ResolverConfig{World: &world.Snapshot{}})

	full := func() *ability.EngineConfig {
		return &ability.EngineConfig{
			Resolver:  resolver,
			Messenger: mockability.NewMockMessenger(ctrl),
			Prompter:  mockability.NewMockPrompter(ctrl),
			Targeter:  mockability.NewMockTargeter(ctrl),
			Effector:  mockability.NewMockEffector(ctrl),
		}
	}

	tests := []struct {
		name   string
		modify func(cfg *ability.EngineConfig)
	}{
		{name: "resolver", modify: func(cfg *ability.EngineConfig) { cfg.Resolver = nil }},
		{name: "messenger", modify: func(cfg *ability.EngineConfig) { cfg.Messenger = nil }},
		{name: "prompter", modify: func(cfg *ability.EngineConfig) { cfg.Prompter = nil }},
		{name: "targeter", modify: func(cfg *ability.EngineConfig) { cfg.Targeter = nil }},
		{name: "effector", modify: func(cfg *ability.EngineConfig) { cfg.Effector = nil }},
	}

	assert.Panics(t, func() { ability.NewEngine(nil) })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full()
			tt.modify(cfg)
			assert.Panics(t, func() { ability.NewEngine(cfg) })
		})
	}

	e := ability.NewEngine(full())
	assert.NotNil(t, e.EventBus())
	assert.Contains(t, e.Handlers(), abilities.TrogBerserk)
}

func TestActivate_NilPlayer(t *testing.T) {
	h := newHarness(t)

	_, err := h.engine.ActivateTalent(context.Background(), nil, invocation(abilities.TrogBerserk, 0))
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestActivate_Berserk(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
	hunger := p.Hunger
	h.expectPractised(abilities.TrogBerserk, ability.ActionInvoke)

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
	require.NoError(t, err)

	assert.Equal(t, "act-1", res.ActivationID)
	assert.True(t, res.Succeeded())
	assert.True(t, res.TurnUsed)
	require.NotNil(t, res.Paid)
	assert.Equal(t, 200, res.Paid.Food)
	assert.Equal(t, hunger-200, p.Hunger)
	assert.Equal(t, 10*shared.BaselineDelay, p.Duration(shared.DurBerserk))
	assert.Contains(t, h.said, "A red film seems to cover your vision as you go berserk!")
}

func TestActivate_PaysMPAndPiety(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodShiningOne, 100)
	h.expectPractised(abilities.TSODivineShield, ability.ActionInvoke)

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TSODivineShield, 0))
	require.NoError(t, err)

	require.True(t, res.Succeeded())
	assert.Equal(t, &ability.CostsPaid{MP: 3, Food: 50, Piety: 2}, res.Paid)
	assert.Equal(t, 9, p.MP)
	assert.Equal(t, 98, p.Piety)
	// 15 turns plus invocations 10 / 5
	assert.Equal(t, 17*shared.BaselineDelay, p.Duration(shared.DurDivineShield))
	assert.Contains(t, h.said, "A divine shield forms around you!")
}

func TestActivate_PermanentMP(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestPlayer("p1", "owner", "Tester")
	h.expectPractised(abilities.Recharging, ability.ActionAbility)
	h.effector.EXPECT().Apply(gomock.Any(), &ability.Effect{Ability: abilities.Recharging}).Return(true, nil)

	res, err := h.engine.ActivateTalent(context.Background(), p, talent.Talent{Which: abilities.Recharging})
	require.NoError(t, err)

	require.True(t, res.Succeeded())
	assert.True(t, res.Paid.PermanentMP)
	assert.Equal(t, 11, p.MaxMP())
	assert.Equal(t, 11, p.MP)
}

func TestActivate_Fail(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
	hunger := p.Hunger

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 50))
	require.NoError(t, err)

	assert.Equal(t, ability.OutcomeFail, res.Outcome)
	assert.True(t, res.TurnUsed)
	assert.True(t, p.TurnIsOver)
	assert.Nil(t, res.Paid)
	assert.Equal(t, hunger, p.Hunger)
	assert.False(t, p.Berserk())
	assert.Equal(t, []string{"You fail to use your ability."}, h.said)
}

func TestActivate_Aborts(t *testing.T) {
	tests := []struct {
		name     string
		god      shared.God
		ability  abilities.ID
		setup    func(p *player.Player)
		expected string
	}{
		{
			name:     "berserk",
			god:      shared.GodTrog,
			ability:  abilities.TrogBerserk,
			setup:    func(p *player.Player) { p.SetDuration(shared.DurBerserk, 50) },
			expected: "You are too berserk!",
		},
		{
			name:     "starving",
			god:      shared.GodTrog,
			ability:  abilities.TrogBerserk,
			setup:    func(p *player.Player) { p.Hunger = 500 },
			expected: "You're too hungry.",
		},
		{
			name:     "food cost would starve",
			god:      shared.GodElyvilon,
			ability:  abilities.ElyvilonDivineVigour,
			setup:    func(p *player.Player) { p.Hunger = 1100 },
			expected: "You're too hungry.",
		},
		{
			name:     "not enough magic",
			god:      shared.GodShiningOne,
			ability:  abilities.TSODivineShield,
			setup:    func(p *player.Player) { p.MP = 1 },
			expected: "You don't have enough magic at the moment.",
		},
		{
			name:     "not enough health",
			ability:  abilities.Blink,
			setup:    func(p *player.Player) { p.HP = 3 },
			expected: "You don't have enough health at the moment.",
		},
		{
			name:     "confused",
			god:      shared.GodTrog,
			ability:  abilities.TrogBerserk,
			setup:    func(p *player.Player) { p.SetDuration(shared.DurConfusion, 50) },
			expected: "You are too confused!",
		},
		{
			name:     "breath recharging",
			ability:  abilities.BreatheFire,
			setup:    func(p *player.Player) { p.SetDuration(shared.DurBreathWeapon, 30) },
			expected: "You can't do that yet.",
		},
		{
			name:    "innate magic too low",
			ability: abilities.Recharging,
			setup: func(p *player.Player) {
				p.BaseMaxMP = 0
				p.Gear.MPBonus = 5
				p.MP = 5
			},
			expected: "You don't have enough innate magic capacity to sacrifice.",
		},
		{
			name:     "nothing to donate",
			god:      shared.GodZin,
			ability:  abilities.ZinDonateGold,
			setup:    func(p *player.Player) { p.Gold = 0 },
			expected: "You have nothing to donate!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			p := testutils.CreateTestWorshipper("p1", tt.god, 100)
			tt.setup(p)
			before := p.Clone()
			h.roller.SetRolls([]int{0, 0, 0})

			res, err := h.engine.ActivateTalent(context.Background(), p, invocation(tt.ability, 0))
			require.NoError(t, err)

			assert.Equal(t, ability.OutcomeAbort, res.Outcome)
			assert.False(t, res.TurnUsed)
			assert.Nil(t, res.Paid)
			assert.Equal(t, []string{tt.expected}, h.said)
			assert.Equal(t, before.MP, p.MP)
			assert.Equal(t, before.Piety, p.Piety)
			assert.Zero(t, h.roller.Used())
		})
	}
}

func TestActivate_HostileServantOnFailure(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodMakhleb, 100)
	h.expectPractised(abilities.MakhlebGreaterServant, ability.ActionInvoke)
	h.effector.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, eff *ability.Effect) (bool, error) {
			assert.Equal(t, abilities.MakhlebGreaterServant, eff.Ability)
			assert.True(t, eff.Hostile)
			assert.NotEmpty(t, eff.Variant)
			return true, nil
		})

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.MakhlebGreaterServant, 50))
	require.NoError(t, err)

	assert.True(t, res.Succeeded())
	assert.Equal(t, 50, p.HP)
	assert.Equal(t, 95, p.Piety)
}

func TestActivate_SprintPiety(t *testing.T) {
	tests := []struct {
		name   string
		sprint bool
		piety  int
	}{
		{name: "normal", sprint: false, piety: 5},
		{name: "sprint", sprint: true, piety: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(cfg *ability.EngineConfig) { cfg.Sprint = tt.sprint })
			p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
			h.expectPractised(abilities.TrogBrothersInArms, ability.ActionInvoke)
			h.effector.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(true, nil)

			res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBrothersInArms, 0))
			require.NoError(t, err)

			assert.Equal(t, tt.piety, res.Paid.Piety)
			assert.Equal(t, 100-tt.piety, p.Piety)
		})
	}
}

func TestActivate_ConfirmAction(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		outcome ability.Outcome
	}{
		{name: "declined", answer: false, outcome: ability.OutcomeAbort},
		{name: "accepted", answer: true, outcome: ability.OutcomeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(cfg *ability.EngineConfig) {
				cfg.ConfirmActions = []*regexp.Regexp{regexp.MustCompile("^Berserk$")}
			})
			p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
			h.prompter.EXPECT().YesNo("Really use Berserk?", false).Return(tt.answer)
			if tt.answer {
				h.expectPractised(abilities.TrogBerserk, ability.ActionInvoke)
			}

			res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
			require.NoError(t, err)

			assert.Equal(t, tt.outcome, res.Outcome)
			if !tt.answer {
				assert.Equal(t, []string{"Okay, then."}, h.said)
			}
		})
	}
}

func TestCheckAbilityPossible_QuietStillConfirms(t *testing.T) {
	h := newHarness(t, func(cfg *ability.EngineConfig) {
		cfg.ConfirmActions = []*regexp.Regexp{regexp.MustCompile("^Berserk$")}
	})
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
	gomock.InOrder(
		h.prompter.EXPECT().YesNo("Really use Berserk?", false).Return(false),
		h.prompter.EXPECT().YesNo("Really use Berserk?", false).Return(true),
	)

	assert.False(t, h.engine.CheckAbilityPossible(context.Background(), p, abilities.TrogBerserk, true, true))
	assert.True(t, h.engine.CheckAbilityPossible(context.Background(), p, abilities.TrogBerserk, true, true))
	assert.Equal(t, []string{"Okay, then."}, h.said)
}

func TestActivate_Events(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
	h.expectPractised(abilities.TrogBerserk, ability.ActionInvoke)

	before := &listener{id: "before"}
	paid := &listener{id: "paid"}
	after := &listener{id: "after"}
	h.bus.Subscribe(events.EventTypeBeforeActivation, before)
	h.bus.Subscribe(events.EventTypeCostsPaid, paid)
	h.bus.Subscribe(events.EventTypeAfterActivation, after)

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
	require.NoError(t, err)

	require.Len(t, before.events, 1)
	require.Len(t, paid.events, 1)
	require.Len(t, after.events, 1)

	costs, ok := paid.events[0].(*events.CostsPaidEvent)
	require.True(t, ok)
	assert.Equal(t, res.ActivationID, costs.ActivationID)
	assert.Equal(t, 200, costs.Food)
	assert.Same(t, p, costs.GetActor())

	done, ok := after.events[0].(*events.AfterActivationEvent)
	require.True(t, ok)
	assert.Equal(t, "success", done.Outcome)
	assert.True(t, done.TurnUsed)
}

func TestActivate_VetoedBeforeActivation(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)

	stub := &stubHandler{id: abilities.TrogBerserk, outcome: ability.OutcomeSuccess}
	h.engine.RegisterHandler(stub)
	h.roller.SetRolls([]int{0, 0, 0})

	after := &listener{id: "after"}
	h.bus.Subscribe(events.EventTypeBeforeActivation, &listener{id: "veto", veto: true})
	h.bus.Subscribe(events.EventTypeAfterActivation, after)

	res, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
	require.NoError(t, err)

	assert.Equal(t, ability.OutcomeAbort, res.Outcome)
	assert.Zero(t, stub.calls)
	assert.Zero(t, h.roller.Used())
	require.Len(t, after.events, 1)
	assert.Equal(t, "abort", after.events[0].(*events.AfterActivationEvent).Outcome)
}

func TestActivate_HandlerError(t *testing.T) {
	h := newHarness(t)
	p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
	h.engine.RegisterHandler(&stubHandler{id: abilities.TrogBerserk, err: errors.New("boom")})

	_, err := h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to use Berserk")
}

func TestActivate_Panics(t *testing.T) {
	t.Run("no handler", func(t *testing.T) {
		h := newHarness(t)
		p := testutils.CreateTestPlayer("p1", "owner", "Tester")

		assert.PanicsWithValue(t, "invalid ability 0", func() {
			_, _ = h.engine.ActivateTalent(context.Background(), p, talent.Talent{Which: abilities.NonAbility})
		})
	})

	t.Run("success after failing", func(t *testing.T) {
		h := newHarness(t)
		p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
		h.engine.RegisterHandler(&stubHandler{id: abilities.TrogBerserk, outcome: ability.OutcomeSuccess})

		assert.Panics(t, func() {
			_, _ = h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 50))
		})
	})

	t.Run("no outcome", func(t *testing.T) {
		h := newHarness(t)
		p := testutils.CreateTestWorshipper("p1", shared.GodTrog, 100)
		h.engine.RegisterHandler(&stubHandler{id: abilities.TrogBerserk, outcome: ability.OutcomeNone})

		assert.PanicsWithValue(t, "weird ability return type", func() {
			_, _ = h.engine.ActivateTalent(context.Background(), p, invocation(abilities.TrogBerserk, 0))
		})
	})
}
