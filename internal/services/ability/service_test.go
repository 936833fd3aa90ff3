package ability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	mockplayers "github.com/KirkDiggler/crawl-talents/internal/repositories/players/mock"
	"github.com/KirkDiggler/crawl-talents/internal/services/ability"
	"github.com/KirkDiggler/crawl-talents/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	h       *harness
	repo    *mockplayers.MockRepository
	service ability.Service
	drac    *player.Player
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.h = newHarness(s.T())
	// high draws never fail a talent
	s.h.roller.SetFallback(99)
	s.repo = mockplayers.NewMockRepository(gomock.NewController(s.T()))
	s.service = ability.NewService(&ability.ServiceConfig{
		Players:  s.repo,
		Resolver: s.h.resolver,
		Engine:   s.h.engine,
	})
	s.drac = testutils.CreateTestDraconian("drac", shared.SpeciesRedDraconian)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestNewService_RequiresDependencies() {
	s.Panics(func() { ability.NewService(nil) })
	s.Panics(func() { ability.NewService(&ability.ServiceConfig{Resolver: s.h.resolver, Engine: s.h.engine}) })
	s.Panics(func() { ability.NewService(&ability.ServiceConfig{Players: s.repo, Engine: s.h.engine}) })
	s.Panics(func() { ability.NewService(&ability.ServiceConfig{Players: s.repo, Resolver: s.h.resolver}) })
}

func (s *ServiceTestSuite) TestListTalents() {
	s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
	s.repo.EXPECT().Update(s.ctx, s.drac).Return(nil)

	out, err := s.service.ListTalents(s.ctx, &ability.ListTalentsInput{PlayerID: "drac"})
	s.Require().NoError(err)

	s.Require().Len(out.Talents, 1)
	got := out.Talents[0]
	s.Equal(abilities.BreatheFire, got.Which)
	s.Equal("Breathe Fire", got.Name)
	s.Equal('a', got.Hotkey)
	s.NotEmpty(got.Cost)
	// the new binding is saved on the player
	s.Equal(abilities.BreatheFire, s.drac.AbilityLetters[0])
}

func (s *ServiceTestSuite) TestListTalents_Errors() {
	_, err := s.service.ListTalents(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.ListTalents(s.ctx, &ability.ListTalentsInput{})
	s.True(dnderr.IsInvalidArgument(err))

	s.repo.EXPECT().Get(s.ctx, "ghost").Return(nil, dnderr.NotFoundf("player 'ghost' not found"))
	_, err = s.service.ListTalents(s.ctx, &ability.ListTalentsInput{PlayerID: "ghost"})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestActivate() {
	hotkey := s.hotkeyOf(s.drac, abilities.BreatheFire)

	s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
	s.h.targeter.EXPECT().ChooseTarget(gomock.Any(), gomock.Any()).Return(&ability.Target{Pos: shared.Coord{X: 2}}, nil)
	s.h.effector.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(true, nil)
	s.h.expectPractised(abilities.BreatheFire, ability.ActionAbility)
	s.repo.EXPECT().Update(s.ctx, s.drac).DoAndReturn(func(_ context.Context, p *player.Player) error {
		s.Positive(p.Duration(shared.DurBreathWeapon))
		return nil
	})

	out, err := s.service.Activate(s.ctx, &ability.ActivateInput{PlayerID: "drac", Hotkey: hotkey})
	s.Require().NoError(err)

	s.True(out.Result.Succeeded())
	s.True(out.Result.TurnUsed)
	s.Equal("Breathe Fire", out.Talent.Name)
	s.Contains(s.h.said, "You breathe a blast of fire.")
}

func (s *ServiceTestSuite) TestActivate_Aborted() {
	s.drac.SetDuration(shared.DurBerserk, 30)
	hotkey := s.hotkeyOf(s.drac, abilities.BreatheFire)

	s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
	s.repo.EXPECT().Update(s.ctx, s.drac).Return(nil)

	out, err := s.service.Activate(s.ctx, &ability.ActivateInput{PlayerID: "drac", Hotkey: hotkey})
	s.Require().NoError(err)

	s.Equal(ability.OutcomeAbort, out.Result.Outcome)
	s.False(out.Result.TurnUsed)
}

func (s *ServiceTestSuite) TestActivate_Errors() {
	tests := []struct {
		name   string
		setup  func()
		hotkey rune
		check  func(err error) bool
	}{
		{
			name: "no abilities at all",
			setup: func() {
				s.repo.EXPECT().Get(s.ctx, "drac").Return(testutils.CreateTestPlayer("drac", "owner", "Plain"), nil)
			},
			hotkey: 'a',
			check:  func(err error) bool { return dnderr.Is(err, dnderr.CodeInfeasible) },
		},
		{
			name: "nothing on the hotkey",
			setup: func() {
				s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
			},
			hotkey: 'z',
			check:  dnderr.IsNotFound,
		},
		{
			name: "save fails",
			setup: func() {
				s.drac.SetDuration(shared.DurBerserk, 30)
				s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
				s.repo.EXPECT().Update(s.ctx, s.drac).Return(errors.New("connection refused"))
			},
			hotkey: 'a',
			check:  func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			_, err := s.service.Activate(s.ctx, &ability.ActivateInput{PlayerID: "drac", Hotkey: tt.hotkey})
			s.Require().Error(err)
			s.True(tt.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *ServiceTestSuite) TestSwapSlots() {
	s.drac.AbilityLetters[0] = abilities.BreatheFire

	s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
	s.repo.EXPECT().Update(s.ctx, s.drac).Return(nil)

	err := s.service.SwapSlots(s.ctx, &ability.SwapSlotsInput{PlayerID: "drac", From: 'a', To: 'B'})
	s.Require().NoError(err)

	s.Equal(abilities.NonAbility, s.drac.AbilityLetters[0])
	s.Equal(abilities.BreatheFire, s.drac.AbilityLetters[player.LetterToIndex('B')])
}

func (s *ServiceTestSuite) TestSwapSlots_NotLetters() {
	err := s.service.SwapSlots(s.ctx, &ability.SwapSlotsInput{PlayerID: "drac", From: 'a', To: '1'})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestDescribe() {
	out, err := s.service.Describe(s.ctx, &ability.DescribeInput{Name: "breathe fire"})
	s.Require().NoError(err)

	s.Equal(abilities.BreatheFire, out.Ability)
	s.Equal("Breathe Fire", out.Name)
	s.NotEmpty(out.Cost)
	s.Nil(out.Talent)

	s.repo.EXPECT().Get(s.ctx, "drac").Return(s.drac, nil)
	out, err = s.service.Describe(s.ctx, &ability.DescribeInput{PlayerID: "drac", Name: "Breathe Fire"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Talent)
	s.Equal(abilities.BreatheFire, out.Talent.Which)
}

func (s *ServiceTestSuite) TestDescribe_Unknown() {
	_, err := s.service.Describe(s.ctx, &ability.DescribeInput{Name: "Breathe Custard"})
	s.True(dnderr.IsNotFound(err))
}

// hotkeyOf binds hotkeys on a copy and reports where id landed
func (s *ServiceTestSuite) hotkeyOf(p *player.Player, id abilities.ID) rune {
	for _, t := range s.h.resolver.BuildTalentList(p.Clone(), true, false) {
		if t.Which == id {
			return t.Hotkey
		}
	}
	s.FailNow("ability not in talent list")
	return 0
}
