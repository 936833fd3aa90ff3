package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
	"github.com/KirkDiggler/crawl-talents/internal/repositories/players"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
)

type service struct {
	players  players.Repository
	resolver *talent.Resolver
	engine   *Engine
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	Players  players.Repository
	Resolver *talent.Resolver
	Engine   *Engine
}

// NewService creates the ability service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Players == nil {
		panic("players repository is required")
	}
	if cfg.Resolver == nil {
		panic("talent resolver is required")
	}
	if cfg.Engine == nil {
		panic("engine is required")
	}

	return &service{
		players:  cfg.Players,
		resolver: cfg.Resolver,
		engine:   cfg.Engine,
	}
}

func (s *service) load(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}
	p, err := s.players.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get player '%s'", id)
	}
	return p, nil
}

func (s *service) info(p *player.Player, t talent.Talent) *TalentInfo {
	return &TalentInfo{
		Talent: t,
		Name:   t.Name(),
		Cost:   abilities.CostDescription(t.Which, p.View(nil)),
	}
}

// ListTalents returns the talent menu
func (s *service) ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	p, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	// the list also settles hotkeys, which are saved
	list := s.resolver.BuildTalentList(p, false, input.IncludeUnusable)
	if err := s.players.Update(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save hotkeys")
	}

	out := &ListTalentsOutput{Talents: make([]*TalentInfo, 0, len(list))}
	for _, t := range list {
		out.Talents = append(out.Talents, s.info(p, t))
	}
	return out, nil
}

// Activate uses the talent on a hotkey and saves the player whatever
// the outcome
func (s *service) Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	p, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	list := s.resolver.BuildTalentList(p, true, false)
	if len(list) == 0 {
		return nil, dnderr.Infeasible("Sorry, you're not good enough to have a special ability.")
	}

	tal, ok := talent.TalentByHotkey(list, input.Hotkey)
	if !ok {
		return nil, dnderr.NotFoundf("no ability on '%c'", input.Hotkey).
			WithMeta("hotkey", string(input.Hotkey))
	}

	res, err := s.engine.ActivateTalent(ctx, p, tal)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to activate %s", tal.Name())
	}

	if err := s.players.Update(ctx, p); err != nil {
		return nil, dnderr.Wrap(err, "failed to save player")
	}

	logger.Info("talent activated",
		"player", p.ID, "ability", tal.Name(), "outcome", res.Outcome.String(), "turn_used", res.TurnUsed)

	return &ActivateOutput{Result: res, Talent: s.info(p, tal)}, nil
}

// SwapSlots exchanges two hotkeys
func (s *service) SwapSlots(ctx context.Context, input *SwapSlotsInput) error {
	if input == nil {
		return dnderr.InvalidArgument("input cannot be nil")
	}

	from, to := player.LetterToIndex(input.From), player.LetterToIndex(input.To)
	if from < 0 || to < 0 {
		return dnderr.InvalidArgumentf("hotkeys must be letters, got '%c' and '%c'", input.From, input.To)
	}

	p, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return err
	}

	if err := s.resolver.SwapSlots(p, from, to); err != nil {
		return err
	}

	if err := s.players.Update(ctx, p); err != nil {
		return dnderr.Wrap(err, "failed to save player")
	}
	return nil
}

// Describe explains one ability
func (s *service) Describe(ctx context.Context, input *DescribeInput) (*DescribeOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	id := abilities.ByName(input.Name)
	if id == abilities.NonAbility {
		return nil, dnderr.NotFoundf("no ability named '%s'", input.Name).
			WithMeta("name", input.Name)
	}

	p := player.New("", "", "")
	if input.PlayerID != "" {
		var err error
		if p, err = s.load(ctx, input.PlayerID); err != nil {
			return nil, err
		}
	}

	out := &DescribeOutput{
		Ability: id,
		Name:    abilities.Name(id),
		Cost:    abilities.CostDescription(id, p.View(nil)),
		Detail:  abilities.DetailedCostDescription(id, p.View(nil)),
	}

	if input.PlayerID != "" {
		for _, t := range s.resolver.BuildTalentList(p, false, true) {
			if t.Which == id {
				out.Talent = &t
				break
			}
		}
	}
	return out, nil
}
