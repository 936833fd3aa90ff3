package ability

import (
	"context"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/services/talent"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockability -source=types.go

// Service is what front ends drive: it loads a player, works out or uses
// their talents and saves the result.
type Service interface {
	// ListTalents returns the talents the player can pick from
	ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error)

	// Activate uses the talent bound to a hotkey
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	// SwapSlots exchanges two hotkeys
	SwapSlots(ctx context.Context, input *SwapSlotsInput) error

	// Describe explains what an ability costs and how likely it is to fail
	Describe(ctx context.Context, input *DescribeInput) (*DescribeOutput, error)
}

// ListTalentsInput selects whose talents to list
type ListTalentsInput struct {
	PlayerID string
	// IncludeUnusable keeps abilities the player can't use right now
	IncludeUnusable bool
}

// TalentInfo is a talent with its menu text
type TalentInfo struct {
	talent.Talent
	Name string `json:"name"`
	Cost string `json:"cost"`
}

// ListTalentsOutput holds the talent menu in display order
type ListTalentsOutput struct {
	Talents []*TalentInfo
}

// ActivateInput picks a talent by hotkey
type ActivateInput struct {
	PlayerID string
	Hotkey   rune
}

// ActivateOutput reports an attempt
type ActivateOutput struct {
	Result *ActivationResult
	Talent *TalentInfo
}

// SwapSlotsInput names the two hotkeys to exchange
type SwapSlotsInput struct {
	PlayerID string
	From     rune
	To       rune
}

// DescribeInput names the ability to describe. PlayerID is optional;
// without it costs are shown for a fresh player.
type DescribeInput struct {
	PlayerID string
	Name     string
}

// DescribeOutput is the ability help screen
type DescribeOutput struct {
	Ability abilities.ID
	Name    string
	Cost    string
	Detail  string
	// Talent is set only when a player was given and has the ability
	Talent *talent.Talent
}
