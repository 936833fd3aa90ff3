package talent

import (
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	mockworld "github.com/KirkDiggler/crawl-talents/internal/domain/world/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssignHotkeys_MoreTalentsThanSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewResolver(&ResolverConfig{World: mockworld.NewMockWorld(ctrl)})
	p := player.New("p1", "owner", "Tester")

	all := abilities.All()
	require.Greater(t, len(all), player.NumSlots+2)

	talents := make([]Talent, 0, player.NumSlots+2)
	for _, def := range all {
		if def.ID == abilities.NonAbility {
			continue
		}
		talents = append(talents, Talent{Which: def.ID})
		if len(talents) == player.NumSlots+2 {
			break
		}
	}

	require.NotPanics(t, func() { r.assignHotkeys(p, talents) })

	seen := map[rune]bool{}
	for i, tal := range talents[:player.NumSlots] {
		want := player.IndexToLetter(player.NumSlots - 1 - i)
		assert.Equal(t, want, tal.Hotkey, "talent %d", i)
		assert.False(t, seen[tal.Hotkey], "hotkey %c reused", tal.Hotkey)
		seen[tal.Hotkey] = true
		assert.Equal(t, tal.Which, p.AbilityLetters[player.NumSlots-1-i])
	}
	assert.Equal(t, 'Z', talents[0].Hotkey)
	assert.Equal(t, 'a', talents[player.NumSlots-1].Hotkey)

	for _, tal := range talents[player.NumSlots:] {
		assert.Zero(t, tal.Hotkey)
	}
}
