package player

import (
	"regexp"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
)

// LetterRule pins names matching Pattern to the listed letters, tried in
// order. A '+' in Letters allows the following letters to displace an
// occupant that the same rule does not match; '-' turns that off again.
type LetterRule struct {
	Pattern *regexp.Regexp
	Letters string
}

// IndexToLetter maps 0-25 to a-z and 26-51 to A-Z. Anything else is 0.
func IndexToLetter(i int) rune {
	switch {
	case i >= 0 && i < 26:
		return rune('a' + i)
	case i >= 26 && i < NumSlots:
		return rune('A' + i - 26)
	default:
		return 0
	}
}

// LetterToIndex is the inverse of IndexToLetter, -1 for non-letters
func LetterToIndex(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 26
	default:
		return -1
	}
}

// SwapAbilitySlots exchanges two hotkey bindings
func (p *Player) SwapAbilitySlots(i, j int) bool {
	if i < 0 || i >= NumSlots || j < 0 || j >= NumSlots {
		return false
	}
	p.AbilityLetters[i], p.AbilityLetters[j] = p.AbilityLetters[j], p.AbilityLetters[i]
	return true
}

// AbilitySlot finds the slot whose binding, after translation through
// fixup, equals id. Stale placeholders thus still resolve to their slot.
func (p *Player) AbilitySlot(id abilities.ID, fixup func(abilities.ID) abilities.ID) int {
	for slot, bound := range p.AbilityLetters {
		if fixup(bound) == id {
			return slot
		}
	}
	return -1
}
