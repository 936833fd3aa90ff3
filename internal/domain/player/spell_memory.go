package player

import (
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

func (p *Player) clearSpellLetters() {
	for i := range p.SpellLetters {
		p.SpellLetters[i] = -1
	}
}

// SpellCount is the number of memorised spells
func (p *Player) SpellCount() int {
	n := 0
	for _, sp := range p.Spells {
		if sp != spells.NoSpell {
			n++
		}
	}
	return n
}

// HasSpell reports whether the spell is memorised
func (p *Player) HasSpell(id spells.ID) bool {
	return id != spells.NoSpell && p.spellSlot(id) != -1
}

func (p *Player) spellSlot(id spells.ID) int {
	for i, sp := range p.Spells {
		if sp == id {
			return i
		}
	}
	return -1
}

// SpellAtLetter returns the spell bound to a letter
func (p *Player) SpellAtLetter(r rune) spells.ID {
	idx := LetterToIndex(r)
	if idx < 0 {
		return spells.NoSpell
	}
	slot := p.SpellLetters[idx]
	if slot < 0 || slot >= MaxKnownSpells {
		return spells.NoSpell
	}
	return p.Spells[slot]
}

// LearnSpell memorises a spell and binds it to a letter, returning the
// letter. Letter rules are consulted first; otherwise the first unused
// letter is taken. When a rule displaces another spell, that spell moves
// to the first unused letter. Returns 0 when memory is full or the spell
// is already known.
func (p *Player) LearnSpell(id spells.ID, rules []LetterRule) rune {
	if !spells.IsValid(id) || p.HasSpell(id) {
		return 0
	}

	slot := p.spellSlot(spells.NoSpell)
	if slot == -1 {
		return 0
	}
	p.Spells[slot] = id

	name := strings.ToLower(spells.Title(id))
	letter := -1
	for _, rule := range rules {
		if !rule.Pattern.MatchString(name) {
			continue
		}
		overwrite := false
		for _, ch := range rule.Letters {
			switch {
			case ch == '+':
				overwrite = true
			case ch == '-':
				overwrite = false
			case LetterToIndex(ch) >= 0:
				idx := LetterToIndex(ch)
				existing := p.SpellLetters[idx]
				if existing == -1 {
					letter = idx
				} else if overwrite {
					other := strings.ToLower(spells.Title(p.Spells[existing]))
					if !rule.Pattern.MatchString(other) {
						letter = idx
					}
				}
			}
			if letter != -1 {
				break
			}
		}
		if letter != -1 {
			break
		}
	}

	if letter == -1 {
		letter = p.firstFreeSpellLetter()
		if letter == -1 {
			return 0
		}
	}

	if displaced := p.SpellLetters[letter]; displaced != -1 {
		if free := p.firstFreeSpellLetter(); free != -1 {
			p.SpellLetters[free] = displaced
		}
	}
	p.SpellLetters[letter] = slot

	return IndexToLetter(letter)
}

func (p *Player) firstFreeSpellLetter() int {
	for i, slot := range p.SpellLetters {
		if slot == -1 {
			return i
		}
	}
	return -1
}

// ForgetSpell removes a memorised spell and frees its letters
func (p *Player) ForgetSpell(id spells.ID) bool {
	slot := p.spellSlot(id)
	if id == spells.NoSpell || slot == -1 {
		return false
	}

	p.Spells[slot] = spells.NoSpell
	for i, s := range p.SpellLetters {
		if s == slot {
			p.SpellLetters[i] = -1
		}
	}
	return true
}

// KnownSpells lists memorised spells in slot order
func (p *Player) KnownSpells() []spells.ID {
	var out []spells.ID
	for _, sp := range p.Spells {
		if sp != spells.NoSpell {
			out = append(out, sp)
		}
	}
	return out
}

// Knows adapts HasSpell for spells.LevelsRequired
func (p *Player) Knows(id spells.ID) bool {
	return p.HasSpell(id)
}
