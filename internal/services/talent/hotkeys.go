package talent

import (
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/logger"
)

// assignHotkeys binds every talent without a hotkey. Letter rules are
// tried first, then the slots from Z down to a. A slot is free unless
// another talent of this list holds it; stale bindings are overwritten.
// With more than NumSlots talents the excess stay unbound.
func (r *Resolver) assignHotkeys(p *player.Player, talents []Talent) {
	var claimed [player.NumSlots]bool
	for _, t := range talents {
		if idx := player.LetterToIndex(t.Hotkey); idx >= 0 {
			claimed[idx] = true
		}
	}

	for i := range talents {
		t := &talents[i]
		if t.Hotkey != 0 {
			continue
		}

		slot := r.ruleSlot(p, t.Which, &claimed)
		if slot < 0 {
			for k := player.NumSlots - 1; k >= 0; k-- {
				if !claimed[k] {
					slot = k
					break
				}
			}
		}
		if slot < 0 {
			logger.Warning("no free hotkey", "ability", t.Name())
			continue
		}

		claimed[slot] = true
		p.AbilityLetters[slot] = t.Which
		t.Hotkey = player.IndexToLetter(slot)
	}
}

// ruleSlot walks the letter rules matching the ability's name and returns
// the first usable letter, or -1.
func (r *Resolver) ruleSlot(p *player.Player, id abilities.ID, claimed *[player.NumSlots]bool) int {
	name := strings.ToLower(abilities.Name(id))

	for _, rule := range r.letterRules {
		if rule.Pattern == nil || !rule.Pattern.MatchString(name) {
			continue
		}

		overwrite := false
		for _, c := range rule.Letters {
			switch {
			case c == '+':
				overwrite = true
				continue
			case c == '-':
				overwrite = false
				continue
			}

			idx := player.LetterToIndex(c)
			if idx < 0 || claimed[idx] {
				continue
			}

			existing := p.AbilityLetters[idx]
			if existing == abilities.NonAbility || r.Fixup(p, existing) == id {
				return idx
			}
			if overwrite && !rule.Pattern.MatchString(strings.ToLower(abilities.Name(existing))) {
				return idx
			}
		}
	}
	return -1
}

// SwapSlots exchanges the bindings of two slots
func (r *Resolver) SwapSlots(p *player.Player, i, j int) error {
	if !p.SwapAbilitySlots(i, j) {
		return dnderr.InvalidArgumentf("slot out of range: %d, %d", i, j)
	}
	return nil
}
