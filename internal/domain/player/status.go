package player

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// Duration returns the remaining time of a status, 0 if inactive
func (p *Player) Duration(d shared.Duration) int {
	return p.Durations[d]
}

// SetDuration sets a status duration; zero or less clears it
func (p *Player) SetDuration(d shared.Duration, turns int) {
	if p.Durations == nil {
		p.Durations = map[shared.Duration]int{}
	}
	if turns <= 0 {
		delete(p.Durations, d)
		return
	}
	p.Durations[d] = turns
}

func (p *Player) Confused() bool {
	return p.Duration(shared.DurConfusion) > 0
}

func (p *Player) Berserk() bool {
	return p.Duration(shared.DurBerserk) > 0
}

// MutationLevel is 0 when the mutation is absent
func (p *Player) MutationLevel(m shared.Mutation) int {
	return p.Mutations[m]
}

// HowMutated counts mutation levels, optionally leaving out Ru's
// sacrifices which cannot be cured.
func (p *Player) HowMutated(includeSacrifices bool) int {
	total := 0
	for m, lvl := range p.Mutations {
		if !includeSacrifices && m.IsSacrifice() {
			continue
		}
		total += lvl
	}
	return total
}

// Skill returns the skill level multiplied by scale. Skills are stored in
// tenths of a level.
func (p *Player) Skill(sk shared.Skill, scale int) int {
	return p.Skills[sk] * scale / 10
}

// AllSkillsMaxed reports whether every skill is at the maximum level
func (p *Player) AllSkillsMaxed() bool {
	for sk := shared.Skill(0); sk < shared.NumSkills; sk++ {
		if p.Skills[sk] < shared.MaxSkillLevel*10 {
			return false
		}
	}
	return true
}

// UndeadState is the species state, or fully undead in lich form when
// temporary effects count.
func (p *Player) UndeadState(temp bool) shared.UndeadState {
	if temp && p.Form == shared.FormLich {
		return shared.Undead
	}
	return p.Species.UndeadState()
}

// IsLifelessUndead reports an undead body without blood to spare. A
// vampire only counts below satiated, and only when temporary state is
// considered.
func (p *Player) IsLifelessUndead(temp bool) bool {
	if p.Species.UndeadState() == shared.SemiUndead {
		return temp && p.HungerState() < shared.HungerSatiated
	}
	return p.UndeadState(temp) != shared.Alive
}

// Airborne reports whether the player is flying right now
func (p *Player) Airborne() bool {
	return p.Duration(shared.DurFlight) > 0 || p.Attr.PermFlight
}

// RacialPermanentFlight is the big-winged or gargoyle style innate flight
func (p *Player) RacialPermanentFlight() bool {
	return p.MutationLevel(shared.MutBigWings) > 0
}

// NoTeleportReason explains why the player cannot teleport, "" if they
// can. Blinking is allowed in sprint.
func (p *Player) NoTeleportReason(blinking bool) string {
	if p.Sprint && !blinking {
		return "Long-range teleportation is disallowed in Dungeon Sprint."
	}
	if p.Species == shared.SpeciesFormicid {
		return p.Species.Plural() + " cannot teleport."
	}

	var problems []string
	if p.Duration(shared.DurDimensionAnchor) > 0 {
		problems = append(problems, "locked down by Dimension Anchor")
	}
	if p.Form == shared.FormTree {
		problems = append(problems, "held in place by your roots")
	}
	if p.Gear.NoTeleport {
		problems = append(problems, "wearing an artefact preventing teleportation")
	}
	if p.Gear.Stasis {
		problems = append(problems, "affected by a buggy stasis")
	}

	if len(problems) == 0 {
		return ""
	}
	return fmt.Sprintf("You cannot teleport because you are %s.", commaSeparated(problems))
}

// BerserkBlocker explains why the player cannot go berserk, "" if they can
func (p *Player) BerserkBlocker() string {
	switch {
	case p.Berserk():
		return "You're already berserk!"
	case p.Duration(shared.DurExhausted) > 0:
		return "You're too exhausted to go berserk."
	case p.Duration(shared.DurDeathsDoor) > 0:
		return "Your body is effectively dead; this is a bad time to go berserk."
	case p.IsLifelessUndead(true):
		return "You cannot raise a blood rage in your lifeless body."
	case p.Gear.Stasis || p.Species == shared.SpeciesFormicid:
		return "Your stasis prevents you from going berserk."
	default:
		return ""
	}
}

// CanGoBerserk is BerserkBlocker as a predicate
func (p *Player) CanGoBerserk() bool {
	return p.BerserkBlocker() == ""
}

// Ailing reports whether anything purification would cure is present
func (p *Player) Ailing() bool {
	return p.Disease > 0 ||
		p.Duration(shared.DurPoisoning) > 0 ||
		p.Duration(shared.DurConfusion) > 0 ||
		p.Duration(shared.DurSlow) > 0 ||
		p.Duration(shared.DurPetrifying) > 0 ||
		p.Duration(shared.DurWeak) > 0 ||
		p.Stats.Drained() ||
		p.Rotted() > 0
}

// TransformationCancellable reports whether an active form can be ended
// at will.
func (p *Player) TransformationCancellable() bool {
	return p.Duration(shared.DurTransformation) > 0 && !p.FormUncancellable
}

// FormStatRisk names the stat that changing into form would drop to zero,
// or returns empty when the change is safe.
func (p *Player) FormStatRisk(form shared.Form) string {
	newStr, newDex := form.StatMods()
	oldStr, oldDex := p.Form.StatMods()

	switch {
	case p.Stats.Str > 0 && p.Stats.Str+newStr-oldStr <= 0:
		return "strength"
	case p.Stats.Dex > 0 && p.Stats.Dex+newDex-oldDex <= 0:
		return "dexterity"
	default:
		return ""
	}
}

func commaSeparated(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
