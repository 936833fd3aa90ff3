package player

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

const maxPiety = 200

// MaxHP is the current ceiling after rot, never below 1
func (p *Player) MaxHP() int {
	return max(1, p.BaseMaxHP-p.HPRot)
}

// Rotted is the amount of max HP currently lost to rot
func (p *Player) Rotted() int {
	return p.HPRot
}

// RealMP is the MP ceiling from level and skills after permanent loss,
// optionally including gear bonuses.
func (p *Player) RealMP(includeItems bool) int {
	mp := p.BaseMaxMP + p.MPMaxAdj
	if includeItems {
		mp += p.Gear.MPBonus
	}
	return max(0, mp)
}

// MaxMP is the MP ceiling with gear
func (p *Player) MaxMP() int {
	return p.RealMP(true)
}

// DecHP removes HP. A non-fatal loss always leaves at least 1 HP.
func (p *Player) DecHP(n int, fatal bool) {
	if !fatal && p.HP < 1 {
		p.HP = 1
	}
	if !fatal && n >= p.HP {
		n = p.HP - 1
	}
	if n < 1 {
		return
	}
	p.HP -= n
}

// DecMP removes MP, flooring at zero
func (p *Player) DecMP(n int) {
	if n < 1 {
		return
	}
	p.MP = max(0, p.MP-n)
}

// RotHP lowers max HP, never below 1, and clamps current HP
func (p *Player) RotHP(n int) {
	if n <= 0 {
		return
	}
	p.HPRot = min(p.HPRot+n, p.BaseMaxHP-1)
	p.HP = min(p.HP, p.MaxHP())
}

// RotMP permanently lowers max MP and clamps current MP
func (p *Player) RotMP(n int) {
	p.MPMaxAdj -= n
	p.MP = min(p.MP, p.MaxMP())
}

// EnoughHP reports whether n HP can be paid while keeping 1, with the
// message to show if not.
func (p *Player) EnoughHP(n int) (bool, string) {
	if p.Durations[shared.DurDeathsDoor] > 0 {
		return false, "You cannot pay life while functionally dead."
	}
	if p.HP < n+1 {
		return false, "You don't have enough health at the moment."
	}
	return true, ""
}

// EnoughMP reports whether n MP is available, with the message to show if
// not.
func (p *Player) EnoughMP(n int) (bool, string) {
	if p.MP >= n {
		return true, ""
	}
	if p.RealMP(true) < n {
		return false, "You don't have enough magic capacity."
	}
	return false, "You don't have enough magic at the moment."
}

// Foodless reports whether the body needs no food at all
func (p *Player) Foodless() bool {
	return p.UndeadState(true) == shared.Undead
}

// NeedsFood is false when hunger costs are waived
func (p *Player) NeedsFood() bool {
	if p.Foodless() {
		return false
	}
	return p.UndeadState(true) != shared.SemiUndead || p.HungerState() > shared.HungerStarving
}

// HungerState buckets the hunger counter
func (p *Player) HungerState() shared.HungerState {
	return shared.HungerStateOf(p.Hunger)
}

// MakeHungry spends food; foodless bodies are unaffected
func (p *Player) MakeHungry(n int) {
	if n <= 0 || p.Foodless() {
		return
	}
	p.Hunger = max(0, p.Hunger-n)
}

// LosePiety lowers piety, flooring at zero
func (p *Player) LosePiety(n int) {
	if n <= 0 {
		return
	}
	p.Piety = max(0, p.Piety-n)
}

// GainPiety raises piety up to the cap
func (p *Player) GainPiety(n int) {
	if n <= 0 || p.Religion == shared.GodNone {
		return
	}
	p.Piety = min(maxPiety, p.Piety+n)
}
