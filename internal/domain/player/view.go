package player

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// View adapts a Player to the read-only interfaces of the ability and
// spell registries.
type View struct {
	p  *Player
	bf spells.Battlefield
}

var (
	_ abilities.CostContext = (*View)(nil)
	_ spells.Caster         = (*View)(nil)
)

// View returns an adapter over p. bf may be nil when no monster
// information is available.
func (p *Player) View(bf spells.Battlefield) *View {
	return &View{p: p, bf: bf}
}

func (v *View) MaxHP() int                    { return v.p.MaxHP() }
func (v *View) MP() int                       { return v.p.MP }
func (v *View) MaxMP() int                    { return v.p.MaxMP() }
func (v *View) NeedsFood() bool               { return v.p.NeedsFood() }
func (v *View) GoldPrice(id abilities.ID) int { return v.p.GoldPrices[id] }

func (v *View) SacrificePiety(id abilities.ID) int { return v.p.SacrificePiety[id] }

func (v *View) CurrentVision() int  { return v.p.Vision }
func (v *View) WieldingRocks() bool { return v.p.Gear.WieldingRocks }
func (v *View) InGoodStanding(g shared.God, minBreakpoint int) bool {
	return v.p.InGoodStanding(g, minBreakpoint)
}

func (v *View) Confused() bool                           { return v.p.Confused() }
func (v *View) Species() shared.Species                  { return v.p.Species }
func (v *View) MutationLevel(m shared.Mutation) int      { return v.p.MutationLevel(m) }
func (v *View) Form() shared.Form                        { return v.p.Form }
func (v *View) Duration(d shared.Duration) int           { return v.p.Duration(d) }
func (v *View) UndeadState(temp bool) shared.UndeadState { return v.p.UndeadState(temp) }
func (v *View) IsLifelessUndead() bool                   { return v.p.IsLifelessUndead(true) }
func (v *View) NoTeleportReason(blinking bool) string    { return v.p.NoTeleportReason(blinking) }
func (v *View) Backlit() bool                            { return v.p.Gear.Backlit }
func (v *View) Haloed() bool                             { return v.p.Gear.Haloed }
func (v *View) RepelMissilesGear() bool                  { return v.p.Gear.RepelMissiles }
func (v *View) DelayedFireballCharged() bool             { return v.p.Attr.DelayedFireball }
func (v *View) Battlefield() spells.Battlefield          { return v.bf }

// PoisonResistance is 3 for immunity. Undead and gargoyles are immune.
func (v *View) PoisonResistance(temp bool) int {
	switch {
	case v.p.Species == shared.SpeciesGargoyle, v.p.UndeadState(temp) == shared.Undead,
		v.p.UndeadState(temp) == shared.HungryDead:
		return 3
	default:
		return min(3, v.p.Gear.PoisonResist)
	}
}

// AtMaxSpeed is true for hasted-by-nature movers; swiftness adds nothing
func (v *View) AtMaxSpeed() bool {
	return v.p.Duration(shared.DurSlow) == 0 && v.p.Species == shared.SpeciesSpriggan
}

// Stationary covers forms rooted to the ground
func (v *View) Stationary() bool {
	return v.p.Form == shared.FormTree || v.p.Form == shared.FormFungus
}

// StandOnSolidGround is false while flying
func (v *View) StandOnSolidGround() bool {
	return !v.p.Airborne()
}

// GroundLiquefied reports liquefaction under the player
func (v *View) GroundLiquefied() bool {
	return v.p.Duration(shared.DurLiquefying) > 0
}

// MalignGatewayActive is tracked by the host; the player model never has
// one open.
func (v *View) MalignGatewayActive() bool {
	return false
}
