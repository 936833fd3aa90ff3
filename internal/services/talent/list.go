package talent

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

var draconianBreaths = map[shared.Species]abilities.ID{
	shared.SpeciesRedDraconian:     abilities.BreatheFire,
	shared.SpeciesWhiteDraconian:   abilities.BreatheFrost,
	shared.SpeciesGreenDraconian:   abilities.BreatheMephitic,
	shared.SpeciesYellowDraconian:  abilities.SpitAcid,
	shared.SpeciesBlackDraconian:   abilities.BreatheLightning,
	shared.SpeciesPurpleDraconian:  abilities.BreathePower,
	shared.SpeciesMottledDraconian: abilities.BreatheStickyFlame,
	shared.SpeciesPaleDraconian:    abilities.BreatheSteam,
}

// DraconianBreath is the racial breath of a draconian colour, NonAbility
// for the rest.
func DraconianBreath(s shared.Species) abilities.ID {
	if id, ok := draconianBreaths[s]; ok {
		return id
	}
	return abilities.NonAbility
}

// GodAbilities lists the god granted abilities the player has. Ru's
// sacrifices and Ashenzari's end transfer survive silence.
func (r *Resolver) GodAbilities(p *player.Player, ignoreSilence, ignorePiety, ignorePenance bool) []abilities.ID {
	var out []abilities.ID

	if p.Worships(shared.GodRu) && len(p.RuSacrifices) > 0 {
		out = append(out, p.RuSacrifices...)
		out = append(out, abilities.RuRejectSacrifices)
	}
	if p.TransferPoints > 0 {
		out = append(out, abilities.AshenzariEndTransfer)
	}
	if !ignoreSilence && r.world.Silenced() {
		return out
	}

	penance := p.UnderPenance(p.Religion)
	rank := p.PietyRank()
	for _, power := range player.GodPowers(p.Religion) {
		if power.Ability == abilities.NonAbility {
			continue
		}
		id := r.Fixup(p, power.Ability)
		if id == abilities.NonAbility {
			continue
		}

		earned := power.Rank <= 0 ||
			power.Rank == player.CapstoneRank && p.CanDoCapstone() ||
			rank >= power.Rank ||
			ignorePiety
		allowed := !penance || power.Rank == -1 || ignorePenance

		if earned && allowed {
			out = append(out, id)
		}
	}
	return out
}

// BuildTalentList collects every ability the player has, in a fixed
// order, and binds a hotkey to each one that lacks it. The binding table
// on p is updated.
func (r *Resolver) BuildTalentList(p *player.Player, checkConfused, includeUnusable bool) []Talent {
	var talents []Talent
	add := func(id abilities.ID) {
		if t := r.GetTalent(p, id, checkConfused); t.Which != abilities.NonAbility {
			talents = append(talents, t)
		}
	}

	if p.MutationLevel(shared.MutMummyRestoration) > 0 {
		add(abilities.MummyRestoration)
	}
	if p.Species == shared.SpeciesDeepDwarf {
		add(abilities.Recharging)
	}
	if p.Species == shared.SpeciesFormicid && (p.Form != shared.FormTree || includeUnusable) {
		add(abilities.Dig)
		if !p.Sprint || !r.world.OneLevelBranch() {
			add(abilities.ShaftSelf)
		}
	}

	switch spit := p.MutationLevel(shared.MutSpitPoison); {
	case spit == 3:
		add(abilities.BreathePoison)
	case spit > 0:
		add(abilities.SpitPoison)
	}

	if breath := DraconianBreath(p.Species); breath != abilities.NonAbility &&
		(!p.Form.ChangesPhysiology() || p.Form == shared.FormDragon) {
		add(breath)
	}

	if p.Species == shared.SpeciesVampire && p.XL >= 3 &&
		p.HungerState() <= shared.HungerSatiated && p.Form != shared.FormBat {
		add(abilities.TranBat)
	}

	if p.MutationLevel(shared.MutTenguFlight) > 0 && !p.Airborne() ||
		p.RacialPermanentFlight() && !p.Attr.PermFlight {
		add(abilities.Fly)
	}
	if p.Attr.PermFlight && p.RacialPermanentFlight() {
		add(abilities.StopFlying)
	}

	if p.MutationLevel(shared.MutHurlHellfire) > 0 {
		add(abilities.Hellfire)
	}
	if p.TransformationCancellable() {
		add(abilities.EndTransformation)
	}
	if p.MutationLevel(shared.MutBlink) > 0 {
		add(abilities.Blink)
	}

	for _, id := range r.GodAbilities(p, includeUnusable, false, includeUnusable) {
		add(id)
	}

	if p.Religion != shared.GodNone {
		add(abilities.RenounceReligion)
	}
	if r.canConvertToBeogh(p) {
		add(abilities.ConvertToBeogh)
	}

	// only a fire dragon breathes fire; coloured draconians become their
	// own kind of dragon
	if p.Form == shared.FormDragon && p.Species != shared.SpeciesRedDraconian &&
		(!p.Species.IsDraconian() || p.Species == shared.SpeciesBaseDraconian) {
		add(abilities.BreatheFire)
	}

	if p.Attr.DelayedFireball {
		add(abilities.DelayedFireball)
	}
	if p.Duration(shared.DurSongOfSlaying) > 0 {
		add(abilities.StopSinging)
	}

	r.addEvocations(p, add)

	r.assignHotkeys(p, talents)
	return talents
}

func (r *Resolver) addEvocations(p *player.Player, add func(abilities.ID)) {
	if p.MutationLevel(shared.MutNoArtifice) > 0 {
		return
	}
	evo := p.Gear.Evocations

	if evo.Blink {
		add(abilities.EvokeBlink)
	}
	if evo.Fog {
		add(abilities.EvokeFog)
	}
	if evo.Berserk {
		add(abilities.EvokeBerserk)
	}
	if evo.Invisible && !p.Attr.InvisUncancellable {
		if p.Duration(shared.DurInvisibility) > 0 {
			add(abilities.EvokeTurnVisible)
		} else {
			add(abilities.EvokeTurnInvisible)
		}
	}
	if evo.Flight && (!p.Attr.PermFlight || !p.RacialPermanentFlight()) {
		if !p.Airborne() || !p.Attr.PermFlight && p.Gear.FlyingArmour {
			add(abilities.EvokeFlight)
		}
		if p.Airborne() && !p.Attr.FlightUncancellable {
			add(abilities.StopFlying)
		}
	}
}

func (r *Resolver) canConvertToBeogh(p *player.Player) bool {
	return p.Species == shared.SpeciesHillOrc &&
		!p.Worships(shared.GodBeogh) &&
		!r.world.Silenced() &&
		r.world.OrcPriestInView()
}
