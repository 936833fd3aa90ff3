package spells

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// Caster is the player state uselessness checks read
type Caster interface {
	RangeContext

	Confused() bool
	MP() int
	MaxMP() int
	Species() shared.Species
	MutationLevel(m shared.Mutation) int
	Form() shared.Form
	Duration(d shared.Duration) int
	UndeadState(temp bool) shared.UndeadState
	IsLifelessUndead() bool
	PoisonResistance(temp bool) int

	// NoTeleportReason explains why the caster cannot blink, or is empty
	NoTeleportReason(blinking bool) string
	AtMaxSpeed() bool
	Stationary() bool
	Backlit() bool
	Haloed() bool
	RepelMissilesGear() bool
	StandOnSolidGround() bool
	GroundLiquefied() bool
	DelayedFireballCharged() bool
	MalignGatewayActive() bool

	// Battlefield may be nil when no monster information is available, in
	// which case the target check is skipped.
	Battlefield() Battlefield
}

// UselessOptions select which checks apply
type UselessOptions struct {
	Temp        bool // include temporary states like MP, statuses and targets
	PreventOnly bool // only report states that prevent casting outright
	Evoked      bool // cast from an item
	Fake        bool // an ability dressed as a spell
}

// UselessnessReason explains why the spell is useless to the caster right
// now, as a lowercase clause, or returns "" if it is not.
func UselessnessReason(id ID, c Caster, opts UselessOptions) string {
	temp := opts.Temp

	if temp {
		if !opts.Fake && c.Confused() {
			return "you're too confused."
		}
		if !opts.Evoked && !opts.Fake && c.MP() < Level(id) {
			return "you don't have enough magic."
		}
		if bf := c.Battlefield(); !opts.PreventOnly && bf != nil && NoHostileInRange(id, bf) {
			return "you can't see any valid targets."
		}
	}

	if !opts.Fake && !opts.Evoked && CannotUseSchools(Schools(id), c.MutationLevel) {
		return "you cannot use spells of this school."
	}

	noLove := c.MutationLevel(shared.MutNoLove) > 0

	switch id {
	case Blink, ControlledBlink:
		if c.Species() == shared.SpeciesFormicid {
			return c.Species().Plural() + " cannot teleport."
		}
		if temp {
			if reason := c.NoTeleportReason(true); reason != "" {
				return lowercaseFirst(reason)
			}
		}

	case Swiftness:
		if temp && !opts.PreventOnly {
			if c.AtMaxSpeed() {
				return "you're already traveling as fast as you can."
			}
			if c.Stationary() {
				return "you can't move."
			}
		}

	case Invisibility:
		if !opts.PreventOnly && temp && c.Backlit() {
			return "invisibility won't help you when you glow in the dark."
		}

	case Darkness:
		if !opts.PreventOnly && temp && (c.Haloed() || c.InGoodStanding(shared.GodShiningOne, -1)) {
			return "darkness is useless against divine light."
		}

	case RepelMissiles:
		if temp && (c.MutationLevel(shared.MutDistortionField) == 3 || c.RepelMissilesGear()) {
			return "you're already repelling missiles."
		}

	case StatueForm, Stoneskin, BeastlyAppendage, BladeHands, DragonForm,
		HydraForm, IceForm, SpiderForm:
		if id == StatueForm && c.Species() == shared.SpeciesGargoyle {
			return "you're already a statue."
		}
		if us := c.UndeadState(temp); us == shared.Undead || us == shared.HungryDead {
			return "your undead flesh cannot be transformed."
		}
		if temp && c.IsLifelessUndead() {
			return "your current blood level is not sufficient."
		}

	case Regeneration:
		if c.Species() == shared.SpeciesDeepDwarf {
			return "you can't regenerate without divine aid."
		}
		if c.UndeadState(temp) == shared.Undead {
			return "you're too dead to regenerate."
		}

	case PortalProjectile, WarpBrand, ExcruciatingWounds, SpectralWeapon:
		if c.Species() == shared.SpeciesFelid {
			return "this spell is useless without hands."
		}

	case LedasLiquefaction:
		if temp && (!c.StandOnSolidGround() || c.Duration(shared.DurLiquefying) > 0 || c.GroundLiquefied()) {
			return "you must stand on solid ground to cast this."
		}

	case DelayedFireball:
		if temp && c.DelayedFireballCharged() {
			return "you are already charged."
		}

	case BorgnjorsRevivification, DeathsDoor:
		if c.UndeadState(temp) != shared.Alive {
			return "you're too dead."
		}

	case Necromutation:
		// lichform does not count, only a truly undead body
		if c.UndeadState(false) != shared.Alive {
			return "you're too dead."
		}

	case CurePoison:
		if c.PoisonResistance(temp) == 3 && c.UndeadState(true) != shared.SemiUndead {
			return "you can't be poisoned."
		}

	case SublimationOfBlood:
		switch c.Species() {
		case shared.SpeciesGargoyle, shared.SpeciesGhoul, shared.SpeciesMummy:
			return "you have no blood to sublime."
		}
		if temp && !c.Form().CanBleed() {
			return "you have no blood to sublime."
		}
		if temp && c.MP() == c.MaxMP() {
			return "your magic capacity is already full."
		}

	case Tornado:
		if temp && (c.Duration(shared.DurTornado) > 0 || c.Duration(shared.DurTornadoCooldown) > 0) {
			return "you need to wait for the winds to calm down."
		}

	case MalignGateway:
		if temp && c.MalignGatewayActive() {
			return "the dungeon can only cope with one malign gateway at a time."
		}
		if noLove {
			return "you cannot coerce anything to answer your summons."
		}

	case SummonForest:
		if temp && c.Duration(shared.DurForested) > 0 {
			return "you can only summon one forest at a time."
		}
		if noLove {
			return "you cannot coerce anything to answer your summons."
		}

	case AnimateDead, AnimateSkeleton, TwistedResurrection, ControlUndead,
		DeathChannel, Simulacrum:
		if noLove {
			return "you cannot coerce anything to obey you."
		}

	case SummonSmallMammal, SummonHorribleThings, Haunt, SummonIceBeast, CallImp,
		SummonGreaterDemon, ShadowCreatures, CallCanineFamiliar, SummonDragon,
		SummonButterflies, MonstrousMenagerie, SummonHydra, SummonMinorDemon,
		SummonLightningSpire, SummonGuardianGolem, DragonCall, SummonManaViper:
		if noLove {
			return "you cannot coerce anything to answer your summons."
		}
	}

	return ""
}

// IsUseless reports whether UselessnessReason has anything to say
func IsUseless(id ID, c Caster, opts UselessOptions) bool {
	return UselessnessReason(id, c, opts) != ""
}

func lowercaseFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ForgetMessage is shown when a spell is dropped from memory
func ForgetMessage(id ID) string {
	return fmt.Sprintf("Your memory of %s unravels.", Title(id))
}
