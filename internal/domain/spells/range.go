package spells

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// RangeContext is what range calculation needs to know about the caster
type RangeContext interface {
	CurrentVision() int
	WieldingRocks() bool
	InGoodStanding(g shared.God, minBreakpoint int) bool
}

// vehumetExtras are the non-conjuration spells Vehumet extends
var vehumetExtras = map[ID]bool{
	FreezingCloud:         true,
	PoisonousCloud:        true,
	OzocubusRefrigeration: true,
	OlgrebsToxicRadiance:  true,
	ViolentUnravelling:    true,
	FireStorm:             true,
	Airstrike:             true,
	Tornado:               true,
	LRD:                   true,
}

// VehumetSupports reports whether Vehumet boosts the spell
func VehumetSupports(id ID) bool {
	return Schools(id).Has(SchoolConjuration) || vehumetExtras[id]
}

// PowerCap is the power beyond which the spell stops improving. When the
// spell and its zap both carry a cap, the smaller wins unless range varies
// with power, in which case the spell's own cap is kept.
func PowerCap(id ID) int {
	def, ok := Get(id)
	if !ok {
		return 0
	}
	return resolvePowerCap(def.PowerCap, zapPowerCaps[id], def.MinRange != def.MaxRange)
}

func resolvePowerCap(spellCap, zapCap int, rangeVaries bool) int {
	switch {
	case spellCap == 0:
		return zapCap
	case zapCap == 0:
		return spellCap
	case spellCap <= zapCap || rangeVaries:
		return spellCap
	default:
		return zapCap
	}
}

// Range is how far the spell reaches at the given power. Negative results
// mean the spell is not aimed.
func Range(id ID, power int, playerSpell bool, rc RangeContext) int {
	def, _ := Get(id)
	minRange, maxRange := def.MinRange, def.MaxRange

	if maxRange < 0 {
		return maxRange
	}

	if id == Sandblast && rc.WieldingRocks() {
		minRange++
		maxRange++
	}

	if playerSpell && VehumetSupports(id) && rc.InGoodStanding(shared.GodVehumet, 3) &&
		maxRange > 1 && id != Glaciate {
		maxRange++
		minRange++
	}

	vision := rc.CurrentVision()
	if minRange == maxRange {
		return min(minRange, vision)
	}

	powerCap := PowerCap(id)
	if powerCap <= power {
		return min(maxRange, vision)
	}

	r := (power*(maxRange-minRange)+powerCap/2)/powerCap + minRange
	return min(vision, r)
}

// explosionNoise is how loud an explosion of the given radius is
func explosionNoise(size int) int {
	return 10 + size*5
}

// EffectNoise is the noise of the spell's impact, as opposed to its
// casting.
func EffectNoise(id ID) int {
	size := 0
	switch id {
	case MephiticCloud, Fireball, ViolentUnravelling:
		size = 1
	case LRD:
		size = 2
	case FireStorm, ConjureBallLightning:
		size = 3
	}
	if size > 0 {
		return explosionNoise(size)
	}

	def, _ := Get(id)
	return def.EffectNoise
}
