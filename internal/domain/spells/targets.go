package spells

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// TraceResult counts who a tracer beam would hit
type TraceResult struct {
	Foes    int
	Friends int
}

// Battlefield is the caster's view of nearby monsters, used to decide
// whether a spell has anything to hit.
type Battlefield interface {
	RangeContext

	// NearestFoeDistance is the distance to the closest visible hostile,
	// or -1 when there is none.
	NearestFoeDistance() int
	// CellsWithin lists the visible cells up to rng away from the caster.
	CellsWithin(rng int) []shared.Coord
	// CloudThreatens reports whether a cloud aimed at aim would cover a
	// threatening monster that is not allied.
	CloudThreatens(id ID, aim shared.Coord, rng int) bool
	// Trace fires a harmless tracer of the spell's beam at target.
	Trace(id ID, target shared.Coord, rng int) TraceResult
}

// NoHostileInRange reports whether casting the spell now could not reach
// any hostile monster.
func NoHostileInRange(id ID, bf Battlefield) bool {
	rng := Range(id, 0, true, bf)
	nearest := bf.NearestFoeDistance()

	switch id {
	// these target terrain or items, never monsters
	case Apportation, ConjureFlame, Passwall, GolubriasPassage, LRD,
		FulminantPrism, SummonLightningSpire, FireStorm:
		return false

	case ChainLightning, OzocubusRefrigeration, OlgrebsToxicRadiance:
		return nearest > LOSRadius

	case FreezingCloud, PoisonousCloud, HolyBreath:
		for _, aim := range bf.CellsWithin(rng) {
			if bf.CloudThreatens(id, aim, rng) {
				return false
			}
		}
		return true
	}

	if nearest < 0 || rng < 0 {
		return false
	}

	flags := FlagsOf(id)
	if flags.Has(FlagHelpful) {
		return false
	}

	if _, zap := zapPowerCaps[id]; zap {
		neutral := flags.Has(FlagNeutral)
		for _, cell := range bf.CellsWithin(rng) {
			res := bf.Trace(id, cell, rng)
			if res.Foes > 0 || neutral && res.Friends > 0 {
				return false
			}
		}
		return true
	}

	return rng < nearest
}
