// Package cost holds the resource cost value types attached to abilities.
package cost

import (
	"github.com/KirkDiggler/crawl-talents/internal/dice"
)

// Generic is a randomised cost: Base plus an averaged draw below Add.
// It is used for piety.
type Generic struct {
	Base  int `json:"base"`
	Add   int `json:"add"`
	Rolls int `json:"rolls"`
}

// Fixed always costs exactly n
func Fixed(n int) Generic {
	return Generic{Base: n, Add: 0, Rolls: 1}
}

// Range costs between low and high inclusive
func Range(low, high int) Generic {
	return RangeRolls(low, high, 1)
}

// RangeRolls costs between low and high, with more rolls pulling the
// result toward the middle.
func RangeRolls(low, high, rolls int) Generic {
	return Generic{Base: low, Add: high - low + 1, Rolls: rolls}
}

// Approx costs n plus a random surcharge of up to about half of n
func Approx(n int) Generic {
	add := 0
	if n != 0 {
		add = (n+1)/2 + 1
	}
	return Generic{Base: n, Add: add, Rolls: 1}
}

// Cost draws an amount
func (g Generic) Cost(r dice.Roller) int {
	if g.Add > 0 {
		return g.Base + r.Random2Avg(g.Add, g.Rolls)
	}
	return g.Base
}

// Any reports whether the cost can ever be non-zero
func (g Generic) Any() bool {
	return g.Base > 0 || g.Add > 0
}

// Average is the expected amount, used for descriptions
func (g Generic) Average() int {
	return g.Base + g.Add/2
}

// Scaling is either a fixed amount (negative Value) or a per-mille share of
// a resource ceiling (positive Value).
type Scaling struct {
	Value int `json:"value"`
}

// FixedScaling always costs exactly n
func FixedScaling(n int) Scaling {
	return Scaling{Value: -n}
}

// PerMille costs v thousandths of the ceiling, rounded up
func PerMille(v int) Scaling {
	return Scaling{Value: v}
}

// Cost resolves the amount against the current ceiling
func (s Scaling) Cost(max int) int {
	switch {
	case s.Value < 0:
		return -s.Value
	case s.Value > 0:
		return (s.Value*max + 999) / 1000
	default:
		return 0
	}
}

// Any reports whether the cost is set
func (s Scaling) Any() bool {
	return s.Value != 0
}
