package world

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

// battlefield answers targeting questions against a monster list on open
// ground. Walls and line of sight are not modelled.
type battlefield struct {
	spells.RangeContext
	monsters []Monster
}

var origin = shared.Coord{}

func (b *battlefield) NearestFoeDistance() int {
	best := -1
	for _, m := range b.monsters {
		if !m.Hostile {
			continue
		}
		if d := origin.Distance(m.Pos); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func (b *battlefield) CellsWithin(rng int) []shared.Coord {
	if rng < 0 {
		return nil
	}
	rng = min(rng, b.CurrentVision())

	cells := make([]shared.Coord, 0, (2*rng+1)*(2*rng+1))
	for y := -rng; y <= rng; y++ {
		for x := -rng; x <= rng; x++ {
			c := shared.Coord{X: x, Y: y}
			if c != origin {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// CloudThreatens models a radius one cloud centred on aim
func (b *battlefield) CloudThreatens(_ spells.ID, aim shared.Coord, rng int) bool {
	if origin.Distance(aim) > rng {
		return false
	}
	for _, m := range b.monsters {
		if m.Hostile && m.Threatening && aim.Distance(m.Pos) <= 1 {
			return true
		}
	}
	return false
}

// Trace walks a line from the player toward target for rng cells and
// counts every monster standing on it.
func (b *battlefield) Trace(_ spells.ID, target shared.Coord, rng int) TraceResult {
	var res spells.TraceResult
	for _, c := range line(origin, target, rng) {
		for _, m := range b.monsters {
			if m.Pos != c {
				continue
			}
			if m.Hostile {
				res.Foes++
			} else {
				res.Friends++
			}
		}
	}
	return res
}

// TraceResult is re-exported so callers can build expectations without
// importing the spells package.
type TraceResult = spells.TraceResult

// line returns the cells of a Bresenham line from a toward b, extended
// past b, stopping after n steps.
func line(a, b shared.Coord, n int) []shared.Coord {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 || n <= 0 {
		return nil
	}

	sx, sy := sign(dx), sign(dy)
	dx, dy = dx*sx, dy*sy

	out := make([]shared.Coord, 0, n)
	x, y := a.X, a.Y
	if dx >= dy {
		errAcc := dx / 2
		for len(out) < n {
			x += sx
			errAcc -= dy
			if errAcc < 0 {
				y += sy
				errAcc += dx
			}
			out = append(out, shared.Coord{X: x, Y: y})
		}
		return out
	}

	errAcc := dy / 2
	for len(out) < n {
		y += sy
		errAcc -= dx
		if errAcc < 0 {
			x += sx
			errAcc += dy
		}
		out = append(out, shared.Coord{X: x, Y: y})
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
