package shared

// Coord is a map cell
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Distance is the grid distance between two cells; diagonals count as one
// step.
func (c Coord) Distance(o Coord) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
