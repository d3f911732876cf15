package fleet

// Section is a rectangular region of the board used to spread random
// placements. Bounds are half-open: rows [Top, Bottom), cols [Left, Right).
type Section struct {
	Top, Left, Bottom, Right int
}

func (s Section) Empty() bool {
	return s.Bottom <= s.Top || s.Right <= s.Left
}

// Quadrants splits a size×size board in half along both axes. Empty
// quadrants (boards smaller than 2×2) are dropped.
func Quadrants(size int) []Section {
	half := size / 2
	all := []Section{
		{Top: 0, Left: 0, Bottom: half, Right: half},
		{Top: 0, Left: half, Bottom: half, Right: size},
		{Top: half, Left: 0, Bottom: size, Right: half},
		{Top: half, Left: half, Bottom: size, Right: size},
	}
	out := all[:0]
	for _, s := range all {
		if !s.Empty() {
			out = append(out, s)
		}
	}
	return out
}
