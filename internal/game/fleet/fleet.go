// Package fleet holds the fleet composition each side has to place and the
// randomized placement engine used for the computer fleet and auto-placement.
package fleet

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoShipsRemaining   = errors.New("no ships of that size remaining")
	ErrPlacementExhausted = errors.New("random placement exhausted its attempts")
	ErrInvalidFleet       = errors.New("invalid fleet")
)

// DefaultCounts is the standard fleet: one 5, two 3s and three 2s.
func DefaultCounts() map[int]int {
	return map[int]int{5: 1, 3: 2, 2: 3}
}

// Fleet tracks how many ships of each length are still waiting to be placed.
type Fleet struct {
	remaining map[int]int
}

// New builds a fleet from a length -> count mapping. Lengths and counts must
// be positive.
func New(counts map[int]int) (*Fleet, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: no ships", ErrInvalidFleet)
	}
	remaining := make(map[int]int, len(counts))
	for length, count := range counts {
		if length <= 0 || count <= 0 {
			return nil, fmt.Errorf("%w: length %d count %d", ErrInvalidFleet, length, count)
		}
		remaining[length] = count
	}
	return &Fleet{remaining: remaining}, nil
}

// Default returns a fresh copy of the standard fleet.
func Default() *Fleet {
	f, _ := New(DefaultCounts())
	return f
}

// Remaining returns how many ships of the given length are left to place.
func (f *Fleet) Remaining(length int) int {
	return f.remaining[length]
}

// Take consumes one ship of the given length.
func (f *Fleet) Take(length int) error {
	if f.remaining[length] <= 0 {
		return fmt.Errorf("size %d: %w", length, ErrNoShipsRemaining)
	}
	f.remaining[length]--
	return nil
}

// Done reports whether every ship has been placed.
func (f *Fleet) Done() bool {
	return f.Ships() == 0
}

// Ships returns the number of ships still to place.
func (f *Fleet) Ships() int {
	n := 0
	for _, count := range f.remaining {
		n += count
	}
	return n
}

// Cells returns the number of board cells the remaining ships will cover.
func (f *Fleet) Cells() int {
	n := 0
	for length, count := range f.remaining {
		n += length * count
	}
	return n
}

// Lengths returns every length in the fleet, largest first, including
// lengths whose count has dropped to zero.
func (f *Fleet) Lengths() []int {
	lengths := make([]int, 0, len(f.remaining))
	for length := range f.remaining {
		lengths = append(lengths, length)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	return lengths
}

// Sizes expands the remaining ships into a placement sequence, largest
// first. The default fleet yields 5,3,3,2,2,2.
func (f *Fleet) Sizes() []int {
	var sizes []int
	for _, length := range f.Lengths() {
		for i := 0; i < f.remaining[length]; i++ {
			sizes = append(sizes, length)
		}
	}
	return sizes
}

// Counts returns a copy of the length -> remaining mapping.
func (f *Fleet) Counts() map[int]int {
	out := make(map[int]int, len(f.remaining))
	for length, count := range f.remaining {
		out[length] = count
	}
	return out
}

func (f *Fleet) Clone() *Fleet {
	return &Fleet{remaining: f.Counts()}
}
