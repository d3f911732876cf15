package game

import (
	"sync"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

// Tally counts rounds won per side. One Tally is created per process and
// shared by every Session so that it outlives restarts.
type Tally struct {
	mu       sync.Mutex
	human    int
	computer int
}

// TallySnapshot is a point-in-time copy of a Tally
type TallySnapshot struct {
	Human    int
	Computer int
}

func NewTally() *Tally {
	return &Tally{}
}

// Record credits one win to the given side. SideNone is ignored.
func (t *Tally) Record(winner core.Side) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch winner {
	case core.SideHuman:
		t.human++
	case core.SideComputer:
		t.computer++
	}
}

// Wins returns the number of rounds won by side.
func (t *Tally) Wins(side core.Side) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch side {
	case core.SideHuman:
		return t.human
	case core.SideComputer:
		return t.computer
	default:
		return 0
	}
}

func (t *Tally) Snapshot() TallySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TallySnapshot{Human: t.human, Computer: t.computer}
}
