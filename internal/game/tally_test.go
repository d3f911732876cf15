package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
)

func TestTally(t *testing.T) {
	tally := NewTally()
	assert.Equal(t, TallySnapshot{}, tally.Snapshot())

	tally.Record(core.SideHuman)
	tally.Record(core.SideHuman)
	tally.Record(core.SideComputer)
	tally.Record(core.SideNone)

	assert.Equal(t, 2, tally.Wins(core.SideHuman))
	assert.Equal(t, 1, tally.Wins(core.SideComputer))
	assert.Equal(t, 0, tally.Wins(core.SideNone))
	assert.Equal(t, TallySnapshot{Human: 2, Computer: 1}, tally.Snapshot())
}

func TestTally_Concurrent(t *testing.T) {
	tally := NewTally()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				tally.Record(core.SideHuman)
			} else {
				tally.Record(core.SideComputer)
			}
			_ = tally.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, TallySnapshot{Human: 25, Computer: 25}, tally.Snapshot())
}
