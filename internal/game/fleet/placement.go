package fleet

import "github.com/mitchelldurbincs/Battleship/internal/game/core"

// IsValidPlacement reports whether the ship can go on the board without
// leaving it, overlapping a ship, or touching one (diagonals included).
func IsValidPlacement(b *core.Board, p core.Placement) bool {
	return core.ValidatePlacement(b, p) == nil
}

// Validate is IsValidPlacement with the reason attached. The error wraps
// core.ErrInvalidPlacement.
func Validate(b *core.Board, p core.Placement) error {
	return core.ValidatePlacement(b, p)
}
