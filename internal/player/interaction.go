package player

import (
	"termcraft/internal/physics"
	"termcraft/internal/world"
)

// EditCommand is a requested change to the grid.
type EditCommand int

const (
	EditNone EditCommand = iota
	EditBreak
	EditPlace
)

// CommandFor picks the edit requested by a frame's break and place flags.
// Break wins when both are set.
func CommandFor(breakBlock, placeBlock bool) EditCommand {
	switch {
	case breakBlock:
		return EditBreak
	case placeBlock:
		return EditPlace
	default:
		return EditNone
	}
}

// Edit applies cmd to g at the picked cells and reports whether the grid
// changed. Without a solid target every command is a no-op.
func Edit(g *world.Grid, pick physics.RaycastResult, cmd EditCommand, block world.BlockType) bool {
	if !pick.HasSolid() {
		return false
	}
	switch cmd {
	case EditBreak:
		g.Set(pick.Solid, world.Empty)
		return true
	case EditPlace:
		if !pick.HasEmpty() {
			return false
		}
		g.Set(pick.Empty, block)
		return true
	default:
		return false
	}
}
