package manager

import "snake3d/game/types"

// DirectionState holds one flag per heading. At most one is set.
type DirectionState struct {
	Up, Down, Left, Right bool
}

type InputController struct {
	state DirectionState
}

func NewInputController() *InputController {
	return &InputController{}
}

// HandleKey applies an arrow key. A key is rejected while the opposite
// heading is active, so the snake can never reverse into itself.
func (ic *InputController) HandleKey(k types.Key) bool {
	var dir types.Direction
	switch k {
	case types.KeyLeft:
		dir = types.Left
	case types.KeyUp:
		dir = types.Up
	case types.KeyRight:
		dir = types.Right
	case types.KeyDown:
		dir = types.Down
	default:
		return false
	}

	if ic.isSet(dir.Opposite()) {
		return false
	}
	ic.set(dir)
	return true
}

// Reset forces a heading regardless of the current one
func (ic *InputController) Reset(dir types.Direction) {
	ic.set(dir)
}

func (ic *InputController) State() DirectionState {
	return ic.state
}

// Direction returns the active heading, or types.None before any input
func (ic *InputController) Direction() types.Direction {
	switch {
	case ic.state.Up:
		return types.Up
	case ic.state.Down:
		return types.Down
	case ic.state.Left:
		return types.Left
	case ic.state.Right:
		return types.Right
	}
	return types.None
}

func (ic *InputController) isSet(dir types.Direction) bool {
	switch dir {
	case types.Up:
		return ic.state.Up
	case types.Down:
		return ic.state.Down
	case types.Left:
		return ic.state.Left
	case types.Right:
		return ic.state.Right
	}
	return false
}

func (ic *InputController) set(dir types.Direction) {
	ic.state = DirectionState{
		Up:    dir == types.Up,
		Down:  dir == types.Down,
		Left:  dir == types.Left,
		Right: dir == types.Right,
	}
}
