// Package input defines the action-keyed input contract the gameplay core
// consumes. The core never sees raw key codes; bindings live in the
// keyboard provider.
package input

// Action is a logical game input.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Jump
	Run
	Dash
	Blink
	Warp
	Hook
	Attack
	Pause
	Console
	actionCount
)

var actionNames = [actionCount]string{
	"left", "right", "up", "down", "jump", "run",
	"dash", "blink", "warp", "hook", "attack", "pause", "console",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Provider is polled once per frame by gameplay components.
type Provider interface {
	// Pressed reports whether the action is currently held.
	Pressed(a Action) bool
	// JustPressed reports whether the action went down this frame.
	JustPressed(a Action) bool
}
