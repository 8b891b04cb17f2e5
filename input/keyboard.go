package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard is the ebiten-backed Provider. Each action can be bound to
// several keys; the first pressed binding wins.
type Keyboard struct {
	bindings map[Action][]ebiten.Key
	buttons  map[Action]ebiten.StandardGamepadButton
}

// NewKeyboard creates a provider with the default bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		bindings: map[Action][]ebiten.Key{
			Left:    {ebiten.KeyA, ebiten.KeyArrowLeft},
			Right:   {ebiten.KeyD, ebiten.KeyArrowRight},
			Up:      {ebiten.KeyW, ebiten.KeyArrowUp},
			Down:    {ebiten.KeyS, ebiten.KeyArrowDown},
			Jump:    {ebiten.KeySpace},
			Run:     {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			Dash:    {ebiten.KeyK},
			Blink:   {ebiten.KeyL},
			Warp:    {ebiten.KeySemicolon},
			Hook:    {ebiten.KeyE},
			Attack:  {ebiten.KeyJ},
			Pause:   {ebiten.KeyEscape},
			Console: {ebiten.KeyBackquote},
		},
		buttons: map[Action]ebiten.StandardGamepadButton{
			Jump:   ebiten.StandardGamepadButtonRightBottom,
			Dash:   ebiten.StandardGamepadButtonRightRight,
			Attack: ebiten.StandardGamepadButtonRightLeft,
			Hook:   ebiten.StandardGamepadButtonRightTop,
			Pause:  ebiten.StandardGamepadButtonCenterRight,
		},
	}
}

func (k *Keyboard) Pressed(a Action) bool {
	if k == nil {
		return false
	}
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	if btn, ok := k.buttons[a]; ok {
		for _, id := range ebiten.GamepadIDs() {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return k.stickPressed(a)
}

func (k *Keyboard) JustPressed(a Action) bool {
	if k == nil {
		return false
	}
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	if btn, ok := k.buttons[a]; ok {
		for _, id := range ebiten.GamepadIDs() {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

const stickDeadzone = 0.2

// stickPressed maps the left stick to the directional actions.
func (k *Keyboard) stickPressed(a Action) bool {
	gamepads := ebiten.GamepadIDs()
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

	switch a {
	case Left:
		return x < -stickDeadzone
	case Right:
		return x > stickDeadzone
	case Up:
		return y < -stickDeadzone
	case Down:
		return y > stickDeadzone
	}
	return false
}
