package input

// Script is a programmable Provider for tests and the debug console. Taps
// report as just-pressed for exactly one frame; Step advances the frame.
type Script struct {
	held map[Action]bool
	taps map[Action]bool
	prev map[Action]bool
}

func NewScript() *Script {
	return &Script{
		held: make(map[Action]bool),
		taps: make(map[Action]bool),
		prev: make(map[Action]bool),
	}
}

// Hold marks an action as held until Release.
func (s *Script) Hold(a Action) {
	s.held[a] = true
}

// Release clears a held action.
func (s *Script) Release(a Action) {
	delete(s.held, a)
}

// Tap makes the action pressed and just-pressed for the current frame only.
func (s *Script) Tap(a Action) {
	s.taps[a] = true
}

// Step ends the current frame: taps are consumed and held edges recorded.
func (s *Script) Step() {
	for a := range s.taps {
		delete(s.taps, a)
	}
	for a := Action(0); a < actionCount; a++ {
		s.prev[a] = s.held[a]
	}
}

func (s *Script) Pressed(a Action) bool {
	return s.held[a] || s.taps[a]
}

func (s *Script) JustPressed(a Action) bool {
	if s.taps[a] {
		return true
	}
	return s.held[a] && !s.prev[a]
}
