/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package theme

import (
	"image/color"
)

// Threshold is the lowest light reading that selects the light theme.
// There is no hysteresis, so readings around it can flip on every poll.
const Threshold uint32 = 125

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

type State uint8

const (
	Dark State = iota
	Light
)

func (s State) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// Colors returns the (foreground, background) pair for s.
func (s State) Colors() (fg, bg color.RGBA) {
	if s == Light {
		return Black, White
	}
	return White, Black
}

// For maps a light reading to a theme.
func For(reading uint32) State {
	if reading < Threshold {
		return Dark
	}
	return Light
}

// Manager remembers the last decision so callers can react to changes.
type Manager struct {
	state State
}

// New starts in the light theme, black text on white, so the first
// reading in a dark room counts as a change.
func New() *Manager {
	return &Manager{state: Light}
}

func (m *Manager) State() State {
	return m.state
}

func (m *Manager) Colors() (fg, bg color.RGBA) {
	return m.state.Colors()
}

// Recompute applies a new reading and reports whether the theme changed.
func (m *Manager) Recompute(reading uint32) (State, bool) {
	next := For(reading)
	changed := next != m.state
	m.state = next
	return next, changed
}
