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

// Package input turns raw directional samples into press events.
package input

import (
	"reflex/hal"
)

// Edges holds the switches that went from released to pressed in one poll.
type Edges hal.Mask

// Event is the single press a poll resolves to.
type Event uint8

const (
	None Event = iota
	Up
	Down
	Select
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Select:
		return "select"
	default:
		return "none"
	}
}

// First resolves simultaneous edges by checking Down, then Up, then Select.
func (e Edges) First() Event {
	m := hal.Mask(e)
	switch {
	case m.Has(hal.Down):
		return Down
	case m.Has(hal.Up):
		return Up
	case m.Has(hal.Select):
		return Select
	}
	return None
}

// Has reports whether the switch b produced an edge.
func (e Edges) Has(b hal.Mask) bool {
	return hal.Mask(e).Has(b)
}

// Debouncer compares each sample with the previous one. Holding a switch
// yields one event; it must be released and pressed again to fire twice.
type Debouncer struct {
	buttons  hal.Buttons
	previous hal.Mask
}

// New primes the previous sample as all-pressed, so a switch already held
// at boot does not fire until it is released.
func New(buttons hal.Buttons) *Debouncer {
	return &Debouncer{buttons: buttons, previous: hal.All}
}

// Poll reads one sample and returns its rising edges.
func (d *Debouncer) Poll() Edges {

	current := d.buttons.Read()
	rising := current &^ d.previous
	d.previous = current

	return Edges(rising)
}
