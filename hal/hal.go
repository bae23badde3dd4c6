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

// Package hal describes the peripherals the game core drives. The firmware
// binds them to TinyGo drivers; the simulator and the tests bind them to
// host implementations.
package hal

import (
	"image/color"
	"time"
)

// Mask is a raw sample of the directional input, one bit per switch.
type Mask uint8

const (
	Up Mask = 1 << iota
	Down
	Left
	Right
	Select

	// All is every switch held, used to prime edge detection at boot.
	All = Up | Down | Left | Right | Select
)

// Has reports whether every bit of b is set in m.
func (m Mask) Has(b Mask) bool {
	return m&b == b && b != 0
}

// Display is a fixed-size monochrome pixel grid with text support.
type Display interface {
	ClearScreen(bg color.RGBA)
	PutText(x, y int16, text string, fg, bg color.RGBA)
	PutPixel(x, y int16, c color.RGBA)
	Size() (w, h int16)
	// Flush pushes the composed frame to the panel.
	Flush()
}

// LightSensor returns an ambient intensity that rises with brightness.
type LightSensor interface {
	Read() uint32
}

// Accelerometer returns raw signed 8-bit axis samples.
type Accelerometer interface {
	Read() (x, y, z int8)
}

// Buttons returns the current directional input state.
type Buttons interface {
	Read() Mask
}

// Pin is a single digital output line. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// ByteStore is byte-addressed persistent memory such as an I2C EEPROM.
type ByteStore interface {
	ReadAt(p []byte, off int64) (n int, err error)
	WriteAt(p []byte, off int64) (n int, err error)
}

// Clock is a free-running millisecond counter.
type Clock interface {
	Reset()
	Start()
	Millis() uint32
}

// Sleeper suspends the single control flow for a fixed time.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Progress shows the current round on a row of indicator LEDs.
type Progress interface {
	SetRound(round int)
	Clear()
}

// NopProgress is used when a board has no progress indicator.
type NopProgress struct{}

func (NopProgress) SetRound(int) {}
func (NopProgress) Clear()       {}
