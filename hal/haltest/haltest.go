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

// Package haltest provides scripted peripherals that run on virtual time.
package haltest

import (
	"errors"
	"image/color"
	"time"

	"reflex/hal"
)

// Time is a virtual clock. Sleep advances it instantly, so a whole game
// session runs in microseconds of wall time.
type Time struct {
	now     time.Duration
	base    time.Duration
	held    uint32
	running bool

	// Sleeps records every requested sleep in order.
	Sleeps []time.Duration
}

func (t *Time) Sleep(d time.Duration) {
	t.Sleeps = append(t.Sleeps, d)
	t.now += d
}

// Advance moves virtual time without recording a sleep.
func (t *Time) Advance(d time.Duration) {
	t.now += d
}

// Slept is the sum of all recorded sleeps.
func (t *Time) Slept() time.Duration {
	var total time.Duration
	for _, d := range t.Sleeps {
		total += d
	}
	return total
}

func (t *Time) Reset() {
	t.base = t.now
	t.held = 0
}

func (t *Time) Start() {
	if !t.running {
		t.base = t.now - time.Duration(t.held)*time.Millisecond
		t.running = true
	}
}

func (t *Time) Millis() uint32 {
	if !t.running {
		return t.held
	}
	return uint32((t.now - t.base) / time.Millisecond)
}

// Buttons replays a fixed list of samples, then repeats Tail forever.
type Buttons struct {
	Samples []hal.Mask
	Tail    hal.Mask
	Reads   int
}

func (b *Buttons) Read() hal.Mask {
	b.Reads++
	if len(b.Samples) == 0 {
		return b.Tail
	}
	m := b.Samples[0]
	b.Samples = b.Samples[1:]
	return m
}

// Push appends samples to the script.
func (b *Buttons) Push(m ...hal.Mask) {
	b.Samples = append(b.Samples, m...)
}

// Idle returns n released samples.
func Idle(n int) []hal.Mask {
	return make([]hal.Mask, n)
}

// Click is a release followed by a press of m.
func Click(m hal.Mask) []hal.Mask {
	return []hal.Mask{0, m}
}

// Reaction scripts a Select press that a 10 ms poller sees after ms
// milliseconds.
func Reaction(ms int) []hal.Mask {
	return append(Idle(ms/10), hal.Select)
}

// Light reports a fixed ambient reading.
type Light struct {
	Value uint32
	Reads int
}

func (l *Light) Read() uint32 {
	l.Reads++
	return l.Value
}

// Accel reports a fixed accelerometer reading.
type Accel struct {
	X, Y, Z int8
	Reads   int
}

func (a *Accel) Read() (int8, int8, int8) {
	a.Reads++
	return a.X, a.Y, a.Z
}

// Pin counts edges on a digital line.
type Pin struct {
	Highs int
	Lows  int
	Level bool
}

func (p *Pin) High() {
	p.Highs++
	p.Level = true
}

func (p *Pin) Low() {
	p.Lows++
	p.Level = false
}

// Edges is the number of level writes seen.
func (p *Pin) Edges() int {
	return p.Highs + p.Lows
}

// Text is one PutText call.
type Text struct {
	X, Y   int16
	Text   string
	FG, BG color.RGBA
}

// Display records what was drawn since the last clear.
type Display struct {
	W, H    int16
	Texts   []Text
	Pixels  map[[2]int16]color.RGBA
	Clears  int
	Flushes int
	BG      color.RGBA

	// History keeps every text ever drawn, across clears.
	History []string
}

func NewDisplay() *Display {
	return &Display{W: 96, H: 64, Pixels: map[[2]int16]color.RGBA{}}
}

func (d *Display) ClearScreen(bg color.RGBA) {
	d.Clears++
	d.BG = bg
	d.Texts = nil
	d.Pixels = map[[2]int16]color.RGBA{}
}

func (d *Display) PutText(x, y int16, text string, fg, bg color.RGBA) {
	d.Texts = append(d.Texts, Text{X: x, Y: y, Text: text, FG: fg, BG: bg})
	d.History = append(d.History, text)
}

func (d *Display) PutPixel(x, y int16, c color.RGBA) {
	d.Pixels[[2]int16{x, y}] = c
}

func (d *Display) Size() (int16, int16) {
	return d.W, d.H
}

func (d *Display) Flush() {
	d.Flushes++
}

// Shows reports whether text is currently on screen.
func (d *Display) Shows(text string) bool {
	for _, t := range d.Texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Showed reports whether text was ever drawn.
func (d *Display) Showed(text string) bool {
	for _, t := range d.History {
		if t == text {
			return true
		}
	}
	return false
}

// Progress records indicator updates.
type Progress struct {
	Rounds []int
	Clears int
}

func (p *Progress) SetRound(round int) {
	p.Rounds = append(p.Rounds, round)
}

func (p *Progress) Clear() {
	p.Clears++
}

// ErrStore is returned by BrokenStore.
var ErrStore = errors.New("haltest: store offline")

// BrokenStore fails every access and leaves the buffer untouched.
type BrokenStore struct{}

func (BrokenStore) ReadAt(p []byte, off int64) (int, error)  { return 0, ErrStore }
func (BrokenStore) WriteAt(p []byte, off int64) (int, error) { return 0, ErrStore }
