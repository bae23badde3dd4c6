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
package main

import (
	"fmt"
	"sync"
	"time"

	"reflex/hal"
	"reflex/internal/config"
	"reflex/internal/log"
	"reflex/tone"
)

const (
	// Rest pose of the board: flat, 1g on Z
	restZ int8 = 64

	// X offset a tilt key press applies, past the tilt limit
	tiltX int8 = 40

	lightStep uint32 = 50

	// A key press reads as held for this many samples, then released
	holdReads = 2
)

// bench is the simulated board. Key handling runs on its own goroutine
// while the game polls from another, so every field sits behind mu.
type bench struct {
	mu        sync.Mutex
	light     uint32
	tiltReads int
	samples   []hal.Mask
	round     int
	note      string
	edges     int
}

func newBench(light uint32) *bench {
	return &bench{light: light, round: -1}
}

// press queues one momentary press of m.
func (b *bench) press(m hal.Mask) {

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := 0; i < holdReads; i++ {
		b.samples = append(b.samples, m)
	}
	b.samples = append(b.samples, 0)
}

// tilt makes the next accelerometer sample read as tilted.
func (b *bench) tilt() {

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tiltReads = 1
}

func (b *bench) dim() {

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.light < lightStep {
		b.light = 0
		return
	}
	b.light -= lightStep
}

func (b *bench) brighten() {

	b.mu.Lock()
	defer b.mu.Unlock()

	b.light += lightStep
}

// Status is the line printed under the panel.
func (b *bench) Status() string {

	b.mu.Lock()
	defer b.mu.Unlock()

	round := "-"
	if b.round >= 0 {
		round = fmt.Sprintf("%d", b.round+1)
	}
	note := b.note
	if note == "" {
		note = "-"
	}

	return fmt.Sprintf("light %d  round %s  note %s  edges %d", b.light, round, note, b.edges)
}

type benchButtons struct{ *bench }

func (b benchButtons) Read() hal.Mask {

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.samples) == 0 {
		return 0
	}
	m := b.samples[0]
	b.samples = b.samples[1:]
	return m
}

type benchLight struct{ *bench }

func (b benchLight) Read() uint32 {

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.light
}

type benchAccel struct{ *bench }

func (b benchAccel) Read() (int8, int8, int8) {

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tiltReads > 0 {
		b.tiltReads--
		return tiltX, 0, restZ
	}
	return 0, 0, restZ
}

type benchProgress struct{ *bench }

func (b benchProgress) SetRound(round int) {

	b.mu.Lock()
	defer b.mu.Unlock()

	b.round = round
}

func (b benchProgress) Clear() {

	b.mu.Lock()
	defer b.mu.Unlock()

	b.round = -1
}

// benchPin counts the edges a bit-banged voice produces.
type benchPin struct{ *bench }

func (b benchPin) High() {

	b.mu.Lock()
	defer b.mu.Unlock()

	b.edges++
}

func (b benchPin) Low() {}

// namedVoice reports each note it plays by name before passing it on.
type namedVoice struct {
	*bench
	voice  tone.Voice
	logger *log.Logger
}

func (v namedVoice) Square(period time.Duration, cycles uint32) {

	name := noteName(midiKey(uint32(period.Microseconds())))

	v.mu.Lock()
	v.note = name
	v.mu.Unlock()

	v.logger.Debugf("voice: %s for %d cycles", name, cycles)
	v.voice.Square(period, cycles)
}

// voice builds the configured voice around the bench's speaker pin.
func (b *bench) voice(cfg config.Config, sleeper hal.Sleeper, logger *log.Logger) tone.Voice {

	var inner tone.Voice
	switch cfg.Voice {
	case config.VoicePin:
		wave := tone.Corrected
		if cfg.Waveform == config.WaveformQuarter {
			wave = tone.QuarterPeriod
		}
		inner = tone.NewPinVoice(benchPin{b}, sleeper, wave)
	case config.VoicePWM:
		logger.Warnf("voice: no PWM on this host, notes will be silent")
		inner = tone.NewSilentVoice(sleeper)
	default:
		inner = tone.NewSilentVoice(sleeper)
	}

	return namedVoice{bench: b, voice: inner, logger: logger}
}
