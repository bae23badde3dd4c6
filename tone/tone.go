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

// Package tone plays square-wave note sequences. Playback runs to
// completion; nothing interrupts a note or a sequence once started.
package tone

import (
	"time"

	"reflex/hal"
	"reflex/internal/log"
)

// Note is one tone. A zero period is a rest of the same duration.
type Note struct {
	PeriodMicros uint32
	DurationMs   uint32
}

// Rest returns a silent note.
func Rest(ms uint32) Note {
	return Note{DurationMs: ms}
}

type Sequence []Note

// Cycles is the number of whole periods needed to cover the note's
// duration, so the sounding time rounds up to a multiple of the period.
func (n Note) Cycles() uint32 {

	if n.PeriodMicros == 0 {
		return 0
	}

	total := uint64(n.DurationMs) * 1000
	period := uint64(n.PeriodMicros)

	return uint32((total + period - 1) / period)
}

// Sounding is how long the note actually occupies the output.
func (n Note) Sounding() time.Duration {

	if n.PeriodMicros == 0 {
		return time.Duration(n.DurationMs) * time.Millisecond
	}

	return time.Duration(n.Cycles()) * time.Duration(n.PeriodMicros) * time.Microsecond
}

// Voice renders whole cycles of a square wave.
type Voice interface {
	Square(period time.Duration, cycles uint32)
}

// Waveform picks how long a PinVoice holds each level.
type Waveform uint8

const (
	// Corrected holds each level for half a period, so one cycle lasts
	// exactly one period.
	Corrected Waveform = iota

	// QuarterPeriod holds each level for a quarter period. Each cycle
	// then takes half the nominal time and the pitch doubles; this
	// matches the sound of the first hardware revision.
	QuarterPeriod
)

// PinVoice bit-bangs a square wave on a digital line.
type PinVoice struct {
	pin      hal.Pin
	sleeper  hal.Sleeper
	waveform Waveform
}

func NewPinVoice(pin hal.Pin, sleeper hal.Sleeper, waveform Waveform) *PinVoice {
	return &PinVoice{pin: pin, sleeper: sleeper, waveform: waveform}
}

// Hold is the time each level is held for the given period.
func (v *PinVoice) Hold(period time.Duration) time.Duration {
	if v.waveform == QuarterPeriod {
		return period / 4
	}
	return period / 2
}

func (v *PinVoice) Square(period time.Duration, cycles uint32) {

	hold := v.Hold(period)
	for i := uint32(0); i < cycles; i++ {
		v.pin.High()
		v.sleeper.Sleep(hold)
		v.pin.Low()
		v.sleeper.Sleep(hold)
	}
}

// SilentVoice takes the same time as a sounding note without output.
type SilentVoice struct {
	sleeper hal.Sleeper
}

func NewSilentVoice(sleeper hal.Sleeper) SilentVoice {
	return SilentVoice{sleeper: sleeper}
}

func (v SilentVoice) Square(period time.Duration, cycles uint32) {
	v.sleeper.Sleep(period * time.Duration(cycles))
}

// Sequencer plays notes one after another on a Voice.
type Sequencer struct {
	voice   Voice
	sleeper hal.Sleeper
	logger  *log.Logger
}

func NewSequencer(voice Voice, sleeper hal.Sleeper, logger *log.Logger) *Sequencer {
	return &Sequencer{voice: voice, sleeper: sleeper, logger: logger}
}

func (s *Sequencer) PlayNote(n Note) {

	if n.PeriodMicros == 0 {
		s.sleeper.Sleep(time.Duration(n.DurationMs) * time.Millisecond)
		return
	}

	s.voice.Square(time.Duration(n.PeriodMicros)*time.Microsecond, n.Cycles())
}

func (s *Sequencer) PlaySequence(seq Sequence) {

	s.logger.Debugf("tone: playing %d notes", len(seq))
	for _, n := range seq {
		s.PlayNote(n)
	}
}
