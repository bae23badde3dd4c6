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
package orchestrator

import (
	"math/rand"
	"time"

	"reflex/hal"
	"reflex/input"
	"reflex/internal/log"
	"reflex/menu"
	"reflex/score"
	"reflex/screen"
	"reflex/session"
	"reflex/theme"
	"reflex/tilt"
	"reflex/timer"
	"reflex/tone"
)

// Peripherals are the initialised devices the game runs on.
type Peripherals struct {
	Display  hal.Display
	Light    hal.LightSensor
	Accel    hal.Accelerometer
	Buttons  hal.Buttons
	Store    hal.ByteStore
	Clock    hal.Clock
	Sleeper  hal.Sleeper
	Progress hal.Progress
	Voice    tone.Voice
}

type Options struct {
	// Seed for stimulus delays; zero seeds from the light sensor.
	Seed int64

	// FrameDelay paces the startup animation.
	FrameDelay time.Duration
}

// Context is all mutable game state: theme, calibration, menu position,
// the score store and the random source. Only the orchestrator's single
// control flow touches it, so it carries no locks.
type Context struct {
	Peripherals

	Theme   *theme.Manager
	Tilt    *tilt.Monitor
	Input   *input.Debouncer
	Menu    *menu.Controller
	Timer   *timer.ReactionTimer
	Tones   *tone.Sequencer
	Scores  *score.Store
	Screen  *screen.Screen
	Rand    *rand.Rand
	Seed    int64
	Logger  *log.Logger
	Options Options
}

// NewContext wires the components together. The random source is seeded
// here, once, from Options.Seed or the ambient light.
func NewContext(p Peripherals, opts Options, logger *log.Logger) *Context {

	if p.Progress == nil {
		p.Progress = hal.NopProgress{}
	}
	if p.Voice == nil {
		p.Voice = tone.NewSilentVoice(p.Sleeper)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = int64(p.Light.Read())
	}

	tm := theme.New()
	in := input.New(p.Buttons)

	return &Context{
		Peripherals: p,
		Theme:       tm,
		Tilt:        tilt.New(p.Accel),
		Input:       in,
		Menu:        menu.New(menu.Main),
		Timer:       timer.New(p.Clock, p.Sleeper, in),
		Tones:       tone.NewSequencer(p.Voice, p.Sleeper, logger),
		Scores:      score.New(p.Store, logger),
		Screen:      screen.New(p.Display, tm),
		Rand:        rand.New(rand.NewSource(seed)),
		Seed:        seed,
		Logger:      logger,
		Options:     opts,
	}
}

// sessionDeps lends the context's parts to one game session.
func (c *Context) sessionDeps() session.Deps {
	return session.Deps{
		Screen:   c.Screen,
		Theme:    c.Theme,
		Light:    c.Light,
		Progress: c.Progress,
		Input:    c.Input,
		Timer:    c.Timer,
		Sleeper:  c.Sleeper,
		Tones:    c.Tones,
		Scores:   c.Scores,
		Rand:     c.Rand,
		Logger:   c.Logger,
	}
}
