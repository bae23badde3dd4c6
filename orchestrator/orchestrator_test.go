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
	"bytes"
	"strings"
	"testing"
	"time"

	"reflex/hal"
	"reflex/hal/haltest"
	"reflex/internal/log"
	"reflex/menu"
	"reflex/score"
	"reflex/session"
	"reflex/theme"
	"reflex/tone"
)

type rig struct {
	o        *Orchestrator
	buttons  *haltest.Buttons
	display  *haltest.Display
	light    *haltest.Light
	accel    *haltest.Accel
	clock    *haltest.Time
	progress *haltest.Progress
	mem      *hal.MemoryStore
}

func newRig(opts Options) *rig {
	r := &rig{
		buttons:  &haltest.Buttons{},
		display:  haltest.NewDisplay(),
		light:    &haltest.Light{Value: 50},
		accel:    &haltest.Accel{X: 0, Y: 0, Z: 64},
		clock:    &haltest.Time{},
		progress: &haltest.Progress{},
		mem:      hal.NewMemoryStore(32),
	}
	r.o = New(Peripherals{
		Display:  r.display,
		Light:    r.light,
		Accel:    r.accel,
		Buttons:  r.buttons,
		Store:    r.mem,
		Clock:    r.clock,
		Sleeper:  r.clock,
		Progress: r.progress,
	}, opts, log.Discard())
	return r
}

// boot runs the start-up sequence, confirming the welcome screen.
func (r *rig) boot() {
	r.buttons.Push(haltest.Click(hal.Select)...)
	r.o.Boot()
}

func TestBootCalibratesOnceAndWelcomes(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.accel.X, r.accel.Y, r.accel.Z = 3, -2, 60

	r.boot()

	cal := r.o.Tilt.Calibration()
	if cal.XOffset != -3 || cal.YOffset != 2 || cal.ZOffset != 4 {
		t.Fatalf("unexpected calibration %+v", cal)
	}
	for _, text := range []string{"Heat up...", "Scanning", "...", "Welcome", "High score:", "--- ms"} {
		if !r.display.Showed(text) {
			t.Fatalf("expected %q during boot", text)
		}
	}

	r.accel.X = 20
	r.boot()
	if r.o.Tilt.Calibration() != cal {
		t.Fatalf("calibration must only run once")
	}
}

func TestBootFlipCueFollowsRoom(t *testing.T) {
	flip := tone.ThemeFlip[0].Sounding()
	boot := tone.Boot[0].Sounding()

	// A dark room moves off the light start theme before the boot cue
	r := newRig(Options{Seed: 1})
	r.boot()
	if len(r.clock.Sleeps) < 2 || r.clock.Sleeps[0] != flip || r.clock.Sleeps[1] != boot {
		t.Fatalf("expected flip cue then boot cue in a dark room, got %v", r.clock.Sleeps)
	}

	r = newRig(Options{Seed: 1})
	r.light.Value = 500
	r.boot()
	if r.clock.Sleeps[0] != boot {
		t.Fatalf("expected no flip cue in a bright room, got %v first", r.clock.Sleeps[0])
	}
	if r.o.Theme.State() != theme.Light {
		t.Fatalf("expected light theme in a bright room")
	}
}

func TestSeedTakenOnceFromLight(t *testing.T) {
	r := newRig(Options{})
	if r.o.Seed != 50 {
		t.Fatalf("expected seed from light reading 50, got %d", r.o.Seed)
	}
	r = newRig(Options{Seed: 9})
	if r.o.Seed != 9 || r.light.Reads != 0 {
		t.Fatalf("expected explicit seed without reading the light sensor")
	}
}

func TestEndToEndGameThenExit(t *testing.T) {
	r := newRig(Options{Seed: 3})
	r.boot()

	var games []session.Summary
	r.o.OnSession = func(s session.Summary) { games = append(games, s) }

	// Start game
	r.buttons.Push(haltest.Click(hal.Select)...)
	for _, ms := range []int{250, 300, 280, 260, 400} {
		r.buttons.Push(haltest.Reaction(ms)...)
		r.buttons.Push(haltest.Click(hal.Select)...)
	}
	r.buttons.Push(haltest.Click(hal.Select)...)
	// Up wraps to Exit
	r.buttons.Push(0, hal.Up, 0, hal.Select)

	r.o.Run()

	if got := r.o.Scores.Read(); got != 250 {
		t.Fatalf("expected stored 250, got %d", got)
	}
	if len(games) != 1 || games[0].Records != 1 {
		t.Fatalf("expected one game with one record, got %+v", games)
	}
	if !r.display.Showed("Exiting...") {
		t.Fatalf("expected exit screen")
	}
	if len(r.buttons.Samples) != 0 {
		t.Fatalf("%d samples left unread", len(r.buttons.Samples))
	}
}

func TestResetScoreFromMenu(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.o.Scores.Write(300)
	r.boot()

	r.buttons.Push(0, hal.Down, 0, hal.Select)
	r.buttons.Push(0, hal.Up, 0, hal.Up, 0, hal.Select)
	r.o.Run()

	if got := r.o.Scores.Read(); got != score.Sentinel {
		t.Fatalf("expected sentinel after reset, got %d", got)
	}
	if !r.display.Showed("Reset HS") {
		t.Fatalf("expected reset notice")
	}
}

func TestTiltClearsHighScore(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.o.Scores.Write(300)
	r.boot()

	var logs bytes.Buffer
	r.o.Logger = log.New(&logs, log.LevelInfo)

	r.accel.X = 40
	r.buttons.Push(0, hal.Select)
	item := r.o.Select()

	if item.ID != menu.StartGame {
		t.Fatalf("expected start game, got %+v", item)
	}
	if got := r.o.Scores.Read(); got != score.Sentinel {
		t.Fatalf("expected tilt to clear the score, got %d", got)
	}
	if !r.display.Showed("Reset HS") {
		t.Fatalf("expected reset notice")
	}
	if !strings.Contains(logs.String(), "tilted to 40/0") {
		t.Fatalf("expected the corrected reading in the log, got %q", logs.String())
	}
}

func TestLevelBoardKeepsHighScore(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.o.Scores.Write(300)
	r.boot()

	r.accel.X = 29
	r.buttons.Push(0, 0, 0, hal.Select)
	r.o.Select()

	if got := r.o.Scores.Read(); got != 300 {
		t.Fatalf("expected score kept, got %d", got)
	}
}

func TestThemeFlipRedrawsMenu(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.boot()
	if r.o.Theme.State() != theme.Dark {
		t.Fatalf("expected dark theme at 50")
	}

	r.light.Value = 500
	clears := r.display.Clears
	r.buttons.Push(0, hal.Select)
	r.o.Select()

	if r.o.Theme.State() != theme.Light {
		t.Fatalf("expected light theme")
	}
	if r.display.Clears != clears+1 || r.display.BG != theme.White {
		t.Fatalf("expected one redraw on a white background")
	}
	if !r.display.Shows("> Start game") {
		t.Fatalf("expected the menu on screen, got %+v", r.display.Texts)
	}
}

func TestHighScoreScreen(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.o.Scores.Write(250)

	r.buttons.Push(haltest.Click(hal.Select)...)
	if !r.o.Dispatch(menu.Main[menu.HighScore]) {
		t.Fatalf("high score must not exit")
	}
	if !r.display.Shows("250 ms") {
		t.Fatalf("expected stored score on screen, got %+v", r.display.Texts)
	}
}

func TestCreditsPlaysWholeSequence(t *testing.T) {
	r := newRig(Options{Seed: 1})

	before := r.clock.Slept()
	r.o.Dispatch(menu.Main[menu.Credits])

	var want time.Duration
	for _, n := range tone.Credits {
		want += n.Sounding()
	}
	if got := r.clock.Slept() - before; got != want {
		t.Fatalf("expected %s of credits, got %s", want, got)
	}
	if !r.display.Shows("G02 :D") {
		t.Fatalf("expected credits text")
	}
}

func TestIdleWaitsForPress(t *testing.T) {
	r := newRig(Options{Seed: 1})
	r.buttons.Push(0, 0, hal.Select)

	r.o.Idle()

	if r.buttons.Reads != 3 || r.progress.Clears != 1 {
		t.Fatalf("expected idle to clear progress and wait for select")
	}
}
