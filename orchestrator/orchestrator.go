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

// Package orchestrator runs the menu and dispatches its actions.
package orchestrator

import (
	"time"

	"reflex/input"
	"reflex/internal/log"
	"reflex/menu"
	"reflex/score"
	"reflex/screen"
	"reflex/session"
	"reflex/timer"
	"reflex/tone"
)

const (
	MenuTick       = 50 * time.Millisecond
	TiltResetPause = 500 * time.Millisecond
	ResetPause     = 800 * time.Millisecond
	HighScorePause = 1000 * time.Millisecond
	ExitPause      = 400 * time.Millisecond
)

var bootQuotes = []string{
	"Heat up...", "Thrust OK", "Fire laser", "Weapons armed",
	"AI synced", "Engines online", "Core stable", "Warp ready", "Scanning",
}

var bootDots = []string{".", "..", "..."}

type Orchestrator struct {
	*Context

	// OnSession, when set, receives every finished game.
	OnSession func(session.Summary)
}

func New(p Peripherals, opts Options, logger *log.Logger) *Orchestrator {
	return &Orchestrator{Context: NewContext(p, opts, logger)}
}

/*
 *  Start-up
 */
func (o *Orchestrator) Boot() {

	// Pick the theme before anything is drawn
	o.adjustTheme()

	o.startupAnimation()

	// The board is expected to lie flat while the animation plays
	if !o.Tilt.Calibrated() {
		cal := o.Tilt.Calibrate()
		o.Logger.Infof("tilt: calibrated offsets %d/%d/%d", cal.XOffset, cal.YOffset, cal.ZOffset)
	}

	o.welcome()
}

func (o *Orchestrator) startupAnimation() {

	o.Tones.PlaySequence(tone.Boot)

	_, h := o.Screen.Size()
	for _, quote := range bootQuotes {
		for _, dots := range bootDots {
			o.Screen.Clear()
			o.Screen.Centred(h/2-8, quote)
			o.Screen.Centred(h/2+4, dots)
			o.Screen.Flush()
			o.Sleeper.Sleep(o.Options.FrameDelay)
		}
	}
}

func (o *Orchestrator) welcome() {

	o.Screen.Clear()
	o.Screen.Centred(2, "Welcome")
	o.Screen.Centred(12, "REFLEX")
	o.showHighScore()

	timer.WaitForSelect(o.Input, o.Sleeper)
}

func (o *Orchestrator) showHighScore() {

	best := o.Scores.Read()
	o.Screen.Centred(32, "High score:")
	o.Screen.Centred(42, screen.Millis(best, score.HasRecord(best)))
	o.Screen.Flush()
}

// adjustTheme recomputes the theme and sounds the flip cue only when the
// theme actually changed.
func (o *Orchestrator) adjustTheme() bool {

	state, changed := o.Theme.Recompute(o.Light.Read())
	if changed {
		o.Logger.Debugf("theme: switched to %s", state)
		o.Tones.PlaySequence(tone.ThemeFlip)
	}

	return changed
}

/*
 *  Main menu
 */

// Run shows the menu and dispatches selections until Exit is chosen.
func (o *Orchestrator) Run() {

	for {
		o.drawMenu()
		item := o.Select()

		o.Screen.Clear()
		o.Screen.Flush()
		o.Tones.PlaySequence(tone.Click)

		if !o.Dispatch(item) {
			return
		}
	}
}

func (o *Orchestrator) drawMenu() {
	o.Screen.Menu(o.Menu.Items(), o.Menu.Selected())
}

// Select runs the menu input loop until an item is confirmed. Each tick
// also checks the tilt easter egg and the ambient light.
func (o *Orchestrator) Select() menu.Item {

	for {
		switch o.Input.Poll().First() {
		case input.Down:
			o.Menu.MoveNext()
			o.drawMenu()
		case input.Up:
			o.Menu.MovePrev()
			o.drawMenu()
		case input.Select:
			item := o.Menu.Confirm()
			o.Logger.Debugf("menu: selected %q", item.Label)
			return item
		}

		if o.Tilt.IsTilted() {
			last := o.Tilt.Last()
			o.Logger.Infof("tilt: board tilted to %d/%d, clearing high score", last.X, last.Y)
			o.Scores.Reset()
			_, h := o.Screen.Size()
			o.Screen.Centred(h/2+16, "Reset HS")
			o.Screen.Flush()
			o.Sleeper.Sleep(TiltResetPause)
			o.drawMenu()
		}

		if o.adjustTheme() {
			o.drawMenu()
		}

		o.Sleeper.Sleep(MenuTick)
	}
}

// Dispatch performs one menu action. It returns false for Exit.
func (o *Orchestrator) Dispatch(item menu.Item) bool {

	_, h := o.Screen.Size()
	switch item.ID {
	case menu.StartGame:
		sum := session.New(o.sessionDeps()).Run()
		o.Logger.Infof("game: avg %d ms, best %d ms, %d records", sum.AverageMs, sum.BestMs, sum.Records)
		if o.OnSession != nil {
			o.OnSession(sum)
		}

	case menu.ResetScore:
		o.Scores.Reset()
		o.Screen.Centred(h/2+16, "Reset HS")
		o.Screen.Flush()
		o.Sleeper.Sleep(ResetPause)

	case menu.HighScore:
		o.showHighScore()
		o.Sleeper.Sleep(HighScorePause)
		timer.WaitForSelect(o.Input, o.Sleeper)

	case menu.Credits:
		o.Screen.Centred(20, "by")
		o.Screen.Centred(32, "group")
		o.Screen.Centred(44, "G02 :D")
		o.Screen.Flush()
		o.Tones.PlaySequence(tone.Credits)

	case menu.Exit:
		o.Screen.Centred(20, "Exiting...")
		o.Screen.Flush()
		o.Tones.PlaySequence(tone.Farewell)
		o.Sleeper.Sleep(ExitPause)
		o.Screen.Clear()
		o.Screen.Flush()
		return false
	}

	return true
}

// Idle parks the device after Exit until the next press.
func (o *Orchestrator) Idle() {

	o.Progress.Clear()
	o.Screen.Clear()
	o.Screen.Flush()
	timer.WaitForSelect(o.Input, o.Sleeper)
}
