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
package session

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"reflex/hal"
	"reflex/hal/haltest"
	"reflex/input"
	"reflex/internal/log"
	"reflex/score"
	"reflex/screen"
	"reflex/theme"
	"reflex/timer"
	"reflex/tone"
)

type rig struct {
	session  *Session
	scores   *score.Store
	display  *haltest.Display
	progress *haltest.Progress
	buttons  *haltest.Buttons
	light    *haltest.Light
	clock    *haltest.Time
}

// newRig scripts a full game: each reaction, the round-boundary click,
// then the click that dismisses the summary.
func newRig(times []int) *rig {
	clk := &haltest.Time{}
	b := &haltest.Buttons{}
	for _, ms := range times {
		b.Push(haltest.Reaction(ms)...)
		b.Push(haltest.Click(hal.Select)...)
	}
	b.Push(haltest.Click(hal.Select)...)

	in := input.New(b)
	tm := theme.New()
	d := haltest.NewDisplay()
	p := &haltest.Progress{}
	light := &haltest.Light{Value: 50}
	logger := log.Discard()
	scores := score.New(hal.NewMemoryStore(64), logger)

	s := New(Deps{
		Screen:   screen.New(d, tm),
		Theme:    tm,
		Light:    light,
		Progress: p,
		Input:    in,
		Timer:    timer.New(clk, clk, in),
		Sleeper:  clk,
		Tones:    tone.NewSequencer(tone.NewSilentVoice(clk), clk, logger),
		Scores:   scores,
		Rand:     rand.New(rand.NewSource(1)),
		Logger:   logger,
	})

	return &rig{session: s, scores: scores, display: d, progress: p, buttons: b, light: light, clock: clk}
}

func TestRecordFromSentinel(t *testing.T) {
	r := newRig([]int{250, 300, 400, 350, 500})

	sum := r.session.Run()

	if r.scores.Read() != 250 {
		t.Fatalf("expected stored score 250, got %d", r.scores.Read())
	}
	if !sum.Rounds[0].NewRecord || sum.Rounds[1].NewRecord {
		t.Fatalf("expected only the first round to set a record: %+v", sum.Rounds)
	}
	if sum.Rounds[1].ReactionMs != 300 {
		t.Fatalf("expected round 2 to measure 300 ms, got %d", sum.Rounds[1].ReactionMs)
	}
	if sum.AverageMs != (250+300+400+350+500)/5 || sum.BestMs != 250 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestIncreasingTimesOnlyFirstRoundRecords(t *testing.T) {
	r := newRig([]int{200, 210, 220, 230, 240})
	r.scores.Write(1000)

	sum := r.session.Run()

	for i, rr := range sum.Rounds {
		if rr.Round != i {
			t.Fatalf("round %d has index %d", i, rr.Round)
		}
		if rr.NewRecord != (i == 0) {
			t.Fatalf("round %d: record=%v", i, rr.NewRecord)
		}
	}
	if sum.Records != 1 || r.scores.Read() != 200 {
		t.Fatalf("expected one record of 200, got %d records, stored %d", sum.Records, r.scores.Read())
	}
}

func TestSlowerThanStoredKeepsRecord(t *testing.T) {
	r := newRig([]int{300, 310, 320, 330, 340})
	r.scores.Write(150)

	sum := r.session.Run()

	if sum.Records != 0 || r.scores.Read() != 150 {
		t.Fatalf("expected record 150 kept, got %d", r.scores.Read())
	}
	if !r.display.Shows("Best: 150 ms") {
		t.Fatalf("expected summary to show stored best, got %+v", r.display.Texts)
	}
	if !r.display.Shows("Avg: 320 ms") {
		t.Fatalf("expected average 320, got %+v", r.display.Texts)
	}
}

func TestStateTrace(t *testing.T) {
	r := newRig([]int{100, 100, 100, 100, 100})

	r.session.Run()

	trace := r.session.Trace()
	if len(trace) != Rounds*4+1 {
		t.Fatalf("expected %d states, got %d", Rounds*4+1, len(trace))
	}
	cycle := []State{WaitingStimulus, ShowingGo, Measuring, ShowingResult}
	for i, st := range trace[:Rounds*4] {
		if st != cycle[i%4] {
			t.Fatalf("state %d: expected %s, got %s", i, cycle[i%4], st)
		}
	}
	if r.session.State() != Complete {
		t.Fatalf("expected complete, got %s", r.session.State())
	}
}

func TestProgressAndScreens(t *testing.T) {
	r := newRig([]int{120, 130, 140, 150, 160})

	r.session.Run()

	want := []int{0, 1, 2, 3, 4}
	if len(r.progress.Rounds) != len(want) {
		t.Fatalf("expected %d progress updates, got %v", len(want), r.progress.Rounds)
	}
	for i := range want {
		if r.progress.Rounds[i] != want[i] {
			t.Fatalf("expected progress %v, got %v", want, r.progress.Rounds)
		}
	}
	if r.progress.Clears != 1 {
		t.Fatalf("expected progress cleared once, got %d", r.progress.Clears)
	}
	for _, text := range []string{"WAIT...", "120 ms", "NEW RECORD!", "160 ms", "Game Complete!"} {
		if !r.display.Showed(text) {
			t.Fatalf("expected %q to be shown", text)
		}
	}
	if r.light.Reads != Rounds {
		t.Fatalf("expected theme recomputed every round, got %d reads", r.light.Reads)
	}
	if len(r.buttons.Samples) != 0 {
		t.Fatalf("expected every scripted sample consumed, %d left", len(r.buttons.Samples))
	}
}

func TestRoundNeedsItsOwnConfirm(t *testing.T) {
	r := newRig(nil)
	r.buttons.Samples = nil
	// Measurement press held straight through the result screen
	for i := 0; i < Rounds; i++ {
		r.buttons.Push(haltest.Reaction(100)...)
		r.buttons.Push(hal.Select, hal.Select, hal.Select)
		r.buttons.Push(haltest.Click(hal.Select)...)
	}
	r.buttons.Push(haltest.Click(hal.Select)...)

	sum := r.session.Run()

	for i, rr := range sum.Rounds {
		if rr.ReactionMs != 100 {
			t.Fatalf("round %d: a held press leaked into the next round (%d ms)", i, rr.ReactionMs)
		}
	}
}

func TestConfirmPollsAreLogged(t *testing.T) {
	r := newRig([]int{100, 100, 100, 100, 100})
	var logs bytes.Buffer
	r.session.Logger = log.New(&logs, log.LevelDebug)

	r.session.Run()

	// Ten idle samples at 10 ms, then the press
	if got := strings.Count(logs.String(), "confirmed after 11 polls"); got != Rounds {
		t.Fatalf("expected %d poll counts of 11, got %d in %q", Rounds, got, logs.String())
	}
}

func TestStimulusDelayRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	seen := map[bool]bool{}
	for i := 0; i < 10000; i++ {
		d := StimulusDelay(rnd)
		if d < MinDelayMs*time.Millisecond || d > MaxDelayMs*time.Millisecond {
			t.Fatalf("delay %s outside [%d, %d] ms", d, MinDelayMs, MaxDelayMs)
		}
		seen[d < 2000*time.Millisecond] = true
	}
	if !seen[true] || !seen[false] {
		t.Fatalf("expected delays on both sides of the midpoint")
	}
}

func TestDelaysFollowSeed(t *testing.T) {
	a := rand.New(rand.NewSource(321))
	b := rand.New(rand.NewSource(321))
	for i := 0; i < Rounds; i++ {
		if StimulusDelay(a) != StimulusDelay(b) {
			t.Fatalf("same seed produced different delays at round %d", i)
		}
	}
}
