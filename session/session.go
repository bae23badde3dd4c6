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

// Package session runs one five-round reaction test.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"reflex/hal"
	"reflex/input"
	"reflex/internal/log"
	"reflex/score"
	"reflex/screen"
	"reflex/theme"
	"reflex/timer"
	"reflex/tone"
)

const (
	Rounds = 5

	// Stimulus delay bounds, inclusive
	MinDelayMs = 500
	MaxDelayMs = 3500

	Radius int16 = 28

	ResultPause   = 600 * time.Millisecond
	CompletePause = 1000 * time.Millisecond
)

type State uint8

const (
	WaitingStimulus State = iota
	ShowingGo
	Measuring
	ShowingResult
	Complete
)

func (s State) String() string {
	switch s {
	case WaitingStimulus:
		return "waiting"
	case ShowingGo:
		return "go"
	case Measuring:
		return "measuring"
	case ShowingResult:
		return "result"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

type RoundResult struct {
	Round      int
	ReactionMs uint32
	NewRecord  bool
}

type Summary struct {
	Rounds    [Rounds]RoundResult
	AverageMs uint32
	BestMs    uint32
	Records   int
}

// Deps are the parts of the device a session drives. The orchestrator
// owns them; a session only borrows them for one game.
type Deps struct {
	Screen   *screen.Screen
	Theme    *theme.Manager
	Light    hal.LightSensor
	Progress hal.Progress
	Input    *input.Debouncer
	Timer    *timer.ReactionTimer
	Sleeper  hal.Sleeper
	Tones    *tone.Sequencer
	Scores   *score.Store
	Rand     *rand.Rand
	Logger   *log.Logger
}

// Session is created when a game starts and dropped when it ends.
type Session struct {
	Deps
	state State
	trace []State
}

func New(d Deps) *Session {
	return &Session{Deps: d}
}

func (s *Session) State() State {
	return s.state
}

// Trace lists every state entered, in order.
func (s *Session) Trace() []State {
	return s.trace
}

func (s *Session) enter(next State) {
	s.state = next
	s.trace = append(s.trace, next)
}

// StimulusDelay draws the next pre-stimulus wait.
func StimulusDelay(r *rand.Rand) time.Duration {
	ms := MinDelayMs + r.Intn(MaxDelayMs-MinDelayMs+1)
	return time.Duration(ms) * time.Millisecond
}

// Run plays all rounds and shows the summary. It returns after the
// player confirms the summary screen.
func (s *Session) Run() Summary {

	var sum Summary
	var total uint32
	s.trace = nil
	s.Logger.Infof("session: starting %d rounds", Rounds)

	for round := 0; round < Rounds; round++ {
		s.enter(WaitingStimulus)
		s.waitForStimulus(round)

		s.enter(ShowingGo)
		s.showGo()

		s.enter(Measuring)
		s.Timer.WaitForConfirm()
		ms := s.Timer.Elapsed()
		s.Logger.Debugf("session: confirmed after %d polls", s.Timer.Polls())

		s.enter(ShowingResult)
		record := s.showResult(ms)

		sum.Rounds[round] = RoundResult{Round: round, ReactionMs: ms, NewRecord: record}
		total += ms
		if record {
			sum.Records++
		}
		if round == 0 || ms < sum.BestMs {
			sum.BestMs = ms
		}
		s.Logger.Infof("session: round %d took %d ms (record=%v)", round+1, ms, record)

		// A new confirm is needed to move on
		s.Sleeper.Sleep(ResultPause)
		timer.WaitForSelect(s.Input, s.Sleeper)
	}

	sum.AverageMs = total / Rounds
	s.enter(Complete)
	s.showSummary(sum)

	return sum
}

func (s *Session) waitForStimulus(round int) {

	s.Progress.SetRound(round)
	if _, changed := s.Theme.Recompute(s.Light.Read()); changed {
		s.Tones.PlaySequence(tone.ThemeFlip)
	}

	x, y := s.Screen.Centre()
	s.Screen.Clear()
	s.Screen.Circle(x, y, Radius)
	s.Screen.Centred(y-4, "WAIT...")
	s.Screen.Flush()
	s.Tones.PlaySequence(tone.WaitCue)

	delay := StimulusDelay(s.Rand)
	s.Logger.Debugf("session: stimulus in %s", delay)
	s.Sleeper.Sleep(delay)
}

func (s *Session) showGo() {

	x, y := s.Screen.Centre()
	s.Screen.FillCircle(x, y, Radius)
	s.Screen.Flush()

	// Nothing may run between the stimulus and arming the timer
	s.Timer.Arm()
}

func (s *Session) showResult(ms uint32) bool {

	_, y := s.Screen.Centre()
	s.Screen.Clear()
	s.Screen.Centred(y, fmt.Sprintf("%d ms", ms))

	record := score.Beats(ms, s.Scores.Read())
	if record {
		s.Scores.Write(score.Clamp(ms))
		s.Screen.Centred(y+12, "NEW RECORD!")
	}
	s.Screen.Flush()

	if record {
		s.Tones.PlaySequence(tone.Record)
	}

	return record
}

func (s *Session) showSummary(sum Summary) {

	best := sum.BestMs
	if stored := s.Scores.Read(); score.HasRecord(stored) {
		best = uint32(stored)
	}

	s.Screen.Clear()
	s.Screen.Centred(10, "Game Complete!")
	s.Screen.Centred(25, fmt.Sprintf("Avg: %d ms", sum.AverageMs))
	s.Screen.Centred(40, fmt.Sprintf("Best: %d ms", best))
	s.Screen.Flush()
	s.Progress.Clear()

	s.Sleeper.Sleep(CompletePause)
	timer.WaitForSelect(s.Input, s.Sleeper)
}
