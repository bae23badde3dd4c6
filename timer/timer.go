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
package timer

import (
	"time"

	"reflex/hal"
	"reflex/input"
)

// PollInterval is the pause between input polls while waiting for a press.
const PollInterval = 10 * time.Millisecond

// ReactionTimer measures the time from Arm to the next Select press.
type ReactionTimer struct {
	clock   hal.Clock
	sleeper hal.Sleeper
	input   *input.Debouncer
	elapsed uint32
	polls   int
}

func New(clock hal.Clock, sleeper hal.Sleeper, in *input.Debouncer) *ReactionTimer {
	return &ReactionTimer{clock: clock, sleeper: sleeper, input: in}
}

// Arm zeroes and starts the clock. Call it immediately before the
// stimulus appears.
func (r *ReactionTimer) Arm() {
	r.clock.Reset()
	r.clock.Start()
	r.elapsed = 0
}

// WaitForConfirm blocks until a Select press and latches the clock.
// There is no timeout.
func (r *ReactionTimer) WaitForConfirm() {
	r.polls = WaitForSelect(r.input, r.sleeper)
	r.elapsed = r.clock.Millis()
}

// Elapsed is the clock value latched by the last WaitForConfirm.
func (r *ReactionTimer) Elapsed() uint32 {
	return r.elapsed
}

// Polls is how many input samples the last wait consumed.
func (r *ReactionTimer) Polls() int {
	return r.polls
}

// WaitForSelect polls until a Select edge and returns the number of polls.
func WaitForSelect(in *input.Debouncer, sleeper hal.Sleeper) int {

	polls := 0
	for {
		polls++
		if in.Poll().Has(hal.Select) {
			return polls
		}

		sleeper.Sleep(PollInterval)
	}
}
