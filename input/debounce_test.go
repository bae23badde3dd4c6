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
package input

import (
	"testing"

	"reflex/hal"
	"reflex/hal/haltest"
)

func TestHeldSwitchFiresOnce(t *testing.T) {
	b := &haltest.Buttons{}
	b.Push(0, hal.Down, hal.Down, hal.Down, 0, hal.Down)
	d := New(b)

	var events []Event
	for i := 0; i < 6; i++ {
		events = append(events, d.Poll().First())
	}

	want := []Event{None, Down, None, None, None, Down}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("poll %d: expected %s, got %s", i, want[i], events[i])
		}
	}
}

func TestSwitchHeldAtBootIsIgnored(t *testing.T) {
	b := &haltest.Buttons{}
	b.Push(hal.Select, hal.Select, 0, hal.Select)
	d := New(b)

	if e := d.Poll(); e != 0 {
		t.Fatalf("expected no edge for a switch held at boot, got %b", e)
	}
	d.Poll()
	d.Poll()
	if e := d.Poll().First(); e != Select {
		t.Fatalf("expected select after release, got %s", e)
	}
}

func TestFirstPriority(t *testing.T) {
	cases := []struct {
		mask hal.Mask
		want Event
	}{
		{hal.Up | hal.Down, Down},
		{hal.Up | hal.Select, Up},
		{hal.Select | hal.Left, Select},
		{hal.Left | hal.Right, None},
		{0, None},
	}
	for _, c := range cases {
		if got := Edges(c.mask).First(); got != c.want {
			t.Fatalf("mask %05b: expected %s, got %s", c.mask, c.want, got)
		}
	}
}

func TestEdgesOnlyForNewBits(t *testing.T) {
	b := &haltest.Buttons{}
	b.Push(0, hal.Up, hal.Up|hal.Select)
	d := New(b)
	d.Poll()
	d.Poll()

	e := d.Poll()
	if !e.Has(hal.Select) || e.Has(hal.Up) {
		t.Fatalf("expected only select edge, got %05b", e)
	}
}
