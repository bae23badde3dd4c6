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
package ht16k33

import (
	"errors"
	"testing"

	"reflex/internal/log"
)

type tx struct {
	addr uint16
	data []byte
}

type fakeBus struct {
	txs []tx
	err error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	b.txs = append(b.txs, tx{addr: addr, data: append([]byte(nil), w...)})
	return b.err
}

func TestInitSequence(t *testing.T) {
	bus := &fakeBus{}
	m := New(bus)

	if err := m.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{HT16K33_GENERIC_SYSTEM_ON, HT16K33_GENERIC_DISPLAY_ON, HT16K33_GENERIC_CMD_BRIGHTNESS | 2}
	if len(bus.txs) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(bus.txs))
	}
	for i, b := range want {
		if bus.txs[i].data[0] != b || bus.txs[i].addr != uint16(HT16K33_ADDRESS) {
			t.Fatalf("tx %d: expected %#x at 0x70, got %#x at %#x", i, b, bus.txs[i].data[0], bus.txs[i].addr)
		}
	}
	if len(bus.txs[3].data) != 17 {
		t.Fatalf("expected a 17 byte frame, got %d", len(bus.txs[3].data))
	}
	if m.Brightness() != 2 {
		t.Fatalf("expected brightness 2, got %d", m.Brightness())
	}
}

func TestInitReportsBusError(t *testing.T) {
	m := New(&fakeBus{err: errors.New("nack")})
	if err := m.Init(); err == nil {
		t.Fatalf("expected error from a dead bus")
	}
}

func TestDrawRotatesColumns(t *testing.T) {
	bus := &fakeBus{}
	m := New(bus)
	m.Plot(0, 0, true)
	m.Plot(1, 7, true)
	m.Plot(9, 9, true)

	if err := m.Draw(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame := bus.txs[0].data
	if frame[1] != 0x80 || frame[3] != 0x40 {
		t.Fatalf("unexpected frame % x", frame)
	}
}

func TestGlyphs(t *testing.T) {
	one := Glyph(1)
	if one != [3]byte{0x12, 0x1F, 0x10} {
		t.Fatalf("unexpected glyph for 1: % x", one)
	}
	if Glyph(10) != [3]byte{} {
		t.Fatalf("expected blank glyph out of range")
	}
}

func TestProgressMarksRound(t *testing.T) {
	bus := &fakeBus{}
	m := New(bus)
	p := NewProgress(m, log.Discard())

	p.SetRound(2)
	buf := m.Buffer()
	if buf[2]&0x80 == 0 || buf[0]&0x80 != 0 {
		t.Fatalf("expected only bar LED 2 lit, got % x", buf)
	}
	three := Glyph(3)
	for i := 0; i < 3; i++ {
		if buf[5+i] != three[i] {
			t.Fatalf("expected digit 3 in columns 5-7, got % x", buf[5:])
		}
	}

	p.Clear()
	for _, b := range m.Buffer() {
		if b != 0 {
			t.Fatalf("expected blank matrix after clear")
		}
	}
	if len(bus.txs) != 2 {
		t.Fatalf("expected two frames sent, got %d", len(bus.txs))
	}
}
