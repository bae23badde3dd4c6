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
package hal

import (
	"errors"
	"time"
)

// ErrOutOfRange is returned for accesses past the end of a MemoryStore.
var ErrOutOfRange = errors.New("hal: address out of range")

// SystemClock counts milliseconds on the monotonic runtime clock. It
// reads zero until started.
type SystemClock struct {
	start   time.Time
	running bool
}

func (c *SystemClock) Reset() {

	// Zero the counter; a running clock restarts from zero
	c.start = time.Now()
}

func (c *SystemClock) Start() {

	if !c.running {
		c.start = time.Now()
		c.running = true
	}
}

func (c *SystemClock) Millis() uint32 {

	if !c.running {
		return 0
	}

	return uint32(time.Since(c.start).Milliseconds())
}

// SystemSleeper sleeps on the runtime timer.
type SystemSleeper struct{}

func (SystemSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MemoryStore is a RAM-backed ByteStore that starts erased (all 0xFF),
// the state a blank EEPROM reads back.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore(size int) *MemoryStore {

	m := &MemoryStore{data: make([]byte, size)}
	for i := range m.data {
		m.data[i] = 0xFF
	}

	return m
}

func (m *MemoryStore) ReadAt(p []byte, off int64) (int, error) {

	if off < 0 || off >= int64(len(m.data)) {
		return 0, ErrOutOfRange
	}

	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, ErrOutOfRange
	}

	return n, nil
}

func (m *MemoryStore) WriteAt(p []byte, off int64) (int, error) {

	if off < 0 || off >= int64(len(m.data)) {
		return 0, ErrOutOfRange
	}

	n := copy(m.data[off:], p)
	if n < len(p) {
		return n, ErrOutOfRange
	}

	return n, nil
}
