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
package score

import (
	"encoding/binary"
	"fmt"

	"reflex/hal"
	"reflex/internal/log"
)

const (
	// Address is the EEPROM offset of the two-byte high score slot.
	Address int64 = 8

	// Sentinel marks "no record yet". It is also what an erased EEPROM
	// reads back, so a fresh board needs no formatting.
	Sentinel uint16 = 0xFFFF

	// Max is the largest storable time; longer reactions are clamped so
	// they can never be mistaken for the sentinel.
	Max uint16 = Sentinel - 1
)

// Store keeps the best reaction time, big-endian, in one fixed slot.
// Writes are not atomic: a power cut mid-write can corrupt the value.
type Store struct {
	mem    hal.ByteStore
	logger *log.Logger
}

func New(mem hal.ByteStore, logger *log.Logger) *Store {
	return &Store{mem: mem, logger: logger}
}

// Read never fails; on a bus error it decodes whatever bytes it has.
func (s *Store) Read() uint16 {

	var buf [2]byte
	if _, err := s.mem.ReadAt(buf[:], Address); err != nil {
		s.logger.Errorf("score: %v", fmt.Errorf("read slot %d: %w", Address, err))
	}

	return binary.BigEndian.Uint16(buf[:])
}

func (s *Store) Write(value uint16) {

	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], value)
	if _, err := s.mem.WriteAt(buf[:], Address); err != nil {
		s.logger.Errorf("score: %v", fmt.Errorf("write slot %d: %w", Address, err))
	}
}

// Reset forgets the record.
func (s *Store) Reset() {
	s.Write(Sentinel)
}

// HasRecord reports whether v is a real time rather than the sentinel.
func HasRecord(v uint16) bool {
	return v != Sentinel
}

// Clamp converts a measured time to a storable score.
func Clamp(ms uint32) uint16 {
	if ms > uint32(Max) {
		return Max
	}
	return uint16(ms)
}

// Beats reports whether a measurement should replace the stored value.
func Beats(ms uint32, stored uint16) bool {
	return !HasRecord(stored) || ms < uint32(stored)
}
