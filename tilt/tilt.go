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
package tilt

import (
	"reflex/hal"
)

const (
	// Limit is the exclusive per-axis deviation that counts as tilted.
	Limit int16 = 30

	// RestZ is the Z level the calibration normalises to; gravity keeps
	// that axis away from zero at rest.
	RestZ int8 = 64
)

type Reading struct {
	X, Y, Z int8
}

type Calibration struct {
	XOffset, YOffset, ZOffset int8
}

// Apply corrects a raw reading. The sums wrap like the device's 8-bit
// arithmetic.
func (c Calibration) Apply(r Reading) Reading {
	return Reading{
		X: r.X + c.XOffset,
		Y: r.Y + c.YOffset,
		Z: r.Z + c.ZOffset,
	}
}

// Monitor checks the board against a baseline taken once at startup.
// IsTilted is meaningless until Calibrate has run.
type Monitor struct {
	accel      hal.Accelerometer
	cal        Calibration
	calibrated bool
	last       Reading
}

func New(accel hal.Accelerometer) *Monitor {
	return &Monitor{accel: accel}
}

func (m *Monitor) sample() Reading {
	x, y, z := m.accel.Read()
	return Reading{X: x, Y: y, Z: z}
}

// Calibrate takes the current attitude as neutral.
func (m *Monitor) Calibrate() Calibration {

	r := m.sample()
	m.cal = Calibration{
		XOffset: -r.X,
		YOffset: -r.Y,
		ZOffset: RestZ - r.Z,
	}
	m.calibrated = true

	return m.cal
}

func (m *Monitor) Calibrated() bool {
	return m.calibrated
}

func (m *Monitor) Calibration() Calibration {
	return m.cal
}

// Last is the most recent corrected reading.
func (m *Monitor) Last() Reading {
	return m.last
}

// IsTilted samples the accelerometer and reports whether X or Y deviates
// from neutral by more than Limit. Z is not considered.
func (m *Monitor) IsTilted() bool {

	m.last = m.cal.Apply(m.sample())

	return abs(m.last.X) > Limit || abs(m.last.Y) > Limit
}

func abs(v int8) int16 {
	if v < 0 {
		return -int16(v)
	}
	return int16(v)
}
