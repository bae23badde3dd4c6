//go:build rp2040

/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	"time"

	"reflex/tone"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_SDA     machine.Pin = machine.GP8
	PIN_SCL     machine.Pin = machine.GP9
	PIN_SPEAKER machine.Pin = machine.GP16
	PIN_BUTTON  machine.Pin = machine.GP19

	// Joystick active range
	UPPER_LIMIT uint16 = 50000
	LOWER_LIMIT uint16 = 10000

	// I2C peripherals
	I2C_FREQUENCY uint32 = 400 * machine.KHz
	OLED_ADDRESS  uint16 = 0x3C
	OLED_WIDTH    int16  = 128
	OLED_HEIGHT   int16  = 64
	EEPROM_SIZE   uint16 = 4096
	EEPROM_PAGE   uint16 = 32
	TEXT_BASELINE int16  = 7
	TEXT_ADVANCE  int16  = 6
	TEXT_HEIGHT   int16  = 9

	// Tone output: bit-banged on the speaker pin, or PWM slice 0
	USE_PWM_SPEAKER bool          = false
	SPEAKER_WAVE    tone.Waveform = tone.Corrected

	// Startup animation frame time
	FRAME_DELAY time.Duration = 300 * time.Millisecond

	// Board LED blink period when bring-up fails
	FAIL_BLINK_MS time.Duration = 100 * time.Millisecond
)
