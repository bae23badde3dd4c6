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
)

/*
 * GLOBALS
 */
// Analog joystick axes; the game state itself lives in the orchestrator
var PIN_Y machine.ADC = machine.ADC{Pin: machine.GP27}
var PIN_X machine.ADC = machine.ADC{Pin: machine.GP26}
