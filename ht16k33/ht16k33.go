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
	"fmt"

	"tinygo.org/x/drivers"
)

// HT16K33 LED Matrix Commands
const (
	HT16K33_GENERIC_DISPLAY_ON      uint8 = 0x81
	HT16K33_GENERIC_DISPLAY_OFF     uint8 = 0x80
	HT16K33_GENERIC_SYSTEM_ON       uint8 = 0x21
	HT16K33_GENERIC_SYSTEM_OFF      uint8 = 0x20
	HT16K33_GENERIC_DISPLAY_ADDRESS uint8 = 0x00
	HT16K33_GENERIC_CMD_BRIGHTNESS  uint8 = 0xE0
	HT16K33_ADDRESS                 uint8 = 0x70
)

type HT16K33 struct {
	// Host I2C bus
	bus drivers.I2C
	// Internal data: brightness level, buffer
	address    uint8
	brightness uint
	buffer     []byte
}

func New(bus drivers.I2C) *HT16K33 {

	return &HT16K33{bus: bus, address: HT16K33_ADDRESS, brightness: 15, buffer: make([]byte, 8)}
}

func (p *HT16K33) Init() error {

	if err := p.Power(true); err != nil {
		return fmt.Errorf("ht16k33: power on: %w", err)
	}
	if err := p.SetBrightness(2); err != nil {
		return fmt.Errorf("ht16k33: brightness: %w", err)
	}

	p.Clear()
	return p.Draw()
}

func (p *HT16K33) Power(isOn bool) error {

	if isOn {
		if err := p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_ON); err != nil {
			return err
		}
		return p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_ON)
	}

	if err := p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_OFF); err != nil {
		return err
	}
	return p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_OFF)
}

func (p *HT16K33) SetBrightness(brightness uint) error {

	if brightness > 15 {
		brightness = 15
	}

	p.brightness = brightness
	return p.i2cWriteByte(HT16K33_GENERIC_CMD_BRIGHTNESS | byte(brightness&0xFF))
}

func (p *HT16K33) Brightness() uint {
	return p.brightness
}

func (p *HT16K33) Plot(x uint, y uint, isSet bool) {

	// Set or unset the specified pixel
	if x > 7 || y > 7 {
		return
	}

	col := p.buffer[x]
	if isSet {
		col |= (1 << y)
	} else {
		col &= ^(1 << y)
	}

	p.buffer[x] = col
}

func (p *HT16K33) Clear() {

	// Clear the display buffer
	for i := 0; i < 8; i++ {
		p.buffer[i] = 0x00
	}
}

// Buffer returns the eight column bytes that Draw will send.
func (p *HT16K33) Buffer() []byte {
	return p.buffer
}

func (p *HT16K33) Draw() error {

	// Span the 8 bytes of the graphics buffer
	// across the 16 bytes of the LED's buffer,
	// rotating each column to the panel's wiring
	output_buffer := [17]byte{HT16K33_GENERIC_DISPLAY_ADDRESS}
	for i := 0; i < 8; i++ {
		a := p.buffer[i]
		output_buffer[i*2+1] = (a >> 1) + ((a << 7) & 0xFF)
	}

	return p.i2cWriteBlock(output_buffer[:])
}

func (p *HT16K33) i2cWriteByte(value byte) error {

	// Convenience function to write a single byte to the matrix
	data := [1]byte{value}
	return p.bus.Tx(uint16(p.address), data[:], nil)
}

func (p *HT16K33) i2cWriteBlock(data []byte) error {

	// Convenience function to write a block of bytes to the matrix
	return p.bus.Tx(uint16(p.address), data, nil)
}
