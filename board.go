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
	"image/color"
	"machine"
	"time"

	"reflex/hal"

	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/lis3dh"
	"tinygo.org/x/drivers/ssd1306"
	drvtone "tinygo.org/x/drivers/tone"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

/*
 *  Display: SSD1306 OLED with the proggy bitmap font
 */
type oledDisplay struct {
	dev *ssd1306.Device
}

func (d oledDisplay) ClearScreen(bg color.RGBA) {

	w, h := d.dev.Size()
	d.dev.FillRectangle(0, 0, w, h, bg)
}

func (d oledDisplay) PutText(x, y int16, text string, fg, bg color.RGBA) {

	// Paint the text cell first so the glyphs land on a solid background
	d.dev.FillRectangle(x, y, int16(len(text))*TEXT_ADVANCE, TEXT_HEIGHT, bg)
	tinyfont.WriteLine(d.dev, &proggy.TinySZ8pt7b, x, y+TEXT_BASELINE, text, fg)
}

func (d oledDisplay) PutPixel(x, y int16, c color.RGBA) {

	w, h := d.dev.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	d.dev.SetPixel(x, y, c)
}

func (d oledDisplay) Size() (int16, int16) {
	return d.dev.Size()
}

func (d oledDisplay) Flush() {
	d.dev.Display()
}

/*
 *  Sensors
 */
type lightSensor struct {
	dev *bh1750.Device
}

func (l lightSensor) Read() uint32 {

	// Illuminance is in milli-lux; the theme threshold is in lux
	mlx := l.dev.Illuminance()
	if mlx < 0 {
		return 0
	}
	return uint32(mlx / 1000)
}

type accelerometer struct {
	dev *lis3dh.Device
}

func (a accelerometer) Read() (int8, int8, int8) {

	// At +/-2g the raw samples are left-justified with 1g = 16384;
	// the top byte gives the 64 counts per g the tilt logic expects
	x, y, z := a.dev.ReadRawAcceleration()
	return int8(x >> 8), int8(y >> 8), int8(z >> 8)
}

/*
 *  Controls
 */
type joystick struct{}

func (joystick) Read() hal.Mask {

	// Read joystick analog output and map each axis
	// outside the deadzone to a direction bit
	x := PIN_X.Get()
	y := PIN_Y.Get()

	var m hal.Mask
	if y > UPPER_LIMIT {
		m |= hal.Up
	}
	if y < LOWER_LIMIT {
		m |= hal.Down
	}
	if x > UPPER_LIMIT {
		m |= hal.Left
	}
	if x < LOWER_LIMIT {
		m |= hal.Right
	}

	// The fire button is the select switch
	if PIN_BUTTON.Get() {
		m |= hal.Select
	}

	return m
}

/*
 *  Speaker driven from a PWM slice instead of bit-banging
 */
type pwmVoice struct {
	speaker drvtone.Speaker
	sleeper hal.Sleeper
}

func (v pwmVoice) Square(period time.Duration, cycles uint32) {

	v.speaker.SetPeriod(uint64(period.Nanoseconds()))
	v.sleeper.Sleep(period * time.Duration(cycles))
	v.speaker.Stop()
}

func newPWMVoice(sleeper hal.Sleeper) (pwmVoice, error) {

	// GP16 is channel A of PWM slice 0
	speaker, err := drvtone.New(machine.PWM0, PIN_SPEAKER)
	if err != nil {
		return pwmVoice{}, err
	}
	return pwmVoice{speaker: speaker, sleeper: sleeper}, nil
}
