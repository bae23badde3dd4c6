//go:build rp2040

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
package main

import (
	"errors"
	"fmt"
	"machine"
	"time"

	"reflex/hal"
	"reflex/ht16k33"
	"reflex/internal/log"
	"reflex/orchestrator"
	"reflex/tone"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/lis3dh"
	"tinygo.org/x/drivers/ssd1306"
)

var errNoAccelerometer = errors.New("accelerometer not found")

func main() {

	logger := log.New(machine.Serial, log.LevelInfo)

	// Set up the hardware or fail
	peripherals, err := setup(logger)
	if err != nil {
		logger.Errorf("setup: %v", err)
		failLoop()
	}

	game := orchestrator.New(peripherals, orchestrator.Options{FrameDelay: FRAME_DELAY}, logger)
	logger.Infof("reflex: seeded with %d", game.Seed)

	// Calibrate, greet, then serve the menu for ever. Exit parks the
	// device until the next press; there is nothing to return to
	game.Boot()
	for {
		game.Run()
		game.Idle()
	}
}

/*
 *  Initialisation Functions
 */
func setup(logger *log.Logger) (orchestrator.Peripherals, error) {

	var p orchestrator.Peripherals

	// Set up the shared I2C bus
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA, Frequency: I2C_FREQUENCY})
	if err != nil {
		return p, fmt.Errorf("i2c: %w", err)
	}

	// Set up the OLED
	oled := ssd1306.NewI2C(i2c)
	oled.Configure(ssd1306.Config{Width: OLED_WIDTH, Height: OLED_HEIGHT, Address: OLED_ADDRESS})
	oled.ClearDisplay()

	// Set up the round indicator matrix
	matrix := ht16k33.New(i2c)
	if err := matrix.Init(); err != nil {
		return p, err
	}

	// Set up the sensors
	light := bh1750.New(i2c)
	light.Configure()

	accel := lis3dh.New(i2c)
	accel.Configure()
	if !accel.Connected() {
		return p, errNoAccelerometer
	}
	accel.SetRange(lis3dh.RANGE_2_G)

	// Set up the high score EEPROM
	eeprom := at24cx.New(i2c)
	eeprom.Configure(at24cx.Config{PageSize: EEPROM_PAGE, EndRAMAddress: EEPROM_SIZE})

	// Set up the speaker
	PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_SPEAKER.Low()

	// Set up the fire button
	PIN_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	// Set up the X- and Y-axis joystick input
	machine.InitADC()
	if err := PIN_X.Configure(machine.ADCConfig{}); err != nil {
		return p, fmt.Errorf("joystick x: %w", err)
	}
	if err := PIN_Y.Configure(machine.ADCConfig{}); err != nil {
		return p, fmt.Errorf("joystick y: %w", err)
	}

	sleeper := hal.SystemSleeper{}
	var voice tone.Voice = tone.NewPinVoice(PIN_SPEAKER, sleeper, SPEAKER_WAVE)
	if USE_PWM_SPEAKER {
		pwm, err := newPWMVoice(sleeper)
		if err != nil {
			return p, fmt.Errorf("speaker: %w", err)
		}
		voice = pwm
	}

	p = orchestrator.Peripherals{
		Display:  oledDisplay{dev: &oled},
		Light:    lightSensor{dev: &light},
		Accel:    accelerometer{dev: &accel},
		Buttons:  joystick{},
		Store:    &eeprom,
		Clock:    &hal.SystemClock{},
		Sleeper:  sleeper,
		Progress: ht16k33.NewProgress(matrix, logger),
		Voice:    voice,
	}

	return p, nil
}

func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(FAIL_BLINK_MS)
		led.High()
		time.Sleep(FAIL_BLINK_MS)
	}
}
