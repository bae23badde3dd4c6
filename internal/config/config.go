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
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "REFLEX_"

// Waveform and voice names accepted in the environment.
const (
	WaveformCorrected = "corrected"
	WaveformQuarter   = "quarter"

	VoicePin    = "pin"
	VoicePWM    = "pwm"
	VoiceSilent = "silent"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Seed for the stimulus delays; zero means seed from the light sensor.
	Seed int64 `env:"SEED" envDefault:"0"`

	Waveform string `env:"WAVEFORM" envDefault:"corrected"`
	Voice    string `env:"VOICE" envDefault:"pin"`

	// Light is the simulated ambient reading.
	Light uint32 `env:"LIGHT" envDefault:"200"`

	// FrameDelay paces the startup animation frames.
	FrameDelay time.Duration `env:"FRAME_DELAY" envDefault:"300ms"`
}

// Default is the simulator's configuration before the environment is
// applied. The firmware does not use it; it builds from constants.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Waveform:   WaveformCorrected,
		Voice:      VoicePin,
		Light:      200,
		FrameDelay: 300 * time.Millisecond,
	}
}

// Load reads REFLEX_* variables on top of the defaults.
func Load() (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Waveform {
	case WaveformCorrected, WaveformQuarter:
	default:
		return fmt.Errorf("config: unknown waveform %q", c.Waveform)
	}
	switch c.Voice {
	case VoicePin, VoicePWM, VoiceSilent:
	default:
		return fmt.Errorf("config: unknown voice %q", c.Voice)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("config: negative frame delay %s", c.FrameDelay)
	}
	return nil
}
