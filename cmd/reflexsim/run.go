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
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reflex/hal"
	"reflex/internal/config"
	"reflex/internal/log"
	"reflex/orchestrator"
	"reflex/session"
)

const (
	panelWidth  int16 = 96
	panelHeight int16 = 64

	// Same capacity as the board's AT24C32
	storeSize = 4096
)

var runFlags struct {
	seed       int64
	light      uint32
	voice      string
	waveform   string
	frameDelay time.Duration
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the game in this terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runBench(cmd.OutOrStdout(), os.Stdin, cfg)
	},
}

func init() {
	f := runCmd.Flags()
	f.Int64Var(&runFlags.seed, "seed", 0, "seed for stimulus delays, 0 seeds from the light level")
	f.Uint32Var(&runFlags.light, "light", 0, "starting ambient light level")
	f.StringVar(&runFlags.voice, "voice", "", "speaker voice: pin, pwm or silent")
	f.StringVar(&runFlags.waveform, "waveform", "", "pin voice waveform: corrected or quarter")
	f.DurationVar(&runFlags.frameDelay, "frame-delay", 0, "startup animation frame delay")
}

// loadConfig reads REFLEX_* variables, then applies any flags given.
func loadConfig(cmd *cobra.Command) (config.Config, error) {

	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = runFlags.seed
	}
	if f.Changed("light") {
		cfg.Light = runFlags.light
	}
	if f.Changed("voice") {
		cfg.Voice = runFlags.voice
	}
	if f.Changed("waveform") {
		cfg.Waveform = runFlags.waveform
	}
	if f.Changed("frame-delay") {
		cfg.FrameDelay = runFlags.frameDelay
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, cfg.Validate()
}

// sessionLog collects finished games under a fresh id each.
type sessionLog struct {
	mu      sync.Mutex
	entries []sessionEntry
}

type sessionEntry struct {
	ID      string
	Summary session.Summary
}

func (s *sessionLog) add(sum session.Summary) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, sessionEntry{ID: uuid.NewString(), Summary: sum})
}

func (s *sessionLog) print(w io.Writer) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		fmt.Fprintln(w, "no games played")
		return
	}
	for _, e := range s.entries {
		fmt.Fprintf(w, "game %s: avg %d ms, best %d ms, %d new records\n",
			e.ID, e.Summary.AverageMs, e.Summary.BestMs, e.Summary.Records)
	}
}

func runBench(out io.Writer, in *os.File, cfg config.Config) error {

	// Raw mode so single keys arrive without Enter; piped input is
	// read as it is
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(fd, state)
	}

	pane := newLogPane(logLines)
	logger := log.New(pane, log.LevelFromString(cfg.LogLevel))

	b := newBench(cfg.Light)
	sleeper := hal.SystemSleeper{}
	p := orchestrator.Peripherals{
		Display:  newTerminalDisplay(out, panelWidth, panelHeight, pane, b.Status),
		Light:    benchLight{b},
		Accel:    benchAccel{b},
		Buttons:  benchButtons{b},
		Store:    hal.NewMemoryStore(storeSize),
		Clock:    &hal.SystemClock{},
		Sleeper:  sleeper,
		Progress: benchProgress{b},
		Voice:    b.voice(cfg, sleeper, logger),
	}

	game := orchestrator.New(p, orchestrator.Options{Seed: cfg.Seed, FrameDelay: cfg.FrameDelay}, logger)
	logger.Infof("reflex: seeded with %d", game.Seed)

	games := &sessionLog{}
	game.OnSession = games.add

	quit := make(chan struct{})
	go readKeys(in, b, quit)

	// The host has nothing to park in, so Exit ends the program
	done := make(chan struct{})
	go func() {
		game.Boot()
		game.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-quit:
	}

	fmt.Fprint(out, "\x1b[0m\r\n")
	games.print(crlf{out})

	return nil
}

// crlf writes LF as CRLF so output lines up while the terminal is raw.
type crlf struct{ w io.Writer }

func (c crlf) Write(p []byte) (int, error) {

	buf := make([]byte, 0, len(p))
	for _, ch := range p {
		if ch == '\n' {
			buf = append(buf, '\r')
		}
		buf = append(buf, ch)
	}
	if _, err := c.w.Write(buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
