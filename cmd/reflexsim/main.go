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

// Command reflexsim runs the game on a desktop terminal, standing in for
// the handheld's display, joystick, sensors and EEPROM.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reflexsim",
	Short: "Terminal bench for the Reflex reaction game",
	Long: `Runs the Reflex menu and game loop against simulated peripherals.
Keys: arrows or w/s to move, space or enter to select, t to tilt the
board, l/L to dim or brighten the room, q to quit.`,
	SilenceUsage: true,
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error or none (default from REFLEX_LOG_LEVEL)")
	rootCmd.AddCommand(runCmd, notesCmd)
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
