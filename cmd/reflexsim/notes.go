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
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"reflex/tone"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Print the note table with frequencies and MIDI keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPERIOD (us)\tFREQ (Hz)\tMIDI")
		for _, n := range tone.Table {
			key := midiKey(n.Period)
			fmt.Fprintf(w, "%s\t%d\t%.1f\t%d %s\n", n.Name, n.Period, 1e6/float64(n.Period), key, noteName(key))
		}
		return w.Flush()
	},
}

// midiKey maps a period in microseconds to the nearest MIDI key,
// A4 = 440 Hz = key 69.
func midiKey(periodMicros uint32) uint8 {

	if periodMicros == 0 {
		return 0
	}

	hz := 1e6 / float64(periodMicros)
	key := math.Round(69 + 12*math.Log2(hz/440))
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}

	return uint8(key)
}

// noteName spells a key in scientific pitch, so key 60 is C4. midi.Note
// counts octaves from key 0, one higher than that.
func noteName(key uint8) string {
	n := midi.Note(key)
	return fmt.Sprintf("%s%d", n.Name(), int(n.Octave())-1)
}
