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
	"io"

	"reflex/hal"
)

type command uint8

const (
	cmdNone command = iota
	cmdPress
	cmdTilt
	cmdDim
	cmdBrighten
	cmdQuit
)

type keyAction struct {
	cmd  command
	mask hal.Mask
}

// decodeKeys turns a chunk of raw terminal input into bench actions.
// Unknown bytes are ignored.
func decodeKeys(buf []byte) []keyAction {

	var out []keyAction
	for i := 0; i < len(buf); i++ {
		c := buf[i]

		// Cursor keys arrive as ESC [ A..D
		if c == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				out = append(out, keyAction{cmd: cmdPress, mask: hal.Up})
			case 'B':
				out = append(out, keyAction{cmd: cmdPress, mask: hal.Down})
			case 'C':
				out = append(out, keyAction{cmd: cmdPress, mask: hal.Right})
			case 'D':
				out = append(out, keyAction{cmd: cmdPress, mask: hal.Left})
			}
			i += 2
			continue
		}

		switch c {
		case 'w', 'k':
			out = append(out, keyAction{cmd: cmdPress, mask: hal.Up})
		case 's', 'j':
			out = append(out, keyAction{cmd: cmdPress, mask: hal.Down})
		case 'a':
			out = append(out, keyAction{cmd: cmdPress, mask: hal.Left})
		case 'd':
			out = append(out, keyAction{cmd: cmdPress, mask: hal.Right})
		case ' ', '\r', '\n':
			out = append(out, keyAction{cmd: cmdPress, mask: hal.Select})
		case 't':
			out = append(out, keyAction{cmd: cmdTilt})
		case 'l':
			out = append(out, keyAction{cmd: cmdDim})
		case 'L':
			out = append(out, keyAction{cmd: cmdBrighten})
		case 'q', 0x03:
			out = append(out, keyAction{cmd: cmdQuit})
		}
	}

	return out
}

// readKeys feeds input into the bench until quit is typed or the input
// ends. Quit closes the channel; end of input leaves the game running
// on whatever presses are still queued.
func readKeys(in io.Reader, b *bench, quit chan<- struct{}) {

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, a := range decodeKeys(buf[:n]) {
			switch a.cmd {
			case cmdPress:
				b.press(a.mask)
			case cmdTilt:
				b.tilt()
			case cmdDim:
				b.dim()
			case cmdBrighten:
				b.brighten()
			case cmdQuit:
				close(quit)
				return
			}
		}
		if err != nil {
			return
		}
	}
}
