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
	"image/color"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"

	"reflex/screen"
)

const (
	// Each terminal cell is one braille character covering 2x4 pixels
	cellW = 2
	cellH = 4

	repaintDelay = 15 * time.Millisecond
	logLines     = 6
)

// braille dot bits indexed by [row][column] inside a cell
var brailleDots = [cellH][cellW]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// terminalDisplay keeps an off-screen 1-bit frame plus a text layer and
// paints both on Flush. Repaints are coalesced so a burst of flushes
// costs one write.
type terminalDisplay struct {
	mu      sync.Mutex
	paintMu sync.Mutex
	w, h    int16
	pixels  []bool
	text    map[[2]int]rune
	light   bool
	status  func() string
	logs    *logPane

	out     io.Writer
	repaint func(func())
}

func newTerminalDisplay(out io.Writer, w, h int16, logs *logPane, status func() string) *terminalDisplay {
	return &terminalDisplay{
		w:       w,
		h:       h,
		pixels:  make([]bool, int(w)*int(h)),
		text:    make(map[[2]int]rune),
		status:  status,
		logs:    logs,
		out:     out,
		repaint: debounce.New(repaintDelay),
	}
}

func isLit(c color.RGBA) bool {
	return int(c.R)+int(c.G)+int(c.B) > 3*0x7F
}

func (d *terminalDisplay) ClearScreen(bg color.RGBA) {

	d.mu.Lock()
	defer d.mu.Unlock()

	// Inverted output stands in for a white background
	d.light = isLit(bg)
	for i := range d.pixels {
		d.pixels[i] = false
	}
	d.text = make(map[[2]int]rune)
}

func (d *terminalDisplay) PutText(x, y int16, text string, fg, bg color.RGBA) {

	d.mu.Lock()
	defer d.mu.Unlock()

	// Keep the text centred where the panel would centre it, even though
	// a terminal cell is narrower than a glyph
	n := len(text)
	mid := int(x) + n*screen.GlyphWidth/2
	col := mid/cellW - n/2
	row := int(y) / cellH
	for i, r := range text {
		d.text[[2]int{row, col + i}] = r
	}
}

func (d *terminalDisplay) PutPixel(x, y int16, c color.RGBA) {

	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Pixels are stored relative to the background so inversion is free
	d.pixels[int(y)*int(d.w)+int(x)] = isLit(c) != d.light
}

func (d *terminalDisplay) Size() (int16, int16) {
	return d.w, d.h
}

func (d *terminalDisplay) Flush() {
	d.repaint(d.paint)
}

// Frame renders the current contents without escape codes.
func (d *terminalDisplay) Frame() []string {

	d.mu.Lock()
	defer d.mu.Unlock()

	cols := (int(d.w) + cellW - 1) / cellW
	rows := (int(d.h) + cellH - 1) / cellH
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			if r, ok := d.text[[2]int{row, col}]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteRune(d.cell(row, col))
		}
		lines[row] = b.String()
	}

	return lines
}

func (d *terminalDisplay) cell(row, col int) rune {

	var dots rune
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW; dx++ {
			x := col*cellW + dx
			y := row*cellH + dy
			if x < int(d.w) && y < int(d.h) && d.pixels[y*int(d.w)+x] {
				dots |= brailleDots[dy][dx]
			}
		}
	}

	if dots == 0 {
		return ' '
	}
	return 0x2800 + dots
}

func (d *terminalDisplay) paint() {

	d.paintMu.Lock()
	defer d.paintMu.Unlock()

	frame := d.Frame()

	d.mu.Lock()
	light := d.light
	d.mu.Unlock()

	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	border := "+" + strings.Repeat("-", len([]rune(frame[0]))) + "+\r\n"
	b.WriteString(border)
	for _, line := range frame {
		b.WriteString("|")
		if light {
			b.WriteString("\x1b[7m")
		}
		b.WriteString(line)
		if light {
			b.WriteString("\x1b[0m")
		}
		b.WriteString("|\r\n")
	}
	b.WriteString(border)

	if d.status != nil {
		b.WriteString(d.status())
		b.WriteString("\r\n")
	}
	for _, l := range d.logs.Lines() {
		b.WriteString(l)
		b.WriteString("\r\n")
	}

	io.WriteString(d.out, b.String())
}

// logPane keeps the last few log lines for display under the frame.
type logPane struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newLogPane(max int) *logPane {
	return &logPane{max: max}
}

func (p *logPane) Write(b []byte) (int, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, l := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		p.lines = append(p.lines, l)
	}
	if over := len(p.lines) - p.max; over > 0 {
		p.lines = append([]string(nil), p.lines[over:]...)
	}

	return len(b), nil
}

func (p *logPane) Lines() []string {

	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.lines...)
}
