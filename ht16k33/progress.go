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
	"reflex/internal/log"
)

// 3x5 digit glyphs, top row first
var digitRows = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

const (
	digitLeft uint = 5
	barRow    uint = 7
)

// Glyph returns the column bytes of a digit, bit 0 being the top row.
func Glyph(digit int) [3]byte {

	var cols [3]byte
	if digit < 0 || digit > 9 {
		return cols
	}

	for row, line := range digitRows[digit] {
		for col := 0; col < 3; col++ {
			if line[col] == '#' {
				cols[col] |= 1 << uint(row)
			}
		}
	}

	return cols
}

// Progress shows the game round on the matrix: one lit LED per round
// along the bottom row, like an LED bar, and the round number top right.
type Progress struct {
	matrix *HT16K33
	logger *log.Logger
}

func NewProgress(matrix *HT16K33, logger *log.Logger) *Progress {
	return &Progress{matrix: matrix, logger: logger}
}

func (p *Progress) SetRound(round int) {

	p.matrix.Clear()
	if round >= 0 && round < 8 {
		p.matrix.Plot(uint(round), barRow, true)
	}

	glyph := Glyph((round + 1) % 10)
	for i, col := range glyph {
		for row := uint(0); row < 5; row++ {
			p.matrix.Plot(digitLeft+uint(i), row, col&(1<<row) != 0)
		}
	}

	p.draw()
}

func (p *Progress) Clear() {

	p.matrix.Clear()
	p.draw()
}

func (p *Progress) draw() {
	if err := p.matrix.Draw(); err != nil {
		p.logger.Errorf("progress: %v", err)
	}
}
