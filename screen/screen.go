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

// Package screen composes game frames from the display primitives using
// the current theme colours.
package screen

import (
	"fmt"

	"reflex/hal"
	"reflex/menu"
	"reflex/theme"
)

// GlyphWidth is the advance of one character in pixels.
const GlyphWidth = 5

// Menu layout
const (
	menuLeft  int16 = 4
	menuTop   int16 = 2
	menuPitch int16 = 12
)

type Screen struct {
	display hal.Display
	theme   *theme.Manager
}

func New(display hal.Display, tm *theme.Manager) *Screen {
	return &Screen{display: display, theme: tm}
}

func (s *Screen) Size() (int16, int16) {
	return s.display.Size()
}

// Centre is the middle pixel of the panel.
func (s *Screen) Centre() (int16, int16) {
	w, h := s.display.Size()
	return w / 2, h / 2
}

func (s *Screen) Clear() {
	_, bg := s.theme.Colors()
	s.display.ClearScreen(bg)
}

func (s *Screen) Flush() {
	s.display.Flush()
}

func (s *Screen) Text(x, y int16, text string) {
	fg, bg := s.theme.Colors()
	s.display.PutText(x, y, text, fg, bg)
}

// Centred writes text horizontally centred on row y.
func (s *Screen) Centred(y int16, text string) {

	w, _ := s.display.Size()
	x := (w - int16(len(text))*GlyphWidth) / 2
	if x < 0 {
		x = 0
	}

	s.Text(x, y, text)
}

// Menu draws every item with a marker next to the selected one.
func (s *Screen) Menu(items []menu.Item, selected int) {

	s.Clear()
	for i, item := range items {
		marker := ' '
		if i == selected {
			marker = '>'
		}

		s.Text(menuLeft, menuTop+int16(i)*menuPitch, fmt.Sprintf("%c %s", marker, item.Label))
	}

	s.Flush()
}

// Circle draws an outline with the midpoint algorithm.
func (s *Screen) Circle(x0, y0, radius int16) {

	fg, _ := s.theme.Colors()
	x, y, err := radius, int16(0), int16(0)
	for x >= y {
		s.display.PutPixel(x0+x, y0+y, fg)
		s.display.PutPixel(x0+y, y0+x, fg)
		s.display.PutPixel(x0-y, y0+x, fg)
		s.display.PutPixel(x0-x, y0+y, fg)
		s.display.PutPixel(x0-x, y0-y, fg)
		s.display.PutPixel(x0-y, y0-x, fg)
		s.display.PutPixel(x0+y, y0-x, fg)
		s.display.PutPixel(x0+x, y0-y, fg)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// FillCircle paints every pixel within radius of the centre.
func (s *Screen) FillCircle(x0, y0, radius int16) {

	fg, _ := s.theme.Colors()
	r2 := int32(radius) * int32(radius)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if int32(x)*int32(x)+int32(y)*int32(y) <= r2 {
				s.display.PutPixel(x0+x, y0+y, fg)
			}
		}
	}
}

// Millis formats a stored score, showing dashes when there is no record.
func Millis(v uint16, hasRecord bool) string {
	if !hasRecord {
		return "--- ms"
	}
	return fmt.Sprintf("%d ms", v)
}
