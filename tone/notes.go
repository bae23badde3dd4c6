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
package tone

// Note periods in microseconds
const (
	C4  uint32 = 3816 // 262 Hz
	D4  uint32 = 3401 // 294 Hz
	DS4 uint32 = 3215 // 311 Hz
	E4  uint32 = 3030 // 330 Hz
	F4  uint32 = 2865 // 349 Hz
	FS4 uint32 = 2703 // 370 Hz
	G4  uint32 = 2551 // 392 Hz
	A4  uint32 = 2272 // 440 Hz
	AS4 uint32 = 2146 // 466 Hz
	B4  uint32 = 2024 // 494 Hz
	C5  uint32 = 1912 // 523 Hz
	D5  uint32 = 1703 // 587 Hz
	E5  uint32 = 1517 // 659 Hz
	F5  uint32 = 1432 // 698 Hz
	G5  uint32 = 1275 // 784 Hz
	A5  uint32 = 1136 // 880 Hz
	B5  uint32 = 1012 // 988 Hz
)

// Table lists every named period, low to high, for tooling.
var Table = []struct {
	Name   string
	Period uint32
}{
	{"C4", C4}, {"D4", D4}, {"D#4", DS4}, {"E4", E4}, {"F4", F4},
	{"F#4", FS4}, {"G4", G4}, {"A4", A4}, {"A#4", AS4}, {"B4", B4},
	{"C5", C5}, {"D5", D5}, {"E5", E5}, {"F5", F5}, {"G5", G5},
	{"A5", A5}, {"B5", B5},
}

// Cues used by the menu and the game.
var (
	Click     = Sequence{{A4, 200}}
	ThemeFlip = Sequence{{A4, 200}}
	Boot      = Sequence{{D4, 200}}
	WaitCue   = Sequence{{C4, 250}}
	Record    = Sequence{{A4, 100}, {E4, 200}, {A5, 400}}
	Farewell  = Sequence{{A5, 200}, {E4, 200}, {B4, 200}}
)

// Credits is the opening of the main title march.
var Credits = Sequence{
	{G4, 500}, {G4, 500}, {G4, 500},

	{C4, 350}, {G5, 150}, {G4, 500},
	{F4, 350}, {DS4, 150}, {D4, 150},
	{C4, 350}, {G5, 150}, {G4, 1000},

	{F4, 350}, {DS4, 150}, {D4, 150},
	{C4, 350}, {G5, 150}, {G4, 1000},
}
