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
package menu

// ID identifies a menu action.
type ID uint8

const (
	StartGame ID = iota
	ResetScore
	HighScore
	Credits
	Exit
)

type Item struct {
	ID    ID
	Label string
}

// Main is the fixed main menu, in display order.
var Main = []Item{
	{StartGame, "Start game"},
	{ResetScore, "Reset score"},
	{HighScore, "High score"},
	{Credits, "Credits"},
	{Exit, "Exit"},
}

// Controller tracks the highlighted item. It never renders; callers redraw
// after any index change.
type Controller struct {
	items    []Item
	selected int
}

func New(items []Item) *Controller {
	return &Controller{items: items}
}

func (c *Controller) Items() []Item {
	return c.items
}

func (c *Controller) Selected() int {
	return c.selected
}

func (c *Controller) MoveNext() {
	c.selected = (c.selected + 1) % len(c.items)
}

func (c *Controller) MovePrev() {
	c.selected = (c.selected - 1 + len(c.items)) % len(c.items)
}

// Confirm returns the highlighted item.
func (c *Controller) Confirm() Item {
	return c.items[c.selected]
}
