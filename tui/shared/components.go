package shared

import (
	bl "github.com/winder/bubblelayout"

	"quire/tui/mode"
)

// Component holds what every column of the layout shares
type Component struct {
	ID   bl.ID
	Size bl.Size

	// The mode shown while the component has the focus
	Mode mode.Mode

	hidden bool

	// Indicates whether the component receives the key input
	focused bool
}

func (c *Component) Focus()        { c.focused = true }
func (c *Component) Blur()         { c.focused = false }
func (c *Component) Focused() bool { return c.focused }

func (c *Component) Hidden() bool { return c.hidden }

// Toggle shows a hidden component and hides a visible one
func (c *Component) Toggle() {
	c.hidden = !c.hidden
}

// InnerSize is the size without the border of the column
func (c *Component) InnerSize() (int, int) {
	return max(c.Size.Width-2, 0), max(c.Size.Height-2, 0)
}
