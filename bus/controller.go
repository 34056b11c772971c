package bus

// Controller implements a standard NES controller's shift-register
// protocol at $4016/$4017: writing bit 0 sets the strobe; while
// strobed the controller continuously reloads its shift register from
// the live button state, and each read while unstrobed shifts one bit
// out, low to high (A, B, Select, Start, Up, Down, Left, Right).
// https://www.nesdev.org/wiki/Standard_controller
type Controller struct {
	strobe  bool
	buttons uint8
	shift   uint8
}

// Button bit positions, as delivered by SetButtons.
const (
	ButtonA = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// SetButtons records the controller's current physical button state;
// the host (cmd/nesgo) calls this once per frame from its input poll.
func (c *Controller) SetButtons(buttons uint8) {
	c.buttons = buttons
	if c.strobe {
		c.shift = c.buttons
	}
}

// Write handles a CPU write to $4016.
func (c *Controller) Write(val uint8) {
	c.strobe = val&0x01 != 0
	if c.strobe {
		c.shift = c.buttons
	}
}

// Read handles a CPU read of this controller's port. Past the eighth
// bit real hardware returns 1; we match that instead of panicking on
// an out-of-range shift.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 0x01
	}
	v := c.shift & 0x01
	c.shift = c.shift>>1 | 0x80
	return v
}
