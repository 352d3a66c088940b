package famicore

// button bit order of the serial report
const (
	BitA = iota
	BitB
	BitSelect
	BitStart
	BitUp
	BitDown
	BitLeft
	BitRight
)

type controller struct {
	buttons   [8]uint8
	targetBit uint8
}

// Controllers models the two joypad ports. Each read of 0x4016/0x4017
// shifts out the next button bit.
type Controllers struct {
	controllers [2]controller
	strobe      uint8
}

func (c *Controllers) Init() {
	c.controllers = [2]controller{}
	c.strobe = 0
}

func (c *Controllers) Reset() {
	c.Init()
}

// Poke sets a button state, the ui layer drives this from the keyboard.
func (c *Controllers) Poke(controllerId uint8, button uint8, pressed bool) {
	controller := &c.controllers[controllerId]
	if pressed {
		controller.buttons[button] = 1
	} else {
		controller.buttons[button] = 0
	}
}

func (c *Controllers) readButton(controllerId uint8) uint8 {
	controller := &c.controllers[controllerId]

	if controller.targetBit < 8 {
		active := controller.buttons[controller.targetBit]
		controller.targetBit++
		return active
	}
	// a standard controller reports 1 once the shift register is drained
	return 1
}

// common.BusInt
func (c *Controllers) Read8(addr uint16) uint8 {
	switch addr {
	case 0x4016:
		return c.readButton(0)
	case 0x4017:
		return c.readButton(1)
	}
	return 0
}

func (c *Controllers) Write8(addr uint16, val uint8) {
	switch addr {
	case 0x4016:
		c.strobe = val & 0x1
		// while strobing the shift registers stay reloaded
		for i := range c.controllers {
			c.controllers[i].targetBit = 0
		}
	}
}
