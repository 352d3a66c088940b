package common

import "image/color"

// interrupt lines a device can pull on the cpu
const (
	IntNMI uint8 = 1 << 0
	IntIRQ uint8 = 1 << 1
)

type IiInterrupt interface {
	Raise(uint8)
	Clear(uint8)
}

const (
	FrameXWidth  = 256
	FrameYHeight = 240
)

type Framebuffer struct {
	Buffer0 []color.RGBA
	Buffer1 []color.RGBA

	// 0 - Buffer0 is the back buffer, 1 - Buffer1 is
	FrameIndex   int
	FrameUpdated chan bool

	// number of frames completed so far
	Frames int
}

func (f *Framebuffer) Init() {
	f.Buffer0 = make([]color.RGBA, FrameXWidth*FrameYHeight)
	f.Buffer1 = make([]color.RGBA, FrameXWidth*FrameYHeight)
	f.FrameUpdated = make(chan bool)
	f.FrameIndex = 0
}

// Back returns the buffer currently owned by the renderer.
func (f *Framebuffer) Back() []color.RGBA {
	if f.FrameIndex == 0 {
		return f.Buffer0
	}
	return f.Buffer1
}

// Front returns the stable buffer, safe for readers until the next swap.
func (f *Framebuffer) Front() []color.RGBA {
	if f.FrameIndex == 0 {
		return f.Buffer1
	}
	return f.Buffer0
}

// Swap publishes the back buffer. Called once per frame.
func (f *Framebuffer) Swap() {
	f.FrameIndex ^= 1
	f.Frames++
	select {
	case f.FrameUpdated <- true:
	default:
	}
}
