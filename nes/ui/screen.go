package ui

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/goretro/famicore/nes/common"
)

const (
	screenFrameRatio = 3
	screenXWidth     = common.FrameXWidth * screenFrameRatio
	screenYHeight    = common.FrameYHeight * screenFrameRatio
)

// Console is the slice of the emulator the window needs to talk back to.
type Console interface {
	Poke(controllerId uint8, button uint8, pressed bool)
	Reset()
}

type Screen struct {
	console Console

	// window where we draw the sprite
	window *pixelgl.Window

	// front and back buffers, the ppu renders into one while the other
	// is being displayed
	buffer0 *pixel.PictureData
	buffer1 *pixel.PictureData
	sprite  *pixel.Sprite

	Framebuffer common.Framebuffer

	// FPS stats
	fpsChannel   <-chan time.Time
	fpsLastFrame int
}

func (s *Screen) Init(console Console) {
	s.console = console

	s.setSprite()
}

// Run hands the main thread over to the gl loop.
func (s *Screen) Run() {
	go func() {
		runtime.LockOSThread()
		pixelgl.Run(s.runThread)
		os.Exit(0)
	}()
}

func (s *Screen) runThread() {
	cfg := pixelgl.WindowConfig{
		Title:  "famicore",
		Bounds: pixel.R(0, 0, screenXWidth, screenYHeight),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}
	window.Clear(colornames.Black)

	s.window = window
	s.fpsChannel = time.Tick(time.Second)
	s.fpsLastFrame = 0

	s.runner()
}

func (s *Screen) runner() {
	lastLoopFrames := 0
	for !s.window.Closed() {

		<-s.Framebuffer.FrameUpdated

		frameDiff := s.Framebuffer.Frames - lastLoopFrames
		if frameDiff > 0 {
			if frameDiff > 1 {
				fmt.Printf("oops, skipped %v frames!\n", frameDiff)
			}

			s.draw()
			s.window.Update()
			lastLoopFrames = s.Framebuffer.Frames
		}

		s.updateFpsTitle()
		s.updateControllers()
	}
}

var buttons = [8]struct {
	id  uint8
	key pixelgl.Button
}{
	{0, pixelgl.KeyS},          // A
	{1, pixelgl.KeyA},          // B
	{2, pixelgl.KeyLeftShift},  // Select
	{3, pixelgl.KeyEnter},      // Start
	{4, pixelgl.KeyUp},
	{5, pixelgl.KeyDown},
	{6, pixelgl.KeyLeft},
	{7, pixelgl.KeyRight},
}

func (s *Screen) updateControllers() {
	onePressed := false
	for _, button := range buttons {
		pressed := s.window.Pressed(button.key)
		s.console.Poke(0, button.id, pressed)
		if pressed {
			onePressed = true
		}
	}

	if s.window.Pressed(pixelgl.KeyLeftControl) && s.window.JustPressed(pixelgl.KeyR) {
		s.console.Reset()
		onePressed = true
	}

	if onePressed {
		s.window.UpdateInput()
	}
}

func (s *Screen) updateFpsTitle() {
	select {
	case <-s.fpsChannel:
		frames := s.Framebuffer.Frames - s.fpsLastFrame
		s.fpsLastFrame = s.Framebuffer.Frames

		s.window.SetTitle(fmt.Sprintf("famicore | FPS: %d", frames))
	default:
	}
}

func (s *Screen) draw() {
	s.updateSprite()

	s.sprite.Draw(s.window, pixel.IM.Moved(s.window.Bounds().Center()).
		ScaledXY(s.window.Bounds().Center(), pixel.V(screenFrameRatio, screenFrameRatio)))
}

func (s *Screen) updateSprite() {
	if s.Framebuffer.FrameIndex == 1 {
		// new pixels are landing on buffer1, the stable data is in buffer0
		s.sprite = pixel.NewSprite(s.buffer0, pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight))
	} else {
		s.sprite = pixel.NewSprite(s.buffer1, pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight))
	}
}

func (s *Screen) setSprite() {
	s.buffer0 = &pixel.PictureData{
		Pix:    make([]color.RGBA, common.FrameXWidth*common.FrameYHeight),
		Stride: common.FrameXWidth,
		Rect:   pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight),
	}

	s.buffer1 = &pixel.PictureData{
		Pix:    make([]color.RGBA, common.FrameXWidth*common.FrameYHeight),
		Stride: common.FrameXWidth,
		Rect:   pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight),
	}

	s.Framebuffer = common.Framebuffer{
		Buffer0:      s.buffer0.Pix,
		Buffer1:      s.buffer1.Pix,
		FrameIndex:   0,
		FrameUpdated: make(chan bool),
		Frames:       0,
	}

	s.updateSprite()
}
