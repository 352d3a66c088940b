package ppu

import (
	"testing"

	"github.com/goretro/famicore/nes/common"
)

type fakeInterrupt struct {
	raised uint8
}

func (f *fakeInterrupt) Raise(flag uint8) {
	f.raised |= flag
}
func (f *fakeInterrupt) Clear(flag uint8) {
	f.raised &= flag ^ 0xFF
}

func newTestPpu(mirroring Mirroring) (*Ppu, *fakeInterrupt) {
	patterns := &common.Ram{}
	patterns.Init(0x2000)

	mem := &Memory{}
	mem.Init(patterns, mirroring)

	frameBuffer := &common.Framebuffer{}
	frameBuffer.Init()

	ii := &fakeInterrupt{}

	ppu := &Ppu{}
	ppu.Init(mem, ii, frameBuffer)
	return ppu, ii
}

func stepTo(p *Ppu, scanLine int, cycle int) {
	for p.scanLine != scanLine || p.cycle != cycle {
		p.Step()
	}
}

func TestLoopyIncX(t *testing.T) {
	tests := []struct {
		name   string
		before uint16
		after  uint16
	}{
		{"plain", 0x0000, 0x0001},
		{"wrap flips horizontal nametable", 0x001F, 0x0400},
		{"wrap clears the flip back", 0x041F, 0x0000},
		{"fine y untouched", 0x7000 | 0x001F, 0x7000 | 0x0400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := loopyRegister{}
			v.Val = tt.before
			v.incX()
			if v.Val != tt.after {
				t.Errorf("incX(0x%04x) = 0x%04x, want 0x%04x", tt.before, v.Val, tt.after)
			}
		})
	}
}

func TestLoopyIncY(t *testing.T) {
	tests := []struct {
		name   string
		before uint16
		after  uint16
	}{
		{"fine y increments", 0x0000, 0x1000},
		{"fine y carries into coarse y", 0x7000, 0x0020},
		{"coarse y 29 flips vertical nametable", 0x7000 | 29<<5, 0x0800},
		{"coarse y 31 wraps without the flip", 0x7000 | 31<<5, 0x0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := loopyRegister{}
			v.Val = tt.before
			v.incY()
			if v.Val != tt.after {
				t.Errorf("incY(0x%04x) = 0x%04x, want 0x%04x", tt.before, v.Val, tt.after)
			}
		})
	}
}

func TestLoopyCopies(t *testing.T) {
	v := loopyRegister{}
	tr := loopyRegister{}

	v.Val = 0x7FFF
	tr.Val = 0x0000
	v.copyHori(tr)
	if v.Val != 0x7FFF&0xFBE0 {
		t.Errorf("copyHori = 0x%04x, want 0x%04x", v.Val, 0x7FFF&0xFBE0)
	}

	v.Val = 0x7FFF
	tr.Val = 0x0000
	v.copyVert(tr)
	if v.Val != 0x7FFF&0x841F {
		t.Errorf("copyVert = 0x%04x, want 0x%04x", v.Val, 0x7FFF&0x841F)
	}
}

// The two-write registers share the one toggle, and a status read resets it.
func TestWriteToggle(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	p.Write8(0x2006, 0x3F)
	p.Write8(0x2006, 0x10)
	if p.vRAM.Val != 0x3F10 {
		t.Errorf("vRAM after two PPUADDR writes = 0x%04x, want 0x3F10", p.vRAM.Val)
	}

	// first write consumed, the status read resets w, so the next write
	// lands as a first write again
	p.Write8(0x2006, 0x20)
	p.Read8(0x2002)
	p.Write8(0x2006, 0x21)
	p.Write8(0x2006, 0x08)
	if p.vRAM.Val != 0x2108 {
		t.Errorf("vRAM after status read reset = 0x%04x, want 0x2108", p.vRAM.Val)
	}
}

func TestScrollWrites(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	// X = 0b10101_110: coarse 0b10101, fine 0b110
	p.Write8(0x2005, 0xAE)
	if p.tRAM.getCoarseX() != 0x15 {
		t.Errorf("coarse X = 0x%02x, want 0x15", p.tRAM.getCoarseX())
	}
	if p.xFine.Val != 0x6 {
		t.Errorf("fine X = 0x%02x, want 0x6", p.xFine.Val)
	}

	// Y = 0b01010_011: coarse 0b01010, fine 0b011
	p.Write8(0x2005, 0x53)
	if p.tRAM.getCoarseY() != 0x0A {
		t.Errorf("coarse Y = 0x%02x, want 0x0a", p.tRAM.getCoarseY())
	}
	if p.tRAM.getFineY() != 0x3 {
		t.Errorf("fine Y = 0x%02x, want 0x3", p.tRAM.getFineY())
	}
}

func TestControlSetsNameTables(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	p.Write8(0x2000, 0x3)
	if p.tRAM.getNameTables() != 0x3 {
		t.Errorf("tRAM nametables = 0x%02x, want 0x3", p.tRAM.getNameTables())
	}
}

// VRAM reads below the palettes lag one access behind through the internal
// buffer, palette reads come straight back.
func TestDataBufferedRead(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	p.mem.Write8(0x2000, 0x11)
	p.mem.Write8(0x2001, 0x22)

	p.Write8(0x2006, 0x20)
	p.Write8(0x2006, 0x00)

	if got := p.Read8(0x2007); got != 0x00 {
		t.Errorf("first buffered read = 0x%02x, want 0x00", got)
	}
	if got := p.Read8(0x2007); got != 0x11 {
		t.Errorf("second buffered read = 0x%02x, want 0x11", got)
	}
	if got := p.Read8(0x2007); got != 0x22 {
		t.Errorf("third buffered read = 0x%02x, want 0x22", got)
	}

	p.mem.Write8(0x3F01, 0x2A)
	p.Write8(0x2006, 0x3F)
	p.Write8(0x2006, 0x01)
	if got := p.Read8(0x2007); got != 0x2A {
		t.Errorf("palette read = 0x%02x, want 0x2a", got)
	}
}

func TestDataWriteIncrement(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	p.Write8(0x2006, 0x20)
	p.Write8(0x2006, 0x00)
	p.Write8(0x2007, 0xAB)
	if p.vRAM.Val != 0x2001 {
		t.Errorf("vRAM after write = 0x%04x, want 0x2001", p.vRAM.Val)
	}
	if got := p.mem.Read8(0x2000); got != 0xAB {
		t.Errorf("vram[0x2000] = 0x%02x, want 0xab", got)
	}

	// increment 32 going down
	p.Write8(0x2000, 0x04)
	p.Write8(0x2007, 0xCD)
	if p.vRAM.Val != 0x2021 {
		t.Errorf("vRAM after +32 write = 0x%04x, want 0x2021", p.vRAM.Val)
	}
}

func TestPaletteMirrors(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	// 0x3F10 is an alias of 0x3F00
	p.mem.Write8(0x3F10, 0x21)
	if got := p.mem.Read8(0x3F00); got != 0x21 {
		t.Errorf("palette[0x3F00] = 0x%02x, want 0x21", got)
	}

	// the whole block repeats every 32 bytes
	p.mem.Write8(0x3F03, 0x17)
	if got := p.mem.Read8(0x3F23); got != 0x17 {
		t.Errorf("palette[0x3F23] = 0x%02x, want 0x17", got)
	}

	// reads mask to the 6 bit color space
	p.mem.Write8(0x3F01, 0xFF)
	if got := p.mem.Read8(0x3F01); got != 0x3F {
		t.Errorf("palette[0x3F01] = 0x%02x, want 0x3f", got)
	}
}

func TestNameTableMirroring(t *testing.T) {
	tests := []struct {
		name      string
		mirroring Mirroring
		write     uint16
		read      uint16
		distinct  uint16
	}{
		{"horizontal pairs 2000/2400", HorizontalMirroring, 0x2000, 0x2400, 0x2800},
		{"horizontal pairs 2800/2C00", HorizontalMirroring, 0x2800, 0x2C00, 0x2000},
		{"vertical pairs 2000/2800", VerticalMirroring, 0x2000, 0x2800, 0x2400},
		{"vertical pairs 2400/2C00", VerticalMirroring, 0x2400, 0x2C00, 0x2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPpu(tt.mirroring)

			p.mem.Write8(tt.write, 0x42)
			if got := p.mem.Read8(tt.read); got != 0x42 {
				t.Errorf("mirror read = 0x%02x, want 0x42", got)
			}
			if got := p.mem.Read8(tt.distinct); got == 0x42 {
				t.Errorf("0x%04x unexpectedly mirrors 0x%04x", tt.distinct, tt.write)
			}
		})
	}
}

func TestFourScreenMirroring(t *testing.T) {
	p, _ := newTestPpu(FourScreenMirroring)

	for i, addr := range []uint16{0x2000, 0x2400, 0x2800, 0x2C00} {
		p.mem.Write8(addr, uint8(i)+1)
	}
	for i, addr := range []uint16{0x2000, 0x2400, 0x2800, 0x2C00} {
		if got := p.mem.Read8(addr); got != uint8(i)+1 {
			t.Errorf("nametable %d = 0x%02x, want 0x%02x", i, got, i+1)
		}
	}
}

func writeSprite(p *Ppu, index int, y, tile, attr, x uint8) {
	p.rOAM.Write8(uint16(index*4+0), y)
	p.rOAM.Write8(uint16(index*4+1), tile)
	p.rOAM.Write8(uint16(index*4+2), attr)
	p.rOAM.Write8(uint16(index*4+3), x)
}

func TestSpriteOverflow(t *testing.T) {
	tests := []struct {
		name     string
		sprites  int
		overflow bool
	}{
		{"eight in range", 8, false},
		{"nine in range", 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPpu(VerticalMirroring)
			p.Write8(0x2001, 0x10) // show sprites

			for i := 0; i < tt.sprites; i++ {
				writeSprite(p, i, 10, 0, 0, uint8(i*8))
			}

			// sprite at Y is first visible on scanline Y+1
			stepTo(p, 11, 1)

			if got := p.regs[PPUSTATUS].Val&statusSpriteOverflow != 0; got != tt.overflow {
				t.Errorf("overflow = %v, want %v", got, tt.overflow)
			}
			want := tt.sprites
			if want > 8 {
				want = 8
			}
			if p.spriteCount != want {
				t.Errorf("spriteCount = %d, want %d", p.spriteCount, want)
			}
		})
	}
}

func TestSpriteInRange(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)
	p.Write8(0x2001, 0x10)

	writeSprite(p, 0, 20, 0, 0, 0)

	stepTo(p, 20, 1) // the sprite's own Y line, not yet visible
	if p.spriteCount != 0 {
		t.Errorf("spriteCount on line Y = %d, want 0", p.spriteCount)
	}

	stepTo(p, 21, 1)
	if p.spriteCount != 1 {
		t.Errorf("spriteCount on line Y+1 = %d, want 1", p.spriteCount)
	}

	stepTo(p, 28, 1)
	if p.spriteCount != 1 {
		t.Errorf("spriteCount on last line = %d, want 1", p.spriteCount)
	}

	stepTo(p, 29, 1)
	if p.spriteCount != 0 {
		t.Errorf("spriteCount past range = %d, want 0", p.spriteCount)
	}
}

func TestVBlankAndNMI(t *testing.T) {
	p, ii := newTestPpu(VerticalMirroring)

	p.Write8(0x2000, 0x80) // NMI on

	stepTo(p, 241, 2)
	if p.regs[PPUSTATUS].Val&statusVBlank == 0 {
		t.Error("vblank flag not set at scanline 241")
	}
	if ii.raised&common.IntNMI == 0 {
		t.Error("NMI not raised at vblank start")
	}

	// the flag clears at the pre-render line
	stepTo(p, -1, 2)
	if p.regs[PPUSTATUS].Val&statusVBlank != 0 {
		t.Error("vblank flag not cleared at pre-render line")
	}
}

func TestVBlankNMIDisabled(t *testing.T) {
	p, ii := newTestPpu(VerticalMirroring)

	stepTo(p, 241, 2)
	if ii.raised&common.IntNMI != 0 {
		t.Error("NMI raised with the control bit off")
	}
}

func TestStatusReadClearsVBlank(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	stepTo(p, 241, 2)
	first := p.Read8(0x2002)
	if first&statusVBlank == 0 {
		t.Error("vblank flag missing from the first status read")
	}
	second := p.Read8(0x2002)
	if second&statusVBlank != 0 {
		t.Error("vblank flag survived the status read")
	}
}

func TestFrameSwap(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	if p.frameBuffer.FrameIndex != 0 {
		t.Fatalf("FrameIndex = %d at power up, want 0", p.frameBuffer.FrameIndex)
	}

	for done := false; !done; {
		done = p.Step()
	}

	if p.frameBuffer.Frames != 1 {
		t.Errorf("Frames = %d after one frame, want 1", p.frameBuffer.Frames)
	}
	if p.frameBuffer.FrameIndex != 1 {
		t.Errorf("FrameIndex = %d after one frame, want 1", p.frameBuffer.FrameIndex)
	}

	for done := false; !done; {
		done = p.Step()
	}
	if p.frameBuffer.Frames != 2 {
		t.Errorf("Frames = %d after two frames, want 2", p.frameBuffer.Frames)
	}
	if p.frameBuffer.FrameIndex != 0 {
		t.Errorf("FrameIndex = %d after two frames, want 0", p.frameBuffer.FrameIndex)
	}
}

func TestOAMDataReadWrite(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	p.Write8(0x2003, 0x10)
	p.Write8(0x2004, 0xAA)
	p.Write8(0x2004, 0xBB)

	p.Write8(0x2003, 0x10)
	if got := p.Read8(0x2004); got != 0xAA {
		t.Errorf("OAM[0x10] = 0x%02x, want 0xaa", got)
	}
	if got := p.Read8(0x2004); got != 0xBB {
		t.Errorf("OAM[0x11] = 0x%02x, want 0xbb", got)
	}
}

func TestRegisterMirroring(t *testing.T) {
	p, _ := newTestPpu(VerticalMirroring)

	// 0x2006 repeats every 8 bytes up to 0x3FFF
	p.Write8(0x3FFE, 0x21)
	p.Write8(0x2FF6, 0x08)
	if p.vRAM.Val != 0x2108 {
		t.Errorf("vRAM via mirrored PPUADDR = 0x%04x, want 0x2108", p.vRAM.Val)
	}
}
