package ppu

import "github.com/goretro/famicore/nes/common"

// http://wiki.nesdev.com/w/index.php/PPU_OAM
type OamSprite struct {
	// Y position of top of sprite
	yPos uint8
	// Tile index number
	tIndex uint8
	// Sprite Attributes
	attributes uint8
	// X position of left side of sprite
	xPos uint8

	// OAM index, the composition tie break
	id uint8

	// pattern row for the current scanline
	dataL uint8
	dataH uint8
}

type Ppu struct {
	mem *Memory

	cycle    int
	scanLine int
	frames   int

	// cpu mapped registers
	regs [8]common.Register

	// internal registers: http://wiki.nesdev.com/w/index.php/PPU_scrolling
	vRAM    loopyRegister   // Current VRAM address (15 bits)
	tRAM    loopyRegister   // Temporary VRAM address (15 bits)
	xFine   common.Register // Fine X scroll (3 bits)
	wToggle common.Register // First or second write toggle (1 bit)

	vRAMBuffer uint8

	// primary OAM
	rOAM common.Ram
	// secondary OAM, the up-to-8 sprites picked for the scanline in hand.
	// During each visible scanline this list is first cleared, and then a
	// linear search of the entire primary OAM finds the sprites within Y
	// range, in OAM order.
	sOAM        [8]OamSprite
	spriteCount int

	palette nesPalette

	frameBuffer *common.Framebuffer
	interrupts  common.IiInterrupt
}

func (p *Ppu) Init(mem *Memory, interrupts common.IiInterrupt, frameBuffer *common.Framebuffer) {
	p.mem = mem
	p.interrupts = interrupts
	p.frameBuffer = frameBuffer

	p.Reset()
}

func (p *Ppu) Reset() {
	p.cycle = 0
	p.scanLine = -1
	p.frames = 0
	p.vRAMBuffer = 0
	p.spriteCount = 0

	p.rOAM.InitNfill(256, 0xFE)
	p.palette.init()
	p.initRegisters()
	p.clearSecOAM()
}

func (p *Ppu) Frames() int {
	return p.frames
}

func (p *Ppu) Memory() *Memory {
	return p.mem
}

// Loopy registers for the driver's benefit, mostly its test harness.
func (p *Ppu) VRAMAddr() uint16 {
	return p.vRAM.Val
}

// Step advances one dot and reports the completion of a frame.
//
// http://wiki.nesdev.com/w/images/d/d1/Ntsc_timing.png
func (p *Ppu) Step() bool {
	visibleLn := p.scanLine >= 0 && p.scanLine < 240
	preRenderLn := p.scanLine == -1
	renderOn := p.showBackground() || p.showSprites()

	if preRenderLn && p.cycle == 1 {
		// vblank, sprite 0 hit and overflow all clear here
		p.regs[PPUSTATUS].Clr(statusVBlank | statusSprite0Hit | statusSpriteOverflow)
	}

	if visibleLn && p.cycle == 0 && p.showSprites() {
		p.evalSprites()
		p.loadSprites()
	}

	if (visibleLn || preRenderLn) && renderOn {
		if visibleLn && p.cycle < 256 {
			p.renderDot()
		}

		if p.cycle < 256 || (p.cycle >= 321 && p.cycle <= 336) {
			p.vRAM.incX()
		}
		if p.cycle == 256 {
			p.vRAM.incY()
		}
		if p.cycle == 257 {
			p.vRAM.copyHori(p.tRAM)
		}
		if p.scanLine == 0 && p.cycle >= 280 && p.cycle <= 304 {
			p.vRAM.copyVert(p.tRAM)
		}
	}

	if p.scanLine == 240 && p.cycle == 0 {
		// the single handoff point to the display consumer
		p.frameBuffer.Swap()
	}

	if p.scanLine == 241 && p.cycle == 1 {
		p.startVBlank()
	}

	frameComplete := false
	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanLine++
		if p.scanLine > 260 {
			p.scanLine = -1
			p.frames++
			frameComplete = true
		}
	}
	return frameComplete
}

func (p *Ppu) startVBlank() {
	p.setSTATUSbits(statusVBlank)
	if p.getNMIVertical() == 1 {
		p.interrupts.Raise(common.IntNMI)
	}
}

// renderDot composes the background and sprite pixel for the current dot
// and writes it straight into the back buffer.
func (p *Ppu) renderDot() {
	x := p.cycle
	y := p.scanLine

	bgIndex := uint8(0)
	bgPalette := uint8(0)
	if p.showBackground() && (p.showBackgroundLeft() || x > 7) {
		tile := p.mem.Read8(0x2000 | (p.vRAM.Val & 0x0FFF))
		patternAddr := p.getBackgroundTable() | uint16(tile)<<4 | p.vRAM.getFineY()
		lo := p.mem.Read8(patternAddr)
		hi := p.mem.Read8(patternAddr + 8)

		//  NN 1111 YYY XXX
		//  || |||| ||| +++-- high 3 bits of coarse X (X/4)
		//  || |||| +++------ high 3 bits of coarse Y (Y/4)
		//  || ++++---------- attribute offset (960 bytes)
		//  ++--------------- nametable select
		attr := p.mem.Read8(0x23C0 | (p.vRAM.Val & 0x0C00) |
			((p.vRAM.Val >> 4) & 0x38) | ((p.vRAM.Val >> 2) & 0x07))

		// BR BL TR TL, shift to the quadrant's half nibble
		if p.vRAM.getCoarseY()&0x02 != 0 {
			attr >>= 4
		}
		if p.vRAM.getCoarseX()&0x02 != 0 {
			attr >>= 2
		}

		shift := uint(7 - (x+int(p.xFine.Val))%8)
		bgIndex = ((hi>>shift)&1)<<1 | (lo>>shift)&1
		bgPalette = attr & 0x3
	}

	fgIndex := uint8(0)
	fgPalette := uint8(0)
	fgPriority := false
	if p.showSprites() && (p.showSpritesLeft() || x > 7) {
		for i := 0; i < p.spriteCount; i++ {
			s := &p.sOAM[i]
			xi := x - int(s.xPos)
			if xi < 0 || xi > 7 {
				continue
			}

			shift := uint(7 - xi)
			px := ((s.dataH>>shift)&1)<<1 | (s.dataL>>shift)&1
			if px == 0 {
				continue
			}

			// the lowest OAM index wins on overlap
			fgIndex = px
			fgPalette = s.attributes & 0x3
			fgPriority = (s.attributes>>5)&1 == 0

			if s.id == 0 && bgIndex > 0 && x != 255 {
				p.setSTATUSbits(statusSprite0Hit)
			}
			break
		}
	}

	// what gets drawn based on transparency (index==0) and priority
	var colorAddr uint16
	switch {
	case bgIndex == 0 && fgIndex == 0:
		colorAddr = 0x3F00
	case bgIndex == 0 && fgIndex > 0:
		colorAddr = 0x3F00 + uint16((fgPalette+4)*4+fgIndex)
	case bgIndex > 0 && fgIndex == 0:
		colorAddr = 0x3F00 + uint16(bgPalette*4+bgIndex)
	default:
		if fgPriority {
			colorAddr = 0x3F00 + uint16((fgPalette+4)*4+fgIndex)
		} else {
			colorAddr = 0x3F00 + uint16(bgPalette*4+bgIndex)
		}
	}

	// the display library wants row 0 at the bottom
	row := common.FrameYHeight - 1 - y
	p.frameBuffer.Back()[row*common.FrameXWidth+x] = p.palette.colors[p.mem.Read8(colorAddr)&0x3F]
}

// evalSprites walks the primary OAM in index order picking the sprites in
// range of the scanline in hand. The 9th in range sprite sets the overflow
// bit and ends the scan.
func (p *Ppu) evalSprites() {
	p.clearSecOAM()
	p.spriteCount = 0

	_, height := p.getSpriteSize()
	for i := 0; i < 64; i++ {
		y := int(p.rOAM.Read8(uint16(i*4))) + 1
		if p.scanLine < y || p.scanLine >= y+int(height) {
			continue
		}

		if p.spriteCount == 8 {
			p.setSTATUSbits(statusSpriteOverflow)
			break
		}

		s := &p.sOAM[p.spriteCount]
		s.yPos = p.rOAM.Read8(uint16(i*4 + 0))
		s.tIndex = p.rOAM.Read8(uint16(i*4 + 1))
		s.attributes = p.rOAM.Read8(uint16(i*4 + 2))
		s.xPos = p.rOAM.Read8(uint16(i*4 + 3))
		s.id = uint8(i)
		p.spriteCount++
	}
}

// loadSprites fetches the pattern row each selected sprite shows on the
// scanline in hand, honouring the flip attributes up front.
func (p *Ppu) loadSprites() {
	_, height := p.getSpriteSize()
	for i := 0; i < p.spriteCount; i++ {
		s := &p.sOAM[i]

		row := p.scanLine - (int(s.yPos) + 1)
		if s.attributes&0x80 != 0 {
			// vertical flip
			row = int(height) - 1 - row
		}

		var addr uint16
		if height == 8 {
			addr = p.getSpritePattern() | uint16(s.tIndex)<<4 | uint16(row)
		} else {
			// 8x16 picks the table from the tile's bit 0
			tile := s.tIndex & 0xFE
			if row > 7 {
				tile++
				row -= 8
			}
			addr = uint16(s.tIndex&1)<<12 | uint16(tile)<<4 | uint16(row)
		}

		s.dataL = p.mem.Read8(addr)
		s.dataH = p.mem.Read8(addr + 8)

		if s.attributes&0x40 != 0 {
			// horizontal flip, reverse the row bits once here
			s.dataL = reverseByte(s.dataL)
			s.dataH = reverseByte(s.dataH)
		}
	}
}

func reverseByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func (p *Ppu) clearSecOAM() {
	for i := range p.sOAM {
		// set back to defaults
		p.sOAM[i] = OamSprite{
			yPos:       0xFF,
			tIndex:     0xFF,
			attributes: 0xFF,
			xPos:       0xFF,
			id:         64,
		}
	}
}

// cpu side of the registers, common.BusInt. The DMA engine comes in
// through here as well, a page of writes to OAMDATA.

func (p *Ppu) Read8(addr uint16) uint8 {
	if addr < 0x4000 {
		// incomplete decoding means 0x2000-0x2007 are mirrored every 8 bytes
		addr = 0x2000 + addr%8
	}

	switch addr {
	// PPU Status (PPUSTATUS) - RDONLY
	case 0x2002:
		return p.regs[PPUSTATUS].Read()
	// PPU OAM Data (OAMDATA)
	case 0x2004:
		return p.regs[OAMDATA].Read()
	// PPU Data (PPUDATA)
	case 0x2007:
		return p.regs[PPUDATA].Read()
	}

	return 0
}

func (p *Ppu) Write8(addr uint16, val uint8) {
	if addr < 0x4000 {
		// incomplete decoding means 0x2000-0x2007 are mirrored every 8 bytes
		addr = 0x2000 + addr%8
	}

	p.setLastRegWrite(val)

	switch addr {
	// PPU Control (PPUCTRL) - WRONLY
	case 0x2000:
		p.regs[PPUCTRL].Write(val)
	// PPU Mask (PPUMASK) - WRONLY
	case 0x2001:
		p.regs[PPUMASK].Write(val)
	// PPU OAM Address (OAMADDR) - WRONLY
	case 0x2003:
		p.regs[OAMADDR].Write(val)
	// PPU OAM Data (OAMDATA)
	case 0x2004:
		p.regs[OAMDATA].Write(val)
	// PPU Scrolling (PPUSCROLL) - WRONLY
	case 0x2005:
		p.regs[PPUSCROLL].Write(val)
	// PPU Address (PPUADDR) - WRONLY
	case 0x2006:
		p.regs[PPUADDR].Write(val)
	// PPU Data (PPUDATA)
	case 0x2007:
		p.regs[PPUDATA].Write(val)
	}
}
