package ppu

import "github.com/goretro/famicore/nes/common"

type Mirroring uint8

// NameTable mirroring
const (
	HorizontalMirroring Mirroring = iota
	VerticalMirroring
	FourScreenMirroring
)

// Memory is the PPU side address space: pattern tables come from the
// cartridge, nametables from the internal VRAM behind the mirroring
// arrangement, and the palette from its own 32 bytes.
//
// PPU Mapping Table
// Address range 	Size 	Device
// $0000-$0FFF 		$1000 	Pattern table 0
// $1000-$1FFF 		$1000 	Pattern table 1
// $2000-$23FF 		$0400 	Nametable 0
// $2400-$27FF 		$0400 	Nametable 1
// $2800-$2BFF 		$0400 	Nametable 2
// $2C00-$2FFF 		$0400 	Nametable 3
// $3000-$3EFF 		$0F00 	Mirrors of $2000-$2EFF
// $3F00-$3F1F 		$0020 	Palette RAM indexes
// $3F20-$3FFF 		$00E0 	Mirrors of $3F00-$3F1F
type Memory struct {
	patterns common.BusInt

	vRam      common.Ram
	palette   [32]uint8
	mirroring Mirroring
}

func (m *Memory) Init(patterns common.BusInt, mirroring Mirroring) {
	m.patterns = patterns
	m.mirroring = mirroring

	size := 0x800
	if mirroring == FourScreenMirroring {
		// the cartridge supplies the extra CIRAM
		size = 0x1000
	}
	m.vRam.Init(size)
}

func (m *Memory) SetMirroring(mirroring Mirroring) {
	m.mirroring = mirroring
}

// nameTableAddr folds a $2000-$3EFF address onto the 2KB (or 4KB) VRAM.
func (m *Memory) nameTableAddr(addr uint16) uint16 {
	addr &= 0x0FFF
	switch m.mirroring {
	case HorizontalMirroring:
		// $2000 equals $2400 and $2800 equals $2C00
		table := (addr / 0x400) >> 1
		return table*0x400 + addr%0x400
	case VerticalMirroring:
		// $2000 equals $2800 and $2400 equals $2C00
		return addr & 0x7FF
	default:
		return addr
	}
}

// paletteAddr folds the mirrors and the four background aliases,
// $3F10/$3F14/$3F18/$3F1C map onto $3F00/$3F04/$3F08/$3F0C.
func (m *Memory) paletteAddr(addr uint16) uint16 {
	addr %= 32
	if addr >= 16 && addr%4 == 0 {
		addr -= 16
	}
	return addr
}

// BusInt
func (m *Memory) Read8(addr uint16) uint8 {
	addr %= 0x4000
	switch {
	case addr < 0x2000:
		return m.patterns.Read8(addr)
	case addr < 0x3F00:
		return m.vRam.Read8(m.nameTableAddr(addr))
	default:
		// the palette stores 6 bit colour indexes
		return m.palette[m.paletteAddr(addr)] & 0x3F
	}
}

func (m *Memory) Write8(addr uint16, val uint8) {
	addr %= 0x4000
	switch {
	case addr < 0x2000:
		m.patterns.Write8(addr, val)
	case addr < 0x3F00:
		m.vRam.Write8(m.nameTableAddr(addr), val)
	default:
		m.palette[m.paletteAddr(addr)] = val
	}
}
