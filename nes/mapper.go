package famicore

import (
	"log"
)

// CPU Mapping Table
// Address range 	Size 	Device
// $0000-$07FF 		$0800 	2KB internal RAM
// $0800-$1FFF 		$1800 	Mirrors of $0000-$07FF
// $2000-$2007 		$0008 	PPU registers
// $2008-$3FFF 		$1FF8 	Mirrors of $2000-2007 (repeats every 8 bytes)
// $4000-$4017 		$0018 	APU and I/O registers
// $4018-$401F 		$0008 	APU and I/O functionality that is normally disabled
// $4020-$FFFF 		$BFE0 	Cartridge space: PRG ROM, PRG RAM, mapper registers
type cpuMapper struct {
	*nes
}

func (m *cpuMapper) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.nes.ram.Read8(addr % 2048)

	case addr < 0x4000:
		return m.nes.ppu.Read8(addr)

	case addr == 0x4014:
		return m.nes.dma.Read8(addr)
	case addr == 0x4015:
		return m.nes.apu.Read8(addr)
	case addr == 0x4016, addr == 0x4017:
		return m.nes.ctrl.Read8(addr)
	case addr < 0x4020:
		// CPU test mode registers, normally disabled
		return 0

	case addr < 0x6000:
		log.Printf("read from unmapped address 0x%04x", addr)
		return 0
	default:
		return m.nes.cart.Read8(addr)
	}
}

func (m *cpuMapper) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		m.nes.ram.Write8(addr%2048, val)

	case addr < 0x4000:
		m.nes.ppu.Write8(addr, val)

	case addr == 0x4014:
		m.nes.dma.Write8(addr, val)
	case addr == 0x4016:
		m.nes.ctrl.Write8(addr, val)
	case addr < 0x4014, addr == 0x4015, addr == 0x4017:
		m.nes.apu.Write8(addr, val)
	case addr < 0x4020:
		// CPU test mode registers, normally disabled

	case addr < 0x6000:
		log.Printf("write to unmapped address 0x%04x", addr)
	default:
		m.nes.cart.Write8(addr, val)
	}
}

// PPU Mapping Table
// Address range 	Size 	Device
// $0000-$1FFF 		$2000 	Pattern tables, mapped by the cartridge to CHR
// $2000-$3EFF 		$1F00 	Nametables, held by the ppu memory with the
//           		      	mirroring arrangement the cartridge selects
// $3F00-$3FFF 		$0100 	Palette RAM indexes, not configurable
//
// Only the pattern space leaves the ppu package, this mapper serves it
// from the cartridge CHR.
type ppuMapper struct {
	*nes
}

func (m *ppuMapper) Read8(addr uint16) uint8 {
	if addr < 0x2000 {
		return m.nes.cart.Read8(addr)
	}
	return 0
}

func (m *ppuMapper) Write8(addr uint16, val uint8) {
	if addr < 0x2000 {
		m.nes.cart.Write8(addr, val)
	}
}

// DMA reads from cpu memory and copies into the ppu OAMDATA register.
type dmaMapper struct {
	*nes
}

func (m *dmaMapper) Read8(addr uint16) uint8 {
	return m.nes.cpu.Read8(addr)
}

func (m *dmaMapper) Write8(addr uint16, val uint8) {
	m.nes.ppu.Write8(addr, val)
}

// the APU DMC channel fetches its samples through the cpu map
type apuMapper struct {
	*nes
}

func (m *apuMapper) Read8(addr uint16) uint8 {
	return m.nes.cpu.Read8(addr)
}

func (m *apuMapper) Write8(uint16, uint8) {}
