package famicore

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goretro/famicore/nes/common"
	"github.com/goretro/famicore/nes/ppu"
)

const mapperNROM = 0

var cartEndianness = binary.LittleEndian

// Cartridge decodes an iNES file into its roms. Only the flat NROM board
// is supported, so the cartridge itself answers the bus: CHR below 0x2000
// on the PPU side, PRG RAM and PRG ROM on the CPU side.
type Cartridge struct {
	prgRom *common.Rom
	prgRam *common.Ram
	chr    *common.Rom

	config iNESConfig
	path   string
}

// defaultInit backs the test harness, a writable rom soft loaded on demand.
func (c *Cartridge) defaultInit() error {
	c.prgRom.Init(0x8000, true)
	c.prgRam.Init(0x2000)
	c.chr.Init(0x2000, true)
	c.config.mirror = ppu.HorizontalMirroring
	return nil
}

func (c *Cartridge) init(cartPath string) error {
	c.path = cartPath

	c.prgRom = new(common.Rom)
	c.prgRam = new(common.Ram)
	c.chr = new(common.Rom)

	if c.path == "" {
		return c.defaultInit()
	}

	file, err := os.Open(c.path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("error closing %q: %v", c.path, err)
		}
	}()

	header := iNESHeader{}
	if err := binary.Read(file, cartEndianness, &header); err != nil {
		return err
	}

	if c.config, err = header.config(); err != nil {
		return err
	}

	if c.config.mapper != mapperNROM {
		return fmt.Errorf("mapper %d is not supported", c.config.mapper)
	}

	if c.config.trainer {
		trainer := make([]byte, 512)
		if _, err := io.ReadFull(file, trainer); err != nil {
			return err
		}
	}

	c.prgRom.Init(c.config.prgRomSize, false)
	if _, err := c.prgRom.LoadFromFile(file); err != nil {
		return err
	}

	c.prgRam.Init(c.config.prgRamSize)

	if c.config.chrRomSize == 0 {
		// the board uses CHR RAM
		c.chr.Init(0x2000, true)
		return nil
	}
	c.chr.Init(c.config.chrRomSize, false)
	if _, err := c.chr.LoadFromFile(file); err != nil {
		return err
	}
	return nil
}

func (c *Cartridge) Mirroring() ppu.Mirroring {
	return c.config.mirror
}

// WriteRom16 lets the test harness patch the vectors.
func (c *Cartridge) WriteRom16(addr uint16, val uint16) {
	c.prgRom.Write16(addr-0x8000, val)
}

// common.BusInt
func (c *Cartridge) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return c.chr.Read8(addr)
	case addr >= 0x8000:
		// a 16KB PRG ROM mirrors into both banks
		return c.prgRom.Read8(uint16(int(addr-0x8000) % c.prgRom.Size()))
	case addr >= 0x6000:
		return c.prgRam.Read8(addr - 0x6000)
	}
	return 0
}

func (c *Cartridge) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		c.chr.Write8(addr, val)
	case addr >= 0x8000:
		// NROM has no mapper registers
		log.Printf("cartridge: dropping write to rom address 0x%04x", addr)
	case addr >= 0x6000:
		c.prgRam.Write8(addr-0x6000, val)
	}
}
