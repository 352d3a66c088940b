package famicore

import (
	"fmt"

	"github.com/goretro/famicore/nes/ppu"
)

// "NES" + EOF
const nesMagicConstant = 0x1A53454E

type iNESFormat int

const (
	iNESInvalid iNESFormat = iota
	iNES0                  // Archaic iNES format
	iNES1
	iNES2
)

// https://wiki.nesdev.com/w/index.php/INES
// The first 16 bytes of the file:
//  0-3: "NES" followed by MS-DOS EOF
//  4:   PRG ROM size in 16KB units
//  5:   CHR ROM size in 8KB units (0 means the board uses CHR RAM)
//  6:   Flags: mapper low nibble, mirroring, battery, trainer
//  7:   Flags: mapper high nibble, NES 2.0 signature
//  8:   PRG RAM size in 8KB units
type iNESHeader struct {
	Flags [16]byte
}

type iNESConfig struct {
	mapper  uint8
	mirror  ppu.Mirroring
	battery bool
	trainer bool

	prgRomSize int
	chrRomSize int
	prgRamSize int
}

func (h *iNESHeader) magicNumber() int32 {
	return int32(h.Flags[3])<<24 |
		int32(h.Flags[2])<<16 |
		int32(h.Flags[1])<<8 |
		int32(h.Flags[0])
}

func (h *iNESHeader) version() (iNESFormat, error) {
	if h.magicNumber() != nesMagicConstant {
		return iNESInvalid, fmt.Errorf("not an iNES file, wrong magic number: 0x%08x", h.magicNumber())
	}

	if (h.Flags[7] & 0x0C) == 0x08 {
		return iNES2, nil
	}
	if (h.Flags[7] & 0x0C) == 0 {
		for i := 12; i < 16; i++ {
			if h.Flags[i] != 0 {
				return iNES0, nil
			}
		}
		return iNES1, nil
	}
	return iNES0, nil
}

func (h *iNESHeader) config() (iNESConfig, error) {
	version, err := h.version()
	if err != nil {
		return iNESConfig{}, err
	}

	flags6 := h.Flags[6]

	cfg := iNESConfig{
		mapper:     flags6 >> 4,
		battery:    (flags6>>1)&1 == 1,
		trainer:    flags6&4 == 4,
		prgRomSize: int(h.Flags[4]) * 16384,
		chrRomSize: int(h.Flags[5]) * 8192,
		prgRamSize: 8192,
	}

	switch {
	case flags6&8 != 0:
		cfg.mirror = ppu.FourScreenMirroring
	case flags6&1 != 0:
		cfg.mirror = ppu.VerticalMirroring
	default:
		cfg.mirror = ppu.HorizontalMirroring
	}

	if version != iNES0 {
		cfg.mapper |= h.Flags[7] & 0xF0

		// value 0 infers 1 (8KB) for compatibility, see the PRG RAM circuit
		if ramUnits := int(h.Flags[8]); ramUnits > 0 {
			cfg.prgRamSize = ramUnits * 8192
		}
	}

	return cfg, nil
}
