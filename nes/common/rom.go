package common

import (
	"io"
	"os"
)

// Rom is a flat byte store, BusInt compatible. A writable rom backs the
// test harness which soft loads code instead of a cartridge file.
type Rom struct {
	rom []byte

	writable bool
}

func (r *Rom) Init(size int, writable bool) {
	r.rom = make([]byte, size)
	r.writable = writable
}

func (r *Rom) Size() int {
	return len(r.rom)
}

func (r *Rom) LoadFrom(reader io.Reader) (int, error) {
	return io.ReadFull(reader, r.rom)
}

func (r *Rom) LoadFromFile(file *os.File) (int, error) {
	return r.LoadFrom(file)
}

func (r *Rom) Read8(addr uint16) uint8 {
	return r.rom[addr]
}

// little endian
func (r *Rom) Read16(addr uint16) uint16 {
	return uint16(r.Read8(addr)) | uint16(r.Read8(addr+1))<<8
}

func (r *Rom) Write8(addr uint16, val uint8) {
	if !r.writable {
		panic("rom is not writable")
	}
	r.rom[addr] = val
}

func (r *Rom) Write16(addr uint16, val uint16) {
	r.Write8(addr, uint8(val&0xFF))
	r.Write8(addr+1, uint8((val&0xFF00)>>8))
}
