package common

import "testing"

func newTestBus() (*Bus, *Ram) {
	ram := &Ram{}
	ram.Init(0x800)

	bus := &Bus{}
	bus.Init()
	bus.Connect(MapCPUId, ram)
	return bus, ram
}

func TestBusMapWide(t *testing.T) {
	bus, ram := newTestBus()
	bi := bus.GetBusInt(MapCPUId)

	bi.Write16(0x0100, 0xABCD)
	if got := bi.Read16(0x0100); got != 0xABCD {
		t.Errorf("Read16 = 0x%04x, want 0xabcd", got)
	}

	// little endian byte order on the underlying store
	if lo, hi := ram.Read8(0x0100), ram.Read8(0x0101); lo != 0xCD || hi != 0xAB {
		t.Errorf("bytes = 0x%02x 0x%02x, want 0xcd 0xab", lo, hi)
	}

	// no page wrapping on the high byte
	bi.Write16(0x01FF, 0x1234)
	if got := bi.Read16(0x01FF); got != 0x1234 {
		t.Errorf("Read16 across the page = 0x%04x, want 0x1234", got)
	}
}

func TestBusMapSlots(t *testing.T) {
	bus, ram := newTestBus()

	other := &Ram{}
	other.Init(0x800)
	bus.Connect(MapPPUId, other)

	bus.GetBusInt(MapCPUId).Write8(0x10, 0xAA)
	bus.GetBusInt(MapPPUId).Write8(0x10, 0xBB)

	if got := ram.Read8(0x10); got != 0xAA {
		t.Errorf("cpu slot byte = 0x%02x, want 0xaa", got)
	}
	if got := other.Read8(0x10); got != 0xBB {
		t.Errorf("ppu slot byte = 0x%02x, want 0xbb", got)
	}
}
