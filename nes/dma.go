package famicore

import "github.com/goretro/famicore/nes/common"

// Dma answers writes to the OAMDMA register at 0x4014 by copying a 256
// byte page from cpu memory into the ppu OAMDATA port. The cpu is stalled
// for the duration, one byte moves every two cycles.
type Dma struct {
	common.BusInt

	clock uint

	// bytes left in the transfer in hand
	nBytes uint16

	byteRd  uint8
	cpuAddr uint16
	ppuAddr uint16

	delay bool
}

func (d *Dma) Init(busInt common.BusInt) {
	d.BusInt = busInt
	d.nBytes = 0
}

func (d *Dma) Reset() {
	d.Init(d.BusInt)
}

func (d *Dma) Active() bool {
	return d.nBytes > 0
}

func (d *Dma) Ticks(nTicks int) {
	for i := 0; i < nTicks; i++ {
		d.tick()
	}
}

func (d *Dma) tick() {
	d.clock++
	d.exec()
}

func (d *Dma) exec() {
	if d.nBytes == 0 {
		d.delay = true
		return
	}

	// the transfer starts on the next even clock cycle
	if d.delay {
		if d.clock%2 == 1 {
			d.delay = false
		}
		return
	}

	if d.clock%2 == 0 {
		d.byteRd = d.BusInt.Read8(d.cpuAddr)
		d.cpuAddr++
	} else {
		d.BusInt.Write8(d.ppuAddr, d.byteRd)
		d.nBytes--
	}
}

func (d *Dma) setupTransfer(cpuAddr uint16) {
	d.cpuAddr = cpuAddr
	d.ppuAddr = 0x2004 // OAMDATA
	d.nBytes = 256
}

func (d *Dma) Read8(addr uint16) uint8 {
	return 0
}

func (d *Dma) Write8(addr uint16, val uint8) {
	switch addr {
	case 0x4014:
		d.setupTransfer(uint16(val) << 8)
	}
}
