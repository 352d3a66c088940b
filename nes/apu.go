package famicore

import (
	"log"

	"github.com/goretro/famicore/nes/common"
	"github.com/goretro/famicore/nes/speakers"
)

const nesApuFrameCycles = 7457

// Apu carries the frame counter, the channel enable plumbing and the
// speaker sampling pipeline. The channel synthesis itself is not modelled
// yet, the mixer feeds silence at the real sample rate so the audio
// backend runs at speed.
type Apu struct {
	common.BusInt
	interrupts common.IiInterrupt

	// write sink for the channel registers 0x4000-0x4013
	regs [0x14]uint8

	// ---D NT21 enable DMC (D), noise (N), triangle (T), pulse (2/1)
	channels uint8
	status   common.Register

	clock   uint
	enabled bool

	// the frame counter is clocked every 3728.5 APU clocks,
	// in other words every 7457 CPU clocks
	frameCounter uint
	frameStep    uint
	frameMode    uint
	frameIrqEn   bool

	audioLib speakers.AudioLib
	speaker  speakers.AudioSpeaker

	sampleTicks       float64
	sampleTargetTicks float64
}

func (a *Apu) Init(busInt common.BusInt, interrupts common.IiInterrupt, audioLib speakers.AudioLib) {
	a.BusInt = busInt
	a.interrupts = interrupts
	a.audioLib = audioLib
	a.enabled = true
	a.speaker = speakers.NewSpeaker(a.audioLib)

	a.Reset()
}

func (a *Apu) Reset() {
	if !a.enabled {
		return
	}

	a.speaker.Reset()
	a.sampleTicks = float64(NesBaseFrequency) / float64(a.speaker.SampleRate())
	a.sampleTargetTicks = a.sampleTicks

	a.clock = 0
	a.channels = 0
	a.frameCounter = 0
	a.frameStep = 0
	a.frameMode = 0
	a.frameIrqEn = true

	a.regs = [0x14]uint8{}
	a.status.Initx("status", 0, a.writeStatusReg, a.readStatusReg)
}

func (a *Apu) Play() {
	a.speaker.Play()
}

func (a *Apu) Stop() {
	a.Reset()
	a.enabled = false
	a.speaker.Stop()
}

func (a *Apu) AudioBufferReady() bool {
	return a.speaker.BufferReady()
}

func (a *Apu) writeStatusReg() {
	a.channels = a.status.Val & 0x1F
}

func (a *Apu) readStatusReg() uint8 {
	// length counters and the frame interrupt flag are not modelled, the
	// read only reports the channel enables back
	return a.channels
}

func (a *Apu) Ticks(nTicks int) {
	if !a.enabled {
		return
	}

	for i := 0; i < nTicks; i++ {
		a.tick()
	}
}

func (a *Apu) tick() {
	a.clock++
	a.frameTick()
	a.sample()
}

func (a *Apu) sample() {
	if a.clock >= uint(a.sampleTargetTicks) {
		a.sampleTargetTicks += a.sampleTicks

		// silence until the channels produce
		a.speaker.Sample(0.0)
	}
}

// mode 0:    mode 1:       function
// ---------  -----------  -----------------------------
//  - - - f    - - - - -    IRQ (if bit 6 is clear)
//  - l - l    - l - - l    Length counter and sweep
//  e e e e    e e e - e    Envelope and linear counter
func (a *Apu) frameTick() {
	a.frameCounter++

	if a.frameCounter == nesApuFrameCycles {
		a.frameCounter = 0

		if a.frameMode == 0 && a.frameStep == 3 {
			a.raiseIrq()
		}

		a.frameStep = (a.frameStep + 1) % (a.frameMode + 4)
	}
}

func (a *Apu) raiseIrq() {
	if a.frameIrqEn {
		a.interrupts.Raise(common.IntIRQ)
	}
}

// common.BusInt
func (a *Apu) Read8(addr uint16) uint8 {
	switch {
	case addr == 0x4015:
		return a.status.Read()
	default:
		log.Printf("apu: read from unhandled address 0x%04x", addr)
	}
	return 0
}

func (a *Apu) Write8(addr uint16, val uint8) {
	switch {
	case addr >= 0x4000 && addr <= 0x4013:
		a.regs[addr-0x4000] = val
	case addr == 0x4015:
		a.status.Write(val)
	case addr == 0x4017:
		if val&0x80 != 0 {
			a.frameMode = 1
		} else {
			a.frameMode = 0
		}
		a.frameIrqEn = (val & 0x40) == 0
		a.frameStep = 0
		a.frameCounter = 0
	}
}
