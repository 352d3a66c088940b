package famicore

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/goretro/famicore/nes/common"
	"github.com/goretro/famicore/nes/cpu"
	"github.com/goretro/famicore/nes/ppu"
	"github.com/goretro/famicore/nes/speakers"
	"github.com/goretro/famicore/nes/ui"
)

const NesBaseFrequency = 1789773 // NTSC
//const NesBaseFrequency = 1662607 // PAL

type nes struct {
	bus common.Bus

	cpu    cpu.Cpu
	ram    common.Ram
	cart   Cartridge
	ppuMem ppu.Memory
	ppu    ppu.Ppu
	dma    Dma
	apu    Apu
	ctrl   Controllers

	screen ui.Screen

	halted bool

	// Options
	verbose  bool
	cartPath string
	freeRun  bool
	audioLib speakers.AudioLib
}

// NewNES builds a console from the given options, eg:
// 	nes := famicore.NewNES(
//		famicore.CartPath("rom.nes"),
//		famicore.AudioLibrary("beep"),
//	)
func NewNES(options ...Option) *nes {
	nes := nes{audioLib: speakers.Nil}

	if err := nes.setOptions(options...); err != nil {
		log.Panicf("failed to configure the console: %v", err)
	}
	if err := nes.init(); err != nil {
		log.Panicf("failed to initialise the console: %v", err)
	}
	return &nes
}

func (n *nes) init() error {
	n.bus.Init()

	if err := n.cart.init(n.cartPath); err != nil {
		return err
	}

	n.ram.Init(0x800)
	n.ctrl.Init()
	n.screen.Init(n)

	n.cpu.Init(n.bus.GetBusInt(common.MapCPUId))
	n.ppuMem.Init(n.bus.GetBusInt(common.MapPPUId), n.cart.Mirroring())
	n.ppu.Init(&n.ppuMem, &n.cpu, &n.screen.Framebuffer)
	n.dma.Init(n.bus.GetBusInt(common.MapDMAId))
	n.apu.Init(n.bus.GetBusInt(common.MapAPUId), &n.cpu, n.audioLib)

	n.bus.Connect(common.MapCPUId, &cpuMapper{n})
	n.bus.Connect(common.MapPPUId, &ppuMapper{n})
	n.bus.Connect(common.MapDMAId, &dmaMapper{n})
	n.bus.Connect(common.MapAPUId, &apuMapper{n})

	n.cpu.Reset()
	return nil
}

// Reset puts every device back to its power up state. The ui layer calls
// this on ctrl-r.
func (n *nes) Reset() {
	n.ppu.Reset()
	n.dma.Reset()
	n.cpu.Reset()
	n.apu.Reset()
	n.ctrl.Reset()
	n.halted = false
}

// Poke forwards a button state change to the controllers, ui.Console.
func (n *nes) Poke(controllerId uint8, button uint8, pressed bool) {
	n.ctrl.Poke(controllerId, button, pressed)
}

func (n *nes) Frames() int {
	return n.ppu.Frames()
}

// Run drives the console until the cpu halts, throttled to the NTSC
// clock unless free running.
func (n *nes) Run() {
	n.screen.Run()
	n.apu.Play()

	if n.freeRun {
		for !n.halted {
			n.StepSeconds(time.Second.Seconds())
		}
		return
	}

	tmr := time.Tick(time.Second / 240)
	for !n.halted {
		n.StepSeconds((time.Second / 240).Seconds())
		<-tmr
	}
}

// StepSeconds runs the console for the given stretch of emulated time.
func (n *nes) StepSeconds(seconds float64) {
	runCycles := int(float64(NesBaseFrequency) * seconds)

	for runCycles > 0 && !n.halted {
		runCycles -= n.step()
	}
}

// step advances the console by one cpu instruction, or by a single
// stalled cycle while a dma transfer owns the bus. The ppu gets three
// dots per cpu cycle.
func (n *nes) step() int {
	ticks := 1
	if !n.dma.Active() {
		var err error
		ticks, err = n.cpu.Step()
		if err != nil {
			if !n.freeRun {
				log.Printf("cpu halted: %v", err)
				n.halted = true
				return 1
			}
			ticks = n.cpu.Skip()
		}
		if n.verbose {
			log.Printf("%v", n.cpu.Regs())
		}
	}

	for i := 0; i < 3*ticks; i++ {
		n.ppu.Step()
	}
	n.dma.Ticks(ticks)
	n.apu.Ticks(ticks)

	return ticks
}

// Test steps the console until the cpu is about to execute a BRK, the
// conventional end marker of the soft loaded test programs.
func (n *nes) Test() {
	for !n.halted {
		if !n.dma.Active() && n.cpu.Read8(n.cpu.Regs().Spc.Pc.Read()) == 0x00 {
			return
		}
		n.step()
	}
}

// loadEasyCode soft loads hex dumps from https://skilldrick.github.io/easy6502/, eg:
// `0600: a9 01 85 02 a9 cc 8d 00 01 a9 01 a a1 00 00 00
//  0610: a9 05 a 8e 00 02 a9 05 8d 01 02 a9 08 8d 02 02`
func (n *nes) loadEasyCode(code string) {
	for i, line := range strings.Split(strings.TrimSuffix(code, "\n"), "\n") {
		addr := 0
		var bt [16]int
		ns, err := fmt.Sscanf(line, "%X: %X %X %X %X %X %X %X %X %X %X %X %X %X %X %X %X ",
			&addr, &bt[0], &bt[1], &bt[2], &bt[3], &bt[4], &bt[5], &bt[6], &bt[7],
			&bt[8], &bt[9], &bt[10], &bt[11], &bt[12], &bt[13], &bt[14], &bt[15])
		if err != nil && err != io.EOF {
			log.Printf("error scanning easyCode line, ns: %X, error: %v", ns, err)
		}

		if i == 0 {
			// assumes the first line is where the program starts
			n.cart.WriteRom16(0xFFFC, uint16(addr))
		}

		for i, b := range bt {
			n.cpu.Write8(uint16(addr+i), uint8(b))
		}
	}
}
