package famicore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goretro/famicore/nes/ppu"
)

func Test_newNes(t *testing.T) {
	nes := NewNES(Verbose(false))
	if nes == nil {
		t.Errorf("failed to get nes!")
	}
}

type cpuTest struct {
	prefix  func()
	name    string
	code    string
	result  string
	postfix func()
}

func cmpMem(nes *nes, t *testing.T, checkAddr uint16, expectedVal uint8) {
	checkVal := nes.ram.Read8(checkAddr)
	if checkVal != expectedVal {
		t.Errorf("Output of test %s was incorrect!\nGot:\t\t[0x%04x]=%02x\nExpected:\t[0x%04x]=%02x",
			t.Name(), checkAddr, checkVal, checkAddr, expectedVal)
	}
}

func testCpuTest(nes *nes, t *testing.T, cpuTest cpuTest) {
	nes.loadEasyCode(cpuTest.code)
	nes.Reset()

	if cpuTest.prefix != nil {
		cpuTest.prefix()
	}

	nes.Test()

	if strings.TrimSuffix(nes.cpu.Regs().String(), "\n") != cpuTest.result {
		t.Fatalf("[%s][%s] test failed!\nGot:\t\t%s\nExpected:\t%s",
			t.Name(), cpuTest.name, nes.cpu.Regs().String(), cpuTest.result)
	}

	if cpuTest.postfix != nil {
		cpuTest.postfix()
	}
}

func Test_newNes_RunOpTest(t *testing.T) {
	nes := NewNES(Verbose(false))
	if nes == nil {
		t.Fatalf("failed to get nes!")
	}

	var ldaIMM = cpuTest{name: "ldaIMM", code: "0600: a9 aa 00",
		result: "Pc: 0x0602, Sp: 0xfd, Ps: 0xb4 (N:1 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0xaa, X: 0x00, Y: 0x00"}
	testCpuTest(nes, t, ldaIMM)

	var ldaZPG = cpuTest{name: "ldaZPG", code: "0600: a5 bb 00",
		result: "Pc: 0x0602, Sp: 0xfd, Ps: 0x34 (N:0 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0x77, X: 0x00, Y: 0x00",
		prefix: func() { nes.ram.Write8(0xbb, 0x77) }}
	testCpuTest(nes, t, ldaZPG)

	var ldaABS = cpuTest{name: "ldaABS", code: "0600: ad 88 18 00",
		result: "Pc: 0x0603, Sp: 0xfd, Ps: 0xb4 (N:1 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0x88, X: 0x00, Y: 0x00",
		prefix: func() { nes.ram.Write8(0x1888%0x800, 0x88) }}
	testCpuTest(nes, t, ldaABS)

	var ldaABX = cpuTest{name: "ldaABX", code: "0600: bd fe ff 00",
		result: "Pc: 0x0603, Sp: 0xfd, Ps: 0xb4 (N:1 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0x99, X: 0x0d, Y: 0x00",
		prefix: func() {
			nes.ram.Write8(0x0B, 0x99)
			nes.cpu.Regs().Gp.Ix.X.Write(0xD)
		}}
	testCpuTest(nes, t, ldaABX)

	var ldaIIX = cpuTest{name: "ldaIIX", code: "0600: a1 00 00",
		result: "Pc: 0x0602, Sp: 0xfd, Ps: 0xb4 (N:1 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0xcc, X: 0x01, Y: 0x00",
		prefix: func() {
			nes.ram.Write8(0x2, 0x1)
			nes.ram.Write8(0x100, 0xCC)
			nes.cpu.Regs().Gp.Ix.X.Write(1)
		}}
	testCpuTest(nes, t, ldaIIX)

	var staZPX = cpuTest{name: "staZPX", code: "0600: 95 ff 00",
		result: "Pc: 0x0602, Sp: 0xfd, Ps: 0x34 (N:0 V:0 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0x7e, X: 0x0b, Y: 0x00",
		prefix: func() {
			nes.cpu.Regs().Gp.Ac.Write(0x7E)
			nes.cpu.Regs().Gp.Ix.X.Write(0xB)
		}, postfix: func() {
			cmpMem(nes, t, 0xA, 0x7E)
		}}
	testCpuTest(nes, t, staZPX)

	var adcIMM = cpuTest{name: "adcIMM", code: "0600: 38 a9 7f 69 01 00",
		result: "Pc: 0x0605, Sp: 0xfd, Ps: 0xf4 (N:1 V:1 E:1 B:1 D:0 I:1 Z:0 C:0), Ac: 0x81, X: 0x00, Y: 0x00"}
	testCpuTest(nes, t, adcIMM)
}

// a write to 0x4014 copies a full page into the sprite memory behind the
// cpu's back, one byte every two cycles
func Test_OamDma(t *testing.T) {
	nes := NewNES(Verbose(false))

	for i := 0; i < 256; i++ {
		nes.ram.Write8(uint16(0x0200+i), uint8(i)^0x5A)
	}

	// LDA #$02, STA $4014
	nes.loadEasyCode("0600: a9 02 8d 14 40 00")
	nes.Reset()
	nes.Test()

	if nes.dma.Active() {
		t.Fatal("dma still active after the program finished")
	}

	nes.cpu.Write8(0x2003, 0x00)
	for i := 0; i < 256; i++ {
		if got, want := nes.cpu.Read8(0x2004), uint8(i)^0x5A; got != want {
			t.Fatalf("OAM[%d] = 0x%02x, want 0x%02x", i, got, want)
		}
	}
}

func Test_DecodeHalt(t *testing.T) {
	nes := NewNES(Verbose(false))

	// 0x02 has no decoding, the console halts on it
	nes.loadEasyCode("0600: 02 00")
	nes.Reset()
	nes.Test()

	if !nes.halted {
		t.Error("console did not halt on an undecodable opcode")
	}

	// free running consoles step over it instead
	nes = NewNES(Verbose(false), FreeRun(true))
	nes.loadEasyCode("0600: 02 00")
	nes.Reset()
	nes.Test()

	if nes.halted {
		t.Error("free running console halted on an undecodable opcode")
	}
	if pc := nes.cpu.Regs().Spc.Pc.Read(); pc != 0x0601 {
		t.Errorf("Pc = 0x%04x, want 0x0601", pc)
	}
}

// enabling NMI on PPUCTRL gets the handler run once per vertical blank
func Test_VBlankNmi(t *testing.T) {
	nes := NewNES(Verbose(false))

	// SEI, LDA #$80, STA $2000, JMP self
	nes.loadEasyCode("0600: 78 a9 80 8d 00 20 4c 06 06\n0700: e6 40 4c 02 07")
	nes.cart.WriteRom16(0xFFFA, 0x0700)
	nes.Reset()

	// a bit over two frames worth of emulated time
	nes.StepSeconds(0.04)

	if nes.Frames() < 2 {
		t.Fatalf("frames = %d, want at least 2", nes.Frames())
	}
	if hits := nes.ram.Read8(0x40); hits < 2 {
		t.Errorf("NMI handler ran %d times, want at least 2", hits)
	}
}

func writeTestRom(t *testing.T, flags6 uint8, flags7 uint8) string {
	t.Helper()

	header := make([]byte, 16)
	copy(header, "NES\x1a")
	header[4] = 1 // 16KB of PRG
	header[5] = 1 // 8KB of CHR
	header[6] = flags6
	header[7] = flags7

	rom := append(header, make([]byte, 16384+8192)...)
	// a recognizable byte at the start of PRG and CHR
	rom[16] = 0xA5
	rom[16+16384] = 0xC3

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, rom, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_CartridgeINes(t *testing.T) {
	path := writeTestRom(t, 0x01, 0x00) // vertical mirroring, NROM

	cart := Cartridge{}
	if err := cart.init(path); err != nil {
		t.Fatal(err)
	}

	if cart.Mirroring() != ppu.VerticalMirroring {
		t.Errorf("mirroring = %v, want vertical", cart.Mirroring())
	}
	if got := cart.Read8(0x8000); got != 0xA5 {
		t.Errorf("prg[0] = 0x%02x, want 0xa5", got)
	}
	// a 16KB PRG ROM mirrors into the upper bank
	if got := cart.Read8(0xC000); got != 0xA5 {
		t.Errorf("prg mirror = 0x%02x, want 0xa5", got)
	}
	if got := cart.Read8(0x0000); got != 0xC3 {
		t.Errorf("chr[0] = 0x%02x, want 0xc3", got)
	}

	// prg ram sits at 0x6000
	cart.Write8(0x6000, 0x42)
	if got := cart.Read8(0x6000); got != 0x42 {
		t.Errorf("prg ram readback = 0x%02x, want 0x42", got)
	}
}

func Test_CartridgeRejects(t *testing.T) {
	t.Run("wrong magic", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.nes")
		if err := os.WriteFile(path, make([]byte, 64), 0644); err != nil {
			t.Fatal(err)
		}
		cart := Cartridge{}
		if err := cart.init(path); err == nil {
			t.Error("expected an error for a file with no iNES magic")
		}
	})

	t.Run("unsupported mapper", func(t *testing.T) {
		path := writeTestRom(t, 0x10, 0x00) // mapper 1
		cart := Cartridge{}
		if err := cart.init(path); err == nil {
			t.Error("expected an error for a non NROM mapper")
		}
	})
}
