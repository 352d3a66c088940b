package cpu

import (
	"fmt"

	"github.com/goretro/famicore/nes/common"
)

const (
	// allows for validity test
	ModeInvalid = iota
	ModeZeroPage
	ModeIndexedZeroPageX
	ModeIndexedZeroPageY
	ModeAbsolute
	ModeIndexedAbsoluteX
	ModeIndexedAbsoluteY
	ModeIndirect
	ModeImplied
	ModeAccumulator
	ModeImmediate
	ModeRelative
	ModeIndexedIndirectX
	ModeIndirectIndexedY
)

// DecodeError reports an opcode with no table entry. The machine state is
// left as it was before the fetch so the caller can decide what to do.
type DecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid instruction, opcode: 0x%02x at 0x%04x", e.Opcode, e.PC)
}

type Instruction struct {
	opLength     uint8
	opCycles     uint8
	opPageCycles uint8
	addrMode     uint8

	opCode uint8
	opName string

	// evaluator function
	eval func()
}

type Context struct {
	ins *Instruction
	opr uint32
	// address of the opcode being evaluated
	pc  uint16
	pgX bool
}

type Cpu struct {
	common.BusExtInt

	ins [256]Instruction

	curr Context

	rg Registers

	clk int

	interrupts uint8
}

func (c *Cpu) Init(busInt common.BusExtInt) {
	c.rg.Init()
	c.setupIns()
	c.BusExtInt = busInt
}

// Reset loads the reset vector. The hardware burns 8 clocks doing it.
func (c *Cpu) Reset() {
	c.rg.Init()
	c.interrupts = 0
	c.curr.ins = nil
	c.rg.Spc.Pc.Write(c.Read16(0xFFFC))
	c.clk += 8
}

func (c *Cpu) Regs() *Registers {
	return &c.rg
}

func (c *Cpu) Clock() int {
	return c.clk
}

// interrupt, common.IiInterrupt
func (c *Cpu) Raise(flag uint8) {
	c.interrupts |= flag
}
func (c *Cpu) Clear(flag uint8) {
	c.interrupts &= flag ^ 0xFF
}

// TriggerNMI latches the non maskable edge.
func (c *Cpu) TriggerNMI() {
	c.Raise(common.IntNMI)
}

// TriggerIRQ latches the request. It is sampled at the top of every step
// and stays pending while InterruptDisable is set.
func (c *Cpu) TriggerIRQ() {
	c.Raise(common.IntIRQ)
}

// Step services a pending interrupt or runs one instruction, returning how
// many clocks it took. An opcode with no table entry comes back as a
// *DecodeError without advancing the machine.
func (c *Cpu) Step() (int, error) {
	clk := c.clk

	if c.interrupts&common.IntNMI != 0 {
		c.Clear(common.IntNMI)
		c.serviceInterrupt(false, 0xFFFA)
		return c.clk - clk, nil
	}
	// a masked IRQ stays latched until I clears
	if c.interrupts&common.IntIRQ != 0 && c.rg.Spc.Ps.Read()&BI == 0 {
		c.Clear(common.IntIRQ)
		c.serviceInterrupt(false, 0xFFFE)
		return c.clk - clk, nil
	}

	c.curr.pgX = false
	c.curr.pc = c.rg.Spc.Pc.Read()
	c.curr.opr = c.fetch()
	opCode := uint8(c.curr.opr & 0xFF)
	c.curr.ins = &c.ins[opCode]

	if c.curr.ins.eval == nil {
		return 0, &DecodeError{Opcode: opCode, PC: c.curr.pc}
	}

	c.rg.Spc.Pc.Write(c.curr.pc + uint16(c.curr.ins.opLength))
	c.curr.ins.eval()

	c.clk += int(c.curr.ins.opCycles)
	if c.curr.pgX {
		c.clk += int(c.curr.ins.opPageCycles)
	}
	return c.clk - clk, nil
}

// Skip swallows the instruction at Pc as a 2 clock no-op. Used by free
// running callers that want to step over bytes the decoder rejected.
func (c *Cpu) Skip() int {
	c.rg.Spc.Pc.Write(c.rg.Spc.Pc.Read() + 1)
	c.clk += 2
	return 2
}

func (c *Cpu) fetch() uint32 {
	op01 := c.Read16(c.curr.pc)
	op2 := c.Read8(c.curr.pc + 2)
	return uint32(op01) | uint32(op2)<<16
}

// push Pc and status, jump through the vector. 7 clocks, matching the
// hardware sequence. The pushed status copy carries B only for BRK.
func (c *Cpu) serviceInterrupt(brk bool, vector uint16) {
	flags := c.rg.Spc.Ps.Read() | BE
	if brk {
		flags |= BB
	}
	c._push16(c.rg.Spc.Pc.Read())
	c._push8(flags)
	c.rg.Spc.Ps.Set(BI, BI)
	c.rg.Spc.Pc.Write(c.Read16(vector))
	c.clk += 7
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (c *Cpu) getOperandAddr(ins *Instruction) uint16 {
	op1 := uint16(c.curr.opr&0xFF00) >> 8
	op12 := uint16((c.curr.opr & 0xFFFF00) >> 8)
	switch ins.addrMode {
	case ModeImmediate:
		return c.curr.pc + 1
	case ModeZeroPage:
		return op1
	case ModeIndexedZeroPageX:
		return (op1 + uint16(c.rg.Gp.Ix.X.Read())) % 256
	case ModeIndexedZeroPageY:
		return (op1 + uint16(c.rg.Gp.Ix.Y.Read())) % 256
	case ModeAbsolute:
		return op12
	case ModeIndexedAbsoluteX:
		x := uint16(c.rg.Gp.Ix.X.Read())
		addr := op12 + x
		c.curr.pgX = pageCrossed(addr-x, addr)
		return addr
	case ModeIndexedAbsoluteY:
		y := uint16(c.rg.Gp.Ix.Y.Read())
		addr := op12 + y
		c.curr.pgX = pageCrossed(addr-y, addr)
		return addr
	case ModeIndexedIndirectX:
		// the pointer lives in the zero page and wraps within it
		ptr := uint8(op1) + c.rg.Gp.Ix.X.Read()
		return uint16(c.Read8(uint16(ptr))) | uint16(c.Read8(uint16(ptr+1)))<<8
	case ModeIndirectIndexedY:
		ptr := uint8(op1)
		base := uint16(c.Read8(uint16(ptr))) | uint16(c.Read8(uint16(ptr+1)))<<8
		y := uint16(c.rg.Gp.Ix.Y.Read())
		addr := base + y
		c.curr.pgX = pageCrossed(addr-y, addr)
		return addr
	case ModeIndirect:
		// http://www.obelisk.me.uk/6502/reference.html#JMP:
		// An original 6502 does not correctly fetch the target address if the indirect vector
		// falls on a page boundary (e.g. $xxFF). It fetches the LSB from $xxFF as expected but
		// takes the MSB from $xx00.
		if op1 == 0xFF {
			l := uint16(c.Read8(op12))
			h := uint16(c.Read8(op12 & 0xFF00))
			return l | h<<8
		} else {
			return c.Read16(op12)
		}
	case ModeRelative:
		// op1 -128,127 so we can jump backwards, relative to the next instruction
		return c.curr.pc + uint16(ins.opLength) + uint16(int8(op1))
	case ModeInvalid:
		fallthrough
	default:
		panic(fmt.Errorf("invalid instruction address mode: %d", ins.addrMode))
	}
}

// Move Commands:
func (c *Cpu) sta() {
	c.Write8(c.getOperandAddr(c.curr.ins), c.rg.Gp.Ac.Read())
}
func (c *Cpu) stx() {
	c.Write8(c.getOperandAddr(c.curr.ins), c.rg.Gp.Ix.X.Read())
}
func (c *Cpu) sty() {
	c.Write8(c.getOperandAddr(c.curr.ins), c.rg.Gp.Ix.Y.Read())
}

func (c *Cpu) lda() {
	c.rg.Gp.Ac.Write(c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) ldx() {
	c.rg.Gp.Ix.X.Write(c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.X.Read()))
}
func (c *Cpu) ldy() {
	c.rg.Gp.Ix.Y.Write(c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.Y.Read()))
}

func (c *Cpu) tax() {
	c.rg.Gp.Ix.X.Write(c.rg.Gp.Ac.Read())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.X.Read()))
}
func (c *Cpu) tay() {
	c.rg.Gp.Ix.Y.Write(c.rg.Gp.Ac.Read())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.Y.Read()))
}
func (c *Cpu) txa() {
	c.rg.Gp.Ac.Write(c.rg.Gp.Ix.X.Read())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) tya() {
	c.rg.Gp.Ac.Write(c.rg.Gp.Ix.Y.Read())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}

func (c *Cpu) txs() {
	c.rg.Spc.Sp.Write(c.rg.Gp.Ix.X.Read())
}
func (c *Cpu) tsx() {
	c.rg.Gp.Ix.X.Write(c.rg.Spc.Sp.Read())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.X.Read()))
}

func (c *Cpu) _push8(val uint8) {
	sp := c.rg.Spc.Sp.Read()
	c.Write8(uint16(sp)|0x100, val)
	c.rg.Spc.Sp.Write(sp - 1)
}
func (c *Cpu) _push16(val uint16) {
	c._push8(uint8((val & 0xFF00) >> 8))
	c._push8(uint8(val & 0xFF))
}
func (c *Cpu) _pull8() uint8 {
	sp := c.rg.Spc.Sp.Read() + 1
	c.rg.Spc.Sp.Write(sp)
	return c.Read8(uint16(sp) | 0x100)
}
func (c *Cpu) _pull16() uint16 {
	return uint16(c._pull8()) | uint16(c._pull8())<<8
}

func (c *Cpu) pha() {
	c._push8(c.rg.Gp.Ac.Read())
}
func (c *Cpu) php() {
	// B and E read as set on the pushed copy
	c._push8(c.rg.Spc.Ps.Read() | BB | BE)
}

func (c *Cpu) pla() {
	c.rg.Gp.Ac.Write(c._pull8())
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) plp() {
	c.rg.Spc.Ps.Write(c._pull8())
}

// Jump/Flag Commands:
func (c *Cpu) brk() {
	// Pc already points past the padding byte; the interrupt sequence
	// accounts for the remaining 7 clocks.
	c.serviceInterrupt(true, 0xFFFE)
}

func (c *Cpu) bit() {
	mask := c.rg.Gp.Ac.Read()
	value := c.Read8(c.getOperandAddr(c.curr.ins))
	result := value & mask
	c.rg.Spc.Ps.Set(BZ, int8(result))
	c.rg.Spc.Ps.Set(BN|BV, int8(value))
}

func (c *Cpu) clc() {
	c.rg.Spc.Ps.Set(BC, 0)
}
func (c *Cpu) sec() {
	c.rg.Spc.Ps.Set(BC, BC)
}
func (c *Cpu) sed() {
	c.rg.Spc.Ps.Set(BD, BD)
}
func (c *Cpu) cld() {
	c.rg.Spc.Ps.Set(BD, 0)
}
func (c *Cpu) clv() {
	c.rg.Spc.Ps.Set(BV, 0)
}
func (c *Cpu) sei() {
	c.rg.Spc.Ps.Set(BI, BI)
}
func (c *Cpu) cli() {
	c.rg.Spc.Ps.Set(BI, 0)
}

// branching requires more cycles
func (c *Cpu) addBranchCycles(addr uint16) {
	c.clk++
	if pageCrossed(c.rg.Spc.Pc.Read(), addr) {
		c.clk++
	}
}

func (c *Cpu) jmp() {
	c.rg.Spc.Pc.Write(c.getOperandAddr(c.curr.ins))
}

func (c *Cpu) _branch(flag uint8, test uint8) {
	if (c.rg.Spc.Ps.Read() & flag) == test {
		addr := c.getOperandAddr(c.curr.ins)
		c.addBranchCycles(addr)
		c.rg.Spc.Pc.Write(addr)
	}
}

func (c *Cpu) bpl() {
	c._branch(BN, 0)
}
func (c *Cpu) bmi() {
	c._branch(BN, BN)
}

func (c *Cpu) bvc() {
	c._branch(BV, 0)
}
func (c *Cpu) bvs() {
	c._branch(BV, BV)
}

func (c *Cpu) bcc() {
	c._branch(BC, 0)
}
func (c *Cpu) bcs() {
	c._branch(BC, BC)
}

func (c *Cpu) bne() {
	c._branch(BZ, 0)
}
func (c *Cpu) beq() {
	c._branch(BZ, BZ)
}

func (c *Cpu) jsr() {
	// the pushed address is that of the instruction's last byte
	c._push16(c.curr.pc + uint16(c.curr.ins.opLength) - 1)
	c.jmp()
}
func (c *Cpu) rts() {
	c.rg.Spc.Pc.Write(c._pull16() + 1)
}

func (c *Cpu) rti() {
	c.plp()
	c.rg.Spc.Pc.Write(c._pull16())
}

func (c *Cpu) nop() {
	if c.curr.ins.addrMode != ModeImplied {
		// multi byte NOPs still pay the page cross penalty
		c.getOperandAddr(c.curr.ins)
	}
}

// Logical and arithmetic commands:
func (c *Cpu) ora() {
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() | c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) and() {
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() & c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) eor() {
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() ^ c.Read8(c.getOperandAddr(c.curr.ins)))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}

func (c *Cpu) _add(opr uint8) {
	ac := c.rg.Gp.Ac.Read()
	result := uint16(ac) + uint16(opr) + uint16(c.rg.Spc.Ps.Read()&BC)>>C
	if result > 0xFF {
		c.rg.Spc.Ps.Set(BC, BC)
	} else {
		c.rg.Spc.Ps.Set(BC, 0)
	}

	// signed overflow and underflow, when the addends sign bits agree
	// and the result sign differs
	// eg: 127 + 3 = 130 ( -126 )
	if ((ac^opr)&0x80) == 0 && ((uint16(ac)^result)&0x80) != 0 {
		c.rg.Spc.Ps.Set(BV, BV)
	} else {
		c.rg.Spc.Ps.Set(BV, 0)
	}
	c.rg.Gp.Ac.Write(uint8(result & 0xFF))
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
	// decimal mode does not exist on the 2A03
}

func (c *Cpu) adc() {
	c._add(c.Read8(c.getOperandAddr(c.curr.ins)))
}
func (c *Cpu) sbc() {
	// subtraction is addition of the one's complement
	c._add(c.Read8(c.getOperandAddr(c.curr.ins)) ^ 0xFF)
}

func (c *Cpu) _cmp(op1 uint8, op2 uint8) {
	r := int8(op1 - op2)

	if op1 >= op2 {
		c.rg.Spc.Ps.Set(BC, BC)
	} else {
		c.rg.Spc.Ps.Set(BC, 0)
	}
	c.rg.Spc.Ps.Set(BZ|BN, r)
}

func (c *Cpu) cmp() {
	c._cmp(c.rg.Gp.Ac.Read(), c.Read8(c.getOperandAddr(c.curr.ins)))
}

func (c *Cpu) cpx() {
	c._cmp(c.rg.Gp.Ix.X.Read(), c.Read8(c.getOperandAddr(c.curr.ins)))
}

func (c *Cpu) cpy() {
	c._cmp(c.rg.Gp.Ix.Y.Read(), c.Read8(c.getOperandAddr(c.curr.ins)))
}

func (c *Cpu) dec() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c.Read8(addr) - 1
	c.Write8(addr, v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) dex() {
	v := c.rg.Gp.Ix.X.Read() - 1
	c.rg.Gp.Ix.X.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) dey() {
	v := c.rg.Gp.Ix.Y.Read() - 1
	c.rg.Gp.Ix.Y.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) inc() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c.Read8(addr) + 1
	c.Write8(addr, v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) inx() {
	v := c.rg.Gp.Ix.X.Read() + 1
	c.rg.Gp.Ix.X.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) iny() {
	v := c.rg.Gp.Ix.Y.Read() + 1
	c.rg.Gp.Ix.Y.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}

func (c *Cpu) _asl(v uint8) uint8 {
	c.rg.Spc.Ps.Set(BC, int8(v>>7)&BC)
	v <<= 1
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	return v
}
func (c *Cpu) _rol(v uint8) uint8 {
	fC := c.rg.Spc.Ps.Read() & BC
	c.rg.Spc.Ps.Set(BC, int8(v>>7)&BC)
	v = (v << 1) | fC
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	return v
}
func (c *Cpu) _lsr(v uint8) uint8 {
	c.rg.Spc.Ps.Set(BC, int8(v)&BC)
	v >>= 1
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	return v
}
func (c *Cpu) _ror(v uint8) uint8 {
	fC := c.rg.Spc.Ps.Read() & BC
	c.rg.Spc.Ps.Set(BC, int8(v)&BC)
	v = (v >> 1) | (fC << 7)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	return v
}

func (c *Cpu) asl() {
	if c.curr.ins.addrMode == ModeAccumulator {
		c.rg.Gp.Ac.Write(c._asl(c.rg.Gp.Ac.Read()))
	} else {
		addr := c.getOperandAddr(c.curr.ins)
		c.Write8(addr, c._asl(c.Read8(addr)))
	}
}

func (c *Cpu) rol() {
	if c.curr.ins.addrMode == ModeAccumulator {
		c.rg.Gp.Ac.Write(c._rol(c.rg.Gp.Ac.Read()))
	} else {
		addr := c.getOperandAddr(c.curr.ins)
		c.Write8(addr, c._rol(c.Read8(addr)))
	}
}

func (c *Cpu) lsr() {
	if c.curr.ins.addrMode == ModeAccumulator {
		c.rg.Gp.Ac.Write(c._lsr(c.rg.Gp.Ac.Read()))
	} else {
		addr := c.getOperandAddr(c.curr.ins)
		c.Write8(addr, c._lsr(c.Read8(addr)))
	}
}

func (c *Cpu) ror() {
	if c.curr.ins.addrMode == ModeAccumulator {
		c.rg.Gp.Ac.Write(c._ror(c.rg.Gp.Ac.Read()))
	} else {
		addr := c.getOperandAddr(c.curr.ins)
		c.Write8(addr, c._ror(c.Read8(addr)))
	}
}

// Unofficial opcodes. The combined read-modify ops reuse the pieces above.
func (c *Cpu) lax() {
	v := c.Read8(c.getOperandAddr(c.curr.ins))
	c.rg.Gp.Ac.Write(v)
	c.rg.Gp.Ix.X.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
}
func (c *Cpu) sax() {
	c.Write8(c.getOperandAddr(c.curr.ins), c.rg.Gp.Ac.Read()&c.rg.Gp.Ix.X.Read())
}
func (c *Cpu) dcp() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c.Read8(addr) - 1
	c.Write8(addr, v)
	c._cmp(c.rg.Gp.Ac.Read(), v)
}
func (c *Cpu) isc() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c.Read8(addr) + 1
	c.Write8(addr, v)
	c._add(v ^ 0xFF)
}
func (c *Cpu) slo() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c._asl(c.Read8(addr))
	c.Write8(addr, v)
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() | v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) rla() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c._rol(c.Read8(addr))
	c.Write8(addr, v)
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() & v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) sre() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c._lsr(c.Read8(addr))
	c.Write8(addr, v)
	c.rg.Gp.Ac.Write(c.rg.Gp.Ac.Read() ^ v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ac.Read()))
}
func (c *Cpu) rra() {
	addr := c.getOperandAddr(c.curr.ins)
	v := c._ror(c.Read8(addr))
	c.Write8(addr, v)
	c._add(v)
}
func (c *Cpu) alr() {
	v := c.rg.Gp.Ac.Read() & c.Read8(c.getOperandAddr(c.curr.ins))
	c.rg.Gp.Ac.Write(c._lsr(v))
}
func (c *Cpu) anc() {
	v := c.rg.Gp.Ac.Read() & c.Read8(c.getOperandAddr(c.curr.ins))
	c.rg.Gp.Ac.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	c.rg.Spc.Ps.Set(BC, int8(v>>7)&BC)
}
func (c *Cpu) arr() {
	v := c.rg.Gp.Ac.Read() & c.Read8(c.getOperandAddr(c.curr.ins))
	fC := c.rg.Spc.Ps.Read() & BC
	v = (v >> 1) | (fC << 7)
	c.rg.Gp.Ac.Write(v)
	c.rg.Spc.Ps.Set(BZ|BN, int8(v))
	c.rg.Spc.Ps.Set(BC, int8(v>>6)&BC)
	if ((v>>6)^(v>>5))&1 != 0 {
		c.rg.Spc.Ps.Set(BV, BV)
	} else {
		c.rg.Spc.Ps.Set(BV, 0)
	}
}
func (c *Cpu) axs() {
	opr := c.Read8(c.getOperandAddr(c.curr.ins))
	ax := c.rg.Gp.Ac.Read() & c.rg.Gp.Ix.X.Read()
	c.rg.Gp.Ix.X.Write(ax - opr)
	if ax >= opr {
		c.rg.Spc.Ps.Set(BC, BC)
	} else {
		c.rg.Spc.Ps.Set(BC, 0)
	}
	c.rg.Spc.Ps.Set(BZ|BN, int8(c.rg.Gp.Ix.X.Read()))
}
