package cpu

func (c *Cpu) setIns(opCode uint8, opName string, opLength uint8, opCycles uint8, opPageCycles uint8, addrMode uint8, eval func()) {
	c.ins[opCode] = Instruction{
		opLength:     opLength,
		opCycles:     opCycles,
		opPageCycles: opPageCycles,
		addrMode:     addrMode,
		opCode:       opCode,
		opName:       opName,
		eval:         eval,
	}
}

// setupIns builds the one decode table both legacy variants now share.
// Timings follow http://www.obelisk.me.uk/6502/reference.html and the
// nesdev opcode matrix. Opcodes left out (the JAMs and the unstable
// store/load hybrids) decode to a DecodeError.
func (c *Cpu) setupIns() {
	// Logical and arithmetic
	c.setIns(0x69, "ADC", 2, 2, 0, ModeImmediate, c.adc)
	c.setIns(0x65, "ADC", 2, 3, 0, ModeZeroPage, c.adc)
	c.setIns(0x75, "ADC", 2, 4, 0, ModeIndexedZeroPageX, c.adc)
	c.setIns(0x6D, "ADC", 3, 4, 0, ModeAbsolute, c.adc)
	c.setIns(0x7D, "ADC", 3, 4, 1, ModeIndexedAbsoluteX, c.adc)
	c.setIns(0x79, "ADC", 3, 4, 1, ModeIndexedAbsoluteY, c.adc)
	c.setIns(0x61, "ADC", 2, 6, 0, ModeIndexedIndirectX, c.adc)
	c.setIns(0x71, "ADC", 2, 5, 1, ModeIndirectIndexedY, c.adc)

	c.setIns(0xE9, "SBC", 2, 2, 0, ModeImmediate, c.sbc)
	c.setIns(0xE5, "SBC", 2, 3, 0, ModeZeroPage, c.sbc)
	c.setIns(0xF5, "SBC", 2, 4, 0, ModeIndexedZeroPageX, c.sbc)
	c.setIns(0xED, "SBC", 3, 4, 0, ModeAbsolute, c.sbc)
	c.setIns(0xFD, "SBC", 3, 4, 1, ModeIndexedAbsoluteX, c.sbc)
	c.setIns(0xF9, "SBC", 3, 4, 1, ModeIndexedAbsoluteY, c.sbc)
	c.setIns(0xE1, "SBC", 2, 6, 0, ModeIndexedIndirectX, c.sbc)
	c.setIns(0xF1, "SBC", 2, 5, 1, ModeIndirectIndexedY, c.sbc)

	c.setIns(0x29, "AND", 2, 2, 0, ModeImmediate, c.and)
	c.setIns(0x25, "AND", 2, 3, 0, ModeZeroPage, c.and)
	c.setIns(0x35, "AND", 2, 4, 0, ModeIndexedZeroPageX, c.and)
	c.setIns(0x2D, "AND", 3, 4, 0, ModeAbsolute, c.and)
	c.setIns(0x3D, "AND", 3, 4, 1, ModeIndexedAbsoluteX, c.and)
	c.setIns(0x39, "AND", 3, 4, 1, ModeIndexedAbsoluteY, c.and)
	c.setIns(0x21, "AND", 2, 6, 0, ModeIndexedIndirectX, c.and)
	c.setIns(0x31, "AND", 2, 5, 1, ModeIndirectIndexedY, c.and)

	c.setIns(0x09, "ORA", 2, 2, 0, ModeImmediate, c.ora)
	c.setIns(0x05, "ORA", 2, 3, 0, ModeZeroPage, c.ora)
	c.setIns(0x15, "ORA", 2, 4, 0, ModeIndexedZeroPageX, c.ora)
	c.setIns(0x0D, "ORA", 3, 4, 0, ModeAbsolute, c.ora)
	c.setIns(0x1D, "ORA", 3, 4, 1, ModeIndexedAbsoluteX, c.ora)
	c.setIns(0x19, "ORA", 3, 4, 1, ModeIndexedAbsoluteY, c.ora)
	c.setIns(0x01, "ORA", 2, 6, 0, ModeIndexedIndirectX, c.ora)
	c.setIns(0x11, "ORA", 2, 5, 1, ModeIndirectIndexedY, c.ora)

	c.setIns(0x49, "EOR", 2, 2, 0, ModeImmediate, c.eor)
	c.setIns(0x45, "EOR", 2, 3, 0, ModeZeroPage, c.eor)
	c.setIns(0x55, "EOR", 2, 4, 0, ModeIndexedZeroPageX, c.eor)
	c.setIns(0x4D, "EOR", 3, 4, 0, ModeAbsolute, c.eor)
	c.setIns(0x5D, "EOR", 3, 4, 1, ModeIndexedAbsoluteX, c.eor)
	c.setIns(0x59, "EOR", 3, 4, 1, ModeIndexedAbsoluteY, c.eor)
	c.setIns(0x41, "EOR", 2, 6, 0, ModeIndexedIndirectX, c.eor)
	c.setIns(0x51, "EOR", 2, 5, 1, ModeIndirectIndexedY, c.eor)

	c.setIns(0xC9, "CMP", 2, 2, 0, ModeImmediate, c.cmp)
	c.setIns(0xC5, "CMP", 2, 3, 0, ModeZeroPage, c.cmp)
	c.setIns(0xD5, "CMP", 2, 4, 0, ModeIndexedZeroPageX, c.cmp)
	c.setIns(0xCD, "CMP", 3, 4, 0, ModeAbsolute, c.cmp)
	c.setIns(0xDD, "CMP", 3, 4, 1, ModeIndexedAbsoluteX, c.cmp)
	c.setIns(0xD9, "CMP", 3, 4, 1, ModeIndexedAbsoluteY, c.cmp)
	c.setIns(0xC1, "CMP", 2, 6, 0, ModeIndexedIndirectX, c.cmp)
	c.setIns(0xD1, "CMP", 2, 5, 1, ModeIndirectIndexedY, c.cmp)

	c.setIns(0xE0, "CPX", 2, 2, 0, ModeImmediate, c.cpx)
	c.setIns(0xE4, "CPX", 2, 3, 0, ModeZeroPage, c.cpx)
	c.setIns(0xEC, "CPX", 3, 4, 0, ModeAbsolute, c.cpx)

	c.setIns(0xC0, "CPY", 2, 2, 0, ModeImmediate, c.cpy)
	c.setIns(0xC4, "CPY", 2, 3, 0, ModeZeroPage, c.cpy)
	c.setIns(0xCC, "CPY", 3, 4, 0, ModeAbsolute, c.cpy)

	c.setIns(0xC6, "DEC", 2, 5, 0, ModeZeroPage, c.dec)
	c.setIns(0xD6, "DEC", 2, 6, 0, ModeIndexedZeroPageX, c.dec)
	c.setIns(0xCE, "DEC", 3, 6, 0, ModeAbsolute, c.dec)
	c.setIns(0xDE, "DEC", 3, 7, 0, ModeIndexedAbsoluteX, c.dec)
	c.setIns(0xCA, "DEX", 1, 2, 0, ModeImplied, c.dex)
	c.setIns(0x88, "DEY", 1, 2, 0, ModeImplied, c.dey)

	c.setIns(0xE6, "INC", 2, 5, 0, ModeZeroPage, c.inc)
	c.setIns(0xF6, "INC", 2, 6, 0, ModeIndexedZeroPageX, c.inc)
	c.setIns(0xEE, "INC", 3, 6, 0, ModeAbsolute, c.inc)
	c.setIns(0xFE, "INC", 3, 7, 0, ModeIndexedAbsoluteX, c.inc)
	c.setIns(0xE8, "INX", 1, 2, 0, ModeImplied, c.inx)
	c.setIns(0xC8, "INY", 1, 2, 0, ModeImplied, c.iny)

	c.setIns(0x0A, "ASL", 1, 2, 0, ModeAccumulator, c.asl)
	c.setIns(0x06, "ASL", 2, 5, 0, ModeZeroPage, c.asl)
	c.setIns(0x16, "ASL", 2, 6, 0, ModeIndexedZeroPageX, c.asl)
	c.setIns(0x0E, "ASL", 3, 6, 0, ModeAbsolute, c.asl)
	c.setIns(0x1E, "ASL", 3, 7, 0, ModeIndexedAbsoluteX, c.asl)

	c.setIns(0x2A, "ROL", 1, 2, 0, ModeAccumulator, c.rol)
	c.setIns(0x26, "ROL", 2, 5, 0, ModeZeroPage, c.rol)
	c.setIns(0x36, "ROL", 2, 6, 0, ModeIndexedZeroPageX, c.rol)
	c.setIns(0x2E, "ROL", 3, 6, 0, ModeAbsolute, c.rol)
	c.setIns(0x3E, "ROL", 3, 7, 0, ModeIndexedAbsoluteX, c.rol)

	c.setIns(0x4A, "LSR", 1, 2, 0, ModeAccumulator, c.lsr)
	c.setIns(0x46, "LSR", 2, 5, 0, ModeZeroPage, c.lsr)
	c.setIns(0x56, "LSR", 2, 6, 0, ModeIndexedZeroPageX, c.lsr)
	c.setIns(0x4E, "LSR", 3, 6, 0, ModeAbsolute, c.lsr)
	c.setIns(0x5E, "LSR", 3, 7, 0, ModeIndexedAbsoluteX, c.lsr)

	c.setIns(0x6A, "ROR", 1, 2, 0, ModeAccumulator, c.ror)
	c.setIns(0x66, "ROR", 2, 5, 0, ModeZeroPage, c.ror)
	c.setIns(0x76, "ROR", 2, 6, 0, ModeIndexedZeroPageX, c.ror)
	c.setIns(0x6E, "ROR", 3, 6, 0, ModeAbsolute, c.ror)
	c.setIns(0x7E, "ROR", 3, 7, 0, ModeIndexedAbsoluteX, c.ror)

	// Move
	c.setIns(0xA9, "LDA", 2, 2, 0, ModeImmediate, c.lda)
	c.setIns(0xA5, "LDA", 2, 3, 0, ModeZeroPage, c.lda)
	c.setIns(0xB5, "LDA", 2, 4, 0, ModeIndexedZeroPageX, c.lda)
	c.setIns(0xAD, "LDA", 3, 4, 0, ModeAbsolute, c.lda)
	c.setIns(0xBD, "LDA", 3, 4, 1, ModeIndexedAbsoluteX, c.lda)
	c.setIns(0xB9, "LDA", 3, 4, 1, ModeIndexedAbsoluteY, c.lda)
	c.setIns(0xA1, "LDA", 2, 6, 0, ModeIndexedIndirectX, c.lda)
	c.setIns(0xB1, "LDA", 2, 5, 1, ModeIndirectIndexedY, c.lda)

	c.setIns(0xA2, "LDX", 2, 2, 0, ModeImmediate, c.ldx)
	c.setIns(0xA6, "LDX", 2, 3, 0, ModeZeroPage, c.ldx)
	c.setIns(0xB6, "LDX", 2, 4, 0, ModeIndexedZeroPageY, c.ldx)
	c.setIns(0xAE, "LDX", 3, 4, 0, ModeAbsolute, c.ldx)
	c.setIns(0xBE, "LDX", 3, 4, 1, ModeIndexedAbsoluteY, c.ldx)

	c.setIns(0xA0, "LDY", 2, 2, 0, ModeImmediate, c.ldy)
	c.setIns(0xA4, "LDY", 2, 3, 0, ModeZeroPage, c.ldy)
	c.setIns(0xB4, "LDY", 2, 4, 0, ModeIndexedZeroPageX, c.ldy)
	c.setIns(0xAC, "LDY", 3, 4, 0, ModeAbsolute, c.ldy)
	c.setIns(0xBC, "LDY", 3, 4, 1, ModeIndexedAbsoluteX, c.ldy)

	c.setIns(0x85, "STA", 2, 3, 0, ModeZeroPage, c.sta)
	c.setIns(0x95, "STA", 2, 4, 0, ModeIndexedZeroPageX, c.sta)
	c.setIns(0x8D, "STA", 3, 4, 0, ModeAbsolute, c.sta)
	c.setIns(0x9D, "STA", 3, 5, 0, ModeIndexedAbsoluteX, c.sta)
	c.setIns(0x99, "STA", 3, 5, 0, ModeIndexedAbsoluteY, c.sta)
	c.setIns(0x81, "STA", 2, 6, 0, ModeIndexedIndirectX, c.sta)
	c.setIns(0x91, "STA", 2, 6, 0, ModeIndirectIndexedY, c.sta)

	c.setIns(0x86, "STX", 2, 3, 0, ModeZeroPage, c.stx)
	c.setIns(0x96, "STX", 2, 4, 0, ModeIndexedZeroPageY, c.stx)
	c.setIns(0x8E, "STX", 3, 4, 0, ModeAbsolute, c.stx)

	c.setIns(0x84, "STY", 2, 3, 0, ModeZeroPage, c.sty)
	c.setIns(0x94, "STY", 2, 4, 0, ModeIndexedZeroPageX, c.sty)
	c.setIns(0x8C, "STY", 3, 4, 0, ModeAbsolute, c.sty)

	c.setIns(0xAA, "TAX", 1, 2, 0, ModeImplied, c.tax)
	c.setIns(0xA8, "TAY", 1, 2, 0, ModeImplied, c.tay)
	c.setIns(0x8A, "TXA", 1, 2, 0, ModeImplied, c.txa)
	c.setIns(0x98, "TYA", 1, 2, 0, ModeImplied, c.tya)
	c.setIns(0x9A, "TXS", 1, 2, 0, ModeImplied, c.txs)
	c.setIns(0xBA, "TSX", 1, 2, 0, ModeImplied, c.tsx)

	c.setIns(0x48, "PHA", 1, 3, 0, ModeImplied, c.pha)
	c.setIns(0x08, "PHP", 1, 3, 0, ModeImplied, c.php)
	c.setIns(0x68, "PLA", 1, 4, 0, ModeImplied, c.pla)
	c.setIns(0x28, "PLP", 1, 4, 0, ModeImplied, c.plp)

	// Jump/Flag
	// BRK's interrupt service adds its 7 clocks, the table carries the fetch
	c.setIns(0x00, "BRK", 2, 1, 0, ModeImplied, c.brk)
	c.setIns(0x4C, "JMP", 3, 3, 0, ModeAbsolute, c.jmp)
	c.setIns(0x6C, "JMP", 3, 5, 0, ModeIndirect, c.jmp)
	c.setIns(0x20, "JSR", 3, 6, 0, ModeAbsolute, c.jsr)
	c.setIns(0x60, "RTS", 1, 6, 0, ModeImplied, c.rts)
	c.setIns(0x40, "RTI", 1, 6, 0, ModeImplied, c.rti)

	c.setIns(0x10, "BPL", 2, 2, 0, ModeRelative, c.bpl)
	c.setIns(0x30, "BMI", 2, 2, 0, ModeRelative, c.bmi)
	c.setIns(0x50, "BVC", 2, 2, 0, ModeRelative, c.bvc)
	c.setIns(0x70, "BVS", 2, 2, 0, ModeRelative, c.bvs)
	c.setIns(0x90, "BCC", 2, 2, 0, ModeRelative, c.bcc)
	c.setIns(0xB0, "BCS", 2, 2, 0, ModeRelative, c.bcs)
	c.setIns(0xD0, "BNE", 2, 2, 0, ModeRelative, c.bne)
	c.setIns(0xF0, "BEQ", 2, 2, 0, ModeRelative, c.beq)

	c.setIns(0x24, "BIT", 2, 3, 0, ModeZeroPage, c.bit)
	c.setIns(0x2C, "BIT", 3, 4, 0, ModeAbsolute, c.bit)

	c.setIns(0x18, "CLC", 1, 2, 0, ModeImplied, c.clc)
	c.setIns(0x38, "SEC", 1, 2, 0, ModeImplied, c.sec)
	c.setIns(0xD8, "CLD", 1, 2, 0, ModeImplied, c.cld)
	c.setIns(0xF8, "SED", 1, 2, 0, ModeImplied, c.sed)
	c.setIns(0x58, "CLI", 1, 2, 0, ModeImplied, c.cli)
	c.setIns(0x78, "SEI", 1, 2, 0, ModeImplied, c.sei)
	c.setIns(0xB8, "CLV", 1, 2, 0, ModeImplied, c.clv)

	c.setIns(0xEA, "NOP", 1, 2, 0, ModeImplied, c.nop)

	// Unofficial, as exercised by the usual test roms
	c.setIns(0x1A, "NOP", 1, 2, 0, ModeImplied, c.nop)
	c.setIns(0x3A, "NOP", 1, 2, 0, ModeImplied, c.nop)
	c.setIns(0x5A, "NOP", 1, 2, 0, ModeImplied, c.nop)
	c.setIns(0x7A, "NOP", 1, 2, 0, ModeImplied, c.nop)
	c.setIns(0xDA, "NOP", 1, 2, 0, ModeImplied, c.nop)
	c.setIns(0xFA, "NOP", 1, 2, 0, ModeImplied, c.nop)

	c.setIns(0x80, "NOP", 2, 2, 0, ModeImmediate, c.nop)
	c.setIns(0x82, "NOP", 2, 2, 0, ModeImmediate, c.nop)
	c.setIns(0x89, "NOP", 2, 2, 0, ModeImmediate, c.nop)
	c.setIns(0xC2, "NOP", 2, 2, 0, ModeImmediate, c.nop)
	c.setIns(0xE2, "NOP", 2, 2, 0, ModeImmediate, c.nop)

	c.setIns(0x04, "NOP", 2, 3, 0, ModeZeroPage, c.nop)
	c.setIns(0x44, "NOP", 2, 3, 0, ModeZeroPage, c.nop)
	c.setIns(0x64, "NOP", 2, 3, 0, ModeZeroPage, c.nop)
	c.setIns(0x14, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0x34, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0x54, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0x74, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0xD4, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0xF4, "NOP", 2, 4, 0, ModeIndexedZeroPageX, c.nop)
	c.setIns(0x0C, "NOP", 3, 4, 0, ModeAbsolute, c.nop)
	c.setIns(0x1C, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)
	c.setIns(0x3C, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)
	c.setIns(0x5C, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)
	c.setIns(0x7C, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)
	c.setIns(0xDC, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)
	c.setIns(0xFC, "NOP", 3, 4, 1, ModeIndexedAbsoluteX, c.nop)

	c.setIns(0xA7, "LAX", 2, 3, 0, ModeZeroPage, c.lax)
	c.setIns(0xB7, "LAX", 2, 4, 0, ModeIndexedZeroPageY, c.lax)
	c.setIns(0xAF, "LAX", 3, 4, 0, ModeAbsolute, c.lax)
	c.setIns(0xBF, "LAX", 3, 4, 1, ModeIndexedAbsoluteY, c.lax)
	c.setIns(0xA3, "LAX", 2, 6, 0, ModeIndexedIndirectX, c.lax)
	c.setIns(0xB3, "LAX", 2, 5, 1, ModeIndirectIndexedY, c.lax)

	c.setIns(0x87, "SAX", 2, 3, 0, ModeZeroPage, c.sax)
	c.setIns(0x97, "SAX", 2, 4, 0, ModeIndexedZeroPageY, c.sax)
	c.setIns(0x8F, "SAX", 3, 4, 0, ModeAbsolute, c.sax)
	c.setIns(0x83, "SAX", 2, 6, 0, ModeIndexedIndirectX, c.sax)

	c.setIns(0xEB, "SBC", 2, 2, 0, ModeImmediate, c.sbc)

	c.setIns(0xC7, "DCP", 2, 5, 0, ModeZeroPage, c.dcp)
	c.setIns(0xD7, "DCP", 2, 6, 0, ModeIndexedZeroPageX, c.dcp)
	c.setIns(0xCF, "DCP", 3, 6, 0, ModeAbsolute, c.dcp)
	c.setIns(0xDF, "DCP", 3, 7, 0, ModeIndexedAbsoluteX, c.dcp)
	c.setIns(0xDB, "DCP", 3, 7, 0, ModeIndexedAbsoluteY, c.dcp)
	c.setIns(0xC3, "DCP", 2, 8, 0, ModeIndexedIndirectX, c.dcp)
	c.setIns(0xD3, "DCP", 2, 8, 0, ModeIndirectIndexedY, c.dcp)

	c.setIns(0xE7, "ISC", 2, 5, 0, ModeZeroPage, c.isc)
	c.setIns(0xF7, "ISC", 2, 6, 0, ModeIndexedZeroPageX, c.isc)
	c.setIns(0xEF, "ISC", 3, 6, 0, ModeAbsolute, c.isc)
	c.setIns(0xFF, "ISC", 3, 7, 0, ModeIndexedAbsoluteX, c.isc)
	c.setIns(0xFB, "ISC", 3, 7, 0, ModeIndexedAbsoluteY, c.isc)
	c.setIns(0xE3, "ISC", 2, 8, 0, ModeIndexedIndirectX, c.isc)
	c.setIns(0xF3, "ISC", 2, 8, 0, ModeIndirectIndexedY, c.isc)

	c.setIns(0x07, "SLO", 2, 5, 0, ModeZeroPage, c.slo)
	c.setIns(0x17, "SLO", 2, 6, 0, ModeIndexedZeroPageX, c.slo)
	c.setIns(0x0F, "SLO", 3, 6, 0, ModeAbsolute, c.slo)
	c.setIns(0x1F, "SLO", 3, 7, 0, ModeIndexedAbsoluteX, c.slo)
	c.setIns(0x1B, "SLO", 3, 7, 0, ModeIndexedAbsoluteY, c.slo)
	c.setIns(0x03, "SLO", 2, 8, 0, ModeIndexedIndirectX, c.slo)
	c.setIns(0x13, "SLO", 2, 8, 0, ModeIndirectIndexedY, c.slo)

	c.setIns(0x27, "RLA", 2, 5, 0, ModeZeroPage, c.rla)
	c.setIns(0x37, "RLA", 2, 6, 0, ModeIndexedZeroPageX, c.rla)
	c.setIns(0x2F, "RLA", 3, 6, 0, ModeAbsolute, c.rla)
	c.setIns(0x3F, "RLA", 3, 7, 0, ModeIndexedAbsoluteX, c.rla)
	c.setIns(0x3B, "RLA", 3, 7, 0, ModeIndexedAbsoluteY, c.rla)
	c.setIns(0x23, "RLA", 2, 8, 0, ModeIndexedIndirectX, c.rla)
	c.setIns(0x33, "RLA", 2, 8, 0, ModeIndirectIndexedY, c.rla)

	c.setIns(0x47, "SRE", 2, 5, 0, ModeZeroPage, c.sre)
	c.setIns(0x57, "SRE", 2, 6, 0, ModeIndexedZeroPageX, c.sre)
	c.setIns(0x4F, "SRE", 3, 6, 0, ModeAbsolute, c.sre)
	c.setIns(0x5F, "SRE", 3, 7, 0, ModeIndexedAbsoluteX, c.sre)
	c.setIns(0x5B, "SRE", 3, 7, 0, ModeIndexedAbsoluteY, c.sre)
	c.setIns(0x43, "SRE", 2, 8, 0, ModeIndexedIndirectX, c.sre)
	c.setIns(0x53, "SRE", 2, 8, 0, ModeIndirectIndexedY, c.sre)

	c.setIns(0x67, "RRA", 2, 5, 0, ModeZeroPage, c.rra)
	c.setIns(0x77, "RRA", 2, 6, 0, ModeIndexedZeroPageX, c.rra)
	c.setIns(0x6F, "RRA", 3, 6, 0, ModeAbsolute, c.rra)
	c.setIns(0x7F, "RRA", 3, 7, 0, ModeIndexedAbsoluteX, c.rra)
	c.setIns(0x7B, "RRA", 3, 7, 0, ModeIndexedAbsoluteY, c.rra)
	c.setIns(0x63, "RRA", 2, 8, 0, ModeIndexedIndirectX, c.rra)
	c.setIns(0x73, "RRA", 2, 8, 0, ModeIndirectIndexedY, c.rra)

	c.setIns(0x4B, "ALR", 2, 2, 0, ModeImmediate, c.alr)
	c.setIns(0x0B, "ANC", 2, 2, 0, ModeImmediate, c.anc)
	c.setIns(0x2B, "ANC", 2, 2, 0, ModeImmediate, c.anc)
	c.setIns(0x6B, "ARR", 2, 2, 0, ModeImmediate, c.arr)
	c.setIns(0xCB, "AXS", 2, 2, 0, ModeImmediate, c.axs)
}
