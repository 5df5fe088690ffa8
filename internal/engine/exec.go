package engine

// exec.go is the execute dispatcher: one case per mnemonic, keyed by opcode,
// per spec §4.6.

import "math"

// Execute runs a decoded instruction to completion, mutating registers,
// memory, and devices as the SIC/XE specification requires.
func (m *Machine) Execute(ins Instruction) error {
	switch ins.Format {
	case 1:
		return m.execFormat1(ins)
	case 2:
		return m.execFormat2(ins)
	default:
		return m.execFormat34(ins)
	}
}

func (m *Machine) execFormat1(ins Instruction) error {
	switch ins.Opcode {
	case OpFLOAT:
		m.Reg.SetFloat(float32(int32(m.Reg.Get(A))))
	case OpFIX:
		m.Reg.Set(A, Word(int32(m.Reg.GetFloat()))&0x00FFFFFF)
	case OpNORM, OpSIO, OpHIO, OpTIO:
		return ErrUnimplemented
	default:
		return &OpcodeError{Opcode: byte(ins.Opcode)}
	}

	return nil
}

func (m *Machine) execFormat2(ins Instruction) error {
	r1, r2 := ins.R1, ins.R2

	switch ins.Opcode {
	case OpADDR:
		m.Reg.Set(r2, m.Reg.Get(r1)+m.Reg.Get(r2))
	case OpSUBR:
		m.Reg.Set(r2, m.Reg.Get(r2)-m.Reg.Get(r1))
	case OpMULR:
		m.Reg.Set(r2, m.Reg.Get(r1)*m.Reg.Get(r2))
	case OpDIVR:
		if m.Reg.Get(r1) == 0 {
			return ErrDivisionByZero
		}

		m.Reg.Set(r2, m.Reg.Get(r2)/m.Reg.Get(r1))
	case OpCOMPR:
		m.Reg.CmpVals(m.Reg.Get(r1), m.Reg.Get(r2))
	case OpSHIFTL:
		m.Reg.Set(r1, m.Reg.Get(r1)<<uint(r2))
	case OpSHIFTR:
		m.Reg.Set(r1, m.Reg.Get(r1)>>uint(r2))
	case OpRMO:
		m.Reg.Set(r2, m.Reg.Get(r1))
	case OpCLEAR:
		m.Reg.Set(r1, 0)
	case OpTIXR:
		m.Reg.IncX()
		m.Reg.CmpReg(X, m.Reg.Get(r1))
	case OpSVC:
		return ErrUnimplemented
	default:
		return &OpcodeError{Opcode: byte(ins.Opcode)}
	}

	return nil
}

func (m *Machine) execFormat34(ins Instruction) error {
	opcode := ins.Opcode

	// Store instructions use the effective address directly; every other
	// addressed instruction resolves an operand value through n/i.
	switch opcode {
	case OpSTA, OpSTX, OpSTL, OpSTCH, OpSTB, OpSTS, OpSTF, OpSTT, OpSTSW:
		ea := m.EffectiveAddress(ins)
		return m.execStore(opcode, ea)
	case OpRD, OpWD, OpTD:
		return m.execDevice(opcode, ins)
	}

	ea := m.EffectiveAddress(ins)

	switch opcode {
	case OpLDA:
		m.Reg.Set(A, m.OperandValue(ea, ins))
	case OpLDX:
		m.Reg.Set(X, m.OperandValue(ea, ins))
	case OpLDL:
		m.Reg.Set(L, m.OperandValue(ea, ins))
	case OpLDB:
		m.Reg.Set(B, m.OperandValue(ea, ins))
	case OpLDS:
		m.Reg.Set(S, m.OperandValue(ea, ins))
	case OpLDT:
		m.Reg.Set(T, m.OperandValue(ea, ins))
	case OpLDF:
		m.Reg.SetFloat(wordToFloat(m.OperandValue(ea, ins)))
	case OpLDCH:
		op := m.OperandValue(ea, ins)
		a := m.Reg.Get(A)
		m.Reg.Set(A, (a&0xFFFF00)|(op&0xFF))
	case OpADD:
		m.Reg.Set(A, m.Reg.Get(A)+m.OperandValue(ea, ins))
	case OpSUB:
		m.Reg.Set(A, m.Reg.Get(A)-m.OperandValue(ea, ins))
	case OpMUL:
		m.Reg.Set(A, m.Reg.Get(A)*m.OperandValue(ea, ins))
	case OpDIV:
		divisor := m.OperandValue(ea, ins)
		if divisor == 0 {
			return ErrDivisionByZero
		}

		m.Reg.Set(A, m.Reg.Get(A)/divisor)
	case OpCOMP:
		m.Reg.CmpReg(A, m.OperandValue(ea, ins))
	case OpADDF:
		m.Reg.SetFloat(m.Reg.GetFloat() + wordToFloat(m.OperandValue(ea, ins)))
	case OpSUBF:
		m.Reg.SetFloat(m.Reg.GetFloat() - wordToFloat(m.OperandValue(ea, ins)))
	case OpMULF:
		m.Reg.SetFloat(m.Reg.GetFloat() * wordToFloat(m.OperandValue(ea, ins)))
	case OpDIVF:
		divisor := wordToFloat(m.OperandValue(ea, ins))
		if divisor == 0 {
			return ErrDivisionByZero
		}

		m.Reg.SetFloat(m.Reg.GetFloat() / divisor)
	case OpCOMPF:
		a, op := m.Reg.GetFloat(), wordToFloat(m.OperandValue(ea, ins))
		m.Reg.CmpVals(floatOrder(a), floatOrder(op))
	case OpAND:
		m.Reg.Set(A, m.Reg.Get(A)&m.OperandValue(ea, ins))
	case OpOR:
		m.Reg.Set(A, m.Reg.Get(A)|m.OperandValue(ea, ins))
	case OpTIX:
		m.Reg.IncX()
		m.Reg.CmpReg(X, m.OperandValue(ea, ins))
	case OpJ:
		m.Reg.Set(PC, ea)
	case OpJEQ:
		if m.Reg.Get(SW) == CondEqual {
			m.Reg.Set(PC, ea)
		}
	case OpJGT:
		if m.Reg.Get(SW) == CondGreater {
			m.Reg.Set(PC, ea)
		}
	case OpJLT:
		if m.Reg.Get(SW) == CondLess {
			m.Reg.Set(PC, ea)
		}
	case OpJSUB:
		m.Reg.Set(L, m.Reg.Get(PC))
		m.Reg.Set(PC, ea)
	case OpRSUB:
		m.Reg.Set(PC, m.Reg.Get(L))
	case OpLPS, OpSTI, OpSSK:
		return ErrUnimplemented
	default:
		return &OpcodeError{Opcode: byte(opcode)}
	}

	return nil
}

func (m *Machine) execStore(opcode Opcode, ea Word) error {
	switch opcode {
	case OpSTA:
		m.Mem.WriteWord(ea, m.Reg.Get(A))
	case OpSTX:
		m.Mem.WriteWord(ea, m.Reg.Get(X))
	case OpSTL:
		m.Mem.WriteWord(ea, m.Reg.Get(L))
	case OpSTB:
		m.Mem.WriteWord(ea, m.Reg.Get(B))
	case OpSTS:
		m.Mem.WriteWord(ea, m.Reg.Get(S))
	case OpSTF:
		m.Mem.WriteFloat(ea, m.Reg.GetFloat())
	case OpSTT:
		m.Mem.WriteWord(ea, m.Reg.Get(T))
	case OpSTSW:
		m.Mem.WriteWord(ea, m.Reg.Get(SW))
	case OpSTCH:
		m.Mem.WriteByte(ea, byte(m.Reg.Get(A)))
	default:
		return &OpcodeError{Opcode: byte(opcode)}
	}

	return nil
}

// execDevice runs the three device instructions. Per spec §4.5, the device
// operand names a byte address holding the device id, not a dereferenced
// operand value.
func (m *Machine) execDevice(opcode Opcode, ins Instruction) error {
	devAddr := m.DeviceAddress(ins)
	id := m.Mem.ReadByte(devAddr)

	dev, err := m.Dev.Get(id)
	if err != nil {
		return err
	}

	switch opcode {
	case OpRD:
		m.Reg.Set(A, Word(dev.Read()))
	case OpWD:
		dev.Write(byte(m.Reg.Get(A)))
	case OpTD:
		if dev.Test() {
			m.Reg.Set(SW, CondEqual)
		} else {
			m.Reg.Set(SW, CondGreater)
		}
	default:
		return &OpcodeError{Opcode: byte(opcode)}
	}

	return nil
}

// floatOrder maps a float to an orderable word for CmpVals, since SW's
// three-way comparison is defined over Word, not float32.
func floatOrder(f float32) Word {
	bits := math.Float32bits(f)
	if bits&0x80000000 != 0 {
		return Word(^bits)
	}

	return Word(bits | 0x80000000)
}
