package engine

// addr.go computes the effective address and operand value of a Format 3/4
// instruction from its flag bits, per spec §4.5.

// EffectiveAddress computes the memory address a Format 3/4 instruction
// refers to, applying base-relative, PC-relative, or direct addressing (in
// that priority), and then adds X whenever x=1, on every addressing mode
// (see spec §9 open question 1; honoured here as in the SIC/XE architecture
// manual).
func (m *Machine) EffectiveAddress(ins Instruction) Word {
	var ea Word

	switch {
	case ins.Flags.has(FlagB):
		// Base-relative: the displacement is an unsigned offset from B. The
		// spec takes this as authoritative over a signed-byte reading some
		// reference implementations use; see spec §9.
		ea = m.Reg.Get(B) + ins.Address
	case ins.Flags.has(FlagP):
		// PC-relative: sign-extend the displacement (12 or 20 bits) and add
		// to PC, which has already advanced past this instruction.
		bits := 12
		if ins.Extended() {
			bits = 20
		}

		ea = m.Reg.Get(PC) + signExtend(ins.Address, bits)
	default:
		ea = ins.Address
	}

	if ins.Flags.has(FlagX) {
		ea += m.Reg.Get(X)
	}

	return ea & MaxAddress
}

// signExtend sign-extends the low `bits` bits of v, treated as a word-sized
// two's-complement value.
func signExtend(v Word, bits int) Word {
	mask := Word(1) << (bits - 1)
	v &= (Word(1) << bits) - 1

	if v&mask != 0 {
		v |= ^((Word(1) << bits) - 1)
	}

	return v & 0x00FFFFFF
}

// OperandValue resolves the value an instruction reads, applying the n/i
// addressing flags to an already-computed effective address, per spec §4.5:
//
//   - n=0 i=1 (immediate): the operand IS the effective address.
//   - n=1 i=0 (indirect): dereference twice.
//   - otherwise (simple): read the word at the effective address.
//
// Store instructions use the effective address directly and never call this.
func (m *Machine) OperandValue(ea Word, ins Instruction) Word {
	n, i := ins.Flags.has(FlagN), ins.Flags.has(FlagI)

	switch {
	case !n && i:
		return ea
	case n && !i:
		ptr := m.Mem.ReadWord(ea)
		return m.Mem.ReadWord(ptr)
	default:
		return m.Mem.ReadWord(ea)
	}
}

// DeviceAddress re-merges the flag bits into the displacement to recover the
// byte address at which a device instruction's device id is stored. Device
// instructions (RD, WD, TD) encode their operand the SIC way -- as a memory
// byte, not an addressing-mode value -- so the n/i/x/b/p/e split that applies
// to every other Format 3/4 instruction doesn't apply here; per spec §4.5.
func (m *Machine) DeviceAddress(ins Instruction) Word {
	return Word(ins.Flags)<<6 | ins.Address
}
