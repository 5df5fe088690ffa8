package engine

// decode.go fetches bytes from PC and classifies the opcode into Format 1,
// 2, or 3/4, per spec §4.4.

// Fetch returns the byte at PC and post-increments PC.
func (m *Machine) Fetch() byte {
	pc := m.Reg.Get(PC)
	b := m.Mem.ReadByte(pc)
	m.Reg.Set(PC, pc+1)

	return b
}

// Decode fetches and classifies the next instruction, consuming as many
// additional bytes as its format requires.
func (m *Machine) Decode() (Instruction, error) {
	pc := m.Reg.Get(PC)
	first := m.Fetch()

	switch {
	case inRange(first, 0xC0, 0xC8), inRange(first, 0xF0, 0xF8):
		return Instruction{Format: 1, Opcode: Opcode(first)}, nil

	case inRange(first, 0x90, 0xB8):
		b2 := m.Fetch()

		return Instruction{
			Format: 2,
			Opcode: Opcode(first),
			R1:     Register(b2 >> 4),
			R2:     Register(b2 & 0x0F),
		}, nil

	case inRange(first, 0x00, 0x88), inRange(first, 0xD0, 0xE0):
		return m.decodeFormat34(first)

	default:
		return Instruction{}, &DecodeError{PC: pc, Byte: first}
	}
}

func inRange(b byte, lo, hi byte) bool {
	return b >= lo && b <= hi
}

// decodeFormat34 consumes the flag/displacement bytes of a Format 3 or 4
// instruction. The opcode proper is first&0xFC; the low two bits of first
// are the n/i addressing flags and are merged with the x/b/p/e nibble from
// the second byte into the 6-bit flag field n i x b p e.
func (m *Machine) decodeFormat34(first byte) (Instruction, error) {
	opcode := Opcode(first & 0xFC)
	ni := Flags((first & 0x03) << 4) // n,i land in bits 5,4 of the flag field

	b2 := m.Fetch()
	xbpe := Flags(b2 & 0xF0 >> 4) // x b p e in the upper nibble of b2
	flags := ni | xbpe

	disp12 := Word(b2&0x0F) << 8

	b3 := m.Fetch()
	disp12 |= Word(b3)

	if flags.has(FlagE) {
		b4 := m.Fetch()
		disp20 := disp12<<8 | Word(b4)

		return Instruction{Format: 3, Opcode: opcode, Address: disp20, Flags: flags}, nil
	}

	return Instruction{Format: 3, Opcode: opcode, Address: disp12, Flags: flags}, nil
}
