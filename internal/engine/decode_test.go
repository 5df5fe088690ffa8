package engine

import "testing"

func load(m *Machine, addr Word, bytes ...byte) {
	for i, b := range bytes {
		m.Mem.WriteByte(addr+Word(i), b)
	}
}

func TestDecode_Format1(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	load(m, 0, byte(OpFLOAT))
	m.Reg.Set(PC, 0)

	ins, err := m.Decode()
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if ins.Format != 1 {
		t.Errorf("Format = %d, want 1", ins.Format)
	}

	if ins.Opcode != OpFLOAT {
		t.Errorf("Opcode = %#02x, want %#02x", byte(ins.Opcode), byte(OpFLOAT))
	}

	if got := m.Reg.Get(PC); got != 1 {
		t.Errorf("PC after decode = %s, want 1", got)
	}
}

func TestDecode_Format2(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	load(m, 0, byte(OpCLEAR), 0x10) // CLEAR X (r1=1, r2=0)
	m.Reg.Set(PC, 0)

	ins, err := m.Decode()
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if ins.Format != 2 {
		t.Errorf("Format = %d, want 2", ins.Format)
	}

	if ins.R1 != X {
		t.Errorf("R1 = %s, want X", ins.R1)
	}

	if got := m.Reg.Get(PC); got != 2 {
		t.Errorf("PC after decode = %s, want 2", got)
	}
}

func TestDecode_Format3(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	// LDA immediate 0: opcode 0x00, n=0 i=1 -> first byte 0x01; flags byte
	// with i=1 simple (no x/b/p/e); displacement 0.
	load(m, 0, 0x01, 0x00, 0x00)
	m.Reg.Set(PC, 0)

	ins, err := m.Decode()
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if ins.Format != 3 {
		t.Errorf("Format = %d, want 3", ins.Format)
	}

	if ins.Opcode != OpLDA {
		t.Errorf("Opcode = %#02x, want LDA", byte(ins.Opcode))
	}

	if !ins.Flags.has(FlagI) {
		t.Error("expected i flag set")
	}

	if got := m.Reg.Get(PC); got != 3 {
		t.Errorf("PC after decode = %s, want 3", got)
	}
}

func TestDecode_Format4_Extended(t *testing.T) {
	t.Parallel()

	// LDA #0x0, format 4: first byte 0x01, second byte high nibble has e set
	// (0x1), low nibble 0, then two more bytes of displacement.
	m := NewMachine()
	load(m, 0, 0x01, 0x10, 0x00, 0x00)
	m.Reg.Set(PC, 0)

	ins, err := m.Decode()
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if !ins.Extended() {
		t.Error("expected extended (format 4) instruction")
	}

	if got := m.Reg.Get(PC); got != 4 {
		t.Errorf("PC after decode = %s, want 4", got)
	}
}

func TestDecode_UnrecognizedByte(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	load(m, 0, 0x8C) // not in any documented range
	m.Reg.Set(PC, 0)

	_, err := m.Decode()
	if err == nil {
		t.Fatal("expected DecodeError")
	}

	var decErr *DecodeError
	if !asDecodeError(err, &decErr) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}

	if decErr.PC != 0 {
		t.Errorf("DecodeError.PC = %s, want 0", decErr.PC)
	}
}

func asDecodeError(err error, target **DecodeError) bool {
	if de, ok := err.(*DecodeError); ok {
		*target = de
		return true
	}

	return false
}
