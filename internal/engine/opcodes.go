package engine

// opcodes.go lists the SIC/XE mnemonic opcode values the execute dispatcher
// is keyed by, per spec §4.6.

const (
	// Format 3/4.
	OpLDA   Opcode = 0x00
	OpLDX   Opcode = 0x04
	OpLDL   Opcode = 0x08
	OpSTA   Opcode = 0x0C
	OpSTX   Opcode = 0x10
	OpSTL   Opcode = 0x14
	OpADD   Opcode = 0x18
	OpSUB   Opcode = 0x1C
	OpMUL   Opcode = 0x20
	OpDIV   Opcode = 0x24
	OpCOMP  Opcode = 0x28
	OpTIX   Opcode = 0x2C
	OpJEQ   Opcode = 0x30
	OpJGT   Opcode = 0x34
	OpJLT   Opcode = 0x38
	OpJ     Opcode = 0x3C
	OpAND   Opcode = 0x40
	OpOR    Opcode = 0x44
	OpJSUB  Opcode = 0x48
	OpRSUB  Opcode = 0x4C
	OpLDCH  Opcode = 0x50
	OpSTCH  Opcode = 0x54
	OpADDF  Opcode = 0x58
	OpSUBF  Opcode = 0x5C
	OpMULF  Opcode = 0x60
	OpDIVF  Opcode = 0x64
	OpLDB   Opcode = 0x68
	OpLDS   Opcode = 0x6C
	OpLDF   Opcode = 0x70
	OpLDT   Opcode = 0x74
	OpSTB   Opcode = 0x78
	OpSTS   Opcode = 0x7C
	OpSTF   Opcode = 0x80
	OpSTT   Opcode = 0x84
	OpCOMPF Opcode = 0x88
	OpLPS   Opcode = 0xD0
	OpSTI   Opcode = 0xD4
	OpRD    Opcode = 0xD8
	OpWD    Opcode = 0xDC
	OpTD    Opcode = 0xE0
	OpSTSW  Opcode = 0xE8
	OpSSK   Opcode = 0xEC

	// Format 2.
	OpADDR   Opcode = 0x90
	OpSUBR   Opcode = 0x94
	OpMULR   Opcode = 0x98
	OpDIVR   Opcode = 0x9C
	OpCOMPR  Opcode = 0xA0
	OpSHIFTL Opcode = 0xA4
	OpSHIFTR Opcode = 0xA8
	OpRMO    Opcode = 0xAC
	OpSVC    Opcode = 0xB0
	OpCLEAR  Opcode = 0xB4
	OpTIXR   Opcode = 0xB8

	// Format 1.
	OpFLOAT Opcode = 0xC0
	OpFIX   Opcode = 0xC4
	OpNORM  Opcode = 0xC8
	OpSIO   Opcode = 0xF0
	OpHIO   Opcode = 0xF4
	OpTIO   Opcode = 0xF8
)
