/*
Package engine implements the execution core of a SIC/XE simulator: the
register file and memory, the device table, the object-program loader, the
instruction decoder, the Format-3/4 addressing resolver, and the
fetch-decode-execute step driver.

# Registers and memory

The machine has nine named 24-bit registers (A, X, L, B, S, T, F, PC, SW) and
a flat, sparsely-backed, byte-addressable memory spanning 0x000000 to
0xFFFFFF. Words are 24 bits, stored big-endian.

# Devices

An 8-bit device table maps ids to I/O endpoints. Ids 0, 1, and 2 are the
standard streams, installed at reset; any other id lazily creates a
file-backed device on first reference.

# Instruction cycle

A Driver repeatedly asks a Machine to Decode an instruction from PC, then
Executes it. Decode classifies the fetched opcode into Format 1 (one byte),
Format 2 (register-register), or Format 3/4 (addressed), consuming as many
additional bytes as the format requires. Execute is a dispatcher keyed by
opcode, with one case per mnemonic.

This package does not implement a terminal UI, wall-clock throttling policy
beyond an advisory frequency, or a process entry point; those are external
collaborators that observe a Machine and a Driver through their exported
accessors.
*/
package engine
