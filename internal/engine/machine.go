package engine

// machine.go assembles the register file, memory and device table into the
// Machine, and handles its reset/lifecycle, per spec §3.

import (
	"github.com/smoynes/sicxe/internal/log"
)

// Machine is the simulated SIC/XE computer: registers, memory, and devices.
type Machine struct {
	Reg RegisterFile
	Mem *Memory
	Dev *DeviceTable

	deviceDir string
	log       *log.Logger
}

// OptionFn configures a Machine at construction, following the same shape as
// the teacher's device/listener options: a function applied once the machine
// exists.
type OptionFn func(m *Machine)

// WithDeviceDir configures the directory file-backed devices are created in.
// The default is the process's working directory.
func WithDeviceDir(dir string) OptionFn {
	return func(m *Machine) {
		m.deviceDir = dir
	}
}

// NewMachine creates an empty Machine: registers zeroed, memory empty, the
// three standard devices installed.
func NewMachine(opts ...OptionFn) *Machine {
	m := &Machine{
		log: log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.Mem = NewMemory()
	m.Dev = NewDeviceTable(m.deviceDir)

	return m
}

// Reset zeros registers, clears memory, and clears the device table
// (reinstalling the standard streams), per spec §3.
func (m *Machine) Reset() {
	m.Reg = RegisterFile{}
	m.Mem.Reset()
	m.Dev.Reset()
}

// GetReg is a read-only accessor for the UI surface named in spec §6.
func (m *Machine) GetReg(r Register) Word {
	return m.Reg.Get(r)
}

// ReadByte is a read-only accessor for the UI surface named in spec §6.
func (m *Machine) ReadByte(addr Word) byte {
	return m.Mem.ReadByte(addr)
}
