package engine

// step.go is the step driver: it orchestrates fetch/decode/execute and
// offers an optional wall-clock rate limit, per spec §4.7.

import (
	"io"
	"time"

	"github.com/smoynes/sicxe/internal/log"
)

// DefaultFrequency is one instruction per microsecond (1 MHz), per spec
// §4.7.
const DefaultFrequency = 1_000_000

// Driver orchestrates stepping a Machine, optionally throttled to a
// configured instruction frequency. It is the surface a UI observes (spec
// §6): NewDriver, LoadFile, Start, Stop, IsRunning, TryStep, Machine.
type Driver struct {
	machine   *Machine
	loader    *Loader
	running   bool
	frequency uint64 // instructions per second; 0 disables throttling
	period    time.Duration
	lastStep  time.Time
	log       *log.Logger
}

// DriverOptionFn configures a Driver at construction.
type DriverOptionFn func(d *Driver)

// WithFrequency sets the advisory instruction rate TryStep honours. A
// frequency of 0 disables throttling entirely.
func WithFrequency(hz uint64) DriverOptionFn {
	return func(d *Driver) {
		d.frequency = hz
		if hz > 0 {
			d.period = time.Second / time.Duration(hz)
		} else {
			d.period = 0
		}
	}
}

// WithDevices configures the directory the driver's machine creates
// file-backed devices in. It must be passed before any option that reads the
// machine, since it replaces the machine outright.
func WithDevices(dir string) DriverOptionFn {
	return func(d *Driver) {
		d.machine = NewMachine(WithDeviceDir(dir))
	}
}

// NewDriver creates a step driver around a fresh Machine.
func NewDriver(opts ...DriverOptionFn) *Driver {
	d := &Driver{
		machine:   NewMachine(),
		frequency: DefaultFrequency,
		log:       log.DefaultLogger(),
	}
	d.period = time.Second / time.Duration(d.frequency)

	for _, opt := range opts {
		opt(d)
	}

	d.loader = NewLoader(d.machine)

	return d
}

// LoadFile parses src as an object program and loads it into the driver's
// machine, per the surface named in spec §6.
func (d *Driver) LoadFile(src io.Reader) error {
	return d.loader.Load(src)
}

// Start marks the driver as running.
func (d *Driver) Start() {
	d.running = true
	d.lastStep = time.Time{}
}

// Stop marks the driver as stopped. In-flight instructions cannot be
// cancelled mid-execution; this only prevents the next step, per spec §5.
func (d *Driver) Stop() {
	d.running = false
}

// IsRunning reports whether the driver is running.
func (d *Driver) IsRunning() bool {
	return d.running
}

// Machine returns the underlying machine for inspection.
func (d *Driver) Machine() *Machine {
	return d.machine
}

// TryStep performs a single fetch-decode-execute cycle if enough wall-clock
// time has elapsed since the last step to honour the configured frequency.
// It is cheap to call and returns nil without executing if not yet due.
func (d *Driver) TryStep() error {
	if !d.running {
		return nil
	}

	if d.period > 0 && !d.lastStep.IsZero() && time.Since(d.lastStep) < d.period {
		return nil
	}

	d.lastStep = time.Now()

	return d.Step()
}

// Step always executes a single fetch-decode-execute cycle, regardless of
// frequency throttling, for single-step debugging.
func (d *Driver) Step() error {
	ins, err := d.machine.Decode()
	if err != nil {
		return err
	}

	if err := d.machine.Execute(ins); err != nil {
		d.log.Error("step failed", "ins", ins, "err", err)
		return err
	}

	return nil
}
