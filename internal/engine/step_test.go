package engine

import (
	"strings"
	"testing"
	"time"
)

func TestDriver_StepExecutesOne(t *testing.T) {
	t.Parallel()

	d := NewDriver()
	load(d.Machine(), 0, 0xB4, 0x10) // CLEAR X
	d.Machine().Reg.Set(PC, 0)

	if err := d.Step(); err != nil {
		t.Fatalf("Step: %s", err)
	}

	if got := d.Machine().Reg.Get(PC); got != 2 {
		t.Errorf("PC after Step = %s, want 2", got)
	}
}

func TestDriver_TryStepRespectsFrequency(t *testing.T) {
	t.Parallel()

	d := NewDriver(WithFrequency(1)) // one instruction per second
	load(d.Machine(), 0, 0xB4, 0x10, 0xB4, 0x10)
	d.Machine().Reg.Set(PC, 0)
	d.Start()

	if err := d.TryStep(); err != nil {
		t.Fatalf("first TryStep: %s", err)
	}

	if got := d.Machine().Reg.Get(PC); got != 2 {
		t.Errorf("PC after first TryStep = %s, want 2", got)
	}

	if err := d.TryStep(); err != nil {
		t.Fatalf("second TryStep: %s", err)
	}

	if got := d.Machine().Reg.Get(PC); got != 2 {
		t.Errorf("PC after immediate second TryStep = %s, want unchanged 2", got)
	}
}

func TestDriver_TryStepNoopWhenStopped(t *testing.T) {
	t.Parallel()

	d := NewDriver()
	load(d.Machine(), 0, 0xB4, 0x10)
	d.Machine().Reg.Set(PC, 0)

	if err := d.TryStep(); err != nil {
		t.Fatalf("TryStep: %s", err)
	}

	if got := d.Machine().Reg.Get(PC); got != 0 {
		t.Errorf("PC = %s, want unchanged 0 while stopped", got)
	}
}

func TestDriver_LoadFile(t *testing.T) {
	t.Parallel()

	obj := "HPROG  000000000000\nE000100\n"

	d := NewDriver()
	if err := d.LoadFile(strings.NewReader(obj)); err != nil {
		t.Fatalf("LoadFile: %s", err)
	}

	if got := d.Machine().Reg.Get(PC); got != 0x100 {
		t.Errorf("PC = %s, want 000100", got)
	}
}

func TestDriver_StartStop(t *testing.T) {
	t.Parallel()

	d := NewDriver()
	if d.IsRunning() {
		t.Fatal("new driver should not be running")
	}

	d.Start()

	if !d.IsRunning() {
		t.Fatal("expected running after Start")
	}

	d.Stop()

	if d.IsRunning() {
		t.Fatal("expected stopped after Stop")
	}
}

// sanity check the zero-frequency (unthrottled) path executes every call.
func TestDriver_Unthrottled(t *testing.T) {
	t.Parallel()

	d := NewDriver(WithFrequency(0))
	load(d.Machine(), 0, 0xB4, 0x10, 0xB4, 0x10)
	d.Machine().Reg.Set(PC, 0)
	d.Start()

	start := time.Now()

	if err := d.TryStep(); err != nil {
		t.Fatalf("TryStep: %s", err)
	}

	if err := d.TryStep(); err != nil {
		t.Fatalf("TryStep: %s", err)
	}

	if time.Since(start) > time.Second {
		t.Fatal("unthrottled steps took too long")
	}

	if got := d.Machine().Reg.Get(PC); got != 4 {
		t.Errorf("PC = %s, want 4", got)
	}
}
