package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeviceTable_StandardStreamsReserved(t *testing.T) {
	t.Parallel()

	dt := NewDeviceTable(t.TempDir())

	for _, id := range []byte{DeviceStdin, DeviceStdout, DeviceStderr} {
		dev, err := dt.Get(id)
		if err != nil {
			t.Fatalf("Get(%#02x): %s", id, err)
		}

		if _, ok := dev.(*streamDevice); !ok {
			t.Errorf("Get(%#02x) = %T, want *streamDevice", id, dev)
		}
	}
}

func TestDeviceTable_LazyFileDevice(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dt := NewDeviceTable(dir)

	dev, err := dt.Get(0x10)
	if err != nil {
		t.Fatalf("Get(0x10): %s", err)
	}

	want := filepath.Join(dir, "10.dev")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected device file %s to exist: %s", want, err)
	}

	again, err := dt.Get(0x10)
	if err != nil {
		t.Fatalf("Get(0x10) again: %s", err)
	}

	if dev != again {
		t.Error("two Get(0x10) calls returned different handles, want the same one")
	}
}

func TestDeviceTable_FileDeviceUppercaseHex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dt := NewDeviceTable(dir)

	if _, err := dt.Get(0xAB); err != nil {
		t.Fatalf("Get(0xAB): %s", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "AB.dev")); err != nil {
		t.Errorf("expected AB.dev to exist: %s", err)
	}
}

func TestDeviceTable_WriteThenTest(t *testing.T) {
	t.Parallel()

	dt := NewDeviceTable(t.TempDir())

	dev, err := dt.Get(0x20)
	if err != nil {
		t.Fatalf("Get(0x20): %s", err)
	}

	dev.Write('Q')

	if !dev.Test() {
		t.Error("Test() = false, want true for a file-backed device")
	}
}

func TestDeviceTable_Reset(t *testing.T) {
	t.Parallel()

	dt := NewDeviceTable(t.TempDir())

	before, _ := dt.Get(DeviceStdout)
	dt.Reset()
	after, _ := dt.Get(DeviceStdout)

	if before == after {
		t.Error("Reset() should reinstall standard streams")
	}

	if _, err := dt.Get(DeviceStdout); err != nil {
		t.Errorf("Get(DeviceStdout) after Reset: %s", err)
	}
}
