package portrunner

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOpenMissingDevicePath(t *testing.T) {
	_, err := Open("")
	if !errors.Is(err, ErrMissingDevice) {
		t.Errorf("Open(\"\") error = %v, want ErrMissingDevice", err)
	}
}

func TestOpenNonexistentDevice(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "ttyNOPE"))
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Open of nonexistent device error = %v, want ErrDeviceNotFound", err)
	}
}

func TestOpenRejectsBadOptions(t *testing.T) {
	// Option validation fails before any file is touched.
	_, err := Open("/dev/null", WithBaudRate(12345))
	if !errors.Is(err, ErrInvalidBaudRate) {
		t.Errorf("Open with bad baud error = %v, want ErrInvalidBaudRate", err)
	}

	_, err = Open("/dev/null", WithReadTimeout(-1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Open with bad timeout error = %v, want ErrInvalidConfig", err)
	}
}

func TestOpenNonTTY(t *testing.T) {
	// A regular character device is not a terminal; termios setup fails
	// and the descriptor must not leak an open port.
	_, err := Open("/dev/null")
	if err == nil {
		t.Fatal("Open(/dev/null) should fail termios configuration")
	}
}
