package portrunner

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Port represents one side of the serial link under test
type Port interface {
	Close() error
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)

	// SetNonblock toggles O_NONBLOCK on the underlying descriptor. The
	// stop path uses it to unpark a blocking read that would otherwise
	// wait for bytes that may never arrive.
	SetNonblock(nonblock bool) error

	Drain() error
	FlushInput() error
	FlushOutput() error
}

// port is the concrete implementation of the Port interface
type port struct {
	mu     sync.RWMutex
	fd     int
	config Config
	closed bool
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

// Open opens a serial port with the given device path and options.
//
// Receive ports are opened read-only and blocking; reads wait up to the
// configured VTIME before returning empty. Transmit ports are opened
// write-only and non-blocking. Both are configured raw: non-canonical,
// echo off, signals off, output unprocessed, modem control ignored.
func Open(device string, opts ...Option) (Port, error) {
	if device == "" {
		return nil, ErrMissingDevice
	}

	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	flags := unix.O_RDONLY | unix.O_NOCTTY
	if config.Direction == DirectionTransmit {
		flags = unix.O_WRONLY | unix.O_NOCTTY | unix.O_NONBLOCK
	}

	fd, err := unix.Open(device, flags, 0)
	if err != nil {
		switch {
		case errors.Is(err, unix.ENOENT):
			return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, device)
		case errors.Is(err, unix.EACCES):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, device)
		}
		return nil, fmt.Errorf("failed to open %s: %v", device, err)
	}

	if err := configurePort(fd, config); err != nil {
		unix.Close(fd)
		return nil, err
	}

	return &port{
		fd:     fd,
		config: config,
	}, nil
}

// configurePort configures the serial port using clean unix package calls
func configurePort(fd int, config Config) error {
	// Get current termios settings
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get termios: %v", err)
	}

	// Raw mode, 8N1, no modem control
	termios.Cflag = unix.CS8 | unix.CREAD | unix.CLOCAL
	termios.Iflag = 0 // No input processing
	termios.Oflag = 0 // No output processing
	termios.Lflag = 0 // No line processing (raw mode)

	// Reads return as soon as data arrives, or empty after VTIME
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = uint8(config.ReadTimeoutTenths)

	baudRate, err := getBaudRate(config.BaudRate)
	if err != nil {
		return err
	}

	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | baudRate
	termios.Ispeed = baudRate
	termios.Ospeed = baudRate

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("failed to set termios: %v", err)
	}

	return nil
}

// Close closes the serial port
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	err := unix.Close(p.fd)
	p.closed = true
	return err
}

// Read reads data from the serial port
func (p *port) Read(buf []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	n, err := unix.Read(p.fd, buf)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Write writes data to the serial port
func (p *port) Write(data []byte) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	n, err := unix.Write(p.fd, data)
	if n < 0 {
		n = 0
	}
	return n, err
}

// SetNonblock toggles O_NONBLOCK on the descriptor
func (p *port) SetNonblock(nonblock bool) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.SetNonblock(p.fd, nonblock)
}

// Drain waits until all output written to the port has been transmitted
func (p *port) Drain() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCSBRK, 1)
}

// FlushInput discards any unread input data
func (p *port) FlushInput() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCIFLUSH)
}

// FlushOutput discards any unwritten output data
func (p *port) FlushOutput() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TCFLSH, unix.TCOFLUSH)
}
