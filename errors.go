package portrunner

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrMissingDevice    = errors.New("device filename was not provided")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrMissingBaudRate  = errors.New("no baud rate specified for either device")
	ErrBaudRateMismatch = errors.New("differing transmit and receive baud rates are not supported")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
	ErrPortClosed       = errors.New("serial port is closed")

	// Pattern file errors, one per load step
	ErrPatternOpen  = errors.New("could not open data file")
	ErrPatternStat  = errors.New("could not stat data file")
	ErrPatternRead  = errors.New("could not read data file")
	ErrEmptyPattern = errors.New("data file is empty")
)
