package portrunner

import (
	"strings"

	"golang.org/x/sys/unix"
)

// baudRates maps the canonical termios rate names to their numeric rates.
// The set matches the standard Bxx constants from B50 through B4000000.
var baudRates = map[string]int{
	"B50":      50,
	"B75":      75,
	"B110":     110,
	"B134":     134,
	"B150":     150,
	"B200":     200,
	"B300":     300,
	"B600":     600,
	"B1200":    1200,
	"B1800":    1800,
	"B2400":    2400,
	"B4800":    4800,
	"B9600":    9600,
	"B19200":   19200,
	"B38400":   38400,
	"B57600":   57600,
	"B115200":  115200,
	"B230400":  230400,
	"B460800":  460800,
	"B500000":  500000,
	"B576000":  576000,
	"B921600":  921600,
	"B1000000": 1000000,
	"B1152000": 1152000,
	"B1500000": 1500000,
	"B2000000": 2000000,
	"B2500000": 2500000,
	"B3000000": 3000000,
	"B3500000": 3500000,
	"B4000000": 4000000,
}

// LookupBaudRate resolves a rate name like "B115200" to its numeric rate.
// Matching is case-insensitive but requires the full name; a bare prefix
// such as "B1" is rejected rather than matched against B110.
func LookupBaudRate(name string) (int, error) {
	rate, ok := baudRates[strings.ToUpper(name)]
	if !ok {
		return 0, ErrInvalidBaudRate
	}
	return rate, nil
}

// getBaudRate converts an integer baud rate to the unix constant
func getBaudRate(rate int) (uint32, error) {
	switch rate {
	case 50:
		return unix.B50, nil
	case 75:
		return unix.B75, nil
	case 110:
		return unix.B110, nil
	case 134:
		return unix.B134, nil
	case 150:
		return unix.B150, nil
	case 200:
		return unix.B200, nil
	case 300:
		return unix.B300, nil
	case 600:
		return unix.B600, nil
	case 1200:
		return unix.B1200, nil
	case 1800:
		return unix.B1800, nil
	case 2400:
		return unix.B2400, nil
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	case 230400:
		return unix.B230400, nil
	case 460800:
		return unix.B460800, nil
	case 500000:
		return unix.B500000, nil
	case 576000:
		return unix.B576000, nil
	case 921600:
		return unix.B921600, nil
	case 1000000:
		return unix.B1000000, nil
	case 1152000:
		return unix.B1152000, nil
	case 1500000:
		return unix.B1500000, nil
	case 2000000:
		return unix.B2000000, nil
	case 2500000:
		return unix.B2500000, nil
	case 3000000:
		return unix.B3000000, nil
	case 3500000:
		return unix.B3500000, nil
	case 4000000:
		return unix.B4000000, nil
	default:
		return 0, ErrInvalidBaudRate
	}
}

// BaudRateNames returns the canonical rate names in ascending rate order,
// mainly for usage text and error messages.
func BaudRateNames() []string {
	names := []string{
		"B50", "B75", "B110", "B134", "B150", "B200", "B300", "B600",
		"B1200", "B1800", "B2400", "B4800", "B9600", "B19200", "B38400",
		"B57600", "B115200", "B230400", "B460800", "B500000", "B576000",
		"B921600", "B1000000", "B1152000", "B1500000", "B2000000",
		"B2500000", "B3000000", "B3500000", "B4000000",
	}
	return names
}
