package portrunner

// Direction selects which side of the link a port serves
type Direction int

const (
	DirectionReceive  Direction = iota // read-only, blocking with VTIME
	DirectionTransmit                  // write-only, non-blocking
)

// Config holds the configuration for a serial port
type Config struct {
	BaudRate          int
	Direction         Direction
	ReadTimeoutTenths int // VTIME setting in tenths of seconds (0-255)
}

// Option is a functional option for configuring a serial port
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaudRate:          115200,
		Direction:         DirectionReceive,
		ReadTimeoutTenths: 2, // 200ms wait per read before returning empty
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if _, err := getBaudRate(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithDirection sets whether the port is opened for transmit or receive
func WithDirection(dir Direction) Option {
	return func(c *Config) error {
		if dir != DirectionReceive && dir != DirectionTransmit {
			return ErrInvalidConfig
		}
		c.Direction = dir
		return nil
	}
}

// WithReadTimeout sets the read timeout in tenths of seconds (VTIME)
func WithReadTimeout(tenths int) Option {
	return func(c *Config) error {
		if tenths < 0 || tenths > 255 {
			return ErrInvalidConfig
		}
		c.ReadTimeoutTenths = tenths
		return nil
	}
}
