// Package portrunner exercises and validates serial port traffic.
//
// It repeatedly transmits a fixed byte pattern on one serial port and
// verifies on a second port that the same pattern arrives intact and in
// order, even though the two streams share no framing or synchronization
// markers. The receive side continuously re-aligns an unbounded incoming
// byte stream against the repeating pattern at an arbitrary phase offset,
// tolerating reads of any size and boundary.
//
// # Basic Usage
//
// Open both sides of the link, load a pattern, and run:
//
//	tx, err := portrunner.Open("/dev/ttyUSB0",
//	    portrunner.WithDirection(portrunner.DirectionTransmit),
//	    portrunner.WithBaudRate(115200),
//	)
//	rx, err := portrunner.Open("/dev/ttyUSB1",
//	    portrunner.WithBaudRate(115200),
//	)
//
//	pattern, err := portrunner.LoadPattern("pattern.bin")
//
//	runner, err := portrunner.NewRunner(pattern, tx, rx,
//	    portrunner.WithDelay(10*time.Millisecond),
//	)
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	stats := runner.Run(ctx)
//	fmt.Printf("sent %d, good %d, miscompares %d\n",
//	    stats.Sends, stats.Good, stats.Miscompares)
//
// # Compare Semantics
//
// The comparer checks every received chunk byte-for-byte against the
// pattern window at its current phase offset, wrapping modulo the pattern
// length. A fully matched pattern cycle counts as one good compare. A chunk
// with any bad byte counts as exactly one miscompare and resets the offset
// to zero; the comparer does not search for the true resync point.
//
// # Baud Rates
//
// Rates are named by their termios constants, B50 through B4000000, and
// resolved with LookupBaudRate. Matching is case-insensitive but requires
// the full name.
//
// # Error Handling
//
// Fatal configuration and resource errors use sentinel error values:
//
//	var (
//	    ErrInvalidBaudRate  // unknown rate name
//	    ErrMissingBaudRate  // neither device specified a rate
//	    ErrBaudRateMismatch // devices specified different rates
//	    ErrEmptyPattern     // pattern file has no bytes
//	    // ... and more
//	)
//
// Use errors.Is() for error type checking. Transient I/O errors during a
// run are logged and tolerated; the loops stop only on cancellation.
//
// # Platform Support
//
// Linux only. Ports are configured raw (non-canonical, echo off, signals
// off, output unprocessed, no modem control) via termios.
package portrunner
