package portrunner

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// TransmitPort is the minimal surface the transmit loop needs.
type TransmitPort interface {
	io.WriteCloser
}

// ReceivePort is the minimal surface the receive loop needs. SetNonblock is
// invoked on shutdown so a read parked inside the kernel returns instead of
// waiting for bytes that may never arrive.
type ReceivePort interface {
	io.ReadCloser
	SetNonblock(nonblock bool) error
}

// EventKind identifies a progress event emitted by the runner loops.
type EventKind int

const (
	EventSend        EventKind = iota // one full pattern handed to the transmit port
	EventGoodCompare                  // a received chunk matched the pattern
	EventMiscompare                   // a received chunk failed to match
	EventIOError                      // a tolerated read or write error
)

// Event is a single progress notification. Events are emitted synchronously
// from the loop goroutines; handlers must not block.
type Event struct {
	Kind EventKind
	Err  error
}

// Stats holds the merged counters from a completed run.
type Stats struct {
	Sends       uint64
	Good        uint64
	Miscompares uint64
}

// DefaultChunkSize is the receive buffer size: the largest read the receive
// loop hands to the comparer in one call.
const DefaultChunkSize = 100

// Runner drives traffic across the link: a transmit loop that repeats the
// pattern onto one port and a receive loop that checks the other port's
// bytes against it. Both loops run as goroutines owned by Run.
type Runner struct {
	pattern []byte
	tx      TransmitPort
	rx      ReceivePort

	delay     time.Duration
	chunkSize int
	log       zerolog.Logger
	progress  func(Event)

	// written by their owning loop, read only after both loops join
	sends    uint64
	comparer *Comparer
}

// RunnerOption is a functional option for configuring a Runner
type RunnerOption func(*Runner) error

// WithDelay sets the pause between sends. Zero means back-to-back sends.
func WithDelay(d time.Duration) RunnerOption {
	return func(r *Runner) error {
		if d < 0 {
			return ErrInvalidConfig
		}
		r.delay = d
		return nil
	}
}

// WithChunkSize sets the receive buffer size
func WithChunkSize(n int) RunnerOption {
	return func(r *Runner) error {
		if n < 1 {
			return ErrInvalidConfig
		}
		r.chunkSize = n
		return nil
	}
}

// WithLogger sets the logger used for tolerated I/O errors
func WithLogger(log zerolog.Logger) RunnerOption {
	return func(r *Runner) error {
		r.log = log
		return nil
	}
}

// WithProgress registers a callback for progress events
func WithProgress(fn func(Event)) RunnerOption {
	return func(r *Runner) error {
		r.progress = fn
		return nil
	}
}

// NewRunner creates a Runner that transmits pattern on tx and verifies it on
// rx. The pattern must be at least one byte long.
func NewRunner(pattern []byte, tx TransmitPort, rx ReceivePort, opts ...RunnerOption) (*Runner, error) {
	comparer, err := NewComparer(pattern)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		pattern:   pattern,
		tx:        tx,
		rx:        rx,
		chunkSize: DefaultChunkSize,
		log:       zerolog.Nop(),
		comparer:  comparer,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Run starts the transmit and receive loops and blocks until both have
// observed cancellation and closed their ports. The returned statistics are
// merged only after both loops have joined, so the loops never share
// counters while running.
//
// Cancelling ctx also forces the receive port non-blocking so a read parked
// in the kernel returns promptly.
func (r *Runner) Run(ctx context.Context) Stats {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.transmitLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		r.receiveLoop(ctx)
	}()

	// The loops only exit on cancellation, so observe it here first,
	// unpark any read still waiting in the kernel, then join.
	<-ctx.Done()
	if err := r.rx.SetNonblock(true); err != nil && !errors.Is(err, ErrPortClosed) {
		r.log.Warn().Err(err).Msg("could not unblock receive port")
	}
	wg.Wait()

	return Stats{
		Sends:       r.sends,
		Good:        r.comparer.Good(),
		Miscompares: r.comparer.Miscompares(),
	}
}

// transmitLoop writes the pattern until cancelled. Write failures are
// tolerated: the link is being exercised, so the loop keeps sending through
// transient errors.
func (r *Runner) transmitLoop(ctx context.Context) {
	defer r.tx.Close()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for ctx.Err() == nil {
		r.sendPattern()
		r.sends++
		r.emit(Event{Kind: EventSend})

		if r.delay > 0 {
			timer.Reset(r.delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		}
	}
}

// sendPattern writes the pattern in full, retrying short writes. A write
// error or a full output buffer abandons the remainder of this send.
func (r *Runner) sendPattern() {
	remaining := r.pattern
	for len(remaining) > 0 {
		n, err := r.tx.Write(remaining)
		remaining = remaining[n:]
		if err != nil {
			if !wouldBlock(err) {
				r.log.Warn().Err(err).Msg("TX error on write")
				r.emit(Event{Kind: EventIOError, Err: err})
			}
			return
		}
	}
}

// receiveLoop reads chunks until cancelled and feeds them to the comparer.
// An empty read means no data arrived within the port's read timeout and
// changes nothing. Read errors other than "no data" are tolerated.
func (r *Runner) receiveLoop(ctx context.Context) {
	defer r.rx.Close()

	buf := make([]byte, r.chunkSize)
	for ctx.Err() == nil {
		n, err := r.rx.Read(buf)
		if err != nil && !wouldBlock(err) && err != io.EOF {
			r.log.Warn().Err(err).Msg("RX error on read")
			r.emit(Event{Kind: EventIOError, Err: err})
			continue
		}
		if n == 0 {
			continue
		}

		if r.comparer.Compare(buf[:n]) {
			r.emit(Event{Kind: EventGoodCompare})
		} else {
			r.emit(Event{Kind: EventMiscompare})
		}
	}
}

func (r *Runner) emit(ev Event) {
	if r.progress != nil {
		r.progress(ev)
	}
}

// wouldBlock reports whether err just means no data was ready on a
// non-blocking descriptor.
func wouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}
