/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	portrunner "github.com/allbin/port-runner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// One negative exit code per failure class, so scripts can tell apart what
// went wrong. 0 is a normal signal-triggered shutdown.
const (
	exitUsage          = -1
	exitMissingDevice  = -2
	exitInvalidBaud    = -3
	exitMissingBaud    = -4
	exitMismatchedBaud = -5
	exitOpenFailed     = -6
	exitPatternOpen    = -7
	exitPatternStat    = -8
	exitPatternRead    = -9
	exitEmptyPattern   = -10
)

// exitCodeFor maps a fatal error to its failure-class exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, portrunner.ErrMissingDevice):
		return exitMissingDevice
	case errors.Is(err, portrunner.ErrInvalidBaudRate):
		return exitInvalidBaud
	case errors.Is(err, portrunner.ErrMissingBaudRate):
		return exitMissingBaud
	case errors.Is(err, portrunner.ErrBaudRateMismatch):
		return exitMismatchedBaud
	case errors.Is(err, portrunner.ErrPatternOpen):
		return exitPatternOpen
	case errors.Is(err, portrunner.ErrPatternStat):
		return exitPatternStat
	case errors.Is(err, portrunner.ErrPatternRead):
		return exitPatternRead
	case errors.Is(err, portrunner.ErrEmptyPattern):
		return exitEmptyPattern
	default:
		return exitUsage
	}
}

// deviceSpec is one side of the link as given on the command line.
type deviceSpec struct {
	path    string
	baud    int
	hasBaud bool
}

// parseDeviceSpec parses a "<device>[,<baud>]" argument.
func parseDeviceSpec(arg string) (deviceSpec, error) {
	var spec deviceSpec

	parts := strings.Split(arg, ",")
	if parts[0] == "" {
		return spec, portrunner.ErrMissingDevice
	}
	spec.path = parts[0]

	if len(parts) > 1 {
		rate, err := portrunner.LookupBaudRate(parts[1])
		if err != nil {
			return spec, fmt.Errorf("%w: '%s'", err, parts[1])
		}
		spec.baud = rate
		spec.hasBaud = true
	}
	if len(parts) > 2 {
		return spec, fmt.Errorf("unsupported serial port option '%s'", parts[2])
	}

	return spec, nil
}

// resolveBaudRates applies the inheritance rule: if only one side names a
// rate the other inherits it; neither naming one, or the two naming
// different rates, is fatal.
func resolveBaudRates(tx, rx *deviceSpec) error {
	switch {
	case !tx.hasBaud && !rx.hasBaud:
		return portrunner.ErrMissingBaudRate
	case tx.hasBaud && rx.hasBaud && tx.baud != rx.baud:
		return fmt.Errorf("%w: %d vs %d", portrunner.ErrBaudRateMismatch, tx.baud, rx.baud)
	case !tx.hasBaud:
		tx.baud = rx.baud
		tx.hasBaud = true
	case !rx.hasBaud:
		rx.baud = tx.baud
		rx.hasBaud = true
	}
	return nil
}

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

func fatal(err error) int {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("ERROR:"), err)
	return exitCodeFor(err)
}

func runExerciser(cmd *cobra.Command) int {
	transmitArg, _ := cmd.Flags().GetString("transmit")
	receiveArg, _ := cmd.Flags().GetString("receive")
	patternPath, _ := cmd.Flags().GetString("file")
	delayArg, _ := cmd.Flags().GetString("delay")
	useTUI, _ := cmd.Flags().GetBool("tui")

	log := newLogger()

	delayMS := viper.GetInt("delay")
	if delayArg != "" {
		var err error
		delayMS, err = strconv.Atoi(delayArg)
		if err != nil || delayMS < 0 {
			fmt.Fprintf(os.Stderr, "%s invalid non-integer value for delay: '%s'\n",
				errorStyle.Render("ERROR:"), delayArg)
			cmd.Usage()
			return exitUsage
		}
	}

	if patternPath == "" {
		fmt.Fprintf(os.Stderr, "%s data filename was not provided\n", errorStyle.Render("ERROR:"))
		cmd.Usage()
		return exitUsage
	}

	txSpec, err := parseDeviceSpec(transmitArg)
	if err != nil {
		return fatal(fmt.Errorf("transmit device: %w", err))
	}
	rxSpec, err := parseDeviceSpec(receiveArg)
	if err != nil {
		return fatal(fmt.Errorf("receive device: %w", err))
	}
	if err := resolveBaudRates(&txSpec, &rxSpec); err != nil {
		return fatal(err)
	}

	tx, err := portrunner.Open(txSpec.path,
		portrunner.WithDirection(portrunner.DirectionTransmit),
		portrunner.WithBaudRate(txSpec.baud),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s could not open '%s': %v\n",
			errorStyle.Render("ERROR:"), txSpec.path, err)
		return exitOpenFailed
	}

	rx, err := portrunner.Open(rxSpec.path,
		portrunner.WithBaudRate(rxSpec.baud),
	)
	if err != nil {
		tx.Close()
		fmt.Fprintf(os.Stderr, "%s could not open '%s': %v\n",
			errorStyle.Render("ERROR:"), rxSpec.path, err)
		return exitOpenFailed
	}

	pattern, err := portrunner.LoadPattern(patternPath)
	if err != nil {
		rx.Close()
		tx.Close()
		return fatal(err)
	}

	// Discard anything queued on the receive side before traffic starts.
	if err := rx.FlushInput(); err != nil {
		log.Debug().Err(err).Msg("could not flush receive port")
	}

	delay := time.Duration(delayMS) * time.Millisecond
	opts := []portrunner.RunnerOption{
		portrunner.WithDelay(delay),
		portrunner.WithChunkSize(viper.GetInt("chunk_size")),
		portrunner.WithLogger(log),
	}

	fmt.Printf("Loaded %d bytes of data from '%s', leaving %d milliseconds between sends...\n",
		len(pattern), patternPath, delayMS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if useTUI {
		return runDashboard(ctx, cancel, pattern, tx, rx, txSpec, rxSpec, delay, opts)
	}

	opts = append(opts, portrunner.WithProgress(func(ev portrunner.Event) {
		if ev.Kind == portrunner.EventSend {
			fmt.Print(".")
		}
	}))

	runner, err := portrunner.NewRunner(pattern, tx, rx, opts...)
	if err != nil {
		rx.Close()
		tx.Close()
		return fatal(err)
	}

	fmt.Print("Sending traffic...")
	stats := runner.Run(ctx)
	printReport(stats)
	return 0
}

func printReport(stats portrunner.Stats) {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true)
	goodStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("40")).
		Bold(true)
	badStyle := goodStyle
	if stats.Miscompares > 0 {
		badStyle = errorStyle
	}

	fmt.Printf("\n\n%s\n", headerStyle.Render("Done."))
	fmt.Printf("Data sent %d times, good compares: %s, failed compares: %s\n",
		stats.Sends,
		goodStyle.Render(strconv.FormatUint(stats.Good, 10)),
		badStyle.Render(strconv.FormatUint(stats.Miscompares, 10)))
}
