/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	portrunner "github.com/allbin/port-runner"
	"github.com/allbin/port-runner/internal/tui/components"
	"github.com/allbin/port-runner/internal/tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// runDashboard drives the run under a live statistics dashboard. The runner
// executes in a background goroutine and feeds progress events to the TUI;
// the TUI's stop key cancels the run context, and the final report is
// printed once the program exits the alternate screen.
func runDashboard(
	ctx context.Context,
	cancel context.CancelFunc,
	pattern []byte,
	tx portrunner.TransmitPort,
	rx portrunner.ReceivePort,
	txSpec, rxSpec deviceSpec,
	delay time.Duration,
	opts []portrunner.RunnerOption,
) int {
	info := components.LinkInfo{
		TransmitPath: txSpec.path,
		ReceivePath:  rxSpec.path,
		BaudRate:     txSpec.baud,
		PatternLen:   len(pattern),
		Delay:        delay,
	}

	m := models.NewRunModel(info, cancel)
	p := tea.NewProgram(m, tea.WithAltScreen())

	opts = append(opts, portrunner.WithProgress(func(ev portrunner.Event) {
		p.Send(models.ProgressMsg{Event: ev})
	}))

	runner, err := portrunner.NewRunner(pattern, tx, rx, opts...)
	if err != nil {
		rx.Close()
		tx.Close()
		return fatal(err)
	}

	go func() {
		stats := runner.Run(ctx)
		p.Send(models.DoneMsg{Stats: stats})
	}()

	final, err := p.Run()
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s dashboard failed: %v\n", errorStyle.Render("ERROR:"), err)
		return exitUsage
	}

	if rm, ok := final.(*models.RunModel); ok {
		printReport(rm.FinalStats())
	}
	return 0
}
