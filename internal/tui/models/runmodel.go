package models

import (
	"context"
	"fmt"
	"strconv"
	"time"

	portrunner "github.com/allbin/port-runner"
	"github.com/allbin/port-runner/internal/tui/components"
	"github.com/allbin/port-runner/internal/tui/keys"
	"github.com/allbin/port-runner/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

// ProgressMsg carries one runner progress event into the dashboard
type ProgressMsg struct {
	Event portrunner.Event
}

// DoneMsg carries the merged statistics once both loops have joined
type DoneMsg struct {
	Stats portrunner.Stats
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// RunModel is the Bubble Tea model for a live run: a counters table, a
// spinner while traffic flows, and the link bar. The model keeps its own
// tallies from progress events so the loops' counters stay unshared.
type RunModel struct {
	linkBar  *components.LinkBar
	counters table.Model
	spinner  spinner.Model
	help     help.Model
	keys     keys.RunKeys

	cancel context.CancelFunc
	width  int

	sends       uint64
	good        uint64
	miscompares uint64
	ioErrors    uint64
	lastErr     error
	started     time.Time

	stopping bool
	done     bool
	final    portrunner.Stats
}

func NewRunModel(info components.LinkInfo, cancel context.CancelFunc) *RunModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7"))

	counters := table.New([]table.Column{
		table.NewColumn(columnMetric, "Metric", 22),
		table.NewColumn(columnCount, "Count", 14).
			WithStyle(lipgloss.NewStyle().Align(lipgloss.Right)),
	})

	return &RunModel{
		linkBar:  components.NewLinkBar(info),
		counters: counters,
		spinner:  sp,
		help:     help.New(),
		keys:     keys.NewRunKeys(),
		cancel:   cancel,
		started:  time.Now(),
	}
}

const (
	columnMetric = "metric"
	columnCount  = "count"
)

// FinalStats returns the merged run statistics; valid once the program has
// quit on a DoneMsg.
func (m *RunModel) FinalStats() portrunner.Stats {
	return m.final
}

func (m *RunModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func (m *RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.linkBar.SetWidth(msg.Width)

	case ProgressMsg:
		switch msg.Event.Kind {
		case portrunner.EventSend:
			m.sends++
		case portrunner.EventGoodCompare:
			m.good++
		case portrunner.EventMiscompare:
			m.miscompares++
		case portrunner.EventIOError:
			m.ioErrors++
			m.lastErr = msg.Event.Err
		}

	case DoneMsg:
		m.final = msg.Stats
		m.done = true
		return m, tea.Quit

	case tickMsg:
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			// Stop the loops but keep the dashboard up until both have
			// joined and the final statistics arrive.
			m.stopping = true
			m.cancel()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *RunModel) state() string {
	switch {
	case m.done:
		return "DONE"
	case m.stopping:
		return "STOPPING"
	default:
		return "RUNNING"
	}
}

func (m *RunModel) View() string {
	title := styles.TitleStyle.Render("port-runner")

	var activity string
	switch m.state() {
	case "RUNNING":
		activity = m.spinner.View() + styles.StatusRunningStyle.Render("sending traffic")
	case "STOPPING":
		activity = styles.StatusStoppingStyle.Render("stopping, waiting for loops to join...")
	default:
		activity = styles.StatusDoneStyle.Render("done")
	}

	elapsed := time.Since(m.started).Round(time.Second)
	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", activity,
		lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Render(fmt.Sprintf("  %s elapsed", elapsed)))

	rows := []table.Row{
		table.NewRow(table.RowData{
			columnMetric: "Sends",
			columnCount:  strconv.FormatUint(m.sends, 10),
		}),
		table.NewRow(table.RowData{
			columnMetric: "Good compares",
			columnCount:  styles.GoodStyle.Render(strconv.FormatUint(m.good, 10)),
		}),
		table.NewRow(table.RowData{
			columnMetric: "Miscompares",
			columnCount:  styles.MiscompareStyle.Render(strconv.FormatUint(m.miscompares, 10)),
		}),
		table.NewRow(table.RowData{
			columnMetric: "Tolerated I/O errors",
			columnCount:  strconv.FormatUint(m.ioErrors, 10),
		}),
	}
	counters := m.counters.WithRows(rows).View()

	var errLine string
	if m.lastErr != nil {
		errLine = styles.ErrorStyle.Render(fmt.Sprintf("last error: %v", m.lastErr))
	}

	var helpView string
	if m.help.ShowAll {
		helpView = m.help.View(m.keys)
	}

	content := styles.ContentBorderStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", counters, errLine, helpView),
	)
	bar := m.linkBar.View(m.state(), time.Now().Format("15:04:05"))

	return lipgloss.JoinVertical(lipgloss.Left, content, bar)
}
