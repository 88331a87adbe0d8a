// Package monitor is the interactive terminal attached to the running
// pipeline: a command line for inspecting the arbitration state, adjusting
// the calibration and pausing the update loop, with a live status line fed
// by per-frame readouts from the front-end.
//
// With the -headless flag the monitor runs the pipeline itself, driving it
// from a wall-clock ticker and a synthetic gamepad, so everything is
// observable in a terminal without a display.
package monitor

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skerrett/yoke/input/curve"
	"github.com/skerrett/yoke/logger"
	"github.com/skerrett/yoke/ui"
	"github.com/skerrett/yoke/version"
)

type monitor struct {
	ui    *ui.UI
	calib *curve.Calibration

	// nil unless running with -headless
	headless *headless
}

// pause and resume reach the update loop differently depending on who runs
// it: the front-end drains Commands on its frame goroutine, the headless
// pipeline is nudged on its tick goroutine.
func (mon *monitor) pause() {
	if mon.headless != nil {
		mon.headless.setRunning(false)
		return
	}
	select {
	case mon.ui.Commands <- []string{"PAUSE"}:
	default:
	}
}

func (mon *monitor) resume() {
	if mon.headless != nil {
		mon.headless.setRunning(true)
		return
	}
	select {
	case mon.ui.Commands <- []string{"RESUME"}:
	default:
	}
}

type readoutMsg ui.Readout

type model struct {
	mon *monitor

	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles

	latest      ui.Readout
	haveReadout bool
}

func newModel(mon *monitor) *model {
	m := &model{
		mon:    mon,
		styles: newStyles(),
	}

	m.input = textinput.New()
	m.input.Placeholder = ""
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.print(m.styles.greeting, version.Title())
	m.print(m.styles.result, "type HELP for the list of commands")

	return m
}

// print appends to the scrollback, one entry per line of s.
func (m *model) print(style lipgloss.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		m.output = append(m.output, style.Render(l))
	}
}

func (m *model) awaitReadout() tea.Cmd {
	return func() tea.Msg {
		return readoutMsg(<-m.mon.ui.Readout)
	}
}

func (m *model) Init() tea.Cmd {
	return m.awaitReadout()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case readoutMsg:
		m.latest = ui.Readout(msg)
		m.haveReadout = true
		return m, m.awaitReadout()

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.execute(line) {
				return m, tea.Quit
			}
		}
	}

	// always scroll to the latest output
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) statusLine() string {
	if !m.haveReadout {
		return m.styles.status.Render("waiting for first readout")
	}
	r := m.latest
	state := "running"
	if !r.Running {
		state = "paused"
	}
	return m.styles.status.Render(fmt.Sprintf("%s %s  actor (%.0f, %.0f)  %s  %s",
		r.Active, r.Fused, r.ActorX, r.ActorY, r.Calibration, state))
}

func (m *model) View() string {
	return fmt.Sprintf("%s\n%s\n%s",
		m.viewport.View(),
		m.statusLine(),
		m.input.View(),
	)
}

// Launch runs the monitor. It blocks until the user quits, the front-end
// ends, or endMonitor is signalled.
func Launch(endMonitor chan bool, u *ui.UI, calib *curve.Calibration, args []string) error {
	var headlessMode bool
	var echo bool
	var fps float64

	flgs := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)
	flgs.BoolVar(&headlessMode, "headless", false, "run without a display; a synthetic gamepad drives the pipeline")
	flgs.BoolVar(&echo, "echo", false, "echo log entries to stderr as they arrive")
	flgs.Float64Var(&fps, "fps", 60, "tick rate of the headless scheduler")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments to monitor")
	}

	if echo {
		logger.SetEcho(os.Stderr, true)
	}

	mon := &monitor{
		ui:    u,
		calib: calib,
	}

	if headlessMode {
		mon.headless = startHeadless(u, calib, fps)
		defer mon.headless.stop()
	}

	p := tea.NewProgram(newModel(mon))

	go func() {
		<-endMonitor
		p.Quit()
	}()

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	return nil
}
