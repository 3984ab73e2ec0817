package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user aborts a call with Ctrl+C
var ErrInterrupted = errors.New("interrupted")

// callDoneMsg carries the result of the wrapped call back into the program
type callDoneMsg struct {
	err error
}

// SpinnerModel is a Bubble Tea model that shows a spinner while a single
// call runs, then exits.
type SpinnerModel struct {
	spinner spinner.Model
	label   string
	run     func() error
	cancel  context.CancelFunc
	err     error
	done    bool
}

// NewSpinnerModel creates a model that runs fn and spins until it returns.
// cancel, if non-nil, is called when the user interrupts.
func NewSpinnerModel(label string, fn func() error, cancel context.CancelFunc) SpinnerModel {
	return SpinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle)),
		label:   label,
		run:     fn,
		cancel:  cancel,
	}
}

// Init implements tea.Model
func (m SpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m SpinnerModel) call() tea.Msg {
	return callDoneMsg{err: m.run()}
}

// Update implements tea.Model
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.cancel != nil {
				m.cancel()
			}
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + " " + SpinnerLabelStyle.Render(m.label)
}

// Err returns the result of the wrapped call once the model is done
func (m SpinnerModel) Err() error {
	return m.err
}

// RunWithSpinner runs fn, showing a spinner on out when out is a terminal.
// Otherwise fn is called directly.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, fn func(ctx context.Context) error) error {
	if !IsTerminal(out) {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSpinnerModel(label, func() error { return fn(ctx) }, cancel)
	final, err := tea.NewProgram(model, tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	return final.(SpinnerModel).Err()
}

// Printer writes rendered boxes to an output stream
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the render width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintFailure prints an error result box with troubleshooting tips
func (p *Printer) PrintFailure(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintList prints a titled list box
func (p *Printer) PrintList(title string, rows []Detail) {
	p.Println(RenderList(title, rows, p.width))
}
