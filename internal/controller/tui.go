package controller

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/goreg/internal/model"
)

const defaultTermWidth = 80

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the progress view in compare mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	if cfg.mode != ModeCompare {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errors.New("tui already started")
	}

	model := newProgressModel(termWidth(t.output))
	model.onInterrupt = cfg.interrupt

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	t.program, t.done = program, done

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// Close stops the progress view and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done
}

// Wait blocks until the progress view has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayDiscovery announces the number of targets to the progress view.
func (t *TUI) DisplayDiscovery(detected m.DetectedImages, workers int) {
	t.send(discoveryMsg{
		targets: detected.Targets().Len(),
		workers: workers,
		added:   detected.New.Len(),
		deleted: detected.Deleted.Len(),
	})
}

// DisplayCompletedDiff advances the progress bar.
func (t *TUI) DisplayCompletedDiff(path m.Path, outcome m.DiffOutcome) {
	t.send(diffDoneMsg{path: string(path), equal: outcome.Equal, diffCount: outcome.DiffCount})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplaySummary renders a styled summary of the report.
func (t *TUI) DisplaySummary(report m.JSONReport, err error) error {
	if err != nil && !errors.Is(err, m.ErrChangesDetected) {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		_, _ = fmt.Fprintln(t.output, errStyle.Render("error: "+err.Error()))

		return err
	}

	_, werr := fmt.Fprint(t.output, renderSummary(report, termWidth(t.output)))

	return werr
}

func renderSummary(report m.JSONReport, width int) string {
	statusColors := map[string]lipgloss.Color{
		statusChange: lipgloss.Color("9"),
		statusAppend: lipgloss.Color("11"),
		statusDelete: lipgloss.Color("13"),
		statusPass:   lipgloss.Color("10"),
	}

	lines := make([]string, 0, report.PassedItems.Len()+4)

	for _, row := range summaryRows(report) {
		style := lipgloss.NewStyle().Foreground(statusColors[row.status])
		label := style.Render(fmt.Sprintf("%s %-6s", row.mark, row.status))
		lines = append(lines, label+"  "+truncateToWidth(row.path, width-14))
	}

	c := countsOf(report)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	totals := fmt.Sprintf("Changed: %s  •  New: %s  •  Deleted: %s  •  Passed: %s",
		accent.Render(fmt.Sprintf("%d", c.failed)),
		accent.Render(fmt.Sprintf("%d", c.added)),
		accent.Render(fmt.Sprintf("%d", c.deleted)),
		accent.Render(fmt.Sprintf("%d", c.passed)),
	)

	borderColor := lipgloss.Color("10")
	if report.HasChanges() {
		borderColor = lipgloss.Color("9")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	var b strings.Builder

	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(box.Render(totals))
	b.WriteString("\n")

	return b.String()
}

func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	return defaultTermWidth
}
