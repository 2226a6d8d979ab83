package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start runs the growth view on its own goroutine.
func (t *TUI) Start() error {
	return t.startWithModel(newGrowthModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// Close tells the view that the run is over.
func (t *TUI) Close() {
	t.send(runDoneMsg{})
}

// Wait blocks until the user quits the view.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayRunInfo shows the neuron being grown.
func (t *TUI) DisplayRunInfo(name string, seed int64) {
	t.send(runInfoMsg{name: name, seed: seed})
}

// DisplayProgress updates the progress of one neuron.
func (t *TUI) DisplayProgress(name string, progress m.GrowthProgress) {
	t.send(progressMsg{name: name, progress: progress})
}

// DisplayResult moves a neuron to the finished list.
func (t *TUI) DisplayResult(result GrowthResult) {
	t.send(resultMsg{result: result})
}

// DisplayRecords prints the stored records.
func (t *TUI) DisplayRecords(records []m.RecordInfo) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(t.output, mutedStyle.Render("No morphologies stored"))
		return err
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	lines := []string{header.Render(fmt.Sprintf("%-36s  %-20s  %8s  %8s", "ID", "NAME", "SECTIONS", "POINTS"))}

	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%-36s  %-20s  %s  %s",
			mutedStyle.Render(record.ID),
			record.Name,
			accentStyle.Render(fmt.Sprintf("%8d", record.Sections)),
			accentStyle.Render(fmt.Sprintf("%8d", record.Points)),
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayMorphology prints the summary of a stored record.
func (t *TUI) DisplayMorphology(record m.RecordInfo, summary m.GrowthSummary) error {
	title := titleStyle.Render(record.Name)
	meta := summaryStyle.Render(fmt.Sprintf("ID %s  •  Seed %s  •  Soma radius %s",
		accentStyle.Render(record.ID),
		accentStyle.Render(fmt.Sprintf("%d", record.Seed)),
		accentStyle.Render(fmt.Sprintf("%.3f", summary.SomaRadius)),
	))

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, title, meta, renderSummary(summary)))

	return err
}
