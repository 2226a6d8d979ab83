package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo announces the neuron being grown.
func (s *SimpleUI) DisplayRunInfo(name string, seed int64) {
	s.printf("Growing %s with seed %d\n", name, seed)
}

// DisplayProgress is silent: plain output only reports finished neurons.
func (s *SimpleUI) DisplayProgress(string, m.GrowthProgress) {}

// DisplayResult prints the summary table of a grown neuron.
func (s *SimpleUI) DisplayResult(result GrowthResult) {
	if result.Err != nil {
		s.printf("%s: growth error: %v\n", result.Summary.Name, result.Err)
		return
	}

	s.printf("\n%s (%s, seed %d)\n%s", result.Record.Name, result.Record.ID, result.Record.Seed, renderSummary(result.Summary))
}

// DisplayRecords prints the stored records.
func (s *SimpleUI) DisplayRecords(records []m.RecordInfo) error {
	if len(records) == 0 {
		s.printf("No morphologies stored\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Seed", "Sections", "Points", "Created"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, record := range records {
		table.Append([]string{
			record.ID,
			record.Name,
			fmt.Sprintf("%d", record.Seed),
			fmt.Sprintf("%d", record.Sections),
			fmt.Sprintf("%d", record.Points),
			record.CreatedAt.Local().Format(timeLayout),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(records)), "", "", "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayMorphology prints the summary of a stored record.
func (s *SimpleUI) DisplayMorphology(record m.RecordInfo, summary m.GrowthSummary) error {
	s.printf("\n%s (%s, seed %d, created %s)\nSoma radius %.3f\n%s",
		record.Name, record.ID, record.Seed, record.CreatedAt.Local().Format(timeLayout),
		summary.SomaRadius, renderSummary(summary))

	return nil
}

// renderSummary renders the per-neurite table of a summary.
func renderSummary(summary m.GrowthSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Neurite", "Trees", "Sections", "Bifurcations", "Terminations", "Points", "Length", "Max path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	sections := 0
	length := 0.0

	for _, neurite := range summary.Neurites {
		table.Append([]string{
			string(neurite.Type),
			fmt.Sprintf("%d", neurite.Trees),
			fmt.Sprintf("%d", neurite.Sections),
			fmt.Sprintf("%d", neurite.Bifurcations),
			fmt.Sprintf("%d", neurite.Terminations),
			fmt.Sprintf("%d", neurite.Points),
			fmt.Sprintf("%.1f", neurite.TotalLength),
			fmt.Sprintf("%.1f", neurite.MaxPathLength),
		})

		sections += neurite.Sections
		length += neurite.TotalLength
	}

	table.SetFooter([]string{
		"Total", "", fmt.Sprintf("%d", sections), "", "",
		fmt.Sprintf("%d", summary.TotalPoints), fmt.Sprintf("%.1f", length), "",
	})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
