package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))
	// A second start keeps the running program.
	require.NoError(t, tui.startWithModel(quitModel{}))

	tui.DisplayRunInfo("cell", 1)

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_DisplayWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	assert.NotPanics(t, func() {
		tui.DisplayRunInfo("cell", 2)
		tui.DisplayProgress("cell", m.GrowthProgress{Iteration: 3})
		tui.DisplayResult(GrowthResult{Err: errors.New("boom")})
		tui.Close()
		tui.Wait()
	})
	assert.Empty(t, buf.String())
}

func TestTUI_DisplayRecords(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayRecords(nil))
	assert.Contains(t, buf.String(), "No morphologies stored")

	buf.Reset()
	require.NoError(t, tui.DisplayRecords([]m.RecordInfo{{ID: "abcd-1234", Name: "cell", Sections: 19, Points: 210}}))

	output := buf.String()
	assert.Contains(t, output, "SECTIONS")
	assert.Contains(t, output, "abcd-1234")
	assert.Contains(t, output, "210")
}

func TestTUI_DisplayMorphology(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayMorphology(m.RecordInfo{ID: "abcd", Name: "cell", Seed: 5}, sampleSummary()))

	output := buf.String()
	assert.Contains(t, output, "cell")
	assert.Contains(t, output, "abcd")
	assert.Contains(t, output, "9.012")
	assert.Contains(t, output, "BIFURCATIONS")
}
