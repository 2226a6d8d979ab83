package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

func update(t *testing.T, g growthModel, msg tea.Msg) growthModel {
	t.Helper()

	next, _ := g.Update(msg)
	model, ok := next.(growthModel)
	require.True(t, ok)

	return model
}

func TestGrowthModel_TracksRun(t *testing.T) {
	g := newGrowthModel()

	g = update(t, g, runInfoMsg{name: "cell", seed: 7})
	g = update(t, g, progressMsg{name: "cell", progress: m.GrowthProgress{Iteration: 4, FinishedSections: 3, EstimatedSections: 10}})
	g = update(t, g, progressMsg{name: "cell", progress: m.GrowthProgress{Iteration: 5, FinishedSections: 5, EstimatedSections: 10}})

	assert.Equal(t, []string{"cell"}, g.order)
	assert.Equal(t, 5, g.active["cell"].Iteration)
	assert.Equal(t, int64(7), g.seed)
	assert.Zero(t, g.completed())

	view := g.View()
	assert.Contains(t, view, "NeuroTS synthesis")
	assert.Contains(t, view, "cell")
	assert.Contains(t, view, "Press q to quit")

	g = update(t, g, resultMsg{result: GrowthResult{
		Record:  m.RecordInfo{ID: "0123456789ab", Name: "cell", Sections: 19, Points: 200},
		Summary: m.GrowthSummary{Name: "cell"},
	}})

	assert.Empty(t, g.order)
	assert.Empty(t, g.active)
	assert.Len(t, g.results, 1)
	assert.Equal(t, 1.0, g.completed())
	assert.Zero(t, g.failures())
	assert.Len(t, g.resultsList.Items(), 1)

	g = update(t, g, runDoneMsg{})
	assert.True(t, g.finished)
	assert.Contains(t, g.View(), "Done")
}

func TestGrowthModel_CountsFailures(t *testing.T) {
	g := newGrowthModel()

	g = update(t, g, runInfoMsg{name: "cell", seed: 1})
	g = update(t, g, progressMsg{name: "cell", progress: m.GrowthProgress{Iteration: 1}})
	g = update(t, g, resultMsg{result: GrowthResult{
		Summary: m.GrowthSummary{Name: "cell"},
		Err:     errors.New("barcode exhausted"),
	}})

	assert.Empty(t, g.active)
	assert.Equal(t, 1, g.failures())
	assert.Equal(t, 1.0, g.completed())
}

func TestGrowthModel_Tick(t *testing.T) {
	g := newGrowthModel()

	_, cmd := g.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)

	g = update(t, g, runDoneMsg{})
	_, cmd = g.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)

	assert.NotNil(t, g.Init())
}

func TestGrowthModel_KeysAndResize(t *testing.T) {
	g := newGrowthModel()

	g = update(t, g, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, g.width)
	assert.Equal(t, 40, g.height)

	_, cmd := g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResultLine(t *testing.T) {
	ok := resultLine(GrowthResult{Record: m.RecordInfo{ID: "0123456789ab", Name: "cell", Sections: 19, Points: 200}}, true)
	assert.Contains(t, ok, "cell")
	assert.Contains(t, ok, "01234567")
	assert.NotContains(t, ok, "0123456789ab")
	assert.Contains(t, ok, "19")

	failed := resultLine(GrowthResult{Summary: m.GrowthSummary{Name: "cell"}, Err: errors.New("boom")}, false)
	assert.Contains(t, failed, "boom")
	assert.True(t, strings.HasPrefix(failed, "  "))
}

func TestResultItem_FilterValue(t *testing.T) {
	item := resultItem{result: GrowthResult{Record: m.RecordInfo{ID: "abc"}, Summary: m.GrowthSummary{Name: "cell"}}}

	assert.Equal(t, "cell abc", item.FilterValue())
}
