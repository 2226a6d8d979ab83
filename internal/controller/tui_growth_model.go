package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

var (
	accentColor  = lipgloss.Color("6")
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// resultDelegate renders one finished neuron per line.
type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(resultItem)
	if !ok {
		return
	}

	_, _ = fmt.Fprint(w, resultLine(entry.result, index == l.Index()))
}

func resultLine(result GrowthResult, selected bool) string {
	cursor := "  "
	if selected {
		cursor = accentStyle.Render("> ")
	}

	if result.Err != nil {
		return fmt.Sprintf("%s%s %-20s %s", cursor, errorStyle.Render("✗"), result.Summary.Name, result.Err)
	}

	id := result.Record.ID
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("%s%s %-20s %s  %s sections  %s points",
		cursor,
		okStyle.Render("✓"),
		result.Record.Name,
		mutedStyle.Render(id),
		accentStyle.Render(fmt.Sprintf("%d", result.Record.Sections)),
		accentStyle.Render(fmt.Sprintf("%d", result.Record.Points)),
	)
}

// growthModel shows the neurons being grown and the finished ones.
type growthModel struct {
	width       int
	height      int
	progressBar progress.Model
	total       int
	seed        int64
	active      map[string]m.GrowthProgress
	order       []string
	results     []GrowthResult
	resultsList list.Model
	finished    bool
}

func newGrowthModel() growthModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	resultsList := list.New([]list.Item{}, resultDelegate{}, 80, 10)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter neurons…"

	return growthModel{
		width:       80,
		progressBar: prog,
		active:      make(map[string]m.GrowthProgress),
		resultsList: resultsList,
	}
}

func (g growthModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (g growthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
		g.resultsList.SetWidth(msg.Width)

	case tea.KeyMsg:
		if g.resultsList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return g, tea.Quit
			}
		}
		g.resultsList, cmd = g.resultsList.Update(msg)

	case tickMsg:
		if g.finished {
			return g, nil
		}
		return g, tick()

	case runInfoMsg:
		g.total = 1
		g.seed = msg.seed

	case progressMsg:
		if _, ok := g.active[msg.name]; !ok {
			g.order = append(g.order, msg.name)
		}
		g.active[msg.name] = msg.progress

	case resultMsg:
		g = g.handleResult(msg.result)

	case runDoneMsg:
		g.finished = true
	}

	return g, cmd
}

func (g growthModel) handleResult(result GrowthResult) growthModel {
	name := result.Summary.Name
	delete(g.active, name)

	order := make([]string, 0, len(g.order))
	for _, n := range g.order {
		if n != name {
			order = append(order, n)
		}
	}
	g.order = order

	g.results = append(g.results, result)
	g.resultsList.InsertItem(len(g.results)-1, resultItem{result: result})

	return g
}

func (g growthModel) completed() float64 {
	if g.total <= 0 {
		return 0
	}

	return float64(len(g.results)) / float64(g.total)
}

func (g growthModel) failures() int {
	count := 0
	for _, result := range g.results {
		if result.Err != nil {
			count++
		}
	}

	return count
}

func (g growthModel) View() string {
	title := titleStyle.Render("NeuroTS synthesis")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Grown: %s / %s  •  Failed: %s  •  Seed: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(g.results))),
		accentStyle.Render(fmt.Sprintf("%d", g.total)),
		accentStyle.Render(fmt.Sprintf("%d", g.failures())),
		accentStyle.Render(fmt.Sprintf("%d", g.seed)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(g.progressBar.ViewAs(g.completed()))

	footerText := "Press q to quit"
	if g.finished {
		footerText = "Done  •  / filter  •  q quit"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(g.width).
		Render(footerText)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		g.renderActive(),
		g.resultsList.View(),
		footer,
	)
}

func (g growthModel) renderActive() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(g.width-4, 20))

	if len(g.order) == 0 {
		return box.Render(mutedStyle.Render("idle"))
	}

	lines := make([]string, 0, len(g.order))
	for _, name := range g.order {
		p := g.active[name]
		lines = append(lines, fmt.Sprintf("%-20s %s  iter %s  sections %s/%s  trees %s",
			name,
			g.progressBar.ViewAs(p.Fraction()),
			accentStyle.Render(fmt.Sprintf("%d", p.Iteration)),
			accentStyle.Render(fmt.Sprintf("%d", p.FinishedSections)),
			accentStyle.Render(fmt.Sprintf("%d", p.EstimatedSections)),
			accentStyle.Render(fmt.Sprintf("%d", p.ActiveTrees)),
		))
	}

	return box.Render(strings.Join(lines, "\n"))
}
