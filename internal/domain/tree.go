package domain

import (
	"context"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jacquemi-bbp/NeuroTS/internal/logging"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// TreeConfig configures the growth of one tree.
type TreeConfig struct {
	Type         m.NeuriteType
	InitialPoint r3.Vec
	Direction    r3.Vec
	Origin       r3.Vec
	Params       m.NeuriteParameters
	Distr        m.NeuriteDistributions
}

// TreeGrower grows one tree of the morphology from its trunk. Sections are
// appended to the shared morphology as soon as they are created.
type TreeGrower struct {
	cfg      TreeConfig
	morph    *m.Morphology
	algo     Algorithm
	sampler  *Sampler
	logger   *slog.Logger
	active   []*SectionGrower
	ids      map[*SectionGrower]int
	finished int
	estimate int
}

// NewTreeGrower selects a barcode for the tree, initializes its growth
// algorithm and creates the trunk section.
func NewTreeGrower(cfg TreeConfig, morph *m.Morphology, sampler *Sampler, logger *slog.Logger) (*TreeGrower, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bars := selectBarcode(sampler, cfg.Distr.Barcodes)

	algo, err := NewAlgorithm(bars, cfg.Params, cfg.Distr, sampler, logger)
	if err != nil {
		return nil, err
	}

	stop, estimate := algo.Initialize()

	t := &TreeGrower{
		cfg:      cfg,
		morph:    morph,
		algo:     algo,
		sampler:  sampler,
		logger:   logger,
		ids:      make(map[*SectionGrower]int),
		estimate: estimate,
	}

	t.addSection(m.NoParent, ChildSpec{
		FirstPoint: cfg.InitialPoint,
		Direction:  cfg.Direction,
		Process:    m.ProcessMajor,
		Stop:       stop,
	}, 0, nil)

	logger.Debug("tree started",
		"type", cfg.Type,
		"bars", len(bars),
		"term", stop.Term,
		"bif", stop.Bif)

	return t, nil
}

func selectBarcode(sampler *Sampler, barcodes [][]m.Bar) []m.Bar {
	switch len(barcodes) {
	case 0:
		return nil
	case 1:
		return barcodes[0]
	default:
		return barcodes[sampler.Rand().Intn(len(barcodes))]
	}
}

func (t *TreeGrower) metric() m.FiltrationMetric {
	if t.cfg.Params.Metric != "" {
		return t.cfg.Params.Metric
	}
	if t.cfg.Distr.Filtration != "" {
		return t.cfg.Distr.Filtration
	}

	return m.MetricPathDistances
}

func (t *TreeGrower) addSection(parent int, spec ChildSpec, pathLength float64, latest []r3.Vec) {
	grower := NewSectionGrower(SectionConfig{
		FirstPoint: spec.FirstPoint,
		Direction:  spec.Direction,
		Process:    spec.Process,
		Stop:       spec.Stop,
		StepSize:   t.cfg.Distr.StepSize,
		Mixture:    MixtureOf(t.cfg.Params),
		Metric:     t.metric(),
		Origin:     t.cfg.Origin,
		PathLength: pathLength,
		Latest:     latest,
	}, t.algo, t.sampler)

	id := t.morph.AddSection(m.Section{
		Parent:    parent,
		Type:      t.cfg.Type,
		Process:   spec.Process,
		Points:    []m.Point{morphmath.ToPoint(spec.FirstPoint)},
		Diameters: []float64{0},
		Stop:      spec.Stop,
	})

	t.ids[grower] = id
	t.active = append(t.active, grower)
}

// End reports whether every section of the tree has finished.
func (t *TreeGrower) End() bool {
	return len(t.active) == 0
}

// Active returns the number of growing sections.
func (t *TreeGrower) Active() int {
	return len(t.active)
}

// Finished returns the number of sections that stopped growing.
func (t *TreeGrower) Finished() int {
	return t.finished
}

// Estimate returns the expected number of sections of the tree.
func (t *TreeGrower) Estimate() int {
	return t.estimate
}

// Next advances every active section by one step and resolves the sections
// that reached their bifurcation or termination.
func (t *TreeGrower) Next() error {
	current := t.active
	t.active = make([]*SectionGrower, 0, len(current))

	for _, grower := range current {
		grower.Step()
		t.record(grower)

		switch grower.State() {
		case StateGrowing:
			t.active = append(t.active, grower)
		case StateBifurcating:
			if err := t.bifurcate(grower); err != nil {
				return err
			}
		case StateTerminating:
			t.finish(grower)
		}
	}

	return nil
}

func (t *TreeGrower) record(grower *SectionGrower) {
	section := t.morph.Section(t.ids[grower])
	points := grower.Points()
	tip := points[len(points)-1]

	section.Points = append(section.Points, morphmath.ToPoint(tip))
	section.Diameters = append(section.Diameters, 0)
}

func (t *TreeGrower) bifurcate(grower *SectionGrower) error {
	s1, s2, err := t.algo.Bifurcate(grower.View())
	if err != nil {
		return err
	}

	parent := t.ids[grower]
	t.finish(grower)

	for _, spec := range []ChildSpec{s1, s2} {
		t.addSection(parent, spec, grower.PathLength(), grower.Latest())
	}

	return nil
}

func (t *TreeGrower) finish(grower *SectionGrower) {
	t.logger.Log(context.Background(), logging.LevelTrace, "section finished",
		"section", t.ids[grower],
		"state", grower.State(),
		"points", len(grower.Points()),
		"path_length", grower.PathLength())

	delete(t.ids, grower)
	t.finished++
}
