package domain

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// Option customizes a NeuronGrower.
type Option func(*NeuronGrower)

// WithRand makes every draw of the run come from rng.
func WithRand(rng *rand.Rand) Option {
	return func(n *NeuronGrower) {
		n.sampler = NewSampler(rng)
	}
}

// WithSeed seeds a fresh generator for the run.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed))) //nolint:gosec // reproducible synthesis, not cryptography
}

// WithLogger sets the logger used by the grower and its algorithms.
func WithLogger(logger *slog.Logger) Option {
	return func(n *NeuronGrower) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithObserver registers a callback invoked after every growth iteration.
func WithObserver(observer func(m.GrowthProgress)) Option {
	return func(n *NeuronGrower) {
		n.observer = observer
	}
}

// WithDiametrizer plugs the diametrizer used by the "external" method.
func WithDiametrizer(d Diametrizer) Option {
	return func(n *NeuronGrower) {
		n.diametrizer = d
	}
}

// NeuronGrower synthesizes one neuron: it samples a soma, places the trunks
// of every requested neurite type and grows all trees in lockstep.
type NeuronGrower struct {
	params      m.InputParameters
	distr       m.InputDistributions
	sampler     *Sampler
	logger      *slog.Logger
	observer    func(m.GrowthProgress)
	diametrizer Diametrizer

	morph  *m.Morphology
	soma   *SomaGrower
	active []*TreeGrower
	done   []*TreeGrower
}

// NewNeuronGrower validates the inputs and returns a grower. Without
// WithRand or WithSeed the run is seeded with 0.
func NewNeuronGrower(params m.InputParameters, distr m.InputDistributions, opts ...Option) (*NeuronGrower, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: parameters: %w", ErrConfiguration, err)
	}

	if err := distr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: distributions: %w", ErrConfiguration, err)
	}

	for _, neuriteType := range params.GrowTypes {
		if _, ok := distr.Neurite(neuriteType); !ok {
			return nil, fmt.Errorf("%w: no distributions for neurite type %q", ErrConfiguration, neuriteType)
		}
	}

	n := &NeuronGrower{
		params: params,
		distr:  distr,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.sampler == nil {
		WithSeed(0)(n)
	}

	return n, nil
}

// Morphology returns the morphology grown by the last successful Grow.
func (n *NeuronGrower) Morphology() *m.Morphology {
	return n.morph
}

// Grow synthesizes the neuron. On error no morphology is kept.
func (n *NeuronGrower) Grow() (*m.Morphology, error) {
	n.morph = nil
	n.active, n.done = nil, nil

	morph := m.NewMorphology()
	origin := morphmath.ToVec(m.Point(n.params.Origin))
	n.soma = NewSomaGrower(origin, n.sampler.DrawPositive(n.distr.Soma.Size))

	if err := n.growTrunks(morph, origin); err != nil {
		return nil, err
	}

	morph.Soma = n.soma.Build()

	n.logger.Info("trunks placed",
		"trees", len(n.active),
		"soma_radius", n.soma.Radius())

	for iteration := 1; len(n.active) > 0; iteration++ {
		if err := n.next(); err != nil {
			return nil, err
		}

		n.notify(iteration)
	}

	n.logger.Info("neuron grown",
		"sections", len(morph.Sections),
		"points", morph.PointCount())

	n.morph = morph

	return morph, nil
}

func (n *NeuronGrower) growTrunks(morph *m.Morphology, origin r3.Vec) error {
	for _, neuriteType := range n.params.GrowTypes {
		params, _ := n.params.Neurite(neuriteType)
		distr, _ := n.distr.Neurite(neuriteType)

		count := n.sampler.DrawCount(distr.NumTrees)

		points, err := n.trunkPoints(params.Orientation, distr, count)
		if err != nil {
			return fmt.Errorf("%s: %w", neuriteType, err)
		}

		for _, point := range points {
			tree, err := NewTreeGrower(TreeConfig{
				Type:         neuriteType,
				InitialPoint: point,
				Direction:    n.soma.OrientationFromPoint(point),
				Origin:       origin,
				Params:       params,
				Distr:        distr,
			}, morph, n.sampler, n.logger)
			if err != nil {
				return fmt.Errorf("%s: %w", neuriteType, err)
			}

			n.active = append(n.active, tree)
		}

		n.logger.Debug("trunks sampled", "type", neuriteType, "count", count)
	}

	return nil
}

func (n *NeuronGrower) trunkPoints(orientation m.Orientation, distr m.NeuriteDistributions, count int) ([]r3.Vec, error) {
	switch orientation.Mode {
	case m.OrientationExplicit:
		if len(orientation.Vectors) < count {
			return nil, fmt.Errorf("%w: %d trunks requested, %d orientations given",
				ErrInsufficientOrientations, count, len(orientation.Vectors))
		}

		return n.soma.PointsFromOrientations(orientation.Vectors[:count])
	case m.OrientationSample:
		deviations, azimuths := n.sampler.TrunkAngles(distr.Trunk, count)
		return n.soma.PointsFromTrunkAngles(n.sampler, deviations, azimuths), nil
	case m.OrientationFromSpace:
		return nil, fmt.Errorf("%w: orientation %q", ErrUnsupportedFeature, orientation.Mode)
	default:
		return nil, fmt.Errorf("%w: unknown orientation %q", ErrConfiguration, orientation.Mode)
	}
}

// next gives every active tree one turn, dropping the finished ones.
func (n *NeuronGrower) next() error {
	current := n.active
	n.active = make([]*TreeGrower, 0, len(current))

	for _, tree := range current {
		if tree.End() {
			n.done = append(n.done, tree)
			continue
		}

		if err := tree.Next(); err != nil {
			return err
		}

		n.active = append(n.active, tree)
	}

	return nil
}

func (n *NeuronGrower) notify(iteration int) {
	if n.observer == nil {
		return
	}

	progress := m.GrowthProgress{Iteration: iteration, ActiveTrees: len(n.active)}

	for _, trees := range [][]*TreeGrower{n.active, n.done} {
		for _, tree := range trees {
			progress.ActiveSections += tree.Active()
			progress.FinishedSections += tree.Finished()
			progress.EstimatedSections += tree.Estimate()
		}
	}

	n.observer(progress)
}

// Diametrize assigns diameters to the grown morphology with the diameter
// model of the input distributions.
func (n *NeuronGrower) Diametrize() error {
	if n.morph == nil {
		return fmt.Errorf("%w: neuron has not been grown", ErrConfiguration)
	}

	model := n.distr.Diameter
	if model == nil {
		return fmt.Errorf("%w: no diameter model in the distributions", ErrMissingModel)
	}

	switch model.Method {
	case "", m.DiameterDefault:
		n.logger.Warn("default diameter model selected, diameters are left unset")
		return nil
	case m.DiameterExternal:
		if n.diametrizer == nil {
			return fmt.Errorf("%w: external diameter method without a diametrizer", ErrMissingModel)
		}

		return n.diametrizer.Diametrize(n.morph, model)
	case m.DiameterTaper:
		return taperDiametrizer{sampler: n.sampler}.Diametrize(n.morph, model)
	default:
		return fmt.Errorf("%w: unknown diameter method %q", ErrConfiguration, model.Method)
	}
}
