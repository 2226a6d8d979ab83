package domain

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jacquemi-bbp/NeuroTS/internal/domain/branching"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// SectionView is the state of a bifurcating section read by the growth
// algorithm.
type SectionView struct {
	Direction r3.Vec
	History   r3.Vec
	LastPoint r3.Vec
	Process   m.ProcessType
	Stop      m.StopCriterion
	Metric    float64
}

// ChildSpec describes one section created by a bifurcation.
type ChildSpec struct {
	FirstPoint r3.Vec
	Direction  r3.Vec
	Process    m.ProcessType
	Stop       m.StopCriterion
}

// Algorithm drives the branching of one tree from its barcode.
type Algorithm interface {
	// Initialize returns the trunk stop criterion and the estimated number
	// of sections of the tree.
	Initialize() (m.StopCriterion, int)
	// Curate retargets a stop criterion whose bifurcation bar was consumed
	// by another section.
	Curate(stop m.StopCriterion) m.StopCriterion
	// Bifurcate consumes one bar and returns the two child sections.
	Bifurcate(section SectionView) (ChildSpec, ChildSpec, error)
}

// directionStrategy is the part of a growth method that differs between
// variants: where the children point and which process they continue.
type directionStrategy interface {
	directions(a *tmdAlgorithm, section SectionView, angles m.Angles, stops [2]m.StopCriterion) ([2]r3.Vec, [2]m.ProcessType)
}

type tmdAlgorithm struct {
	barcode  *Barcode
	params   m.NeuriteParameters
	angles   *m.BifurcationAngles
	sampler  *Sampler
	logger   *slog.Logger
	strategy directionStrategy
}

// NewAlgorithm builds the growth algorithm selected by params for one
// barcode. An empty growth method selects plain tmd.
func NewAlgorithm(
	bars []m.Bar,
	params m.NeuriteParameters,
	distr m.NeuriteDistributions,
	sampler *Sampler,
	logger *slog.Logger,
) (Algorithm, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: empty barcode", ErrConfiguration)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &tmdAlgorithm{
		barcode: NewBarcode(bars),
		params:  params,
		angles:  distr.Angles,
		sampler: sampler,
		logger:  logger,
	}

	switch params.GrowthMethod {
	case "", m.GrowthTMD:
		a.strategy = baseStrategy{}
	case m.GrowthTMDApical:
		method, err := lookupBranching(params.BranchingMethod, branching.NameBioOriented)
		if err != nil {
			return nil, err
		}
		a.strategy = apicalStrategy{secondary: method}
	case m.GrowthTMDGradient:
		method, err := lookupBranching(params.BranchingMethod, branching.NameDirectional)
		if err != nil {
			return nil, err
		}
		a.strategy = gradientStrategy{method: method}
	default:
		return nil, fmt.Errorf("%w: unknown growth method %q", ErrConfiguration, params.GrowthMethod)
	}

	return a, nil
}

func lookupBranching(name, fallback string) (branching.Method, error) {
	if name == "" {
		name = fallback
	}

	method, err := branching.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return method, nil
}

// Barcode exposes the bar arena, mostly for inspection in tests.
func (a *tmdAlgorithm) Barcode() *Barcode {
	return a.barcode
}

func (a *tmdAlgorithm) Initialize() (m.StopCriterion, int) {
	stop := a.barcode.criterion(0, math.Inf(-1), 0)

	return stop, a.barcode.Len()
}

func (a *tmdAlgorithm) Curate(stop m.StopCriterion) m.StopCriterion {
	if stop.BifID == m.NoBifurcation || a.barcode.IsPending(stop.BifID) {
		return stop
	}

	retargeted := a.barcode.criterion(stop.TermID, stop.Bif, stop.Ref)
	a.logger.Debug("retargeted bifurcation",
		"consumed", stop.BifID,
		"bif_id", retargeted.BifID,
		"bif", retargeted.Bif)

	return retargeted
}

func (a *tmdAlgorithm) Bifurcate(section SectionView) (ChildSpec, ChildSpec, error) {
	bifID := section.Stop.BifID
	if !a.barcode.IsPending(bifID) {
		bifID = a.barcode.Closest(section.Metric)
	}

	if !a.barcode.Consume(bifID) {
		return ChildSpec{}, ChildSpec{}, fmt.Errorf("%w: section at metric %g", ErrBarcodeExhausted, section.Metric)
	}

	consumed := a.barcode.Bar(bifID)
	stops := [2]m.StopCriterion{
		a.barcode.criterion(section.Stop.TermID, consumed.Birth, section.Metric),
		a.barcode.criterion(bifID, consumed.Birth, section.Metric),
	}

	var angles m.Angles
	if consumed.Angles != nil {
		angles = *consumed.Angles
	} else {
		angles = a.sampler.Angles(a.angles)
	}

	directions, processes := a.strategy.directions(a, section, angles, stops)

	a.logger.Debug("bifurcation",
		"bar", bifID,
		"metric", section.Metric,
		"pending", a.barcode.Remaining())

	children := [2]ChildSpec{}
	for i := range children {
		children[i] = ChildSpec{
			FirstPoint: section.LastPoint,
			Direction:  directions[i],
			Process:    processes[i],
			Stop:       stops[i],
		}
	}

	return children[0], children[1], nil
}

// parentDirection is the direction the bifurcating section was heading.
func parentDirection(section SectionView) r3.Vec {
	if dir := morphmath.Unit(section.Direction); !morphmath.IsZero(dir) {
		return dir
	}

	if dir := morphmath.Unit(section.History); !morphmath.IsZero(dir) {
		return dir
	}

	return morphmath.ZAxis
}

// baseStrategy leaves both children without target: they follow their
// inherited history and noise.
type baseStrategy struct{}

func (baseStrategy) directions(*tmdAlgorithm, SectionView, m.Angles, [2]m.StopCriterion) ([2]r3.Vec, [2]m.ProcessType) {
	return [2]r3.Vec{}, [2]m.ProcessType{m.ProcessMajor, m.ProcessMajor}
}

// apicalStrategy grows an apical trunk: the main axis keeps its heading and
// sheds secondary branches until it reaches the tuft, where it splits into
// two major branches.
type apicalStrategy struct {
	secondary branching.Method
}

func (s apicalStrategy) directions(a *tmdAlgorithm, section SectionView, angles m.Angles, _ [2]m.StopCriterion) ([2]r3.Vec, [2]m.ProcessType) {
	parent := parentDirection(section)

	if section.Process != m.ProcessMajor {
		d1, d2 := s.secondary(a.sampler.Rand(), parent, angles)
		return [2]r3.Vec{d1, d2}, [2]m.ProcessType{m.ProcessSecondary, m.ProcessSecondary}
	}

	if a.inTuft(section.Metric) {
		return [2]r3.Vec{parent, parent}, [2]m.ProcessType{m.ProcessMajor, m.ProcessMajor}
	}

	_, side := branching.BioOriented(a.sampler.Rand(), parent, angles)

	return [2]r3.Vec{parent, side}, [2]m.ProcessType{m.ProcessMajor, m.ProcessSecondary}
}

func (a *tmdAlgorithm) inTuft(metric float64) bool {
	if !a.params.HasApicalTuft || a.params.BiasLength <= 0 {
		return false
	}

	return metric >= a.params.BiasLength*a.barcode.PersistenceLength()
}

// gradientStrategy bends long-lived children back towards the parent
// direction.
type gradientStrategy struct {
	method branching.Method
}

func (s gradientStrategy) directions(a *tmdAlgorithm, section SectionView, angles m.Angles, stops [2]m.StopCriterion) ([2]r3.Vec, [2]m.ProcessType) {
	parent := parentDirection(section)
	d1, d2 := s.method(a.sampler.Rand(), parent, angles)
	directions := [2]r3.Vec{d1, d2}

	threshold := a.params.BiasLength * a.barcode.PersistenceLength()
	for i, stop := range stops {
		if stop.ExpectedTermination() <= threshold {
			continue
		}

		blended := r3.Add(r3.Scale(1-a.params.Bias, directions[i]), r3.Scale(a.params.Bias, parent))
		if blended = morphmath.Unit(blended); !morphmath.IsZero(blended) {
			directions[i] = blended
		}
	}

	return directions, [2]m.ProcessType{m.ProcessMajor, m.ProcessMajor}
}
