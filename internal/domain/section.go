package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// SectionState is the lifecycle state of a growing section.
type SectionState int

// Section states. A section leaves StateGrowing exactly once.
const (
	StateGrowing SectionState = iota
	StateBifurcating
	StateTerminating
)

func (s SectionState) String() string {
	switch s {
	case StateGrowing:
		return "growing"
	case StateBifurcating:
		return "bifurcating"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

const (
	// memory is the number of recent directions kept for the history term.
	memory = 5
	// maxSectionSteps caps the length of one section when the metric
	// cannot reach its thresholds, e.g. a radial metric on a curled path.
	maxSectionSteps = 10000
)

// historyWeights weight the remembered directions from oldest to newest.
var historyWeights = func() [memory]float64 {
	var w [memory]float64
	for i := range w {
		w[i] = math.Exp(float64(i + 1 - memory))
	}
	return w
}()

// Mixture holds the weights of the three terms of the step direction.
type Mixture struct {
	Randomness float64
	Targeting  float64
	History    float64
}

// MixtureOf extracts the step mixture of a neurite's parameters.
func MixtureOf(params m.NeuriteParameters) Mixture {
	return Mixture{
		Randomness: params.Randomness,
		Targeting:  params.Targeting,
		History:    params.HistoryWeight(),
	}
}

// SectionConfig is everything a SectionGrower needs to start.
type SectionConfig struct {
	FirstPoint r3.Vec
	Direction  r3.Vec
	Process    m.ProcessType
	Stop       m.StopCriterion
	StepSize   m.Distribution
	Mixture    Mixture
	Metric     m.FiltrationMetric
	// Origin is the soma center, used by the radial metric.
	Origin r3.Vec
	// PathLength is the path distance from the soma at FirstPoint.
	PathLength float64
	// Latest are the directions inherited from the parent section.
	Latest []r3.Vec
}

// SectionGrower grows one section step by step until its stop criterion
// asks for a bifurcation or a termination.
type SectionGrower struct {
	cfg        SectionConfig
	sampler    *Sampler
	algo       Algorithm
	direction  r3.Vec
	stop       m.StopCriterion
	tip        r3.Vec
	pathLength float64
	latest     []r3.Vec
	points     []r3.Vec
	steps      int
	state      SectionState
}

// NewSectionGrower starts a section at cfg.FirstPoint.
func NewSectionGrower(cfg SectionConfig, algo Algorithm, sampler *Sampler) *SectionGrower {
	latest := make([]r3.Vec, len(cfg.Latest), memory)
	copy(latest, cfg.Latest)

	return &SectionGrower{
		cfg:        cfg,
		sampler:    sampler,
		algo:       algo,
		direction:  morphmath.Unit(cfg.Direction),
		stop:       cfg.Stop,
		tip:        cfg.FirstPoint,
		pathLength: cfg.PathLength,
		latest:     latest,
		points:     []r3.Vec{cfg.FirstPoint},
		state:      StateGrowing,
	}
}

// State returns the current lifecycle state.
func (s *SectionGrower) State() SectionState {
	return s.state
}

// Stop returns the current stop criterion.
func (s *SectionGrower) Stop() m.StopCriterion {
	return s.stop
}

// Points returns the points grown so far, first point included.
func (s *SectionGrower) Points() []r3.Vec {
	return s.points
}

// Process returns the process type of the section.
func (s *SectionGrower) Process() m.ProcessType {
	return s.cfg.Process
}

// PathLength returns the path distance from the soma to the tip.
func (s *SectionGrower) PathLength() float64 {
	return s.pathLength
}

// Metric returns the filtration value at the tip.
func (s *SectionGrower) Metric() float64 {
	if s.cfg.Metric == m.MetricRadialDistances {
		return r3.Norm(r3.Sub(s.tip, s.cfg.Origin))
	}

	return s.pathLength
}

// History returns the exponentially weighted sum of the recent step
// directions, normalized, or the zero vector before the first step.
func (s *SectionGrower) History() r3.Vec {
	var sum r3.Vec

	offset := memory - len(s.latest)
	for i, dir := range s.latest {
		sum = r3.Add(sum, r3.Scale(historyWeights[offset+i], dir))
	}

	return morphmath.Unit(sum)
}

// View snapshots the section for the growth algorithm.
func (s *SectionGrower) View() SectionView {
	return SectionView{
		Direction: s.direction,
		History:   s.History(),
		LastPoint: s.tip,
		Process:   s.cfg.Process,
		Stop:      s.stop,
		Metric:    s.Metric(),
	}
}

// Latest returns a copy of the remembered directions, for the children.
func (s *SectionGrower) Latest() []r3.Vec {
	latest := make([]r3.Vec, len(s.latest))
	copy(latest, s.latest)

	return latest
}

// Step advances the section by one point and updates its state.
func (s *SectionGrower) Step() {
	if s.state != StateGrowing {
		return
	}

	s.stop = s.algo.Curate(s.stop)

	length := s.sampler.DrawPositive(s.cfg.StepSize)
	dir := s.nextDirection()

	s.tip = r3.Add(s.tip, r3.Scale(length, dir))
	s.points = append(s.points, s.tip)
	s.pathLength += length
	s.steps++
	s.remember(dir)

	if morphmath.IsZero(s.direction) {
		s.direction = dir
	}

	s.state = s.check()
}

func (s *SectionGrower) nextDirection() r3.Vec {
	mix := s.cfg.Mixture
	noise := morphmath.RandomUnit(s.sampler.Rand())

	d := r3.Scale(mix.Targeting, s.direction)
	d = r3.Add(d, r3.Scale(mix.Randomness, noise))
	d = r3.Add(d, r3.Scale(mix.History, s.History()))

	if u := morphmath.Unit(d); !morphmath.IsZero(u) {
		return u
	}

	return noise
}

func (s *SectionGrower) remember(dir r3.Vec) {
	if len(s.latest) == memory {
		copy(s.latest, s.latest[1:])
		s.latest = s.latest[:memory-1]
	}

	s.latest = append(s.latest, dir)
}

func (s *SectionGrower) check() SectionState {
	metric := s.Metric()

	switch {
	case s.stop.HasBifurcation() && metric >= s.stop.Bif:
		return StateBifurcating
	case metric >= s.stop.Term:
		return StateTerminating
	case s.steps >= maxSectionSteps:
		return StateTerminating
	default:
		return StateGrowing
	}
}
