package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// stubAlgorithm records Curate calls and hands back a fixed criterion.
type stubAlgorithm struct {
	curated  []m.StopCriterion
	retarget *m.StopCriterion
}

func (s *stubAlgorithm) Initialize() (m.StopCriterion, int) {
	return m.StopCriterion{}, 0
}

func (s *stubAlgorithm) Curate(stop m.StopCriterion) m.StopCriterion {
	s.curated = append(s.curated, stop)
	if s.retarget != nil {
		return *s.retarget
	}

	return stop
}

func (s *stubAlgorithm) Bifurcate(SectionView) (ChildSpec, ChildSpec, error) {
	return ChildSpec{}, ChildSpec{}, nil
}

func terminateAt(term float64) m.StopCriterion {
	return m.StopCriterion{BifID: m.NoBifurcation, Bif: math.Inf(1), TermID: 0, Term: term}
}

func straightSection(stop m.StopCriterion, step float64) SectionConfig {
	return SectionConfig{
		FirstPoint: r3.Vec{},
		Direction:  morphmath.XAxis,
		Process:    m.ProcessMajor,
		Stop:       stop,
		StepSize:   m.Normal(step, 0),
		Mixture:    Mixture{Targeting: 1},
	}
}

func TestSectionGrower_Step(t *testing.T) {
	t.Run("pure targeting steps along the direction", func(t *testing.T) {
		grower := NewSectionGrower(straightSection(terminateAt(100), 2), &stubAlgorithm{}, seededSampler(1))

		grower.Step()
		grower.Step()

		require.Len(t, grower.Points(), 3)
		assert.Equal(t, r3.Vec{X: 4}, grower.Points()[2])
		assert.Equal(t, 4.0, grower.PathLength())
		assert.Equal(t, 4.0, grower.Metric())
		assert.Equal(t, StateGrowing, grower.State())
	})

	t.Run("always takes one step before checking", func(t *testing.T) {
		grower := NewSectionGrower(straightSection(terminateAt(0), 1), &stubAlgorithm{}, seededSampler(1))

		grower.Step()

		assert.Len(t, grower.Points(), 2)
		assert.Equal(t, StateTerminating, grower.State())
	})

	t.Run("bifurcates once the metric reaches bif", func(t *testing.T) {
		stop := m.StopCriterion{BifID: 1, Bif: 3, TermID: 0, Term: 10}
		grower := NewSectionGrower(straightSection(stop, 2), &stubAlgorithm{}, seededSampler(1))

		grower.Step()
		assert.Equal(t, StateGrowing, grower.State())

		grower.Step()
		assert.Equal(t, StateBifurcating, grower.State())
	})

	t.Run("terminates once the metric reaches term", func(t *testing.T) {
		grower := NewSectionGrower(straightSection(terminateAt(3), 2), &stubAlgorithm{}, seededSampler(1))

		grower.Step()
		grower.Step()

		assert.Equal(t, StateTerminating, grower.State())
	})

	t.Run("does nothing once stopped", func(t *testing.T) {
		grower := NewSectionGrower(straightSection(terminateAt(1), 2), &stubAlgorithm{}, seededSampler(1))

		grower.Step()
		grower.Step()

		assert.Len(t, grower.Points(), 2)
	})

	t.Run("curates the stop criterion before every step", func(t *testing.T) {
		retarget := terminateAt(1)
		algo := &stubAlgorithm{retarget: &retarget}
		stop := m.StopCriterion{BifID: 1, Bif: 50, TermID: 0, Term: 100}
		grower := NewSectionGrower(straightSection(stop, 2), algo, seededSampler(1))

		grower.Step()

		require.Len(t, algo.curated, 1)
		assert.Equal(t, stop, algo.curated[0])
		assert.Equal(t, retarget, grower.Stop())
		assert.Equal(t, StateTerminating, grower.State())
	})
}

func TestSectionGrower_UndeterminedDirection(t *testing.T) {
	cfg := straightSection(terminateAt(100), 1)
	cfg.Direction = r3.Vec{}
	cfg.Mixture = Mixture{Randomness: 1}
	grower := NewSectionGrower(cfg, &stubAlgorithm{}, seededSampler(2))

	assert.True(t, morphmath.IsZero(grower.View().Direction))

	grower.Step()

	assert.InDelta(t, 1.0, r3.Norm(grower.View().Direction), 1e-9)
	assert.InDelta(t, 1.0, grower.PathLength(), 1e-12)
}

func TestSectionGrower_RadialMetric(t *testing.T) {
	cfg := straightSection(terminateAt(100), 4)
	cfg.FirstPoint = r3.Vec{X: 3}
	cfg.Direction = r3.Vec{Y: 1}
	cfg.Metric = m.MetricRadialDistances
	grower := NewSectionGrower(cfg, &stubAlgorithm{}, seededSampler(1))

	grower.Step()

	assert.InDelta(t, 5.0, grower.Metric(), 1e-12)
	assert.Equal(t, 4.0, grower.PathLength())
}

func TestSectionGrower_History(t *testing.T) {
	grower := NewSectionGrower(straightSection(terminateAt(100), 1), &stubAlgorithm{}, seededSampler(1))
	assert.Equal(t, r3.Vec{}, grower.History())

	for range 7 {
		grower.Step()
	}

	assert.Len(t, grower.Latest(), memory)
	assertVecInDelta(t, morphmath.XAxis, grower.History(), 1e-12)
}

func TestSectionGrower_InheritsLatest(t *testing.T) {
	cfg := straightSection(terminateAt(100), 1)
	cfg.Latest = []r3.Vec{{Y: 1}}
	cfg.PathLength = 12
	grower := NewSectionGrower(cfg, &stubAlgorithm{}, seededSampler(1))

	assertVecInDelta(t, r3.Vec{Y: 1}, grower.History(), 1e-12)
	assert.Equal(t, 12.0, grower.Metric())

	// The inherited slice is copied.
	cfg.Latest[0] = r3.Vec{Z: 1}
	assertVecInDelta(t, r3.Vec{Y: 1}, grower.History(), 1e-12)
}

func TestSectionState_String(t *testing.T) {
	assert.Equal(t, "growing", StateGrowing.String())
	assert.Equal(t, "bifurcating", StateBifurcating.String())
	assert.Equal(t, "terminating", StateTerminating.String())
	assert.Equal(t, "unknown", SectionState(9).String())
}
