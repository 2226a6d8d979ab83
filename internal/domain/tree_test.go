package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

func growBasalTree(t *testing.T, seed int64) (*TreeGrower, *m.Morphology) {
	t.Helper()

	params, distr := loadFixtures(t)
	basalParams, _ := params.Neurite(m.NeuriteBasal)
	basalDistr, _ := distr.Neurite(m.NeuriteBasal)

	morph := m.NewMorphology()
	tree, err := NewTreeGrower(TreeConfig{
		Type:         m.NeuriteBasal,
		InitialPoint: r3.Vec{X: 1.1},
		Direction:    morphmath.XAxis,
		Params:       basalParams,
		Distr:        basalDistr,
	}, morph, seededSampler(seed), nil)
	require.NoError(t, err)

	for !tree.End() {
		require.NoError(t, tree.Next())
	}

	return tree, morph
}

func TestNewTreeGrower(t *testing.T) {
	_, distr := loadFixtures(t)
	basalDistr, _ := distr.Neurite(m.NeuriteBasal)
	morph := m.NewMorphology()

	tree, err := NewTreeGrower(TreeConfig{
		Type:         m.NeuriteBasal,
		InitialPoint: r3.Vec{X: 1.1},
		Direction:    morphmath.XAxis,
		Params:       neuriteParams(m.GrowthTMD, ""),
		Distr:        basalDistr,
	}, morph, seededSampler(1), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, tree.Active())
	assert.Equal(t, 0, tree.Finished())
	assert.Equal(t, 10, tree.Estimate())
	require.Len(t, morph.Sections, 1)

	trunk := morph.Sections[0]
	assert.Equal(t, m.NoParent, trunk.Parent)
	assert.Equal(t, m.Point{1.1, 0, 0}, trunk.Points[0])
	assertStop(t, m.StopCriterion{BifID: 1, Bif: 9.7747, TermID: 0, Term: 159.798}, trunk.Stop)
}

func TestNewTreeGrower_InvalidMethod(t *testing.T) {
	_, distr := loadFixtures(t)
	basalDistr, _ := distr.Neurite(m.NeuriteBasal)

	_, err := NewTreeGrower(TreeConfig{
		Type:   m.NeuriteBasal,
		Params: neuriteParams("tmd_spiral", ""),
		Distr:  basalDistr,
	}, m.NewMorphology(), seededSampler(1), nil)

	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTreeGrower_GrowsWholeBarcode(t *testing.T) {
	tree, morph := growBasalTree(t, 42)

	// Every bar but the trunk one opens a bifurcation.
	require.Len(t, morph.Sections, 19)
	assert.Equal(t, 19, tree.Finished())
	assert.Equal(t, 0, tree.Active())

	consumed := map[int]bool{}
	terminations := 0

	for _, section := range morph.Sections {
		assert.GreaterOrEqual(t, len(section.Points), 2, "section %d", section.ID)
		assert.Len(t, section.Diameters, len(section.Points))

		switch len(section.Children) {
		case 0:
			terminations++
		case 2:
			for _, child := range section.Children {
				c := morph.Section(child)
				assert.Equal(t, section.LastPoint(), c.Points[0])
				assert.GreaterOrEqual(t, c.Stop.Ref, section.Stop.Ref)
				assert.GreaterOrEqual(t, c.Stop.Bif, section.Stop.Bif)
			}

			second := morph.Section(section.Children[1])
			assert.False(t, consumed[second.Stop.TermID], "bar %d consumed twice", second.Stop.TermID)
			consumed[second.Stop.TermID] = true
		default:
			t.Errorf("section %d has %d children", section.ID, len(section.Children))
		}
	}

	assert.Equal(t, 10, terminations)
	assert.Len(t, consumed, 9)
}

func TestTreeGrower_KeepsStartCriteria(t *testing.T) {
	_, morph := growBasalTree(t, 42)

	trunk := morph.Sections[0]
	assertStop(t, m.StopCriterion{BifID: 1, Bif: 9.7747, TermID: 0, Term: 159.798}, trunk.Stop)
	require.Equal(t, []int{1, 2}, trunk.Children)

	// Both children start on bar 2; only one of them can consume it, the
	// other is retargeted while growing.
	for i, termID := range []int{0, 1} {
		child := morph.Sections[trunk.Children[i]]
		assert.Equal(t, 2, child.Stop.BifID, "child %d", i)
		assert.InDelta(t, 18.5246, child.Stop.Bif, 1e-9, "child %d", i)
		assert.Equal(t, termID, child.Stop.TermID, "child %d", i)
		assert.GreaterOrEqual(t, child.Stop.Ref, 9.7747, "child %d", i)
	}
}

func TestTreeGrower_Reproducible(t *testing.T) {
	_, a := growBasalTree(t, 7)
	_, b := growBasalTree(t, 7)

	assert.Equal(t, a, b)
}
