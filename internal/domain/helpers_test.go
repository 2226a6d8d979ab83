package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacquemi-bbp/NeuroTS/internal/adapter"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const (
	paramsFixture       = m.Path("testdata/dummy_params.json")
	distributionFixture = m.Path("testdata/dummy_distribution.json")
)

func loadFixtures(t *testing.T) (m.InputParameters, m.InputDistributions) {
	t.Helper()

	loader := adapter.NewInputLoader()

	params, err := loader.LoadParameters(paramsFixture)
	require.NoError(t, err)

	distr, err := loader.LoadDistributions(distributionFixture)
	require.NoError(t, err)

	return params, distr
}

func basalBars(t *testing.T) []m.Bar {
	t.Helper()

	_, distr := loadFixtures(t)
	basal, ok := distr.Neurite(m.NeuriteBasal)
	require.True(t, ok)
	require.Len(t, basal.Barcodes, 1)

	return basal.Barcodes[0]
}

func neuriteParams(method m.GrowthMethod, branchingMethod string) m.NeuriteParameters {
	history := 0.5

	return m.NeuriteParameters{
		GrowthMethod:    method,
		BranchingMethod: branchingMethod,
		Randomness:      0.2,
		Targeting:       0.3,
		History:         &history,
		HasApicalTuft:   true,
		BiasLength:      0.5,
		Bias:            0.5,
	}
}

func seededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func assertStop(t *testing.T, want, got m.StopCriterion) {
	t.Helper()

	assert.Equal(t, want.BifID, got.BifID, "bif_id")
	assert.Equal(t, want.TermID, got.TermID, "term_id")
	assert.InDelta(t, want.Term, got.Term, 1e-9, "term")
	assert.InDelta(t, want.Ref, got.Ref, 1e-9, "ref")

	if want.BifID == m.NoBifurcation {
		assert.False(t, got.HasBifurcation())
		return
	}
	assert.InDelta(t, want.Bif, got.Bif, 1e-9, "bif")
}
