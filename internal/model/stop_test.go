package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopCriterion_Expectations(t *testing.T) {
	stop := StopCriterion{BifID: 2, Bif: 18.5, TermID: 1, Term: 124.8, Ref: 10}

	assert.True(t, stop.HasBifurcation())
	assert.InDelta(t, 8.5, stop.ExpectedBifurcation(), 1e-12)
	assert.InDelta(t, 114.8, stop.ExpectedTermination(), 1e-12)

	stop.BifID, stop.Bif = NoBifurcation, math.Inf(1)
	assert.False(t, stop.HasBifurcation())
	assert.True(t, math.IsInf(stop.ExpectedBifurcation(), 1))
}

func TestStopCriterion_JSON(t *testing.T) {
	t.Run("finite bif", func(t *testing.T) {
		stop := StopCriterion{BifID: 4, Bif: 25.3, TermID: 1, Term: 124.8, Ref: 0}

		out, err := json.Marshal(stop)
		require.NoError(t, err)
		assert.JSONEq(t, `{"bif_id": 4, "bif": 25.3, "term_id": 1, "term": 124.8, "ref": 0}`, string(out))

		var back StopCriterion
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, stop, back)
	})

	t.Run("infinite bif is null", func(t *testing.T) {
		stop := StopCriterion{BifID: NoBifurcation, Bif: math.Inf(1), TermID: 3, Term: 95.5, Ref: 30.1}

		out, err := json.Marshal(stop)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"bif":null`)

		var back StopCriterion
		require.NoError(t, json.Unmarshal(out, &back))
		assert.True(t, math.IsInf(back.Bif, 1))
		assert.Equal(t, NoBifurcation, back.BifID)
	})
}
