package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

func TestNewBarcode_SortsByLifetime(t *testing.T) {
	barcode := NewBarcode(basalBars(t))

	require.Equal(t, 10, barcode.Len())
	for i := 1; i < barcode.Len(); i++ {
		assert.GreaterOrEqual(t, barcode.Bar(i-1).Lifetime(), barcode.Bar(i).Lifetime())
	}

	assert.InDelta(t, 159.798, barcode.Bar(0).Death, 1e-9)
	assert.InDelta(t, 9.7747, barcode.Bar(1).Birth, 1e-9)
	assert.InDelta(t, 18.5246, barcode.Bar(2).Birth, 1e-9)
	assert.InDelta(t, 159.798, barcode.PersistenceLength(), 1e-9)
}

func TestNewBarcode_StableForEqualLifetimes(t *testing.T) {
	barcode := NewBarcode([]m.Bar{
		{Birth: 0, Death: 10},
		{Birth: 1, Death: 3},
		{Birth: 2, Death: 4},
	})

	assert.InDelta(t, 1.0, barcode.Bar(1).Birth, 1e-12)
	assert.InDelta(t, 2.0, barcode.Bar(2).Birth, 1e-12)
}

func TestNewBarcode_DoesNotAlias(t *testing.T) {
	bars := []m.Bar{{Birth: 1, Death: 2}, {Birth: 0, Death: 10}}
	_ = NewBarcode(bars)

	assert.InDelta(t, 1.0, bars[0].Birth, 1e-12)
}

func TestBarcode_PendingExcludesTermBar(t *testing.T) {
	barcode := NewBarcode(basalBars(t))

	assert.False(t, barcode.IsPending(0))
	assert.True(t, barcode.IsPending(1))
	assert.False(t, barcode.IsPending(-1))
	assert.False(t, barcode.IsPending(42))
	assert.Equal(t, 9, barcode.Remaining())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, barcode.Pending())
}

func TestBarcode_NextBifurcation(t *testing.T) {
	barcode := NewBarcode(basalBars(t))

	assert.Equal(t, 1, barcode.NextBifurcation(math.Inf(-1), 159.798))
	// The floor is inclusive: bar 1 is still eligible at its own birth.
	assert.Equal(t, 1, barcode.NextBifurcation(9.7747, 124.8796))

	require.True(t, barcode.Consume(1))
	assert.Equal(t, 2, barcode.NextBifurcation(9.7747, 124.8796))
	// 25.3 is the smallest birth at or above 20.
	assert.Equal(t, 4, barcode.NextBifurcation(20, 124.8796))
	// Nothing is born before the termination.
	assert.Equal(t, m.NoBifurcation, barcode.NextBifurcation(0, 5))
}

func TestBarcode_NextBifurcation_TiesGoToLowerID(t *testing.T) {
	barcode := NewBarcode([]m.Bar{
		{Birth: 0, Death: 100},
		{Birth: 5, Death: 50},
		{Birth: 5, Death: 40},
	})

	assert.Equal(t, 1, barcode.NextBifurcation(0, 100))
}

func TestBarcode_ConsumeAndClosest(t *testing.T) {
	barcode := NewBarcode(basalBars(t))

	assert.Equal(t, 2, barcode.Closest(19))
	require.True(t, barcode.Consume(2))
	assert.False(t, barcode.Consume(2))
	assert.False(t, barcode.IsPending(2))
	assert.Equal(t, 8, barcode.Remaining())

	// 25.3 is now nearer than 9.7747.
	assert.Equal(t, 4, barcode.Closest(19))
}

func TestBarcode_ClosestOnExhausted(t *testing.T) {
	barcode := NewBarcode([]m.Bar{{Birth: 0, Death: 10}})

	assert.Equal(t, m.NoBifurcation, barcode.Closest(3))
	assert.False(t, barcode.Consume(m.NoBifurcation))
}

func TestBarcode_Criterion(t *testing.T) {
	barcode := NewBarcode(basalBars(t))
	require.True(t, barcode.Consume(1))

	assertStop(t, m.StopCriterion{BifID: 2, Bif: 18.5246, TermID: 1, Term: 124.8796, Ref: 3},
		barcode.criterion(1, 9.7747, 3))

	single := NewBarcode([]m.Bar{{Birth: 0, Death: 10}})
	stop := single.criterion(0, math.Inf(-1), 0)
	assert.Equal(t, m.NoBifurcation, stop.BifID)
	assert.True(t, math.IsInf(stop.Bif, 1))
}
