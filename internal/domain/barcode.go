package domain

import (
	"math"
	"sort"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// Barcode is the arena of bars owned by one growth algorithm. The bars are
// sorted once by decreasing lifetime and then only referenced by index: bar
// 0 is the trunk's termination bar, and every other bar waits in the pending
// set until one section consumes it for a bifurcation.
type Barcode struct {
	bars    []m.Bar
	pending []bool
	left    int
}

// NewBarcode copies and sorts bars. Equal lifetimes keep their input order.
func NewBarcode(bars []m.Bar) *Barcode {
	sorted := make([]m.Bar, len(bars))
	copy(sorted, bars)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lifetime() > sorted[j].Lifetime()
	})

	pending := make([]bool, len(sorted))
	for i := 1; i < len(sorted); i++ {
		pending[i] = true
	}

	return &Barcode{bars: sorted, pending: pending, left: max(len(sorted)-1, 0)}
}

// Len returns the number of bars.
func (b *Barcode) Len() int {
	return len(b.bars)
}

// Bar returns the bar with the given id.
func (b *Barcode) Bar(id int) m.Bar {
	return b.bars[id]
}

// PersistenceLength is the lifetime of the longest bar.
func (b *Barcode) PersistenceLength() float64 {
	if len(b.bars) == 0 {
		return 0
	}

	return b.bars[0].Lifetime()
}

// IsPending reports whether bar id still waits for its bifurcation.
func (b *Barcode) IsPending(id int) bool {
	return id >= 0 && id < len(b.pending) && b.pending[id]
}

// Remaining returns the number of pending bars.
func (b *Barcode) Remaining() int {
	return b.left
}

// Pending returns the ids of the pending bars in increasing order.
func (b *Barcode) Pending() []int {
	ids := make([]int, 0, b.left)
	for id, ok := range b.pending {
		if ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// NextBifurcation returns the pending bar with the smallest birth in
// [floor, term), ties going to the lower id, or m.NoBifurcation.
func (b *Barcode) NextBifurcation(floor, term float64) int {
	best := m.NoBifurcation

	for id, ok := range b.pending {
		if !ok {
			continue
		}

		birth := b.bars[id].Birth
		if birth < floor || birth >= term {
			continue
		}

		if best == m.NoBifurcation || birth < b.bars[best].Birth {
			best = id
		}
	}

	return best
}

// Closest returns the pending bar whose birth is nearest to value, ties
// going to the lower id, or m.NoBifurcation when none is left.
func (b *Barcode) Closest(value float64) int {
	best := m.NoBifurcation
	bestDistance := math.Inf(1)

	for id, ok := range b.pending {
		if !ok {
			continue
		}

		if d := math.Abs(b.bars[id].Birth - value); d < bestDistance {
			best, bestDistance = id, d
		}
	}

	return best
}

// Consume removes bar id from the pending set.
func (b *Barcode) Consume(id int) bool {
	if !b.IsPending(id) {
		return false
	}

	b.pending[id] = false
	b.left--

	return true
}

// criterion builds the stop criterion terminating on bar termID, starting at
// ref, and bifurcating on the next pending bar born at or after floor.
func (b *Barcode) criterion(termID int, floor, ref float64) m.StopCriterion {
	term := b.bars[termID].Death
	stop := m.StopCriterion{BifID: m.NoBifurcation, Bif: math.Inf(1), TermID: termID, Term: term, Ref: ref}

	if bifID := b.NextBifurcation(floor, term); bifID != m.NoBifurcation {
		stop.BifID, stop.Bif = bifID, b.bars[bifID].Birth
	}

	return stop
}
