package morphmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnit(t *testing.T) {
	t.Run("scales to unit length", func(t *testing.T) {
		v := Unit(r3.Vec{X: 3, Y: 4})
		assert.InDelta(t, 1.0, r3.Norm(v), 1e-12)
		assert.InDelta(t, 0.6, v.X, 1e-12)
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, r3.Vec{}, Unit(r3.Vec{}))
		assert.True(t, IsZero(Unit(r3.Vec{X: 1e-20})))
	})
}

func TestRotate(t *testing.T) {
	t.Run("quarter turn about z maps x to y", func(t *testing.T) {
		v := Rotate(XAxis, math.Pi/2, 0)
		assert.InDelta(t, 0.0, v.X, 1e-12)
		assert.InDelta(t, 1.0, v.Y, 1e-12)
	})

	t.Run("z rotation is applied before x rotation", func(t *testing.T) {
		// x -> y (about z), then y -> z (about x).
		v := Rotate(XAxis, math.Pi/2, math.Pi/2)
		assert.InDelta(t, 0.0, v.X, 1e-12)
		assert.InDelta(t, 0.0, v.Y, 1e-12)
		assert.InDelta(t, 1.0, v.Z, 1e-12)
	})

	t.Run("preserves length", func(t *testing.T) {
		v := Rotate(r3.Vec{X: 0.3, Y: -1.2, Z: 2}, 0.7, -1.1)
		assert.InDelta(t, r3.Norm(r3.Vec{X: 0.3, Y: -1.2, Z: 2}), r3.Norm(v), 1e-12)
	})
}

func TestRandomUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 100 {
		assert.InDelta(t, 1.0, r3.Norm(RandomUnit(rng)), 1e-9)
	}
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleBetween(XAxis, ZAxis), 1e-12)
	assert.InDelta(t, 0.0, AngleBetween(XAxis, r3.Vec{}), 1e-12)
}

func TestPointConversion(t *testing.T) {
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	assert.Equal(t, v, ToVec(ToPoint(v)))
}
