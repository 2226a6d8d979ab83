// Package morphmath holds the vector geometry used while growing
// morphologies: rotations about the fixed axes, normalization and uniform
// sampling of directions.
package morphmath

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// Epsilon is the norm below which a vector is treated as zero.
const Epsilon = 1e-12

var (
	// XAxis is the unit x vector.
	XAxis = r3.Vec{X: 1}
	// ZAxis is the unit z vector.
	ZAxis = r3.Vec{Z: 1}
)

// Unit returns v scaled to unit length, or the zero vector when v is
// degenerate.
func Unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < Epsilon || math.IsNaN(n) || math.IsInf(n, 0) {
		return r3.Vec{}
	}

	return r3.Scale(1/n, v)
}

// IsZero reports whether v is numerically the zero vector.
func IsZero(v r3.Vec) bool {
	return r3.Norm(v) < Epsilon
}

// Rotate turns v by phi about the z axis, then by theta about the x axis.
func Rotate(v r3.Vec, phi, theta float64) r3.Vec {
	v = r3.NewRotation(phi, ZAxis).Rotate(v)
	return r3.NewRotation(theta, XAxis).Rotate(v)
}

// RandomUnit draws a direction uniformly on the unit sphere.
func RandomUnit(rng *rand.Rand) r3.Vec {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)

	return r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// FromSpherical builds the unit vector with azimuth phi in the xy plane and
// polar angle theta from the z axis.
func FromSpherical(phi, theta float64) r3.Vec {
	return r3.Vec{
		X: math.Sin(theta) * math.Cos(phi),
		Y: math.Sin(theta) * math.Sin(phi),
		Z: math.Cos(theta),
	}
}

// AngleBetween returns the angle between two vectors in radians.
func AngleBetween(a, b r3.Vec) float64 {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na < Epsilon || nb < Epsilon {
		return 0
	}

	c := r3.Dot(a, b) / (na * nb)

	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// ToVec converts a stored point to a vector.
func ToVec(p m.Point) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// ToPoint converts a vector to a stored point.
func ToPoint(v r3.Vec) m.Point {
	return m.Point{v.X, v.Y, v.Z}
}
