// Package branching provides the bifurcation direction models: functions
// turning the direction of a bifurcating section and four angles
// (phi0, theta0, phi1, theta1) into the directions of its two children.
package branching

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// ErrUnknownMethod is returned by Lookup for an unregistered model name.
var ErrUnknownMethod = errors.New("branching: unknown method")

// Method computes the two child directions of a bifurcation. Both outputs
// are unit vectors.
type Method func(rng *rand.Rand, direction r3.Vec, angles m.Angles) (r3.Vec, r3.Vec)

// Model names as they appear in the input parameters.
const (
	NameRandom      = "random"
	NameSymmetric   = "symmetric"
	NameBioOriented = "bio_oriented"
	NameDirectional = "directional"
	NameBioSmoothed = "bio_smoothed"
)

var registry = map[string]Method{
	NameRandom:      Random,
	NameSymmetric:   Symmetric,
	NameBioOriented: BioOriented,
	NameDirectional: Directional,
	NameBioSmoothed: BioSmoothed,
}

// Lookup returns the model registered under name.
func Lookup(name string) (Method, error) {
	method, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return method, nil
}

// Names lists the registered model names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Random ignores its inputs and draws both directions uniformly on the
// unit sphere.
func Random(rng *rand.Rand, _ r3.Vec, _ m.Angles) (r3.Vec, r3.Vec) {
	return morphmath.RandomUnit(rng), morphmath.RandomUnit(rng)
}

// Symmetric rotates the direction by (phi1/2, theta1/2) for the first child
// and by (-phi1/2, -theta1/2) for the second. phi0 and theta0 are unused.
func Symmetric(_ *rand.Rand, direction r3.Vec, angles m.Angles) (r3.Vec, r3.Vec) {
	parent := unitInput(direction)
	dir1 := renormalize(morphmath.Rotate(parent, angles[2]/2, angles[3]/2), parent)
	dir2 := renormalize(morphmath.Rotate(parent, -angles[2]/2, -angles[3]/2), parent)

	return dir1, dir2
}

// BioOriented rotates the direction by (phi0, theta0) for the first child,
// then rotates the first child by (phi1, theta1) for the second.
func BioOriented(_ *rand.Rand, direction r3.Vec, angles m.Angles) (r3.Vec, r3.Vec) {
	parent := unitInput(direction)
	dir1 := renormalize(morphmath.Rotate(parent, angles[0], angles[1]), parent)
	dir2 := renormalize(morphmath.Rotate(dir1, angles[2], angles[3]), dir1)

	return dir1, dir2
}

// Directional keeps the direction for the first child and rotates it by
// (phi1, theta1) for the second.
func Directional(_ *rand.Rand, direction r3.Vec, angles m.Angles) (r3.Vec, r3.Vec) {
	parent := unitInput(direction)
	dir2 := renormalize(morphmath.Rotate(parent, angles[2], angles[3]), parent)

	return parent, dir2
}

// BioSmoothed is BioOriented with each child pulled halfway back toward the
// parent direction.
func BioSmoothed(rng *rand.Rand, direction r3.Vec, angles m.Angles) (r3.Vec, r3.Vec) {
	parent := unitInput(direction)
	dir1, dir2 := BioOriented(rng, parent, angles)

	return renormalize(r3.Add(dir1, parent), dir1), renormalize(r3.Add(dir2, parent), dir2)
}

// unitInput normalizes the incoming direction only when it drifted from unit
// length, so unit inputs pass through bit for bit. A zero direction falls
// back to the z axis.
func unitInput(direction r3.Vec) r3.Vec {
	n := r3.Norm(direction)
	if n < morphmath.Epsilon {
		return morphmath.ZAxis
	}

	if math.Abs(n-1) < 1e-12 {
		return direction
	}

	return r3.Scale(1/n, direction)
}

func renormalize(v, fallback r3.Vec) r3.Vec {
	u := morphmath.Unit(v)
	if morphmath.IsZero(u) {
		return fallback
	}

	return u
}
