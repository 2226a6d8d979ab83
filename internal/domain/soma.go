package domain

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"
)

// minContourPoints is the size of the ring used as contour when fewer than
// three trunks were placed.
const minContourPoints = 8

// SomaGrower places trunk origins on a spherical soma and builds its contour.
type SomaGrower struct {
	center r3.Vec
	radius float64
	points []r3.Vec
}

// NewSomaGrower returns a soma of the given radius.
func NewSomaGrower(center r3.Vec, radius float64) *SomaGrower {
	return &SomaGrower{center: center, radius: radius}
}

// Radius returns the soma radius.
func (s *SomaGrower) Radius() float64 {
	return s.radius
}

// Points returns every trunk point placed so far.
func (s *SomaGrower) Points() []r3.Vec {
	return s.points
}

// PointsFromOrientations projects the orientation vectors onto the soma
// surface.
func (s *SomaGrower) PointsFromOrientations(vectors [][3]float64) ([]r3.Vec, error) {
	points := make([]r3.Vec, 0, len(vectors))

	for i, v := range vectors {
		dir := morphmath.Unit(r3.Vec{X: v[0], Y: v[1], Z: v[2]})
		if morphmath.IsZero(dir) {
			return nil, fmt.Errorf("%w: orientation %d is the zero vector", ErrConfiguration, i)
		}
		points = append(points, r3.Add(s.center, r3.Scale(s.radius, dir)))
	}

	s.points = append(s.points, points...)

	return points, nil
}

// PointsFromTrunkAngles places one trunk per deviation. The first trunk gets
// a random angle in the xy plane and every next one is rotated from the
// previous by its deviation; azimuths are the polar angles from z.
func (s *SomaGrower) PointsFromTrunkAngles(sampler *Sampler, deviations, azimuths []float64) []r3.Vec {
	points := make([]r3.Vec, 0, len(deviations))
	phi := 2 * math.Pi * sampler.Rand().Float64()

	for i, deviation := range deviations {
		if i > 0 {
			phi += deviation
		}
		dir := morphmath.FromSpherical(phi, azimuths[i])
		points = append(points, r3.Add(s.center, r3.Scale(s.radius, dir)))
	}

	s.points = append(s.points, points...)

	return points
}

// OrientationFromPoint returns the unit direction from the center to p.
func (s *SomaGrower) OrientationFromPoint(p r3.Vec) r3.Vec {
	dir := morphmath.Unit(r3.Sub(p, s.center))
	if morphmath.IsZero(dir) {
		return morphmath.ZAxis
	}

	return dir
}

// Contour returns the soma outline: the trunk points ordered by angle around
// the center, completed by a ring in the xy plane when there are too few.
func (s *SomaGrower) Contour() []r3.Vec {
	contour := make([]r3.Vec, len(s.points), len(s.points)+minContourPoints)
	copy(contour, s.points)

	if len(contour) < 3 {
		for i := range minContourPoints {
			phi := 2 * math.Pi * float64(i) / minContourPoints
			ring := r3.Vec{X: s.radius * math.Cos(phi), Y: s.radius * math.Sin(phi)}
			contour = append(contour, r3.Add(s.center, ring))
		}
	}

	sort.SliceStable(contour, func(i, j int) bool {
		a, b := r3.Sub(contour[i], s.center), r3.Sub(contour[j], s.center)
		return math.Atan2(a.Y, a.X) < math.Atan2(b.Y, b.X)
	})

	return contour
}

// Build returns the soma record of the morphology.
func (s *SomaGrower) Build() m.Soma {
	contour := s.Contour()
	soma := m.Soma{
		Center:    morphmath.ToPoint(s.center),
		Radius:    s.radius,
		Points:    make([]m.Point, len(contour)),
		Diameters: make([]float64, len(contour)),
	}

	for i, p := range contour {
		soma.Points[i] = morphmath.ToPoint(p)
	}

	return soma
}
