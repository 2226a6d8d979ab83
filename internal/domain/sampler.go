package domain

import (
	"math"
	"math/rand"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

const (
	// positiveRetries bounds the re-draws of DrawPositive before it falls
	// back to the absolute value of the last draw.
	positiveRetries = 100
	// minPositive is returned by DrawPositive when every draw was zero.
	minPositive = 1e-3
)

// DefaultBifurcationAngles are used when neither the bars nor the input
// distributions provide bifurcation angles.
var DefaultBifurcationAngles = m.BifurcationAngles{
	Phi0:   m.Uniform(-math.Pi/4, math.Pi/4),
	Theta0: m.Uniform(-math.Pi/4, math.Pi/4),
	Phi1:   m.Uniform(-math.Pi/2, math.Pi/2),
	Theta1: m.Uniform(-math.Pi/2, math.Pi/2),
}

// Sampler draws values from input distributions. Every draw of a growth run
// goes through the same generator, so the seed fixes the whole run.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps a random generator.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Rand exposes the underlying generator.
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// Draw returns one sample of d. An unset or unknown distribution draws 0.
func (s *Sampler) Draw(d m.Distribution) float64 {
	switch d.Kind {
	case m.DistributionNormal:
		return d.Mean + d.Std*s.rng.NormFloat64()
	case m.DistributionUniform:
		return d.Min + (d.Max-d.Min)*s.rng.Float64()
	case m.DistributionExponential:
		return d.Loc + s.rng.ExpFloat64()/d.Lambda
	case m.DistributionEmpirical:
		return s.drawEmpirical(d.Bins, d.Weights)
	default:
		return 0
	}
}

func (s *Sampler) drawEmpirical(bins, weights []float64) float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	if len(bins) == 0 || total <= 0 {
		return 0
	}

	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return bins[i]
		}
	}

	return bins[len(bins)-1]
}

// DrawPositive re-draws until the sample is strictly positive.
func (s *Sampler) DrawPositive(d m.Distribution) float64 {
	value := 0.0
	for range positiveRetries {
		value = s.Draw(d)
		if value > 0 {
			return value
		}
	}

	if value = math.Abs(value); value > 0 {
		return value
	}

	return minPositive
}

// DrawCount rounds a draw to the nearest non-negative integer.
func (s *Sampler) DrawCount(d m.Distribution) int {
	value := math.Round(s.Draw(d))
	if value < 0 || math.IsNaN(value) {
		return 0
	}

	return int(value)
}

// TrunkAngles draws the in-plane deviations and azimuths of n trunks.
func (s *Sampler) TrunkAngles(trunk m.TrunkDistributions, n int) ([]float64, []float64) {
	deviations := make([]float64, n)
	azimuths := make([]float64, n)

	for i := range n {
		deviations[i] = s.Draw(trunk.OrientationDeviation)
	}

	for i := range n {
		azimuths[i] = s.Draw(trunk.Azimuth)
	}

	return deviations, azimuths
}

// Angles draws the four bifurcation angles.
func (s *Sampler) Angles(distr *m.BifurcationAngles) m.Angles {
	if distr == nil {
		distr = &DefaultBifurcationAngles
	}

	return m.Angles{
		s.Draw(distr.Phi0),
		s.Draw(distr.Theta0),
		s.Draw(distr.Phi1),
		s.Draw(distr.Theta1),
	}
}
