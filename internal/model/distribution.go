package model

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownDistribution is returned when a distribution document names a
// kind other than norm, uniform, expon or data.
var ErrUnknownDistribution = errors.New("model: unknown distribution kind")

// DistributionKind tags the parametric family of a Distribution.
type DistributionKind string

const (
	// DistributionNormal draws mean + std*N(0,1).
	DistributionNormal DistributionKind = "norm"
	// DistributionUniform draws uniformly between min and max.
	DistributionUniform DistributionKind = "uniform"
	// DistributionExponential draws loc + Exp(lambda).
	DistributionExponential DistributionKind = "expon"
	// DistributionEmpirical draws one of the bins with probability proportional to its weight.
	DistributionEmpirical DistributionKind = "data"
)

// Distribution is a closed tagged union over the supported sampling laws.
// Only the fields of the selected Kind are meaningful.
type Distribution struct {
	Kind DistributionKind

	Mean float64
	Std  float64

	Min float64
	Max float64

	Loc    float64
	Lambda float64

	Bins    []float64
	Weights []float64
}

// Normal builds a normal distribution.
func Normal(mean, std float64) Distribution {
	return Distribution{Kind: DistributionNormal, Mean: mean, Std: std}
}

// Uniform builds a uniform distribution.
func Uniform(lo, hi float64) Distribution {
	return Distribution{Kind: DistributionUniform, Min: lo, Max: hi}
}

// Exponential builds a shifted exponential distribution.
func Exponential(loc, lambda float64) Distribution {
	return Distribution{Kind: DistributionExponential, Loc: loc, Lambda: lambda}
}

// Empirical builds a weighted histogram distribution.
func Empirical(bins, weights []float64) Distribution {
	return Distribution{Kind: DistributionEmpirical, Bins: bins, Weights: weights}
}

// IsZero reports whether the distribution was never set.
func (d Distribution) IsZero() bool {
	return d.Kind == ""
}

// Validate checks the parameters of the selected kind.
func (d Distribution) Validate() error {
	switch d.Kind {
	case DistributionNormal:
		if d.Std < 0 {
			return fmt.Errorf("norm: std must be non-negative, got %g", d.Std)
		}
	case DistributionUniform:
		// min > max is accepted: the draw interpolates between the two bounds.
	case DistributionExponential:
		if d.Lambda <= 0 {
			return fmt.Errorf("expon: lambda must be positive, got %g", d.Lambda)
		}
	case DistributionEmpirical:
		if len(d.Bins) == 0 {
			return fmt.Errorf("data: bins must not be empty")
		}
		if len(d.Bins) != len(d.Weights) {
			return fmt.Errorf("data: %d bins but %d weights", len(d.Bins), len(d.Weights))
		}
		total := 0.0
		for _, w := range d.Weights {
			if w < 0 {
				return fmt.Errorf("data: negative weight %g", w)
			}
			total += w
		}
		if total <= 0 {
			return fmt.Errorf("data: weights must not all be zero")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDistribution, d.Kind)
	}

	return nil
}

type normalDoc struct {
	Mean float64 `yaml:"mean" json:"mean"`
	Std  float64 `yaml:"std" json:"std"`
}

type uniformDoc struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type exponDoc struct {
	Loc    float64 `yaml:"loc" json:"loc"`
	Lambda float64 `yaml:"lambda" json:"lambda"`
}

type dataDoc struct {
	Bins    []float64 `yaml:"bins" json:"bins"`
	Weights []float64 `yaml:"weights" json:"weights"`
}

// UnmarshalYAML decodes the single-key form used by the distribution
// extraction tools, e.g. {"norm": {"mean": 1, "std": 0.1}}.
func (d *Distribution) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("distribution: %w", err)
	}

	if len(raw) != 1 {
		return fmt.Errorf("distribution: expected exactly one kind, got %d", len(raw))
	}

	for key, body := range raw {
		switch DistributionKind(key) {
		case DistributionNormal:
			var doc normalDoc
			if err := body.Decode(&doc); err != nil {
				return fmt.Errorf("distribution norm: %w", err)
			}
			*d = Normal(doc.Mean, doc.Std)
		case DistributionUniform:
			var doc uniformDoc
			if err := body.Decode(&doc); err != nil {
				return fmt.Errorf("distribution uniform: %w", err)
			}
			*d = Uniform(doc.Min, doc.Max)
		case DistributionExponential:
			var doc exponDoc
			if err := body.Decode(&doc); err != nil {
				return fmt.Errorf("distribution expon: %w", err)
			}
			*d = Exponential(doc.Loc, doc.Lambda)
		case DistributionEmpirical:
			var doc dataDoc
			if err := body.Decode(&doc); err != nil {
				return fmt.Errorf("distribution data: %w", err)
			}
			*d = Empirical(doc.Bins, doc.Weights)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownDistribution, key)
		}
	}

	return nil
}

// MarshalYAML encodes the distribution back to its single-key form.
func (d Distribution) MarshalYAML() (interface{}, error) {
	switch d.Kind {
	case DistributionNormal:
		return map[string]normalDoc{string(d.Kind): {Mean: d.Mean, Std: d.Std}}, nil
	case DistributionUniform:
		return map[string]uniformDoc{string(d.Kind): {Min: d.Min, Max: d.Max}}, nil
	case DistributionExponential:
		return map[string]exponDoc{string(d.Kind): {Loc: d.Loc, Lambda: d.Lambda}}, nil
	case DistributionEmpirical:
		return map[string]dataDoc{string(d.Kind): {Bins: d.Bins, Weights: d.Weights}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, d.Kind)
	}
}
