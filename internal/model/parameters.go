package model

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// GrowthMethod selects the barcode-driven growth algorithm of a neurite type.
type GrowthMethod string

// Growth methods.
const (
	GrowthTMD         GrowthMethod = "tmd"
	GrowthTMDApical   GrowthMethod = "tmd_apical"
	GrowthTMDGradient GrowthMethod = "tmd_gradient"
)

// OrientationMode tells how trunk directions are chosen.
type OrientationMode string

// Orientation modes.
const (
	OrientationSample    OrientationMode = ""
	OrientationExplicit  OrientationMode = "explicit"
	OrientationFromSpace OrientationMode = "from_space"
)

// Orientation is either an explicit list of trunk directions, null (sample
// from the trunk distributions) or the name of a spatial mode.
type Orientation struct {
	Mode    OrientationMode
	Vectors [][3]float64
}

// UnmarshalYAML decodes a sequence of 3-vectors or a mode name.
func (o *Orientation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var vectors [][3]float64
		if err := node.Decode(&vectors); err != nil {
			return fmt.Errorf("orientation: %w", err)
		}
		*o = Orientation{Mode: OrientationExplicit, Vectors: vectors}
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*o = Orientation{Mode: OrientationSample}
			return nil
		}
		*o = Orientation{Mode: OrientationMode(node.Value)}
	default:
		return fmt.Errorf("orientation: unsupported yaml node kind %d", node.Kind)
	}

	return nil
}

// MarshalYAML writes the orientation back in its input form.
func (o Orientation) MarshalYAML() (interface{}, error) {
	switch o.Mode {
	case OrientationSample:
		return nil, nil
	case OrientationExplicit:
		return o.Vectors, nil
	default:
		return string(o.Mode), nil
	}
}

// NeuriteParameters are the user-selected growth options of one neurite type.
type NeuriteParameters struct {
	GrowthMethod    GrowthMethod     `yaml:"growth_method" json:"growth_method"`
	BranchingMethod string           `yaml:"branching_method" json:"branching_method"`
	Randomness      float64          `yaml:"randomness" json:"randomness"`
	Targeting       float64          `yaml:"targeting" json:"targeting"`
	History         *float64         `yaml:"history,omitempty" json:"history,omitempty"`
	Orientation     Orientation      `yaml:"orientation" json:"orientation"`
	HasApicalTuft   bool             `yaml:"has_apical_tuft" json:"has_apical_tuft"`
	BiasLength      float64          `yaml:"bias_length" json:"bias_length"`
	Bias            float64          `yaml:"bias" json:"bias"`
	Metric          FiltrationMetric `yaml:"metric,omitempty" json:"metric,omitempty"`
}

const weightTolerance = 1e-6

// HistoryWeight returns the explicit history weight, or the remainder of the
// convex mixture when it was left out.
func (p NeuriteParameters) HistoryWeight() float64 {
	if p.History != nil {
		return *p.History
	}

	return 1.0 - p.Randomness - p.Targeting
}

// Validate checks the mixture weights and the bias options.
func (p NeuriteParameters) Validate() error {
	history := p.HistoryWeight()
	for name, w := range map[string]float64{"randomness": p.Randomness, "targeting": p.Targeting, "history": history} {
		if w < -weightTolerance || w > 1+weightTolerance {
			return fmt.Errorf("%s must be within [0, 1], got %g", name, w)
		}
	}

	if math.Abs(p.Randomness+p.Targeting+history-1) > weightTolerance {
		return fmt.Errorf("randomness + targeting + history must equal 1, got %g",
			p.Randomness+p.Targeting+history)
	}

	if p.Bias < 0 || p.Bias > 1 {
		return fmt.Errorf("bias must be within [0, 1], got %g", p.Bias)
	}

	if p.BiasLength < 0 {
		return fmt.Errorf("bias_length must be non-negative, got %g", p.BiasLength)
	}

	return nil
}

// InputParameters are the user-selected options of a growth run.
type InputParameters struct {
	Origin    [3]float64                   `yaml:"origin" json:"origin"`
	GrowTypes []NeuriteType                `yaml:"grow_types" json:"grow_types"`
	Neurites  map[string]NeuriteParameters `yaml:",inline" json:"neurites"`
}

// Neurite returns the parameters of a neurite type.
func (p InputParameters) Neurite(t NeuriteType) (NeuriteParameters, bool) {
	params, ok := p.Neurites[string(t)]
	return params, ok
}

// Validate checks that every grown type is configured.
func (p InputParameters) Validate() error {
	for _, neuriteType := range p.GrowTypes {
		params, ok := p.Neurite(neuriteType)
		if !ok {
			return fmt.Errorf("grow_types: %q has no parameters", neuriteType)
		}
		if err := params.Validate(); err != nil {
			return fmt.Errorf("%s: %w", neuriteType, err)
		}
	}

	return nil
}
