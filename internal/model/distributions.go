package model

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// NeuriteType names a family of trees grown from the soma.
type NeuriteType string

// Neurite types understood by the SWC encoder.
const (
	NeuriteBasal  NeuriteType = "basal"
	NeuriteApical NeuriteType = "apical"
	NeuriteAxon   NeuriteType = "axon"
)

// FiltrationMetric selects the quantity compared against barcode thresholds.
type FiltrationMetric string

// Supported filtration metrics.
const (
	MetricPathDistances   FiltrationMetric = "path_distances"
	MetricRadialDistances FiltrationMetric = "radial_distances"
)

// Angles holds the four bifurcation angles (phi0, theta0, phi1, theta1).
type Angles [4]float64

// Bar is one (birth, death) pair of a persistence barcode. Birth is the
// metric value at which the branch splits off, death the value at which it
// terminates.
type Bar struct {
	Birth  float64 `yaml:"birth" json:"birth"`
	Death  float64 `yaml:"death" json:"death"`
	Angles *Angles `yaml:"angles,omitempty" json:"angles,omitempty"`
}

// Lifetime is death minus birth.
func (b Bar) Lifetime() float64 {
	return b.Death - b.Birth
}

type barDoc struct {
	Birth  float64   `yaml:"birth"`
	Death  float64   `yaml:"death"`
	Angles []float64 `yaml:"angles"`
}

// UnmarshalYAML accepts either {birth, death, angles} or the flat list form
// [a, b, phi0, theta0, phi1, theta1] written by the extraction tools, where
// the smaller of a and b is the birth.
func (b *Bar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var values []float64
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("bar: %w", err)
		}
		if len(values) != 2 && len(values) != 6 {
			return fmt.Errorf("bar: expected 2 or 6 values, got %d", len(values))
		}
		b.Birth = math.Min(values[0], values[1])
		b.Death = math.Max(values[0], values[1])
		b.Angles = nil
		if len(values) == 6 {
			b.Angles = &Angles{values[2], values[3], values[4], values[5]}
		}

		return nil
	}

	var doc barDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("bar: %w", err)
	}
	if len(doc.Angles) != 0 && len(doc.Angles) != 4 {
		return fmt.Errorf("bar: expected 4 angles, got %d", len(doc.Angles))
	}

	b.Birth, b.Death, b.Angles = doc.Birth, doc.Death, nil
	if len(doc.Angles) == 4 {
		b.Angles = &Angles{doc.Angles[0], doc.Angles[1], doc.Angles[2], doc.Angles[3]}
	}

	return nil
}

// TrunkDistributions describes how trunks are placed on the soma.
type TrunkDistributions struct {
	// OrientationDeviation is the angle between consecutive trunks in the xy plane.
	OrientationDeviation Distribution `yaml:"orientation_deviation" json:"orientation_deviation"`
	// Azimuth is the elevation angle of each trunk from the z axis.
	Azimuth Distribution `yaml:"azimuth" json:"azimuth"`
}

// BifurcationAngles are the fitted distributions for the four bifurcation
// angles, used when a bar carries no angles of its own.
type BifurcationAngles struct {
	Phi0   Distribution `yaml:"phi0" json:"phi0"`
	Theta0 Distribution `yaml:"theta0" json:"theta0"`
	Phi1   Distribution `yaml:"phi1" json:"phi1"`
	Theta1 Distribution `yaml:"theta1" json:"theta1"`
}

// NeuriteDistributions is the fitted input for one neurite type.
type NeuriteDistributions struct {
	NumTrees   Distribution       `yaml:"num_trees" json:"num_trees"`
	Trunk      TrunkDistributions `yaml:"trunk" json:"trunk"`
	StepSize   Distribution       `yaml:"step_size" json:"step_size"`
	Barcodes   [][]Bar            `yaml:"persistence_diagram" json:"persistence_diagram"`
	Angles     *BifurcationAngles `yaml:"bifurcation_angles,omitempty" json:"bifurcation_angles,omitempty"`
	Filtration FiltrationMetric   `yaml:"filtration_metric,omitempty" json:"filtration_metric,omitempty"`
}

// Validate checks the distributions required to grow this neurite type.
func (n NeuriteDistributions) Validate() error {
	for name, d := range map[string]Distribution{
		"num_trees":                   n.NumTrees,
		"step_size":                   n.StepSize,
		"trunk.orientation_deviation": n.Trunk.OrientationDeviation,
		"trunk.azimuth":               n.Trunk.Azimuth,
	} {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if len(n.Barcodes) == 0 {
		return fmt.Errorf("persistence_diagram: at least one barcode is required")
	}

	for i, barcode := range n.Barcodes {
		if len(barcode) == 0 {
			return fmt.Errorf("persistence_diagram[%d]: barcode is empty", i)
		}
		for j, bar := range barcode {
			if math.IsNaN(bar.Birth) || math.IsNaN(bar.Death) || math.IsInf(bar.Death, 0) {
				return fmt.Errorf("persistence_diagram[%d][%d]: bar is not finite", i, j)
			}
		}
	}

	switch n.Filtration {
	case "", MetricPathDistances, MetricRadialDistances:
	default:
		return fmt.Errorf("filtration_metric: unsupported %q", n.Filtration)
	}

	return nil
}

// SomaDistributions is the fitted input for the soma.
type SomaDistributions struct {
	Size Distribution `yaml:"size" json:"size"`
}

// DiameterMethod names the diameter model used by Diametrize.
type DiameterMethod string

// Diameter methods.
const (
	DiameterDefault  DiameterMethod = "default"
	DiameterExternal DiameterMethod = "external"
	DiameterTaper    DiameterMethod = "M1"
)

// DiameterModel parameterizes the built-in taper model.
type DiameterModel struct {
	Method DiameterMethod `yaml:"method" json:"method"`
	Trunk  Distribution   `yaml:"trunk,omitempty" json:"trunk,omitempty"`
	Term   Distribution   `yaml:"term,omitempty" json:"term,omitempty"`
	Taper  Distribution   `yaml:"taper,omitempty" json:"taper,omitempty"`
}

// InputDistributions is the complete fitted input of a growth run.
type InputDistributions struct {
	Soma     SomaDistributions               `yaml:"soma" json:"soma"`
	Neurites map[string]NeuriteDistributions `yaml:",inline" json:"neurites"`
	Diameter *DiameterModel                  `yaml:"diameter,omitempty" json:"diameter,omitempty"`
}

// Neurite returns the record for a neurite type.
func (d InputDistributions) Neurite(t NeuriteType) (NeuriteDistributions, bool) {
	distr, ok := d.Neurites[string(t)]
	return distr, ok
}

// Validate checks the soma distribution and every neurite record.
func (d InputDistributions) Validate() error {
	if err := d.Soma.Size.Validate(); err != nil {
		return fmt.Errorf("soma.size: %w", err)
	}

	for neuriteType, distr := range d.Neurites {
		if err := distr.Validate(); err != nil {
			return fmt.Errorf("%s: %w", neuriteType, err)
		}
	}

	return nil
}
