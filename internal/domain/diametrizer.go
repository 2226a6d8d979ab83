package domain

import (
	"math"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
	"github.com/jacquemi-bbp/NeuroTS/internal/morphmath"

	"gonum.org/v1/gonum/spatial/r3"
)

// Diametrizer assigns diameters to the points of a grown morphology.
type Diametrizer interface {
	Diametrize(morph *m.Morphology, model *m.DiameterModel) error
}

// DiametrizerFunc adapts a function to the Diametrizer interface.
type DiametrizerFunc func(morph *m.Morphology, model *m.DiameterModel) error

// Diametrize calls f.
func (f DiametrizerFunc) Diametrize(morph *m.Morphology, model *m.DiameterModel) error {
	return f(morph, model)
}

// taperDiametrizer draws a trunk diameter per tree and shrinks it linearly
// with the path distance down to a terminal diameter.
type taperDiametrizer struct {
	sampler *Sampler
}

func (d taperDiametrizer) Diametrize(morph *m.Morphology, model *m.DiameterModel) error {
	type treeDiameters struct{ trunk, term, taper float64 }

	trees := make(map[int]treeDiameters)
	roots := make([]int, len(morph.Sections))

	// Parents are always created before their children.
	for i := range morph.Sections {
		section := &morph.Sections[i]

		start := 0.0
		if section.Parent == m.NoParent {
			roots[i] = i
			tree := treeDiameters{
				trunk: d.sampler.DrawPositive(model.Trunk),
				term:  math.Max(d.sampler.Draw(model.Term), 0),
				taper: math.Max(d.sampler.Draw(model.Taper), 0),
			}
			if tree.term > tree.trunk {
				tree.term = tree.trunk
			}
			trees[i] = tree
			start = tree.trunk
		} else {
			roots[i] = roots[section.Parent]
			parent := morph.Section(section.Parent)
			start = parent.Diameters[len(parent.Diameters)-1]
		}

		tree := trees[roots[i]]
		diameter := start
		for j := range section.Points {
			if j > 0 {
				step := r3.Norm(r3.Sub(morphmath.ToVec(section.Points[j]), morphmath.ToVec(section.Points[j-1])))
				diameter = math.Max(tree.term, diameter-tree.taper*step)
			}
			section.Diameters[j] = diameter
		}
	}

	return nil
}
