package adapter

import (
	"bufio"
	"fmt"
	"io"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// SWC structure identifiers.
const (
	swcUndefined = 0
	swcSoma      = 1
	swcAxon      = 2
	swcBasal     = 3
	swcApical    = 4
)

func swcType(t m.NeuriteType) int {
	switch t {
	case m.NeuriteAxon:
		return swcAxon
	case m.NeuriteBasal:
		return swcBasal
	case m.NeuriteApical:
		return swcApical
	default:
		return swcUndefined
	}
}

// EncodeSWC writes the morphology as an SWC sample list. The soma contour
// comes first; every section then continues from the last sample of its
// parent, or from the first soma sample for trunks.
func EncodeSWC(w io.Writer, name string, morph *m.Morphology) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "# %s\n# index type x y z radius parent\n", name); err != nil {
		return err
	}

	id := 0
	write := func(kind int, p m.Point, diameter float64, parent int) error {
		id++
		_, err := fmt.Fprintf(bw, "%d %d %.5f %.5f %.5f %.5f %d\n", id, kind, p[0], p[1], p[2], diameter/2, parent)
		return err
	}

	soma := morph.Soma
	if len(soma.Points) == 0 {
		if err := write(swcSoma, soma.Center, 2*soma.Radius, -1); err != nil {
			return err
		}
	}

	for i, p := range soma.Points {
		diameter := 0.0
		if i < len(soma.Diameters) {
			diameter = soma.Diameters[i]
		}
		parent := id
		if i == 0 {
			parent = -1
		}
		if err := write(swcSoma, p, diameter, parent); err != nil {
			return err
		}
	}

	somaRoot := 1
	last := make([]int, len(morph.Sections))

	for i, section := range morph.Sections {
		parent := somaRoot
		start := 0
		if section.Parent != m.NoParent {
			parent = last[section.Parent]
			start = 1
		}

		for j := start; j < len(section.Points); j++ {
			if err := write(swcType(section.Type), section.Points[j], section.Diameters[j], parent); err != nil {
				return err
			}
			parent = id
		}

		last[i] = parent
	}

	return bw.Flush()
}
