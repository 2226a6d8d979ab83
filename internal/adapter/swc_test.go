package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

func TestEncodeSWC_SomaCenter(t *testing.T) {
	t.Parallel()

	morph := m.NewMorphology()
	morph.Soma = m.Soma{Radius: 2}
	trunk := morph.AddSection(m.Section{
		Parent:    m.NoParent,
		Type:      m.NeuriteBasal,
		Points:    []m.Point{{0, 0, 0}, {1, 0, 0}},
		Diameters: []float64{2, 2},
	})
	morph.AddSection(m.Section{
		Parent:    trunk,
		Type:      m.NeuriteBasal,
		Points:    []m.Point{{1, 0, 0}, {2, 0, 0}},
		Diameters: []float64{2, 1},
	})
	morph.AddSection(m.Section{
		Parent:    m.NoParent,
		Type:      m.NeuriteAxon,
		Points:    []m.Point{{0, 0, 0}, {0, -1, 0}},
		Diameters: []float64{1, 1},
	})

	var out bytes.Buffer
	require.NoError(t, EncodeSWC(&out, "cell", morph))

	want := strings.Join([]string{
		"# cell",
		"# index type x y z radius parent",
		"1 1 0.00000 0.00000 0.00000 2.00000 -1",
		"2 3 0.00000 0.00000 0.00000 1.00000 1",
		"3 3 1.00000 0.00000 0.00000 1.00000 2",
		"4 3 2.00000 0.00000 0.00000 0.50000 3",
		"5 2 0.00000 0.00000 0.00000 0.50000 1",
		"6 2 0.00000 -1.00000 0.00000 0.50000 5",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestEncodeSWC_SomaContour(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, EncodeSWC(&out, "contour", sampleMorphology()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2+3+2+1)

	assert.Equal(t, "1 1 2.00000 0.00000 0.00000 0.00000 -1", lines[2])
	assert.Equal(t, "2 1 0.00000 2.00000 0.00000 0.00000 1", lines[3])
	assert.Equal(t, "3 1 -2.00000 0.00000 0.00000 0.00000 2", lines[4])
	// The trunk hangs from the first soma sample, its child from the trunk tip.
	assert.True(t, strings.HasSuffix(lines[5], " 1"))
	assert.Equal(t, "5 3 3.50000 0.25000 0.00000 0.40000 4", lines[6])
	assert.Equal(t, "6 3 4.00000 1.00000 0.00000 0.25000 5", lines[7])
}

func TestSWCType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, swcType(m.NeuriteAxon))
	assert.Equal(t, 3, swcType(m.NeuriteBasal))
	assert.Equal(t, 4, swcType(m.NeuriteApical))
	assert.Equal(t, 0, swcType("dendrite"))
}
