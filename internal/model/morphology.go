package model

// Point is a position in 3D space.
type Point [3]float64

// ProcessType classifies a section as continuing the main growth direction
// or as a side branch.
type ProcessType string

// Process types.
const (
	ProcessMajor     ProcessType = "major"
	ProcessSecondary ProcessType = "secondary"
)

// NoParent is the parent id of a trunk section.
const NoParent = -1

// Soma is the cell body contour the trunks start from.
type Soma struct {
	Center    Point     `json:"center"`
	Radius    float64   `json:"radius"`
	Points    []Point   `json:"points"`
	Diameters []float64 `json:"diameters"`
}

// Section is an unbranched run of points. Its first point is the last point
// of its parent.
type Section struct {
	ID        int           `json:"id"`
	Parent    int           `json:"parent"`
	Type      NeuriteType   `json:"type"`
	Process   ProcessType   `json:"process"`
	Points    []Point       `json:"points"`
	Diameters []float64     `json:"diameters"`
	Children  []int         `json:"children,omitempty"`
	// Stop is the criterion the section started with.
	Stop      StopCriterion `json:"stop"`
}

// LastPoint returns the tip of the section.
func (s *Section) LastPoint() Point {
	return s.Points[len(s.Points)-1]
}

// Morphology is a soma plus a forest of sections stored in creation order;
// section ids are indices into Sections.
type Morphology struct {
	Soma     Soma      `json:"soma"`
	Sections []Section `json:"sections"`
}

// NewMorphology returns an empty morphology.
func NewMorphology() *Morphology {
	return &Morphology{}
}

// AddSection appends a section, links it to its parent and returns its id.
func (m *Morphology) AddSection(section Section) int {
	section.ID = len(m.Sections)
	m.Sections = append(m.Sections, section)

	if section.Parent != NoParent {
		parent := &m.Sections[section.Parent]
		parent.Children = append(parent.Children, section.ID)
	}

	return section.ID
}

// Section returns the section with the given id.
func (m *Morphology) Section(id int) *Section {
	return &m.Sections[id]
}

// Trunks returns the ids of the root sections.
func (m *Morphology) Trunks() []int {
	var trunks []int

	for _, section := range m.Sections {
		if section.Parent == NoParent {
			trunks = append(trunks, section.ID)
		}
	}

	return trunks
}

// PointCount returns the number of section points.
func (m *Morphology) PointCount() int {
	total := 0
	for _, section := range m.Sections {
		total += len(section.Points)
	}

	return total
}
