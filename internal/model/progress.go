package model

import (
	"math"
	"sort"
)

// GrowthProgress is a snapshot of the scheduling loop taken after every
// iteration.
type GrowthProgress struct {
	Iteration         int
	ActiveTrees       int
	ActiveSections    int
	FinishedSections  int
	EstimatedSections int
}

// Fraction estimates how much of the neuron has been grown. The estimate
// comes from the barcode sizes and may be exceeded.
func (p GrowthProgress) Fraction() float64 {
	if p.EstimatedSections <= 0 {
		return 0
	}

	return math.Min(1, float64(p.FinishedSections)/float64(p.EstimatedSections))
}

// NeuriteSummary aggregates the sections of one neurite type.
type NeuriteSummary struct {
	Type          NeuriteType
	Trees         int
	Sections      int
	Bifurcations  int
	Terminations  int
	Points        int
	TotalLength   float64
	MaxPathLength float64
}

// GrowthSummary describes a grown morphology.
type GrowthSummary struct {
	Name        string
	Seed        int64
	SomaRadius  float64
	Neurites    []NeuriteSummary
	TotalPoints int
}

// Summarize computes per-neurite statistics of a morphology.
func Summarize(name string, seed int64, morph *Morphology) GrowthSummary {
	summary := GrowthSummary{Name: name, Seed: seed}
	if morph == nil {
		return summary
	}

	summary.SomaRadius = morph.Soma.Radius
	byType := make(map[NeuriteType]*NeuriteSummary)
	pathLength := make([]float64, len(morph.Sections))

	for i := range morph.Sections {
		section := &morph.Sections[i]

		ns, ok := byType[section.Type]
		if !ok {
			ns = &NeuriteSummary{Type: section.Type}
			byType[section.Type] = ns
		}

		length := sectionLength(section.Points)
		start := 0.0
		if section.Parent != NoParent {
			start = pathLength[section.Parent]
		} else {
			ns.Trees++
		}
		pathLength[i] = start + length

		ns.Sections++
		ns.Points += len(section.Points)
		ns.TotalLength += length
		ns.MaxPathLength = math.Max(ns.MaxPathLength, pathLength[i])

		if len(section.Children) == 0 {
			ns.Terminations++
		} else {
			ns.Bifurcations++
		}

		summary.TotalPoints += len(section.Points)
	}

	for _, ns := range byType {
		summary.Neurites = append(summary.Neurites, *ns)
	}

	sort.Slice(summary.Neurites, func(i, j int) bool {
		return summary.Neurites[i].Type < summary.Neurites[j].Type
	})

	return summary
}

func sectionLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		dx := points[i][0] - points[i-1][0]
		dy := points[i][1] - points[i-1][1]
		dz := points[i][2] - points[i-1][2]
		total += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	return total
}
