// Package controller renders growth runs and stored records, either as
// plain tables or as an interactive terminal UI.
package controller

import (
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// GrowthResult is the outcome of growing a neuron.
type GrowthResult struct {
	Record  m.RecordInfo
	Summary m.GrowthSummary
	Err     error
}

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start() error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(name string, seed int64)
	DisplayProgress(name string, progress m.GrowthProgress)
	DisplayResult(result GrowthResult)
	DisplayRecords(records []m.RecordInfo) error
	DisplayMorphology(record m.RecordInfo, summary m.GrowthSummary) error
}
