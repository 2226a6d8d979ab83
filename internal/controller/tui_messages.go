package controller

import (
	"time"

	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

// Message types.
type tickMsg time.Time

type runInfoMsg struct {
	name string
	seed int64
}

type progressMsg struct {
	name     string
	progress m.GrowthProgress
}

type resultMsg struct {
	result GrowthResult
}

type runDoneMsg struct{}

// List item types.
type resultItem struct {
	result GrowthResult
}

func (r resultItem) FilterValue() string {
	return r.result.Summary.Name + " " + r.result.Record.ID
}
