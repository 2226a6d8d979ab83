// Package model defines the data structures shared by the growth engine,
// the adapters and the UI.
package model

// Path represents a file system path.
type Path string
