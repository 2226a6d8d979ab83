package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports input parameters that cannot be used to grow
	// a neuron.
	ErrConfiguration = errors.New("configuration error")

	// ErrInsufficientOrientations is returned when fewer explicit trunk
	// orientations are given than trunks were sampled.
	ErrInsufficientOrientations = fmt.Errorf("%w: not enough orientation points", ErrConfiguration)

	// ErrUnsupportedFeature is returned for recognized but unimplemented
	// options, such as the from_space orientation mode.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrMissingModel is returned by Diametrize when no diameter model is
	// available.
	ErrMissingModel = errors.New("missing diameter model")

	// ErrBarcodeExhausted is returned when a bifurcation is requested but no
	// bar is left to assign to it.
	ErrBarcodeExhausted = errors.New("barcode exhausted")
)
