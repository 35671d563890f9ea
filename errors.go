package geom

import "errors"

var (
	// ErrIndexOutOfRange is the panic value used when a component index
	// outside [0, dimension) is passed to At.
	ErrIndexOutOfRange = errors.New("geom: component index out of range")

	// ErrNegativeRadius is returned by NewCircle and NewSphere for a radius
	// below zero.
	ErrNegativeRadius = errors.New("geom: negative radius")
)
