// Package geom provides utilities for simple rectangle layout.
//
// Rectangles are stored as an origin and a size, x, y, w, h, in a flat
// array, so they are cheap to copy and can be compared with ==. Every
// transform returns new rectangles. Nothing validates its input:
// negative sizes, zero sizes, NaNs and infinities all go through the
// same plain floating-point arithmetic.
package geom

import "golang.org/x/exp/constraints"

// Float is a constraint for the scalar types that geom types and
// functions can handle. Defined types with a floating-point underlying
// type, such as
//
//	type Px float32
//
// satisfy it as well.
type Float interface {
	constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
