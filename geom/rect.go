package geom

import "fmt"

// Rectangle is implemented by anything that holds the four components
// of a rectangle. [From] converts any Rectangle into a [Rect].
type Rectangle[T Float] interface {
	X() T
	Y() T
	W() T
	H() T
}

// MutableRectangle is a Rectangle whose components can be set
// individually. *Rect[T] implements it.
type MutableRectangle[T Float] interface {
	Rectangle[T]

	SetX(T)
	SetY(T)
	SetW(T)
	SetH(T)
}

// Rect is a rectangle with its origin at (x, y) that extends w along
// the horizontal axis and h along the vertical one. The components are
// stored in that order.
//
// Nothing requires w or h to be positive. See [Rect.Canon].
type Rect[T Float] [4]T

type (
	Rect32 = Rect[float32]
	Rect64 = Rect[float64]
)

// Rt returns a rectangle with the given origin and size. It is the
// constructor that every other constructor and transform in this
// package goes through.
func Rt[T Float](x, y, w, h T) Rect[T] {
	return Rect[T]{x, y, w, h}
}

// FromU32 converts an unsigned integer rectangle in x, y, w, h order.
// Each component is converted with an ordinary Go conversion, so large
// values lose precision exactly as T(v) does.
func FromU32[T Float](r [4]uint32) Rect[T] {
	return Rt(T(r[0]), T(r[1]), T(r[2]), T(r[3]))
}

// FromI32 is like [FromU32] but for signed components.
func FromI32[T Float](r [4]int32) Rect[T] {
	return Rt(T(r[0]), T(r[1]), T(r[2]), T(r[3]))
}

// From copies the components of r into a Rect.
func From[T Float](r Rectangle[T]) Rect[T] {
	return Rt(r.X(), r.Y(), r.W(), r.H())
}

func (r Rect[T]) X() T { return r[0] }
func (r Rect[T]) Y() T { return r[1] }
func (r Rect[T]) W() T { return r[2] }
func (r Rect[T]) H() T { return r[3] }

func (r *Rect[T]) SetX(v T) { r[0] = v }
func (r *Rect[T]) SetY(v T) { r[1] = v }
func (r *Rect[T]) SetW(v T) { r[2] = v }
func (r *Rect[T]) SetH(v T) { r[3] = v }

// XY returns the origin of r.
func (r Rect[T]) XY() (x, y T) { return r[0], r[1] }

// WH returns the size of r.
func (r Rect[T]) WH() (w, h T) { return r[2], r[3] }

// XW returns the position and size of r along the horizontal axis.
func (r Rect[T]) XW() (x, w T) { return r[0], r[2] }

// YH returns the position and size of r along the vertical axis.
func (r Rect[T]) YH() (y, h T) { return r[1], r[3] }

// X1X2 returns the left and right edges of r.
func (r Rect[T]) X1X2() (x1, x2 T) { return r[0], r[0] + r[2] }

// Y1Y2 returns the top and bottom edges of r.
func (r Rect[T]) Y1Y2() (y1, y2 T) { return r[1], r[1] + r[3] }

// P1P2 returns the upper-left and lower-right corners of r.
func (r Rect[T]) P1P2() (p1, p2 Point[T]) {
	return Pt(r[0], r[1]), Pt(r[0]+r[2], r[1]+r[3])
}

// XYWH returns all four components of r.
func (r Rect[T]) XYWH() (x, y, w, h T) { return r[0], r[1], r[2], r[3] }

// Center returns (x + h/2, y + h/2). Note that the horizontal
// component is offset by the height, not the width. This matches the
// behavior existing callers depend on. Use [Align] to actually center
// one rectangle inside another.
func (r Rect[T]) Center() Point[T] {
	half := T(0.5)
	return Pt(r.X()+half*r.H(), r.Y()+half*r.H())
}

// IsEmpty reports whether w*h is exactly zero.
func (r Rect[T]) IsEmpty() bool {
	return r.W()*r.H() == 0
}

// Margin shrinks r by val on every side. If an axis is narrower than
// 2*val, that axis collapses to zero size at its midpoint instead. The
// axes are handled independently.
func (r Rect[T]) Margin(val T) Rect[T] {
	x, y, w, h := r.XYWH()
	x, w = margin(x, w, val)
	y, h = margin(y, h, val)
	return Rt(x, y, w, h)
}

func margin[T Float](pos, size, val T) (T, T) {
	two, half := T(2), T(0.5)
	if size < two*val {
		return pos + half*size, 0
	}
	return pos + val, size - two*val
}

// SplitLeft splits r into a piece along its left edge and the rest. The
// left piece is val wide unless val is more than factor of the width,
// in which case it is factor of the width instead.
func (r Rect[T]) SplitLeft(val, factor T) (left, rest Rect[T]) {
	x, y, w, h := r.XYWH()
	if val > w*factor {
		one := T(1)
		return Rt(x, y, w*factor, h), Rt(x+w*factor, y, w*(one-factor), h)
	}
	return Rt(x, y, val, h), Rt(x+val, y, w-val, h)
}

// SplitRight is the mirror image of [Rect.SplitLeft]: the piece of
// size val, or factor of the width, is taken from the right edge. The
// pieces are returned in left-to-right order, so the right piece is
// the second one.
func (r Rect[T]) SplitRight(val, factor T) (rest, right Rect[T]) {
	x, y, w, h := r.XYWH()
	if val > w*factor {
		one := T(1)
		return Rt(x, y, w*(one-factor), h), Rt(x+w*(one-factor), y, w*factor, h)
	}
	return Rt(x, y, w-val, h), Rt(x+w-val, y, val, h)
}

// SplitTop is like [Rect.SplitLeft] but splits along the vertical
// axis.
func (r Rect[T]) SplitTop(val, factor T) (top, rest Rect[T]) {
	x, y, w, h := r.XYWH()
	if val > h*factor {
		one := T(1)
		return Rt(x, y, w, h*factor), Rt(x, y+h*factor, w, h*(one-factor))
	}
	return Rt(x, y, w, val), Rt(x, y+val, w, h-val)
}

// SplitBottom is like [Rect.SplitRight] but splits along the vertical
// axis. The pieces are returned top to bottom.
func (r Rect[T]) SplitBottom(val, factor T) (rest, bottom Rect[T]) {
	x, y, w, h := r.XYWH()
	if val > h*factor {
		one := T(1)
		return Rt(x, y, w, h*(one-factor)), Rt(x, y+h*(one-factor), w, h*factor)
	}
	return Rt(x, y, w, h-val), Rt(x, y+h-val, w, val)
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rt(r[0]+p[0], r[1]+p[1], r[2], r[3])
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rt(r[0]-p[0], r[1]-p[1], r[2], r[3])
}

// Canon returns the canonical version of r, covering the same area but
// with a non-negative width and height.
func (r Rect[T]) Canon() Rect[T] {
	x, y, w, h := r.XYWH()
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rt(x, y, w, h)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v,%v)+(%v,%v)", r[0], r[1], r[2], r[3])
}
