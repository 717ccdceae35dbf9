package geom

import "fmt"

// Point is a two-dimensional point or vector.
type Point[T Float] [2]T

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{x, y}
}

func (p Point[T]) X() T { return p[0] }
func (p Point[T]) Y() T { return p[1] }

// XY returns the components of p.
func (p Point[T]) XY() (x, y T) {
	return p[0], p[1]
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p[0] + q[0], p[1] + q[1]}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p[0] - q[0], p[1] - q[1]}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p[0], p[1])
}
