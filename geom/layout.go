package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the first of which is w wide.
func hsplit[T Float](r Rect[T], w T) (left, right Rect[T]) {
	x, y, rw, h := r.XYWH()
	return Rt(x, y, w, h), Rt(x+w, y, rw-w, h)
}

func hsplitHalf[T Float](r Rect[T]) (left, right Rect[T]) {
	return hsplit(r, r.W()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the first of which is h tall.
func vsplit[T Float](r Rect[T], h T) (top, bottom Rect[T]) {
	x, y, w, rh := r.XYWH()
	return Rt(x, y, w, h), Rt(x, y+h, w, rh-h)
}

func vsplitHalf[T Float](r Rect[T]) (top, bottom Rect[T]) {
	return vsplit(r, r.H()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice.
func TiledRightThenDown[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]
		c, n := r, r
		for range numtiles - 1 {
			c, n = split(n)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		first, rem := hsplit(r, 2*r.W()/3)
		if numtiles == 1 {
			first = r
		}
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(0, r.H()/T(numtiles))
		c, _ := vsplit(r, size.Y())
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Float](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Float](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(r.W()/T(numtiles), 0)
		c, _ := hsplit(r, size.X())
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Float](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator. If cols is less than one, each tile gets its own
// row.
func TiledRows[T Float](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}
		cols := max(cols, 1)

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		rem := numtiles
		for row := range rows {
			if rem <= 0 {
				break
			}

			numcols := min(rem, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			rem -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T Float](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := Pt(0, first.Canon().H())
		for c := first; ; c = c.Add(shift) {
			if !yield(c) {
				return
			}
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[T Float](rects []Rect[T]) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		prev.SetW(max(prev.W(), rect.Canon().W()))
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		_, bottom := prev.Y1Y2()
		rects[i] = Rt(prev.X(), bottom, prev.W(), rects[i].Canon().H())
		prev = rects[i]
	}
}

// Align centers inner inside of outer and then shifts the specified
// edges of inner to align with the corresponding edges of outer,
// stretching the rectangle as necessary if opposite edges are
// specified.
func Align[T Float](outer, inner Rect[T], edges Edges) Rect[T] {
	half := T(0.5)
	ox, oy, ow, oh := outer.XYWH()
	inner.SetX(ox + half*(ow-inner.W()))
	inner.SetY(oy + half*(oh-inner.H()))

	switch {
	case edges&EdgeTop != 0:
		inner.SetY(oy)
		if edges&EdgeBottom != 0 {
			inner.SetH(oh)
		}
	case edges&EdgeBottom != 0:
		inner.SetY(oy + oh - inner.H())
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.SetX(ox)
		if edges&EdgeRight != 0 {
			inner.SetW(ow)
		}
	case edges&EdgeRight != 0:
		inner.SetX(ox + ow - inner.W())
	}

	return inner
}

func insertTilesFromSeq[T Float](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
