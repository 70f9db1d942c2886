package rtree

import (
	"fmt"

	"github.com/maja42/vmath"
)

// Point is an integer coordinate in the plane indexed by the tree.
type Point struct {
	X, Y int
}

// Rectangle is an axis-aligned bounding box, identified by its north-west
// (top-left) and south-east (bottom-right) corners. The zero value is the
// degenerate rectangle at the origin.
type Rectangle struct {
	NW, SE Point
}

// Rect builds a rectangle from two corners given as raw coordinates,
// normalizing their order so NW is always the top-left corner regardless
// of how the caller supplied them.
func Rect(x1, y1, x2, y2 int) Rectangle {
	return NewRectangle(Point{x1, y1}, Point{x2, y2})
}

// NewRectangle builds a rectangle from two opposite corners, normalizing
// their order so NW is always the top-left corner.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{
		NW: Point{X: vmath.Mini(a.X, b.X), Y: vmath.Mini(a.Y, b.Y)},
		SE: Point{X: vmath.Maxi(a.X, b.X), Y: vmath.Maxi(a.Y, b.Y)},
	}
}

func (r Rectangle) Left() int   { return r.NW.X }
func (r Rectangle) Top() int    { return r.NW.Y }
func (r Rectangle) Right() int  { return r.SE.X }
func (r Rectangle) Bottom() int { return r.SE.Y }

func (r Rectangle) Width() int  { return r.SE.X - r.NW.X }
func (r Rectangle) Height() int { return r.SE.Y - r.NW.Y }

// Area is width times height; a degenerate rectangle (zero width or
// height) has zero area.
func (r Rectangle) Area() int { return r.Width() * r.Height() }

// Perimeter is the sum of all four edges.
func (r Rectangle) Perimeter() int { return 2 * (r.Width() + r.Height()) }

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.NW.X, r.NW.Y, r.SE.X, r.SE.Y)
}

// MBR returns the minimum bounding rectangle covering both a and b.
func MBR(a, b Rectangle) Rectangle {
	return Rectangle{
		NW: Point{X: vmath.Mini(a.NW.X, b.NW.X), Y: vmath.Mini(a.NW.Y, b.NW.Y)},
		SE: Point{X: vmath.Maxi(a.SE.X, b.SE.X), Y: vmath.Maxi(a.SE.Y, b.SE.Y)},
	}
}

// Enlargement is the cost of growing i to also cover a: the area of their
// mbr, less a's own area. It is always non-negative. It is zero when i is
// a subset of a; when a is a subset of i it is area(i) - area(a).
func Enlargement(i, a Rectangle) int {
	return MBR(i, a).Area() - a.Area()
}

// Waste is the area wasted by covering both a and b with a single mbr
// instead of keeping them apart: area(mbr(a,b)) minus each rectangle's own
// area. It can be negative when a and b overlap (for example when one
// contains the other).
func Waste(a, b Rectangle) int {
	return MBR(a, b).Area() - a.Area() - b.Area()
}

// IsSubset reports whether a lies entirely within (or on the boundary of) b.
func IsSubset(a, b Rectangle) bool {
	return a.Left() >= b.Left() && a.Right() <= b.Right() &&
		a.Top() >= b.Top() && a.Bottom() <= b.Bottom()
}

// IsSeparate reports whether a and b share no area. Two rectangles that
// merely touch along an edge are considered separate.
func IsSeparate(a, b Rectangle) bool {
	return a.Left() >= b.Right() || a.Right() <= b.Left() ||
		a.Top() >= b.Bottom() || a.Bottom() <= b.Top()
}

// Overlaps reports whether a and b share any area.
func Overlaps(a, b Rectangle) bool {
	return !IsSeparate(a, b)
}

// OverlapArea returns the area shared by a and b, or zero if they are
// separate. It is a diagnostics convenience, not used by the tree's own
// search path (which only needs the Overlaps predicate).
func OverlapArea(a, b Rectangle) int {
	if IsSeparate(a, b) {
		return 0
	}
	overlap := Rectangle{
		NW: Point{X: vmath.Maxi(a.Left(), b.Left()), Y: vmath.Maxi(a.Top(), b.Top())},
		SE: Point{X: vmath.Mini(a.Right(), b.Right()), Y: vmath.Mini(a.Bottom(), b.Bottom())},
	}
	return overlap.Area()
}
