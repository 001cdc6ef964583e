// Package geom implements the adaptive cubic Bézier subdivision used to
// turn retained path commands into polylines, and the axis-aligned
// bounds tracking that accompanies it.
package geom

import "math"

// Point is a 2D point in path-local (pre-transform) space.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box. An empty Bounds (no points
// extended into it yet) has Min > Max component-wise.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns a Bounds that contains no points.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Extend grows b to include p.
func (b *Bounds) Extend(p Point) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// IsEmpty reports whether b has never been extended.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// maxSubdivisionDepth bounds recursion for pathological control
// polygons (near-zero-length segments oscillating around the split
// test) so segmentCubic always terminates.
const maxSubdivisionDepth = 24

// SegmentCubic adaptively subdivides the cubic Bézier from p0 through
// control points c1, c2 to p1, appending emitted points (excluding p0,
// which the caller already holds as the current pen position) to *out
// and extending *bounds with every emitted point.
//
// distTooFar is the maximum perpendicular distance a control point may
// lie from the chord p0->p1 before the curve is considered insufficiently
// flat; minSegLenSq is the squared chord length above which a split is
// forced regardless of flatness. Per §4.1, callers pass distTooFar =
// contourError and minSegLenSq = contourError².
func SegmentCubic(p0, c1, c2, p1 Point, distTooFar, minSegLenSq float64, out *[]Point, bounds *Bounds) {
	segmentCubicRec(p0, c1, c2, p1, distTooFar, minSegLenSq, out, bounds, 0)
}

func segmentCubicRec(p0, c1, c2, p1 Point, distTooFar, minSegLenSq float64, out *[]Point, bounds *Bounds, depth int) {
	if depth >= maxSubdivisionDepth || isFlatEnough(p0, c1, c2, p1, distTooFar, minSegLenSq) {
		*out = append(*out, p1)
		bounds.Extend(p1)
		return
	}

	// De Casteljau midpoint split at t=0.5.
	p01 := lerp(p0, c1, 0.5)
	p12 := lerp(c1, c2, 0.5)
	p23 := lerp(c2, p1, 0.5)
	p012 := lerp(p01, p12, 0.5)
	p123 := lerp(p12, p23, 0.5)
	mid := lerp(p012, p123, 0.5)

	segmentCubicRec(p0, p01, p012, mid, distTooFar, minSegLenSq, out, bounds, depth+1)
	segmentCubicRec(mid, p123, p23, p1, distTooFar, minSegLenSq, out, bounds, depth+1)
}

func isFlatEnough(p0, c1, c2, p1 Point, distTooFar, minSegLenSq float64) bool {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	chordLenSq := dx*dx + dy*dy
	if chordLenSq > minSegLenSq {
		return false
	}

	if distanceToChord(c1, p0, p1, dx, dy, chordLenSq) > distTooFar {
		return false
	}
	if distanceToChord(c2, p0, p1, dx, dy, chordLenSq) > distTooFar {
		return false
	}
	return true
}

// distanceToChord returns the perpendicular distance from p to the
// infinite line through a->b (dx,dy = b-a, lenSq = |b-a|²). Degenerates
// to point-to-point distance when a and b coincide.
func distanceToChord(p, a, b Point, dx, dy, lenSq float64) float64 {
	if lenSq == 0 {
		ex, ey := p.X-a.X, p.Y-a.Y
		return math.Sqrt(ex*ex + ey*ey)
	}
	// |cross(b-a, p-a)| / |b-a|
	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	return math.Abs(cross) / math.Sqrt(lenSq)
}

func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
