// Package stc implements the stencil-to-cover rasterization strategy's
// geometry construction (§4.4): a triangle fan anchored at the path's
// bounding-box minimum for the stencil pass, and a trivial two-triangle
// quad for the cover pass.
package stc

import (
	"math"

	"github.com/gpucanvas/engine/internal/geom"
)

// Vertex is a stencil/cover mesh vertex: position only.
type Vertex struct {
	X, Y float32
}

// Contour is the stencil-pass geometry for one leaf path. Vertices[0] is
// always the path's bounding-box minimum — the shared fan apex for
// every subpath's triangles (§3's "Vertex slot 0" invariant).
type Contour struct {
	Vertices []Vertex
	Indices  []uint32
}

// MinStencilVertices is the smallest contour vertex count (including
// the slot-0 apex) the engine will attempt to stencil; fewer than this
// and the draw is skipped per §7's defensive policy ("too few vertices
// (<5 for STC)").
const MinStencilVertices = 5

const samePointEpsilon = 1e-9

// BuildContour builds the triangle-fan stencil geometry for a leaf
// path's subpaths, all anchored at the shared apex bounds.Min.
//
// Within a subpath, contour vertex v at slot k yields triangle
// (0, k-1, k); a subpath whose last point duplicates its first (an
// ordinary Close) is sealed with an extra triangle (0, lastSlot,
// penDownSlot) rather than a degenerate final k-1,k pair, matching the
// source's Close handling. Subpath boundaries are never stitched
// together by a spurious triangle.
func BuildContour(subpaths [][]geom.Point, bounds geom.Bounds) Contour {
	c := Contour{
		Vertices: []Vertex{{X: float32(bounds.MinX), Y: float32(bounds.MinY)}},
	}

	for _, sp := range subpaths {
		pts := sp
		closed := false
		if len(pts) >= 2 && samePoint(pts[0], pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
			closed = true
		}
		if len(pts) < 2 {
			continue
		}

		penDownSlot := uint32(len(c.Vertices))
		for _, p := range pts {
			c.Vertices = append(c.Vertices, Vertex{X: float32(p.X), Y: float32(p.Y)})
		}
		lastSlot := uint32(len(c.Vertices) - 1)

		for k := penDownSlot + 1; k <= lastSlot; k++ {
			c.Indices = append(c.Indices, 0, k-1, k)
		}
		if closed {
			c.Indices = append(c.Indices, 0, lastSlot, penDownSlot)
		}
	}

	return c
}

// BuildCover builds the trivial cover-quad geometry for bounds: 4
// vertices, 6 indices forming two triangles (§4.4).
func BuildCover(bounds geom.Bounds) ([]Vertex, []uint32) {
	verts := []Vertex{
		{X: float32(bounds.MinX), Y: float32(bounds.MinY)},
		{X: float32(bounds.MaxX), Y: float32(bounds.MinY)},
		{X: float32(bounds.MaxX), Y: float32(bounds.MaxY)},
		{X: float32(bounds.MinX), Y: float32(bounds.MaxY)},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

func samePoint(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < samePointEpsilon && math.Abs(a.Y-b.Y) < samePointEpsilon
}
