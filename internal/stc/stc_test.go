package stc

import (
	"testing"

	"github.com/gpucanvas/engine/internal/geom"
)

func rectSubpath(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}
}

func rectBounds(x0, y0, x1, y1 float64) geom.Bounds {
	b := geom.EmptyBounds()
	b.Extend(geom.Point{X: x0, Y: y0})
	b.Extend(geom.Point{X: x1, Y: y1})
	return b
}

func TestBuildContourApexIsBoundsMin(t *testing.T) {
	bounds := rectBounds(0, 0, 100, 100)
	c := BuildContour([][]geom.Point{rectSubpath(0, 0, 100, 100)}, bounds)

	if len(c.Vertices) == 0 {
		t.Fatal("no vertices produced")
	}
	apex := c.Vertices[0]
	if float64(apex.X) != bounds.MinX || float64(apex.Y) != bounds.MinY {
		t.Errorf("apex = %+v, want (%v, %v)", apex, bounds.MinX, bounds.MinY)
	}
}

func TestBuildContourClosedSubpathSeals(t *testing.T) {
	bounds := rectBounds(0, 0, 100, 100)
	c := BuildContour([][]geom.Point{rectSubpath(0, 0, 100, 100)}, bounds)

	// 1 apex + 4 unique corners = 5 vertices.
	if len(c.Vertices) != 5 {
		t.Errorf("vertices = %d, want 5", len(c.Vertices))
	}
	// 3 interior fan triangles (k=2..4) plus 1 closing triangle = 4 triangles.
	if len(c.Indices) != 12 {
		t.Errorf("indices = %d, want 12 (4 triangles)", len(c.Indices))
	}
	if len(c.Vertices) < MinStencilVertices {
		t.Errorf("a closed quad should meet MinStencilVertices=%d, got %d", MinStencilVertices, len(c.Vertices))
	}
}

func TestBuildContourDoesNotStitchAcrossSubpaths(t *testing.T) {
	bounds := rectBounds(0, 0, 130, 10)
	subpaths := [][]geom.Point{
		rectSubpath(0, 0, 10, 10),
		rectSubpath(20, 0, 30, 10),
	}
	c := BuildContour(subpaths, bounds)

	// Each subpath contributes 4 unique verts (apex is shared, slot 0).
	if len(c.Vertices) != 1+4+4 {
		t.Fatalf("vertices = %d, want 9", len(c.Vertices))
	}
	// Each closed subpath contributes 4 triangles (12 indices); no
	// triangle should reference a vertex slot from the other subpath.
	firstSubpathSlots := map[uint32]bool{0: true, 1: true, 2: true, 3: true, 4: true}
	for i := 0; i < 12; i++ {
		if !firstSubpathSlots[c.Indices[i]] {
			t.Errorf("first subpath triangle references slot %d outside its own range", c.Indices[i])
		}
	}
}

func TestBuildCoverIsTwoTriangleQuad(t *testing.T) {
	bounds := rectBounds(5, 5, 50, 20)
	verts, indices := BuildCover(bounds)

	if len(verts) != 4 {
		t.Errorf("verts = %d, want 4", len(verts))
	}
	if len(indices) != 6 {
		t.Errorf("indices = %d, want 6", len(indices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range indices {
		if idx != want[i] {
			t.Errorf("indices[%d] = %d, want %d", i, idx, want[i])
		}
	}
}

func TestBuildContourBelowMinStencilVerticesIsDetectable(t *testing.T) {
	bounds := rectBounds(0, 0, 1, 1)
	// A single open 2-point subpath: apex + 2 points = 3 vertices, below
	// MinStencilVertices, so callers should skip stenciling it.
	c := BuildContour([][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, bounds)
	if len(c.Vertices) >= MinStencilVertices {
		t.Fatalf("expected fewer than %d vertices, got %d", MinStencilVertices, len(c.Vertices))
	}
}
