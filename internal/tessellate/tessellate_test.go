package tessellate

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
		{X: x0, Y: y0}, // Close duplicates the start point
	}
}

func TestFillRectangleProducesExpectedMesh(t *testing.T) {
	subpaths := [][]geom.Point{rectSubpath(0, 0, 100, 100)}

	verts, indices := Fill(subpaths)

	if len(verts) != 4 {
		t.Errorf("verts = %d, want 4 (trailing Close duplicate dropped)", len(verts))
	}
	if len(indices) != 6 {
		t.Errorf("indices = %d, want 6 (two triangles)", len(indices))
	}
}

func TestFillSkipsDegenerateSubpaths(t *testing.T) {
	subpaths := [][]geom.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}}, // only 2 points, not a polygon
	}
	verts, indices := Fill(subpaths)
	if len(verts) != 0 || len(indices) != 0 {
		t.Errorf("degenerate subpath produced verts=%d indices=%d, want 0,0", len(verts), len(indices))
	}
}

func TestFillIndexBaseOffsetsAcrossSubpaths(t *testing.T) {
	subpaths := [][]geom.Point{
		rectSubpath(0, 0, 10, 10),
		rectSubpath(20, 0, 30, 10),
	}
	verts, indices := Fill(subpaths)
	if len(verts) != 8 {
		t.Fatalf("verts = %d, want 8", len(verts))
	}
	for _, idx := range indices[6:] {
		if idx < 4 {
			t.Errorf("second subpath index %d references first subpath's vertex range", idx)
		}
	}
}

func TestStrokeProducesTwoVerticesPerPoint(t *testing.T) {
	subpath := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	verts := Stroke([][]geom.Point{subpath}, 2.0)
	if len(verts) != len(subpath)*2 {
		t.Errorf("stroke verts = %d, want %d", len(verts), len(subpath)*2)
	}
}

func TestStrokeSkipsSinglePointSubpaths(t *testing.T) {
	verts := Stroke([][]geom.Point{{{X: 0, Y: 0}}}, 2.0)
	if len(verts) != 0 {
		t.Errorf("single-point subpath produced %d stroke verts, want 0", len(verts))
	}
}

func TestVertexNormalsAreUnitLength(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	normals := vertexNormals(pts)
	for i, n := range normals {
		l := n.X*n.X + n.Y*n.Y
		if l < 0.99 || l > 1.01 {
			t.Errorf("normal[%d] = %+v, length^2 = %v, want ~1", i, n, l)
		}
	}
}
