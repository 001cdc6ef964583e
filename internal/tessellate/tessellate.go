// Package tessellate implements the CPU triangle-tessellation
// rasterization strategy (§4.3): fan triangulation of filled contours
// and a triangle-strip generator for stroked contours.
package tessellate

import (
	"math"

	"github.com/gpucanvas/engine/internal/geom"
)

// Vertex is a tessellated mesh vertex: position only. Color comes from
// the paint uniform at draw time, not per-vertex, since the core engine
// never bakes color into geometry (§4.2).
type Vertex struct {
	X, Y float32
}

const samePointEpsilon = 1e-9

// Fill triangulates each subpath independently as a triangle fan
// anchored at the subpath's first vertex. This is exact for convex and
// star-shaped subpaths and for the common single-simple-subpath case;
// it is a deliberate simplification versus a full winding-aware polygon
// tessellator for self-intersecting or hole-bearing composites under
// the nonZero fill rule (see DESIGN.md).
//
// A subpath whose last point duplicates its first (the ordinary case
// produced by a trailing Close) is treated as already closed: the
// duplicate is dropped before triangulating so a simple quad yields
// exactly 4 vertices and 6 indices, matching the emitted mesh a
// consumer expects from a closed 4-sided polygon.
func Fill(subpaths [][]geom.Point) (verts []Vertex, indices []uint32) {
	for _, sp := range subpaths {
		pts := sp
		if len(pts) >= 2 && samePoint(pts[0], pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 3 {
			continue
		}

		base := uint32(len(verts))
		for _, p := range pts {
			verts = append(verts, Vertex{X: float32(p.X), Y: float32(p.Y)})
		}
		for i := 1; i < len(pts)-1; i++ {
			indices = append(indices, base, base+uint32(i), base+uint32(i+1))
		}
	}
	return verts, indices
}

// Stroke generates a triangle-strip approximation of a stroked contour:
// two vertices per input point, offset by half the line width along the
// local normal. Joins are simple normal-averaging, not full miter/round
// geometry — join and cap style are reserved for extension (§4.2) and
// accepted by Paint as no-ops in the core.
func Stroke(subpaths [][]geom.Point, lineWidth float64) []Vertex {
	half := lineWidth / 2
	var verts []Vertex

	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		normals := vertexNormals(sp)
		for i, p := range sp {
			nx, ny := normals[i].X*half, normals[i].Y*half
			verts = append(verts,
				Vertex{X: float32(p.X + nx), Y: float32(p.Y + ny)},
				Vertex{X: float32(p.X - nx), Y: float32(p.Y - ny)},
			)
		}
	}
	return verts
}

// vertexNormals computes one averaged unit normal per point of an
// open or closed polyline, from the normals of its adjacent segments.
func vertexNormals(pts []geom.Point) []geom.Point {
	n := len(pts)
	segNormals := make([]geom.Point, n-1)
	for i := 0; i < n-1; i++ {
		segNormals[i] = segmentNormal(pts[i], pts[i+1])
	}

	out := make([]geom.Point, n)
	out[0] = segNormals[0]
	out[n-1] = segNormals[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = normalize(geom.Point{
			X: segNormals[i-1].X + segNormals[i].X,
			Y: segNormals[i-1].Y + segNormals[i].Y,
		})
	}
	return out
}

func segmentNormal(a, b geom.Point) geom.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	return normalize(geom.Point{X: -dy, Y: dx})
}

func normalize(p geom.Point) geom.Point {
	l := math.Sqrt(p.X*p.X + p.Y*p.Y)
	if l == 0 {
		return geom.Point{}
	}
	return geom.Point{X: p.X / l, Y: p.Y / l}
}

func samePoint(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < samePointEpsilon && math.Abs(a.Y-b.Y) < samePointEpsilon
}
