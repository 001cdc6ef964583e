// Package engine converts vector-graphics scenes — hierarchies of 2D
// paths with affine transforms, fills, gradients, strokes, and clip
// regions — into an ordered stream of GPU draw events for a generic
// immediate-mode graphics backend.
//
// # Overview
//
// The engine supports two independent, selectable path-rasterization
// strategies: CPU-tessellated triangle meshes drawn with alpha blending
// (Tessellation), and a two-pass stencil-to-cover algorithm that uses a
// stencil buffer to compute winding-based coverage (StencilToCover).
// Both modes share contour generation, paint handling, and clip-path
// management.
//
// The engine never touches a GPU API directly. Its only coupling to one
// is the buffer broker (RequestBufferFunc/DestroyBufferFunc), a pair of
// callbacks the host application supplies via WithBufferCallbacks. See
// package backend/wgpu for a reference adapter.
//
// # Quick start
//
//	ctx := engine.NewContext(
//		engine.WithRenderMode(engine.StencilToCover),
//		engine.WithBufferCallbacks(requestFn, destroyFn),
//	)
//	defer ctx.Close()
//
//	r := ctx.NewRenderer()
//	defer r.Close()
//
//	path := ctx.NewPath()
//	path.MoveTo(0, 0)
//	path.LineTo(10, 0)
//	path.LineTo(10, 10)
//	path.LineTo(0, 10)
//	path.Close()
//
//	paint := ctx.NewPaint()
//	paint.SetColor(engine.RGBA8{R: 255, A: 255})
//
//	r.NewFrame()
//	r.DrawPath(path, paint)
//	for _, ev := range r.Events() {
//		// hand ev to a GPU backend
//		_ = ev
//	}
//
// # Coordinate system
//
// Uses standard computer graphics coordinates: origin at top-left, X
// increases right, Y increases down.
//
// # Concurrency
//
// The engine is single-threaded cooperative within one frame. Multiple
// Renderers may draw concurrently only over disjoint Paths, Paints, and
// buffer handles; sharing a Path across goroutines is undefined (§5).
package engine

// Version identifies the engine's API surface.
const Version = "0.1.0"
