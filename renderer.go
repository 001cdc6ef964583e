package engine

import (
	"encoding/binary"
	"math"

	"github.com/gpucanvas/engine/internal/stc"
	"github.com/gpucanvas/engine/internal/tessellate"
)

// minContourError and maxContourError bound the contour-error mapping
// used by SetContourQuality (§4.1). A quality of 0 yields the coarsest
// (fastest) tessellation; 1 yields the finest.
const (
	minContourError = 0.05
	maxContourError = 4.0
)

// contourErrorForQuality implements §4.1's "monotonic mapping (higher q
// -> smaller error -> more segments)" as a linear interpolation between
// maxContourError (q=0) and minContourError (q=1).
func contourErrorForQuality(q float64) float64 {
	q = clampUnit(q)
	return maxContourError - q*(maxContourError-minContourError)
}

// Renderer consumes save/restore/transform/clipPath/drawPath calls from
// a scene walk and emits an ordered PathDrawEvent queue (§4.5, component
// E).
type Renderer struct {
	ctx *Context

	stack   []stackEntry
	applied []ClipDescriptor

	events    []PathDrawEvent
	lastPaint *Paint

	clippingEnabled  bool
	contourQuality   float64
	contourError     float64
	strokeClipLogged bool
}

// NewRenderer creates a Renderer bound to ctx's configuration. Use
// Context.NewRenderer.
func newRenderer(ctx *Context) *Renderer {
	r := &Renderer{
		ctx:             ctx,
		clippingEnabled: ctx.clippingEnabled,
		contourQuality:  ctx.contourQuality,
	}
	r.contourError = contourErrorForQuality(r.contourQuality)
	r.stack = []stackEntry{{transform: Identity()}}
	return r
}

// Close releases the renderer's own state. It does not touch any Path's
// GPU buffers — those are owned by the Path itself.
func (r *Renderer) Close() {
	r.events = nil
	r.applied = nil
	r.stack = nil
}

// SetContourQuality updates the contour error used for subsequent
// contour computation, per §4.1's q∈[0,1] mapping.
func (r *Renderer) SetContourQuality(q float64) {
	r.contourQuality = clampUnit(q)
	r.contourError = contourErrorForQuality(r.contourQuality)
}

// ContourQuality returns the renderer's current contour quality.
func (r *Renderer) ContourQuality() float64 { return r.contourQuality }

// SetClippingSupport enables or disables the clipping protocol (§4.5).
func (r *Renderer) SetClippingSupport(enabled bool) {
	r.clippingEnabled = enabled
}

// NewFrame clears the event queue and resets last-paint and applied-clip
// tracking (§4.5's frame protocol). A frame's stencil buffer is assumed
// cleared by the consumer between frames, so no clip state carries over.
func (r *Renderer) NewFrame() {
	r.events = r.events[:0]
	r.lastPaint = nil
	r.applied = nil
	r.strokeClipLogged = false
}

// DrawEventCount returns the number of events emitted so far this frame.
func (r *Renderer) DrawEventCount() int { return len(r.events) }

// DrawEvent returns the i'th event emitted so far this frame.
func (r *Renderer) DrawEvent(i int) PathDrawEvent { return r.events[i] }

// Events returns the full event queue emitted so far this frame. The
// returned slice is only valid until the next NewFrame call.
func (r *Renderer) Events() []PathDrawEvent { return r.events }

// Save pushes a snapshot of the current transform and active clip set.
func (r *Renderer) Save() {
	top := r.stack[len(r.stack)-1]
	clips := append([]ClipDescriptor(nil), top.clips...)
	r.stack = append(r.stack, stackEntry{transform: top.transform, clips: clips})
}

// Restore pops the most recent Save snapshot. Restoring past the base
// frame is a no-op.
func (r *Renderer) Restore() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Transform composes m into the current transform: current = current × m.
func (r *Renderer) Transform(m Matrix) {
	top := &r.stack[len(r.stack)-1]
	top.transform = top.transform.Multiply(m)
}

// CurrentTransform returns the transform active at the top of the stack.
func (r *Renderer) CurrentTransform() Matrix {
	return r.stack[len(r.stack)-1].transform
}

// ClipPath appends (p, currentTransform) to the pending clip set at the
// top of the stack. Exceeding maxClipDepth logs a warning and drops the
// clip rather than erroring, per §7's degrade-not-halt policy.
func (r *Renderer) ClipPath(p *Path) {
	if p == nil {
		return
	}
	top := &r.stack[len(r.stack)-1]
	if len(top.clips) >= maxClipDepth {
		Logger().Warn("clip stack depth exceeded, dropping clip", "max", maxClipDepth)
		return
	}
	top.clips = append(top.clips, ClipDescriptor{Path: p, Transform: top.transform})
}

// DrawPath runs the clipping protocol and, unless paint is an invisible
// fill, requests p to emit its draw events under the current transform.
func (r *Renderer) DrawPath(p *Path, paint *Paint) {
	if p == nil || paint == nil {
		return
	}
	if paint.Style() == StyleFill && !paint.Visible() {
		return
	}

	appliedClipCount, isClipping := r.applyClippingProtocol(paint)

	if paint != r.lastPaint {
		r.events = append(r.events, PathDrawEvent{Type: EventSetPaint, Paint: paint})
		r.lastPaint = paint
	}

	transform := r.CurrentTransform()
	idx := 0
	r.emitPathEvents(p, transform, paint, &idx, appliedClipCount, isClipping, false)
}

// applyClippingProtocol implements §4.5's clipping protocol and returns
// the applied clip depth and whether subsequent draws should carry
// isClipping.
func (r *Renderer) applyClippingProtocol(paint *Paint) (appliedClipCount uint8, isClipping bool) {
	if !r.clippingEnabled {
		r.events = append(r.events, PathDrawEvent{Type: EventClippingDisable})
		return 0, false
	}

	pending := r.stack[len(r.stack)-1].clips
	if !clipSetsEqual(pending, r.applied) {
		r.events = append(r.events, PathDrawEvent{Type: EventClippingBegin})
		idx := 0
		for _, cd := range pending {
			r.emitPathEvents(cd.Path, cd.Transform, paint, &idx, 0, false, true)
		}
		r.events = append(r.events, PathDrawEvent{Type: EventClippingEnd, AppliedClipCount: uint8(len(pending))})
		r.applied = append([]ClipDescriptor(nil), pending...)
	}

	n := uint8(len(r.applied))
	return n, n > 0
}

// emitPathEvents walks p (recursing through composite children with
// transform products) and emits its draw events. idx threads the
// sub-path counter used by stencil-to-cover's even-odd discipline
// through the whole recursive walk of one drawPath/clip-apply call.
// applyClippingMode selects the clip-mask stencil/cover pipeline
// (§4.5 point 3) instead of a normal colored draw.
func (r *Renderer) emitPathEvents(p *Path, transform Matrix, paint *Paint, idx *int, appliedClipCount uint8, isClipping, applyClippingMode bool) {
	if p == nil {
		return
	}

	if p.IsComposite() {
		for _, child := range p.children {
			r.emitPathEvents(child.path, transform.Multiply(child.transform), paint, idx, appliedClipCount, isClipping, applyClippingMode)
		}
		return
	}

	p.ensureContour(r.contourError)

	if !applyClippingMode && paint.Style() == StyleStroke {
		r.emitStroke(p, transform, paint, appliedClipCount, isClipping)
		*idx++
		return
	}

	switch r.ctx.renderMode {
	case Tessellation:
		r.emitTessellationFill(p, transform, paint, appliedClipCount, isClipping)
	case StencilToCover:
		r.emitStencilToCover(p, transform, paint, *idx, appliedClipCount, isClipping, applyClippingMode)
	}
	*idx++
}

func (r *Renderer) emitStroke(p *Path, transform Matrix, paint *Paint, appliedClipCount uint8, isClipping bool) {
	verts := tessellate.Stroke(p.subpaths, paint.LineWidth)
	if len(verts) == 0 {
		return
	}
	r.ctx.uploadBuffer(&p.tessVertexBuf, VertexBufferKind, encodeTessVertices(verts))

	// The stencil-to-cover clip mask test never applies to strokes: they
	// are excluded from it in this mode regardless of the active clip
	// stack (§4.5's resolved STC/stroke-clipping question). Tessellation
	// mode strokes are ordinary triangle-strip draws and honor
	// appliedClipCount/isClipping normally.
	if r.ctx.renderMode == StencilToCover && isClipping {
		if !r.strokeClipLogged {
			Logger().Debug("stroke drawn under active clip in stencil-to-cover mode; excluded from clip mask test")
			r.strokeClipLogged = true
		}
		isClipping = false
	}

	r.events = append(r.events, PathDrawEvent{
		Type:             EventDrawStroke,
		Path:             p,
		Paint:            paint,
		TransformWorld:   transform,
		TransformLocal:   Identity(),
		OffsetStart:      0,
		OffsetEnd:        uint32(len(verts)),
		AppliedClipCount: appliedClipCount,
		IsClipping:       isClipping,
	})
}

func (r *Renderer) emitTessellationFill(p *Path, transform Matrix, paint *Paint, appliedClipCount uint8, isClipping bool) {
	verts, indices := tessellate.Fill(p.subpaths)
	if len(verts) == 0 || len(indices) == 0 {
		return
	}
	r.ctx.uploadBuffer(&p.tessVertexBuf, VertexBufferKind, encodeTessVertices(verts))
	r.ctx.uploadBuffer(&p.tessIndexBuf, IndexBufferKind, encodeIndices(indices))

	r.events = append(r.events, PathDrawEvent{
		Type:             EventDraw,
		Path:             p,
		Paint:            paint,
		TransformWorld:   transform,
		TransformLocal:   Identity(),
		AppliedClipCount: appliedClipCount,
		IsClipping:       isClipping,
	})
}

func (r *Renderer) emitStencilToCover(p *Path, transform Matrix, paint *Paint, idx int, appliedClipCount uint8, isClipping, applyClippingMode bool) {
	contour := stc.BuildContour(p.subpaths, p.bounds)
	if len(contour.Vertices) < stc.MinStencilVertices {
		return
	}
	r.ctx.uploadBuffer(&p.contourVertexBuf, VertexBufferKind, encodeSTCVertices(contour.Vertices))
	r.ctx.uploadBuffer(&p.contourIndexBuf, IndexBufferKind, encodeIndices(contour.Indices))

	isEvenOdd := p.fillRule == FillRuleEvenOdd

	r.events = append(r.events, PathDrawEvent{
		Type:             EventDrawStencil,
		Path:             p,
		Paint:            paint,
		TransformWorld:   transform,
		TransformLocal:   Identity(),
		Idx:              idx,
		IsEvenOdd:        isEvenOdd,
		AppliedClipCount: appliedClipCount,
		IsClipping:       isClipping,
	})

	coverVerts, coverIndices := stc.BuildCover(p.bounds)
	r.ctx.uploadBuffer(&p.coverVertexBuf, VertexBufferKind, encodeSTCVertices(coverVerts))
	r.ctx.uploadBuffer(&p.coverIndexBuf, IndexBufferKind, encodeIndices(coverIndices))

	// The cover quad is rendered in world space for a normal draw. When
	// applying a clip mask, the cover pass instead uses an identity
	// world transform (it writes directly into stencil space) and
	// carries the real transform in TransformLocal (§4.5).
	worldT, localT := transform, Identity()
	if applyClippingMode {
		worldT, localT = Identity(), transform
	}

	r.events = append(r.events, PathDrawEvent{
		Type:             EventDrawCover,
		Path:             p,
		Paint:            paint,
		TransformWorld:   worldT,
		TransformLocal:   localT,
		Idx:              idx,
		IsEvenOdd:        isEvenOdd,
		AppliedClipCount: appliedClipCount,
		IsClipping:       isClipping,
	})
}

func encodeTessVertices(verts []tessellate.Vertex) []byte {
	buf := make([]byte, len(verts)*8)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(v.Y))
	}
	return buf
}

func encodeSTCVertices(verts []stc.Vertex) []byte {
	buf := make([]byte, len(verts)*8)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(v.Y))
	}
	return buf
}

func encodeIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
