package engine

// BufferHandle is an opaque GPU buffer handle. The zero value means "no
// buffer" (§4.6's "null handle").
type BufferHandle uint64

// BufferKind distinguishes vertex data from index data in a buffer
// broker request.
type BufferKind int

const (
	VertexBufferKind BufferKind = iota
	IndexBufferKind
)

func (k BufferKind) String() string {
	if k == IndexBufferKind {
		return "index"
	}
	return "vertex"
}

// gpuBuffer tracks the handle and byte size the engine last uploaded for
// one logical buffer slot (a Path's vertex buffer, index buffer, and so
// on), so uploadBuffer can decide whether to create, update in place, or
// replace it.
type gpuBuffer struct {
	handle BufferHandle
	size   int
}

// uploadBuffer applies the buffer broker's create/update/replace
// contract (§4.6) to buf, given newly-computed byte data. Zero-length
// data leaves buf unchanged. A zero handle requests creation. A matching
// size updates in place. A differing size destroys the old buffer and
// creates a new one.
func (ctx *Context) uploadBuffer(buf *gpuBuffer, kind BufferKind, data []byte) {
	if len(data) == 0 {
		return
	}
	if ctx.request == nil {
		return
	}

	switch {
	case buf.handle == 0:
		h := ctx.request(0, kind, data, len(data))
		if h == 0 {
			Logger().Warn("buffer broker rejected create request", "kind", kind.String(), "size", len(data))
			return
		}
		buf.handle = h
		buf.size = len(data)

	case buf.size == len(data):
		h := ctx.request(buf.handle, kind, data, len(data))
		if h == 0 {
			Logger().Warn("buffer broker rejected update request", "kind", kind.String(), "size", len(data))
			return
		}
		buf.handle = h

	default:
		if ctx.destroy != nil {
			ctx.destroy(buf.handle)
		}
		h := ctx.request(0, kind, data, len(data))
		if h == 0 {
			Logger().Warn("buffer broker rejected replacement request", "kind", kind.String(), "size", len(data))
			buf.handle = 0
			buf.size = 0
			return
		}
		buf.handle = h
		buf.size = len(data)
	}
}

// releaseBuffer destroys buf's handle, if any, and clears it.
func (ctx *Context) releaseBuffer(buf *gpuBuffer) {
	if buf.handle == 0 {
		return
	}
	if ctx.destroy != nil {
		ctx.destroy(buf.handle)
	}
	buf.handle = 0
	buf.size = 0
}

// BufferBundle is the opaque-handle bundle a backend looks up for the
// path or paint emitting a Draw*/DrawStencil/DrawCover event (§6's
// "Event consumption contract"). Fields not populated by the queried
// value are left at the zero handle.
type BufferBundle struct {
	VertexBuffer BufferHandle
	IndexBuffer  BufferHandle

	ContourVertexBuffer BufferHandle
	ContourIndexBuffer  BufferHandle
	CoverVertexBuffer   BufferHandle
	CoverIndexBuffer    BufferHandle
}

// DrawBuffers returns the buffer bundle for pathOrPaint, per §6's
// `getDrawBuffers(ctx, r, path|paint)`. A *Path yields whichever handles
// its last emission populated — the tessellation-mode vertex/index pair,
// the stencil-to-cover contour/cover pairs, or both, depending on which
// render modes it has been drawn under. A *Paint carries no GPU buffers
// of its own (its data reaches the GPU via UniformData as part of a
// SetPaint event's uniform upload), so it always yields the zero bundle.
// Any other value, including nil, also yields the zero bundle.
func (ctx *Context) DrawBuffers(pathOrPaint any) BufferBundle {
	p, ok := pathOrPaint.(*Path)
	if !ok || p == nil {
		return BufferBundle{}
	}
	return BufferBundle{
		VertexBuffer:        p.tessVertexBuf.handle,
		IndexBuffer:         p.tessIndexBuf.handle,
		ContourVertexBuffer: p.contourVertexBuf.handle,
		ContourIndexBuffer:  p.contourIndexBuf.handle,
		CoverVertexBuffer:   p.coverVertexBuf.handle,
		CoverIndexBuffer:    p.coverIndexBuf.handle,
	}
}
