package engine

// Context owns engine-wide configuration — the active render mode,
// contour quality, clipping support, and the buffer broker callbacks —
// and is the factory for Paths, Paints, and Renderers (§2, component H).
// A Context has no GPU handle of its own; it only threads configuration
// and the broker callbacks through to the objects it creates.
type Context struct {
	renderMode      RenderMode
	contourQuality  float64
	clippingEnabled bool

	request RequestBufferFunc
	destroy DestroyBufferFunc

	closed bool
}

// NewContext builds a Context from the given options, defaulting to
// Tessellation mode, contour quality 0.5, and clipping enabled (§4.1).
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		renderMode:      o.renderMode,
		contourQuality:  o.contourQuality,
		clippingEnabled: o.clippingEnabled,
		request:         o.request,
		destroy:         o.destroy,
	}
}

// Close marks the context closed. It does not release any Path's GPU
// buffers; callers are expected to have already torn those down (each
// Path knows its own handles via releaseBuffers).
func (ctx *Context) Close() {
	ctx.closed = true
}

// NewPath creates an empty Path owned by ctx.
func (ctx *Context) NewPath() *Path {
	return newPath(ctx)
}

// NewPaint creates a Paint with fill styling defaults (§4.2).
func (ctx *Context) NewPaint() *Paint {
	return NewPaint()
}

// NewRenderer creates a Renderer that inherits ctx's current render
// mode, contour quality, and clipping setting.
func (ctx *Context) NewRenderer() *Renderer {
	return newRenderer(ctx)
}

// RenderMode returns the context's active rasterization strategy.
func (ctx *Context) RenderMode() RenderMode { return ctx.renderMode }

// SetRenderMode changes the rasterization strategy. Unlike contour
// quality and clipping support, render mode is not snapshotted into a
// Renderer at creation time: every Renderer reads ctx's render mode
// live on each draw, so calling this mid-frame changes the strategy
// used by the very next DrawPath call, even for Renderers created
// before the change (§4.1).
func (ctx *Context) SetRenderMode(m RenderMode) { ctx.renderMode = m }

// ContourQuality returns the context's default contour quality in [0,1].
func (ctx *Context) ContourQuality() float64 { return ctx.contourQuality }

// SetContourQuality changes the default contour quality used by
// Renderers created afterward.
func (ctx *Context) SetContourQuality(q float64) { ctx.contourQuality = clampUnit(q) }

// ClippingSupported returns whether the clipping protocol is enabled by
// default for Renderers created from ctx.
func (ctx *Context) ClippingSupported() bool { return ctx.clippingEnabled }

// SetClippingSupport changes the default clipping setting used by
// Renderers created afterward.
func (ctx *Context) SetClippingSupport(enabled bool) { ctx.clippingEnabled = enabled }

// SetBufferCallbacks rebinds the buffer broker callbacks (§6's
// setBufferCallbacks), superseding whatever WithBufferCallbacks installed
// at construction. Like SetRenderMode, the new pair takes effect
// immediately: ctx.request/ctx.destroy are read live by uploadBuffer and
// releaseBuffer on every call, so this is safe between frames but must
// not race a frame in flight (§5's immutability-during-a-frame rule).
func (ctx *Context) SetBufferCallbacks(request RequestBufferFunc, destroy DestroyBufferFunc) {
	ctx.request = request
	ctx.destroy = destroy
}
