package engine

// RenderMode selects the path-rasterization strategy: CPU-tessellated
// triangle meshes or the two-pass stencil-to-cover algorithm (§1).
type RenderMode int

const (
	// Tessellation rasterizes fills as CPU-tessellated triangle meshes
	// drawn with alpha blending.
	Tessellation RenderMode = iota
	// StencilToCover rasterizes fills with a stencil-buffer winding pass
	// followed by a covering quad.
	StencilToCover
)

// String returns a human-readable name for the render mode.
func (m RenderMode) String() string {
	switch m {
	case Tessellation:
		return "tessellation"
	case StencilToCover:
		return "stencil-to-cover"
	default:
		return "unknown"
	}
}

// RequestBufferFunc creates, updates, or replaces a GPU buffer. handle is
// zero to request creation; kind identifies vertex vs. index data; data
// and size describe the payload. It returns the (possibly new) handle,
// or zero if the backend rejected the request (§4.6).
type RequestBufferFunc func(handle BufferHandle, kind BufferKind, data []byte, size int) BufferHandle

// DestroyBufferFunc releases a previously requested buffer.
type DestroyBufferFunc func(handle BufferHandle)

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := engine.NewContext(
//		engine.WithRenderMode(engine.StencilToCover),
//		engine.WithContourQuality(0.75),
//		engine.WithBufferCallbacks(myRequest, myDestroy),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds configuration accumulated by ContextOptions
// before NewContext builds the Context.
type contextOptions struct {
	renderMode      RenderMode
	contourQuality  float64
	clippingEnabled bool
	request         RequestBufferFunc
	destroy         DestroyBufferFunc
}

func defaultOptions() contextOptions {
	return contextOptions{
		renderMode:      Tessellation,
		contourQuality:  0.5,
		clippingEnabled: true,
	}
}

// WithRenderMode selects the rasterization strategy at construction time.
// It can also be changed later with SetRenderMode.
func WithRenderMode(m RenderMode) ContextOption {
	return func(o *contextOptions) { o.renderMode = m }
}

// WithContourQuality sets the initial contour quality in [0,1]; see
// SetContourQuality for the mapping to contour error.
func WithContourQuality(q float64) ContextOption {
	return func(o *contextOptions) { o.contourQuality = clampUnit(q) }
}

// WithClippingSupport enables or disables the clipping protocol at
// construction time. It can also be changed later with
// SetClippingSupport.
func WithClippingSupport(enabled bool) ContextOption {
	return func(o *contextOptions) { o.clippingEnabled = enabled }
}

// WithBufferCallbacks installs the buffer broker's request/destroy pair
// (§4.6). This is the engine's only coupling to a GPU API.
func WithBufferCallbacks(request RequestBufferFunc, destroy DestroyBufferFunc) ContextOption {
	return func(o *contextOptions) {
		o.request = request
		o.destroy = destroy
	}
}

func clampUnit(q float64) float64 {
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}
