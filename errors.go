package engine

import "errors"

// Sentinel errors returned by authoring-time calls (§7). Errors
// encountered during emission inside drawPath are not returned to the
// caller — they are logged and degrade the frame instead, since a scene
// walk must never abort mid-frame.
var (
	// ErrInvalidPaint indicates a gradient was mis-sequenced: a stop was
	// added with no open gradient, or CompleteGradient was called twice.
	ErrInvalidPaint = errors.New("engine: invalid paint")

	// ErrInvalidPath indicates a path command sequence is malformed, such
	// as a Cubic or Line before any Move when one is required.
	ErrInvalidPath = errors.New("engine: invalid path")

	// ErrBufferOverflow indicates a path's contour vertex count exceeded
	// its scratch capacity; the path renders degraded (truncated).
	ErrBufferOverflow = errors.New("engine: contour buffer overflow")

	// ErrBackendRejected indicates the buffer broker returned a zero
	// handle for a request; the affected draw event is skipped by the
	// backend but still emitted by the core.
	ErrBackendRejected = errors.New("engine: backend rejected buffer request")
)
