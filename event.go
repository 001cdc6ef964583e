package engine

// EventType tags a PathDrawEvent's kind (§3).
type EventType int

const (
	EventSetPaint EventType = iota
	EventDraw
	EventDrawStencil
	EventDrawCover
	EventDrawStroke
	EventClippingBegin
	EventClippingEnd
	EventClippingDisable
)

func (t EventType) String() string {
	switch t {
	case EventSetPaint:
		return "SetPaint"
	case EventDraw:
		return "Draw"
	case EventDrawStencil:
		return "DrawStencil"
	case EventDrawCover:
		return "DrawCover"
	case EventDrawStroke:
		return "DrawStroke"
	case EventClippingBegin:
		return "ClippingBegin"
	case EventClippingEnd:
		return "ClippingEnd"
	case EventClippingDisable:
		return "ClippingDisable"
	default:
		return "Unknown"
	}
}

// PathDrawEvent is one element of a Renderer's per-frame event queue
// (§3). Fields not meaningful for a given Type are left at their zero
// value; for example Idx and IsEvenOdd only matter for DrawStencil and
// DrawCover.
type PathDrawEvent struct {
	Type EventType

	Path  *Path
	Paint *Paint

	TransformWorld Matrix
	TransformLocal Matrix

	// Idx is the sub-path index within a composite path's recursive
	// walk, used by stencil-to-cover's even-odd CW/CCW pipeline
	// selection (idx%2, §4.5).
	Idx int

	// AppliedClipCount is the clip stack depth active for this draw;
	// backends use it to select a stencil-ref or a pipeline
	// specialization (§4.5, §9).
	AppliedClipCount uint8

	IsEvenOdd  bool
	IsClipping bool

	// OffsetStart/OffsetEnd delimit a DrawStroke event's vertex range
	// within the emitting path's vertex buffer (§4.3).
	OffsetStart uint32
	OffsetEnd   uint32
}
