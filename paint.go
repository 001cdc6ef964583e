package engine

import "fmt"

// Style selects whether a Paint is used to fill or to stroke a path.
type Style int

const (
	// StyleFill fills the interior of a path.
	StyleFill Style = iota
	// StyleStroke strokes the outline of a path.
	StyleStroke
)

// FillType selects the kind of color source a Paint carries.
type FillType int

const (
	// FillNone paints nothing; drawing with it is a no-op.
	FillNone FillType = iota
	// FillSolid paints a single flat color.
	FillSolid
	// FillLinear paints a linear gradient between two points.
	FillLinear
	// FillRadial paints a radial gradient between two circles' centers.
	FillRadial
)

// MaxGradientStops is the largest number of stops a gradient may carry.
// This bound exists because PaintUniform is a fixed-size record suitable
// for direct GPU upload; it is not a resizable slice.
const MaxGradientStops = 16

// RGBA8 is a color with 8-bit components, the wire format for gradient
// stops and solid fills.
type RGBA8 struct {
	R, G, B, A uint8
}

// Color converts c to the floating-point RGBA used for shader uniforms.
func (c RGBA8) Color() RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Paint accumulates a solid or gradient fill/stroke description into a
// flat uniform record consumed by the GPU. Paints are built incrementally:
// LinearGradient/RadialGradient open a builder, AddStop appends stops in
// insertion order, and CompleteGradient finalizes it. A Paint is not
// drawable until it holds a solid color or has completed a gradient.
type Paint struct {
	style    Style
	fillType FillType
	visible  bool

	solid RGBA8

	// gradient state: accumulated while building == true and kept after
	// CompleteGradient for UniformData.
	building   bool
	gradStops  [MaxGradientStops]float32
	gradColors [MaxGradientStops]RGBA8
	gradCount  int
	limits     [4]float64

	// Stroke attributes accepted and stored but not interpreted by the
	// core engine (reserved for extension — see component design §4.2).
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
}

// LineCap specifies the shape of line endpoints. Accepted by Paint but
// not interpreted by the core engine; a stroke backend may use it.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of line joins. Accepted by Paint but not
// interpreted by the core engine.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// NewPaint creates a Paint with no fill; it is invisible until SetColor,
// LinearGradient+stops+CompleteGradient, or RadialGradient+stops+
// CompleteGradient is applied.
func NewPaint() *Paint {
	return &Paint{
		style:      StyleFill,
		fillType:   FillNone,
		LineWidth:  1.0,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// SetStyle selects fill or stroke.
func (p *Paint) SetStyle(s Style) { p.style = s }

// Style returns the current style.
func (p *Paint) Style() Style { return p.style }

// SetColor sets a solid fill color. If c's alpha is zero and the style is
// fill, the paint becomes invisible (§4.2).
func (p *Paint) SetColor(c RGBA8) {
	p.building = false
	p.fillType = FillSolid
	p.solid = c
	p.visible = !(p.style == StyleFill && c.A == 0)
}

// LinearGradient begins accumulating a linear gradient between (sx,sy)
// and (ex,ey). The paint is not drawable until CompleteGradient is
// called.
func (p *Paint) LinearGradient(sx, sy, ex, ey float64) {
	p.startGradient(FillLinear, sx, sy, ex, ey)
}

// RadialGradient begins accumulating a radial gradient between (sx,sy)
// and (ex,ey).
func (p *Paint) RadialGradient(sx, sy, ex, ey float64) {
	p.startGradient(FillRadial, sx, sy, ex, ey)
}

func (p *Paint) startGradient(ft FillType, sx, sy, ex, ey float64) {
	p.building = true
	p.visible = false
	p.fillType = ft
	p.gradCount = 0
	p.limits = [4]float64{sx, sy, ex, ey}
}

// AddStop appends a gradient stop at position t (expected in [0,1], in
// increasing order — the caller's contract, not enforced here per
// §3's "Gradient stop ordering"). Returns ErrInvalidPaint if no gradient
// is open or the gradient's stop capacity is exhausted.
func (p *Paint) AddStop(c RGBA8, t float64) error {
	if !p.building {
		return fmt.Errorf("paint: AddStop with no open gradient: %w", ErrInvalidPaint)
	}
	if p.gradCount >= MaxGradientStops {
		return fmt.Errorf("paint: AddStop exceeds %d stop limit: %w", MaxGradientStops, ErrInvalidPaint)
	}
	p.gradStops[p.gradCount] = float32(t)
	p.gradColors[p.gradCount] = c
	p.gradCount++
	return nil
}

// CompleteGradient finalizes a gradient started by LinearGradient or
// RadialGradient. After this call the paint is visible and drawable.
// Returns ErrInvalidPaint if no gradient is open.
func (p *Paint) CompleteGradient() error {
	if !p.building {
		return fmt.Errorf("paint: CompleteGradient with no open gradient: %w", ErrInvalidPaint)
	}
	p.building = false
	p.visible = true
	return nil
}

// Visible reports whether drawing with this paint would produce any
// output. Invisible paints short-circuit drawPath per §4.5.
func (p *Paint) Visible() bool {
	return p.visible && !p.building
}

// FillType returns the paint's current fill type.
func (p *Paint) FillType() FillType { return p.fillType }
