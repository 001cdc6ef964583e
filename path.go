package engine

import (
	"fmt"

	"github.com/gpucanvas/engine/internal/geom"
)

// FillRule determines how overlapping or self-intersecting subpaths
// combine into a filled region.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// pathChild is one (subpath, transform) reference of a composite path.
type pathChild struct {
	path      *Path
	transform Matrix
}

// Path is a retained path: an ordered command list (or, for a composite
// path, a list of children under their own transforms — never both at
// once, per §3's invariant), a fill rule, and the mesh/contour scratch
// state and GPU buffer handles derived from it on demand.
type Path struct {
	ctx *Context

	commands []PathCommand
	children []pathChild
	fillRule FillRule

	dirty            bool
	contourErrorUsed float64
	overflowed       bool

	// Derived geometry, valid when !dirty && contourErrorUsed == the
	// renderer's current contour error.
	subpaths [][]geom.Point
	bounds   geom.Bounds

	// Tessellation-mode scratch and GPU buffers.
	tessVertexBuf gpuBuffer
	tessIndexBuf  gpuBuffer

	// Stencil-to-cover-mode scratch and GPU buffers.
	contourVertexBuf gpuBuffer
	contourIndexBuf  gpuBuffer
	coverVertexBuf   gpuBuffer
	coverIndexBuf    gpuBuffer
}

// newPath constructs a Path owned by ctx. Use Context.NewPath.
func newPath(ctx *Context) *Path {
	return &Path{
		ctx:      ctx,
		dirty:    true,
		bounds:   geom.EmptyBounds(),
		fillRule: FillRuleNonZero,
	}
}

// SetFillRule sets the fill rule used to interpret overlapping subpaths.
func (p *Path) SetFillRule(rule FillRule) {
	p.fillRule = rule
}

// FillRule returns the path's current fill rule.
func (p *Path) FillRule() FillRule { return p.fillRule }

// MoveTo starts a new subpath at (x, y) without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.commands = append(p.commands, PathCommand{Type: CmdMove, X: x, Y: y})
	p.dirty = true
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.commands = append(p.commands, PathCommand{Type: CmdLine, X: x, Y: y})
	p.dirty = true
}

// CubicTo appends a cubic Bézier segment through control points
// (outCtlX, outCtlY) and (inCtlX, inCtlY) to endpoint (x, y).
func (p *Path) CubicTo(outCtlX, outCtlY, inCtlX, inCtlY, x, y float64) {
	p.commands = append(p.commands, PathCommand{
		Type: CmdCubic,
		X:    x, Y: y,
		OutCtlX: outCtlX, OutCtlY: outCtlY,
		InCtlX: inCtlX, InCtlY: inCtlY,
	})
	p.dirty = true
}

// Close seals the current subpath back to its starting point.
func (p *Path) Close() {
	p.commands = append(p.commands, PathCommand{Type: CmdClose})
	p.dirty = true
}

// Validate checks that p's command list is well formed: every subpath
// starts with a Move before any Line or Cubic. ensureContour tolerates
// a missing leading Move (it implicitly starts a subpath at the current
// pen, defaulting to the origin) so a frame is never aborted mid-walk,
// but authoring code that wants to catch the mistake early can call
// Validate. Returns ErrInvalidPath describing the first offending
// command.
func (p *Path) Validate() error {
	sawMove := false
	for i, cmd := range p.commands {
		switch cmd.Type {
		case CmdMove:
			sawMove = true
		case CmdLine, CmdCubic:
			if !sawMove {
				return fmt.Errorf("path: command %d (%s) before any Move: %w", i, cmd.Type, ErrInvalidPath)
			}
		case CmdClose:
			sawMove = false
		}
	}
	return nil
}

// Reset clears all commands, children, and derived geometry. GPU buffer
// handles are preserved so they can be reused or replaced in place on
// the next emission (§3's reset invariant).
func (p *Path) Reset() {
	p.commands = p.commands[:0]
	p.children = p.children[:0]
	p.subpaths = nil
	p.bounds = geom.EmptyBounds()
	p.overflowed = false
	p.dirty = true
}

// AddChild appends a child (subpath, transform) reference, turning p
// into a composite path. Per §3's invariant, once children is non-empty
// the command list is ignored during draw.
func (p *Path) AddChild(child *Path, transform Matrix) {
	p.children = append(p.children, pathChild{path: child, transform: transform})
	p.dirty = true
}

// IsComposite reports whether p delegates to children rather than
// drawing its own command list.
func (p *Path) IsComposite() bool {
	return len(p.children) > 0
}

// Bounds returns the path's axis-aligned bounds as of the last
// ensureContour recomputation. It is only meaningful after the path has
// been drawn at least once (or ensureContour has otherwise been invoked).
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	return p.bounds.MinX, p.bounds.MinY, p.bounds.MaxX, p.bounds.MaxY
}

// ensureContour recomputes p's polyline subpaths and bounds if dirty or
// if contourError has changed since the last computation (§4.7).
// Returns true if a recomputation happened.
func (p *Path) ensureContour(contourError float64) bool {
	if !p.dirty && p.contourErrorUsed == contourError {
		return false
	}

	subpaths := p.subpaths[:0]
	bounds := geom.EmptyBounds()

	distTooFar := contourError
	minSegLenSq := contourError * contourError

	var current []geom.Point
	var pen, startPoint geom.Point
	penDown := false

	flushSubpath := func() {
		if penDown && len(current) > 0 {
			subpaths = append(subpaths, current)
		}
		current = nil
		penDown = false
	}

	for _, cmd := range p.commands {
		switch cmd.Type {
		case CmdMove:
			flushSubpath()
			pen = geom.Point{X: cmd.X, Y: cmd.Y}
			startPoint = pen

		case CmdLine:
			if !penDown {
				current = append(current, pen)
				bounds.Extend(pen)
				startPoint = pen
				penDown = true
			}
			pen = geom.Point{X: cmd.X, Y: cmd.Y}
			current = append(current, pen)
			bounds.Extend(pen)

		case CmdCubic:
			if !penDown {
				current = append(current, pen)
				bounds.Extend(pen)
				startPoint = pen
				penDown = true
			}
			c1 := geom.Point{X: cmd.OutCtlX, Y: cmd.OutCtlY}
			c2 := geom.Point{X: cmd.InCtlX, Y: cmd.InCtlY}
			end := geom.Point{X: cmd.X, Y: cmd.Y}
			geom.SegmentCubic(pen, c1, c2, end, distTooFar, minSegLenSq, &current, &bounds)
			pen = end

		case CmdClose:
			if penDown {
				current = append(current, startPoint)
				bounds.Extend(startPoint)
				subpaths = append(subpaths, current)
			}
			pen = startPoint
			current = nil
			penDown = false
		}
	}
	flushSubpath()

	p.subpaths = subpaths
	p.bounds = bounds
	p.dirty = false
	p.contourErrorUsed = contourError

	if overflowed := p.checkOverflow(); overflowed {
		Logger().Warn("path contour vertex count exceeded scratch capacity", "err", ErrBufferOverflow)
		remaining := maxContourVertices
		for i, sp := range p.subpaths {
			if len(sp) > remaining {
				p.subpaths[i] = sp[:remaining]
				p.subpaths = p.subpaths[:i+1]
				break
			}
			remaining -= len(sp)
		}
	}

	return true
}

// maxContourVertices bounds a single leaf path's contour vertex count.
// Exceeding it sets the degraded/overflow flag per §7 and truncates the
// contour to its first maxContourVertices points rather than growing
// without limit.
const maxContourVertices = 1 << 20

func (p *Path) checkOverflow() bool {
	total := 0
	for _, sp := range p.subpaths {
		total += len(sp)
	}
	p.overflowed = total > maxContourVertices
	return p.overflowed
}

// ValidateEvenOddNesting is a diagnostic pass over a composite path's
// children, resolving the open question in §9/§4.5 about the idx%2
// even-odd discipline: that rule is only correct when same-parity
// children are strictly nested inside each other. This never returns an
// error — a violation is logged at warn level and drawing proceeds with
// whatever coverage the idx%2 rule happens to produce, per §7's
// degrade-rather-than-halt policy.
func (p *Path) ValidateEvenOddNesting(contourError float64) {
	if p.fillRule != FillRuleEvenOdd || len(p.children) < 2 {
		return
	}

	type bounded struct {
		idx    int
		bounds geom.Bounds
	}
	var evens, odds []bounded

	for i, c := range p.children {
		c.path.ensureContour(contourError)
		b := bounded{idx: i, bounds: c.path.bounds}
		if i%2 == 0 {
			evens = append(evens, b)
		} else {
			odds = append(odds, b)
		}
	}

	for _, group := range [][]bounded{evens, odds} {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !nested(group[i].bounds, group[j].bounds) && !nested(group[j].bounds, group[i].bounds) {
					Logger().Warn("even-odd child bounds are not nested; idx%2 coverage may be incorrect",
						"childA", group[i].idx, "childB", group[j].idx)
				}
			}
		}
	}
}

func nested(outer, inner geom.Bounds) bool {
	return outer.MinX <= inner.MinX && outer.MinY <= inner.MinY &&
		outer.MaxX >= inner.MaxX && outer.MaxY >= inner.MaxY
}

func (p *Path) releaseBuffers() {
	if p.ctx == nil {
		return
	}
	p.ctx.releaseBuffer(&p.tessVertexBuf)
	p.ctx.releaseBuffer(&p.tessIndexBuf)
	p.ctx.releaseBuffer(&p.contourVertexBuf)
	p.ctx.releaseBuffer(&p.contourIndexBuf)
	p.ctx.releaseBuffer(&p.coverVertexBuf)
	p.ctx.releaseBuffer(&p.coverIndexBuf)
}
