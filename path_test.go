package engine

import (
	"testing"

	"github.com/gpucanvas/engine/internal/geom"
)

func rectPath(ctx *Context, x0, y0, x1, y1 float64) *Path {
	p := ctx.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func TestPathBoundsMonotonic(t *testing.T) {
	// Adding more geometry never shrinks a path's bounds.
	ctx := NewContext()
	p := ctx.NewPath()
	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.ensureContour(0.5)
	_, _, maxX1, maxY1 := p.Bounds()

	p.LineTo(50, 50)
	p.ensureContour(0.5)
	_, _, maxX2, maxY2 := p.Bounds()

	if maxX2 < maxX1 || maxY2 < maxY1 {
		t.Errorf("bounds shrank after adding geometry: (%v,%v) -> (%v,%v)", maxX1, maxY1, maxX2, maxY2)
	}
}

func TestPathCloseIsSymmetric(t *testing.T) {
	// Close appends the start point, so an explicitly closed subpath ends
	// where it started.
	ctx := NewContext()
	p := rectPath(ctx, 0, 0, 10, 10)
	p.ensureContour(0.5)

	if len(p.subpaths) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(p.subpaths))
	}
	sp := p.subpaths[0]
	first, last := sp[0], sp[len(sp)-1]
	if first != last {
		t.Errorf("closed subpath endpoints differ: first=%+v last=%+v", first, last)
	}
}

func TestPathContourQualityMonotonic(t *testing.T) {
	// P3: finer contour error never yields fewer polyline points for the
	// same commands.
	ctx := NewContext()
	p := ctx.NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 100, 100, 100, 100, 0)

	p.ensureContour(2.0)
	coarse := len(p.subpaths[0])

	p.dirty = true
	p.ensureContour(0.05)
	fine := len(p.subpaths[0])

	if fine < coarse {
		t.Errorf("finer contour error produced fewer points: coarse=%d fine=%d", coarse, fine)
	}
}

func TestPathEnsureContourSkipsWhenClean(t *testing.T) {
	ctx := NewContext()
	p := rectPath(ctx, 0, 0, 10, 10)

	if !p.ensureContour(0.5) {
		t.Fatal("first ensureContour call should recompute")
	}
	if p.ensureContour(0.5) {
		t.Error("second call with same error and no changes should be a no-op")
	}
	if !p.ensureContour(0.1) {
		t.Error("call with a different contour error should recompute")
	}
}

func TestPathResetPreservesBufferHandles(t *testing.T) {
	// Reset must not clear GPU handles — they're reused/replaced on next
	// upload, not torn down (§3's reset invariant).
	ctx := NewContext()
	p := rectPath(ctx, 0, 0, 10, 10)
	p.tessVertexBuf = gpuBuffer{handle: 7, size: 64}

	p.Reset()

	if p.tessVertexBuf.handle != 7 {
		t.Errorf("Reset cleared buffer handle: got %d, want 7", p.tessVertexBuf.handle)
	}
	if len(p.commands) != 0 {
		t.Errorf("Reset left %d commands, want 0", len(p.commands))
	}
}

func TestPathIsCompositeIgnoresCommandsOnceChildSet(t *testing.T) {
	ctx := NewContext()
	child := rectPath(ctx, 0, 0, 10, 10)
	parent := ctx.NewPath()
	parent.MoveTo(0, 0)
	parent.LineTo(5, 5)

	if parent.IsComposite() {
		t.Fatal("path with only commands should not be composite")
	}

	parent.AddChild(child, Identity())
	if !parent.IsComposite() {
		t.Error("path with a child should be composite")
	}
}

func TestPathValidateCatchesLineBeforeMove(t *testing.T) {
	ctx := NewContext()
	p := ctx.NewPath()
	p.LineTo(10, 10)

	if err := p.Validate(); err == nil {
		t.Error("Validate should reject a Line before any Move")
	}
}

func TestPathValidateAcceptsWellFormedCommands(t *testing.T) {
	ctx := NewContext()
	p := rectPath(ctx, 0, 0, 10, 10)
	if err := p.Validate(); err != nil {
		t.Errorf("Validate rejected a well-formed path: %v", err)
	}
}

func TestPathOverflowFlagsExcessiveVertexCount(t *testing.T) {
	ctx := NewContext()
	p := ctx.NewPath()
	p.subpaths = [][]geom.Point{make([]geom.Point, maxContourVertices+1)}

	if !p.checkOverflow() {
		t.Error("checkOverflow should report overflow past maxContourVertices")
	}

	p.subpaths = [][]geom.Point{make([]geom.Point, 10)}
	if p.checkOverflow() {
		t.Error("checkOverflow should not report overflow for a small path")
	}
}
