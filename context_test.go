package engine

import "testing"

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()
	if ctx.RenderMode() != Tessellation {
		t.Errorf("default render mode = %v, want Tessellation", ctx.RenderMode())
	}
	if ctx.ContourQuality() != 0.5 {
		t.Errorf("default contour quality = %v, want 0.5", ctx.ContourQuality())
	}
	if !ctx.ClippingSupported() {
		t.Error("clipping should be enabled by default")
	}
}

func TestNewContextAppliesOptions(t *testing.T) {
	ctx := NewContext(
		WithRenderMode(StencilToCover),
		WithContourQuality(0.9),
		WithClippingSupport(false),
	)
	if ctx.RenderMode() != StencilToCover {
		t.Errorf("render mode = %v, want StencilToCover", ctx.RenderMode())
	}
	if ctx.ContourQuality() != 0.9 {
		t.Errorf("contour quality = %v, want 0.9", ctx.ContourQuality())
	}
	if ctx.ClippingSupported() {
		t.Error("clipping should be disabled")
	}
}

func TestContourQualityClamped(t *testing.T) {
	ctx := NewContext(WithContourQuality(5))
	if ctx.ContourQuality() != 1 {
		t.Errorf("contour quality = %v, want clamped to 1", ctx.ContourQuality())
	}
	ctx2 := NewContext(WithContourQuality(-3))
	if ctx2.ContourQuality() != 0 {
		t.Errorf("contour quality = %v, want clamped to 0", ctx2.ContourQuality())
	}
}

func TestNewRendererInheritsContextConfig(t *testing.T) {
	ctx := NewContext(WithRenderMode(StencilToCover), WithContourQuality(0.2))
	r := ctx.NewRenderer()
	if r.ctx.renderMode != StencilToCover {
		t.Error("renderer should observe the context's render mode via its ctx pointer")
	}
	if r.ContourQuality() != 0.2 {
		t.Errorf("renderer contour quality = %v, want 0.2", r.ContourQuality())
	}
}

func TestContourErrorForQualityMonotonic(t *testing.T) {
	if contourErrorForQuality(0) < contourErrorForQuality(1) {
		t.Error("quality 0 should map to a larger (coarser) contour error than quality 1")
	}
	if contourErrorForQuality(0.5) <= contourErrorForQuality(1) {
		t.Error("intermediate quality should map to a larger error than quality 1")
	}
}
