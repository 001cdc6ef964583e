package engine

import "testing"

func TestSetColorTransparentFillIsInvisible(t *testing.T) {
	p := NewPaint()
	p.SetColor(RGBA8{R: 10, G: 20, B: 30, A: 0})
	if p.Visible() {
		t.Error("a fully transparent fill color should make the paint invisible")
	}
}

func TestSetColorOpaqueFillIsVisible(t *testing.T) {
	p := NewPaint()
	p.SetColor(RGBA8{R: 10, G: 20, B: 30, A: 255})
	if !p.Visible() {
		t.Error("an opaque fill color should make the paint visible")
	}
}

func TestStrokeStyleIgnoresAlphaVisibility(t *testing.T) {
	p := NewPaint()
	p.SetStyle(StyleStroke)
	p.SetColor(RGBA8{A: 0})
	if !p.Visible() {
		t.Error("stroke-style paints should not be marked invisible by zero fill alpha")
	}
}

func TestGradientNotVisibleUntilCompleted(t *testing.T) {
	p := NewPaint()
	p.LinearGradient(0, 0, 100, 0)
	if p.Visible() {
		t.Error("a paint mid-gradient-build should not be visible")
	}
	if err := p.AddStop(RGBA8{R: 255, A: 255}, 0); err != nil {
		t.Fatalf("AddStop failed: %v", err)
	}
	if err := p.AddStop(RGBA8{B: 255, A: 255}, 1); err != nil {
		t.Fatalf("AddStop failed: %v", err)
	}
	if p.Visible() {
		t.Error("paint should still be invisible before CompleteGradient")
	}
	if err := p.CompleteGradient(); err != nil {
		t.Fatalf("CompleteGradient failed: %v", err)
	}
	if !p.Visible() {
		t.Error("paint should be visible after CompleteGradient")
	}
}

func TestAddStopWithoutOpenGradientErrors(t *testing.T) {
	p := NewPaint()
	if err := p.AddStop(RGBA8{A: 255}, 0); err == nil {
		t.Error("AddStop with no open gradient should return an error")
	}
}

func TestAddStopExceedingCapacityErrors(t *testing.T) {
	p := NewPaint()
	p.LinearGradient(0, 0, 1, 0)
	for i := 0; i < MaxGradientStops; i++ {
		if err := p.AddStop(RGBA8{A: 255}, float64(i)/MaxGradientStops); err != nil {
			t.Fatalf("stop %d: unexpected error: %v", i, err)
		}
	}
	if err := p.AddStop(RGBA8{A: 255}, 1.0); err == nil {
		t.Error("exceeding MaxGradientStops should return an error")
	}
}

func TestCompleteGradientWithoutOpenGradientErrors(t *testing.T) {
	p := NewPaint()
	if err := p.CompleteGradient(); err == nil {
		t.Error("CompleteGradient with no open gradient should return an error")
	}
}

func TestUniformDataLinearGradientScenario(t *testing.T) {
	// Scenario 4: a two-stop linear gradient flattens into a PaintUniform
	// whose stop count and limits round-trip exactly.
	p := NewPaint()
	p.LinearGradient(0, 0, 100, 50)
	_ = p.AddStop(RGBA8{R: 255, A: 255}, 0)
	_ = p.AddStop(RGBA8{B: 255, A: 255}, 1)
	_ = p.CompleteGradient()

	u := p.UniformData()
	if u.FillType != float32(FillLinear) {
		t.Errorf("FillType = %v, want %v", u.FillType, FillLinear)
	}
	if u.StopCount != 2 {
		t.Errorf("StopCount = %v, want 2", u.StopCount)
	}
	if u.GradientLimits != [4]float32{0, 0, 100, 50} {
		t.Errorf("GradientLimits = %+v, want [0 0 100 50]", u.GradientLimits)
	}
	if u.Colors[0] != 1 || u.Colors[7] != 1 {
		t.Errorf("stop colors did not round-trip: Colors=%+v", u.Colors)
	}
}

func TestUniformDataSolidFill(t *testing.T) {
	p := NewPaint()
	p.SetColor(RGBA8{R: 255, G: 128, A: 255})
	u := p.UniformData()
	if u.StopCount != 1 {
		t.Errorf("solid fill StopCount = %v, want 1", u.StopCount)
	}
	if u.Colors[0] != 1 {
		t.Errorf("solid fill red channel = %v, want 1", u.Colors[0])
	}
}
