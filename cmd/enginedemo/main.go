// Command enginedemo builds a small scene with the engine package and
// prints the resulting draw-event queue and buffer-broker activity. It
// exercises both rasterization strategies end to end without any real
// GPU device: the buffer broker only counts the creates, updates, and
// destroys a backend would perform.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/gpucanvas/engine"
)

func main() {
	var (
		mode    = flag.String("mode", "tessellation", "render mode: tessellation or stc")
		quality = flag.Float64("quality", 0.5, "contour quality in [0,1]")
		verbose = flag.Bool("verbose", false, "send engine log output (info level and above) to stderr")
	)
	flag.Parse()

	if *verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	renderMode := engine.Tessellation
	if *mode == "stc" {
		renderMode = engine.StencilToCover
	}

	broker := newLoggingBroker()

	ctx := engine.NewContext(
		engine.WithRenderMode(renderMode),
		engine.WithContourQuality(*quality),
		engine.WithBufferCallbacks(broker.request, broker.destroy),
	)
	defer ctx.Close()

	r := ctx.NewRenderer()
	defer r.Close()

	square := ctx.NewPath()
	square.MoveTo(50, 50)
	square.LineTo(250, 50)
	square.LineTo(250, 250)
	square.LineTo(50, 250)
	square.Close()

	fill := ctx.NewPaint()
	fill.SetColor(engine.RGBA8{R: 220, G: 60, B: 60, A: 255})

	donut := buildDonut(ctx)
	donutPaint := ctx.NewPaint()
	donutPaint.SetColor(engine.RGBA8{R: 60, G: 140, B: 220, A: 255})

	clip := ctx.NewPath()
	clip.MoveTo(0, 0)
	clip.LineTo(400, 0)
	clip.LineTo(400, 400)
	clip.LineTo(0, 400)
	clip.Close()

	r.NewFrame()
	r.Save()
	r.ClipPath(clip)

	// Shrink the square slightly around its own center before drawing it.
	const squareCenterX, squareCenterY = 150.0, 150.0
	shrink := engine.Translate(squareCenterX, squareCenterY).
		Multiply(engine.Scale(0.9, 0.9)).
		Multiply(engine.Translate(-squareCenterX, -squareCenterY))
	r.Save()
	r.Transform(shrink)
	r.DrawPath(square, fill)
	r.Restore()

	// Spin the donut a few degrees around its own center: translate to
	// the origin, rotate, translate back.
	const donutCenterX, donutCenterY = 400.0, 400.0
	spin := engine.Translate(donutCenterX, donutCenterY).
		Multiply(engine.Rotate(math.Pi / 12)).
		Multiply(engine.Translate(-donutCenterX, -donutCenterY))
	r.Save()
	r.Transform(spin)
	r.DrawPath(donut, donutPaint)
	r.Restore()

	r.Restore()

	fmt.Printf("render mode: %s\n", renderMode)
	fmt.Printf("events emitted: %d\n", r.DrawEventCount())
	for i := 0; i < r.DrawEventCount(); i++ {
		ev := r.DrawEvent(i)
		fmt.Printf("  [%d] %s idx=%d evenOdd=%v clips=%d clipping=%v\n",
			i, ev.Type, ev.Idx, ev.IsEvenOdd, ev.AppliedClipCount, ev.IsClipping)
	}
	fmt.Printf("buffers created: %d, updated: %d, destroyed: %d\n", broker.created, broker.updated, broker.destroyed)
}

// buildDonut makes a composite path: an outer square with an inner square
// hole, relying on even-odd fill.
func buildDonut(ctx *engine.Context) *engine.Path {
	outer := ctx.NewPath()
	outer.MoveTo(300, 300)
	outer.LineTo(500, 300)
	outer.LineTo(500, 500)
	outer.LineTo(300, 500)
	outer.Close()

	inner := ctx.NewPath()
	inner.MoveTo(350, 350)
	inner.LineTo(450, 350)
	inner.LineTo(450, 450)
	inner.LineTo(350, 450)
	inner.Close()

	donut := ctx.NewPath()
	donut.SetFillRule(engine.FillRuleEvenOdd)
	donut.AddChild(outer, engine.Identity())
	donut.AddChild(inner, engine.Identity())
	return donut
}

// loggingBroker is a fake buffer broker for demo purposes: it hands out
// sequential handles and counts create/update/destroy calls instead of
// touching a real GPU.
type loggingBroker struct {
	next      engine.BufferHandle
	sizes     map[engine.BufferHandle]int
	created   int
	updated   int
	destroyed int
}

func newLoggingBroker() *loggingBroker {
	return &loggingBroker{sizes: make(map[engine.BufferHandle]int)}
}

func (b *loggingBroker) request(handle engine.BufferHandle, kind engine.BufferKind, data []byte, size int) engine.BufferHandle {
	if handle != 0 {
		b.sizes[handle] = size
		b.updated++
		return handle
	}
	b.next++
	b.sizes[b.next] = size
	b.created++
	return b.next
}

func (b *loggingBroker) destroy(handle engine.BufferHandle) {
	delete(b.sizes, handle)
	b.destroyed++
}
