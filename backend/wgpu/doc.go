// Package wgpu is a reference GPU adapter for github.com/gpucanvas/engine,
// built on the gogpu/wgpu pure-Go WebGPU implementation.
//
// The engine package itself never touches a GPU API: it only emits an
// ordered PathDrawEvent queue and calls the buffer broker callbacks a
// Context is configured with (engine.WithBufferCallbacks). This package
// supplies one concrete implementation of that broker, plus the device
// setup and shader compilation a real backend needs around it. A viewer
// application is expected to translate the event queue into draw calls
// against the buffers this package uploads; that translation is outside
// the engine's scope (see SPEC_FULL.md §1's Non-goals).
//
// # Device setup
//
//	adapterID, _ := core.RequestAdapter(nil)
//	logGPUInfo(adapterID)
//	deviceID, err := createDevice(adapterID, "engine-device")
//	queueID, err := getDeviceQueue(deviceID)
//
// # Buffer broker
//
// Broker adapts a hal.Device/hal.Queue pair into the engine's
// RequestBufferFunc/DestroyBufferFunc pair (§4.6): it creates a HAL
// buffer on first request for a handle, uploads via the queue on repeat
// requests for an unchanged size, and the caller (the engine's own
// uploadBuffer) handles the destroy-then-recreate case on a size change.
//
//	broker := wgpu.NewBroker(device, queue)
//	ctx := engine.NewContext(
//		engine.WithRenderMode(engine.StencilToCover),
//		engine.WithBufferCallbacks(broker.Request, broker.Destroy),
//	)
//
// # Shader compilation
//
// CompilePipelineShaders compiles the WGSL modules a backend needs to
// drive both rasterization strategies through naga, producing HAL shader
// modules ready for pipeline creation:
//
//	shaders, err := wgpu.CompilePipelineShaders(device, tessWGSL, stencilWGSL, coverWGSL)
//
// The tessellation-fill pipeline consumes the vertex layout produced by
// internal/tessellate.Fill; the stencil-winding and cover pipelines
// consume internal/stc.BuildContour and internal/stc.BuildCover. Vertex
// layouts are two float32s per vertex (x, y); paint uniforms are laid out
// per engine.PaintUniform.
//
// # Requirements
//
//   - gogpu/wgpu (github.com/gogpu/wgpu/core, /hal, /types)
//   - gogpu/gputypes (buffer usage flags, map modes)
//   - gogpu/naga (WGSL to SPIR-V compilation)
//   - A GPU that supports Vulkan, Metal, or DX12
package wgpu
