package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// PipelineShaders holds the compiled shader modules a reference backend
// needs to drive the two rasterization strategies (§4.3, §4.4): the
// tessellation-mode fill, and the stencil-to-cover stencil-winding and
// cover passes. It holds no separate clip-mask module.
type PipelineShaders struct {
	TessellationFill hal.ShaderModule
	StencilWinding   hal.ShaderModule
	Cover            hal.ShaderModule
}

// CompileShader compiles WGSL source with naga and creates a HAL shader
// module from the result.
func CompileShader(device hal.Device, label, wgslSource string) (hal.ShaderModule, error) {
	spirv, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile shader %q: %w", label, err)
	}
	code := bytesToSPIRV(spirv)
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: code},
	})
}

func bytesToSPIRV(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return out
}

// CompilePipelineShaders compiles the WGSL modules a backend driving the
// engine's PathDrawEvent stream needs. The WGSL source itself is the
// backend's concern (it must consume PaintUniform-shaped bindings and the
// vertex layouts emitted by internal/tessellate and internal/stc) — this
// helper only wires compilation through naga and HAL module creation.
func CompilePipelineShaders(device hal.Device, tessSrc, stencilSrc, coverSrc string) (*PipelineShaders, error) {
	tess, err := CompileShader(device, "engine-tessellation-fill", tessSrc)
	if err != nil {
		return nil, err
	}
	stencil, err := CompileShader(device, "engine-stencil-winding", stencilSrc)
	if err != nil {
		return nil, err
	}
	cover, err := CompileShader(device, "engine-cover", coverSrc)
	if err != nil {
		return nil, err
	}
	return &PipelineShaders{
		TessellationFill: tess,
		StencilWinding:   stencil,
		Cover:            cover,
	}, nil
}

// Destroy releases the compiled shader modules.
func (s *PipelineShaders) Destroy(device hal.Device) {
	if s == nil {
		return
	}
	if s.TessellationFill != nil {
		device.DestroyShaderModule(s.TessellationFill)
	}
	if s.StencilWinding != nil {
		device.DestroyShaderModule(s.StencilWinding)
	}
	if s.Cover != nil {
		device.DestroyShaderModule(s.Cover)
	}
}
