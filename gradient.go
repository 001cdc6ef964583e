package engine

// PaintUniform is the flat representation of a Paint suitable for direct
// GPU upload — copied, never aliased, into per-draw uniforms (§4.2).
type PaintUniform struct {
	FillType       float32
	StopCount      float32
	Stops          [MaxGradientStops]float32
	Colors         [MaxGradientStops * 4]float32
	GradientLimits [4]float32
}

// UniformData flattens p into its GPU-uniform representation. Calling
// this on a paint with an open, uncompleted gradient returns the new
// gradient's fill type and limits with whatever stops have been
// accumulated so far; callers should not draw with a paint mid-build
// (§4.2, §7).
func (p *Paint) UniformData() PaintUniform {
	var u PaintUniform
	u.FillType = float32(p.fillType)

	switch p.fillType {
	case FillSolid:
		c := p.solid.Color()
		u.StopCount = 1
		u.Colors[0], u.Colors[1], u.Colors[2], u.Colors[3] = float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	case FillLinear, FillRadial:
		u.StopCount = float32(p.gradCount)
		for i := 0; i < p.gradCount; i++ {
			u.Stops[i] = p.gradStops[i]
			c := p.gradColors[i].Color()
			u.Colors[i*4+0] = float32(c.R)
			u.Colors[i*4+1] = float32(c.G)
			u.Colors[i*4+2] = float32(c.B)
			u.Colors[i*4+3] = float32(c.A)
		}
		u.GradientLimits[0] = float32(p.limits[0])
		u.GradientLimits[1] = float32(p.limits[1])
		u.GradientLimits[2] = float32(p.limits[2])
		u.GradientLimits[3] = float32(p.limits[3])
	}

	return u
}
