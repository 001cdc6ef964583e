package engine

// RGBA is a color with red, green, blue, and alpha components in [0, 1],
// the floating-point form fed into shader uniforms. RGBA8.Color converts
// the wire format into this shape.
type RGBA struct {
	R, G, B, A float64
}
