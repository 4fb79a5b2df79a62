package core

// Colour is a linear RGBA colour with channels in [0, 1]
type Colour struct {
	R, G, B, A float32
}

// RGBA8 is a colour quantised to 8 bits per channel
type RGBA8 struct {
	R, G, B, A uint8
}

// Named colours used by the scene presets
var (
	Black = Colour{0, 0, 0, 1}
	White = Colour{1, 1, 1, 1}
	Pink  = NewColourRGB8(255, 192, 203)
	Blue  = NewColourRGB8(0, 0, 255)
)

// NewColour creates an opaque colour from channels in [0, 1]
func NewColour(r, g, b float32) Colour {
	return Colour{R: r, G: g, B: b, A: 1}
}

// NewColourRGB8 creates an opaque colour from 8-bit channels
func NewColourRGB8(r, g, b uint8) Colour {
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// Scale multiplies the RGB channels by k and keeps alpha
func (c Colour) Scale(k float32) Colour {
	return Colour{c.R * k, c.G * k, c.B * k, c.A}
}

// Vec3 returns the RGB channels as a vector
func (c Colour) Vec3() Vec3 {
	return Vec3{c.R, c.G, c.B}
}

// ToRGBA8 clamps each channel to [0, 1] and truncates 255*c to a byte
func (c Colour) ToRGBA8() RGBA8 {
	return RGBA8{
		R: quantise(c.R),
		G: quantise(c.G),
		B: quantise(c.B),
		A: quantise(c.A),
	}
}

// RGBA implements color.Color
func (c Colour) RGBA() (r, g, b, a uint32) {
	q := c.ToRGBA8()
	r = uint32(q.R)
	r |= r << 8
	g = uint32(q.G)
	g |= g << 8
	b = uint32(q.B)
	b |= b << 8
	a = uint32(q.A)
	a |= a << 8
	return
}

func quantise(v float32) uint8 {
	// Negated comparison so NaN lands on zero
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(255 * v)
}
