package hologlobe

import (
	"image/color"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// Colors are not premultiplied; the alpha is applied when handing the color to Ebitengine.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new, fully opaque Color from a 0xRRGGBB integer, like the ones used in web color notation.
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ParseHexColor parses a "#RRGGBB" or "0xRRGGBB" string into a fully opaque Color.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, err
	}
	return NewColorFromHex(uint32(v)), nil
}

// WithAlpha returns a copy of the Color with its alpha set to the value provided.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Hex returns the RGB portion of the Color as a 0xRRGGBB integer.
func (c Color) Hex() uint32 {
	return uint32(clamp(c.R, 0, 1)*255+0.5)<<16 | uint32(clamp(c.G, 0, 1)*255+0.5)<<8 | uint32(clamp(c.B, 0, 1)*255+0.5)
}

// ToNRGBA64 converts the Color to a color.NRGBA64 for use with Ebitengine drawing functions.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(clamp(c.R, 0, 1) * 0xffff),
		G: uint16(clamp(c.G, 0, 1) * 0xffff),
		B: uint16(clamp(c.B, 0, 1) * 0xffff),
		A: uint16(clamp(c.A, 0, 1) * 0xffff),
	}
}

// premultiplied returns the color components premultiplied by alpha, as Ebitengine vertices expect.
func (c Color) premultiplied() (r, g, b, a float32) {
	return c.R * c.A, c.G * c.A, c.B * c.A, c.A
}
