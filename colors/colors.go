package colors

// package colors contains functions to quickly and easily generate hologlobe.Color instances by name (i.e. "Phosphor()", "DeepGreen()", etc).
// The names cover the green-on-black palette the globe is drawn in, plus a few plain colors for overlays.

import "github.com/hologlobe/hologlobe"

// Transparent generates a hologlobe.Color instance of the provided name.
func Transparent() hologlobe.Color {
	return hologlobe.NewColor(0, 0, 0, 0)
}

// White generates a hologlobe.Color instance of the provided name.
func White() hologlobe.Color {
	return hologlobe.NewColor(1, 1, 1, 1)
}

// Black generates a hologlobe.Color instance of the provided name.
func Black() hologlobe.Color {
	return hologlobe.NewColor(0, 0, 0, 1)
}

// LightGray generates a hologlobe.Color instance of the provided name.
func LightGray() hologlobe.Color {
	return hologlobe.NewColor(0.8, 0.8, 0.8, 1)
}

// Red generates a hologlobe.Color instance of the provided name.
func Red() hologlobe.Color {
	return hologlobe.NewColor(1, 0, 0, 1)
}

// Phosphor is the bright green used for continent outlines and scan lines (#00ff00).
func Phosphor() hologlobe.Color {
	return hologlobe.NewColorFromHex(0x00ff00)
}

// GridGreen is the dim green of the base sphere and the latitude / longitude grid (#004400).
func GridGreen() hologlobe.Color {
	return hologlobe.NewColorFromHex(0x004400)
}

// DeepGreen is the fill of the inner glow sphere (#003300).
func DeepGreen() hologlobe.Color {
	return hologlobe.NewColorFromHex(0x003300)
}

// Atmosphere is the tint of the atmospheric glow.
func Atmosphere() hologlobe.Color {
	return hologlobe.NewColor(0, 1, 0.2, 1)
}
