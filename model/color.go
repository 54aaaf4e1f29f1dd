package model

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an sRGB color with alpha. Raw keeps the literal it was parsed
// from; scRGB and ICC-based literals that cannot be mapped exactly keep only
// Raw plus a best-effort sRGB approximation.
type Color struct {
	A, R, G, B uint8
	Raw        string
}

// NRGBA returns the color as a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ParseColor parses "#RRGGBB", "#AARRGGBB", "sc#R,G,B", "sc#A,R,G,B" and
// "ContextColor ..." literals.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "sc#"):
		return parseScRGBColor(s)
	case strings.HasPrefix(s, "ContextColor "):
		// Device colors are left to the renderer.
		return Color{A: 0xFF, Raw: s}, true
	}
	return Color{}, false
}

func parseHexColor(s string) (Color, bool) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}

	c := Color{A: 0xFF, Raw: s}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c, true
}

func parseScRGBColor(s string) (Color, bool) {
	fields := strings.Split(s[3:], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, false
	}

	v := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Color{}, false
		}
		v[i] = n
	}

	alpha := 1.0
	if len(v) == 4 {
		alpha, v = v[0], v[1:]
	}

	return Color{
		A:   unitToByte(alpha),
		R:   unitToByte(linearToSRGB(v[0])),
		G:   unitToByte(linearToSRGB(v[1])),
		B:   unitToByte(linearToSRGB(v[2])),
		Raw: s,
	}, true
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func unitToByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	}
	return uint8(math.Round(v * 255))
}
