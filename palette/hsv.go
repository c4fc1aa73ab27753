// Package palette converts the 8-bit HSV encoding used by the colour
// pickers into RGBA, and jitters particle colours around a base.
//
// Hue, saturation and value all live in [0, 255]. Hue is split into six
// sectors of width 43.
package palette

import "image/color"

// HsvaToRgba converts 8-bit HSV plus alpha to RGBA.
// Inputs are clamped to [0, 255].
func HsvaToRgba(h, s, v, a int) color.RGBA {
	h, s, v, a = clamp8(h), clamp8(s), clamp8(v), clamp8(a)

	if s == 0 {
		return color.RGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: uint8(a)}
	}

	region := h / 43
	remainder := (h - region*43) * 6

	p := uint8((v * (255 - s)) >> 8)
	q := uint8((v * (255 - ((s * remainder) >> 8))) >> 8)
	t := uint8((v * (255 - ((s * (255 - remainder)) >> 8))) >> 8)
	vv := uint8(v)

	c := color.RGBA{A: uint8(a)}
	switch region {
	case 0:
		c.R, c.G, c.B = vv, t, p
	case 1:
		c.R, c.G, c.B = q, vv, p
	case 2:
		c.R, c.G, c.B = p, vv, t
	case 3:
		c.R, c.G, c.B = p, q, vv
	case 4:
		c.R, c.G, c.B = t, p, vv
	default:
		c.R, c.G, c.B = vv, p, q
	}
	return c
}

// Clamp limits d to [min, max].
func Clamp(d, min, max int) int {
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

func clamp8(d int) int {
	return Clamp(d, 0, 255)
}
