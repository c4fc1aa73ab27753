package palette

import "image/color"

// PickerHSV maps pixel (px, py) inside a w x h picker rectangle to HSV.
//
// Hue runs along x and value along y, each scaled by the integer quotient
// 255/w (255/h). Saturation is an inverted parabola of py, which gives the
// picker its curved saturation band. Saturation is computed in float32 and
// truncated, so the top row yields exactly 255.
func PickerHSV(px, py, w, h int) (hue, sat, val int) {
	hue = px * (255 / w)
	val = py * (255 / h)
	sat = int(float32(10000-py*py) / (float32(h*h) / 255))
	return hue, sat, val
}

// PickerColor returns the opaque colour shown at pixel (px, py) of a
// w x h picker.
func PickerColor(px, py, w, h int) color.RGBA {
	hue, sat, val := PickerHSV(px, py, w, h)
	return HsvaToRgba(hue, sat, val, 255)
}
