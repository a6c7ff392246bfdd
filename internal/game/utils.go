package game

import "math"

// coverFit scales a srcW×srcH image to cover a dstW×dstH area, centered, the
// way CSS "background-size: cover" does. It returns the scale and the
// top-left offset.
func coverFit(srcW, srcH, dstW, dstH float64) (scale, x, y float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = math.Max(dstW/srcW, dstH/srcH)
	x = (dstW - srcW*scale) / 2
	y = (dstH - srcH*scale) / 2
	return scale, x, y
}
