package camera

import "math"

// fitPower searches zoom powers in unit steps for the content size that best
// fits the canvas. When the content fits with room to spare it returns the
// largest power that still leaves room on both axes; when it overflows either
// axis it returns the first power at which it fits on both. Otherwise 0.
//
// Non-positive or infinite sizes return 0 so the search terminates.
func fitPower(base, canvasW, canvasH, contentW, contentH float64) float64 {
	for _, v := range [...]float64{canvasW, canvasH, contentW, contentH} {
		if v <= 0 || math.IsInf(v, 0) {
			return 0
		}
	}

	zoom := func(power float64) float64 {
		return math.Pow(base, power)
	}

	power := 0.0
	switch {
	case canvasW > contentW && canvasH > contentH:
		power++
		for canvasW > zoom(power)*contentW && canvasH > zoom(power)*contentH {
			power++
		}
		power--
	case canvasW < contentW || canvasH < contentH:
		power--
		for canvasW < zoom(power)*contentW || canvasH < zoom(power)*contentH {
			power--
		}
	}
	return power
}
