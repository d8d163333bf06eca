package motion

import "math"

// easeSineInOut is the classic sinusoidal ease for tween segments.
func easeSineInOut(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}

// easePowerInOut accelerates then decelerates, sharper than sine.
func easePowerInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

// wave maps a looping clock onto [0,1] and back: 0 at the start of each
// period, 1 at the midpoint. Buttons oscillate away from rest and home
// again without a discontinuity.
func wave(clock, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return (1 - math.Cos(2*math.Pi*clock/period)) / 2
}
