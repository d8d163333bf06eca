package motion

import "math"

// spiralPath traces n points around an expanding circle and returns to
// rest, giving the outward-spiral loop used by the mid levels.
func spiralPath(n int, baseRadius, growth float64) []Vec {
	points := make([]Vec, 0, n+1)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := baseRadius + float64(i)*growth
		points = append(points, Vec{X: math.Cos(angle) * r, Y: math.Sin(angle) * r})
	}
	return append(points, Vec{})
}

// starPath alternates outer and inner radii around a five-point star.
func starPath(outer float64) []Vec {
	inner := outer * 0.55
	points := make([]Vec, 0, 11)
	for i := 0; i < 10; i++ {
		angle := float64(i) / 10 * 2 * math.Pi
		r := outer
		if i%2 == 1 {
			r = inner
		}
		points = append(points, Vec{X: math.Cos(angle) * r, Y: math.Sin(angle) * r})
	}
	return append(points, Vec{})
}
