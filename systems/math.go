package systems

import "math"

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float32
}

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// sin32 is a float32 convenience wrapper over math.Sin.
func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// cos32 is a float32 convenience wrapper over math.Cos.
func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
