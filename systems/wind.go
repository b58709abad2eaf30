package systems

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Wind field tuning. Low spatial frequency gives broad coherent gusts.
const (
	windSpatialScale = 0.004
	windTimeScale    = 0.01
	windStrength     = 0.6
)

// WindField produces a smoothly varying horizontal gust vector from simplex
// noise. Only particles feel the wind; creatures steer themselves.
type WindField struct {
	noise opensimplex.Noise
}

// NewWindField creates a wind field from a seed.
func NewWindField(seed int64) *WindField {
	return &WindField{noise: opensimplex.New(seed)}
}

// Sample returns the gust vector at a world position and tick.
// Components are roughly in [-windStrength, windStrength].
func (wf *WindField) Sample(x, y float32, tick int32) (gx, gy float32) {
	t := float64(tick) * windTimeScale
	gx = float32(wf.noise.Eval3(float64(x)*windSpatialScale, float64(y)*windSpatialScale, t)) * windStrength
	// Offset the second sample so the two components decorrelate.
	gy = float32(wf.noise.Eval3(float64(x)*windSpatialScale+100, float64(y)*windSpatialScale+100, t)) * windStrength * 0.3
	return gx, gy
}
