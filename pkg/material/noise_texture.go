package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// turbulenceDepth is the number of noise octaves in the marble pattern
const turbulenceDepth = 7

// NoiseTexture is a marble-like pattern: a sine wave along z phase-shifted by turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with the given spatial frequency
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Evaluate returns a gray level in [0, 1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(level, level, level)
}
