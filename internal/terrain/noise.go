package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"landgen/pkg/core"
)

// NoiseField is a deterministic 2D fractal value-noise sampler. All state is
// fixed at construction, so sampling is a pure function of the inputs and the
// same (seed, params, x, y) always yields the same bits.
type NoiseField struct {
	perm    [512]int
	offsets []mgl64.Vec2

	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
	maxAmp      float64
}

// NewNoiseField builds a sampler from the provided stream. The stream supplies
// the lattice permutation and one random 2D offset per octave.
func NewNoiseField(rng *core.RNG, p NoiseParams) *NoiseField {
	n := &NoiseField{
		scale:       p.Scale,
		octaves:     p.Octaves,
		persistence: p.Persistence,
		lacunarity:  p.Lacunarity,
	}

	var base [256]int
	for i := range base {
		base[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.IntN(i + 1)
		base[i], base[j] = base[j], base[i]
	}
	for i := 0; i < 256; i++ {
		n.perm[i] = base[i]
		n.perm[i+256] = base[i]
	}

	n.offsets = make([]mgl64.Vec2, p.Octaves)
	for i := range n.offsets {
		n.offsets[i] = mgl64.Vec2{rng.Range(-1e5, 1e5), rng.Range(-1e5, 1e5)}
	}

	amp := 1.0
	for i := 0; i < p.Octaves; i++ {
		n.maxAmp += amp
		amp *= p.Persistence
	}
	return n
}

// Sample accumulates all octaves at (x, y) and returns the signed sum in
// [-MaxAmplitude, MaxAmplitude]. The caller renormalizes.
func (n *NoiseField) Sample(x, y float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < n.octaves; i++ {
		off := n.offsets[i]
		sx := (x + off.X()) / n.scale * freq
		sy := (y + off.Y()) / n.scale * freq
		sum += n.value(sx, sy) * amp
		amp *= n.persistence
		freq *= n.lacunarity
	}
	return sum
}

// Sample01 renormalizes Sample into [0, 1].
func (n *NoiseField) Sample01(x, y float64) float64 {
	return (n.Sample(x, y)/n.maxAmp + 1) * 0.5
}

// MaxAmplitude returns the sum of octave amplitudes, the bound on |Sample|.
func (n *NoiseField) MaxAmplitude() float64 { return n.maxAmp }

// value computes single-layer 2D value noise in [-1, 1] with smoothstep
// interpolation between lattice corner values.
func (n *NoiseField) value(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx)
	yi := int(fy)

	tx := fade(x - fx)
	ty := fade(y - fy)

	v00 := n.corner(xi, yi)
	v10 := n.corner(xi+1, yi)
	v01 := n.corner(xi, yi+1)
	v11 := n.corner(xi+1, yi+1)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	return lerp(top, bottom, ty)
}

// corner hashes a lattice coordinate to a fixed pseudo-random value in [-1, 1].
func (n *NoiseField) corner(xi, yi int) float64 {
	h := n.perm[n.perm[xi&255]+(yi&255)]
	return float64(h)/255*2 - 1
}

// fade is the smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
