package world

import (
	"errors"
	"fmt"
	"math"
)

// NoiseSource samples a scalar field. Implementations must be pure functions
// of their input so that generation is reproducible.
type NoiseSource interface {
	Sample(x, y, z float64) float64
}

// NoiseFunc adapts an ordinary function to NoiseSource.
type NoiseFunc func(x, y, z float64) float64

// Sample calls f(x, y, z).
func (f NoiseFunc) Sample(x, y, z float64) float64 { return f(x, y, z) }

// ErrUnknownNoise is returned by NewNoise for an unrecognised kind.
var ErrUnknownNoise = errors.New("unknown noise kind")

// NewNoise builds a seeded noise source by name: "value" or "worley".
func NewNoise(kind string, seed int64) (NoiseSource, error) {
	switch kind {
	case "value":
		return NewValueNoise(seed), nil
	case "worley", "":
		return NewWorleyNoise(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoise, kind)
	}
}

// ValueNoise is seeded multi-octave 3D value noise with output in [0,1].
type ValueNoise struct {
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// NewValueNoise returns value noise with four octaves.
func NewValueNoise(seed int64) *ValueNoise {
	return &ValueNoise{
		Seed:        seed,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Sample implements NoiseSource.
func (n *ValueNoise) Sample(x, y, z float64) float64 {
	return octaveNoise3D(x, y, z, n.Seed, n.Octaves, n.Persistence, n.Lacunarity)
}

// Smoothstep-like fade 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash3 is a SplitMix64 style integer hash, stable across runs for same inputs.
// Each axis gets its own odd multiplier so axes are not interchangeable.
func hash3(x, y, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// unitFloat maps the low 32 bits of h to [0,1].
func unitFloat(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func latticeValue3D(x, y, z int64, seed int64) float64 {
	return unitFloat(hash3(x, y, z, seed))
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	v000 := latticeValue3D(ix, iy, iz, seed)
	v100 := latticeValue3D(ix+1, iy, iz, seed)
	v010 := latticeValue3D(ix, iy+1, iz, seed)
	v110 := latticeValue3D(ix+1, iy+1, iz, seed)
	v001 := latticeValue3D(ix, iy, iz+1, seed)
	v101 := latticeValue3D(ix+1, iy, iz+1, seed)
	v011 := latticeValue3D(ix, iy+1, iz+1, seed)
	v111 := latticeValue3D(ix+1, iy+1, iz+1, seed)

	// trilinear: x, then y, then z
	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)

	i0 := lerp(i00, i10, fy)
	i1 := lerp(i01, i11, fy)

	return lerp(i0, i1, fz)
}

func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := range octaves {
		v := valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131))
		sum += v * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
