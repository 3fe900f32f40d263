package world

import "math"

// WorleyNoise is seeded cellular noise. Sample returns the distance from the
// point to the nearest feature point (F1); one feature point lives in every
// unit cell, so the result is in [0, sqrt(3)].
type WorleyNoise struct {
	Seed int64
}

// NewWorleyNoise returns Worley noise for seed.
func NewWorleyNoise(seed int64) *WorleyNoise {
	return &WorleyNoise{Seed: seed}
}

// Sample implements NoiseSource.
func (n *WorleyNoise) Sample(x, y, z float64) float64 {
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))
	cz := int64(math.Floor(z))

	best := math.MaxFloat64
	for dz := int64(-1); dz <= 1; dz++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dx := int64(-1); dx <= 1; dx++ {
				fx, fy, fz := n.featurePoint(cx+dx, cy+dy, cz+dz)
				ex, ey, ez := fx-x, fy-y, fz-z
				if d := ex*ex + ey*ey + ez*ez; d < best {
					best = d
				}
			}
		}
	}
	return math.Sqrt(best)
}

// featurePoint returns the feature point of cell (x, y, z) in world space.
func (n *WorleyNoise) featurePoint(x, y, z int64) (float64, float64, float64) {
	h := hash3(x, y, z, n.Seed)
	ox := unitFloat(h)
	oy := unitFloat(hash3(x, y, z, n.Seed^0x5bd1e995))
	oz := unitFloat(h >> 32)
	return float64(x) + ox, float64(y) + oy, float64(z) + oz
}
