package world

import (
	"testing"

	"mini-voxel/internal/volume"
)

func constantNoise(v float64) NoiseSource {
	return NoiseFunc(func(x, y, z float64) float64 { return v })
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator(NewWorleyNoise(1337))
	pos := ChunkPosition{X: -3, Y: 1, Z: 4}

	a := g.Generate(pos)
	b := g.Generate(pos)

	if a.Checksum() != b.Checksum() {
		t.Fatal("Generate is not deterministic")
	}
	for idx, v := range a.Voxels() {
		if b.Voxel(idx.X, idx.Y, idx.Z) != v {
			t.Fatalf("voxel %v differs between runs", idx)
		}
	}
}

func TestGenerateThresholdInclusive(t *testing.T) {
	g := NewGenerator(constantNoise(DefaultThreshold))
	c := g.Generate(ChunkPosition{})
	if c.ActiveCount() != ChunkSize*ChunkSize*ChunkSize {
		t.Errorf("noise at threshold: ActiveCount() = %d, want all", c.ActiveCount())
	}

	g = NewGenerator(constantNoise(DefaultThreshold - 0.0001))
	c = g.Generate(ChunkPosition{})
	if !c.IsEmpty() {
		t.Errorf("noise below threshold: chunk not empty (%d active)", c.ActiveCount())
	}
}

func TestGenerateSamplePoints(t *testing.T) {
	var minX, maxX float64 = 1e9, -1e9
	g := NewGenerator(NoiseFunc(func(x, y, z float64) float64 {
		minX = min(minX, x)
		maxX = max(maxX, x)
		return 1
	}))
	// chunk (3,0,0) spans noise x in [3/3, (3+31/32)/3]
	g.Generate(ChunkPosition{X: 3})

	if minX != 1.0 {
		t.Errorf("min sample x = %f, want 1.0", minX)
	}
	want := (3 + 31.0/32.0) / 3
	if maxX != want {
		t.Errorf("max sample x = %f, want %f", maxX, want)
	}
}

func TestSamplePoint(t *testing.T) {
	g := &Generator{Scale: 2}
	x, y, z := g.SamplePoint(ChunkPosition{X: 1, Y: -1}, volume.Index{X: 16, Y: 0, Z: 8})
	if x != 0.75 || y != -0.5 || z != 0.125 {
		t.Errorf("SamplePoint = (%f, %f, %f), want (0.75, -0.5, 0.125)", x, y, z)
	}
}

func BenchmarkGenerate(b *testing.B) {
	g := NewGenerator(NewWorleyNoise(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Generate(ChunkPosition{X: i})
	}
}
