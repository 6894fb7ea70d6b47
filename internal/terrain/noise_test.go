package terrain

import (
	"math"
	"testing"

	pkgcore "landgen/pkg/core"
)

func testNoiseParams() NoiseParams {
	return NoiseParams{
		Scale:       48,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Sharpness:   1.0,
		MaxHeight:   1.0,
	}
}

func TestNoiseFieldDeterministic(t *testing.T) {
	a := NewNoiseField(pkgcore.NewStream(42, noiseStreamOffset), testNoiseParams())
	b := NewNoiseField(pkgcore.NewStream(42, noiseStreamOffset), testNoiseParams())

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			va := a.Sample(float64(x)*3.7, float64(y)*2.1)
			vb := b.Sample(float64(x)*3.7, float64(y)*2.1)
			if va != vb {
				t.Fatalf("sample at (%d,%d) not reproducible: %v vs %v", x, y, va, vb)
			}
		}
	}
}

func TestNoiseFieldSeedsDiffer(t *testing.T) {
	a := NewNoiseField(pkgcore.NewStream(1, noiseStreamOffset), testNoiseParams())
	b := NewNoiseField(pkgcore.NewStream(2, noiseStreamOffset), testNoiseParams())

	same := true
	for i := 0; i < 32 && same; i++ {
		if a.Sample(float64(i), float64(i*2)) != b.Sample(float64(i), float64(i*2)) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseFieldAmplitudeBound(t *testing.T) {
	p := testNoiseParams()
	n := NewNoiseField(pkgcore.NewStream(7, noiseStreamOffset), p)

	wantMax := 1.0 + 0.5 + 0.25 + 0.125
	if got := n.MaxAmplitude(); math.Abs(got-wantMax) > 1e-12 {
		t.Fatalf("max amplitude = %v, want %v", got, wantMax)
	}

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := n.Sample(float64(x), float64(y))
			if math.Abs(v) > n.MaxAmplitude() {
				t.Fatalf("sample %v at (%d,%d) exceeds amplitude bound %v", v, x, y, n.MaxAmplitude())
			}
			s := n.Sample01(float64(x), float64(y))
			if s < 0 || s > 1 {
				t.Fatalf("Sample01 %v at (%d,%d) escapes [0,1]", s, x, y)
			}
		}
	}
}

func TestNoiseFieldSingleOctaveMatchesValueLayer(t *testing.T) {
	p := testNoiseParams()
	p.Octaves = 1
	n := NewNoiseField(pkgcore.NewStream(11, noiseStreamOffset), p)

	if n.MaxAmplitude() != 1 {
		t.Fatalf("single octave max amplitude = %v, want 1", n.MaxAmplitude())
	}
	for i := 0; i < 100; i++ {
		v := n.Sample(float64(i)*0.9, float64(i)*1.3)
		if v < -1 || v > 1 {
			t.Fatalf("single-octave sample %v outside [-1,1]", v)
		}
	}
}
