package dct

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReferenceIDCTGolden(t *testing.T) {
	tests := []struct {
		name string
		fn   InverseFunc
	}{
		{"float32", ReferenceIDCT},
		{"float64", ReferenceIDCT64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Samples
			tt.fn(&got, &zzBlock)
			if diff := cmp.Diff(zzSamples, got); diff != "" {
				t.Errorf("IDCT(zz) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReferenceIDCTZero(t *testing.T) {
	var src Coefficients
	var got Samples
	ReferenceIDCT(&got, &src)
	for i, v := range got {
		if v != 128 {
			t.Fatalf("sample %d = %d, want 128", i, v)
		}
	}
}

func TestReferenceFDCTEdgeBlock(t *testing.T) {
	var f FloatCoefficients
	ReferenceFDCT(&f, &edgeBlock)
	if diff := cmp.Diff(edgeCoefficients, f.Round()); diff != "" {
		t.Errorf("FDCT(edge) mismatch (-want +got):\n%s", diff)
	}

	var f64 FloatCoefficients64
	ReferenceFDCT64(&f64, &edgeBlock)
	if diff := cmp.Diff(edgeCoefficients, f64.Round()); diff != "" {
		t.Errorf("FDCT64(edge) mismatch (-want +got):\n%s", diff)
	}
}

func TestReferenceFDCTPrecision(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		s := randomSamples(rng)
		var f FloatCoefficients
		var f64 FloatCoefficients64
		ReferenceFDCT(&f, &s)
		ReferenceFDCT64(&f64, &s)
		for k := range f {
			if d := math.Abs(float64(f[k]) - f64[k]); d > 1e-2 {
				t.Fatalf("block %d coefficient %d: float32 %v, float64 %v", i, k, f[k], f64[k])
			}
		}
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		block Samples
		exact bool
	}{
		{"edge", edgeBlock, true},
		{"checkerboard", checkerboard(), true},
		{"flat", Samples{}, true},
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		tests = append(tests, struct {
			name  string
			block Samples
			exact bool
		}{"random", randomSamples(rng), false})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FloatCoefficients
			ReferenceFDCT(&f, &tt.block)
			c := f.Round()
			var got Samples
			ReferenceIDCT(&got, &c)

			d := MaxAbsDiff(&tt.block, &got)
			if tt.exact && d != 0 {
				t.Errorf("round trip not exact:\n%s", cmp.Diff(tt.block, got))
			}
			if d > 1 {
				t.Errorf("round trip deviation %d, want <= 1", d)
			}
		})
	}
}

func TestReferenceDCOnly(t *testing.T) {
	for c := int32(-200); c <= 200; c += 7 {
		src := Coefficients{8 * c}
		want := clampSample(c + levelShift)

		var got, got64 Samples
		ReferenceIDCT(&got, &src)
		ReferenceIDCT64(&got64, &src)
		for i := range got {
			if got[i] != want || got64[i] != want {
				t.Fatalf("DC %d: sample %d = %d/%d, want %d", 8*c, i, got[i], got64[i], want)
			}
		}
	}
}
